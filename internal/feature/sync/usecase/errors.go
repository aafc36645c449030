// Package usecase implements the business logic for the sync feature.
package usecase

import "errors"

var (
	// ErrAlreadyOwned is returned when adding a resource reference the user already holds.
	// It signals a client-side logic error (e.g. a double submit), not a server fault.
	ErrAlreadyOwned = errors.New("resource is already owned")

	// ErrNotOwned is returned when removing a resource reference the user does not hold.
	ErrNotOwned = errors.New("resource is not owned")

	// ErrInvalidResourceID is returned when a mutation is attempted with an empty resource id.
	ErrInvalidResourceID = errors.New("resource id is required")
)
