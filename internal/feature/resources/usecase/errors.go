// Package usecase implements the business logic for the resources feature.
package usecase

import "errors"

var (
	// ErrDocumentNotFound is returned when a resource document does not resolve in its store.
	ErrDocumentNotFound = errors.New("resource document not found")

	// ErrNotOwner is returned when the acting user does not hold a reference to the
	// targeted resource. It must be detected before any mutation is attempted.
	ErrNotOwner = errors.New("resource is not owned by this user")

	// ErrInvalidBody is returned when a document body is not a JSON object.
	ErrInvalidBody = errors.New("resource body must be a JSON object")
)
