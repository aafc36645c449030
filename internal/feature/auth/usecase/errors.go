// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email, username or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUsernameAlreadyExists is returned when attempting to create a user with a username that already exists.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrInvalidCredentials is returned when the provided credentials are incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSessionNotFound is returned when a session cannot be found by ID.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionRevoked is returned when attempting to use a revoked session.
	ErrSessionRevoked = errors.New("session has been revoked")

	// ErrSessionExpired is returned when attempting to use an expired session.
	ErrSessionExpired = errors.New("session has expired")

	// ErrInvalidRefreshToken is returned when a refresh token is invalid or malformed.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")

	// ErrAlreadyValidated is returned when requesting a validation link for an already confirmed account.
	ErrAlreadyValidated = errors.New("account already validated")

	// ErrValidationPending is returned when a still-valid validation link has already been issued.
	ErrValidationPending = errors.New("a validation link is already available")

	// ErrUnknownValidationSecret is returned when no account matches the presented validation secret.
	ErrUnknownValidationSecret = errors.New("unknown validation secret")

	// ErrValidationExpired is returned when the presented validation secret has expired.
	ErrValidationExpired = errors.New("validation expired")
)
