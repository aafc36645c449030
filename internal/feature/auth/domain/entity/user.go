// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
// It is the identity record every ownership check and last-update clock is
// scoped to; the owned-reference collections and the clocks themselves live
// in the sync feature's storage, keyed by the user id.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Username is the unique display name chosen at registration.
	Username string `gorm:"uniqueIndex;size:64;not null"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the hashed password for the user.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// Admin marks administrators, who may mutate the shared catalogs and
	// list every user's resources.
	Admin bool `gorm:"not null;default:false"`

	// Theme is the user's preferred UI theme ("system" by default).
	Theme string `gorm:"size:32;not null;default:system"`

	// Validated reports whether the account's email has been confirmed.
	// New accounts start unvalidated and confirm through the /validate flow.
	Validated bool `gorm:"not null;default:false"`

	// ValidationSecret is the one-time secret for the pending email
	// confirmation link. Empty when no confirmation is pending.
	ValidationSecret string `gorm:"size:64;index"`

	// ValidationExpiresAt bounds the lifetime of ValidationSecret.
	// Nil when no confirmation is pending.
	ValidationExpiresAt *time.Time

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
