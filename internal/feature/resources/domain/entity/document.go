// Package entity defines the domain entities for the resources feature.
package entity

import (
	"encoding/json"
	"time"

	syncentity "fitness_backend/internal/feature/sync/domain/entity"
)

// Document is one private resource (a diet, meal, recipe, program or
// training) stored as an opaque JSON body. The backend does not interpret
// the body beyond requiring it to be a JSON object; clients own the schema.
// Ownership bookkeeping lives in the sync feature, keyed by the document id.
type Document struct {
	// ID is the document's unique identifier within its category.
	ID string

	// Category names the owned category the document belongs to.
	Category syncentity.Category

	// Body is the client-defined JSON payload.
	Body json.RawMessage

	// CreatedAt is the timestamp when the document was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the document body was last replaced.
	UpdatedAt time.Time
}
