// Package features provides publishing, storage, and management of living
// documentation feature documents. Each document belongs to a product and
// group, optionally carries a version string, and holds a structured payload.
package features

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Feature represents a stored feature document.
type Feature struct {
	ID        uuid.UUID       `json:"id"`
	Product   string          `json:"product"`
	Group     string          `json:"group"`
	Title     string          `json:"title"`
	Version   *string         `json:"version,omitempty"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CreateCommand contains the data required to publish a new feature document.
// Version is optional; unversioned documents are never touched by the
// expiration policy.
type CreateCommand struct {
	Product string          `json:"product"`
	Group   string          `json:"group"`
	Title   string          `json:"title"`
	Version *string         `json:"version,omitempty"`
	Payload json.RawMessage `json:"payload"`
}

// UpdateCommand contains the fields that can be modified on an existing
// feature document. Identity fields (product, group, version) are immutable.
type UpdateCommand struct {
	Title   string          `json:"title"`
	Payload json.RawMessage `json:"payload"`
}
