// Package expiration applies the version expiration policy to stored feature
// documents. Documents whose version string matches a configured pattern are
// stamped with an upload-date marker and, when expiration is enabled, an
// expires marker derived from their last modification time. A scheduled
// sweeper applies the policy and purges documents past their expires marker.
package expiration

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Metadata keys managed by the expiration policy.
// KeyLastModified is maintained by the store and is a read-only input here;
// KeyUploadDate and KeyExpires are owned by the manager.
const (
	KeyLastModified = "last-modified"
	KeyUploadDate   = "upload-date"
	KeyExpires      = "expires"
)

// Record is the manager's view of a stored document: identity, optional
// version string, the store-managed modification time, and the custom
// metadata currently attached to it.
type Record struct {
	ID           uuid.UUID
	Version      *string
	LastModified time.Time
	Metadata     map[string]string
}

// Store is the narrow document store contract the manager operates against.
// The production implementation is backed by PostgreSQL; tests substitute an
// in-memory fake.
type Store interface {
	// Records enumerates all stored documents.
	Records(ctx context.Context) ([]Record, error)

	// SetMetadata writes a metadata value for a document, replacing any
	// existing value under the same key.
	SetMetadata(ctx context.Context, id uuid.UUID, key, value string) error

	// RemoveMetadata deletes a metadata key from a document.
	RemoveMetadata(ctx context.Context, id uuid.UUID, key string) error

	// DeleteExpired removes all documents whose expires marker is at or
	// before the cutoff and returns how many were deleted.
	DeleteExpired(ctx context.Context, cutoff time.Time) (int, error)
}

// FormatTime renders a metadata timestamp. Values are normalized to UTC at
// second precision so RFC 3339 strings compare chronologically.
func FormatTime(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(time.RFC3339)
}

// ParseTime parses a metadata timestamp produced by FormatTime.
func ParseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
