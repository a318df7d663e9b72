package features

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/augurk/augurk/internal/expiration"
	"github.com/google/uuid"
)

// Store adapts the features tables to the expiration.Store contract.
// The last-modified input comes from the store-managed updated_at column;
// custom markers live in feature_metadata.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

var _ expiration.Store = (*Store)(nil)

// NewStore creates an expiration store over the features tables.
func NewStore(db *sql.DB, logger *slog.Logger) *Store {
	return &Store{
		db:     db,
		logger: logger.With("system", "features.store"),
	}
}

// Records enumerates all feature documents with their custom metadata.
func (s *Store) Records(ctx context.Context) ([]expiration.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, version, updated_at FROM features ORDER BY updated_at`)
	if err != nil {
		return nil, fmt.Errorf("query features: %w", err)
	}
	defer rows.Close()

	var records []expiration.Record
	index := make(map[uuid.UUID]int)

	for rows.Next() {
		var rec expiration.Record
		if err := rows.Scan(&rec.ID, &rec.Version, &rec.LastModified); err != nil {
			return nil, err
		}
		rec.Metadata = make(map[string]string)
		index[rec.ID] = len(records)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	metaRows, err := s.db.QueryContext(ctx,
		`SELECT feature_id, key, value FROM feature_metadata`)
	if err != nil {
		return nil, fmt.Errorf("query metadata: %w", err)
	}
	defer metaRows.Close()

	for metaRows.Next() {
		var id uuid.UUID
		var key, value string
		if err := metaRows.Scan(&id, &key, &value); err != nil {
			return nil, err
		}
		if i, ok := index[id]; ok {
			records[i].Metadata[key] = value
		}
	}

	return records, metaRows.Err()
}

// SetMetadata upserts a metadata value for a document.
func (s *Store) SetMetadata(ctx context.Context, id uuid.UUID, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO feature_metadata(feature_id, key, value)
		VALUES($1, $2, $3)
		ON CONFLICT (feature_id, key) DO UPDATE SET value = EXCLUDED.value`,
		id, key, value)
	if err != nil {
		return fmt.Errorf("set metadata %s: %w", key, err)
	}
	return nil
}

// RemoveMetadata deletes a metadata key from a document. Missing keys are not an error.
func (s *Store) RemoveMetadata(ctx context.Context, id uuid.UUID, key string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM feature_metadata WHERE feature_id = $1 AND key = $2`, id, key)
	if err != nil {
		return fmt.Errorf("remove metadata %s: %w", key, err)
	}
	return nil
}

// DeleteExpired removes documents whose expires marker is at or before the
// cutoff. Marker values sort chronologically as strings, so the comparison
// happens in SQL.
func (s *Store) DeleteExpired(ctx context.Context, cutoff time.Time) (int, error) {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM features WHERE id IN (
			SELECT feature_id FROM feature_metadata WHERE key = $1 AND value <= $2
		)`,
		expiration.KeyExpires, expiration.FormatTime(cutoff))
	if err != nil {
		return 0, fmt.Errorf("delete expired features: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	if affected > 0 {
		s.logger.Info("expired features purged", "count", affected)
	}
	return int(affected), nil
}
