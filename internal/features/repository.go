package features

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/augurk/augurk/internal/expiration"
	"github.com/augurk/augurk/pkg/pagination"
	"github.com/augurk/augurk/pkg/query"
	"github.com/augurk/augurk/pkg/repository"
	"github.com/google/uuid"
)

const featureColumns = "id, product, group_name, title, version, payload, created_at, updated_at"

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a feature repository backed by the database.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "features"),
		pagination: pagination,
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Feature], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Product", "Group", "Title")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count features: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	feats, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanFeature)
	if err != nil {
		return nil, fmt.Errorf("query features: %w", err)
	}

	result := pagination.NewPageResult(feats, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Feature, error) {
	q, args := query.
		NewBuilder(projection, defaultSort).
		BuildSingle("Id", id)

	feat, err := repository.QueryOne(ctx, r.db, q, args, scanFeature)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &feat, nil
}

func (r *repo) Metadata(ctx context.Context, id uuid.UUID) (map[string]string, error) {
	feat, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT key, value FROM feature_metadata WHERE feature_id = $1 ORDER BY key`, id)
	if err != nil {
		return nil, fmt.Errorf("query metadata: %w", err)
	}
	defer rows.Close()

	meta := map[string]string{
		expiration.KeyLastModified: expiration.FormatTime(feat.UpdatedAt),
	}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		meta[key] = value
	}

	return meta, rows.Err()
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Feature, error) {
	id := uuid.New()

	q := fmt.Sprintf(`INSERT INTO features(id, product, group_name, title, version, payload)
		VALUES($1, $2, $3, $4, $5, $6)
		RETURNING %s`, featureColumns)

	feat, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Feature, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			id, cmd.Product, cmd.Group, cmd.Title, cmd.Version, []byte(cmd.Payload),
		}, scanFeature)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("feature published", "id", feat.ID, "product", feat.Product, "title", feat.Title)
	return &feat, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Feature, error) {
	q := fmt.Sprintf(`UPDATE features SET title = $1, payload = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING %s`, featureColumns)

	feat, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Feature, error) {
		return repository.QueryOne(ctx, tx, q, []any{cmd.Title, []byte(cmd.Payload), id}, scanFeature)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("feature updated", "id", feat.ID, "title", feat.Title)
	return &feat, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := `DELETE FROM features WHERE id = $1`
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(ctx, tx, q, id)
	})

	if err != nil {
		mapped := repository.MapError(err, ErrNotFound, ErrDuplicate)
		if mapped == ErrNotFound {
			return nil
		}
		return mapped
	}

	r.logger.Info("feature deleted", "id", id)
	return nil
}
