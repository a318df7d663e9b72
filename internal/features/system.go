package features

import (
	"context"

	"github.com/augurk/augurk/pkg/pagination"
	"github.com/google/uuid"
)

// System defines the feature document management operations.
type System interface {
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Feature], error)
	Find(ctx context.Context, id uuid.UUID) (*Feature, error)
	Metadata(ctx context.Context, id uuid.UUID) (map[string]string, error)
	Create(ctx context.Context, cmd CreateCommand) (*Feature, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Feature, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
