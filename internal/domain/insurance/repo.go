package insurance

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Insert(ctx context.Context, i *Insurance) error
	GetByID(ctx context.Context, id uuid.UUID) (*Insurance, error)
	Replace(ctx context.Context, i *Insurance) error
	List(ctx context.Context, f Filter) ([]*Insurance, error)
}
