package address

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Insert(ctx context.Context, a *Address) error
	GetByID(ctx context.Context, id uuid.UUID) (*Address, error)
	Replace(ctx context.Context, a *Address) error
	List(ctx context.Context, f Filter) ([]*Address, error)
}
