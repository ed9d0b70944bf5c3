package person

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Insert(ctx context.Context, p *Person) error
	GetByID(ctx context.Context, id uuid.UUID) (*Person, error)
	Replace(ctx context.Context, p *Person) error
	List(ctx context.Context, f Filter) ([]*Person, error)
}
