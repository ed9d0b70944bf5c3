package pharmacy

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Insert(ctx context.Context, p *Pharmacy) error
	GetByID(ctx context.Context, id uuid.UUID) (*Pharmacy, error)
	Replace(ctx context.Context, p *Pharmacy) error
	List(ctx context.Context, f Filter) ([]*Pharmacy, error)
}
