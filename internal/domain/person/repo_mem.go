package person

import (
	"context"

	"github.com/google/uuid"

	"github.com/carebook/carebook/internal/platform/store"
)

// MemRepository keeps persons in a process-local map, listed in
// insertion order.
type MemRepository struct {
	records *store.Map[*Person]
}

func NewMemRepository() *MemRepository {
	return &MemRepository{records: store.New[*Person]()}
}

func (r *MemRepository) Insert(_ context.Context, p *Person) error {
	return r.records.Insert(p.ID, p)
}

func (r *MemRepository) GetByID(_ context.Context, id uuid.UUID) (*Person, error) {
	return r.records.Get(id)
}

func (r *MemRepository) Replace(_ context.Context, p *Person) error {
	return r.records.Replace(p.ID, p)
}

func (r *MemRepository) List(_ context.Context, f Filter) ([]*Person, error) {
	all := r.records.All()
	out := make([]*Person, 0, len(all))
	for _, p := range all {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out, nil
}
