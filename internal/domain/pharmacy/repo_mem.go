package pharmacy

import (
	"context"

	"github.com/google/uuid"

	"github.com/carebook/carebook/internal/platform/store"
)

// MemRepository keeps pharmacies in a process-local map, listed in
// insertion order.
type MemRepository struct {
	records *store.Map[*Pharmacy]
}

func NewMemRepository() *MemRepository {
	return &MemRepository{records: store.New[*Pharmacy]()}
}

func (r *MemRepository) Insert(_ context.Context, p *Pharmacy) error {
	return r.records.Insert(p.ID, p)
}

func (r *MemRepository) GetByID(_ context.Context, id uuid.UUID) (*Pharmacy, error) {
	return r.records.Get(id)
}

func (r *MemRepository) Replace(_ context.Context, p *Pharmacy) error {
	return r.records.Replace(p.ID, p)
}

func (r *MemRepository) List(_ context.Context, f Filter) ([]*Pharmacy, error) {
	all := r.records.All()
	out := make([]*Pharmacy, 0, len(all))
	for _, p := range all {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out, nil
}
