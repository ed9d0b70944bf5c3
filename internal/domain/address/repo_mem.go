package address

import (
	"context"

	"github.com/google/uuid"

	"github.com/carebook/carebook/internal/platform/store"
)

// MemRepository keeps addresses in a process-local map, listed in
// insertion order.
type MemRepository struct {
	records *store.Map[*Address]
}

func NewMemRepository() *MemRepository {
	return &MemRepository{records: store.New[*Address]()}
}

func (r *MemRepository) Insert(_ context.Context, a *Address) error {
	return r.records.Insert(a.ID, a)
}

func (r *MemRepository) GetByID(_ context.Context, id uuid.UUID) (*Address, error) {
	return r.records.Get(id)
}

func (r *MemRepository) Replace(_ context.Context, a *Address) error {
	return r.records.Replace(a.ID, a)
}

func (r *MemRepository) List(_ context.Context, f Filter) ([]*Address, error) {
	all := r.records.All()
	out := make([]*Address, 0, len(all))
	for _, a := range all {
		if f.Match(a) {
			out = append(out, a)
		}
	}
	return out, nil
}
