package insurance

import (
	"context"

	"github.com/google/uuid"

	"github.com/carebook/carebook/internal/platform/store"
)

// MemRepository keeps insurances in a process-local map, listed in
// insertion order.
type MemRepository struct {
	records *store.Map[*Insurance]
}

func NewMemRepository() *MemRepository {
	return &MemRepository{records: store.New[*Insurance]()}
}

func (r *MemRepository) Insert(_ context.Context, i *Insurance) error {
	return r.records.Insert(i.ID, i)
}

func (r *MemRepository) GetByID(_ context.Context, id uuid.UUID) (*Insurance, error) {
	return r.records.Get(id)
}

func (r *MemRepository) Replace(_ context.Context, i *Insurance) error {
	return r.records.Replace(i.ID, i)
}

func (r *MemRepository) List(_ context.Context, f Filter) ([]*Insurance, error) {
	all := r.records.All()
	out := make([]*Insurance, 0, len(all))
	for _, i := range all {
		if f.Match(i) {
			out = append(out, i)
		}
	}
	return out, nil
}
