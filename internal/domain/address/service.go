package address

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/carebook/carebook/internal/platform/validate"
)

// Service implements create, get, list and partial update for addresses.
// The clock is a field so tests can pin timestamps.
type Service struct {
	repo     Repository
	validate *validator.Validate
	now      func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, validate: validate.New(), now: time.Now}
}

// Create validates the payload and inserts a new address under the
// client-supplied id. It fails with store.ErrConflict when the id is
// already taken; the store is never touched on a validation failure.
func (s *Service) Create(ctx context.Context, in *CreateInput) (*Address, error) {
	if err := validate.Struct(s.validate, in); err != nil {
		return nil, err
	}
	now := s.now().UTC()
	a := &Address{Base: *in, CreatedAt: now, UpdatedAt: now}
	if err := s.repo.Insert(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Address, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f Filter) ([]*Address, error) {
	return s.repo.List(ctx, f)
}

// Update overlays the fields present in the payload onto the stored
// record. Omitted fields keep their stored values; id and created_at are
// immutable; updated_at is refreshed on every successful update.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in *UpdateInput) (*Address, error) {
	if err := validate.Struct(s.validate, in); err != nil {
		return nil, err
	}
	stored, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	updated := *stored
	in.Apply(&updated)
	updated.UpdatedAt = s.now().UTC()
	if err := s.repo.Replace(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
