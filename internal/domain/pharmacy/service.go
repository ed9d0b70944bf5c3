package pharmacy

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/carebook/carebook/internal/platform/validate"
)

// Service implements create, get, list and partial update for
// pharmacies. Clock and id generator are fields so tests can pin both.
type Service struct {
	repo     Repository
	validate *validator.Validate
	now      func() time.Time
	newID    func() uuid.UUID
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, validate: validate.New(), now: time.Now, newID: uuid.New}
}

// Create validates the payload, assigns a fresh id and timestamps, and
// inserts the record. The store is never touched on a validation failure.
func (s *Service) Create(ctx context.Context, in *CreateInput) (*Pharmacy, error) {
	if err := validate.Struct(s.validate, in); err != nil {
		return nil, err
	}
	now := s.now().UTC()
	p := &Pharmacy{ID: s.newID(), Base: *in, CreatedAt: now, UpdatedAt: now}
	if err := s.repo.Insert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Pharmacy, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f Filter) ([]*Pharmacy, error) {
	return s.repo.List(ctx, f)
}

// Update overlays the fields present in the payload onto the stored
// record. Omitted fields keep their stored values; id and created_at are
// immutable; updated_at is refreshed on every successful update.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in *UpdateInput) (*Pharmacy, error) {
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
