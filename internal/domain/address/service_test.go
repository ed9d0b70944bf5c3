package address

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/carebook/carebook/internal/platform/store"
	"github.com/carebook/carebook/internal/platform/validate"
)

func newTestService() *Service {
	return NewService(NewMemRepository())
}

func validInput(id uuid.UUID) *CreateInput {
	return &CreateInput{
		ID:         id,
		Street:     "123 Main St",
		City:       "New York",
		State:      "NY",
		PostalCode: "10027",
		Country:    "USA",
	}
}

func TestService_CreateAndGet(t *testing.T) {
	svc := newTestService()
	id := uuid.New()

	created, err := svc.Create(context.Background(), validInput(id))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}

	got, err := svc.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Base != created.Base {
		t.Errorf("round-trip mismatch: %+v != %+v", got.Base, created.Base)
	}
}

func TestService_CreateRejectsMissingFields(t *testing.T) {
	svc := newTestService()

	in := validInput(uuid.New())
	in.City = ""
	_, err := svc.Create(context.Background(), in)

	var verrs validate.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validate.Errors, got %v", err)
	}
	if verrs[0].Field != "city" {
		t.Errorf("expected city error, got %s", verrs[0].Field)
	}

	// A rejected create must not touch the store.
	items, _ := svc.List(context.Background(), Filter{})
	if len(items) != 0 {
		t.Errorf("expected empty store, got %d records", len(items))
	}
}

func TestService_CreateDuplicateID(t *testing.T) {
	svc := newTestService()
	id := uuid.New()

	if _, err := svc.Create(context.Background(), validInput(id)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second := validInput(id)
	second.Street = "456 Other St"
	_, err := svc.Create(context.Background(), second)
	if !errors.Is(err, store.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// The store keeps only the first record.
	got, _ := svc.Get(context.Background(), id)
	if got.Street != "123 Main St" {
		t.Errorf("expected original street, got %s", got.Street)
	}
}

func TestService_GetNotFound(t *testing.T) {
	svc := newTestService()
	if _, err := svc.Get(context.Background(), uuid.New()); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestService_ListFiltersCompose(t *testing.T) {
	svc := newTestService()
	ny := validInput(uuid.New())
	boston := validInput(uuid.New())
	boston.City = "Boston"
	boston.State = "MA"
	svc.Create(context.Background(), ny)
	svc.Create(context.Background(), boston)

	city := "New York"
	country := "USA"
	items, err := svc.List(context.Background(), Filter{City: &city, Country: &country})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 match, got %d", len(items))
	}
	if items[0].ID != ny.ID {
		t.Errorf("expected the New York address, got %s", items[0].ID)
	}
}

func TestService_ListNoFiltersIsIdempotent(t *testing.T) {
	svc := newTestService()
	for i := 0; i < 3; i++ {
		svc.Create(context.Background(), validInput(uuid.New()))
	}

	first, _ := svc.List(context.Background(), Filter{})
	second, _ := svc.List(context.Background(), Filter{})
	if len(first) != 3 || len(second) != 3 {
		t.Fatalf("expected 3 records in both listings, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("position %d: order changed between listings", i)
		}
	}
}

func TestService_UpdatePreservesUnsetFields(t *testing.T) {
	svc := newTestService()
	created := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	updated := time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return created }

	id := uuid.New()
	svc.Create(context.Background(), validInput(id))

	svc.now = func() time.Time { return updated }
	street := "456 Elm St"
	got, err := svc.Update(context.Background(), id, &UpdateInput{Street: &street})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Street != "456 Elm St" {
		t.Errorf("expected updated street, got %s", got.Street)
	}
	if got.City != "New York" || got.Country != "USA" {
		t.Error("expected untouched fields to keep stored values")
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("created_at must not change, got %v", got.CreatedAt)
	}
	if !got.UpdatedAt.Equal(updated) {
		t.Errorf("expected updated_at refreshed to %v, got %v", updated, got.UpdatedAt)
	}
}

func TestService_UpdateNotFound(t *testing.T) {
	svc := newTestService()
	street := "nowhere"
	_, err := svc.Update(context.Background(), uuid.New(), &UpdateInput{Street: &street})
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
