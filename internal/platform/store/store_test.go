package store

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestMap_InsertAndGet(t *testing.T) {
	m := New[string]()
	id := uuid.New()

	if err := m.Insert(id, "hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v, err := m.Get(id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "hello" {
		t.Errorf("expected hello, got %s", v)
	}
}

func TestMap_InsertConflict(t *testing.T) {
	m := New[string]()
	id := uuid.New()

	if err := m.Insert(id, "first"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Insert(id, "second"); !errors.Is(err, ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}

	// The original record must survive the failed insert.
	v, _ := m.Get(id)
	if v != "first" {
		t.Errorf("expected first, got %s", v)
	}
}

func TestMap_GetNotFound(t *testing.T) {
	m := New[string]()
	if _, err := m.Get(uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMap_Replace(t *testing.T) {
	m := New[string]()
	id := uuid.New()
	m.Insert(id, "before")

	if err := m.Replace(id, "after"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, _ := m.Get(id)
	if v != "after" {
		t.Errorf("expected after, got %s", v)
	}
}

func TestMap_ReplaceNotFound(t *testing.T) {
	m := New[string]()
	if err := m.Replace(uuid.New(), "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMap_AllPreservesInsertionOrder(t *testing.T) {
	m := New[int]()
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	for i, id := range ids {
		m.Insert(id, i)
	}

	all := m.All()
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}
	for i, v := range all {
		if v != i {
			t.Errorf("position %d: expected %d, got %d", i, i, v)
		}
	}

	// Replacing must not move a record.
	m.Replace(ids[0], 42)
	all = m.All()
	if all[0] != 42 {
		t.Errorf("expected replaced record to stay first, got %d", all[0])
	}

	if m.Len() != 3 {
		t.Errorf("expected len 3, got %d", m.Len())
	}
}
