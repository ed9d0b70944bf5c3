// Package store provides the in-memory keyed storage backing every
// resource repository. Records live for the lifetime of the process;
// iteration order is insertion order.
package store

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when no record exists under the given id.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when inserting under an id that is already taken.
	ErrConflict = errors.New("record already exists")
)

// Map is a thread-safe map from record id to record that remembers
// insertion order.
type Map[T any] struct {
	mu    sync.RWMutex
	items map[uuid.UUID]T
	order []uuid.UUID
}

// New creates an empty Map.
func New[T any]() *Map[T] {
	return &Map[T]{items: make(map[uuid.UUID]T)}
}

// Insert adds a new record. It fails with ErrConflict when the id is
// already present, leaving the existing record untouched.
func (m *Map[T]) Insert(id uuid.UUID, v T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; ok {
		return ErrConflict
	}
	m.items[id] = v
	m.order = append(m.order, id)
	return nil
}

// Get returns the record stored under id, or ErrNotFound.
func (m *Map[T]) Get(id uuid.UUID) (T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.items[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return v, nil
}

// Replace overwrites the record stored under id. The id keeps its
// original position in iteration order.
func (m *Map[T]) Replace(id uuid.UUID, v T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return ErrNotFound
	}
	m.items[id] = v
	return nil
}

// All returns a snapshot of every record in insertion order.
func (m *Map[T]) All() []T {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]T, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.items[id])
	}
	return out
}

// Len reports the number of stored records.
func (m *Map[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
