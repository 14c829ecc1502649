// Package memstore is the in-memory backing used when no DATABASE_URL is
// configured. It keeps insertion order, which is the order every list view
// renders in.
package memstore

import (
	"errors"
	"sync"

	"github.com/ehr/opsboard/internal/platform/db"
)

var (
	// ErrNotFound is shared with the PostgreSQL repositories so callers
	// check a single sentinel regardless of backing.
	ErrNotFound  = db.ErrNotFound
	ErrDuplicate = errors.New("duplicate id")
)

// Record is anything with a stable identifier.
type Record interface {
	RecordID() string
}

// Store is an ordered, append-mostly collection safe for concurrent use.
// Stored values are treated as immutable: Replace swaps a value, it never
// mutates one in place.
type Store[T Record] struct {
	mu    sync.RWMutex
	items []T
	index map[string]int
}

// New returns a store seeded with items in order. Duplicate seed ids keep
// the first occurrence.
func New[T Record](seed ...T) *Store[T] {
	s := &Store[T]{index: make(map[string]int, len(seed))}
	for _, item := range seed {
		_ = s.Append(item)
	}
	return s
}

func (s *Store[T]) Append(item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.index[item.RecordID()]; ok {
		return ErrDuplicate
	}
	s.index[item.RecordID()] = len(s.items)
	s.items = append(s.items, item)
	return nil
}

func (s *Store[T]) Get(id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return s.items[i], nil
}

// Replace swaps the stored value with the same id, keeping its position.
func (s *Store[T]) Replace(item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[item.RecordID()]
	if !ok {
		return ErrNotFound
	}
	s.items[i] = item
	return nil
}

// All returns a snapshot in insertion order.
func (s *Store[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Where returns the values matching keep, in insertion order.
func (s *Store[T]) Where(keep func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []T
	for _, item := range s.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
