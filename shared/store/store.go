// Package store provides the in-memory keyed container every ledger entity
// lives in.
package store

import (
	"errors"
	"sync"
)

// ErrKeyNotFound is returned by Update when the key is absent.
var ErrKeyNotFound = errors.New("key not found")

// Store is a concurrency-safe map of id to record. Records are held by
// value, so anything handed out (Get, ListAll) is a copy that later writes
// cannot reach.
type Store[T any] struct {
	mu   sync.RWMutex
	data map[string]T
}

func New[T any]() *Store[T] {
	return &Store[T]{data: make(map[string]T)}
}

// Get returns the record stored under id.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[id]
	return v, ok
}

// Set inserts record under id only if id is absent. It never overwrites;
// false means another record already owns the id.
func (s *Store[T]) Set(id string, record T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[id]; exists {
		return false
	}
	s.data[id] = record
	return true
}

// Remove deletes id and reports whether it was present.
func (s *Store[T]) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[id]; !exists {
		return false
	}
	delete(s.data, id)
	return true
}

// Take removes id and returns the record it held, in one critical section.
func (s *Store[T]) Take(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.data[id]
	if ok {
		delete(s.data, id)
	}
	return v, ok
}

func (s *Store[T]) ContainsKey(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.data[id]
	return ok
}

// ListAll returns a point-in-time copy of every record, in no particular order.
func (s *Store[T]) ListAll() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.data))
	for _, v := range s.data {
		out = append(out, v)
	}
	return out
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Update runs fn against the current record and stores its result, all
// under the write lock, so no other caller can interleave between the read
// and the write. If fn returns an error nothing is written.
//
// fn must not call back into the same Store.
func (s *Store[T]) Update(id string, fn func(current T) (T, error)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.data[id]
	if !ok {
		var zero T
		return zero, ErrKeyNotFound
	}
	next, err := fn(current)
	if err != nil {
		return current, err
	}
	s.data[id] = next
	return next, nil
}
