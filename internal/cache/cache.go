package cache

import "sync"

// Store holds at most one value per resource key. Mutations invalidate the
// key so the next read fetches fresh data; there is no expiry and no
// eviction beyond explicit invalidation.
type Store[T any] struct {
	mu      sync.RWMutex
	entries map[string]T
}

func New[T any]() *Store[T] {
	return &Store[T]{entries: map[string]T{}}
}

func (s *Store[T]) Get(key string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.entries[key]
	return value, ok
}

func (s *Store[T]) Set(key string, value T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
}

func (s *Store[T]) Invalidate(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}
