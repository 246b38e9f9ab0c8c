// Package memorykv is the in-memory kv.Store used by tests and the demo
// "memory" backend. Contents are lost on process exit.
package memorykv

import (
	"context"
	"sync"

	"github.com/edutrack/edutrack/storage/kv"
)

type Store struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

var _ kv.Store = (*Store)(nil)

func Open() *Store {
	return &Store{slots: make(map[string][]byte)}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.slots[key]
	if !ok {
		return nil, kv.ErrNotFound
	}
	cp := make([]byte, len(val))
	copy(cp, val)
	return cp, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]byte, len(value))
	copy(cp, value)
	s.slots[key] = cp
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.slots, key)
	return nil
}

func (s *Store) Close() error { return nil }
