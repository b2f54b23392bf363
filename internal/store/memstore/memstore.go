// Package memstore is an in-memory store.KV that lives for the process.
package memstore

import (
	"sync"

	"github.com/idilsaglam/tada/internal/store"
)

type Store struct {
	mu   sync.RWMutex
	data map[string][]byte

	// GetErr and SetErr, when set, are returned instead of touching data.
	GetErr error
	SetErr error
}

func New() *Store {
	return &Store{data: make(map[string][]byte)}
}

func (s *Store) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	v, ok := s.data[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *Store) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SetErr != nil {
		return s.SetErr
	}
	s.data[key] = append([]byte(nil), value...)
	return nil
}

func (s *Store) Close() error { return nil }
