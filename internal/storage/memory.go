package storage

import (
	"context"
	"sync"
)

// MemoryStore is a map-backed Store for tests and throwaway sessions.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string]string
	// FailWrites makes every Set return an error, to exercise the
	// log-and-continue path in repositories.
	FailWrites error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.blobs[key]
	if !ok {
		return "", ErrNotFound
	}
	return val, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	if s.FailWrites != nil {
		return s.FailWrites
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = value
	return nil
}

func (s *MemoryStore) Ping(_ context.Context) error { return nil }
