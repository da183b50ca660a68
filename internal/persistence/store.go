package persistence

import (
	"context"
	"errors"
	"sort"
	"sync"
)

// ErrNotFound is returned by a Store when a profile has no save yet
var ErrNotFound = errors.New(ErrMsgSaveNotFound)

// Store is a durable, keyed home for encoded save blobs
type Store interface {
	// Name identifies the backend in logs and metrics
	Name() string
	Load(ctx context.Context, profileID string) ([]byte, error)
	Save(ctx context.Context, profileID string, data []byte) error
	Delete(ctx context.Context, profileID string) error
}

// Lister is implemented by stores that can enumerate their profiles
type Lister interface {
	List(ctx context.Context) ([]string, error)
}

// MemoryStore keeps saves in process memory. It backs tests and the
// degraded mode used when no durable backend is reachable.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

// Name implements Store
func (s *MemoryStore) Name() string { return BackendMemory }

// Load implements Store
func (s *MemoryStore) Load(_ context.Context, profileID string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.blobs[profileID]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

// Save implements Store
func (s *MemoryStore) Save(_ context.Context, profileID string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blobs[profileID] = append([]byte(nil), data...)
	return nil
}

// Delete implements Store
func (s *MemoryStore) Delete(_ context.Context, profileID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.blobs, profileID)
	return nil
}

// List implements Lister
func (s *MemoryStore) List(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.blobs))
	for id := range s.blobs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
