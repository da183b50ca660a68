package persistence

import (
	"context"
	"fmt"

	"github.com/quasilyte/gdata/v2"
)

// GdataStore writes saves to the platform's per-user application data
// directory. Each profile is one property of the StorageKey object.
type GdataStore struct {
	manager *gdata.Manager
}

// OpenGdataStore opens (creating if needed) the data directory for appName
func OpenGdataStore(appName string) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open gdata storage for %q: %w", appName, err)
	}
	return NewGdataStore(m), nil
}

// NewGdataStore wraps an already opened manager
func NewGdataStore(m *gdata.Manager) *GdataStore {
	return &GdataStore{manager: m}
}

// Name implements Store
func (s *GdataStore) Name() string { return BackendGdata }

// Load implements Store
func (s *GdataStore) Load(_ context.Context, profileID string) ([]byte, error) {
	if !s.manager.ObjectPropExists(StorageKey, profileID) {
		return nil, ErrNotFound
	}
	data, err := s.manager.LoadObjectProp(StorageKey, profileID)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgStoreLoadFailed, profileID, err)
	}
	return data, nil
}

// Save implements Store
func (s *GdataStore) Save(_ context.Context, profileID string, data []byte) error {
	if err := s.manager.SaveObjectProp(StorageKey, profileID, data); err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgStoreSaveFailed, profileID, err)
	}
	return nil
}

// Delete implements Store
func (s *GdataStore) Delete(_ context.Context, profileID string) error {
	if !s.manager.ObjectPropExists(StorageKey, profileID) {
		return nil
	}
	if err := s.manager.DeleteObjectProp(StorageKey, profileID); err != nil {
		return fmt.Errorf("failed to delete save %s: %w", profileID, err)
	}
	return nil
}

// List implements Lister
func (s *GdataStore) List(_ context.Context) ([]string, error) {
	if !s.manager.ObjectExists(StorageKey) {
		return nil, nil
	}
	ids, err := s.manager.ListObjectProps(StorageKey)
	if err != nil {
		return nil, fmt.Errorf("failed to list saves: %w", err)
	}
	return ids, nil
}
