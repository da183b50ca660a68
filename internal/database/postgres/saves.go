package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/HealingGarden_Go/internal/persistence"
)

// SaveStore keeps garden saves in the garden_saves table
type SaveStore struct {
	pool *pgxpool.Pool
}

// NewSaveStore creates a new SaveStore. The schema must already be migrated.
func NewSaveStore(pool *pgxpool.Pool) *SaveStore {
	return &SaveStore{pool: pool}
}

// Name implements persistence.Store
func (s *SaveStore) Name() string { return persistence.BackendPostgres }

// Load implements persistence.Store
func (s *SaveStore) Load(ctx context.Context, profileID string) ([]byte, error) {
	var data []byte
	err := s.pool.QueryRow(ctx, queryLoadSave, profileID).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, persistence.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query save: %w", err)
	}
	return data, nil
}

// Save implements persistence.Store
func (s *SaveStore) Save(ctx context.Context, profileID string, data []byte) error {
	if _, err := s.pool.Exec(ctx, queryUpsertSave, profileID, data, envelopeVersion(data)); err != nil {
		return fmt.Errorf("failed to upsert save: %w", err)
	}
	return nil
}

// Delete implements persistence.Store
func (s *SaveStore) Delete(ctx context.Context, profileID string) error {
	if _, err := s.pool.Exec(ctx, queryDeleteSave, profileID); err != nil {
		return fmt.Errorf("failed to delete save: %w", err)
	}
	return nil
}

// List implements persistence.Lister
func (s *SaveStore) List(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, queryListSaves)
	if err != nil {
		return nil, fmt.Errorf("failed to list saves: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan saves: %w", err)
	}
	return ids, nil
}

// envelopeVersion reads the version field so it can be queried without
// parsing the payload in SQL. Unreadable blobs record 0.
func envelopeVersion(data []byte) int {
	var env struct {
		Version int `json:"version"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return 0
	}
	return env.Version
}
