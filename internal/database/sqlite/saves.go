// Package sqlite keeps garden saves in a local SQLite file, for single-host
// deployments and the gardenctl tool.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/osse101/HealingGarden_Go/internal/database"
	"github.com/osse101/HealingGarden_Go/internal/persistence"
)

const (
	queryLoadSave = `SELECT data FROM garden_saves WHERE profile_id = ?`

	queryUpsertSave = `
INSERT INTO garden_saves (profile_id, data, schema_version, updated_at)
VALUES (?, ?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
ON CONFLICT (profile_id) DO UPDATE
SET data = excluded.data,
    schema_version = excluded.schema_version,
    updated_at = excluded.updated_at`

	queryDeleteSave = `DELETE FROM garden_saves WHERE profile_id = ?`

	queryListSaves = `SELECT profile_id FROM garden_saves ORDER BY profile_id`
)

var pragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA synchronous = NORMAL",
	"PRAGMA busy_timeout = 5000",
}

// SaveStore keeps garden saves in a SQLite database
type SaveStore struct {
	db *sql.DB
}

// Open opens or creates the database at path and migrates it
func Open(ctx context.Context, path string) (*SaveStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite allows one writer at a time
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute %q: %w", p, err)
		}
	}

	if _, err := database.Migrate(ctx, database.DialectSQLite, db); err != nil {
		db.Close()
		return nil, err
	}
	return &SaveStore{db: db}, nil
}

// Close closes the database
func (s *SaveStore) Close() error {
	return s.db.Close()
}

// DB returns the underlying handle
func (s *SaveStore) DB() *sql.DB {
	return s.db
}

// Ping checks that the database file is still usable
func (s *SaveStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Name implements persistence.Store
func (s *SaveStore) Name() string { return persistence.BackendSQLite }

// Load implements persistence.Store
func (s *SaveStore) Load(ctx context.Context, profileID string) ([]byte, error) {
	var data string
	err := s.db.QueryRowContext(ctx, queryLoadSave, profileID).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, persistence.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query save: %w", err)
	}
	return []byte(data), nil
}

// Save implements persistence.Store
func (s *SaveStore) Save(ctx context.Context, profileID string, data []byte) error {
	if _, err := s.db.ExecContext(ctx, queryUpsertSave, profileID, string(data), envelopeVersion(data)); err != nil {
		return fmt.Errorf("failed to upsert save: %w", err)
	}
	return nil
}

// Delete implements persistence.Store
func (s *SaveStore) Delete(ctx context.Context, profileID string) error {
	if _, err := s.db.ExecContext(ctx, queryDeleteSave, profileID); err != nil {
		return fmt.Errorf("failed to delete save: %w", err)
	}
	return nil
}

// List implements persistence.Lister
func (s *SaveStore) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, queryListSaves)
	if err != nil {
		return nil, fmt.Errorf("failed to list saves: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan save: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func envelopeVersion(data []byte) int {
	var env struct {
		Version int `json:"version"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return 0
	}
	return env.Version
}
