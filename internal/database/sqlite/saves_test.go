package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HealingGarden_Go/internal/database"
	"github.com/osse101/HealingGarden_Go/internal/garden"
	"github.com/osse101/HealingGarden_Go/internal/persistence"
)

func openTestStore(t *testing.T) *SaveStore {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "saves.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveStore(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	assert.Equal(t, persistence.BackendSQLite, s.Name())

	_, err := s.Load(ctx, "nobody")
	assert.ErrorIs(t, err, persistence.ErrNotFound)

	require.NoError(t, s.Save(ctx, "bob", []byte(`{"version":2,"state":{}}`)))
	require.NoError(t, s.Save(ctx, "alice", []byte(`{"version":4,"state":{"gold":1}}`)))
	require.NoError(t, s.Save(ctx, "alice", []byte(`{"version":4,"state":{"gold":2}}`)))

	data, err := s.Load(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, `{"version":4,"state":{"gold":2}}`, string(data))

	var version int
	require.NoError(t, s.DB().QueryRowContext(ctx,
		"SELECT schema_version FROM garden_saves WHERE profile_id = ?", "bob").Scan(&version))
	assert.Equal(t, 2, version)

	ids, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, ids)

	require.NoError(t, s.Delete(ctx, "alice"))
	_, err = s.Load(ctx, "alice")
	assert.ErrorIs(t, err, persistence.ErrNotFound)
}

func TestOpen_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "saves.db")

	s, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, "p1", []byte(`{"version":4,"state":{}}`)))
	require.NoError(t, s.Close())

	s, err = Open(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Load(ctx, "p1")
	assert.NoError(t, err)

	version, err := database.SchemaVersion(ctx, database.DialectSQLite, s.DB())
	require.NoError(t, err)
	assert.EqualValues(t, 2, version)
}

func TestSaveStore_WithRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	repo := persistence.NewRepository(openTestStore(t),
		persistence.WithNow(func() time.Time { return now }),
		persistence.WithLocation(time.UTC),
	)

	state := garden.DefaultState(now, time.UTC)
	state.Water = 1
	require.NoError(t, repo.SaveState(ctx, "p1", state))

	loaded, err := repo.LoadState(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Water)
}
