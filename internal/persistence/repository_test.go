package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HealingGarden_Go/internal/domain"
	"github.com/osse101/HealingGarden_Go/internal/garden"
)

// MockStore is a Store without List support
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Name() string { return "mock" }

func (m *MockStore) Load(ctx context.Context, profileID string) ([]byte, error) {
	args := m.Called(ctx, profileID)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func (m *MockStore) Save(ctx context.Context, profileID string, data []byte) error {
	return m.Called(ctx, profileID, data).Error(0)
}

func (m *MockStore) Delete(ctx context.Context, profileID string) error {
	return m.Called(ctx, profileID).Error(0)
}

func newTestRepository(store Store) *Repository {
	return NewRepository(store,
		WithNow(func() time.Time { return codecNow }),
		WithLocation(time.UTC),
	)
}

func TestRepository_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(NewMemoryStore())

	state := garden.DefaultState(codecNow, time.UTC)
	state.Gold = 77
	state.Collection = append(state.Collection, domain.PlantCarrot)

	require.NoError(t, repo.SaveState(ctx, "p1", state))

	loaded, err := repo.LoadState(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, 77, loaded.Gold)
	assert.Equal(t, []domain.PlantType{domain.PlantCarrot}, loaded.Collection)
	assert.True(t, codecNow.Equal(loaded.LastWaterRechargeTime))
}

func TestRepository_LoadMissing(t *testing.T) {
	repo := newTestRepository(NewMemoryStore())

	state, err := repo.LoadState(context.Background(), "ghost")
	assert.NoError(t, err)
	assert.Nil(t, state)
}

func TestRepository_LoadMigratesOldSave(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Save(ctx, "old", []byte(v0Blob)))

	repo := newTestRepository(store)
	d, err := repo.Load(ctx, "old")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, d.Applied)
	assert.Equal(t, 40, d.State.Gold)
	assert.Equal(t, "2026-03-10", d.State.LastRandomVisitDate)
}

func TestRepository_LoadCorrupt(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Save(ctx, "bad", []byte("not json")))

	repo := newTestRepository(store)
	_, err := repo.LoadState(ctx, "bad")
	assert.Error(t, err)
}

func TestRepository_StoreErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk on fire")

	store := &MockStore{}
	store.On("Load", ctx, "p1").Return(nil, boom)
	store.On("Save", ctx, "p1", mock.Anything).Return(boom)

	repo := newTestRepository(store)

	_, err := repo.LoadState(ctx, "p1")
	assert.ErrorIs(t, err, boom)

	err = repo.SaveState(ctx, "p1", garden.DefaultState(codecNow, time.UTC))
	assert.ErrorIs(t, err, boom)

	store.AssertExpectations(t)
}

func TestRepository_List(t *testing.T) {
	ctx := context.Background()

	mem := NewMemoryStore()
	require.NoError(t, mem.Save(ctx, "b", []byte("{}")))
	require.NoError(t, mem.Save(ctx, "a", []byte("{}")))

	ids, err := newTestRepository(mem).List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)

	_, err = newTestRepository(&MockStore{}).List(ctx)
	assert.Error(t, err)
}

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(NewMemoryStore())

	require.NoError(t, repo.SaveState(ctx, "p1", garden.DefaultState(codecNow, time.UTC)))
	require.NoError(t, repo.Delete(ctx, "p1"))

	state, err := repo.LoadState(ctx, "p1")
	require.NoError(t, err)
	assert.Nil(t, state)
	assert.Equal(t, BackendMemory, repo.Backend())
}
