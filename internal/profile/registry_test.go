package profile

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HealingGarden_Go/internal/catalog"
	"github.com/osse101/HealingGarden_Go/internal/domain"
	"github.com/osse101/HealingGarden_Go/internal/garden"
	"github.com/osse101/HealingGarden_Go/internal/persistence"
	"github.com/osse101/HealingGarden_Go/internal/worker"
)

var testNow = time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// MockSaver is a mock implementation of GardenSaver
type MockSaver struct {
	mock.Mock
}

func (m *MockSaver) Track(g persistence.Snapshotter) { m.Called(g.ProfileID()) }
func (m *MockSaver) Untrack(profileID string)        { m.Called(profileID) }

func (m *MockSaver) SaveNow(ctx context.Context, profileID string) error {
	return m.Called(ctx, profileID).Error(0)
}

func (m *MockSaver) Flush(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type testSetup struct {
	registry *Registry
	repo     *persistence.Repository
}

// newTestSetup wires a registry to a real saver over an in-memory store.
// Save jobs are queued on a pool that is never started, so only synchronous
// saves reach the store.
func newTestSetup(t *testing.T, size int) *testSetup {
	t.Helper()
	repo := persistence.NewRepository(persistence.NewMemoryStore(),
		persistence.WithNow(func() time.Time { return testNow }),
		persistence.WithLocation(time.UTC),
	)
	saver := persistence.NewSaver(repo, worker.NewPool(1, 16))
	r := NewRegistry(catalog.Default(), repo, saver, size, 0,
		garden.WithClock(fixedClock{testNow}),
		garden.WithLocation(time.UTC),
	)
	return &testSetup{registry: r, repo: repo}
}

func TestValidateProfileID(t *testing.T) {
	tests := []struct {
		id      string
		wantErr bool
	}{
		{"default", false},
		{"user-42", false},
		{"", true},
		{"has space", true},
		{"tab\there", true},
		{strings.Repeat("x", MaxProfileIDLength), false},
		{strings.Repeat("x", MaxProfileIDLength+1), true},
	}
	for _, tt := range tests {
		err := ValidateProfileID(tt.id)
		if tt.wantErr {
			assert.ErrorIs(t, err, domain.ErrInvalidProfileID, "id %q", tt.id)
		} else {
			assert.NoError(t, err, "id %q", tt.id)
		}
	}
}

func TestRegistry_GetCachesEngine(t *testing.T) {
	ctx := context.Background()
	s := newTestSetup(t, 4)

	a, err := s.registry.Get(ctx, "alice")
	require.NoError(t, err)
	again, err := s.registry.Get(ctx, "alice")
	require.NoError(t, err)

	assert.Same(t, a, again)
	assert.Equal(t, "alice", a.ProfileID())
	assert.Equal(t, 1, s.registry.Len())

	_, err = s.registry.Get(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidProfileID)
}

func TestRegistry_OnOpenRunsOncePerOpen(t *testing.T) {
	ctx := context.Background()
	s := newTestSetup(t, 4)

	var opened []string
	s.registry.OnOpen(func(ctx context.Context, e *garden.Engine) {
		opened = append(opened, e.ProfileID())
		e.InitFirstVisitMail(ctx)
	})

	e, err := s.registry.Get(ctx, "carol")
	require.NoError(t, err)
	_, err = s.registry.Get(ctx, "carol")
	require.NoError(t, err)

	assert.Equal(t, []string{"carol"}, opened)
	assert.Equal(t, 1, e.UnreadMailCount(), "opening delivers the welcome mail")
	assert.Zero(t, e.Snapshot().VisitCountWithoutHarvest, "opening does not count a visit")
}

func TestRegistry_ColdOpenCountsOneVisit(t *testing.T) {
	ctx := context.Background()
	s := newTestSetup(t, 4)
	s.registry.OnOpen(func(ctx context.Context, e *garden.Engine) { e.InitFirstVisitMail(ctx) })

	e, err := s.registry.Get(ctx, "p1")
	require.NoError(t, err)

	report := e.Resume(ctx)
	assert.Equal(t, 1, report.VisitsNoHarvest)
	assert.Equal(t, 1, e.Snapshot().VisitCountWithoutHarvest)

	e.Resume(ctx)
	assert.Equal(t, 2, e.Snapshot().VisitCountWithoutHarvest)
}

func TestRegistry_HarvestSurvivesEviction(t *testing.T) {
	ctx := context.Background()
	s := newTestSetup(t, 4)

	e, err := s.registry.Get(ctx, "p1")
	require.NoError(t, err)
	e.Resume(ctx)

	plant, err := e.PlantSeedInSlot(ctx, 0, domain.PlantCarrot)
	require.NoError(t, err)
	require.NoError(t, e.HarvestPlant(ctx, plant.ID))

	require.True(t, s.registry.Evict("p1"))
	reopened, err := s.registry.Get(ctx, "p1")
	require.NoError(t, err)
	assert.NotSame(t, e, reopened)
	assert.True(t, reopened.Snapshot().HasHarvestedThisSession)

	report := reopened.Resume(ctx)
	assert.Zero(t, report.VisitsNoHarvest, "the harvest before eviction closes the session")
	assert.False(t, reopened.Snapshot().HasHarvestedThisSession)
}

func TestRegistry_GetLoadsSavedState(t *testing.T) {
	ctx := context.Background()
	s := newTestSetup(t, 4)

	state := garden.DefaultState(testNow, time.UTC)
	state.Gold = 99
	require.NoError(t, s.repo.SaveState(ctx, "bob", state))

	e, err := s.registry.Get(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, 99, e.Snapshot().Gold)
}

func TestRegistry_EvictionSavesGarden(t *testing.T) {
	ctx := context.Background()
	s := newTestSetup(t, 1)

	a, err := s.registry.Get(ctx, "alice")
	require.NoError(t, err)
	a.AddGold(ctx, 25)

	// Opening a second profile pushes alice out of a size-1 cache
	_, err = s.registry.Get(ctx, "bob")
	require.NoError(t, err)
	_, cached := s.registry.Peek("alice")
	assert.False(t, cached)

	saved, err := s.repo.LoadState(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, 25, saved.Gold)

	reopened, err := s.registry.Get(ctx, "alice")
	require.NoError(t, err)
	assert.NotSame(t, a, reopened)
	assert.Equal(t, 25, reopened.Snapshot().Gold)
}

func TestRegistry_EvictCallsSaver(t *testing.T) {
	ctx := context.Background()
	saver := &MockSaver{}
	saver.On("Track", "p1").Return()
	saver.On("SaveNow", mock.Anything, "p1").Return(errors.New("store offline"))
	saver.On("Untrack", "p1").Return()

	r := NewRegistry(catalog.Default(), nil, saver, 4, 0, garden.WithClock(fixedClock{testNow}))
	_, err := r.Get(ctx, "p1")
	require.NoError(t, err)

	// A failed save is logged and the engine is still dropped
	assert.True(t, r.Evict("p1"))
	assert.Equal(t, 0, r.Len())
	saver.AssertExpectations(t)
}

func TestRegistry_ResetDailyRandomVisits(t *testing.T) {
	ctx := context.Background()
	s := newTestSetup(t, 4)

	stale := garden.DefaultState(testNow.Add(-24*time.Hour), time.UTC)
	stale.DailyRandomVisitCount = 2
	require.NoError(t, s.repo.SaveState(ctx, "stale", stale))

	_, err := s.registry.Get(ctx, "stale")
	require.NoError(t, err)
	_, err = s.registry.Get(ctx, "fresh")
	require.NoError(t, err)

	n, err := s.registry.ResetDailyRandomVisits(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	e, _ := s.registry.Peek("stale")
	snap := e.Snapshot()
	assert.Equal(t, 0, snap.DailyRandomVisitCount)
	assert.Equal(t, "2026-03-11", snap.LastRandomVisitDate)
}

func TestRegistry_CloseFlushesOnce(t *testing.T) {
	ctx := context.Background()
	saver := &MockSaver{}
	saver.On("Track", mock.Anything).Return()
	saver.On("Flush", ctx).Return(nil).Once()
	saver.On("Untrack", mock.Anything).Return()

	r := NewRegistry(catalog.Default(), nil, saver, 4, 0, garden.WithClock(fixedClock{testNow}))
	for _, id := range []string{"a", "b"} {
		_, err := r.Get(ctx, id)
		require.NoError(t, err)
	}

	require.NoError(t, r.Close(ctx))
	assert.Equal(t, 0, r.Len())
	saver.AssertNotCalled(t, "SaveNow", mock.Anything, mock.Anything)
	saver.AssertNumberOfCalls(t, "Untrack", 2)
}

func TestRegistry_IdleExpiry(t *testing.T) {
	ctx := context.Background()
	untracked := make(chan struct{}, 1)

	saver := &MockSaver{}
	saver.On("Track", "idle").Return()
	saver.On("SaveNow", mock.Anything, "idle").Return(nil)
	saver.On("Untrack", "idle").Return().Run(func(mock.Arguments) { untracked <- struct{}{} })

	r := NewRegistry(catalog.Default(), nil, saver, 4, 50*time.Millisecond, garden.WithClock(fixedClock{testNow}))
	_, err := r.Get(ctx, "idle")
	require.NoError(t, err)

	select {
	case <-untracked:
	case <-time.After(2 * time.Second):
		t.Fatal("idle profile was not evicted")
	}
	assert.Equal(t, 0, r.Len())
	saver.AssertCalled(t, "SaveNow", mock.Anything, "idle")
}
