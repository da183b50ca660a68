package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HealingGarden_Go/internal/catalog"
	"github.com/osse101/HealingGarden_Go/internal/domain"
	"github.com/osse101/HealingGarden_Go/internal/garden"
	"github.com/osse101/HealingGarden_Go/internal/handler"
	"github.com/osse101/HealingGarden_Go/internal/persistence"
	"github.com/osse101/HealingGarden_Go/internal/profile"
	"github.com/osse101/HealingGarden_Go/internal/worker"
)

var testNow = time.Date(2026, 3, 12, 8, 0, 0, 0, time.UTC)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type apiFixture struct {
	router   http.Handler
	clock    *testClock
	registry *profile.Registry
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	clock := &testClock{now: testNow}
	cat := catalog.Default()

	repo := persistence.NewRepository(persistence.NewMemoryStore(), persistence.WithLocation(time.UTC))
	saver := persistence.NewSaver(repo, worker.NewPool(1, 16))
	registry := profile.NewRegistry(cat, repo, saver, 8, 0,
		garden.WithClock(clock),
		garden.WithLocation(time.UTC),
	)
	registry.OnOpen(func(ctx context.Context, e *garden.Engine) { e.InitFirstVisitMail(ctx) })

	return &apiFixture{
		router:   handler.NewGardenHandler(registry, cat).Routes(),
		clock:    clock,
		registry: registry,
	}
}

func (f *apiFixture) do(t *testing.T, method, path string, body any, profileID string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, path, &buf)
	if profileID != "" {
		req.Header.Set(handler.HeaderProfileID, profileID)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestGetGarden_DefaultProfile(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/garden", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	view := decode[handler.GardenView](t, rec)
	assert.Equal(t, profile.DefaultProfileID, view.ProfileID)
	assert.Equal(t, garden.MaxWater, view.State.Water)
	assert.Equal(t, 1, view.UnreadMail, "cold start delivers the welcome mail")
	assert.Empty(t, view.Plants)
}

func TestGetGarden_InvalidProfile(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/garden", nil, "has space")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, handler.ErrMsgInvalidProfileError, decode[handler.ErrorResponse](t, rec).Error)
}

func TestProfilesAreIsolated(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/plants", map[string]any{"slot": 0, "type": "carrot"}, "alice")
	require.Equal(t, http.StatusCreated, rec.Code)

	bob := decode[handler.GardenView](t, f.do(t, http.MethodGet, "/garden", nil, "bob"))
	assert.Empty(t, bob.Plants)
	alice := decode[handler.GardenView](t, f.do(t, http.MethodGet, "/garden", nil, "alice"))
	assert.Len(t, alice.Plants, 1)
}

func TestPlant_StatusMapping(t *testing.T) {
	f := newAPIFixture(t)

	tests := []struct {
		name       string
		body       any
		wantStatus int
	}{
		{"plants default seed", map[string]any{"slot": 0, "type": "carrot"}, http.StatusCreated},
		{"occupied slot", map[string]any{"slot": 0, "type": "carrot"}, http.StatusConflict},
		{"slot out of grid", map[string]any{"slot": garden.GridSize, "type": "carrot"}, http.StatusBadRequest},
		{"negative slot", map[string]any{"slot": -1, "type": "carrot"}, http.StatusBadRequest},
		{"missing slot", map[string]any{"type": "carrot"}, http.StatusBadRequest},
		{"unknown species", map[string]any{"slot": 1, "type": "banana"}, http.StatusBadRequest},
		{"no seeds", map[string]any{"slot": 1, "type": "apple"}, http.StatusConflict},
		{"unknown field", map[string]any{"slot": 1, "type": "carrot", "gold": 9999}, http.StatusBadRequest},
		{"malformed json", "{", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(t, http.MethodPost, "/plants", tt.body, "")
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestPlant_ValidationFields(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/plants", map[string]any{"slot": 1, "type": "banana"}, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decode[handler.ValidationErrorResponse](t, rec)
	assert.Equal(t, "Unknown plant", resp.Fields["type"])
}

func TestWaterAndHarvest(t *testing.T) {
	f := newAPIFixture(t)

	planted := decode[handler.PlantResponse](t, f.do(t, http.MethodPost, "/plants", map[string]any{"slot": 4, "type": "carrot"}, ""))
	id := planted.Plant.ID
	require.NotEmpty(t, id)

	rec := f.do(t, http.MethodPost, "/plants/"+id+"/harvest", nil, "")
	assert.Equal(t, http.StatusConflict, rec.Code, "not ripe yet")

	rec = f.do(t, http.MethodPost, "/plants/"+id+"/water", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, garden.MaxWater-1, decode[handler.WaterResponse](t, rec).Water)

	rec = f.do(t, http.MethodPost, "/plants/missing/water", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	f.clock.Advance(30 * time.Minute)

	view := decode[handler.GardenView](t, f.do(t, http.MethodGet, "/garden", nil, ""))
	require.Len(t, view.Plants, 1)
	assert.True(t, view.Plants[0].Ripe)
	assert.Equal(t, domain.StageRipe, view.Plants[0].Stage)
	assert.Zero(t, view.Plants[0].SecondsUntilRipe)

	rec = f.do(t, http.MethodPost, "/plants/"+id+"/harvest", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[domain.HarvestResult](t, rec)
	assert.Equal(t, 10, res.GoldEarned)
	assert.True(t, res.NewEntry)

	rec = f.do(t, http.MethodPost, "/plants/"+id+"/harvest", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWater_NoWaterLeft(t *testing.T) {
	f := newAPIFixture(t)

	planted := decode[handler.PlantResponse](t, f.do(t, http.MethodPost, "/plants", map[string]any{"slot": 0, "type": "carrot"}, ""))
	for i := 0; i < garden.MaxWater; i++ {
		require.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/plants/"+planted.Plant.ID+"/water", nil, "").Code)
	}
	rec := f.do(t, http.MethodPost, "/plants/"+planted.Plant.ID+"/water", nil, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, handler.ErrMsgNoWaterLeft, decode[handler.ErrorResponse](t, rec).Error)
}

func TestBuySeeds(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/shop/seeds", map[string]any{"type": "turnip", "quantity": 1}, "")
	assert.Equal(t, http.StatusConflict, rec.Code, "a new garden has no gold")

	rec = f.do(t, http.MethodPost, "/shop/seeds", map[string]any{"type": "carrot", "quantity": 1}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code, "the default seed is not sold")

	rec = f.do(t, http.MethodPost, "/shop/seeds", map[string]any{"type": "turnip", "quantity": 0}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	e, err := f.registry.Get(context.Background(), profile.DefaultProfileID)
	require.NoError(t, err)
	e.AddGold(context.Background(), 25)

	rec = f.do(t, http.MethodPost, "/shop/seeds", map[string]any{"type": "turnip", "quantity": 2}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[handler.BuySeedsResponse](t, rec)
	assert.Equal(t, 20, resp.GoldSpent)
	assert.Equal(t, 5, resp.Gold)
}

func TestMail(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/mail/nope/read", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodPost, "/mail/"+catalog.MailIDWelcome+"/claim", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	claimed := decode[handler.ClaimMailResponse](t, rec)
	assert.Equal(t, domain.PlantTurnip, claimed.Reward.SeedType)

	rec = f.do(t, http.MethodPost, "/mail/"+catalog.MailIDWelcome+"/claim", nil, "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = f.do(t, http.MethodPost, "/mail/"+catalog.MailIDWelcome+"/read", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	view := decode[handler.GardenView](t, f.do(t, http.MethodGet, "/garden", nil, ""))
	assert.Zero(t, view.UnreadMail)

	rec = f.do(t, http.MethodPost, "/plants", map[string]any{"slot": 2, "type": "turnip"}, "")
	assert.Equal(t, http.StatusCreated, rec.Code, "claimed seeds can be planted")
}

func TestVisitorsAndDecorations(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/visitors/rabbit/claim", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodPost, "/decorations/"+catalog.DecorationGlasses+"/toggle", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestForeground(t *testing.T) {
	f := newAPIFixture(t)

	planted := decode[handler.PlantResponse](t, f.do(t, http.MethodPost, "/plants", map[string]any{"slot": 0, "type": "carrot"}, ""))
	require.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/plants/"+planted.Plant.ID+"/water", nil, "").Code)

	f.clock.Advance(garden.WaterRechargeInterval)

	rec := f.do(t, http.MethodPost, "/garden/foreground", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[handler.ForegroundResponse](t, rec)
	assert.Equal(t, 1, resp.Report.WaterCredited)
	assert.Equal(t, garden.MaxWater, resp.Garden.State.Water)
}

func TestForeground_OneVisitPerCall(t *testing.T) {
	f := newAPIFixture(t)

	view := decode[handler.GardenView](t, f.do(t, http.MethodGet, "/garden", nil, "p1"))
	assert.Zero(t, view.State.VisitCountWithoutHarvest, "reading a cold profile is not a visit")

	resp := decode[handler.ForegroundResponse](t, f.do(t, http.MethodPost, "/garden/foreground", nil, "p1"))
	assert.Equal(t, 1, resp.Report.VisitsNoHarvest)

	f.do(t, http.MethodGet, "/garden", nil, "p1")
	resp = decode[handler.ForegroundResponse](t, f.do(t, http.MethodPost, "/garden/foreground", nil, "p1"))
	assert.Equal(t, 2, resp.Report.VisitsNoHarvest)
	assert.Equal(t, 2, resp.Garden.State.VisitCountWithoutHarvest)
}

func TestUpdateSettings(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPut, "/settings", map[string]any{"soundEnabled": true}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodPut, "/settings", map[string]any{"soundEnabled": true, "hapticsEnabled": false}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	view := decode[handler.GardenView](t, f.do(t, http.MethodGet, "/garden", nil, ""))
	assert.Equal(t, domain.Settings{SoundEnabled: true}, view.State.Settings)
}

func TestCollectionSeen(t *testing.T) {
	f := newAPIFixture(t)

	planted := decode[handler.PlantResponse](t, f.do(t, http.MethodPost, "/plants", map[string]any{"slot": 0, "type": "carrot"}, ""))
	f.clock.Advance(time.Hour)
	require.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/plants/"+planted.Plant.ID+"/harvest", nil, "").Code)

	view := decode[handler.GardenView](t, f.do(t, http.MethodGet, "/garden", nil, ""))
	assert.Equal(t, []domain.PlantType{domain.PlantCarrot}, view.NewCollectionEntries)

	rec := f.do(t, http.MethodPost, "/collection/seen", map[string]any{"types": []string{"banana"}}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodPost, "/collection/seen", map[string]any{}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, decode[handler.CollectionSeenResponse](t, rec).Marked)

	view = decode[handler.GardenView](t, f.do(t, http.MethodGet, "/garden", nil, ""))
	assert.Empty(t, view.NewCollectionEntries)
}

func TestGetCatalog(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/catalog", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[handler.CatalogResponse](t, rec)
	assert.Equal(t, domain.PlantCarrot, resp.DefaultSeed)
	assert.Len(t, resp.Plants, 7)
	assert.Len(t, resp.Shop, 6)
	assert.NotEmpty(t, resp.Animals)
}
