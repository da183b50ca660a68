package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HealingGarden_Go/internal/domain"
	"github.com/osse101/HealingGarden_Go/internal/event"
)

func TestEventMetricsCollector_Harvest(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)

	before := testutil.ToFloat64(PlantsHarvested.WithLabelValues(string(domain.PlantApple)))
	goldBefore := testutil.ToFloat64(GoldEarned)

	err := bus.Publish(context.Background(), event.New(event.PlantHarvested, "p", event.HarvestPayloadV1{
		PlantType:  domain.PlantApple,
		GoldEarned: 300,
	}))
	require.NoError(t, err)

	assert.Equal(t, before+1, testutil.ToFloat64(PlantsHarvested.WithLabelValues(string(domain.PlantApple))))
	assert.Equal(t, goldBefore+300, testutil.ToFloat64(GoldEarned))
}

func TestEventMetricsCollector_Purchase(t *testing.T) {
	c := NewEventMetricsCollector()
	before := testutil.ToFloat64(SeedsPurchased.WithLabelValues(string(domain.PlantGrape)))

	err := c.HandleEvent(context.Background(), event.New(event.SeedsPurchased, "p", event.SeedsPurchasedPayloadV1{
		PlantType: domain.PlantGrape,
		Quantity:  3,
		Cost:      240,
	}))
	require.NoError(t, err)
	assert.Equal(t, before+3, testutil.ToFloat64(SeedsPurchased.WithLabelValues(string(domain.PlantGrape))))
}

func TestEventMetricsCollector_BadPayloadIgnored(t *testing.T) {
	c := NewEventMetricsCollector()
	assert.NoError(t, c.HandleEvent(context.Background(), event.New(event.PlantPlanted, "p", "not a payload")))
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/plants/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/plants/{id}", "418"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/plants/abc-123", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/plants/{id}", "418")))
}
