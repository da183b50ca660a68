package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/osse101/HealingGarden_Go/internal/catalog"
	"github.com/osse101/HealingGarden_Go/internal/domain"
	"github.com/osse101/HealingGarden_Go/internal/garden"
	"github.com/osse101/HealingGarden_Go/internal/logger"
	"github.com/osse101/HealingGarden_Go/internal/profile"
)

// HeaderProfileID selects the garden a request acts on
const HeaderProfileID = "X-Profile-ID"

// EngineSource hands out live garden engines by profile id.
// *profile.Registry satisfies it.
type EngineSource interface {
	Get(ctx context.Context, profileID string) (*garden.Engine, error)
}

// GardenHandler handles the garden HTTP API
type GardenHandler struct {
	engines   EngineSource
	catalog   *catalog.Catalog
	validator *Validator
	events    http.HandlerFunc
}

// NewGardenHandler creates a new garden handler
func NewGardenHandler(engines EngineSource, cat *catalog.Catalog) *GardenHandler {
	return &GardenHandler{
		engines:   engines,
		catalog:   cat,
		validator: NewValidator(cat),
	}
}

// engine resolves the request's profile. On failure the response has been
// written and ok is false.
func (h *GardenHandler) engine(w http.ResponseWriter, r *http.Request) (*garden.Engine, *slog.Logger, bool) {
	profileID := r.Header.Get(HeaderProfileID)
	if profileID == "" {
		profileID = profile.DefaultProfileID
	}
	ctx := logger.WithProfileID(r.Context(), profileID)
	log := logger.FromContext(ctx)

	e, err := h.engines.Get(ctx, profileID)
	if err != nil {
		respondServiceError(w, log, "Open garden", err)
		return nil, log, false
	}
	return e, log, true
}

// PlantView is a plant with its derived growth fields
type PlantView struct {
	domain.Plant
	Stage            int   `json:"stage"`
	Ripe             bool  `json:"ripe"`
	SecondsUntilRipe int64 `json:"secondsUntilRipe"`
	HarvestGold      int   `json:"harvestGold"`
}

// GardenView is the full garden as seen at ServerTime
type GardenView struct {
	ProfileID            string              `json:"profileId"`
	ServerTime           time.Time           `json:"serverTime"`
	State                *domain.GardenState `json:"state"`
	Plants               []PlantView         `json:"plants"`
	UnreadMail           int                 `json:"unreadMail"`
	NewCollectionEntries []domain.PlantType  `json:"newCollectionEntries"`
}

func (h *GardenHandler) view(e *garden.Engine) GardenView {
	now := e.Now()
	state := e.Snapshot()

	plants := make([]PlantView, 0, len(state.Plants))
	for _, p := range state.Plants {
		v := PlantView{Plant: p}
		if cfg, ok := h.catalog.Plant(p.Type); ok {
			v.Stage = garden.GrowthStage(p, cfg, now)
			v.Ripe = garden.IsRipe(p, cfg, now)
			v.SecondsUntilRipe = int64(garden.TimeUntilRipe(p, cfg, now).Seconds())
			v.HarvestGold = cfg.HarvestGold
		}
		plants = append(plants, v)
	}

	return GardenView{
		ProfileID:            e.ProfileID(),
		ServerTime:           now,
		State:                state,
		Plants:               plants,
		UnreadMail:           e.UnreadMailCount(),
		NewCollectionEntries: e.NewCollectionEntries(),
	}
}

// GetGarden returns the current garden
// @Summary Get garden
// @Description Returns the garden state with derived plant growth
// @Tags garden
// @Produce json
// @Param X-Profile-ID header string false "Profile id" default(default)
// @Success 200 {object} GardenView
// @Failure 400 {object} ErrorResponse
// @Router /garden [get]
func (h *GardenHandler) GetGarden(w http.ResponseWriter, r *http.Request) {
	e, _, ok := h.engine(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, h.view(e))
}

// ForegroundResponse reports what the foreground pass changed and the result
type ForegroundResponse struct {
	Report garden.ForegroundReport `json:"report"`
	Garden GardenView              `json:"garden"`
}

// Foreground runs the return-to-app pass. Call it once per app foreground.
// @Summary Foreground the garden
// @Description Recharges water, delivers pending mail, counts the visit and lets visitors arrive. The first call after the garden is opened runs the cold-start sequence.
// @Tags garden
// @Produce json
// @Param X-Profile-ID header string false "Profile id" default(default)
// @Success 200 {object} ForegroundResponse
// @Router /garden/foreground [post]
func (h *GardenHandler) Foreground(w http.ResponseWriter, r *http.Request) {
	e, log, ok := h.engine(w, r)
	if !ok {
		return
	}

	report := e.Resume(r.Context())
	log.Info("Garden foregrounded",
		"water", report.WaterCredited,
		"new_visitors", len(report.NewVisitors),
		"random_visitors", len(report.RandomVisitors))

	respondJSON(w, http.StatusOK, ForegroundResponse{Report: report, Garden: h.view(e)})
}

// UpdateSettingsRequest carries the player's toggles
type UpdateSettingsRequest struct {
	SoundEnabled   *bool `json:"soundEnabled" validate:"required"`
	HapticsEnabled *bool `json:"hapticsEnabled" validate:"required"`
}

// UpdateSettings replaces the player's settings
// @Summary Update settings
// @Tags garden
// @Accept json
// @Produce json
// @Param X-Profile-ID header string false "Profile id" default(default)
// @Param request body UpdateSettingsRequest true "Settings"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /settings [put]
func (h *GardenHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if err := DecodeAndValidateRequest(r, w, h.validator, &req, "Update settings"); err != nil {
		return
	}
	e, _, ok := h.engine(w, r)
	if !ok {
		return
	}

	e.UpdateSettings(r.Context(), domain.Settings{
		SoundEnabled:   *req.SoundEnabled,
		HapticsEnabled: *req.HapticsEnabled,
	})
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSettingsUpdated})
}

// CatalogResponse lists everything the garden can contain
type CatalogResponse struct {
	DefaultSeed domain.PlantType           `json:"defaultSeed"`
	Plants      []catalog.PlantConfig      `json:"plants"`
	Shop        []catalog.PlantConfig      `json:"shop"`
	Animals     []catalog.AnimalConfig     `json:"animals"`
	Decorations []catalog.DecorationConfig `json:"decorations"`
}

// GetCatalog returns the plant, animal and decoration catalogs
// @Summary Get catalog
// @Tags catalog
// @Produce json
// @Success 200 {object} CatalogResponse
// @Router /catalog [get]
func (h *GardenHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, CatalogResponse{
		DefaultSeed: h.catalog.DefaultSeed(),
		Plants:      h.catalog.Plants(),
		Shop:        h.catalog.ShopPlants(),
		Animals:     h.catalog.Animals(),
		Decorations: h.catalog.Decorations(),
	})
}
