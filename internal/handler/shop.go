package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/HealingGarden_Go/internal/domain"
)

// BuySeedsRequest buys seeds from the shop
type BuySeedsRequest struct {
	Type     string `json:"type" validate:"required,plant_type"`
	Quantity int    `json:"quantity" validate:"required,min=1,max=999"`
}

// BuySeedsResponse reports a completed purchase
type BuySeedsResponse struct {
	Type      domain.PlantType `json:"type"`
	Quantity  int              `json:"quantity"`
	GoldSpent int              `json:"goldSpent"`
	Gold      int              `json:"gold"`
}

// BuySeeds purchases seeds
// @Summary Buy seeds
// @Tags shop
// @Accept json
// @Produce json
// @Param X-Profile-ID header string false "Profile id" default(default)
// @Param request body BuySeedsRequest true "Species and quantity"
// @Success 200 {object} BuySeedsResponse
// @Failure 400 {object} ErrorResponse "Not sold in the shop"
// @Failure 409 {object} ErrorResponse "Not enough gold"
// @Router /shop/seeds [post]
func (h *GardenHandler) BuySeeds(w http.ResponseWriter, r *http.Request) {
	var req BuySeedsRequest
	if err := DecodeAndValidateRequest(r, w, h.validator, &req, "Buy seeds"); err != nil {
		return
	}
	e, log, ok := h.engine(w, r)
	if !ok {
		return
	}

	species := domain.PlantType(req.Type)
	spent, err := e.BuySeed(r.Context(), species, req.Quantity)
	if err != nil {
		respondServiceError(w, log, "Buy seeds", err)
		return
	}

	log.Info("Seeds purchased", "type", species, "quantity", req.Quantity, "cost", spent)
	respondJSON(w, http.StatusOK, BuySeedsResponse{
		Type:      species,
		Quantity:  req.Quantity,
		GoldSpent: spent,
		Gold:      e.Snapshot().Gold,
	})
}

// CollectionSeenRequest marks collection entries as seen. An empty list marks all.
type CollectionSeenRequest struct {
	Types []string `json:"types" validate:"omitempty,dive,plant_type"`
}

// CollectionSeenResponse reports how many entries were newly marked
type CollectionSeenResponse struct {
	Marked int `json:"marked"`
}

// MarkCollectionSeen clears the "new" badge on collection entries
// @Summary Mark collection entries seen
// @Tags collection
// @Accept json
// @Produce json
// @Param X-Profile-ID header string false "Profile id" default(default)
// @Param request body CollectionSeenRequest true "Species to mark"
// @Success 200 {object} CollectionSeenResponse
// @Router /collection/seen [post]
func (h *GardenHandler) MarkCollectionSeen(w http.ResponseWriter, r *http.Request) {
	var req CollectionSeenRequest
	if err := DecodeAndValidateRequest(r, w, h.validator, &req, "Collection seen"); err != nil {
		return
	}
	e, _, ok := h.engine(w, r)
	if !ok {
		return
	}

	species := make([]domain.PlantType, len(req.Types))
	for i, t := range req.Types {
		species[i] = domain.PlantType(t)
	}
	respondJSON(w, http.StatusOK, CollectionSeenResponse{Marked: e.MarkCollectionSeen(r.Context(), species...)})
}

// DecorationResponse reports a decoration's equipped state
type DecorationResponse struct {
	ID       string `json:"id"`
	Equipped bool   `json:"equipped"`
}

// ToggleDecoration equips or unequips an owned decoration
// @Summary Toggle a decoration
// @Tags decorations
// @Produce json
// @Param X-Profile-ID header string false "Profile id" default(default)
// @Param id path string true "Decoration id"
// @Success 200 {object} DecorationResponse
// @Failure 404 {object} ErrorResponse "Decoration not owned"
// @Router /decorations/{id}/toggle [post]
func (h *GardenHandler) ToggleDecoration(w http.ResponseWriter, r *http.Request) {
	e, log, ok := h.engine(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	equipped, err := e.ToggleDecoration(r.Context(), id)
	if err != nil {
		respondServiceError(w, log, "Toggle decoration", err)
		return
	}
	respondJSON(w, http.StatusOK, DecorationResponse{ID: id, Equipped: equipped})
}
