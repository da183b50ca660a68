package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/HealingGarden_Go/internal/domain"
)

// PlantRequest plants a seed from the inventory into a slot
type PlantRequest struct {
	Slot *int   `json:"slot" validate:"required,min=0"`
	Type string `json:"type" validate:"required,plant_type"`
}

// PlantResponse is the newly planted crop
type PlantResponse struct {
	Plant *domain.Plant `json:"plant"`
}

// Plant plants a seed
// @Summary Plant a seed
// @Description Uses one seed of the given type and plants it in an empty slot
// @Tags plants
// @Accept json
// @Produce json
// @Param X-Profile-ID header string false "Profile id" default(default)
// @Param request body PlantRequest true "Slot and species"
// @Success 201 {object} PlantResponse
// @Failure 400 {object} ErrorResponse "Invalid slot or species"
// @Failure 409 {object} ErrorResponse "Slot occupied or no seeds"
// @Router /plants [post]
func (h *GardenHandler) Plant(w http.ResponseWriter, r *http.Request) {
	var req PlantRequest
	if err := DecodeAndValidateRequest(r, w, h.validator, &req, "Plant"); err != nil {
		return
	}
	e, log, ok := h.engine(w, r)
	if !ok {
		return
	}

	p, err := e.PlantFromInventory(r.Context(), *req.Slot, domain.PlantType(req.Type))
	if err != nil {
		respondServiceError(w, log, "Plant", err)
		return
	}

	log.Info("Seed planted", "plant_id", p.ID, "type", p.Type, "slot", p.SlotIndex)
	respondJSON(w, http.StatusCreated, PlantResponse{Plant: p})
}

// WaterResponse reports the water left after watering
type WaterResponse struct {
	PlantID string `json:"plantId"`
	Water   int    `json:"water"`
}

// Water waters a plant
// @Summary Water a plant
// @Description Spends one water to speed up a plant's growth
// @Tags plants
// @Produce json
// @Param X-Profile-ID header string false "Profile id" default(default)
// @Param id path string true "Plant id"
// @Success 200 {object} WaterResponse
// @Failure 404 {object} ErrorResponse "Plant not found"
// @Failure 409 {object} ErrorResponse "No water left"
// @Router /plants/{id}/water [post]
func (h *GardenHandler) Water(w http.ResponseWriter, r *http.Request) {
	e, log, ok := h.engine(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	if err := e.WaterPlant(r.Context(), id); err != nil {
		respondServiceError(w, log, "Water", err)
		return
	}
	respondJSON(w, http.StatusOK, WaterResponse{PlantID: id, Water: e.Snapshot().Water})
}

// Harvest collects a ripe plant
// @Summary Harvest a plant
// @Description Removes a ripe plant and credits its gold
// @Tags plants
// @Produce json
// @Param X-Profile-ID header string false "Profile id" default(default)
// @Param id path string true "Plant id"
// @Success 200 {object} domain.HarvestResult
// @Failure 404 {object} ErrorResponse "Plant not found"
// @Failure 409 {object} ErrorResponse "Plant not ripe"
// @Router /plants/{id}/harvest [post]
func (h *GardenHandler) Harvest(w http.ResponseWriter, r *http.Request) {
	e, log, ok := h.engine(w, r)
	if !ok {
		return
	}

	res, err := e.CollectHarvest(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, log, "Harvest", err)
		return
	}

	log.Info("Plant harvested", "plant_id", res.PlantID, "gold", res.GoldEarned, "new_entry", res.NewEntry)
	respondJSON(w, http.StatusOK, res)
}
