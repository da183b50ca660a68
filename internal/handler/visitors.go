package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/HealingGarden_Go/internal/domain"
)

// ClaimVisitor accepts a visitor's gift
// @Summary Claim a visitor
// @Description Removes a waiting visitor and applies its gift, if one is granted
// @Tags visitors
// @Produce json
// @Param X-Profile-ID header string false "Profile id" default(default)
// @Param animal path string true "Animal type"
// @Success 200 {object} domain.VisitorGift
// @Failure 400 {object} ErrorResponse "Unknown animal"
// @Failure 404 {object} ErrorResponse "Visitor not present"
// @Router /visitors/{animal}/claim [post]
func (h *GardenHandler) ClaimVisitor(w http.ResponseWriter, r *http.Request) {
	e, log, ok := h.engine(w, r)
	if !ok {
		return
	}
	animal := domain.AnimalType(chi.URLParam(r, "animal"))

	gift, err := e.ClaimVisitor(r.Context(), animal)
	if err != nil {
		respondServiceError(w, log, "Claim visitor", err)
		return
	}

	log.Info("Visitor claimed", "animal", animal, "granted", gift.Granted, "kind", gift.Kind, "random", gift.WasRandom)
	respondJSON(w, http.StatusOK, gift)
}
