package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/HealingGarden_Go/internal/domain"
)

// ReadMail marks a mail as read
// @Summary Read mail
// @Tags mail
// @Produce json
// @Param X-Profile-ID header string false "Profile id" default(default)
// @Param id path string true "Mail id"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse "Mail not found"
// @Router /mail/{id}/read [post]
func (h *GardenHandler) ReadMail(w http.ResponseWriter, r *http.Request) {
	e, log, ok := h.engine(w, r)
	if !ok {
		return
	}

	if err := e.ReadMail(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, log, "Read mail", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgMailRead})
}

// ClaimMailResponse is the reward credited from a mail
type ClaimMailResponse struct {
	MailID string             `json:"mailId"`
	Reward *domain.MailReward `json:"reward"`
}

// ClaimMail claims a mail's attached reward
// @Summary Claim mail reward
// @Tags mail
// @Produce json
// @Param X-Profile-ID header string false "Profile id" default(default)
// @Param id path string true "Mail id"
// @Success 200 {object} ClaimMailResponse
// @Failure 404 {object} ErrorResponse "Mail not found"
// @Failure 409 {object} ErrorResponse "No reward or already claimed"
// @Router /mail/{id}/claim [post]
func (h *GardenHandler) ClaimMail(w http.ResponseWriter, r *http.Request) {
	e, log, ok := h.engine(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	reward, err := e.ClaimMailReward(r.Context(), id)
	if err != nil {
		respondServiceError(w, log, "Claim mail", err)
		return
	}

	log.Info("Mail reward claimed", "mail_id", id, "seed", reward.SeedType, "count", reward.Count)
	respondJSON(w, http.StatusOK, ClaimMailResponse{MailID: id, Reward: reward})
}
