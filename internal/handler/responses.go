package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/HealingGarden_Go/internal/domain"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

type errorMapping struct {
	err     error
	status  int
	message string
}

// errorMappings is checked in order. Bad input is 400, a missing target is 404
// and a request the garden's current state cannot satisfy is 409.
var errorMappings = []errorMapping{
	{domain.ErrInvalidAmount, http.StatusBadRequest, ErrMsgInvalidAmountError},
	{domain.ErrInvalidSlot, http.StatusBadRequest, ErrMsgInvalidSlotError},
	{domain.ErrUnknownPlant, http.StatusBadRequest, ErrMsgUnknownPlantError},
	{domain.ErrUnknownAnimal, http.StatusBadRequest, ErrMsgUnknownAnimalError},
	{domain.ErrNotBuyable, http.StatusBadRequest, ErrMsgNotBuyableError},
	{domain.ErrInvalidProfileID, http.StatusBadRequest, ErrMsgInvalidProfileError},
	{domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidRequestSummary},

	{domain.ErrPlantNotFound, http.StatusNotFound, ErrMsgPlantNotFoundError},
	{domain.ErrMailNotFound, http.StatusNotFound, ErrMsgMailNotFoundError},
	{domain.ErrVisitorNotPresent, http.StatusNotFound, ErrMsgVisitorGoneError},
	{domain.ErrDecorationNotOwned, http.StatusNotFound, ErrMsgDecorationNotOwned},

	{domain.ErrInsufficientFunds, http.StatusConflict, ErrMsgNotEnoughGold},
	{domain.ErrNoWater, http.StatusConflict, ErrMsgNoWaterLeft},
	{domain.ErrNoSeeds, http.StatusConflict, ErrMsgNoSeedsError},
	{domain.ErrSlotOccupied, http.StatusConflict, ErrMsgSlotOccupiedError},
	{domain.ErrPlantNotRipe, http.StatusConflict, ErrMsgPlantNotRipeError},
	{domain.ErrNoReward, http.StatusConflict, ErrMsgNoRewardError},
	{domain.ErrRewardClaimed, http.StatusConflict, ErrMsgRewardClaimedError},
}

// mapServiceErrorToUserMessage maps domain errors to an HTTP status and a
// message the player can act on. Anything unrecognized is a 500.
func mapServiceErrorToUserMessage(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError logs and maps an engine error
func respondServiceError(w http.ResponseWriter, log *slog.Logger, action string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		log.Error(action+" failed", "error", err)
	} else {
		log.Info(action+" rejected", "reason", err)
	}
	respondError(w, status, msg)
}
