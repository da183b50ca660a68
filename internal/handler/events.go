package handler

import (
	"net/http"

	"github.com/osse101/HealingGarden_Go/internal/profile"
	"github.com/osse101/HealingGarden_Go/internal/sse"
)

// StreamEvents enables GET /events, a server-sent event stream of the
// requesting profile's garden events
func (h *GardenHandler) StreamEvents(hub *sse.Hub) {
	h.events = sse.Handler(hub, StreamProfile)
}

// StreamProfile resolves the profile of an event stream from the profile
// header or, for EventSource clients, the "profile" query parameter
func StreamProfile(r *http.Request) (string, error) {
	profileID := r.Header.Get(HeaderProfileID)
	if profileID == "" {
		profileID = r.URL.Query().Get(sse.QueryParamProfile)
	}
	if profileID == "" {
		profileID = profile.DefaultProfileID
	}
	if err := profile.ValidateProfileID(profileID); err != nil {
		return "", err
	}
	return profileID, nil
}
