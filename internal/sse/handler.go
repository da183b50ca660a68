package sse

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/osse101/HealingGarden_Go/internal/logger"
)

// ProfileResolver picks and validates the profile a stream follows
type ProfileResolver func(r *http.Request) (string, error)

// Handler streams one profile's garden events. The optional "types" query
// parameter is a comma-separated event type filter.
func Handler(hub *Hub, resolve ProfileResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileID, err := resolve(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		rc := http.NewResponseController(w)

		var eventTypes []string
		if filter := r.URL.Query().Get(QueryParamTypes); filter != "" {
			eventTypes = strings.Split(filter, ",")
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		log := logger.FromContext(logger.WithProfileID(r.Context(), profileID))

		client := hub.Register(profileID, eventTypes)
		log.Info(LogMsgClientConnected, "client_id", client.ID, "filters", eventTypes)
		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected, "client_id", client.ID)
		}()

		send := func(ev Event) bool {
			msg, err := FormatSSEMessage(ev)
			if err != nil {
				log.Error(LogMsgWriteError, "error", err)
				return true
			}
			if _, err := w.Write(msg); err != nil {
				slog.Debug(LogMsgWriteError, "error", err)
				return false
			}
			return rc.Flush() == nil
		}

		if !send(Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			ProfileID: profileID,
			Timestamp: time.Now().Unix(),
			Payload:   map[string]any{"clientId": client.ID, "filters": eventTypes},
		}) {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		for {
			select {
			case <-r.Context().Done():
				return
			case ev, ok := <-client.EventChannel:
				if !ok {
					// Hub stopped
					return
				}
				if !send(ev) {
					return
				}
			case <-ticker.C:
				if !send(Event{Type: EventTypeKeepalive, ProfileID: profileID, Timestamp: time.Now().Unix()}) {
					return
				}
			}
		}
	}
}
