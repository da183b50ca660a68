package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/HealingGarden_Go/internal/event"
)

// StreamedEventTypes are the bus events forwarded to clients
var StreamedEventTypes = []event.Type{
	event.StateChanged,
	event.PlantPlanted,
	event.PlantWatered,
	event.PlantHarvested,
	event.VisitorArrived,
	event.VisitorClaimed,
	event.MailReceived,
	event.SeedsPurchased,
	event.DailyRandomReset,
}

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{hub: hub, bus: bus}
}

// Subscribe registers the forwarding handler for every streamed event type
func (s *Subscriber) Subscribe() {
	names := make([]string, 0, len(StreamedEventTypes))
	for _, t := range StreamedEventTypes {
		s.bus.Subscribe(t, s.forward)
		names = append(names, string(t))
	}
	slog.Info(LogMsgSubscriberReady, "types", names)
}

func (s *Subscriber) forward(_ context.Context, evt event.Event) error {
	profileID := evt.ProfileID()
	if profileID == "" {
		return nil
	}
	s.hub.Broadcast(profileID, string(evt.Type), evt.Payload)
	return nil
}
