package metrics

import (
	"context"
	"strconv"

	"github.com/osse101/HealingGarden_Go/internal/event"
	"github.com/osse101/HealingGarden_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all garden events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	eventTypes := []event.Type{
		event.PlantPlanted,
		event.PlantWatered,
		event.PlantHarvested,
		event.VisitorArrived,
		event.VisitorClaimed,
		event.MailReceived,
		event.SeedsPurchased,
		event.DailyRandomReset,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.PlantPlanted:
		var p event.PlantPayloadV1
		if p, err = event.DecodePayload[event.PlantPayloadV1](evt.Payload); err == nil {
			PlantsPlanted.WithLabelValues(string(p.PlantType)).Inc()
		}

	case event.PlantWatered:
		var p event.PlantPayloadV1
		if p, err = event.DecodePayload[event.PlantPayloadV1](evt.Payload); err == nil {
			PlantsWatered.WithLabelValues(string(p.PlantType)).Inc()
		}

	case event.PlantHarvested:
		var p event.HarvestPayloadV1
		if p, err = event.DecodePayload[event.HarvestPayloadV1](evt.Payload); err == nil {
			PlantsHarvested.WithLabelValues(string(p.PlantType)).Inc()
			GoldEarned.Add(float64(p.GoldEarned))
		}

	case event.VisitorArrived:
		var p event.VisitorPayloadV1
		if p, err = event.DecodePayload[event.VisitorPayloadV1](evt.Payload); err == nil {
			VisitorsArrived.WithLabelValues(string(p.Animal), strconv.FormatBool(p.IsRandom)).Inc()
		}

	case event.VisitorClaimed:
		var p event.VisitorPayloadV1
		if p, err = event.DecodePayload[event.VisitorPayloadV1](evt.Payload); err == nil {
			VisitorsClaimed.WithLabelValues(string(p.Animal), strconv.FormatBool(p.GiftGranted)).Inc()
		}

	case event.SeedsPurchased:
		var p event.SeedsPurchasedPayloadV1
		if p, err = event.DecodePayload[event.SeedsPurchasedPayloadV1](evt.Payload); err == nil {
			SeedsPurchased.WithLabelValues(string(p.PlantType)).Add(float64(p.Quantity))
			GoldSpent.Add(float64(p.Cost))
		}

	case event.MailReceived:
		MailReceived.Inc()

	case event.DailyRandomReset:
		DailyResets.Inc()
	}

	if err != nil {
		log.Debug(LogMsgEventPayloadDecodeErr, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
