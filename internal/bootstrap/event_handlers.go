package bootstrap

import (
	"log/slog"

	"github.com/osse101/HealingGarden_Go/internal/event"
	"github.com/osse101/HealingGarden_Go/internal/metrics"
	"github.com/osse101/HealingGarden_Go/internal/persistence"
)

// EventHandlerDependencies holds what the event subscribers need
type EventHandlerDependencies struct {
	EventBus event.Bus
	Saver    *persistence.Saver
}

// RegisterEventHandlers subscribes the metrics collector and the background
// saver to the bus
func RegisterEventHandlers(deps EventHandlerDependencies) {
	metrics.NewEventMetricsCollector().Register(deps.EventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.Saver != nil {
		deps.Saver.Register(deps.EventBus)
		slog.Info(LogMsgSaverRegistered)
	}
}
