package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/HealingGarden_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// ProfileID returns the profile the event belongs to, if tagged
func (e Event) ProfileID() string {
	id, _ := e.GetMetadataValue(MetadataKeyProfileID).(string)
	return id
}

// Garden event types
const (
	StateChanged     Type = domain.EventTypeStateChanged
	PlantPlanted     Type = domain.EventTypePlantPlanted
	PlantWatered     Type = domain.EventTypePlantWatered
	PlantHarvested   Type = domain.EventTypePlantHarvested
	VisitorArrived   Type = domain.EventTypeVisitorArrived
	VisitorClaimed   Type = domain.EventTypeVisitorClaimed
	MailReceived     Type = domain.EventTypeMailReceived
	SeedsPurchased   Type = domain.EventTypeSeedsPurchased
	DailyRandomReset Type = domain.EventTypeDailyRandomReset
)

// Typed event payloads for type safety

// StateChangedPayloadV1 is published after any mutating engine operation
type StateChangedPayloadV1 struct {
	Operation string `json:"operation"`
	Timestamp int64  `json:"timestamp"`
}

// PlantPayloadV1 is the payload for planting and watering events
type PlantPayloadV1 struct {
	PlantID    string           `json:"plant_id"`
	PlantType  domain.PlantType `json:"plant_type"`
	SlotIndex  int              `json:"slot_index"`
	WaterCount int              `json:"water_count"`
}

// HarvestPayloadV1 is the payload for harvest events
type HarvestPayloadV1 struct {
	PlantID    string           `json:"plant_id"`
	PlantType  domain.PlantType `json:"plant_type"`
	GoldEarned int              `json:"gold_earned"`
	NewEntry   bool             `json:"new_entry"`
}

// VisitorPayloadV1 is the payload for visitor arrival and claim events
type VisitorPayloadV1 struct {
	Animal      domain.AnimalType `json:"animal"`
	IsRandom    bool              `json:"is_random"`
	GiftGranted bool              `json:"gift_granted,omitempty"`
}

// MailPayloadV1 is the payload for mail events
type MailPayloadV1 struct {
	MailID string `json:"mail_id"`
	Title  string `json:"title"`
}

// SeedsPurchasedPayloadV1 is the payload for shop purchases
type SeedsPurchasedPayloadV1 struct {
	PlantType domain.PlantType `json:"plant_type"`
	Quantity  int              `json:"quantity"`
	Cost      int              `json:"cost"`
}

// DailyResetPayloadV1 is the payload for the daily random-visit reset
type DailyResetPayloadV1 struct {
	PreviousDate string `json:"previous_date"`
	Date         string `json:"date"`
}

// New creates a versioned event tagged with the owning profile
func New(t Type, profileID string, payload interface{}) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: payload,
		Metadata: map[string]interface{}{
			MetadataKeyProfileID: profileID,
		},
	}
}

// NewStateChangedEvent creates a state-changed event for a profile
func NewStateChangedEvent(profileID, operation string, at time.Time) Event {
	return New(StateChanged, profileID, StateChangedPayloadV1{
		Operation: operation,
		Timestamp: at.Unix(),
	})
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously in subscription order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
