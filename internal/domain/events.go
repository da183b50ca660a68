package domain

// Event type constants used for event bus subscriptions and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "plant.harvested")
const (
	// EventTypeStateChanged is published after every operation that mutated garden state
	EventTypeStateChanged = "garden.state_changed"

	// EventTypePlantPlanted is published when a seed is planted in a slot
	EventTypePlantPlanted = "plant.planted"

	// EventTypePlantWatered is published when a plant is watered
	EventTypePlantWatered = "plant.watered"

	// EventTypePlantHarvested is published when a plant is removed by harvesting
	EventTypePlantHarvested = "plant.harvested"

	// EventTypeVisitorArrived is published when a scripted or random visitor appears
	EventTypeVisitorArrived = "visitor.arrived"

	// EventTypeVisitorClaimed is published when a visitor's gift is claimed
	EventTypeVisitorClaimed = "visitor.claimed"

	// EventTypeMailReceived is published when a mail is added to the mailbox
	EventTypeMailReceived = "mail.received"

	// EventTypeSeedsPurchased is published when seeds are bought in the shop
	EventTypeSeedsPurchased = "shop.seeds_purchased"

	// EventTypeDailyRandomReset is published when the daily random-visit counter resets
	EventTypeDailyRandomReset = "visitor.daily_reset"
)
