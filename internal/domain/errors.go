package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Resource errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgNoWater           = "no water left"
	ErrMsgInvalidAmount     = "amount must be positive"

	// Planting errors
	ErrMsgInvalidSlot   = "invalid slot index"
	ErrMsgSlotOccupied  = "slot is already occupied"
	ErrMsgUnknownPlant  = "unknown plant type"
	ErrMsgNoSeeds       = "no seeds of that type"
	ErrMsgPlantNotFound = "plant not found"
	ErrMsgPlantNotRipe  = "plant is not ripe yet"
	ErrMsgNotBuyable    = "seed is not sold in the shop"

	// Visitor errors
	ErrMsgUnknownAnimal     = "unknown animal type"
	ErrMsgVisitorNotPresent = "visitor is not present"

	// Mail errors
	ErrMsgMailNotFound  = "mail not found"
	ErrMsgNoReward      = "mail has no reward"
	ErrMsgRewardClaimed = "reward already claimed"

	// Decoration errors
	ErrMsgDecorationNotOwned = "decoration not owned"

	// Input errors
	ErrMsgInvalidInput     = "invalid input"
	ErrMsgInvalidProfileID = "invalid profile id"
)

// Common domain errors
// These errors are expected, recoverable conditions: the operation that returns one
// has not mutated any state. Callers check them with errors.Is.
var (
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrNoWater           = errors.New(ErrMsgNoWater)
	ErrInvalidAmount     = errors.New(ErrMsgInvalidAmount)

	ErrInvalidSlot   = errors.New(ErrMsgInvalidSlot)
	ErrSlotOccupied  = errors.New(ErrMsgSlotOccupied)
	ErrUnknownPlant  = errors.New(ErrMsgUnknownPlant)
	ErrNoSeeds       = errors.New(ErrMsgNoSeeds)
	ErrPlantNotFound = errors.New(ErrMsgPlantNotFound)
	ErrPlantNotRipe  = errors.New(ErrMsgPlantNotRipe)
	ErrNotBuyable    = errors.New(ErrMsgNotBuyable)

	ErrUnknownAnimal     = errors.New(ErrMsgUnknownAnimal)
	ErrVisitorNotPresent = errors.New(ErrMsgVisitorNotPresent)

	ErrMailNotFound  = errors.New(ErrMsgMailNotFound)
	ErrNoReward      = errors.New(ErrMsgNoReward)
	ErrRewardClaimed = errors.New(ErrMsgRewardClaimed)

	ErrDecorationNotOwned = errors.New(ErrMsgDecorationNotOwned)

	ErrInvalidInput     = errors.New(ErrMsgInvalidInput)
	ErrInvalidProfileID = errors.New(ErrMsgInvalidProfileID)
)
