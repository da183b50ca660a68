package handler

// Generic HTTP error messages for client responses. They do not expose
// internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgGenericServerError    = "Something went wrong"
)

// User-facing messages for domain errors
const (
	ErrMsgNotEnoughGold       = "Not enough gold"
	ErrMsgNoWaterLeft         = "No water left. It refills over time."
	ErrMsgInvalidAmountError  = "Amount must be positive"
	ErrMsgInvalidSlotError    = "That garden slot does not exist"
	ErrMsgSlotOccupiedError   = "That slot already has a plant"
	ErrMsgUnknownPlantError   = "Unknown plant"
	ErrMsgNoSeedsError        = "You have no seeds of that type"
	ErrMsgPlantNotFoundError  = "Plant not found"
	ErrMsgPlantNotRipeError   = "That plant is not ready to harvest"
	ErrMsgNotBuyableError     = "That seed is not sold in the shop"
	ErrMsgUnknownAnimalError  = "Unknown animal"
	ErrMsgVisitorGoneError    = "That visitor is not in the garden"
	ErrMsgMailNotFoundError   = "Mail not found"
	ErrMsgNoRewardError       = "That mail has no reward"
	ErrMsgRewardClaimedError  = "That reward was already claimed"
	ErrMsgDecorationNotOwned  = "You do not own that decoration"
	ErrMsgInvalidProfileError = "Invalid profile id"
)

// Success messages
const (
	MsgMailRead        = "Mail marked as read"
	MsgSettingsUpdated = "Settings updated"
)
