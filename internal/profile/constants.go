package profile

// DefaultProfileID is used when a caller does not name a profile
const DefaultProfileID = "default"

// MaxProfileIDLength matches the width of the garden_saves key column
const MaxProfileIDLength = 100

// Log messages
const (
	LogMsgProfileOpened  = "Opened garden profile"
	LogMsgProfileEvicted = "Evicted garden profile"
	LogMsgEvictSaveFail  = "Failed to save evicted garden"
	LogMsgDailyReset     = "Reset daily random visits"
)
