package persistence

// Storage identity
const (
	// StorageKey names the single save slot every backend writes under
	StorageKey = "healing-garden-storage"

	// CurrentVersion is the schema version written by Encode
	CurrentVersion = 4
)

// Backend names, used as metric labels and config values
const (
	BackendMemory   = "memory"
	BackendGdata    = "gdata"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// Error messages
const (
	ErrMsgSaveNotFound    = "save not found"
	ErrMsgEncodeFailed    = "failed to encode garden state"
	ErrMsgDecodeFailed    = "failed to decode garden save"
	ErrMsgInvalidEnvelope = "invalid save envelope"
	ErrMsgStoreLoadFailed = "failed to load save"
	ErrMsgStoreSaveFailed = "failed to write save"
)

// Log messages
const (
	LogMsgSaveMigrated      = "Migrated garden save"
	LogMsgSaveFromFuture    = "Save was written by a newer version, loading as-is"
	LogMsgSaveQueued        = "Queued garden save"
	LogMsgSaveFailed        = "Failed to save garden"
	LogMsgSaved             = "Saved garden"
	LogMsgFlushStarted      = "Flushing garden saves"
	LogMsgTimestampReplaced = "Replaced unparseable timestamp"
)
