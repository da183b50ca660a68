package config

import "time"

// Environment variable names
const (
	EnvPort        = "PORT"
	EnvLogLevel    = "LOG_LEVEL"
	EnvLogFormat   = "LOG_FORMAT"
	EnvLogDir      = "LOG_DIR"
	EnvEnvironment = "ENVIRONMENT"
	EnvVersion     = "VERSION"

	EnvAPIKey         = "API_KEY"
	EnvTrustedProxies = "TRUSTED_PROXIES"

	EnvSaveBackend  = "SAVE_BACKEND"
	EnvGdataAppName = "GDATA_APP_NAME"
	EnvSQLitePath   = "SQLITE_PATH"

	EnvDBUser        = "DB_USER"
	EnvDBPassword    = "DB_PASSWORD"
	EnvDBHost        = "DB_HOST"
	EnvDBPort        = "DB_PORT"
	EnvDBName        = "DB_NAME"
	EnvDBMaxConns    = "DB_MAX_CONNS"
	EnvDBMaxIdleTime = "DB_MAX_IDLE_TIME"
	EnvDBMaxLifetime = "DB_MAX_LIFETIME"

	EnvCatalogPath = "CATALOG_PATH"
	EnvTimezone    = "GARDEN_TIMEZONE"

	EnvProfileCacheSize = "PROFILE_CACHE_SIZE"
	EnvProfileCacheTTL  = "PROFILE_CACHE_TTL"

	EnvWorkerCount      = "WORKER_COUNT"
	EnvWorkerQueueSize  = "WORKER_QUEUE_SIZE"
	EnvFollowUpDelay    = "FOLLOW_UP_DELAY"
	EnvAutosaveInterval = "AUTOSAVE_INTERVAL"

	EnvEventMaxRetries = "EVENT_MAX_RETRIES"
	EnvEventRetryDelay = "EVENT_RETRY_DELAY"
	EnvDeadLetterPath  = "EVENT_DEADLETTER_PATH"
)

// Defaults
const (
	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultLogDir      = "logs"
	DefaultEnvironment = "dev"
	DefaultVersion     = "dev"

	DefaultSaveBackend  = "gdata"
	DefaultGdataAppName = "healing_garden"
	DefaultSQLitePath   = "healing_garden.db"

	DefaultDBMaxConns    = 10
	DefaultDBMaxIdleTime = 5 * time.Minute
	DefaultDBMaxLifetime = 30 * time.Minute

	DefaultTimezone = ""

	DefaultProfileCacheSize = 256
	DefaultProfileCacheTTL  = 30 * time.Minute

	DefaultWorkerCount      = 2
	DefaultWorkerQueueSize  = 128
	DefaultFollowUpDelay    = 0
	DefaultAutosaveInterval = 5 * time.Minute

	DefaultEventMaxRetries = 3
	DefaultEventRetryDelay = 2 * time.Second
	DefaultDeadLetterPath  = "logs/deadletter.jsonl"
)
