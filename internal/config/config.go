package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port      int    `validate:"min=1,max=65535"`
	LogLevel  string `validate:"oneof=debug info warn warning error"`
	LogFormat string `validate:"oneof=text json"`
	// LogDir receives a session log file next to stdout. Empty disables it.
	LogDir      string
	Environment string `validate:"required"`
	Version     string

	// APIKey protects the API when set. Local single-player setups leave it empty.
	APIKey         string
	TrustedProxies []string

	SaveBackend  string `validate:"oneof=memory gdata postgres sqlite"`
	GdataAppName string `validate:"required_if=SaveBackend gdata"`
	SQLitePath   string `validate:"required_if=SaveBackend sqlite"`

	DBUser        string
	DBPassword    string
	DBHost        string
	DBPort        string
	DBName        string
	DBMaxConns    int           `validate:"min=1"`
	DBMaxIdleTime time.Duration `validate:"min=0"`
	DBMaxLifetime time.Duration `validate:"min=0"`

	CatalogPath string
	Timezone    string `validate:"omitempty,timezone"`

	ProfileCacheSize int           `validate:"min=1"`
	ProfileCacheTTL  time.Duration `validate:"min=0"`

	WorkerCount     int           `validate:"min=1"`
	WorkerQueueSize int           `validate:"min=1"`
	FollowUpDelay   time.Duration `validate:"min=0"`
	// AutosaveInterval writes every open garden periodically. Zero disables it.
	AutosaveInterval time.Duration `validate:"min=0"`

	EventMaxRetries int `validate:"min=0"`
	EventRetryDelay time.Duration
	DeadLetterPath  string `validate:"required"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// A missing .env file is fine, the values may come from the real environment
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		LogDir:      getEnv(EnvLogDir, DefaultLogDir),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		Version:     getEnv(EnvVersion, DefaultVersion),

		APIKey:         getEnv(EnvAPIKey, ""),
		TrustedProxies: getEnvAsList(EnvTrustedProxies),

		SaveBackend:  strings.ToLower(getEnv(EnvSaveBackend, DefaultSaveBackend)),
		GdataAppName: getEnv(EnvGdataAppName, DefaultGdataAppName),
		SQLitePath:   getEnv(EnvSQLitePath, DefaultSQLitePath),

		DBUser:        getEnv(EnvDBUser, "postgres"),
		DBPassword:    getEnv(EnvDBPassword, "postgres"),
		DBHost:        getEnv(EnvDBHost, "localhost"),
		DBPort:        getEnv(EnvDBPort, "5432"),
		DBName:        getEnv(EnvDBName, "healing_garden"),
		DBMaxConns:    getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		DBMaxIdleTime: getEnvAsDuration(EnvDBMaxIdleTime, DefaultDBMaxIdleTime),
		DBMaxLifetime: getEnvAsDuration(EnvDBMaxLifetime, DefaultDBMaxLifetime),

		CatalogPath: getEnv(EnvCatalogPath, ""),
		Timezone:    getEnv(EnvTimezone, DefaultTimezone),

		ProfileCacheSize: getEnvAsInt(EnvProfileCacheSize, DefaultProfileCacheSize),
		ProfileCacheTTL:  getEnvAsDuration(EnvProfileCacheTTL, DefaultProfileCacheTTL),

		WorkerCount:      getEnvAsInt(EnvWorkerCount, DefaultWorkerCount),
		WorkerQueueSize:  getEnvAsInt(EnvWorkerQueueSize, DefaultWorkerQueueSize),
		FollowUpDelay:    getEnvAsDuration(EnvFollowUpDelay, DefaultFollowUpDelay),
		AutosaveInterval: getEnvAsDuration(EnvAutosaveInterval, DefaultAutosaveInterval),

		EventMaxRetries: getEnvAsInt(EnvEventMaxRetries, DefaultEventMaxRetries),
		EventRetryDelay: getEnvAsDuration(EnvEventRetryDelay, DefaultEventRetryDelay),
		DeadLetterPath:  getEnv(EnvDeadLetterPath, DefaultDeadLetterPath),
	}

	port, err := strconv.Atoi(getEnv(EnvPort, DefaultPort))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field ranges and backend-specific requirements
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Location resolves the configured garden time zone. An empty value means
// the host time zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "local") {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// getEnv retrieves an environment variable or returns a default value when it
// is unset or empty
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}
