package logger

// Levels accepted by NewConfig. "warning" is read as warn.
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Output formats
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

const (
	DefaultServiceName = "healing-garden"
	DefaultVersion     = "dev"
	ProductionVersion  = "1.0.0"
)

// Deployment environments. A device build runs as dev; the cloud save service
// runs as prod.
const (
	EnvironmentDev        = "dev"
	EnvironmentProduction = "prod"
)

// Attribute keys attached to every record or by the request middleware
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
	AttrKeyProfileID   = "profile_id"
)
