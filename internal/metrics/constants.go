package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished = "events_published_total"
)

// Garden metric names
const (
	MetricNamePlantsPlanted   = "garden_plants_planted_total"
	MetricNamePlantsWatered   = "garden_plants_watered_total"
	MetricNamePlantsHarvested = "garden_plants_harvested_total"
	MetricNameGoldEarned      = "garden_gold_earned_total"
	MetricNameGoldSpent       = "garden_gold_spent_total"
	MetricNameSeedsPurchased  = "garden_seeds_purchased_total"
	MetricNameVisitorsArrived = "garden_visitors_arrived_total"
	MetricNameVisitorsClaimed = "garden_visitors_claimed_total"
	MetricNameMailReceived    = "garden_mail_received_total"
	MetricNameDailyResets     = "garden_daily_resets_total"
	MetricNameActiveProfiles  = "garden_active_profiles"
	MetricNameSavesTotal      = "garden_saves_total"
	MetricNameSaveDuration    = "garden_save_duration_seconds"
	MetricNameLoadsTotal      = "garden_loads_total"
	MetricNameMigrationsTotal = "garden_migrations_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished = "Total number of events published"
)

// Garden metric help text
const (
	HelpTextPlantsPlanted   = "Total number of seeds planted"
	HelpTextPlantsWatered   = "Total number of waterings"
	HelpTextPlantsHarvested = "Total number of plants harvested"
	HelpTextGoldEarned      = "Total gold earned from harvests"
	HelpTextGoldSpent       = "Total gold spent in the shop"
	HelpTextSeedsPurchased  = "Total number of seeds bought in the shop"
	HelpTextVisitorsArrived = "Total number of visitor arrivals"
	HelpTextVisitorsClaimed = "Total number of visitor gifts claimed"
	HelpTextMailReceived    = "Total number of mails delivered"
	HelpTextDailyResets     = "Total number of daily random-visit resets"
	HelpTextActiveProfiles  = "Number of garden engines held in memory"
	HelpTextSavesTotal      = "Total number of save attempts"
	HelpTextSaveDuration    = "Save latency in seconds"
	HelpTextLoadsTotal      = "Total number of save loads"
	HelpTextMigrationsTotal = "Total number of save blobs migrated from an older version"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelPlant   = "plant"
	LabelAnimal  = "animal"
	LabelRandom  = "random"
	LabelGranted = "granted"
	LabelBackend = "backend"
	LabelResult  = "result"
	LabelFrom    = "from_version"
)

// Label values
const (
	ResultSuccess  = "success"
	ResultError    = "error"
	ResultNotFound = "not_found"
	ResultFallback = "fallback"
)

// Log messages
const (
	LogMsgMetricsRecorded       = "Metrics recorded for event"
	LogMsgEventPayloadDecodeErr = "Event payload could not be decoded for metrics"
)
