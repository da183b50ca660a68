package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5}

// SaveLatencyBuckets are the histogram buckets for store writes
var SaveLatencyBuckets = []float64{.001, .005, .01, .05, .1, .5, 1, 5}

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)
)

// Garden Metrics
var (
	PlantsPlanted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlantsPlanted,
			Help: HelpTextPlantsPlanted,
		},
		[]string{LabelPlant},
	)

	PlantsWatered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlantsWatered,
			Help: HelpTextPlantsWatered,
		},
		[]string{LabelPlant},
	)

	PlantsHarvested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlantsHarvested,
			Help: HelpTextPlantsHarvested,
		},
		[]string{LabelPlant},
	)

	GoldEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGoldEarned,
			Help: HelpTextGoldEarned,
		},
	)

	GoldSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGoldSpent,
			Help: HelpTextGoldSpent,
		},
	)

	SeedsPurchased = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSeedsPurchased,
			Help: HelpTextSeedsPurchased,
		},
		[]string{LabelPlant},
	)

	VisitorsArrived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameVisitorsArrived,
			Help: HelpTextVisitorsArrived,
		},
		[]string{LabelAnimal, LabelRandom},
	)

	VisitorsClaimed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameVisitorsClaimed,
			Help: HelpTextVisitorsClaimed,
		},
		[]string{LabelAnimal, LabelGranted},
	)

	MailReceived = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMailReceived,
			Help: HelpTextMailReceived,
		},
	)

	DailyResets = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDailyResets,
			Help: HelpTextDailyResets,
		},
	)

	ActiveProfiles = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameActiveProfiles,
			Help: HelpTextActiveProfiles,
		},
	)
)

// Persistence Metrics
var (
	SavesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSavesTotal,
			Help: HelpTextSavesTotal,
		},
		[]string{LabelBackend, LabelResult},
	)

	SaveDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameSaveDuration,
			Help:    HelpTextSaveDuration,
			Buckets: SaveLatencyBuckets,
		},
		[]string{LabelBackend},
	)

	LoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLoadsTotal,
			Help: HelpTextLoadsTotal,
		},
		[]string{LabelBackend, LabelResult},
	)

	MigrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMigrationsTotal,
			Help: HelpTextMigrationsTotal,
		},
		[]string{LabelFrom},
	)
)
