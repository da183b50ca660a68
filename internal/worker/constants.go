package worker

import "time"

// ============================================================================
// Pool configuration
// ============================================================================

// DefaultJobTimeout bounds a single job run
const DefaultJobTimeout = 30 * time.Second

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// Log messages for pool and scheduler operations
const (
	LogMsgWorkerJobFailed    = "Worker job failed"
	LogMsgDeferredJobDropped = "Deferred job dropped"
	LogMsgDeferredStopped    = "Deferred scheduler stopped"
)

// ============================================================================
// Daily Reset Worker
// ============================================================================

// Scheduling windows for the daily reset
const (
	StandbyThreshold = time.Hour
	StandbyLead      = 45 * time.Minute
	JitterTolerance  = 10 * time.Second
)

// Log messages for daily reset worker operations
const (
	LogMsgDailyResetStarting      = "Daily reset starting"
	LogMsgDailyResetCompleted     = "Daily reset completed"
	LogMsgDailyResetFailed        = "Daily reset failed"
	LogMsgDailyResetStandby       = "Daily reset standby"
	LogMsgDailyResetScheduled     = "Daily reset scheduled"
	LogMsgDailyResetManualTrigger = "Daily reset manually triggered"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount      = 2
	TestQueueSize        = 10
	TestExpectedJobCount = 2
)
