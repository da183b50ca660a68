package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/HealingGarden_Go/internal/logger"
)

// DailyResetter resets the random-visit counters of every live garden
type DailyResetter interface {
	ResetDailyRandomVisits(ctx context.Context) (int, error)
}

// DailyResetWorker runs the daily random-visit reset at local midnight.
// Engines also reset lazily on their next visitor check; this keeps idle
// profiles and their saves current across the date change.
type DailyResetWorker struct {
	resetter DailyResetter
	location *time.Location
	now      func() time.Time
	timer    *time.Timer
	shutdown chan struct{}
	wg       sync.WaitGroup
	mu       sync.Mutex
}

// NewDailyResetWorker creates a new DailyResetWorker for the given time zone
func NewDailyResetWorker(resetter DailyResetter, location *time.Location) *DailyResetWorker {
	if location == nil {
		location = time.Local
	}
	return &DailyResetWorker{
		resetter: resetter,
		location: location,
		now:      time.Now,
		shutdown: make(chan struct{}),
	}
}

// Start initializes the worker and schedules the first reset
func (w *DailyResetWorker) Start() {
	w.scheduleNext()
}

// scheduleNext calculates the time until next local midnight and schedules the reset
func (w *DailyResetWorker) scheduleNext() {
	duration := timeUntilNextReset(w.now(), w.location)
	log := logger.FromContext(context.Background())

	w.mu.Lock()
	defer w.mu.Unlock()

	select {
	case <-w.shutdown:
		return
	default:
	}

	if w.timer != nil {
		w.timer.Stop()
	}

	// Two-stage scheduling to prevent tight-loop rescheduling caused by early triggers
	if duration > StandbyThreshold {
		waitDuration := duration - StandbyLead
		w.timer = time.AfterFunc(waitDuration, w.scheduleNext)
		log.Info(LogMsgDailyResetStandby, "next_check_at", w.now().Add(waitDuration))
		return
	}

	w.timer = time.AfterFunc(duration, func() {
		select {
		case <-w.shutdown:
			return
		default:
		}

		// Fired early because of timer jitter: wait out the remainder
		rem := timeUntilNextReset(w.now(), w.location)
		if rem > JitterTolerance && rem < 23*time.Hour {
			w.scheduleNext()
			return
		}

		w.executeReset()
		w.scheduleNext()
	})
	log.Info(LogMsgDailyResetScheduled, "next_reset_at", w.now().Add(duration))
}

// TriggerReset runs a reset immediately and waits for it
func (w *DailyResetWorker) TriggerReset(ctx context.Context) (int, error) {
	logger.FromContext(ctx).Info(LogMsgDailyResetManualTrigger)
	return w.resetter.ResetDailyRandomVisits(ctx)
}

// executeReset performs the daily reset in a tracked goroutine
func (w *DailyResetWorker) executeReset() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		ctx := context.Background()
		log := logger.FromContext(ctx)
		log.Info(LogMsgDailyResetStarting)

		n, err := w.resetter.ResetDailyRandomVisits(ctx)
		if err != nil {
			log.Error(LogMsgDailyResetFailed, "error", err)
			return
		}
		log.Info(LogMsgDailyResetCompleted, "profiles_reset", n)
	}()
}

// Shutdown cancels the pending timer and waits for any in-flight reset
func (w *DailyResetWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)

	w.mu.Lock()
	select {
	case <-w.shutdown:
	default:
		close(w.shutdown)
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info("Daily reset worker shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn("Daily reset worker shutdown timeout, a reset may still be running")
		return ctx.Err()
	}
}

// timeUntilNextReset calculates the duration until the next local midnight in loc
func timeUntilNextReset(now time.Time, loc *time.Location) time.Duration {
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	if !next.After(local) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(local)
}
