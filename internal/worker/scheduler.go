package worker

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/HealingGarden_Go/internal/logger"
)

// DelayedScheduler hands jobs to a Pool after a fixed delay. Engines use it
// for the random-visitor check that follows a visitor claim.
// With a zero delay jobs go straight to the pool.
type DelayedScheduler struct {
	pool  *Pool
	delay time.Duration

	mu     sync.Mutex
	timers map[uuid.UUID]*time.Timer
	closed bool
}

// NewDelayedScheduler creates a scheduler in front of pool
func NewDelayedScheduler(pool *Pool, delay time.Duration) *DelayedScheduler {
	return &DelayedScheduler{
		pool:   pool,
		delay:  delay,
		timers: make(map[uuid.UUID]*time.Timer),
	}
}

// Schedule queues job to run after the configured delay
func (s *DelayedScheduler) Schedule(job Job) error {
	if s.delay <= 0 {
		return s.pool.TryEnqueue(job)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrPoolStopped
	}

	id := uuid.New()
	s.timers[id] = time.AfterFunc(s.delay, func() { s.fire(id, job) })
	return nil
}

func (s *DelayedScheduler) fire(id uuid.UUID, job Job) {
	s.mu.Lock()
	_, live := s.timers[id]
	delete(s.timers, id)
	s.mu.Unlock()
	if !live {
		return
	}
	if err := s.pool.TryEnqueue(job); err != nil {
		logger.Warn(LogMsgDeferredJobDropped, "error", err)
	}
}

// Pending returns the number of jobs still waiting on their delay
func (s *DelayedScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Shutdown cancels jobs that have not fired yet. Jobs already handed to the
// pool are left to the pool's own shutdown.
func (s *DelayedScheduler) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	cancelled := len(s.timers)
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
	logger.FromContext(ctx).Info(LogMsgDeferredStopped, "cancelled", cancelled)
	return nil
}
