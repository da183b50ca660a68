// Package scheduler runs recurring jobs, such as the periodic autosave, on the worker pool
package scheduler

import (
	"sync"
	"time"

	"github.com/osse101/HealingGarden_Go/internal/logger"
	"github.com/osse101/HealingGarden_Go/internal/worker"
)

// Log messages
const (
	LogMsgJobScheduled = "Recurring job scheduled"
	LogMsgJobSkipped   = "Recurring job skipped, worker queue busy"
)

// Queue accepts jobs without blocking
type Queue interface {
	TryEnqueue(job worker.Job) error
}

// Scheduler enqueues jobs at fixed intervals
type Scheduler struct {
	queue    Queue
	quit     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a scheduler that feeds queue
func New(queue Queue) *Scheduler {
	return &Scheduler{
		queue: queue,
		quit:  make(chan struct{}),
	}
}

// Every enqueues job once per interval until Stop. A tick that finds the
// queue full is skipped; the next one tries again. A non-positive interval
// disables the job.
func (s *Scheduler) Every(name string, interval time.Duration, job worker.Job) {
	if interval <= 0 {
		return
	}
	logger.Info(LogMsgJobScheduled, "job", name, "interval", interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := s.queue.TryEnqueue(job); err != nil {
					logger.Warn(LogMsgJobSkipped, "job", name, "error", err)
				}
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all recurring jobs. Jobs already queued still run.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.quit)
		s.wg.Wait()
	})
}
