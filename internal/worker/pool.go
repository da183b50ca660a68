package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/osse101/HealingGarden_Go/internal/logger"
)

// Pool errors
var (
	ErrQueueFull   = errors.New("job queue is full")
	ErrPoolStopped = errors.New("worker pool is stopped")
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to the Job interface
type JobFunc func(ctx context.Context) error

// Process calls f(ctx)
func (f JobFunc) Process(ctx context.Context) error {
	return f(ctx)
}

// Pool represents a worker pool
type Pool struct {
	workers    int
	jobQueue   chan Job
	jobTimeout time.Duration
	wg         sync.WaitGroup
	quit       chan struct{}

	mu       sync.RWMutex
	stopped  bool
	stopOnce sync.Once
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	return &Pool{
		workers:    workers,
		jobQueue:   make(chan Job, queueSize),
		jobTimeout: DefaultJobTimeout,
		quit:       make(chan struct{}),
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker is the worker loop. On stop it drains what is already queued.
func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			p.run(job)
		case <-p.quit:
			p.drain()
			return
		}
	}
}

func (p *Pool) drain() {
	for {
		select {
		case job := <-p.jobQueue:
			p.run(job)
		default:
			return
		}
	}
}

func (p *Pool) run(job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), p.jobTimeout)
	defer cancel()
	if err := job.Process(ctx); err != nil {
		logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "error", err)
	}
}

// Enqueue adds a job to the queue, blocking while the queue is full
func (p *Pool) Enqueue(job Job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return ErrPoolStopped
	}

	select {
	case p.jobQueue <- job:
		return nil
	case <-p.quit:
		return ErrPoolStopped
	}
}

// TryEnqueue adds a job without blocking. It returns ErrQueueFull when the queue is full.
func (p *Pool) TryEnqueue(job Job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return ErrPoolStopped
	}

	select {
	case p.jobQueue <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Schedule queues a deferred job without blocking the caller
func (p *Pool) Schedule(job Job) error {
	return p.TryEnqueue(job)
}

// Pending returns the number of queued jobs
func (p *Pool) Pending() int {
	return len(p.jobQueue)
}

// Stop stops the workers after the queued jobs have run
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.quit)

		p.mu.Lock()
		p.stopped = true
		p.mu.Unlock()

		p.wg.Wait()
		// Jobs that slipped in after the workers drained
		p.drain()
	})
}
