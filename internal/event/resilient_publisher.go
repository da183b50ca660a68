package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/HealingGarden_Go/internal/logger"
)

// ResilientPublisher wraps an event Bus with background retries and a dead-letter file.
// Save handlers subscribed to state-changed events can fail transiently (queue full,
// store offline); the publisher keeps the mutation path from ever seeing those errors.
type ResilientPublisher struct {
	inner      Bus
	maxRetries int
	baseDelay  time.Duration
	deadLetter *DeadLetterWriter

	wg       sync.WaitGroup
	shutdown chan struct{}
	once     sync.Once
}

// NewResilientPublisher creates a publisher that dead-letters to deadLetterPath
func NewResilientPublisher(inner Bus, maxRetries int, baseDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dlw, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open dead letter file: %w", err)
	}
	return &ResilientPublisher{
		inner:      inner,
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
		deadLetter: dlw,
		shutdown:   make(chan struct{}),
	}, nil
}

// Publish implements Bus. Failures are retried in the background and never returned.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	p.PublishWithRetry(ctx, event)
	return nil
}

// PublishWithRetry publishes once synchronously and schedules retries on failure
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed,
		"event_type", event.Type,
		"error", err)

	select {
	case <-p.shutdown:
		p.writeDeadLetter(event, 1, err)
		return
	default:
	}

	p.wg.Add(1)
	go p.retryLoop(event, err)
}

func (p *ResilientPublisher) retryLoop(event Event, lastErr error) {
	defer p.wg.Done()

	// Detached context: the request that published the event may already be gone
	ctx := context.Background()
	attempts := 1

	for attempt := 1; attempt <= p.maxRetries; attempt++ {
		timer := time.NewTimer(CalculateRetryDelay(p.baseDelay, attempt))
		select {
		case <-timer.C:
		case <-p.shutdown:
			timer.Stop()
			p.writeDeadLetter(event, attempts, lastErr)
			return
		}

		attempts++
		if lastErr = p.inner.Publish(ctx, event); lastErr == nil {
			logger.Info(LogMsgEventRetrySucceeded, "event_type", event.Type, "attempt", attempt)
			return
		}
		logger.Warn(LogMsgEventRetryFailed, "event_type", event.Type, "attempt", attempt, "error", lastErr)
	}

	logger.Error(LogMsgEventRetryExhausted, "event_type", event.Type, "attempts", attempts)
	p.writeDeadLetter(event, attempts, lastErr)
}

func (p *ResilientPublisher) writeDeadLetter(event Event, attempts int, lastErr error) {
	if err := p.deadLetter.Write(event, attempts, lastErr); err != nil {
		logger.Error(LogMsgDeadLetterFailed, "event_type", event.Type, "error", err)
	}
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

// Shutdown stops pending retries, dead-lettering their events, and closes the file
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.once.Do(func() { close(p.shutdown) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return p.deadLetter.Close()
	case <-ctx.Done():
		return fmt.Errorf("resilient publisher shutdown: %w", ctx.Err())
	}
}
