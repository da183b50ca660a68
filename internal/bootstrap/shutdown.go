package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/HealingGarden_Go/internal/event"
	"github.com/osse101/HealingGarden_Go/internal/profile"
	"github.com/osse101/HealingGarden_Go/internal/scheduler"
	"github.com/osse101/HealingGarden_Go/internal/server"
	"github.com/osse101/HealingGarden_Go/internal/sse"
	"github.com/osse101/HealingGarden_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	EventHub           *sse.Hub
	Server             *server.Server
	DailyResetWorker   *worker.DailyResetWorker
	Scheduler          *worker.DelayedScheduler
	Recurring          *scheduler.Scheduler
	Registry           *profile.Registry
	Pool               *worker.Pool
	ResilientPublisher *event.ResilientPublisher
	Storage            *Storage
}

// GracefulShutdown stops the application in dependency order:
//  1. event streams are closed, then the HTTP server, so no new requests mutate gardens
//  2. timers (daily reset, deferred follow-ups, autosave)
//  3. open gardens are saved synchronously
//  4. worker pool drains queued saves
//  5. event publisher flushes pending retries
//  6. save storage is closed
//
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	// Open streams would otherwise hold the server's Shutdown until its deadline
	if c.EventHub != nil {
		c.EventHub.Stop()
	}
	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.DailyResetWorker != nil {
		shutdownComponent(ctx, "daily reset worker", c.DailyResetWorker)
	}
	if c.Scheduler != nil {
		shutdownComponent(ctx, "deferred scheduler", c.Scheduler)
	}
	if c.Recurring != nil {
		c.Recurring.Stop()
	}

	if c.Registry != nil {
		slog.Info(LogMsgFlushingGardens, "open", c.Registry.Len())
		if err := c.Registry.Close(ctx); err != nil {
			slog.Error(LogMsgRegistryCloseFailed, "error", err)
		}
	}

	if c.Pool != nil {
		c.Pool.Stop()
	}

	if c.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := c.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if c.Storage != nil {
		if err := c.Storage.Close(); err != nil {
			slog.Error(LogMsgStorageCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}

type shutdownable interface {
	Shutdown(context.Context) error
}

func shutdownComponent(ctx context.Context, name string, c shutdownable) {
	if err := c.Shutdown(ctx); err != nil {
		slog.Error(LogMsgComponentShutdownFailed, "component", name, "error", err)
	}
}
