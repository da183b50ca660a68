package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/osse101/HealingGarden_Go/docs"
	"github.com/osse101/HealingGarden_Go/internal/bootstrap"
	"github.com/osse101/HealingGarden_Go/internal/config"
	"github.com/osse101/HealingGarden_Go/internal/garden"
	"github.com/osse101/HealingGarden_Go/internal/handler"
	"github.com/osse101/HealingGarden_Go/internal/persistence"
	"github.com/osse101/HealingGarden_Go/internal/profile"
	"github.com/osse101/HealingGarden_Go/internal/scheduler"
	"github.com/osse101/HealingGarden_Go/internal/server"
	"github.com/osse101/HealingGarden_Go/internal/sse"
	"github.com/osse101/HealingGarden_Go/internal/worker"
)

const shutdownTimeout = 15 * time.Second

// @title Healing Garden API
// @version 1.0
// @description Progression and persistence engine for the Healing Garden idle game.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logCloser, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to setup logger: %v", err)
	}
	defer logCloser.Close()

	if err := run(cfg); err != nil {
		slog.Error("Application failed", "error", err)
		logCloser.Close()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()

	for _, w := range cfg.Warnings() {
		slog.Warn(bootstrap.LogMsgConfigWarning, "warning", w)
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	cat, err := bootstrap.LoadCatalog(cfg)
	if err != nil {
		return err
	}

	storage, err := bootstrap.OpenStorage(ctx, cfg)
	if err != nil {
		return err
	}
	repo := persistence.NewRepository(storage.Store, persistence.WithLocation(loc))

	pool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	pool.Start()
	deferred := worker.NewDelayedScheduler(pool, cfg.FollowUpDelay)

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		pool.Stop()
		storage.Close()
		return err
	}

	saver := persistence.NewSaver(repo, pool)
	bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus: bus,
		Saver:    saver,
	})

	registry := profile.NewRegistry(cat, repo, saver, cfg.ProfileCacheSize, cfg.ProfileCacheTTL,
		garden.WithBus(publisher),
		garden.WithScheduler(deferred),
		garden.WithLocation(loc),
	)
	// Opening only loads the garden. Visits are counted by the foreground
	// route, so a reader of a brand-new garden just gets the welcome mail.
	registry.OnOpen(func(ctx context.Context, e *garden.Engine) {
		e.InitFirstVisitMail(ctx)
	})

	dailyReset := worker.NewDailyResetWorker(registry, loc)
	dailyReset.Start()

	recurring := scheduler.New(pool)
	recurring.Every("autosave", cfg.AutosaveInterval, worker.JobFunc(saver.Flush))

	hub := sse.NewHub()
	hub.Start()
	sse.NewSubscriber(hub, bus).Subscribe()

	gardenHandler := handler.NewGardenHandler(registry, cat)
	gardenHandler.StreamEvents(hub)

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Backend:        storage.Store.Name(),
		Pinger:         storage.Pinger,
		Garden:         gardenHandler,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var runErr error
	select {
	case <-stop:
	case runErr = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		EventHub:           hub,
		Server:             srv,
		DailyResetWorker:   dailyReset,
		Scheduler:          deferred,
		Recurring:          recurring,
		Registry:           registry,
		Pool:               pool,
		ResilientPublisher: publisher,
		Storage:            storage,
	})
	return runErr
}
