package persistence

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/osse101/HealingGarden_Go/internal/domain"
	"github.com/osse101/HealingGarden_Go/internal/logger"
	"github.com/osse101/HealingGarden_Go/internal/metrics"
)

// Repository reads and writes garden states through a Store. It implements
// garden.StateLoader.
type Repository struct {
	store Store
	codec *Codec
	now   func() time.Time
}

// RepositoryOption configures a Repository
type RepositoryOption func(*Repository)

// WithNow replaces the time source used for migration defaults
func WithNow(now func() time.Time) RepositoryOption {
	return func(r *Repository) { r.now = now }
}

// WithLocation sets the time zone of backfilled calendar dates
func WithLocation(loc *time.Location) RepositoryOption {
	return func(r *Repository) { r.codec = NewCodec(loc) }
}

// NewRepository creates a Repository over store
func NewRepository(store Store, opts ...RepositoryOption) *Repository {
	r := &Repository{
		store: store,
		codec: NewCodec(nil),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Backend returns the store's name
func (r *Repository) Backend() string {
	return r.store.Name()
}

// Store returns the underlying store
func (r *Repository) Store() Store {
	return r.store
}

// LoadState loads and migrates a profile's save. A profile without a save
// yields (nil, nil).
func (r *Repository) LoadState(ctx context.Context, profileID string) (*domain.GardenState, error) {
	d, err := r.Load(ctx, profileID)
	if err != nil || d == nil {
		return nil, err
	}
	return d.State, nil
}

// Load is LoadState with the migration details
func (r *Repository) Load(ctx context.Context, profileID string) (*Decoded, error) {
	log := logger.ForProfile(ctx, profileID)
	backend := r.store.Name()

	data, err := r.store.Load(ctx, profileID)
	if errors.Is(err, ErrNotFound) {
		metrics.LoadsTotal.WithLabelValues(backend, metrics.ResultNotFound).Inc()
		return nil, nil
	}
	if err != nil {
		metrics.LoadsTotal.WithLabelValues(backend, metrics.ResultError).Inc()
		return nil, fmt.Errorf("%s %s: %w", ErrMsgStoreLoadFailed, profileID, err)
	}

	d, err := r.codec.Decode(data, r.now())
	if err != nil {
		metrics.LoadsTotal.WithLabelValues(backend, metrics.ResultError).Inc()
		return nil, fmt.Errorf("profile %s: %w", profileID, err)
	}
	metrics.LoadsTotal.WithLabelValues(backend, metrics.ResultSuccess).Inc()

	if d.FromFuture {
		log.Warn(LogMsgSaveFromFuture,
			"version", d.FromVersion, "current", CurrentVersion)
	}
	if d.Migrated() {
		metrics.MigrationsTotal.WithLabelValues(strconv.Itoa(d.FromVersion)).Inc()
		log.Info(LogMsgSaveMigrated,
			"from", d.FromVersion, "to", CurrentVersion)
	}
	if len(d.Replaced) > 0 {
		log.Warn(LogMsgTimestampReplaced, "fields", d.Replaced)
	}
	return d, nil
}

// SaveState encodes and writes a profile's state
func (r *Repository) SaveState(ctx context.Context, profileID string, state *domain.GardenState) error {
	backend := r.store.Name()
	start := time.Now()

	data, err := Encode(state)
	if err != nil {
		metrics.SavesTotal.WithLabelValues(backend, metrics.ResultError).Inc()
		return err
	}
	if err := r.store.Save(ctx, profileID, data); err != nil {
		metrics.SavesTotal.WithLabelValues(backend, metrics.ResultError).Inc()
		return fmt.Errorf("%s %s: %w", ErrMsgStoreSaveFailed, profileID, err)
	}

	metrics.SaveDuration.WithLabelValues(backend).Observe(time.Since(start).Seconds())
	metrics.SavesTotal.WithLabelValues(backend, metrics.ResultSuccess).Inc()
	return nil
}

// Delete removes a profile's save
func (r *Repository) Delete(ctx context.Context, profileID string) error {
	return r.store.Delete(ctx, profileID)
}

// List returns the saved profile ids when the store can enumerate them
func (r *Repository) List(ctx context.Context) ([]string, error) {
	l, ok := r.store.(Lister)
	if !ok {
		return nil, fmt.Errorf("backend %s cannot list saves", r.store.Name())
	}
	return l.List(ctx)
}
