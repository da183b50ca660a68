package garden

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/HealingGarden_Go/internal/catalog"
	"github.com/osse101/HealingGarden_Go/internal/domain"
	"github.com/osse101/HealingGarden_Go/internal/event"
	"github.com/osse101/HealingGarden_Go/internal/logger"
	"github.com/osse101/HealingGarden_Go/internal/utils"
	"github.com/osse101/HealingGarden_Go/internal/worker"
)

// Clock supplies the current time
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Scheduler accepts deferred follow-up jobs.
// worker.Pool and worker.DelayedScheduler both satisfy it.
type Scheduler interface {
	Schedule(job worker.Job) error
}

// StateLoader reads a previously saved garden. A nil state with a nil error
// means there is nothing saved yet.
type StateLoader interface {
	LoadState(ctx context.Context, profileID string) (*domain.GardenState, error)
}

// Engine owns one garden's state and exposes every operation that mutates it.
// All exported methods are safe for concurrent use.
type Engine struct {
	mu    sync.Mutex
	state *domain.GardenState

	catalog   *catalog.Catalog
	clock     Clock
	random    func() float64
	scheduler Scheduler
	bus       event.Bus
	loc       *time.Location
	profileID string
	newID     func() string

	// started is set once the cold-start sequence has run on this engine
	started atomic.Bool
}

// Option configures an Engine
type Option func(*Engine)

// WithClock replaces the wall clock
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithRandom replaces the uniform [0,1) source used for visitor draws
func WithRandom(r func() float64) Option {
	return func(e *Engine) { e.random = r }
}

// WithScheduler sets where post-claim follow-ups are queued
func WithScheduler(s Scheduler) Option {
	return func(e *Engine) { e.scheduler = s }
}

// WithBus sets the bus state-change notifications are published on
func WithBus(b event.Bus) Option {
	return func(e *Engine) { e.bus = b }
}

// WithLocation sets the time zone that defines a calendar day
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		if loc != nil {
			e.loc = loc
		}
	}
}

// WithProfileID tags published events with the owning profile
func WithProfileID(id string) Option {
	return func(e *Engine) { e.profileID = id }
}

// WithIDGenerator replaces the plant id generator
func WithIDGenerator(f func() string) Option {
	return func(e *Engine) { e.newID = f }
}

func newEngine(cat *catalog.Catalog, opts []Option) *Engine {
	e := &Engine{
		catalog: cat,
		clock:   systemClock{},
		random:  utils.RandomFloat,
		loc:     time.Local,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.catalog == nil {
		e.catalog = catalog.Default()
	}
	return e
}

// New creates an engine holding a fresh default garden
func New(cat *catalog.Catalog, opts ...Option) *Engine {
	e := newEngine(cat, opts)
	e.state = DefaultState(e.clock.Now(), e.loc)
	return e
}

// FromState creates an engine around an existing state. The state is copied.
func FromState(cat *catalog.Catalog, state *domain.GardenState, opts ...Option) *Engine {
	e := newEngine(cat, opts)
	if state == nil {
		e.state = DefaultState(e.clock.Now(), e.loc)
	} else {
		e.state = state.Clone()
	}
	return e
}

// Open loads the saved garden for the engine's profile before returning, so the
// engine is ready for lifecycle calls. Loader failures are logged and the garden
// starts from defaults.
func Open(ctx context.Context, cat *catalog.Catalog, loader StateLoader, opts ...Option) *Engine {
	e := newEngine(cat, opts)
	log := e.log(ctx)

	var state *domain.GardenState
	if loader != nil {
		loaded, err := loader.LoadState(ctx, e.profileID)
		switch {
		case err != nil:
			log.Warn(LogMsgStateLoadFailed, "error", err)
		case loaded == nil:
			log.Debug(LogMsgNoSavedState)
		default:
			state = loaded
		}
	}
	if state == nil {
		state = DefaultState(e.clock.Now(), e.loc)
	}
	e.state = state
	return e
}

// DefaultState returns the state of a brand-new garden
func DefaultState(now time.Time, loc *time.Location) *domain.GardenState {
	if loc == nil {
		loc = time.Local
	}
	return &domain.GardenState{
		Level:                 InitialLevel,
		Gold:                  InitialGold,
		Water:                 InitialWater,
		LastWaterRechargeTime: now,
		Plants:                []domain.Plant{},
		Seeds:                 []domain.SeedItem{},
		Collection:            []domain.PlantType{},
		CollectionSeen:        []domain.PlantType{},
		Visitors:              []domain.Visitor{},
		ClaimedAnimals:        []domain.AnimalType{},
		Mails:                 []domain.MailItem{},
		Decorations:           []string{},
		EquippedDecorations:   []string{},
		LastRandomVisitDate:   now.In(loc).Format(DateLayout),
	}
}

// Snapshot returns a deep copy of the current state
func (e *Engine) Snapshot() *domain.GardenState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Clone()
}

// ProfileID returns the profile the engine belongs to
func (e *Engine) ProfileID() string {
	return e.profileID
}

// Catalog returns the tables the engine evaluates against
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Now returns the engine clock's current time
func (e *Engine) Now() time.Time {
	return e.clock.Now()
}

// tx collects the side effects of one locked operation
type tx struct {
	now     time.Time
	events  []event.Event
	changed bool
}

func (t *tx) emit(ev event.Event) {
	t.events = append(t.events, ev)
}

func (t *tx) touch() {
	t.changed = true
}

// mutate runs fn under the lock and publishes the collected events after releasing it.
// A state-changed event is appended when fn reported a change.
func (e *Engine) mutate(ctx context.Context, op string, fn func(t *tx) error) error {
	e.mu.Lock()
	t := &tx{now: e.clock.Now()}
	err := fn(t)
	e.mu.Unlock()

	if t.changed {
		t.emit(event.NewStateChangedEvent(e.profileID, op, t.now))
	}
	e.publish(ctx, t.events)
	return err
}

func (e *Engine) log(ctx context.Context) *slog.Logger {
	return logger.ForProfile(ctx, e.profileID)
}

func (e *Engine) publish(ctx context.Context, events []event.Event) {
	if e.bus == nil || len(events) == 0 {
		return
	}
	var errs []error
	for _, ev := range events {
		if err := e.bus.Publish(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		e.log(ctx).Warn(LogMsgPublishFailed, "error", err)
	}
}

func (e *Engine) today(now time.Time) string {
	return now.In(e.loc).Format(DateLayout)
}
