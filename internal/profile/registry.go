// Package profile keeps the live garden engines of recently used profiles.
package profile

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"
	"unicode"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/HealingGarden_Go/internal/catalog"
	"github.com/osse101/HealingGarden_Go/internal/domain"
	"github.com/osse101/HealingGarden_Go/internal/garden"
	"github.com/osse101/HealingGarden_Go/internal/logger"
	"github.com/osse101/HealingGarden_Go/internal/metrics"
	"github.com/osse101/HealingGarden_Go/internal/persistence"
)

// GardenSaver persists tracked gardens
type GardenSaver interface {
	Track(g persistence.Snapshotter)
	Untrack(profileID string)
	SaveNow(ctx context.Context, profileID string) error
	Flush(ctx context.Context) error
}

// Registry opens engines on first use and caches them. An engine that falls out
// of the cache, by size or idle time, is saved and stops being tracked.
type Registry struct {
	catalog *catalog.Catalog
	loader  garden.StateLoader
	saver   GardenSaver
	opts    []garden.Option
	onOpen  func(ctx context.Context, e *garden.Engine)

	mu      sync.Mutex
	cache   *expirable.LRU[string, *garden.Engine]
	closing atomic.Bool
}

// NewRegistry creates a Registry holding at most size engines, each dropped
// after ttl without use. A ttl of 0 disables expiry. opts are applied to
// every engine it opens.
func NewRegistry(cat *catalog.Catalog, loader garden.StateLoader, saver GardenSaver, size int, ttl time.Duration, opts ...garden.Option) *Registry {
	r := &Registry{
		catalog: cat,
		loader:  loader,
		saver:   saver,
		opts:    opts,
	}
	r.cache = expirable.NewLRU[string, *garden.Engine](size, r.onEvict, ttl)
	return r
}

// OnOpen sets a hook that runs on every freshly opened engine before any
// caller can see it. The server uses it for the cold start.
func (r *Registry) OnOpen(fn func(ctx context.Context, e *garden.Engine)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onOpen = fn
}

// ValidateProfileID rejects ids that cannot be stored as a save key
func ValidateProfileID(id string) error {
	if id == "" || len(id) > MaxProfileIDLength {
		return fmt.Errorf("%w: length must be 1-%d", domain.ErrInvalidProfileID, MaxProfileIDLength)
	}
	if strings.IndexFunc(id, func(r rune) bool { return unicode.IsSpace(r) || unicode.IsControl(r) }) >= 0 {
		return fmt.Errorf("%w: %q contains whitespace", domain.ErrInvalidProfileID, id)
	}
	return nil
}

// Get returns the engine for profileID, loading it from storage on first use.
// A freshly opened engine has not run its cold start; callers decide when to.
func (r *Registry) Get(ctx context.Context, profileID string) (*garden.Engine, error) {
	if err := ValidateProfileID(profileID); err != nil {
		return nil, err
	}
	if e, ok := r.touch(profileID); ok {
		return e, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Another request may have opened it while we waited
	if e, ok := r.touch(profileID); ok {
		return e, nil
	}

	ctx = logger.WithProfileID(ctx, profileID)
	opts := append(append([]garden.Option{}, r.opts...), garden.WithProfileID(profileID))
	e := garden.Open(ctx, r.catalog, r.loader, opts...)

	r.saver.Track(e)
	if r.onOpen != nil {
		r.onOpen(ctx, e)
	}
	r.cache.Add(profileID, e)
	metrics.ActiveProfiles.Set(float64(r.cache.Len()))

	logger.FromContext(ctx).Info(LogMsgProfileOpened)
	return e, nil
}

// touch returns a cached engine and restarts its idle timer
func (r *Registry) touch(profileID string) (*garden.Engine, bool) {
	e, ok := r.cache.Get(profileID)
	if ok {
		r.cache.Add(profileID, e)
	}
	return e, ok
}

// Peek returns a cached engine without loading or refreshing it
func (r *Registry) Peek(profileID string) (*garden.Engine, bool) {
	return r.cache.Peek(profileID)
}

// Evict saves and drops a profile's engine. The next Get reloads it.
func (r *Registry) Evict(profileID string) bool {
	return r.cache.Remove(profileID)
}

// Len returns the number of live engines
func (r *Registry) Len() int {
	return r.cache.Len()
}

// ResetDailyRandomVisits runs the daily random-visit reset on every live engine
// and returns how many were reset. It implements worker.DailyResetter.
func (r *Registry) ResetDailyRandomVisits(ctx context.Context) (int, error) {
	n := 0
	for _, e := range r.cache.Values() {
		if e.ResetDailyRandomVisits(ctx) {
			n++
		}
	}
	logger.FromContext(ctx).Info(LogMsgDailyReset, "profiles", n)
	return n, nil
}

// Close saves every live engine and empties the registry
func (r *Registry) Close(ctx context.Context) error {
	r.closing.Store(true)
	err := r.saver.Flush(ctx)
	r.cache.Purge()
	return err
}

// onEvict runs inside the cache lock; it must not call back into the cache
func (r *Registry) onEvict(profileID string, _ *garden.Engine) {
	ctx := logger.WithProfileID(context.Background(), profileID)
	log := logger.FromContext(ctx)

	// Close has already flushed
	if !r.closing.Load() {
		if err := r.saver.SaveNow(ctx, profileID); err != nil {
			log.Error(LogMsgEvictSaveFail, "error", err)
		}
	}
	r.saver.Untrack(profileID)
	metrics.ActiveProfiles.Dec()
	log.Debug(LogMsgProfileEvicted)
}
