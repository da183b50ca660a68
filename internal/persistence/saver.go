package persistence

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/osse101/HealingGarden_Go/internal/domain"
	"github.com/osse101/HealingGarden_Go/internal/event"
	"github.com/osse101/HealingGarden_Go/internal/logger"
	"github.com/osse101/HealingGarden_Go/internal/worker"
)

// Snapshotter is a live garden whose state can be copied out for saving
type Snapshotter interface {
	ProfileID() string
	Snapshot() *domain.GardenState
}

// JobQueue accepts save jobs without blocking the caller
type JobQueue interface {
	TryEnqueue(job worker.Job) error
}

// Saver writes gardens in the background whenever they report a state change.
// Changes that arrive while a save is queued share that save.
type Saver struct {
	repo  *Repository
	queue JobQueue

	mu      sync.Mutex
	gardens map[string]Snapshotter
	pending map[string]bool
}

// NewSaver creates a Saver that runs its writes on queue
func NewSaver(repo *Repository, queue JobQueue) *Saver {
	return &Saver{
		repo:    repo,
		queue:   queue,
		gardens: make(map[string]Snapshotter),
		pending: make(map[string]bool),
	}
}

// Register subscribes the saver to state-change notifications
func (s *Saver) Register(bus event.Bus) {
	bus.Subscribe(event.StateChanged, s.HandleEvent)
}

// Track starts saving a garden's changes
func (s *Saver) Track(g Snapshotter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gardens[g.ProfileID()] = g
}

// Untrack stops saving a garden. A queued save still runs.
func (s *Saver) Untrack(profileID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.gardens, profileID)
}

// HandleEvent queues a save for the profile that changed. An error means the
// save could not be queued and the change is not yet durable.
func (s *Saver) HandleEvent(ctx context.Context, ev event.Event) error {
	profileID := ev.ProfileID()

	s.mu.Lock()
	_, tracked := s.gardens[profileID]
	if !tracked || s.pending[profileID] {
		s.mu.Unlock()
		return nil
	}
	s.pending[profileID] = true
	s.mu.Unlock()

	err := s.queue.TryEnqueue(worker.JobFunc(func(jobCtx context.Context) error {
		return s.runSave(jobCtx, profileID)
	}))
	if err != nil {
		s.mu.Lock()
		delete(s.pending, profileID)
		s.mu.Unlock()
		return fmt.Errorf("queue save for %s: %w", profileID, err)
	}

	logger.ForProfile(ctx, profileID).Debug(LogMsgSaveQueued)
	return nil
}

func (s *Saver) runSave(ctx context.Context, profileID string) error {
	s.mu.Lock()
	delete(s.pending, profileID)
	g, ok := s.gardens[profileID]
	s.mu.Unlock()
	if !ok {
		return nil
	}
	return s.save(ctx, g)
}

// SaveNow writes a tracked garden synchronously
func (s *Saver) SaveNow(ctx context.Context, profileID string) error {
	s.mu.Lock()
	g, ok := s.gardens[profileID]
	s.mu.Unlock()
	if !ok {
		return nil
	}
	return s.save(ctx, g)
}

// Flush writes every tracked garden synchronously
func (s *Saver) Flush(ctx context.Context) error {
	s.mu.Lock()
	gardens := make([]Snapshotter, 0, len(s.gardens))
	for _, g := range s.gardens {
		gardens = append(gardens, g)
	}
	s.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgFlushStarted, "count", len(gardens))

	var errs []error
	for _, g := range gardens {
		if err := s.save(ctx, g); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Saver) save(ctx context.Context, g Snapshotter) error {
	log := logger.ForProfile(ctx, g.ProfileID())
	if err := s.repo.SaveState(ctx, g.ProfileID(), g.Snapshot()); err != nil {
		log.Error(LogMsgSaveFailed, "error", err)
		return err
	}
	log.Debug(LogMsgSaved)
	return nil
}
