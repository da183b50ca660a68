package garden

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/osse101/HealingGarden_Go/internal/catalog"
	"github.com/osse101/HealingGarden_Go/internal/domain"
	"github.com/osse101/HealingGarden_Go/internal/event"
	"github.com/osse101/HealingGarden_Go/internal/worker"
)

var testStart = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(t time.Time) *fakeClock {
	return &fakeClock{now: t}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// scriptedRandom replays fixed draws, then returns a value no probability accepts
type scriptedRandom struct {
	mu    sync.Mutex
	draws []float64
	calls int
}

func (r *scriptedRandom) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if len(r.draws) == 0 {
		return 0.999
	}
	v := r.draws[0]
	r.draws = r.draws[1:]
	return v
}

type manualScheduler struct {
	mu   sync.Mutex
	jobs []worker.Job
	err  error
}

func (s *manualScheduler) Schedule(job worker.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.jobs = append(s.jobs, job)
	return nil
}

func (s *manualScheduler) RunAll(ctx context.Context) {
	s.mu.Lock()
	jobs := s.jobs
	s.jobs = nil
	s.mu.Unlock()
	for _, j := range jobs {
		_ = j.Process(ctx)
	}
}

func (s *manualScheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

type recordingBus struct {
	mu     sync.Mutex
	events []event.Event
}

func (b *recordingBus) Publish(_ context.Context, ev event.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, ev)
	return nil
}

func (b *recordingBus) Subscribe(event.Type, event.Handler) {}

func (b *recordingBus) Types() []event.Type {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]event.Type, 0, len(b.events))
	for _, ev := range b.events {
		out = append(out, ev.Type)
	}
	return out
}

func (b *recordingBus) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = nil
}

type testEnv struct {
	engine    *Engine
	clock     *fakeClock
	random    *scriptedRandom
	scheduler *manualScheduler
	bus       *recordingBus
}

func sequentialIDs() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("plant-%d", n)
	}
}

// newTestEnv builds an engine around state, or a fresh garden when state is nil
func newTestEnv(t *testing.T, state *domain.GardenState) *testEnv {
	t.Helper()
	env := &testEnv{
		clock:     newFakeClock(testStart),
		random:    &scriptedRandom{},
		scheduler: &manualScheduler{},
		bus:       &recordingBus{},
	}
	env.engine = FromState(catalog.Default(), state,
		WithClock(env.clock),
		WithRandom(env.random.Float64),
		WithScheduler(env.scheduler),
		WithBus(env.bus),
		WithLocation(time.UTC),
		WithProfileID("test-profile"),
		WithIDGenerator(sequentialIDs()),
	)
	return env
}

func freshState() *domain.GardenState {
	return DefaultState(testStart, time.UTC)
}

func ptrTime(t time.Time) *time.Time {
	return &t
}
