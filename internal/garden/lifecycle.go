package garden

import (
	"context"

	"github.com/osse101/HealingGarden_Go/internal/domain"
)

// ForegroundReport summarizes what a lifecycle pass changed
type ForegroundReport struct {
	WaterCredited   int                 `json:"waterCredited"`
	OwlMail         bool                `json:"owlMail"`
	WelcomeMail     bool                `json:"welcomeMail"`
	NewVisitors     []domain.AnimalType `json:"newVisitors"`
	RandomVisitors  []domain.AnimalType `json:"randomVisitors"`
	VisitsNoHarvest int                 `json:"visitsWithoutHarvest"`
}

// Start runs the cold-start sequence: the welcome mail, then the foreground pass
func (e *Engine) Start(ctx context.Context) ForegroundReport {
	e.started.Store(true)
	var report ForegroundReport
	_ = e.mutate(ctx, OpStart, func(t *tx) error {
		report.WelcomeMail = e.initFirstVisitMailLocked(t)
		e.foregroundLocked(ctx, t, &report)
		return nil
	})
	return report
}

// Resume is the entry point for a player returning to the app. The first call
// on an engine runs Start, every later call runs Foreground.
func (e *Engine) Resume(ctx context.Context) ForegroundReport {
	if e.started.CompareAndSwap(false, true) {
		return e.Start(ctx)
	}
	return e.Foreground(ctx)
}

// Foreground runs the pass every background to foreground transition needs, in order:
// water recharge, owl mail, visit counter, new visitors, random visitors.
func (e *Engine) Foreground(ctx context.Context) ForegroundReport {
	var report ForegroundReport
	_ = e.mutate(ctx, OpForeground, func(t *tx) error {
		e.foregroundLocked(ctx, t, &report)
		return nil
	})
	return report
}

func (e *Engine) foregroundLocked(ctx context.Context, t *tx, report *ForegroundReport) {
	report.WaterCredited = e.rechargeLocked(t)
	report.OwlMail = e.checkOwlMailLocked(t)

	// The visit counter rescans triggers itself when it bumps the count
	before := len(e.state.Visitors)
	e.visitCountLocked(ctx, t)
	for _, v := range e.state.Visitors[before:] {
		report.NewVisitors = append(report.NewVisitors, v.Type)
	}

	report.NewVisitors = append(report.NewVisitors, e.checkNewVisitorsLocked(ctx, t)...)
	report.RandomVisitors = e.checkRandomVisitorsLocked(ctx, t)
	report.VisitsNoHarvest = e.state.VisitCountWithoutHarvest
}
