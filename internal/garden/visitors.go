package garden

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/HealingGarden_Go/internal/catalog"
	"github.com/osse101/HealingGarden_Go/internal/domain"
	"github.com/osse101/HealingGarden_Go/internal/event"
	"github.com/osse101/HealingGarden_Go/internal/utils"
	"github.com/osse101/HealingGarden_Go/internal/worker"
)

// CheckForNewVisitors adds a scripted visitor for every unclaimed, absent species
// whose trigger is satisfied. It returns the species that arrived.
func (e *Engine) CheckForNewVisitors(ctx context.Context) []domain.AnimalType {
	var arrived []domain.AnimalType
	_ = e.mutate(ctx, OpCheckNewVisitors, func(t *tx) error {
		arrived = e.checkNewVisitorsLocked(ctx, t)
		return nil
	})
	return arrived
}

// ClaimVisitor removes a present visitor and resolves its gift. Scripted visits
// always grant their gift; reappearances follow the species' random policy.
// A follow-up random-visitor check is queued on the scheduler afterwards.
func (e *Engine) ClaimVisitor(ctx context.Context, animal domain.AnimalType) (*domain.VisitorGift, error) {
	var gift *domain.VisitorGift
	err := e.mutate(ctx, OpClaimVisitor, func(t *tx) error {
		var err error
		gift, err = e.claimVisitorLocked(ctx, t, animal)
		return err
	})
	if err != nil {
		return nil, err
	}

	e.scheduleFollowUp(ctx)
	return gift, nil
}

// CheckForRandomVisitors lets previously claimed species reappear, at most
// MaxDailyRandomVisits times per local day. It does nothing while a scripted
// visitor is waiting.
func (e *Engine) CheckForRandomVisitors(ctx context.Context) []domain.AnimalType {
	var arrived []domain.AnimalType
	_ = e.mutate(ctx, OpCheckRandom, func(t *tx) error {
		arrived = e.checkRandomVisitorsLocked(ctx, t)
		return nil
	})
	return arrived
}

// ResetDailyRandomVisits zeroes the daily counter when the local date changed.
// Any number of skipped days collapses into one reset.
func (e *Engine) ResetDailyRandomVisits(ctx context.Context) bool {
	var reset bool
	_ = e.mutate(ctx, OpResetDaily, func(t *tx) error {
		reset = e.resetDailyLocked(ctx, t)
		return nil
	})
	return reset
}

// IncrementVisitCountIfNoHarvest closes the previous session window. A session
// without a harvest bumps the visit counter and rescans triggers.
func (e *Engine) IncrementVisitCountIfNoHarvest(ctx context.Context) {
	_ = e.mutate(ctx, OpVisitCount, func(t *tx) error {
		e.visitCountLocked(ctx, t)
		return nil
	})
}

func (e *Engine) visitCountLocked(ctx context.Context, t *tx) {
	if !e.state.HasHarvestedThisSession {
		e.state.VisitCountWithoutHarvest++
		t.touch()
		e.checkNewVisitorsLocked(ctx, t)
	}
	e.state.HasHarvestedThisSession = false
}

func (e *Engine) checkNewVisitorsLocked(ctx context.Context, t *tx) []domain.AnimalType {
	var arrived []domain.AnimalType
	for _, cfg := range e.catalog.Animals() {
		if utils.Contains(e.state.ClaimedAnimals, cfg.Type) || e.visitorIndex(cfg.Type) >= 0 {
			continue
		}
		if !e.triggerSatisfiedLocked(cfg.Trigger, t.now) {
			continue
		}
		e.addVisitorLocked(ctx, t, cfg.Type, false)
		arrived = append(arrived, cfg.Type)
	}
	return arrived
}

func (e *Engine) triggerSatisfiedLocked(trig catalog.Trigger, now time.Time) bool {
	s := e.state
	switch trig.Type {
	case catalog.TriggerHarvest:
		return utils.Contains(s.Collection, trig.RequiredPlant)
	case catalog.TriggerCondition:
		if trig.Condition != catalog.ConditionVisitWithoutHarvest {
			return false
		}
		if s.VisitCountWithoutHarvest < trig.Threshold {
			return false
		}
		return trig.RequiresAnimal == "" || utils.Contains(s.ClaimedAnimals, trig.RequiresAnimal)
	case catalog.TriggerMailRead:
		idx := e.mailIndex(trig.MailID)
		if idx < 0 || !s.Mails[idx].IsRead {
			return false
		}
		m := s.Mails[idx]
		readAt := m.CreatedAt
		if m.ReadAt != nil {
			readAt = *m.ReadAt
		}
		delay := time.Duration(trig.DelayHours * float64(time.Hour))
		return !now.Before(readAt.Add(delay))
	default:
		return false
	}
}

func (e *Engine) addVisitorLocked(ctx context.Context, t *tx, animal domain.AnimalType, random bool) {
	e.state.Visitors = append(e.state.Visitors, domain.Visitor{
		Type:       animal,
		AppearedAt: t.now,
		IsRandom:   random,
	})
	t.touch()
	t.emit(event.New(event.VisitorArrived, e.profileID, event.VisitorPayloadV1{
		Animal:   animal,
		IsRandom: random,
	}))
	e.log(ctx).Debug(LogMsgVisitorArrived, "animal", animal, "random", random)
}

func (e *Engine) claimVisitorLocked(ctx context.Context, t *tx, animal domain.AnimalType) (*domain.VisitorGift, error) {
	idx := e.visitorIndex(animal)
	if idx < 0 {
		return nil, fmt.Errorf("claim %q: %w", animal, domain.ErrVisitorNotPresent)
	}
	s := e.state
	v := s.Visitors[idx]
	s.Visitors = append(s.Visitors[:idx], s.Visitors[idx+1:]...)
	t.touch()

	gift := &domain.VisitorGift{Animal: animal, WasRandom: v.IsRandom}

	cfg, ok := e.catalog.Animal(animal)
	if !ok {
		// Left over from a catalog that no longer lists the species
		e.log(ctx).Warn(LogMsgUnknownVisitor, "animal", animal)
		return gift, nil
	}

	payload, message := cfg.Gift, cfg.GiftMessage
	if v.IsRandom && cfg.Random != nil {
		if cfg.Random.Gift != nil {
			payload = *cfg.Random.Gift
		}
		if cfg.Random.GiftMessage != "" {
			message = cfg.Random.GiftMessage
		}
	}

	if e.giftGranted(cfg, v.IsRandom) {
		e.applyGiftLocked(payload)
		gift.Granted = true
		gift.Kind = payload.Kind
		gift.SeedType = payload.SeedType
		gift.Amount = payload.Amount
		gift.DecorationID = payload.DecorationID
		gift.Message = message
	}

	if !v.IsRandom {
		s.ClaimedAnimals = utils.AddUnique(s.ClaimedAnimals, animal)
	}

	t.emit(event.New(event.VisitorClaimed, e.profileID, event.VisitorPayloadV1{
		Animal:      animal,
		IsRandom:    v.IsRandom,
		GiftGranted: gift.Granted,
	}))
	e.log(ctx).Info(LogMsgVisitorClaimed, "animal", animal, "random", v.IsRandom, "granted", gift.Granted)
	return gift, nil
}

// giftGranted applies the tri-state policy. Only a coin flip consumes a random draw.
func (e *Engine) giftGranted(cfg catalog.AnimalConfig, random bool) bool {
	if !random || cfg.Random == nil {
		return true
	}
	switch {
	case cfg.Random.GiftAlways:
		return true
	case cfg.Random.GiftNever:
		return false
	default:
		return utils.Roll(e.random, CoinFlipProbability)
	}
}

func (e *Engine) applyGiftLocked(g catalog.Gift) {
	s := e.state
	switch g.Kind {
	case domain.GiftSeed:
		s.Seeds = utils.AddSeeds(s.Seeds, g.SeedType, g.Amount)
	case domain.GiftWater:
		// Gifts may push water past MaxWater
		s.Water += g.Amount
	case domain.GiftGold:
		s.Gold += g.Amount
	case domain.GiftDecoration:
		s.Decorations = utils.AddUnique(s.Decorations, g.DecorationID)
	}
}

func (e *Engine) scheduleFollowUp(ctx context.Context) {
	if e.scheduler == nil {
		return
	}
	job := worker.JobFunc(func(jobCtx context.Context) error {
		e.CheckForRandomVisitors(jobCtx)
		return nil
	})
	if err := e.scheduler.Schedule(job); err != nil {
		e.log(ctx).Warn(LogMsgFollowUpScheduleFailed, "error", err)
	}
}

func (e *Engine) checkRandomVisitorsLocked(ctx context.Context, t *tx) []domain.AnimalType {
	e.resetDailyLocked(ctx, t)

	s := e.state
	if s.DailyRandomVisitCount >= MaxDailyRandomVisits {
		return nil
	}
	for _, v := range s.Visitors {
		if !v.IsRandom {
			return nil
		}
	}

	var arrived []domain.AnimalType
	for _, cfg := range e.catalog.RandomVisitors() {
		if s.DailyRandomVisitCount >= MaxDailyRandomVisits {
			break
		}
		if !utils.Contains(s.ClaimedAnimals, cfg.Type) {
			continue
		}
		if !utils.Roll(e.random, cfg.Random.Probability) || e.visitorIndex(cfg.Type) >= 0 {
			continue
		}
		e.addVisitorLocked(ctx, t, cfg.Type, true)
		s.DailyRandomVisitCount++
		arrived = append(arrived, cfg.Type)
	}
	return arrived
}

func (e *Engine) resetDailyLocked(ctx context.Context, t *tx) bool {
	s := e.state
	today := e.today(t.now)
	if s.LastRandomVisitDate == today {
		return false
	}
	previous := s.LastRandomVisitDate
	s.DailyRandomVisitCount = 0
	s.LastRandomVisitDate = today
	t.touch()
	t.emit(event.New(event.DailyRandomReset, e.profileID, event.DailyResetPayloadV1{
		PreviousDate: previous,
		Date:         today,
	}))
	e.log(ctx).Debug(LogMsgDailyReset, "date", today)
	return true
}

func (e *Engine) visitorIndex(animal domain.AnimalType) int {
	for i, v := range e.state.Visitors {
		if v.Type == animal {
			return i
		}
	}
	return -1
}
