package garden

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/HealingGarden_Go/internal/domain"
	"github.com/osse101/HealingGarden_Go/internal/event"
)

// SpendGold deducts amount if the balance covers it
func (e *Engine) SpendGold(ctx context.Context, amount int) error {
	return e.mutate(ctx, OpSpendGold, func(t *tx) error {
		if amount < 0 {
			return fmt.Errorf("spend %d gold: %w", amount, domain.ErrInvalidAmount)
		}
		if e.state.Gold < amount {
			return fmt.Errorf("spend %d gold with %d: %w", amount, e.state.Gold, domain.ErrInsufficientFunds)
		}
		if amount == 0 {
			return nil
		}
		e.state.Gold -= amount
		t.touch()
		return nil
	})
}

// AddGold credits amount unconditionally
func (e *Engine) AddGold(ctx context.Context, amount int) {
	_ = e.mutate(ctx, OpAddGold, func(t *tx) error {
		if amount == 0 {
			return nil
		}
		e.state.Gold += amount
		t.touch()
		return nil
	})
}

// UseWater spends one unit of water without targeting a plant
func (e *Engine) UseWater(ctx context.Context) error {
	return e.mutate(ctx, OpUseWater, func(t *tx) error {
		if e.state.Water <= 0 {
			return domain.ErrNoWater
		}
		e.state.Water--
		t.touch()
		return nil
	})
}

// WaterPlant spends one unit of water on a plant. There is no per-plant cap.
func (e *Engine) WaterPlant(ctx context.Context, plantID string) error {
	return e.mutate(ctx, OpWaterPlant, func(t *tx) error {
		idx := e.plantIndex(plantID)
		if idx < 0 {
			return fmt.Errorf("water plant %s: %w", plantID, domain.ErrPlantNotFound)
		}
		if e.state.Water <= 0 {
			return domain.ErrNoWater
		}

		e.state.Water--
		p := &e.state.Plants[idx]
		p.WaterCount++
		watered := t.now
		p.LastWatered = &watered
		t.touch()

		t.emit(event.New(event.PlantWatered, e.profileID, event.PlantPayloadV1{
			PlantID:    p.ID,
			PlantType:  p.Type,
			SlotIndex:  p.SlotIndex,
			WaterCount: p.WaterCount,
		}))
		return nil
	})
}

// RechargeWater credits one water per whole recharge interval elapsed since the
// anchor and returns the amount credited
func (e *Engine) RechargeWater(ctx context.Context) int {
	var credited int
	_ = e.mutate(ctx, OpRechargeWater, func(t *tx) error {
		credited = e.rechargeLocked(t)
		return nil
	})
	return credited
}

func (e *Engine) rechargeLocked(t *tx) int {
	s := e.state

	// An anchor in the future (clock moved back) restarts the interval
	if s.LastWaterRechargeTime.After(t.now) {
		s.LastWaterRechargeTime = t.now
		t.touch()
		return 0
	}

	if s.Water >= MaxWater {
		if !s.LastWaterRechargeTime.Equal(t.now) {
			s.LastWaterRechargeTime = t.now
			t.touch()
		}
		return 0
	}

	intervals := int(t.now.Sub(s.LastWaterRechargeTime) / WaterRechargeInterval)
	if intervals <= 0 {
		return 0
	}

	credit := intervals
	if room := MaxWater - s.Water; credit > room {
		// The tank filled partway through the elapsed time. Time spent full
		// earns nothing, same as the full-tank branch above.
		s.Water = MaxWater
		s.LastWaterRechargeTime = t.now
		t.touch()
		return room
	}
	s.Water += credit
	s.LastWaterRechargeTime = s.LastWaterRechargeTime.Add(time.Duration(credit) * WaterRechargeInterval)
	t.touch()
	return credit
}
