package garden

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/HealingGarden_Go/internal/domain"
	"github.com/osse101/HealingGarden_Go/internal/event"
	"github.com/osse101/HealingGarden_Go/internal/utils"
)

// PlantSeedInSlot creates a plant in an empty slot. Seed inventory is not touched.
func (e *Engine) PlantSeedInSlot(ctx context.Context, slot int, species domain.PlantType) (*domain.Plant, error) {
	var planted domain.Plant
	err := e.mutate(ctx, OpPlantSeed, func(t *tx) error {
		if err := e.checkPlantableLocked(slot, species); err != nil {
			return err
		}
		planted = e.plantLocked(t, slot, species)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &planted, nil
}

// UseSeed consumes one seed of a species. The default seed is free and unlimited.
func (e *Engine) UseSeed(ctx context.Context, species domain.PlantType) error {
	return e.mutate(ctx, OpUseSeed, func(t *tx) error {
		if _, ok := e.catalog.Plant(species); !ok {
			return fmt.Errorf("use seed %q: %w", species, domain.ErrUnknownPlant)
		}
		return e.useSeedLocked(t, species)
	})
}

// PlantFromInventory consumes a seed and plants it in one step. The slot is
// checked before the seed is taken, so a failure leaves the inventory intact.
func (e *Engine) PlantFromInventory(ctx context.Context, slot int, species domain.PlantType) (*domain.Plant, error) {
	var planted domain.Plant
	err := e.mutate(ctx, OpPlantFromInventory, func(t *tx) error {
		if err := e.checkPlantableLocked(slot, species); err != nil {
			return err
		}
		if err := e.useSeedLocked(t, species); err != nil {
			return err
		}
		planted = e.plantLocked(t, slot, species)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &planted, nil
}

// HarvestPlant removes a plant and records the harvest. It grants no gold;
// CollectHarvest pairs it with the catalog yield.
func (e *Engine) HarvestPlant(ctx context.Context, plantID string) error {
	return e.mutate(ctx, OpHarvestPlant, func(t *tx) error {
		_, err := e.harvestLocked(t, plantID, 0)
		return err
	})
}

// HarvestReward computes the gold a plant would yield if harvested now
func (e *Engine) HarvestReward(plantID string) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.harvestRewardLocked(plantID, e.clock.Now())
}

// CollectHarvest harvests a ripe plant and credits its gold
func (e *Engine) CollectHarvest(ctx context.Context, plantID string) (*domain.HarvestResult, error) {
	var result *domain.HarvestResult
	err := e.mutate(ctx, OpCollectHarvest, func(t *tx) error {
		gold, err := e.harvestRewardLocked(plantID, t.now)
		if err != nil {
			return err
		}
		result, err = e.harvestLocked(t, plantID, gold)
		if err != nil {
			return err
		}
		e.state.Gold += gold
		return nil
	})
	return result, err
}

// PlantStage returns the current stage of a plant in the garden
func (e *Engine) PlantStage(plantID string) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.plantIndex(plantID)
	if idx < 0 {
		return 0, fmt.Errorf("plant %s: %w", plantID, domain.ErrPlantNotFound)
	}
	p := e.state.Plants[idx]
	cfg, ok := e.catalog.Plant(p.Type)
	if !ok {
		return 0, fmt.Errorf("plant %s of type %q: %w", plantID, p.Type, domain.ErrUnknownPlant)
	}
	return GrowthStage(p, cfg, e.clock.Now()), nil
}

func (e *Engine) checkPlantableLocked(slot int, species domain.PlantType) error {
	if slot < 0 || slot >= GridSize {
		return fmt.Errorf("slot %d: %w", slot, domain.ErrInvalidSlot)
	}
	if _, ok := e.catalog.Plant(species); !ok {
		return fmt.Errorf("plant %q: %w", species, domain.ErrUnknownPlant)
	}
	for _, p := range e.state.Plants {
		if p.SlotIndex == slot {
			return fmt.Errorf("slot %d: %w", slot, domain.ErrSlotOccupied)
		}
	}
	return nil
}

func (e *Engine) plantLocked(t *tx, slot int, species domain.PlantType) domain.Plant {
	p := domain.Plant{
		ID:        e.newID(),
		SlotIndex: slot,
		Type:      species,
		PlantedAt: t.now,
	}
	e.state.Plants = append(e.state.Plants, p)
	t.touch()
	t.emit(event.New(event.PlantPlanted, e.profileID, event.PlantPayloadV1{
		PlantID:   p.ID,
		PlantType: p.Type,
		SlotIndex: p.SlotIndex,
	}))
	return p
}

func (e *Engine) useSeedLocked(t *tx, species domain.PlantType) error {
	if e.catalog.IsDefaultSeed(species) {
		return nil
	}
	seeds, ok := utils.TakeSeed(e.state.Seeds, species)
	if !ok {
		return fmt.Errorf("use seed %q: %w", species, domain.ErrNoSeeds)
	}
	e.state.Seeds = seeds
	t.touch()
	return nil
}

func (e *Engine) harvestRewardLocked(plantID string, now time.Time) (int, error) {
	idx := e.plantIndex(plantID)
	if idx < 0 {
		return 0, fmt.Errorf("harvest %s: %w", plantID, domain.ErrPlantNotFound)
	}
	p := e.state.Plants[idx]
	cfg, ok := e.catalog.Plant(p.Type)
	if !ok {
		return 0, fmt.Errorf("harvest %s of type %q: %w", plantID, p.Type, domain.ErrUnknownPlant)
	}
	if !IsRipe(p, cfg, now) {
		return 0, fmt.Errorf("harvest %s: %w", plantID, domain.ErrPlantNotRipe)
	}
	return cfg.HarvestGold, nil
}

func (e *Engine) harvestLocked(t *tx, plantID string, gold int) (*domain.HarvestResult, error) {
	idx := e.plantIndex(plantID)
	if idx < 0 {
		return nil, fmt.Errorf("harvest %s: %w", plantID, domain.ErrPlantNotFound)
	}
	s := e.state
	p := s.Plants[idx]

	s.Plants = append(s.Plants[:idx], s.Plants[idx+1:]...)
	newEntry := !utils.Contains(s.Collection, p.Type)
	s.Collection = utils.AddUnique(s.Collection, p.Type)
	if s.FirstHarvestTime == nil {
		first := t.now
		s.FirstHarvestTime = &first
	}
	s.HasHarvestedThisSession = true
	s.VisitCountWithoutHarvest = 0
	t.touch()

	result := &domain.HarvestResult{
		PlantID:    p.ID,
		Type:       p.Type,
		GoldEarned: gold,
		NewEntry:   newEntry,
	}
	t.emit(event.New(event.PlantHarvested, e.profileID, event.HarvestPayloadV1{
		PlantID:    p.ID,
		PlantType:  p.Type,
		GoldEarned: gold,
		NewEntry:   newEntry,
	}))
	return result, nil
}

func (e *Engine) plantIndex(plantID string) int {
	for i, p := range e.state.Plants {
		if p.ID == plantID {
			return i
		}
	}
	return -1
}
