package garden

import (
	"context"
	"fmt"

	"github.com/osse101/HealingGarden_Go/internal/domain"
	"github.com/osse101/HealingGarden_Go/internal/event"
	"github.com/osse101/HealingGarden_Go/internal/utils"
)

// BuySeed purchases quantity seeds of a shop species and returns the gold spent.
// The charge and the inventory credit are applied together or not at all.
func (e *Engine) BuySeed(ctx context.Context, species domain.PlantType, quantity int) (int, error) {
	var cost int
	err := e.mutate(ctx, OpBuySeed, func(t *tx) error {
		cfg, ok := e.catalog.Plant(species)
		if !ok {
			return fmt.Errorf("buy %q: %w", species, domain.ErrUnknownPlant)
		}
		if e.catalog.IsDefaultSeed(species) {
			return fmt.Errorf("buy %q: %w", species, domain.ErrNotBuyable)
		}
		if quantity <= 0 {
			return fmt.Errorf("buy %d of %q: %w", quantity, species, domain.ErrInvalidAmount)
		}

		total := cfg.SeedPrice * quantity
		if e.state.Gold < total {
			return fmt.Errorf("buy %d of %q for %d: %w", quantity, species, total, domain.ErrInsufficientFunds)
		}
		e.state.Gold -= total
		e.state.Seeds = utils.AddSeeds(e.state.Seeds, species, quantity)
		t.touch()
		t.emit(event.New(event.SeedsPurchased, e.profileID, event.SeedsPurchasedPayloadV1{
			PlantType: species,
			Quantity:  quantity,
			Cost:      total,
		}))
		cost = total
		return nil
	})
	return cost, err
}

// ToggleDecoration equips an owned decoration, or unequips it when already worn.
// It returns the new equipped state.
func (e *Engine) ToggleDecoration(ctx context.Context, id string) (bool, error) {
	var equipped bool
	err := e.mutate(ctx, OpToggleDecoration, func(t *tx) error {
		s := e.state
		if !utils.Contains(s.Decorations, id) {
			return fmt.Errorf("toggle %q: %w", id, domain.ErrDecorationNotOwned)
		}
		if utils.Contains(s.EquippedDecorations, id) {
			s.EquippedDecorations = utils.Remove(s.EquippedDecorations, id)
		} else {
			s.EquippedDecorations = append(s.EquippedDecorations, id)
			equipped = true
		}
		t.touch()
		return nil
	})
	return equipped, err
}

// MarkCollectionSeen flags collected species as seen. With no arguments every
// collected species is marked. Returns how many were newly marked.
func (e *Engine) MarkCollectionSeen(ctx context.Context, species ...domain.PlantType) int {
	var marked int
	_ = e.mutate(ctx, OpCollectionSeen, func(t *tx) error {
		s := e.state
		if len(species) == 0 {
			species = s.Collection
		}
		for _, p := range species {
			if !utils.Contains(s.Collection, p) || utils.Contains(s.CollectionSeen, p) {
				continue
			}
			s.CollectionSeen = append(s.CollectionSeen, p)
			marked++
		}
		if marked > 0 {
			t.touch()
		}
		return nil
	})
	return marked
}

// NewCollectionEntries lists collected species the player has not looked at yet
func (e *Engine) NewCollectionEntries() []domain.PlantType {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []domain.PlantType
	for _, p := range e.state.Collection {
		if !utils.Contains(e.state.CollectionSeen, p) {
			out = append(out, p)
		}
	}
	return out
}

// UpdateSettings stores the player's toggles
func (e *Engine) UpdateSettings(ctx context.Context, settings domain.Settings) {
	_ = e.mutate(ctx, OpUpdateSettings, func(t *tx) error {
		if e.state.Settings == settings {
			return nil
		}
		e.state.Settings = settings
		t.touch()
		return nil
	})
}
