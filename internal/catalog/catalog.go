package catalog

import (
	"sort"

	"github.com/osse101/HealingGarden_Go/internal/domain"
)

// Catalog is the read-only view of the plant, animal and decoration tables.
// A Catalog is immutable after construction and safe for concurrent use.
type Catalog struct {
	defaultSeed domain.PlantType

	plants      map[domain.PlantType]PlantConfig
	plantOrder  []domain.PlantType
	animals     map[domain.AnimalType]AnimalConfig
	animalOrder []domain.AnimalType
	decorations map[string]DecorationConfig
	decorOrder  []string
}

// Default returns the built-in catalog
func Default() *Catalog {
	c, err := New(DefaultFile())
	if err != nil {
		// The built-in tables are covered by tests
		panic("catalog: invalid built-in tables: " + err.Error())
	}
	return c
}

// New builds a Catalog from a File after validating it
func New(f File) (*Catalog, error) {
	if err := Validate(f); err != nil {
		return nil, err
	}

	c := &Catalog{
		defaultSeed: f.DefaultSeed,
		plants:      make(map[domain.PlantType]PlantConfig, len(f.Plants)),
		animals:     make(map[domain.AnimalType]AnimalConfig, len(f.Animals)),
		decorations: make(map[string]DecorationConfig, len(f.Decorations)),
	}
	for _, p := range f.Plants {
		c.plants[p.Type] = p
		c.plantOrder = append(c.plantOrder, p.Type)
	}
	for _, a := range f.Animals {
		c.animals[a.Type] = a
		c.animalOrder = append(c.animalOrder, a.Type)
	}
	for _, d := range f.Decorations {
		c.decorations[d.ID] = d
		c.decorOrder = append(c.decorOrder, d.ID)
	}
	return c, nil
}

// Plant returns the catalog entry for a species
func (c *Catalog) Plant(t domain.PlantType) (PlantConfig, bool) {
	p, ok := c.plants[t]
	return p, ok
}

// Animal returns the catalog entry for a visitor species
func (c *Catalog) Animal(a domain.AnimalType) (AnimalConfig, bool) {
	cfg, ok := c.animals[a]
	return cfg, ok
}

// Decoration returns the catalog entry for a decoration id
func (c *Catalog) Decoration(id string) (DecorationConfig, bool) {
	d, ok := c.decorations[id]
	return d, ok
}

// PlantTypes lists every species in catalog order
func (c *Catalog) PlantTypes() []domain.PlantType {
	return append([]domain.PlantType(nil), c.plantOrder...)
}

// AnimalTypes lists every visitor species in catalog order
func (c *Catalog) AnimalTypes() []domain.AnimalType {
	return append([]domain.AnimalType(nil), c.animalOrder...)
}

// Plants returns all plant entries in catalog order
func (c *Catalog) Plants() []PlantConfig {
	out := make([]PlantConfig, 0, len(c.plantOrder))
	for _, t := range c.plantOrder {
		out = append(out, c.plants[t])
	}
	return out
}

// Animals returns all animal entries in catalog order
func (c *Catalog) Animals() []AnimalConfig {
	out := make([]AnimalConfig, 0, len(c.animalOrder))
	for _, a := range c.animalOrder {
		out = append(out, c.animals[a])
	}
	return out
}

// Decorations returns all decoration entries in catalog order
func (c *Catalog) Decorations() []DecorationConfig {
	out := make([]DecorationConfig, 0, len(c.decorOrder))
	for _, id := range c.decorOrder {
		out = append(out, c.decorations[id])
	}
	return out
}

// DefaultSeed is the species that can always be planted for free
func (c *Catalog) DefaultSeed() domain.PlantType {
	return c.defaultSeed
}

// IsDefaultSeed reports whether t is the free, unlimited species
func (c *Catalog) IsDefaultSeed(t domain.PlantType) bool {
	return t == c.defaultSeed
}

// ShopPlants returns the species sold in the shop, cheapest first.
// The default seed is free and never listed.
func (c *Catalog) ShopPlants() []PlantConfig {
	var out []PlantConfig
	for _, t := range c.plantOrder {
		if t == c.defaultSeed {
			continue
		}
		out = append(out, c.plants[t])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SeedPrice < out[j].SeedPrice
	})
	return out
}

// RandomVisitors returns the animals with random reappearance enabled, in catalog order
func (c *Catalog) RandomVisitors() []AnimalConfig {
	var out []AnimalConfig
	for _, a := range c.animalOrder {
		if cfg := c.animals[a]; cfg.RandomEnabled() {
			out = append(out, cfg)
		}
	}
	return out
}
