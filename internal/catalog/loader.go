package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/osse101/HealingGarden_Go/internal/domain"
	"github.com/osse101/HealingGarden_Go/internal/validation"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// LoadFile reads a catalog override from disk. YAML is the primary format;
// .json files are additionally checked against the catalog JSON schema.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	var f File
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := validation.NewSchemaValidator().ValidateBytes(data, validation.SchemaCatalog); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", path, err)
		}
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
		}
	} else if f, err = Parse(data); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return New(f)
}

// Parse decodes a YAML catalog document without building it
func Parse(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return f, nil
}

// Validate checks struct tags and the cross references between entries
func Validate(f File) error {
	if err := structValidator().Struct(f); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}

	var errs []error

	plants := make(map[domain.PlantType]bool, len(f.Plants))
	for _, p := range f.Plants {
		if plants[p.Type] {
			errs = append(errs, fmt.Errorf("duplicate plant %q", p.Type))
		}
		plants[p.Type] = true
	}
	if !plants[f.DefaultSeed] {
		errs = append(errs, fmt.Errorf("default seed %q is not a catalog plant", f.DefaultSeed))
	}

	decorations := make(map[string]bool, len(f.Decorations))
	for _, d := range f.Decorations {
		if decorations[d.ID] {
			errs = append(errs, fmt.Errorf("duplicate decoration %q", d.ID))
		}
		decorations[d.ID] = true
	}

	animals := make(map[domain.AnimalType]bool, len(f.Animals))
	for _, a := range f.Animals {
		if animals[a.Type] {
			errs = append(errs, fmt.Errorf("duplicate animal %q", a.Type))
		}
		animals[a.Type] = true
	}

	for _, a := range f.Animals {
		errs = append(errs, validateGift(a.Type, a.Gift, plants, decorations))
		errs = append(errs, validateTrigger(a, plants, animals))
		if a.Random != nil {
			if a.Random.GiftAlways && a.Random.GiftNever {
				errs = append(errs, fmt.Errorf("animal %q: random policy sets both giftAlways and giftNever", a.Type))
			}
			if a.Random.Gift != nil {
				errs = append(errs, validateGift(a.Type, *a.Random.Gift, plants, decorations))
			}
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}
	return nil
}

func validateGift(animal domain.AnimalType, g Gift, plants map[domain.PlantType]bool, decorations map[string]bool) error {
	switch g.Kind {
	case domain.GiftSeed:
		if !plants[g.SeedType] {
			return fmt.Errorf("animal %q: gift seed %q is not a catalog plant", animal, g.SeedType)
		}
		if g.Amount <= 0 {
			return fmt.Errorf("animal %q: seed gift needs a positive amount", animal)
		}
	case domain.GiftWater, domain.GiftGold:
		if g.Amount <= 0 {
			return fmt.Errorf("animal %q: %s gift needs a positive amount", animal, g.Kind)
		}
	case domain.GiftDecoration:
		if !decorations[g.DecorationID] {
			return fmt.Errorf("animal %q: gift decoration %q is not in the catalog", animal, g.DecorationID)
		}
	}
	return nil
}

func validateTrigger(a AnimalConfig, plants map[domain.PlantType]bool, animals map[domain.AnimalType]bool) error {
	t := a.Trigger
	switch t.Type {
	case TriggerHarvest:
		if !plants[t.RequiredPlant] {
			return fmt.Errorf("animal %q: harvest trigger requires unknown plant %q", a.Type, t.RequiredPlant)
		}
	case TriggerCondition:
		if t.Condition == "" {
			return fmt.Errorf("animal %q: condition trigger has no condition", a.Type)
		}
		if t.RequiresAnimal != "" && !animals[t.RequiresAnimal] {
			return fmt.Errorf("animal %q: condition trigger requires unknown animal %q", a.Type, t.RequiresAnimal)
		}
		if t.RequiresAnimal == a.Type {
			return fmt.Errorf("animal %q: condition trigger requires itself", a.Type)
		}
	case TriggerMailRead:
		if t.MailID == "" {
			return fmt.Errorf("animal %q: mailRead trigger has no mail id", a.Type)
		}
	}
	return nil
}
