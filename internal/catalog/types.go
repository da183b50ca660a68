package catalog

import "github.com/osse101/HealingGarden_Go/internal/domain"

// TriggerType selects the rule that makes a visitor appear for the first time
type TriggerType string

// Trigger variants
const (
	TriggerHarvest   TriggerType = "harvest"
	TriggerCondition TriggerType = "condition"
	TriggerMailRead  TriggerType = "mailRead"
	TriggerDisabled  TriggerType = "disabled"
)

// ConditionType names the counter a condition trigger compares against
type ConditionType string

// Condition variants
const (
	ConditionVisitWithoutHarvest ConditionType = "visitWithoutHarvest"
)

// PlantConfig is one Plant Catalog entry
type PlantConfig struct {
	Type              domain.PlantType `yaml:"type" json:"type" validate:"required"`
	Name              string           `yaml:"name" json:"name" validate:"required,max=50"`
	SeedPrice         int              `yaml:"seedPrice" json:"seedPrice" validate:"gte=0"`
	HarvestGold       int              `yaml:"harvestGold" json:"harvestGold" validate:"gte=0"`
	GrowthMinutes     float64          `yaml:"growthMinutes" json:"growthMinutes" validate:"gt=0"`
	WaterBonusMinutes float64          `yaml:"waterBonusMinutes" json:"waterBonusMinutes" validate:"gte=0"`
	Rarity            domain.Rarity    `yaml:"rarity" json:"rarity" validate:"required,oneof=common rare epic"`
}

// Gift describes what a visitor hands over when claimed
type Gift struct {
	Kind         domain.GiftKind  `yaml:"kind" json:"kind" validate:"required,oneof=seed water gold decoration"`
	SeedType     domain.PlantType `yaml:"seedType,omitempty" json:"seedType,omitempty"`
	Amount       int              `yaml:"amount,omitempty" json:"amount,omitempty" validate:"gte=0"`
	DecorationID string           `yaml:"decorationId,omitempty" json:"decorationId,omitempty"`
}

// Trigger is a tagged union; only the fields of the selected Type are meaningful
type Trigger struct {
	Type TriggerType `yaml:"type" json:"type" validate:"required,oneof=harvest condition mailRead disabled"`

	// harvest
	RequiredPlant domain.PlantType `yaml:"requiredPlant,omitempty" json:"requiredPlant,omitempty"`

	// condition
	Condition      ConditionType     `yaml:"condition,omitempty" json:"condition,omitempty" validate:"omitempty,oneof=visitWithoutHarvest"`
	Threshold      int               `yaml:"threshold,omitempty" json:"threshold,omitempty" validate:"gte=0"`
	RequiresAnimal domain.AnimalType `yaml:"requiresAnimal,omitempty" json:"requiresAnimal,omitempty"`

	// mailRead
	MailID     string  `yaml:"mailId,omitempty" json:"mailId,omitempty"`
	DelayHours float64 `yaml:"delayHours,omitempty" json:"delayHours,omitempty" validate:"gte=0"`
}

// RandomPolicy controls reappearances after the scripted visit was claimed.
// With neither GiftAlways nor GiftNever set, a gift is granted on a coin flip.
type RandomPolicy struct {
	Enabled     bool    `yaml:"enabled" json:"enabled"`
	Probability float64 `yaml:"probability" json:"probability" validate:"gte=0,lte=1"`
	GiftAlways  bool    `yaml:"giftAlways,omitempty" json:"giftAlways,omitempty"`
	GiftNever   bool    `yaml:"giftNever,omitempty" json:"giftNever,omitempty"`

	// Optional overrides used instead of the scripted gift on reappearances
	Gift        *Gift  `yaml:"gift,omitempty" json:"gift,omitempty"`
	GiftMessage string `yaml:"giftMessage,omitempty" json:"giftMessage,omitempty"`
}

// AnimalConfig is one Animal Catalog entry
type AnimalConfig struct {
	Type        domain.AnimalType `yaml:"type" json:"type" validate:"required"`
	Name        string            `yaml:"name" json:"name" validate:"required,max=50"`
	Nickname    string            `yaml:"nickname" json:"nickname"`
	Gift        Gift              `yaml:"gift" json:"gift"`
	GiftMessage string            `yaml:"giftMessage" json:"giftMessage"`
	Trigger     Trigger           `yaml:"trigger" json:"trigger"`
	Random      *RandomPolicy     `yaml:"random,omitempty" json:"random,omitempty"`
}

// RandomEnabled reports whether the animal can reappear randomly
func (a AnimalConfig) RandomEnabled() bool {
	return a.Random != nil && a.Random.Enabled
}

// DecorationConfig is a cosmetic item that can be owned and equipped
type DecorationConfig struct {
	ID          string `yaml:"id" json:"id" validate:"required"`
	Name        string `yaml:"name" json:"name" validate:"required"`
	Description string `yaml:"description" json:"description"`
}

// File is the on-disk layout of a catalog. Lists keep the display order stable.
type File struct {
	DefaultSeed domain.PlantType   `yaml:"defaultSeed" json:"defaultSeed" validate:"required"`
	Plants      []PlantConfig      `yaml:"plants" json:"plants" validate:"required,min=1,dive"`
	Animals     []AnimalConfig     `yaml:"animals" json:"animals" validate:"dive"`
	Decorations []DecorationConfig `yaml:"decorations" json:"decorations" validate:"dive"`
}
