package domain

import "time"

// PlantType identifies a crop species
type PlantType string

// Plant species
const (
	PlantCarrot     PlantType = "carrot"
	PlantTurnip     PlantType = "turnip"
	PlantStrawberry PlantType = "strawberry"
	PlantWatermelon PlantType = "watermelon"
	PlantPeach      PlantType = "peach"
	PlantGrape      PlantType = "grape"
	PlantApple      PlantType = "apple"
)

// AnimalType identifies a visitor species
type AnimalType string

// Visitor species
const (
	AnimalRabbit   AnimalType = "rabbit"
	AnimalCat      AnimalType = "cat"
	AnimalCapybara AnimalType = "capybara"
	AnimalOwl      AnimalType = "owl"
	AnimalTurtle   AnimalType = "turtle"
	AnimalHedgehog AnimalType = "hedgehog"
	AnimalRaccoon  AnimalType = "raccoon"
	AnimalFrog     AnimalType = "frog"
)

// Rarity is the catalog tier of a plant
type Rarity string

// Rarity tiers
const (
	RarityCommon Rarity = "common"
	RarityRare   Rarity = "rare"
	RarityEpic   Rarity = "epic"
)

// Growth stages. Stages are derived from elapsed time, never stored.
const (
	StageSeed   = 0
	StageSprout = 1
	StageFlower = 2
	StageRipe   = 3
)

// UnlimitedSeeds marks a SeedItem that is never decremented
const UnlimitedSeeds = -1

// Plant is a crop growing in one slot of the grid
type Plant struct {
	ID          string     `json:"id"`
	SlotIndex   int        `json:"slotIndex"`
	Type        PlantType  `json:"type"`
	PlantedAt   time.Time  `json:"plantedAt"`
	LastWatered *time.Time `json:"lastWatered"`
	WaterCount  int        `json:"waterCount"`
}

// SeedItem is an inventory line for a non-default seed
type SeedItem struct {
	Type  PlantType `json:"type"`
	Count int       `json:"count"`
}

// IsUnlimited reports whether the entry uses the unlimited sentinel
func (s SeedItem) IsUnlimited() bool {
	return s.Count == UnlimitedSeeds
}

// Visitor is an animal currently present in the garden
type Visitor struct {
	Type       AnimalType `json:"type"`
	AppearedAt time.Time  `json:"appearedAt"`
	IsRandom   bool       `json:"isRandom"`
}

// MailReward is the optional payload attached to a mail
type MailReward struct {
	SeedType PlantType `json:"seedType"`
	Count    int       `json:"count"`
}

// MailItem is a letter in the player's mailbox
type MailItem struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	From      string      `json:"from"`
	Body      string      `json:"body"`
	Reward    *MailReward `json:"reward"`
	IsRead    bool        `json:"isRead"`
	IsClaimed bool        `json:"isClaimed"`
	CreatedAt time.Time   `json:"createdAt"`
	ReadAt    *time.Time  `json:"readAt"`
}

// Settings holds player toggles. They are stored but have no effect on the engine.
type Settings struct {
	SoundEnabled   bool `json:"soundEnabled"`
	HapticsEnabled bool `json:"hapticsEnabled"`
}

// GardenState is the complete state owned by a garden engine.
// The JSON layout is the persisted save format.
type GardenState struct {
	Level                 int       `json:"level"`
	Gold                  int       `json:"gold"`
	Water                 int       `json:"water"`
	LastWaterRechargeTime time.Time `json:"lastWaterRechargeTime"`

	Plants         []Plant     `json:"plants"`
	Seeds          []SeedItem  `json:"seeds"`
	Collection     []PlantType `json:"collection"`
	CollectionSeen []PlantType `json:"collectionSeen"`

	Visitors       []Visitor    `json:"visitors"`
	ClaimedAnimals []AnimalType `json:"claimedAnimals"`

	Mails []MailItem `json:"mails"`

	Decorations         []string `json:"decorations"`
	EquippedDecorations []string `json:"equippedDecorations"`

	Settings Settings `json:"settings"`

	VisitCountWithoutHarvest int        `json:"visitCountWithoutHarvest"`
	DailyRandomVisitCount    int        `json:"dailyRandomVisitCount"`
	LastRandomVisitDate      string     `json:"lastRandomVisitDate"`
	FirstHarvestTime         *time.Time `json:"firstHarvestTime"`

	// HasHarvestedThisSession closes with the next foreground. It is saved so a
	// harvest still counts when the engine is evicted before the player returns.
	HasHarvestedThisSession bool `json:"hasHarvestedThisSession,omitempty"`
}

// Clone returns a deep copy of the state
func (s *GardenState) Clone() *GardenState {
	c := *s
	c.Plants = make([]Plant, len(s.Plants))
	for i, p := range s.Plants {
		c.Plants[i] = p
		c.Plants[i].LastWatered = cloneTime(p.LastWatered)
	}
	c.Seeds = append([]SeedItem{}, s.Seeds...)
	c.Collection = append([]PlantType{}, s.Collection...)
	c.CollectionSeen = append([]PlantType{}, s.CollectionSeen...)
	c.Visitors = append([]Visitor{}, s.Visitors...)
	c.ClaimedAnimals = append([]AnimalType{}, s.ClaimedAnimals...)
	c.Mails = make([]MailItem, len(s.Mails))
	for i, m := range s.Mails {
		c.Mails[i] = m
		c.Mails[i].ReadAt = cloneTime(m.ReadAt)
		if m.Reward != nil {
			r := *m.Reward
			c.Mails[i].Reward = &r
		}
	}
	c.Decorations = append([]string{}, s.Decorations...)
	c.EquippedDecorations = append([]string{}, s.EquippedDecorations...)
	c.FirstHarvestTime = cloneTime(s.FirstHarvestTime)
	return &c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// GiftKind is the payload category of a visitor gift
type GiftKind string

// Gift kinds
const (
	GiftSeed       GiftKind = "seed"
	GiftWater      GiftKind = "water"
	GiftGold       GiftKind = "gold"
	GiftDecoration GiftKind = "decoration"
)

// VisitorGift is the outcome of claiming a visitor
type VisitorGift struct {
	Animal       AnimalType `json:"animal"`
	Granted      bool       `json:"granted"`
	Kind         GiftKind   `json:"kind,omitempty"`
	SeedType     PlantType  `json:"seedType,omitempty"`
	Amount       int        `json:"amount,omitempty"`
	DecorationID string     `json:"decorationId,omitempty"`
	Message      string     `json:"message,omitempty"`
	WasRandom    bool       `json:"wasRandom"`
}

// HarvestResult is returned when a ripe plant is collected
type HarvestResult struct {
	PlantID    string    `json:"plantId"`
	Type       PlantType `json:"type"`
	GoldEarned int       `json:"goldEarned"`
	NewEntry   bool      `json:"newEntry"`
}
