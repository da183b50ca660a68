package catalog

import "github.com/osse101/HealingGarden_Go/internal/domain"

// Mail ids referenced by the default animal table
const (
	MailIDWelcome = "welcome"
	MailIDOwl     = "owl-letter"
)

// Decoration ids
const (
	DecorationGlasses = "glasses"
)

// DefaultFile returns the built-in catalog tables
func DefaultFile() File {
	return File{
		DefaultSeed: domain.PlantCarrot,
		Plants: []PlantConfig{
			{Type: domain.PlantCarrot, Name: "Carrot", SeedPrice: 0, HarvestGold: 10, GrowthMinutes: 30, WaterBonusMinutes: 5, Rarity: domain.RarityCommon},
			{Type: domain.PlantTurnip, Name: "Turnip", SeedPrice: 10, HarvestGold: 25, GrowthMinutes: 60, WaterBonusMinutes: 10, Rarity: domain.RarityCommon},
			{Type: domain.PlantStrawberry, Name: "Strawberry", SeedPrice: 20, HarvestGold: 45, GrowthMinutes: 120, WaterBonusMinutes: 20, Rarity: domain.RarityCommon},
			{Type: domain.PlantWatermelon, Name: "Watermelon", SeedPrice: 40, HarvestGold: 100, GrowthMinutes: 240, WaterBonusMinutes: 30, Rarity: domain.RarityRare},
			{Type: domain.PlantPeach, Name: "Peach", SeedPrice: 60, HarvestGold: 150, GrowthMinutes: 300, WaterBonusMinutes: 40, Rarity: domain.RarityRare},
			{Type: domain.PlantGrape, Name: "Grape", SeedPrice: 80, HarvestGold: 220, GrowthMinutes: 360, WaterBonusMinutes: 45, Rarity: domain.RarityEpic},
			{Type: domain.PlantApple, Name: "Apple", SeedPrice: 100, HarvestGold: 300, GrowthMinutes: 480, WaterBonusMinutes: 60, Rarity: domain.RarityEpic},
		},
		Animals: []AnimalConfig{
			{
				Type:        domain.AnimalRabbit,
				Name:        "Rabbit",
				Nickname:    "Bunbun",
				Gift:        Gift{Kind: domain.GiftSeed, SeedType: domain.PlantStrawberry, Amount: 1},
				GiftMessage: "Your new friend Bunbun brought you a strawberry seed!",
				Trigger:     Trigger{Type: TriggerHarvest, RequiredPlant: domain.PlantCarrot},
				Random: &RandomPolicy{
					Enabled:     true,
					Probability: 0.3,
					Gift:        &Gift{Kind: domain.GiftWater, Amount: 2},
					GiftMessage: "Bunbun came back and filled your watering can!",
				},
			},
			{
				Type:        domain.AnimalCat,
				Name:        "Cat",
				Nickname:    "Mittens",
				Gift:        Gift{Kind: domain.GiftGold, Amount: 30},
				GiftMessage: "Mittens found some coins while you were away!",
				Trigger: Trigger{
					Type:      TriggerCondition,
					Condition: ConditionVisitWithoutHarvest,
					Threshold: 3,
				},
				Random: &RandomPolicy{
					Enabled:     true,
					Probability: 0.2,
					GiftAlways:  true,
					Gift:        &Gift{Kind: domain.GiftGold, Amount: 15},
					GiftMessage: "Mittens dropped by with a few coins.",
				},
			},
			{
				Type:        domain.AnimalCapybara,
				Name:        "Capybara",
				Nickname:    "Cappy",
				Gift:        Gift{Kind: domain.GiftSeed, SeedType: domain.PlantWatermelon, Amount: 1},
				GiftMessage: "Cappy relaxed in your garden and left a watermelon seed!",
				Trigger: Trigger{
					Type:           TriggerCondition,
					Condition:      ConditionVisitWithoutHarvest,
					Threshold:      5,
					RequiresAnimal: domain.AnimalCat,
				},
				Random: &RandomPolicy{
					Enabled:     true,
					Probability: 0.15,
					GiftNever:   true,
				},
			},
			{
				Type:        domain.AnimalOwl,
				Name:        "Owl",
				Nickname:    "Hoot",
				Gift:        Gift{Kind: domain.GiftDecoration, DecorationID: DecorationGlasses},
				GiftMessage: "Hoot left you a pair of tiny glasses!",
				Trigger:     Trigger{Type: TriggerMailRead, MailID: MailIDOwl, DelayHours: 24},
			},
			{
				Type:        domain.AnimalTurtle,
				Name:        "Turtle",
				Nickname:    "Shelly",
				Gift:        Gift{Kind: domain.GiftSeed, SeedType: domain.PlantStrawberry, Amount: 2},
				GiftMessage: "Shelly brought you strawberry seeds!",
				Trigger:     Trigger{Type: TriggerDisabled},
			},
			{
				Type:        domain.AnimalHedgehog,
				Name:        "Hedgehog",
				Nickname:    "Spike",
				Gift:        Gift{Kind: domain.GiftSeed, SeedType: domain.PlantWatermelon, Amount: 2},
				GiftMessage: "Spike brought you watermelon seeds!",
				Trigger:     Trigger{Type: TriggerDisabled},
			},
			{
				Type:        domain.AnimalRaccoon,
				Name:        "Raccoon",
				Nickname:    "Bandit",
				Gift:        Gift{Kind: domain.GiftSeed, SeedType: domain.PlantPeach, Amount: 1},
				GiftMessage: "Bandit brought you a peach seed!",
				Trigger:     Trigger{Type: TriggerDisabled},
			},
			{
				Type:        domain.AnimalFrog,
				Name:        "Frog",
				Nickname:    "Ribbit",
				Gift:        Gift{Kind: domain.GiftSeed, SeedType: domain.PlantGrape, Amount: 1},
				GiftMessage: "Ribbit brought you a grape seed!",
				Trigger:     Trigger{Type: TriggerDisabled},
			},
		},
		Decorations: []DecorationConfig{
			{ID: DecorationGlasses, Name: "Glasses", Description: "Cute glasses, a present from the owl"},
		},
	}
}
