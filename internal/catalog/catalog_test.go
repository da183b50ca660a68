package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HealingGarden_Go/internal/domain"
)

func TestDefault_Tables(t *testing.T) {
	c := Default()

	assert.Equal(t, domain.PlantCarrot, c.DefaultSeed())
	assert.True(t, c.IsDefaultSeed(domain.PlantCarrot))
	assert.False(t, c.IsDefaultSeed(domain.PlantTurnip))

	assert.Equal(t, []domain.PlantType{
		domain.PlantCarrot, domain.PlantTurnip, domain.PlantStrawberry, domain.PlantWatermelon,
		domain.PlantPeach, domain.PlantGrape, domain.PlantApple,
	}, c.PlantTypes())

	carrot, ok := c.Plant(domain.PlantCarrot)
	require.True(t, ok)
	assert.Equal(t, 30.0, carrot.GrowthMinutes)
	assert.Equal(t, 5.0, carrot.WaterBonusMinutes)
	assert.Equal(t, 10, carrot.HarvestGold)

	_, ok = c.Plant("pumpkin")
	assert.False(t, ok)

	rabbit, ok := c.Animal(domain.AnimalRabbit)
	require.True(t, ok)
	assert.Equal(t, TriggerHarvest, rabbit.Trigger.Type)
	assert.Equal(t, domain.PlantCarrot, rabbit.Trigger.RequiredPlant)
	assert.Equal(t, domain.GiftSeed, rabbit.Gift.Kind)
	assert.Equal(t, domain.PlantStrawberry, rabbit.Gift.SeedType)
	assert.True(t, rabbit.RandomEnabled())

	owl, ok := c.Animal(domain.AnimalOwl)
	require.True(t, ok)
	assert.False(t, owl.RandomEnabled())
	assert.Equal(t, MailIDOwl, owl.Trigger.MailID)

	_, ok = c.Decoration(DecorationGlasses)
	assert.True(t, ok)
}

func TestShopPlants_SortedAndExcludesDefault(t *testing.T) {
	shop := Default().ShopPlants()

	require.NotEmpty(t, shop)
	for i, p := range shop {
		assert.NotEqual(t, domain.PlantCarrot, p.Type)
		if i > 0 {
			assert.LessOrEqual(t, shop[i-1].SeedPrice, p.SeedPrice)
		}
	}
	assert.Equal(t, domain.PlantTurnip, shop[0].Type)
}

func TestRandomVisitors_CatalogOrder(t *testing.T) {
	var got []domain.AnimalType
	for _, a := range Default().RandomVisitors() {
		got = append(got, a.Type)
	}
	assert.Equal(t, []domain.AnimalType{domain.AnimalRabbit, domain.AnimalCat, domain.AnimalCapybara}, got)
}

func TestAccessorsReturnCopies(t *testing.T) {
	c := Default()
	types := c.PlantTypes()
	types[0] = "mutated"
	assert.Equal(t, domain.PlantCarrot, c.PlantTypes()[0])
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *File)
		errMsg string
	}{
		{
			name:   "unknown default seed",
			mutate: func(f *File) { f.DefaultSeed = "pumpkin" },
			errMsg: "default seed",
		},
		{
			name:   "duplicate plant",
			mutate: func(f *File) { f.Plants = append(f.Plants, f.Plants[0]) },
			errMsg: "duplicate plant",
		},
		{
			name:   "non-positive growth",
			mutate: func(f *File) { f.Plants[1].GrowthMinutes = 0 },
			errMsg: "GrowthMinutes",
		},
		{
			name:   "bad rarity",
			mutate: func(f *File) { f.Plants[1].Rarity = "legendary" },
			errMsg: "Rarity",
		},
		{
			name:   "gift seed unknown",
			mutate: func(f *File) { f.Animals[0].Gift.SeedType = "pumpkin" },
			errMsg: "gift seed",
		},
		{
			name:   "harvest trigger unknown plant",
			mutate: func(f *File) { f.Animals[0].Trigger.RequiredPlant = "pumpkin" },
			errMsg: "harvest trigger",
		},
		{
			name:   "conflicting random policy",
			mutate: func(f *File) { f.Animals[1].Random.GiftNever = true },
			errMsg: "both giftAlways and giftNever",
		},
		{
			name:   "probability out of range",
			mutate: func(f *File) { f.Animals[0].Random.Probability = 1.5 },
			errMsg: "Probability",
		},
		{
			name:   "unknown predecessor",
			mutate: func(f *File) { f.Animals[2].Trigger.RequiresAnimal = "dragon" },
			errMsg: "requires unknown animal",
		},
		{
			name:   "mail trigger without id",
			mutate: func(f *File) { f.Animals[3].Trigger.MailID = "" },
			errMsg: "no mail id",
		},
		{
			name:   "unknown decoration gift",
			mutate: func(f *File) { f.Decorations = nil },
			errMsg: "gift decoration",
		},
		{
			name:   "bad trigger type",
			mutate: func(f *File) { f.Animals[4].Trigger.Type = "moonrise" },
			errMsg: "Type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := DefaultFile()
			tt.mutate(&f)

			_, err := New(f)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadFile_YAMLOverride(t *testing.T) {
	doc := `
defaultSeed: radish
plants:
  - type: radish
    name: Radish
    seedPrice: 0
    harvestGold: 5
    growthMinutes: 10
    waterBonusMinutes: 2
    rarity: common
  - type: pumpkin
    name: Pumpkin
    seedPrice: 50
    harvestGold: 120
    growthMinutes: 200
    waterBonusMinutes: 20
    rarity: rare
animals:
  - type: fox
    name: Fox
    nickname: Rusty
    gift: {kind: seed, seedType: pumpkin, amount: 1}
    giftMessage: Rusty left a pumpkin seed
    trigger: {type: harvest, requiredPlant: radish}
    random: {enabled: true, probability: 0.5, giftAlways: true}
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	c, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, domain.PlantType("radish"), c.DefaultSeed())
	fox, ok := c.Animal("fox")
	require.True(t, ok)
	assert.Equal(t, "Rusty", fox.Nickname)
	assert.True(t, fox.Random.GiftAlways)
	assert.Len(t, c.ShopPlants(), 1)
}

func TestLoadFile_JSONSchemaChecked(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.json")
	require.NoError(t, os.WriteFile(good, []byte(`{
		"defaultSeed": "carrot",
		"plants": [{"type": "carrot", "name": "Carrot", "growthMinutes": 30, "rarity": "common"}]
	}`), 0644))
	c, err := LoadFile(good)
	require.NoError(t, err)
	assert.Equal(t, []domain.PlantType{domain.PlantCarrot}, c.PlantTypes())

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"defaultSeed": "carrot", "plants": []}`), 0644))
	_, err = LoadFile(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read catalog")
}
