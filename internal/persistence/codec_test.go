package persistence

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HealingGarden_Go/internal/domain"
)

var codecNow = time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

const v0Blob = `{
	"version": 0,
	"state": {
		"level": 2,
		"gold": 40,
		"water": 3,
		"lastWaterRechargeTime": 1773133200000,
		"plants": [
			{"id": "p1", "slotIndex": 4, "type": "carrot", "plantedAt": "2026-03-10T08:00:00Z", "lastWatered": null, "waterCount": 1}
		],
		"collection": ["carrot"],
		"settings": {"soundEnabled": true, "hapticsEnabled": false}
	}
}`

func TestCodec_DecodeV0Golden(t *testing.T) {
	d, err := NewCodec(time.UTC).Decode([]byte(v0Blob), codecNow)
	require.NoError(t, err)

	assert.Equal(t, 0, d.FromVersion)
	assert.True(t, d.Migrated())
	assert.False(t, d.FromFuture)
	assert.Empty(t, d.Replaced)

	data, err := Encode(d.State)
	require.NoError(t, err)

	var pretty bytes.Buffer
	require.NoError(t, json.Indent(&pretty, data, "", "  "))

	g := goldie.New(t)
	g.Assert(t, "migrated_v0", pretty.Bytes())
}

func TestCodec_RoundTrip(t *testing.T) {
	watered := codecNow.Add(-30 * time.Minute)
	state := &domain.GardenState{
		Level:                 3,
		Gold:                  125,
		Water:                 2,
		LastWaterRechargeTime: codecNow.Add(-10 * time.Minute),
		Plants: []domain.Plant{
			{ID: "p1", SlotIndex: 0, Type: domain.PlantStrawberry, PlantedAt: codecNow.Add(-time.Hour), LastWatered: &watered, WaterCount: 2},
		},
		Seeds:          []domain.SeedItem{{Type: domain.PlantCarrot, Count: 4}},
		Collection:     []domain.PlantType{domain.PlantTurnip},
		CollectionSeen: []domain.PlantType{domain.PlantTurnip},
		Visitors:       []domain.Visitor{{Type: domain.AnimalCat, AppearedAt: codecNow, IsRandom: true}},
		ClaimedAnimals: []domain.AnimalType{domain.AnimalRabbit},
		Mails: []domain.MailItem{
			{ID: "m1", Title: "hi", From: "owl", Body: "b", Reward: &domain.MailReward{SeedType: domain.PlantTurnip, Count: 3}, CreatedAt: codecNow},
		},
		Decorations:              []string{"lantern"},
		EquippedDecorations:      []string{"lantern"},
		Settings:                 domain.Settings{SoundEnabled: true},
		VisitCountWithoutHarvest: 1,
		DailyRandomVisitCount:    2,
		LastRandomVisitDate:      "2026-03-10",
		HasHarvestedThisSession:  true,
	}

	data, err := Encode(state)
	require.NoError(t, err)

	d, err := NewCodec(time.UTC).Decode(data, codecNow)
	require.NoError(t, err)
	assert.False(t, d.Migrated())
	assert.Equal(t, CurrentVersion, d.FromVersion)

	assert.Equal(t, state, d.State)
	assert.True(t, d.State.HasHarvestedThisSession, "an open harvest session survives a reload")
}

func TestCodec_FutureVersionLoadsAsIs(t *testing.T) {
	blob := `{"version": 9, "state": {"level": 1, "gold": 5, "water": 5, "lastWaterRechargeTime": "2026-03-10T09:00:00Z", "somethingNew": true}}`

	d, err := NewCodec(time.UTC).Decode([]byte(blob), codecNow)
	require.NoError(t, err)
	assert.True(t, d.FromFuture)
	assert.False(t, d.Migrated())
	assert.Equal(t, 5, d.State.Gold)
	assert.NotNil(t, d.State.Plants)
}

func TestCodec_RejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		blob string
	}{
		{"not json", `{{{`},
		{"missing version", `{"state": {}}`},
		{"missing state", `{"version": 1}`},
		{"wrong gold type", `{"version": 4, "state": {"gold": "lots"}}`},
		{"negative version", `{"version": -1, "state": {}}`},
	}

	c := NewCodec(time.UTC)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Decode([]byte(tt.blob), codecNow)
			assert.Error(t, err)
		})
	}
}
