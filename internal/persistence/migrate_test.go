package persistence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var migrateNow = time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

func v0State() map[string]any {
	return map[string]any{
		"level":                 2,
		"gold":                  40,
		"water":                 3,
		"lastWaterRechargeTime": "2026-03-10T09:00:00Z",
		"plants":                []any{},
		"collection":            []any{"carrot"},
		"settings":              map[string]any{"soundEnabled": true, "hapticsEnabled": false},
	}
}

func TestMigrate_BackfillsMissingFields(t *testing.T) {
	state := v0State()

	applied, err := Migrate(state, 0, migrateNow, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, applied)

	// Present values are untouched
	assert.Equal(t, 40, state["gold"])
	assert.Equal(t, 3, state["water"])
	assert.Equal(t, []any{"carrot"}, state["collection"])

	// Missing ones take the fresh-garden defaults
	assert.Equal(t, []any{}, state["seeds"])
	assert.Equal(t, []any{}, state["visitors"])
	assert.Equal(t, []any{}, state["mails"])
	assert.Nil(t, state["firstHarvestTime"])
	assert.EqualValues(t, 0, state["dailyRandomVisitCount"])
	assert.Equal(t, "2026-03-10", state["lastRandomVisitDate"])
	assert.Equal(t, []any{}, state["equippedDecorations"])
}

func TestMigrate_NullCountsAsMissing(t *testing.T) {
	state := v0State()
	state["seeds"] = nil
	state["plants"] = nil

	_, err := Migrate(state, 0, migrateNow, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, []any{}, state["seeds"])
	assert.Equal(t, []any{}, state["plants"])
}

func TestMigrate_CurrentVersionIsNoop(t *testing.T) {
	state := v0State()
	_, err := Migrate(state, 0, migrateNow, time.UTC)
	require.NoError(t, err)

	applied, err := Migrate(state, CurrentVersion, migrateNow.Add(time.Hour), time.UTC)
	require.NoError(t, err)
	assert.Empty(t, applied)
	assert.Equal(t, "2026-03-10", state["lastRandomVisitDate"])
}

func TestMigrate_StartingVersionDoesNotChangeResult(t *testing.T) {
	// A blob that already carries the v2 fields must end up the same whether it
	// is treated as v0 or v2.
	build := func() map[string]any {
		s := v0State()
		s["seeds"] = []any{map[string]any{"type": "carrot", "count": 2}}
		s["collectionSeen"] = []any{"carrot"}
		s["visitors"] = []any{}
		s["claimedAnimals"] = []any{"rabbit"}
		s["visitCountWithoutHarvest"] = 1
		return s
	}

	fromZero := build()
	_, err := Migrate(fromZero, 0, migrateNow, time.UTC)
	require.NoError(t, err)

	fromTwo := build()
	applied, err := Migrate(fromTwo, 2, migrateNow, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, []int{3, 4}, applied)
	assert.Equal(t, fromZero, fromTwo)
}

func TestMigrate_CurrentBlobMissingEarlierFields(t *testing.T) {
	state := v0State()
	state["visitors"] = []any{}
	state["mails"] = []any{}

	applied, err := Migrate(state, 3, migrateNow, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, []int{4}, applied)

	// seeds and claimedAnimals belong to versions 1 and 2 but are still filled
	assert.NotNil(t, state["seeds"])
	assert.Equal(t, []any{}, state["claimedAnimals"])
	assert.Equal(t, []any{}, state["collectionSeen"])
}

func TestCodec_DecodeFillsListsMissingFromCurrentBlob(t *testing.T) {
	blob := `{"version": 4, "state": {"level": 1, "gold": 5, "water": 5, "lastWaterRechargeTime": "2026-03-10T09:00:00Z"}}`

	d, err := NewCodec(time.UTC).Decode([]byte(blob), migrateNow)
	require.NoError(t, err)
	assert.False(t, d.Migrated())
	assert.NotNil(t, d.State.Seeds)
	assert.NotNil(t, d.State.Visitors)
	assert.NotNil(t, d.State.Mails)
	assert.NotNil(t, d.State.ClaimedAnimals)

	data, err := Encode(d.State)
	require.NoError(t, err)
	for _, field := range []string{"seeds", "visitors", "mails", "claimedAnimals", "decorations"} {
		assert.NotContains(t, string(data), `"`+field+`":null`)
	}
}

func TestMigrate_NegativeVersionTreatedAsBaseline(t *testing.T) {
	state := v0State()
	applied, err := Migrate(state, -3, migrateNow, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, applied)
}

func TestMigrate_ReadMailGetsReadAt(t *testing.T) {
	state := v0State()
	state["mails"] = []any{
		map[string]any{"id": "m1", "isRead": true, "createdAt": "2026-03-01T00:00:00Z"},
		map[string]any{"id": "m2", "isRead": false, "createdAt": "2026-03-02T00:00:00Z"},
		map[string]any{"id": "m3", "isRead": true, "createdAt": "2026-03-03T00:00:00Z", "readAt": "2026-03-04T00:00:00Z"},
	}

	_, err := Migrate(state, 3, migrateNow, time.UTC)
	require.NoError(t, err)

	mails := state["mails"].([]any)
	assert.Equal(t, "2026-03-01T00:00:00Z", mails[0].(map[string]any)["readAt"])
	assert.NotContains(t, mails[1].(map[string]any), "readAt")
	assert.Equal(t, "2026-03-04T00:00:00Z", mails[2].(map[string]any)["readAt"])
}

func TestMigrate_DateUsesLocation(t *testing.T) {
	kst := time.FixedZone("KST", 9*60*60)
	state := v0State()

	// 16:00 UTC is already the next day in Seoul
	_, err := Migrate(state, 0, time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC), kst)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-11", state["lastRandomVisitDate"])
}
