package persistence

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/osse101/HealingGarden_Go/internal/garden"
)

// fieldsByVersion lists the state fields each schema version introduced.
// Version 0 is the baseline every save is expected to carry.
var fieldsByVersion = [CurrentVersion + 1][]string{
	0: {"level", "gold", "water", "lastWaterRechargeTime", "plants", "collection", "settings"},
	1: {"seeds", "collectionSeen"},
	2: {"visitors", "claimedAnimals", "visitCountWithoutHarvest"},
	3: {"mails", "firstHarvestTime"},
	4: {"dailyRandomVisitCount", "lastRandomVisitDate", "decorations", "equippedDecorations"},
}

// Migrate upgrades a decoded state map from version `from` to CurrentVersion.
// Any known field that is absent (or null) is filled on every load, whatever
// version the blob claims, so a damaged save never decodes to a null list.
// Defaults come from the state of a brand-new garden at now. Steps that rewrite
// existing data run only when crossing their version. It returns the versions
// that were applied.
func Migrate(state map[string]any, from int, now time.Time, loc *time.Location) ([]int, error) {
	defaults, err := defaultFields(now, loc)
	if err != nil {
		return nil, err
	}

	for _, fields := range fieldsByVersion {
		backfill(state, defaults, fields)
	}

	if from < 0 {
		from = 0
	}
	var applied []int
	for v := from + 1; v <= CurrentVersion; v++ {
		if v == 4 {
			backfillReadAt(state)
		}
		applied = append(applied, v)
	}
	return applied, nil
}

func defaultFields(now time.Time, loc *time.Location) (map[string]any, error) {
	data, err := json.Marshal(garden.DefaultState(now, loc))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgEncodeFailed, err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgDecodeFailed, err)
	}
	return m, nil
}

func backfill(state, defaults map[string]any, fields []string) {
	for _, f := range fields {
		if v, ok := state[f]; ok && v != nil {
			continue
		}
		state[f] = defaults[f]
	}
}

// backfillReadAt gives read mail from older saves a read time so mail-read
// triggers have an anchor. The creation time is the closest known value.
func backfillReadAt(state map[string]any) {
	mails, ok := state["mails"].([]any)
	if !ok {
		return
	}
	for _, raw := range mails {
		m, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if read, _ := m["isRead"].(bool); !read {
			continue
		}
		if v, ok := m["readAt"]; ok && v != nil {
			continue
		}
		m["readAt"] = m["createdAt"]
	}
}
