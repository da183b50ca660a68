package persistence

import (
	"encoding/json"
	"math"
	"strconv"
	"time"
)

type timeField struct {
	name     string
	required bool
}

var (
	topLevelTimes = []timeField{{"lastWaterRechargeTime", true}, {"firstHarvestTime", false}}
	plantTimes    = []timeField{{"plantedAt", true}, {"lastWatered", false}}
	visitorTimes  = []timeField{{"appearedAt", true}}
	mailTimes     = []timeField{{"createdAt", true}, {"readAt", false}}
)

// Rehydrate normalizes every timestamp in a decoded state map to RFC 3339 text.
// Values may arrive as RFC 3339 strings or epoch milliseconds. An unparseable
// optional timestamp becomes null; an unparseable required one becomes now.
// It returns the paths of the values that had to be replaced.
func Rehydrate(state map[string]any, now time.Time) []string {
	var replaced []string
	fix := func(obj map[string]any, fields []timeField, prefix string) {
		for _, f := range fields {
			if !normalizeTime(obj, f, now) {
				replaced = append(replaced, prefix+f.name)
			}
		}
	}

	fix(state, topLevelTimes, "")
	eachObject(state["plants"], func(i int, obj map[string]any) {
		fix(obj, plantTimes, "plants["+strconv.Itoa(i)+"].")
	})
	eachObject(state["visitors"], func(i int, obj map[string]any) {
		fix(obj, visitorTimes, "visitors["+strconv.Itoa(i)+"].")
	})
	eachObject(state["mails"], func(i int, obj map[string]any) {
		fix(obj, mailTimes, "mails["+strconv.Itoa(i)+"].")
	})
	return replaced
}

func eachObject(list any, fn func(i int, obj map[string]any)) {
	items, ok := list.([]any)
	if !ok {
		return
	}
	for i, raw := range items {
		if obj, ok := raw.(map[string]any); ok {
			fn(i, obj)
		}
	}
}

// normalizeTime rewrites obj[f.name] in place and reports whether the original
// value was usable
func normalizeTime(obj map[string]any, f timeField, now time.Time) bool {
	raw, present := obj[f.name]
	if !present || raw == nil {
		if f.required {
			obj[f.name] = formatTime(now)
			return false
		}
		obj[f.name] = nil
		return true
	}

	if t, ok := ParseTimestamp(raw); ok {
		obj[f.name] = formatTime(t)
		return true
	}

	if f.required {
		obj[f.name] = formatTime(now)
	} else {
		obj[f.name] = nil
	}
	return false
}

// ParseTimestamp accepts RFC 3339 text, numeric strings and JSON numbers
// holding epoch milliseconds
func ParseTimestamp(raw any) (time.Time, bool) {
	switch v := raw.(type) {
	case string:
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return t, true
		}
		if ms, err := strconv.ParseInt(v, 10, 64); err == nil {
			return time.UnixMilli(ms).UTC(), true
		}
	case json.Number:
		if ms, err := v.Int64(); err == nil {
			return time.UnixMilli(ms).UTC(), true
		}
		if f, err := v.Float64(); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return time.UnixMilli(int64(f)).UTC(), true
		}
	case float64:
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			return time.UnixMilli(int64(v)).UTC(), true
		}
	case int64:
		return time.UnixMilli(v).UTC(), true
	}
	return time.Time{}, false
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}
