package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns an event payload as T. Payloads published in-process
// are already T or *T; anything else (maps from a dead-letter file, raw JSON)
// is converted through JSON.
func DecodePayload[T any](payload any) (T, error) {
	var out T
	switch v := payload.(type) {
	case T:
		return v, nil
	case *T:
		if v == nil {
			return out, fmt.Errorf("decode payload: nil %T", v)
		}
		return *v, nil
	case json.RawMessage:
		return out, json.Unmarshal(v, &out)
	case []byte:
		return out, json.Unmarshal(v, &out)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return out, fmt.Errorf("decode payload: %w", err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("decode payload as %T: %w", out, err)
	}
	return out, nil
}
