package persistence

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/osse101/HealingGarden_Go/internal/domain"
	"github.com/osse101/HealingGarden_Go/internal/validation"
)

// Envelope is the persisted layout: a schema version and the state it describes
type Envelope struct {
	Version int             `json:"version"`
	State   json.RawMessage `json:"state"`
}

// Decoded is the result of reading a save blob
type Decoded struct {
	State       *domain.GardenState
	FromVersion int
	Applied     []int
	// Replaced lists timestamps that could not be parsed and were defaulted
	Replaced []string
	// FromFuture is set when the blob was written by a newer schema
	FromFuture bool
}

// Migrated reports whether any migration step ran
func (d *Decoded) Migrated() bool {
	return len(d.Applied) > 0
}

// Encode serializes a state into a current-version envelope
func Encode(state *domain.GardenState) ([]byte, error) {
	body, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgEncodeFailed, err)
	}
	data, err := json.Marshal(Envelope{Version: CurrentVersion, State: body})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgEncodeFailed, err)
	}
	return data, nil
}

// Codec decodes save blobs of any known version into the current state layout
type Codec struct {
	schema validation.SchemaValidator
	loc    *time.Location
}

// NewCodec creates a codec. loc defines the calendar day used for backfilled dates.
func NewCodec(loc *time.Location) *Codec {
	if loc == nil {
		loc = time.Local
	}
	return &Codec{schema: validation.NewSchemaValidator(), loc: loc}
}

// Decode validates the envelope, migrates the state to CurrentVersion and
// normalizes its timestamps
func (c *Codec) Decode(data []byte, now time.Time) (*Decoded, error) {
	if err := c.schema.ValidateBytes(data, validation.SchemaSaveEnvelope); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidEnvelope, err)
	}

	var env struct {
		Version int            `json:"version"`
		State   map[string]any `json:"state"`
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&env); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgDecodeFailed, err)
	}
	if env.State == nil {
		env.State = map[string]any{}
	}

	out := &Decoded{FromVersion: env.Version, FromFuture: env.Version > CurrentVersion}

	applied, err := Migrate(env.State, env.Version, now, c.loc)
	if err != nil {
		return nil, err
	}
	out.Applied = applied
	out.Replaced = Rehydrate(env.State, now)

	normalized, err := json.Marshal(env.State)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgDecodeFailed, err)
	}
	var state domain.GardenState
	if err := json.Unmarshal(normalized, &state); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgDecodeFailed, err)
	}
	out.State = &state
	return out, nil
}
