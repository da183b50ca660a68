package validation

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer", "minimum": 0}
	},
	"required": ["name"]
}`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"person.schema.json": &fstest.MapFile{Data: []byte(personSchema)},
	}
}

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	v := NewSchemaValidatorFS(testFS())

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{"valid data", `{"name": "Mina", "age": 30}`, false, ""},
		{"valid without optional field", `{"name": "Mina"}`, false, ""},
		{"missing required field", `{"age": 25}`, true, "required"},
		{"wrong type for field", `{"name": "Mina", "age": "thirty"}`, true, "age"},
		{"constraint violation", `{"name": "Mina", "age": -5}`, true, "age"},
		{"invalid JSON", `{"name": "Mina", "age": }`, true, "parse JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), "person.schema.json")
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	v := NewSchemaValidatorFS(testFS())
	dataPath := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(dataPath, []byte(`{"name": "Mina"}`), 0644))

	assert.NoError(t, v.ValidateFile(dataPath, "person.schema.json"))

	err := v.ValidateFile(filepath.Join(t.TempDir(), "missing.json"), "person.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read data file")
}

func TestSchemaValidator_MissingSchema(t *testing.T) {
	v := NewSchemaValidatorFS(testFS())

	err := v.ValidateBytes([]byte(`{}`), "nonexistent.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")
}

func TestBundledSchemas(t *testing.T) {
	v := NewSchemaValidator()

	t.Run("save envelope", func(t *testing.T) {
		assert.NoError(t, v.ValidateBytes([]byte(`{"version": 4, "state": {"gold": 10}}`), SchemaSaveEnvelope))
		assert.Error(t, v.ValidateBytes([]byte(`{"state": {}}`), SchemaSaveEnvelope))
		assert.Error(t, v.ValidateBytes([]byte(`{"version": "four", "state": {}}`), SchemaSaveEnvelope))
		assert.Error(t, v.ValidateBytes([]byte(`{"version": 1, "state": {"plants": "none"}}`), SchemaSaveEnvelope))
	})

	t.Run("catalog", func(t *testing.T) {
		valid := `{"defaultSeed": "carrot", "plants": [{"type": "carrot", "name": "Carrot", "growthMinutes": 30, "rarity": "common"}]}`
		assert.NoError(t, v.ValidateBytes([]byte(valid), SchemaCatalog))

		badRarity := `{"defaultSeed": "carrot", "plants": [{"type": "carrot", "name": "Carrot", "growthMinutes": 30, "rarity": "legendary"}]}`
		assert.Error(t, v.ValidateBytes([]byte(badRarity), SchemaCatalog))
	})
}
