package validation

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSchema(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "test.schema.json")
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	v := NewSchemaValidator()
	schemaPath := writeSchema(t, `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"properties": {
			"name": {"type": "string"},
			"age": {"type": "integer", "minimum": 0}
		},
		"required": ["name"]
	}`)

	tests := []struct {
		name     string
		data     string
		errorMsg string
	}{
		{"valid data", `{"name": "Ferro", "age": 3}`, ""},
		{"missing required field", `{"age": 25}`, "required"},
		{"wrong type for field", `{"name": "Ferro", "age": "three"}`, "age"},
		{"constraint violation", `{"name": "Ferro", "age": -5}`, "age"},
		{"invalid JSON", `{"name": "Ferro", "age": }`, "parse JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataPath := filepath.Join(t.TempDir(), "data.json")
			require.NoError(t, os.WriteFile(dataPath, []byte(tt.data), 0644))

			err := v.ValidateFile(dataPath, schemaPath)
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_MissingFiles(t *testing.T) {
	v := NewSchemaValidator()

	t.Run("unknown schema", func(t *testing.T) {
		err := v.ValidateBytes([]byte(`{}`), "nonexistent.schema.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load schema")
	})

	t.Run("unknown data file", func(t *testing.T) {
		err := v.ValidateFile("nonexistent.json", StatMappingSchema)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read data file")
	})
}

func TestSchemaValidator_ListsEveryViolation(t *testing.T) {
	v := NewSchemaValidator()
	data := `{"mods": [
		{"key_raw": "a", "normalized": "a", "kind": "exponential", "unit": "percent", "sign": "positive"},
		{"key_raw": "b", "normalized": "b", "kind": "additive", "unit": "furlongs", "sign": "positive"}]}`

	err := v.ValidateBytes([]byte(data), StatMappingSchema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/mods/0/kind")
	assert.Contains(t, err.Error(), "/mods/1/unit")
}

func TestSchemaValidator_ConcurrentUse(t *testing.T) {
	v := NewSchemaValidator()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, v.ValidateBytes([]byte(`{"mods": []}`), StatMappingSchema))
		}()
	}
	wg.Wait()
}

func TestSchemaValidator_CachesCompiledSchemas(t *testing.T) {
	v := NewSchemaValidator().(*validator)

	data := []byte(`{"mods": []}`)
	require.NoError(t, v.ValidateBytes(data, StatMappingSchema))
	require.NoError(t, v.ValidateBytes(data, StatMappingSchema))

	assert.Len(t, v.schemas, 1)
}

func TestSchemaValidator_StatMappingSchema(t *testing.T) {
	v := NewSchemaValidator()

	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{
			name: "valid entries",
			data: `{"mods": [{"key_raw": "Increased Reload Speed_pct", "key_slug": "increased_reload_speed_pct",
				"normalized": "reload_speed", "kind": "multiplicative", "unit": "percent", "sign": "positive"}],
				"upgrades": []}`,
		},
		{
			name:    "unknown kind",
			data:    `{"mods": [{"key_raw": "x", "normalized": "x", "kind": "exponential", "unit": "percent", "sign": "positive"}]}`,
			wantErr: true,
		},
		{
			name:    "no key at all",
			data:    `{"mods": [{"normalized": "x", "kind": "additive", "unit": "absolute", "sign": "positive"}]}`,
			wantErr: true,
		},
		{
			name:    "mods section required",
			data:    `{"upgrades": []}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), StatMappingSchema)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSchemaValidator_ManifestSchema(t *testing.T) {
	v := NewSchemaValidator()

	assert.NoError(t, v.ValidateBytes([]byte(`{"files": [{"file": "weapons.json", "kind": "weapon"}]}`), ManifestSchema))
	assert.Error(t, v.ValidateBytes([]byte(`{"files": [{"file": "weapons.json", "kind": "vehicle"}]}`), ManifestSchema))
	assert.Error(t, v.ValidateBytes([]byte(`{"files": []}`), ManifestSchema))
}
