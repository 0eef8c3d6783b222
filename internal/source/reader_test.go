package source

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/raiddata/internal/domain"
	"github.com/osse101/raiddata/internal/validation"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

func TestReadFile(t *testing.T) {
	t.Run("splits records and hashes content", func(t *testing.T) {
		p := writeFile(t, "items.json", `[{"id": "a", "name": "A"}, 42, {"id": "b", "name": "B"}]`)
		f, err := ReadFile(p)
		require.NoError(t, err)
		assert.Len(t, f.Records, 3)
		assert.Len(t, f.Hash, 64)

		first, err := Decode[Item](f, 0)
		require.NoError(t, err)
		assert.Equal(t, "a", first.ID.Value)

		_, err = Decode[Item](f, 1)
		assert.True(t, errors.Is(err, domain.ErrMalformedRecord))
	})

	t.Run("identical content hashes identically", func(t *testing.T) {
		a, err := ParseFile("a.json", []byte(`[]`))
		require.NoError(t, err)
		b, err := ParseFile("b.json", []byte(`[]`))
		require.NoError(t, err)
		assert.Equal(t, a.Hash, b.Hash)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadFile(filepath.Join(t.TempDir(), "nope.json"))
		assert.True(t, errors.Is(err, domain.ErrUnreadableSource))
	})

	t.Run("not an array", func(t *testing.T) {
		p := writeFile(t, "obj.json", `{"id": "a"}`)
		_, err := ReadFile(p)
		assert.True(t, errors.Is(err, domain.ErrUnreadableSource))
	})
}

func TestManifest(t *testing.T) {
	t.Run("default layout", func(t *testing.T) {
		m := DefaultManifest()
		require.NoError(t, m.Validate())
		assert.Len(t, m.ItemFiles(), 8)
		assert.Equal(t, []FileSpec{{File: FileWeaponItems, Kind: domain.KindWeapon}}, m.FilesOf(domain.KindWeapon))
		assert.Equal(t, FileStatMetrics, m.MetricsFile)
	})

	t.Run("load validates against schema", func(t *testing.T) {
		v := validation.NewSchemaValidator()

		good := writeFile(t, "manifest.json", `{"files": [{"file": "mods.json", "kind": "mod"}]}`)
		m, err := LoadManifest(good, v)
		require.NoError(t, err)
		assert.Equal(t, FileStatMetrics, m.MetricsFile)
		assert.Equal(t, domain.KindMod, m.Files[0].Kind)

		bad := writeFile(t, "manifest.json", `{"files": [{"file": "mods.json", "kind": "gizmo"}]}`)
		_, err = LoadManifest(bad, v)
		assert.Error(t, err)
	})

	t.Run("validate without schema", func(t *testing.T) {
		m := &Manifest{Files: []FileSpec{{File: "x.json", Kind: "gizmo"}}}
		assert.True(t, errors.Is(m.Validate(), domain.ErrInvalidConfig))
		assert.True(t, errors.Is((&Manifest{}).Validate(), domain.ErrInvalidConfig))
	})

	t.Run("resolve", func(t *testing.T) {
		assert.Equal(t, filepath.Join("data", "x.json"), Resolve("data", "x.json"))
		assert.Equal(t, "/abs/x.json", Resolve("data", "/abs/x.json"))
	})
}
