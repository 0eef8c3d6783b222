package source

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeList(t *testing.T) {
	t.Run("single object", func(t *testing.T) {
		var l RecipeList
		require.NoError(t, json.Unmarshal([]byte(`{"result": {"bandage": 2}, "ingredients": {"fabric": 3}}`), &l))
		require.Len(t, l, 1)
		assert.Equal(t, []string{"bandage"}, l[0].Result.Keys())
		assert.True(t, l[0].HasContent())
	})

	t.Run("array", func(t *testing.T) {
		var l RecipeList
		require.NoError(t, json.Unmarshal([]byte(`[{"ingredients": {}}, {"blueprint": true}]`), &l))
		require.Len(t, l, 2)
		assert.True(t, l[0].HasContent(), "an empty object still counts as given")
		assert.False(t, l[1].HasContent())
		assert.True(t, bool(l[1].Blueprint))
	})

	t.Run("null and scalars", func(t *testing.T) {
		for _, raw := range []string{`null`, `"recipe"`, `3`} {
			var l RecipeList
			require.NoError(t, json.Unmarshal([]byte(raw), &l), raw)
			_, ok := l.First()
			assert.False(t, ok, raw)
		}
	})
}

func TestItem_Decode(t *testing.T) {
	raw := `{
		"id": "bandage",
		"name": "Bandage",
		"description": "Stops bleeding",
		"rarity": "Common",
		"weight": 0.2,
		"stack_size": "five",
		"sell_price": 120,
		"found_in": ["Residential", 5],
		"augment": "none",
		"quick_use": {"healing": {"health": {"health": 15}}},
		"recycling": {"fabric": 1}
	}`
	var it Item
	require.NoError(t, json.Unmarshal([]byte(raw), &it))

	assert.True(t, it.Identified())
	assert.Equal(t, "Bandage", it.Name.Value)
	assert.False(t, it.StackSize.Valid)
	assert.Equal(t, 120.0, it.SellPrice.Value)
	assert.Equal(t, List[string]{"Residential"}, it.FoundIn)
	require.NotNil(t, it.Augment)
	assert.False(t, it.Augment.BackpackSlots.Valid)
	assert.True(t, it.HasQuickUse())
	assert.True(t, it.Recycling.Present())

	var anon Item
	require.NoError(t, json.Unmarshal([]byte(`{"id": "x", "quick_use": null}`), &anon))
	assert.False(t, anon.Identified())
	assert.False(t, anon.HasQuickUse())
}

func TestWeapon_StatBlock(t *testing.T) {
	t.Run("base block wins", func(t *testing.T) {
		raw := `{
			"id": "ferro", "name": "Ferro", "sell_price": 1, "weight": 9,
			"stats": {"damage": 1},
			"base": {"stats": {"damage": 40}, "sell_price": 475, "recycled_materials": {"metal_parts": 3}},
			"recycling": {"scrap": 1}
		}`
		var w Weapon
		require.NoError(t, json.Unmarshal([]byte(raw), &w))

		block := w.StatBlock()
		assert.Equal(t, 40.0, block.Stats.Entries()[0].Value.Value)
		assert.Equal(t, 475.0, w.SellPriceValue().Value)
		assert.Equal(t, 9.0, w.WeightValue().Value, "falls back to the top-level weight")
		assert.Equal(t, []string{"metal_parts"}, w.RecyclingOutputs().Keys())
	})

	t.Run("flat record", func(t *testing.T) {
		raw := `{"id": "kettle", "name": "Kettle", "stats": {"fire_rate": 6}, "magazine_size": 20, "class": "Battle Rifle"}`
		var w Weapon
		require.NoError(t, json.Unmarshal([]byte(raw), &w))

		block := w.StatBlock()
		assert.Equal(t, []string{"fire_rate"}, block.Stats.Keys())
		assert.Equal(t, 20.0, block.MagazineSize.Value)
		assert.Equal(t, "Battle Rifle", w.ClassName())
	})

	t.Run("class lookup order", func(t *testing.T) {
		var w Weapon
		require.NoError(t, json.Unmarshal([]byte(`{"class": "c", "weapon_class": "wc", "weapon_type": "wt"}`), &w))
		assert.Equal(t, "wt", w.ClassName())
	})
}

func TestUpgradeEntry_Level(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"to level", `{"from_level": 1, "to_level": 3}`, 3},
		{"from level only", `{"from_level": 2}`, 3},
		{"neither", `{}`, 1},
		{"fractional to level", `{"to_level": 2.9}`, 2},
		{"out of range to level", `{"from_level": 4, "to_level": 1e20}`, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var u UpgradeEntry
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &u))
			assert.Equal(t, tt.want, u.Level())
		})
	}
}

func TestWorkbench_Decode(t *testing.T) {
	raw := `{
		"id": "gunsmith", "name": "Gunsmith",
		"tiers": [{"metal_parts": 5}, {"metal_parts": "10", "wires": 2}],
		"tier_names": {"1": " Basic ", "2": 7}
	}`
	var wb Workbench
	require.NoError(t, json.Unmarshal([]byte(raw), &wb))

	assert.True(t, wb.Identified())
	require.Len(t, wb.Tiers, 2)
	assert.Equal(t, []string{"metal_parts", "wires"}, wb.Tiers[1].Keys())
	assert.Equal(t, TextMap{"1": " Basic "}, wb.TierNames)
	assert.False(t, wb.RaidsRequired.Valid)
}
