package weapon

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/raiddata/internal/catalog"
	"github.com/osse101/raiddata/internal/domain"
	"github.com/osse101/raiddata/internal/item"
	"github.com/osse101/raiddata/internal/modifier"
	"github.com/osse101/raiddata/internal/source"
	"github.com/osse101/raiddata/internal/testing/memstore"
)

func newTestIngestor(store *memstore.Store) (*Ingestor, *modifier.Diagnostics) {
	diag := modifier.NewDiagnostics()
	cat := catalog.New(64, time.Minute)
	items := item.NewIngestor(store, cat, modifier.NewTable(modifier.ScopeModStats), diag)
	table := modifier.NewTable(modifier.ScopeWeaponStats, []modifier.Entry{{
		KeyRaw:     "Damage",
		Normalized: "damage",
		Kind:       domain.ModifierAdditive,
		Unit:       domain.UnitAbsolute,
		Sign:       domain.SignPositive,
	}, {
		KeySlug:    "recoil",
		Normalized: "recoil",
		Kind:       domain.ModifierMultiplicative,
		Unit:       domain.UnitPercent,
		Sign:       domain.SignNegative,
	}})
	return NewIngestor(store, cat, items, NewStatNormalizer(table, diag)), diag
}

func decodeWeapon(t *testing.T, raw string) *source.Weapon {
	t.Helper()
	var rec source.Weapon
	require.NoError(t, json.Unmarshal([]byte(raw), &rec))
	return &rec
}

const ferroJSON = `{
	"id": "ferro_i",
	"name": "Ferro I",
	"rarity": "Common",
	"sell_price": 10,
	"weight": 1,
	"ammo_type": "Heavy Ammo",
	"weapon_type": "Battle Rifle",
	"mod_slots": ["Muzzle", "Underbarrel", "Extended-Heavy-Mag"],
	"base": {
		"stats": {"Damage": 40, "Recoil": 12, "Headshot_pct": 150, "Fire Rate": 20, "Weird Thing": 3, "Range": "55"},
		"magazine_size": 1,
		"firing_mode": " Single ",
		"arc_armor_penetration": "   ",
		"sell_price": 475.6,
		"weight": 8
	}
}`

func TestNormalize_Weapon(t *testing.T) {
	in, diag := newTestIngestor(memstore.New())

	it, w, err := in.Normalize(context.Background(), decodeWeapon(t, ferroJSON))
	require.NoError(t, err)

	assert.Equal(t, domain.CategoryWeapon, it.Category)
	assert.Equal(t, 475, it.Value)
	assert.Equal(t, 8.0, it.Weight)

	require.NotNil(t, w.AmmoType)
	assert.Equal(t, domain.AmmoHeavy, *w.AmmoType)
	require.NotNil(t, w.WeaponClass)
	assert.Equal(t, domain.WeaponClassBattleRifle, *w.WeaponClass)
	assert.Equal(t, []domain.ModSlot{domain.ModSlotMuzzle, domain.ModSlotGrip, domain.ModSlotMagazine}, w.ModSlots)
	require.NotNil(t, w.FiringMode)
	assert.Equal(t, " Single ", *w.FiringMode)
	assert.Nil(t, w.ArcArmorPenetration)

	assert.Equal(t, domain.Modifiers{
		"damage":        {Kind: domain.ModifierAdditive, Unit: domain.UnitAbsolute, Value: 40},
		"recoil":        {Kind: domain.ModifierMultiplicative, Unit: domain.UnitPercent, Value: -0.12},
		"headshot":      {Kind: domain.ModifierMultiplicative, Unit: domain.UnitPercent, Value: 1.5},
		"fire_rate":     {Kind: domain.ModifierAdditive, Unit: domain.UnitAbsolute, Value: 20},
		"weird_thing":   {Kind: domain.ModifierAdditive, Unit: domain.UnitAbsolute, Value: 3},
		"magazine_size": {Kind: domain.ModifierAdditive, Unit: domain.UnitAbsolute, Value: 1},
	}, w.StatsBase)

	unmapped := diag.Unmapped()
	require.Len(t, unmapped, 2)
	byKey := map[string]modifier.Unmapped{}
	for _, u := range unmapped {
		byKey[u.Key] = u
	}
	assert.Equal(t, inferredPercent, byKey["Headshot_pct"].Inferred)
	assert.Equal(t, []string{modifier.PathRaw, modifier.PathSlug, modifier.PathKnownName}, byKey["Headshot_pct"].Tried)
	assert.Equal(t, inferredAbsolute, byKey["Weird Thing"].Inferred)
	assert.Equal(t, modifier.ScopeWeaponStats, byKey["Weird Thing"].Scope)
	assert.Equal(t, []string{"ferro_i"}, byKey["Weird Thing"].Owners)
}

func TestNormalize_TopLevelFallbacks(t *testing.T) {
	in, _ := newTestIngestor(memstore.New())
	rec := decodeWeapon(t, `{
		"id": "stitcher_i",
		"name": "Stitcher I",
		"sell_price": 300,
		"weight": 3.5,
		"ammo_type": "Plasma",
		"class": "Submachine Thing",
		"stats": {"damage": 7}
	}`)

	it, w, err := in.Normalize(context.Background(), rec)
	require.NoError(t, err)

	assert.Equal(t, 300, it.Value)
	assert.Equal(t, 3.5, it.Weight)
	assert.Nil(t, w.AmmoType)
	assert.Nil(t, w.WeaponClass)
	assert.Empty(t, w.ModSlots)
	assert.Equal(t, 7.0, w.StatsBase["damage"].Value)
}

func TestNormalize_NoStats(t *testing.T) {
	in, _ := newTestIngestor(memstore.New())

	_, w, err := in.Normalize(context.Background(), decodeWeapon(t, `{"id": "x", "name": "X", "base": "broken"}`))
	require.NoError(t, err)

	assert.NotNil(t, w.StatsBase)
	assert.Empty(t, w.StatsBase)
}

func TestIngest_InsertThenUnchangedThenUpdated(t *testing.T) {
	store := memstore.New()
	in, _ := newTestIngestor(store)
	ctx := context.Background()

	res, err := in.Ingest(ctx, decodeWeapon(t, ferroJSON))
	require.NoError(t, err)
	assert.Equal(t, Result{Item: domain.OutcomeInserted, Weapon: domain.OutcomeInserted}, res)

	res, err = in.Ingest(ctx, decodeWeapon(t, ferroJSON))
	require.NoError(t, err)
	assert.Equal(t, Result{Item: domain.OutcomeUnchanged, Weapon: domain.OutcomeUnchanged}, res)

	changed := decodeWeapon(t, ferroJSON)
	changed.Base.MagazineSize = source.Number{Value: 5, Valid: true}
	res, err = in.Ingest(ctx, changed)
	require.NoError(t, err)
	assert.Equal(t, Result{Item: domain.OutcomeUnchanged, Weapon: domain.OutcomeUpdated}, res)

	stored, err := store.GetWeapon(ctx, "ferro_i")
	require.NoError(t, err)
	assert.Equal(t, 5.0, stored.StatsBase["magazine_size"].Value)
}

func TestIngest_RollsBackItemWhenWeaponFails(t *testing.T) {
	store := memstore.New()
	in, _ := newTestIngestor(store)
	boom := errors.New("boom")
	store.FailOn("InsertWeapon", boom)

	_, err := in.Ingest(context.Background(), decodeWeapon(t, ferroJSON))
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "ferro_i")
	assert.Empty(t, store.Items())
	assert.Equal(t, 1, store.RolledBack())
}

func TestUpsert_KeepsCompatibleMods(t *testing.T) {
	store := memstore.New()
	in, _ := newTestIngestor(store)
	ctx := context.Background()

	_, err := in.Ingest(ctx, decodeWeapon(t, ferroJSON))
	require.NoError(t, err)
	require.NoError(t, store.SetCompatibleMods(ctx, "ferro_i", []string{"muzzle_brake_i"}))

	changed := decodeWeapon(t, ferroJSON)
	changed.Base.MagazineSize = source.Number{Value: 9, Valid: true}
	_, err = in.Ingest(ctx, changed)
	require.NoError(t, err)

	stored, err := store.GetWeapon(ctx, "ferro_i")
	require.NoError(t, err)
	assert.Equal(t, []string{"muzzle_brake_i"}, stored.CompatibleMods)
}
