package postgres

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/raiddata/internal/database"
	"github.com/osse101/raiddata/internal/domain"
	"github.com/osse101/raiddata/internal/repository"
	"github.com/osse101/raiddata/internal/testing/pgtest"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	flag.Parse()

	terminate := func() {}
	if !testing.Short() {
		ctx := context.Background()
		var connStr string
		connStr, terminate = pgtest.Start(ctx)
		if connStr != "" {
			pool, err := database.NewPool(connStr, 5, time.Minute, 5*time.Minute)
			if err == nil {
				err = database.Migrate(ctx, pool)
			}
			if err != nil {
				fmt.Printf("WARNING: Failed to prepare database: %v\n", err)
			} else {
				testPool = pool
			}
		}
	}

	code := m.Run()
	if testPool != nil {
		testPool.Close()
	}
	terminate()
	os.Exit(code)
}

// newStore returns a store on an emptied schema
func newStore(t *testing.T) *Store {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testPool == nil {
		t.Skip("Skipping integration test: database not available")
	}
	_, err := testPool.Exec(context.Background(), `
		TRUNCATE weapon_upgrades, recipe_workbench_links, tier_requirements, workbench_tiers,
			workbenches, recipe_io, weapons, items, recipes, sync_metadata CASCADE`)
	require.NoError(t, err)
	return New(testPool, 2)
}

func ptr[T any](v T) *T { return &v }

func sampleItem(id string) *domain.Item {
	return &domain.Item{
		ID:          id,
		Name:        "Bandage",
		Description: "Stops bleeding",
		FlavorText:  ptr("Smells of iodine"),
		Rarity:      domain.RarityCommon,
		Category:    domain.CategoryQuickUse,
		Value:       120,
		Weight:      0.25,
		MaxStack:    5,
		FoundIn:     []string{"Medical", "Old World"},
		QuickUse: &domain.QuickUse{
			Category: domain.QuickUseHealing,
			Stats: []domain.QuickUseStat{
				{Name: "health", Value: ptr(20.0), PerSecond: ptr(true), Duration: ptr(5.0)},
			},
		},
		Modifiers: domain.Modifiers{
			"heal_speed": {Kind: domain.ModifierMultiplicative, Unit: domain.UnitPercent, Value: 0.15},
		},
	}
}

func TestStore_ItemRoundTrip(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	_, err := s.GetItem(ctx, "bandage")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	want := sampleItem("bandage")
	require.NoError(t, s.InsertItem(ctx, want))

	got, err := s.GetItem(ctx, "bandage")
	require.NoError(t, err)
	assert.True(t, want.SameContent(got), "stored item should match: %+v", got)
	assert.Nil(t, got.Gear)

	err = s.InsertItem(ctx, want)
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)

	exists, err := s.ExistingItemIDs(ctx, []string{"bandage", "ghost"})
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"bandage": true}, exists)
}

func TestStore_UpdateItemKeepsRecipePointers(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.InsertItem(ctx, sampleItem("bandage")))
	require.NoError(t, s.InsertRecipe(ctx, &domain.Recipe{ID: "recipe_bandage", Type: domain.RecipeCrafting}))
	require.NoError(t, s.SetItemRecipe(ctx, "bandage", "recipe_bandage"))

	next := sampleItem("bandage")
	next.Name = "Big Bandage"
	next.QuickUse = nil
	next.Modifiers = nil
	require.NoError(t, s.UpdateItem(ctx, next))

	got, err := s.GetItem(ctx, "bandage")
	require.NoError(t, err)
	assert.Equal(t, "Big Bandage", got.Name)
	assert.Nil(t, got.QuickUse)
	assert.Empty(t, got.Modifiers)
	require.NotNil(t, got.RecipeID)
	assert.Equal(t, "recipe_bandage", *got.RecipeID)

	assert.ErrorIs(t, s.UpdateItem(ctx, sampleItem("ghost")), domain.ErrItemNotFound)
	assert.ErrorIs(t, s.SetItemRecipe(ctx, "bandage", "recipe_ghost"), domain.ErrConstraintViolation)
}

func TestStore_WeaponAndUpgrade(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.InsertItem(ctx, sampleItem("ferro_i")))
	ammo := domain.AmmoHeavy
	w := &domain.Weapon{
		ItemID:    "ferro_i",
		AmmoType:  &ammo,
		ModSlots:  []domain.ModSlot{domain.ModSlotMuzzle, domain.ModSlotStock},
		StatsBase: domain.Modifiers{"damage": {Kind: domain.ModifierAdditive, Unit: domain.UnitAbsolute, Value: 40}},
	}
	require.NoError(t, s.InsertWeapon(ctx, w))
	require.NoError(t, s.SetCompatibleMods(ctx, "ferro_i", []string{"silencer"}))

	w.FiringMode = ptr("semi")
	require.NoError(t, s.UpdateWeapon(ctx, w))

	got, err := s.GetWeapon(ctx, "ferro_i")
	require.NoError(t, err)
	assert.True(t, w.SameContent(got))
	assert.Equal(t, []string{"silencer"}, got.CompatibleMods)

	up := &domain.Upgrade{WeaponID: "ferro_i", Level: 2, SellPrice: ptr(900),
		Modifiers: domain.Modifiers{"reload_speed": {Kind: domain.ModifierMultiplicative, Unit: domain.UnitPercent, Value: -0.1}}}
	require.NoError(t, s.InsertUpgrade(ctx, up))
	gotUp, err := s.GetUpgrade(ctx, "ferro_i", 2)
	require.NoError(t, err)
	assert.True(t, up.SameContent(gotUp))

	_, err = s.GetUpgrade(ctx, "ferro_i", 3)
	assert.ErrorIs(t, err, domain.ErrUpgradeNotFound)
	err = s.InsertUpgrade(ctx, &domain.Upgrade{WeaponID: "ghost", Level: 2})
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)
}

func TestStore_RecipeGraph(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	for _, id := range []string{"metal_parts", "rubber", "gear_x"} {
		require.NoError(t, s.InsertItem(ctx, sampleItem(id)))
	}
	require.NoError(t, s.InsertWorkbench(ctx, &domain.Workbench{ID: "workbench", Name: "Workbench", BaseTier: 1}))
	require.NoError(t, s.InsertTier(ctx, &domain.Tier{WorkbenchID: "workbench", Tier: 1, Name: "Tier 1"}))
	require.NoError(t, s.InsertTierRequirements(ctx, []domain.TierRequirement{
		{WorkbenchID: "workbench", Tier: 1, ItemID: "metal_parts", Count: 10},
	}))
	require.NoError(t, s.InsertRecipe(ctx, &domain.Recipe{ID: "recipe_gear_x", Type: domain.RecipeCrafting}))
	require.NoError(t, s.InsertRecipe(ctx, &domain.Recipe{ID: "recycle_gear_x", Type: domain.RecipeRecycling}))

	craft := []domain.RecipeIO{
		{RecipeID: "recipe_gear_x", ItemID: "gear_x", Role: domain.RoleOutput, Quantity: 1},
		{RecipeID: "recipe_gear_x", ItemID: "metal_parts", Role: domain.RoleInput, Quantity: 3},
		{RecipeID: "recipe_gear_x", ItemID: "rubber", Role: domain.RoleInput, Quantity: 2},
	}
	require.NoError(t, s.InsertRecipeIO(ctx, craft))
	require.NoError(t, s.InsertRecipeIO(ctx, []domain.RecipeIO{
		{RecipeID: "recycle_gear_x", ItemID: "gear_x", Role: domain.RoleInput, Quantity: 1},
		{RecipeID: "recycle_gear_x", ItemID: "rubber", Role: domain.RoleOutput, Quantity: 1},
	}))
	require.NoError(t, s.InsertWorkbenchLinks(ctx, []domain.WorkbenchLink{
		{RecipeID: "recipe_gear_x", WorkbenchID: "workbench", Tier: 1},
	}))

	io, err := s.GetRecipeIO(ctx, "recipe_gear_x")
	require.NoError(t, err)
	assert.ElementsMatch(t, craft, io)

	recycling, err := s.ListRecipeIOByType(ctx, domain.RecipeRecycling)
	require.NoError(t, err)
	assert.Len(t, recycling, 2)

	links, err := s.GetWorkbenchLinks(ctx, "recipe_gear_x")
	require.NoError(t, err)
	assert.Equal(t, []domain.WorkbenchLink{{RecipeID: "recipe_gear_x", WorkbenchID: "workbench", Tier: 1}}, links)

	err = s.InsertWorkbenchLinks(ctx, []domain.WorkbenchLink{{RecipeID: "recipe_gear_x", WorkbenchID: "workbench", Tier: 9}})
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)
	err = s.InsertRecipeIO(ctx, []domain.RecipeIO{{RecipeID: "recipe_gear_x", ItemID: "ghost", Role: domain.RoleInput, Quantity: 1}})
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)

	require.NoError(t, s.DeleteRecipeIO(ctx, "recipe_gear_x"))
	io, err = s.GetRecipeIO(ctx, "recipe_gear_x")
	require.NoError(t, err)
	assert.Empty(t, io)

	reqs, err := s.GetTierRequirements(ctx, "workbench", 1)
	require.NoError(t, err)
	assert.Len(t, reqs, 1)
	_, err = s.GetTier(ctx, "workbench", 2)
	assert.ErrorIs(t, err, domain.ErrTierNotFound)
}

func TestStore_InTxRollsBack(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.InTx(ctx, func(q repository.Queries) error {
		if err := q.InsertItem(ctx, sampleItem("rubber")); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = s.GetItem(ctx, "rubber")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestStore_InTxRetriesTransient(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	attempts := 0
	err := s.InTx(ctx, func(q repository.Queries) error {
		attempts++
		if err := q.InsertItem(ctx, sampleItem("rubber")); err != nil {
			return err
		}
		if attempts == 1 {
			return fmt.Errorf("%w: simulated", domain.ErrTransient)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)

	_, err = s.GetItem(ctx, "rubber")
	assert.NoError(t, err)

	attempts = 0
	err = s.InTx(ctx, func(q repository.Queries) error {
		attempts++
		return fmt.Errorf("%w: always", domain.ErrTransient)
	})
	assert.ErrorIs(t, err, domain.ErrTransient)
	assert.Equal(t, 3, attempts)
}

func TestStore_SyncMetadata(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	_, err := s.GetSyncMetadata(ctx, "items:items.json")
	assert.ErrorIs(t, err, domain.ErrSyncNotFound)

	mod := time.Date(2026, 3, 1, 12, 0, 0, 123000, time.UTC)
	m := &domain.SyncMetadata{ConfigName: "items:items.json", LastSyncTime: mod, FileHash: "abc", FileModTime: mod}
	require.NoError(t, s.UpsertSyncMetadata(ctx, m))
	m.FileHash = "def"
	require.NoError(t, s.UpsertSyncMetadata(ctx, m))

	got, err := s.GetSyncMetadata(ctx, "items:items.json")
	require.NoError(t, err)
	assert.Equal(t, "def", got.FileHash)
	assert.True(t, mod.Equal(got.FileModTime))
}

func TestStore_Ping(t *testing.T) {
	s := newStore(t)
	assert.NoError(t, s.Ping(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Ping(ctx), domain.ErrStoreUnavailable)
}
