package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestItem_SameContent(t *testing.T) {
	base := func() *Item {
		return &Item{
			ID:       "bandage",
			Name:     "Bandage",
			Rarity:   RarityCommon,
			Category: CategoryQuickUse,
			MaxStack: 5,
			FoundIn:  []string{"Residential"},
			QuickUse: &QuickUse{Category: QuickUseHealing, Stats: []QuickUseStat{
				{Name: "healing", Value: ptr(15.0), PerSecond: ptr(false)},
			}},
		}
	}

	a, b := base(), base()
	assert.True(t, a.SameContent(b))

	b.RecipeID = ptr("recipe_bandage")
	assert.True(t, a.SameContent(b), "recipe pointers are not content")

	b.QuickUse.Stats[0].Value = ptr(20.0)
	assert.False(t, a.SameContent(b))

	c := base()
	c.FoundIn = nil
	a.FoundIn = []string{}
	assert.True(t, a.SameContent(c), "nil and empty found-in are the same")

	d := base()
	d.Gear = &Gear{Category: GearCategoryAugment}
	assert.False(t, base().SameContent(d))
}

func TestWeapon_SameContent(t *testing.T) {
	a := &Weapon{ItemID: "ferro", AmmoType: ptr(AmmoHeavy), StatsBase: Modifiers{}}
	b := &Weapon{ItemID: "ferro", AmmoType: ptr(AmmoHeavy), CompatibleMods: []string{"muzzle_brake"}}
	assert.True(t, a.SameContent(b))

	b.StatsBase = Modifiers{"damage": {Kind: ModifierAdditive, Unit: UnitAbsolute, Value: 40}}
	assert.False(t, a.SameContent(b))
}

func TestUpgrade_SameContent(t *testing.T) {
	a := &Upgrade{WeaponID: "ferro", Level: 2, SellPrice: ptr(500)}
	b := &Upgrade{WeaponID: "ferro", Level: 2, SellPrice: ptr(500)}
	assert.True(t, a.SameContent(b))

	b.SellPrice = nil
	assert.False(t, a.SameContent(b))
}
