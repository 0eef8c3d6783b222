package domain

import (
	"maps"
	"slices"
)

// SameContent reports whether two items hold the same ingested fields. The
// recipe pointers are ignored since item ingestion does not write them.
func (it *Item) SameContent(o *Item) bool {
	return it.ID == o.ID &&
		it.Name == o.Name &&
		it.Description == o.Description &&
		ptrEqual(it.FlavorText, o.FlavorText) &&
		it.Rarity == o.Rarity &&
		it.Category == o.Category &&
		it.Value == o.Value &&
		it.Weight == o.Weight &&
		it.MaxStack == o.MaxStack &&
		slices.Equal(it.FoundIn, o.FoundIn) &&
		quickUseEqual(it.QuickUse, o.QuickUse) &&
		gearEqual(it.Gear, o.Gear) &&
		maps.Equal(it.Modifiers, o.Modifiers)
}

// SameContent compares everything but CompatibleMods, which is owned by mod
// ingestion
func (w *Weapon) SameContent(o *Weapon) bool {
	return w.ItemID == o.ItemID &&
		ptrEqual(w.AmmoType, o.AmmoType) &&
		ptrEqual(w.WeaponClass, o.WeaponClass) &&
		slices.Equal(w.ModSlots, o.ModSlots) &&
		maps.Equal(w.StatsBase, o.StatsBase) &&
		ptrEqual(w.FiringMode, o.FiringMode) &&
		ptrEqual(w.ArcArmorPenetration, o.ArcArmorPenetration)
}

func (u *Upgrade) SameContent(o *Upgrade) bool {
	return u.WeaponID == o.WeaponID &&
		u.Level == o.Level &&
		maps.Equal(u.Modifiers, o.Modifiers) &&
		ptrEqual(u.RecipeID, o.RecipeID) &&
		ptrEqual(u.SellPrice, o.SellPrice)
}

func ptrEqual[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func quickUseEqual(a, b *QuickUse) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Category == b.Category && slices.EqualFunc(a.Stats, b.Stats, func(x, y QuickUseStat) bool {
		return x.Name == y.Name &&
			x.Effect == y.Effect &&
			ptrEqual(x.Value, y.Value) &&
			ptrEqual(x.PerSecond, y.PerSecond) &&
			ptrEqual(x.Duration, y.Duration) &&
			ptrEqual(x.Range, y.Range)
	})
}

func gearEqual(a, b *Gear) bool {
	if a == nil || b == nil {
		return a == b
	}
	sa, sb := a.Stats, b.Stats
	return a.Category == b.Category &&
		sa.BackpackSlots == sb.BackpackSlots &&
		sa.SafePocketSize == sb.SafePocketSize &&
		sa.QuickUseSlots == sb.QuickUseSlots &&
		sa.WeaponSlots == sb.WeaponSlots &&
		sa.WeightLimit == sb.WeightLimit &&
		slices.Equal(sa.SupportedShieldTypes, sb.SupportedShieldTypes)
}
