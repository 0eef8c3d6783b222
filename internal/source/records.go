package source

import "encoding/json"

// Augment is the raw augment stat block
type Augment struct {
	BackpackSlots        Number       `json:"backpack_slots"`
	SafePocketSize       Number       `json:"safe_pocket_slots"`
	QuickUseSlots        Number       `json:"quick_use_slots"`
	WeaponSlots          Number       `json:"weapon_slots"`
	WeightLimit          Number       `json:"weight_limit"`
	SupportedShieldTypes List[string] `json:"shield_compatibility"`
}

func (a *Augment) UnmarshalJSON(b []byte) error {
	type plain Augment
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		*a = Augment{}
		return nil
	}
	*a = Augment(p)
	return nil
}

// RecipeDef is one crafting definition attached to an item
type RecipeDef struct {
	Result      NumberMap `json:"result"`
	Ingredients NumberMap `json:"ingredients"`
	Workbenches NumberMap `json:"workbenches"`
	Blueprint   Flag      `json:"blueprint"`
	InRaid      Flag      `json:"in_raid"`
}

// HasContent reports whether any of result, ingredients or workbenches is
// given, even as an empty object.
func (d RecipeDef) HasContent() bool {
	return d.Result.Present() || d.Ingredients.Present() || d.Workbenches.Present()
}

// RecipeList accepts either a single definition object or an array of them
type RecipeList []RecipeDef

func (l *RecipeList) UnmarshalJSON(b []byte) error {
	*l = nil
	if isNull(b) {
		return nil
	}
	var many List[RecipeDef]
	if err := many.UnmarshalJSON(b); err == nil && many != nil {
		*l = RecipeList(many)
		return nil
	}
	var one RecipeDef
	if err := json.Unmarshal(b, &one); err == nil {
		*l = RecipeList{one}
	}
	return nil
}

// First returns the first definition, if any
func (l RecipeList) First() (RecipeDef, bool) {
	if len(l) == 0 {
		return RecipeDef{}, false
	}
	return l[0], true
}

// Item is a raw record from any item-kind file. Mods share this shape and
// additionally carry stat_modifiers and compatible_weapons.
type Item struct {
	ID                Text            `json:"id"`
	Name              Text            `json:"name"`
	Description       Text            `json:"description"`
	Caption           Text            `json:"caption"`
	Type              Text            `json:"type"`
	VerboseCategory   Text            `json:"verbose_category"`
	CategoryTags      List[string]    `json:"category_tags"`
	Rarity            Text            `json:"rarity"`
	Weight            Number          `json:"weight"`
	StackSize         Number          `json:"stack_size"`
	SellPrice         Number          `json:"sell_price"`
	FoundIn           List[string]    `json:"found_in"`
	Augment           *Augment        `json:"augment"`
	QuickUse          json.RawMessage `json:"quick_use"`
	Recipe            RecipeList      `json:"recipe"`
	Recycling         NumberMap       `json:"recycling"`
	StatModifiers     NumberMap       `json:"stat_modifiers"`
	CompatibleWeapons List[string]    `json:"compatible_weapons"`
}

// Identified reports whether the record has the id and name every entity
// needs.
func (it *Item) Identified() bool {
	return it.ID.Present() && it.Name.Present()
}

// HasQuickUse reports whether a non-null quick_use block exists
func (it *Item) HasQuickUse() bool {
	return len(it.QuickUse) > 0 && !isNull(it.QuickUse)
}

// WeaponBase is the nested base stat block of a weapon record
type WeaponBase struct {
	Stats               NumberMap `json:"stats"`
	MagazineSize        Number    `json:"magazine_size"`
	FiringMode          Text      `json:"firing_mode"`
	ArcArmorPenetration Text      `json:"arc_armor_penetration"`
	SellPrice           Number    `json:"sell_price"`
	Weight              Number    `json:"weight"`
	RecycledMaterials   NumberMap `json:"recycled_materials"`
}

func (w *WeaponBase) UnmarshalJSON(b []byte) error {
	type plain WeaponBase
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		*w = WeaponBase{}
		return nil
	}
	*w = WeaponBase(p)
	return nil
}

// UpgradeEntry is one level of a weapon's upgrade path
type UpgradeEntry struct {
	FromLevel         Number    `json:"from_level"`
	ToLevel           Number    `json:"to_level"`
	Materials         NumberMap `json:"materials"`
	Perks             NumberMap `json:"perks"`
	RepairMaterials   NumberMap `json:"repair_materials"`
	RepairDurability  Number    `json:"repair_durability"`
	RecycledMaterials NumberMap `json:"recycled_materials"`
	SellPrice         Number    `json:"sell_price"`
}

// Level is to_level when given, otherwise from_level+1 with from_level
// defaulting to 0.
func (u UpgradeEntry) Level() int {
	if to, ok := u.ToLevel.Int(); ok {
		return to
	}
	from, _ := u.FromLevel.Int()
	return from + 1
}

// Weapon is a raw weapon record
type Weapon struct {
	Item
	AmmoType            Text               `json:"ammo_type"`
	Class               Text               `json:"class"`
	WeaponClass         Text               `json:"weapon_class"`
	WeaponType          Text               `json:"weapon_type"`
	ModSlots            List[string]       `json:"mod_slots"`
	Stats               NumberMap          `json:"stats"`
	MagazineSize        Number             `json:"magazine_size"`
	FiringMode          Text               `json:"firing_mode"`
	ArcArmorPenetration Text               `json:"arc_armor_penetration"`
	Base                *WeaponBase        `json:"base"`
	Upgrades            List[UpgradeEntry] `json:"upgrades"`
}

// StatBlock returns the nested base block, or the top-level fields when the
// record has none.
func (w *Weapon) StatBlock() WeaponBase {
	if w.Base != nil {
		return *w.Base
	}
	return WeaponBase{
		Stats:               w.Stats,
		MagazineSize:        w.MagazineSize,
		FiringMode:          w.FiringMode,
		ArcArmorPenetration: w.ArcArmorPenetration,
		SellPrice:           w.SellPrice,
		Weight:              w.Weight,
	}
}

// ClassName returns the first of weapon_type, weapon_class and class
func (w *Weapon) ClassName() string {
	for _, t := range []Text{w.WeaponType, w.WeaponClass, w.Class} {
		if t.Present() {
			return t.Value
		}
	}
	return ""
}

// SellPriceValue prefers base.sell_price
func (w *Weapon) SellPriceValue() Number {
	if w.Base != nil && w.Base.SellPrice.Valid {
		return w.Base.SellPrice
	}
	return w.SellPrice
}

// WeightValue prefers base.weight
func (w *Weapon) WeightValue() Number {
	if w.Base != nil && w.Base.Weight.Valid {
		return w.Base.Weight
	}
	return w.Weight
}

// RecyclingOutputs prefers base.recycled_materials over a top-level
// recycling block.
func (w *Weapon) RecyclingOutputs() NumberMap {
	if w.Base != nil && w.Base.RecycledMaterials.Present() {
		return w.Base.RecycledMaterials
	}
	return w.Recycling
}

// Workbench is a raw workbench record. Tiers are positional: index 0 holds
// the requirements of tier 1.
type Workbench struct {
	ID            Text            `json:"id"`
	Name          Text            `json:"name"`
	Description   Text            `json:"description"`
	Icon          Text            `json:"icon"`
	BaseTier      Number          `json:"base_tier"`
	RaidsRequired Number          `json:"raids_required"`
	Tiers         List[NumberMap] `json:"tiers"`
	TierNames     TextMap         `json:"tier_names"`
}

// Identified reports whether the record has an id and name
func (w *Workbench) Identified() bool {
	return w.ID.Present() && w.Name.Present()
}
