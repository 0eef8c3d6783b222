package domain

// BatchKind declares what a source file contains. It drives category
// defaults and which extra payloads an item record carries.
type BatchKind string

const (
	KindGeneral   BatchKind = "general"
	KindAugment   BatchKind = "augment"
	KindGrenade   BatchKind = "grenade"
	KindHealing   BatchKind = "healing"
	KindQuickUse  BatchKind = "quick_use"
	KindTrap      BatchKind = "trap"
	KindShield    BatchKind = "shield"
	KindMod       BatchKind = "mod"
	KindWeapon    BatchKind = "weapon"
	KindWorkbench BatchKind = "workbench"
)

// IsValid reports whether k is a known batch kind
func (k BatchKind) IsValid() bool {
	switch k {
	case KindGeneral, KindAugment, KindGrenade, KindHealing, KindQuickUse,
		KindTrap, KindShield, KindMod, KindWeapon, KindWorkbench:
		return true
	}
	return false
}

// IsItemFile reports whether records of this kind are plain item rows
// ingested by the item phase
func (k BatchKind) IsItemFile() bool {
	return k != KindWeapon && k != KindWorkbench && k.IsValid()
}

// EntityType names the tallies of the run summary
type EntityType string

const (
	EntityItem           EntityType = "items"
	EntityWeapon         EntityType = "weapons"
	EntityCompatibleMods EntityType = "compatible_mods"
	EntityWorkbench      EntityType = "workbenches"
	EntityTier           EntityType = "tiers"
	EntityRecipe         EntityType = "recipes"
	EntityUpgrade        EntityType = "upgrades"
)

// EntityOrder is the order tallies are reported in
var EntityOrder = []EntityType{
	EntityItem,
	EntityWeapon,
	EntityCompatibleMods,
	EntityWorkbench,
	EntityTier,
	EntityRecipe,
	EntityUpgrade,
}
