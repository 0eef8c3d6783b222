package domain

// AmmoType is the closed set of weapon ammo types
type AmmoType string

const (
	AmmoLight    AmmoType = "light"
	AmmoMedium   AmmoType = "medium"
	AmmoHeavy    AmmoType = "heavy"
	AmmoShotgun  AmmoType = "shotgun"
	AmmoEnergy   AmmoType = "energy"
	AmmoLauncher AmmoType = "launcher"
)

// WeaponClass is the closed set of weapon classes
type WeaponClass string

const (
	WeaponClassAssaultRifle WeaponClass = "assault_rifle"
	WeaponClassBattleRifle  WeaponClass = "battle_rifle"
	WeaponClassSMG          WeaponClass = "smg"
	WeaponClassShotgun      WeaponClass = "shotgun"
	WeaponClassPistol       WeaponClass = "pistol"
	WeaponClassHandCannon   WeaponClass = "hand_cannon"
	WeaponClassLMG          WeaponClass = "lmg"
	WeaponClassSniperRifle  WeaponClass = "sniper_rifle"
	WeaponClassSpecial      WeaponClass = "special"
)

// ModSlot is the closed set of weapon modification slots
type ModSlot string

const (
	ModSlotMuzzle   ModSlot = "muzzle"
	ModSlotGrip     ModSlot = "grip"
	ModSlotMagazine ModSlot = "magazine"
	ModSlotStock    ModSlot = "stock"
	ModSlotTech     ModSlot = "tech"
)

// Weapon is the 1:1 extension row of a weapon item. CompatibleMods is
// maintained separately from the rest of the row.
type Weapon struct {
	ItemID              string       `json:"item_id" db:"item_id"`
	AmmoType            *AmmoType    `json:"ammo_type,omitempty" db:"ammo_type"`
	WeaponClass         *WeaponClass `json:"weapon_class,omitempty" db:"weapon_class"`
	ModSlots            []ModSlot    `json:"mod_slots" db:"mod_slots"`
	CompatibleMods      []string     `json:"compatible_mods,omitempty" db:"compatible_mods"`
	StatsBase           Modifiers    `json:"stats_base" db:"stats_base"`
	FiringMode          *string      `json:"firing_mode,omitempty" db:"firing_mode"`
	ArcArmorPenetration *string      `json:"arc_armor_penetration,omitempty" db:"arc_armor_penetration"`
}
