package classify

import "github.com/osse101/raiddata/internal/domain"

// categoryRule maps verbose-text substrings and exact tags to a category
type categoryRule struct {
	keywords []string
	category domain.Category
}

// categoryRules is evaluated in order and the first hit wins. Ammo must stay
// ahead of weapon.
var categoryRules = []categoryRule{
	{[]string{"topside material", "topside materials"}, domain.CategoryTopsideMaterial},
	{[]string{"refined material"}, domain.CategoryRefinedMaterial},
	{[]string{"advanced material"}, domain.CategoryAdvancedMaterial},
	{[]string{"basic material"}, domain.CategoryBasicMaterial},
	{[]string{"recyclable"}, domain.CategoryRecyclable},
	{[]string{"trinket"}, domain.CategoryTrinket},
	{[]string{"key"}, domain.CategoryKey},
	{[]string{"augment"}, domain.CategoryAugment},
	{[]string{"shield"}, domain.CategoryShield},
	{[]string{"nature"}, domain.CategoryNature},
	{[]string{"ammo"}, domain.CategoryAmmo},
	{[]string{"weapon"}, domain.CategoryWeapon},
	{[]string{"trap"}, domain.CategoryTrap},
}

// kindDefaults is consulted when no keyword matched
var kindDefaults = map[domain.BatchKind]domain.Category{
	domain.KindAugment:  domain.CategoryAugment,
	domain.KindGrenade:  domain.CategoryQuickUse,
	domain.KindHealing:  domain.CategoryQuickUse,
	domain.KindQuickUse: domain.CategoryQuickUse,
	domain.KindTrap:     domain.CategoryQuickUse,
	domain.KindShield:   domain.CategoryShield,
}

// kindForced pins the category of batches whose content is unambiguous
var kindForced = map[domain.BatchKind]domain.Category{
	domain.KindWeapon: domain.CategoryWeapon,
	domain.KindMod:    domain.CategoryModification,
}

var ammoTypes = map[string]domain.AmmoType{
	"light":    domain.AmmoLight,
	"medium":   domain.AmmoMedium,
	"heavy":    domain.AmmoHeavy,
	"shotgun":  domain.AmmoShotgun,
	"energy":   domain.AmmoEnergy,
	"launcher": domain.AmmoLauncher,
}

var weaponClasses = map[string]domain.WeaponClass{
	"assault_rifle": domain.WeaponClassAssaultRifle,
	"battle_rifle":  domain.WeaponClassBattleRifle,
	"smg":           domain.WeaponClassSMG,
	"shotgun":       domain.WeaponClassShotgun,
	"pistol":        domain.WeaponClassPistol,
	"hand_cannon":   domain.WeaponClassHandCannon,
	"lmg":           domain.WeaponClassLMG,
	"sniper_rifle":  domain.WeaponClassSniperRifle,
	"special":       domain.WeaponClassSpecial,
}

var modSlots = map[string]domain.ModSlot{
	"muzzle":   domain.ModSlotMuzzle,
	"grip":     domain.ModSlotGrip,
	"magazine": domain.ModSlotMagazine,
	"stock":    domain.ModSlotStock,
	"tech":     domain.ModSlotTech,
}

var shieldTypes = map[string]domain.ShieldType{
	"light":  domain.ShieldLight,
	"medium": domain.ShieldMedium,
	"heavy":  domain.ShieldHeavy,
}

// Found-in merge tokens
const (
	foundInOld      = "old"
	foundInWorld    = "world"
	foundInOldWorld = "old world"
	foundInARC      = "arc"
)
