package weapon

import "github.com/osse101/raiddata/internal/domain"

// MagazineSizeStat is the stat name the magazine size is stored under
const MagazineSizeStat = "magazine_size"

// PercentSuffix marks a raw stat key whose value is a percentage
const PercentSuffix = "_pct"

// knownMetrics maps the slug of a commonly scraped stat name to its metric.
// These resolve as additive/absolute when the curated table has no entry.
var knownMetrics = map[string]string{
	"damage":            "damage",
	"fire_rate":         "fire_rate",
	"firerate":          "fire_rate",
	"range":             "range",
	"stability":         "stability",
	"agility":           "agility",
	"stealth":           "stealth",
	"durability_burn":   "durability_burn",
	"durabilityburn":    "durability_burn",
	"magazine_size":     "magazine_size",
	"magazinesize":      "magazine_size",
	"bullet_velocity":   "bullet_velocity",
	"bulletvelocity":    "bullet_velocity",
	"reload_time":       "reload_time",
	"reloadtime":        "reload_time",
	"recoil_horizontal": "recoil_horizontal",
	"recoilhorizontal":  "recoil_horizontal",
	"recoil_vertical":   "recoil_vertical",
	"recoilvertical":    "recoil_vertical",
}

// inferred kind/unit labels reported with heuristic resolutions
var (
	inferredPercent  = string(domain.ModifierMultiplicative) + "/" + string(domain.UnitPercent)
	inferredAbsolute = string(domain.ModifierAdditive) + "/" + string(domain.UnitAbsolute)
)

// ==================== Error Messages ====================

const (
	ErrMsgLoadWeaponFailed   = "failed to load weapon '%s': %w"
	ErrMsgInsertWeaponFailed = "failed to insert weapon '%s': %w"
	ErrMsgUpdateWeaponFailed = "failed to update weapon '%s': %w"
	ErrMsgSetCompatFailed    = "failed to set compatible mods for '%s': %w"
)

// ==================== Log Messages ====================

const (
	LogMsgInsertedWeapon      = "Inserted weapon"
	LogMsgUpdatedWeapon       = "Updated weapon"
	LogMsgNoBaseStats         = "No base stats parsed for weapon"
	LogMsgInferredStat        = "Weapon stat resolved heuristically"
	LogMsgUnknownAmmoType     = "Unknown ammo type"
	LogMsgUnknownWeaponClass  = "Unknown weapon class"
	LogMsgCompatUnknownWeapon = "Mod lists a weapon that is not stored"
	LogMsgCompatApplied       = "Compatible mods applied"
)
