package domain

// Rarity is the closed set of item rarities
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// IsValid reports whether r is one of the known rarities
func (r Rarity) IsValid() bool {
	switch r {
	case RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary:
		return true
	}
	return false
}

// Category is the closed set of item categories
type Category string

const (
	CategoryWeapon           Category = "weapon"
	CategoryAmmo             Category = "ammo"
	CategoryGear             Category = "gear"
	CategoryQuickUse         Category = "quick_use"
	CategoryTrap             Category = "trap"
	CategoryTrinket          Category = "trinket"
	CategoryKey              Category = "key"
	CategoryAugment          Category = "augment"
	CategoryShield           Category = "shield"
	CategoryNature           Category = "nature"
	CategoryTopsideMaterial  Category = "topside_material"
	CategoryRefinedMaterial  Category = "refined_material"
	CategoryAdvancedMaterial Category = "advanced_material"
	CategoryBasicMaterial    Category = "basic_material"
	CategoryRecyclable       Category = "recyclable"
	CategoryModification     Category = "modification"
	CategoryMisc             Category = "misc"
)

// QuickUseCategory describes how a quick-use item is used
type QuickUseCategory string

const (
	QuickUseHealing   QuickUseCategory = "healing"
	QuickUseThrowable QuickUseCategory = "throwable"
	QuickUseTrap      QuickUseCategory = "trap"
	QuickUseUtility   QuickUseCategory = "utility"
)

// QuickUseStat is a single effect line of a quick-use item. Only the fields
// that apply to the stat are set.
type QuickUseStat struct {
	Name      string   `json:"name"`
	Value     *float64 `json:"value,omitempty"`
	PerSecond *bool    `json:"perSecond,omitempty"`
	Duration  *float64 `json:"duration,omitempty"`
	Range     *float64 `json:"range,omitempty"`
	Effect    string   `json:"effect,omitempty"`
}

// QuickUse is the quick-use payload stored on an item
type QuickUse struct {
	Category QuickUseCategory `json:"category"`
	Stats    []QuickUseStat   `json:"stats"`
}

// ShieldType is the closed set of shield weights an augment can carry
type ShieldType string

const (
	ShieldLight  ShieldType = "light"
	ShieldMedium ShieldType = "medium"
	ShieldHeavy  ShieldType = "heavy"
)

// GearCategoryAugment is the only gear category produced by ingestion
const GearCategoryAugment = "augment"

// AugmentStats is the strict stat block of an augment
type AugmentStats struct {
	BackpackSlots        int          `json:"backpackSlots"`
	SafePocketSize       int          `json:"safePocketSize"`
	QuickUseSlots        int          `json:"quickUseSlots"`
	WeaponSlots          int          `json:"weaponSlots"`
	WeightLimit          float64      `json:"weightLimit"`
	SupportedShieldTypes []ShieldType `json:"supportedShieldTypes"`
}

// Gear is the gear payload stored on an item
type Gear struct {
	Category string       `json:"category"`
	Stats    AugmentStats `json:"stats"`
}

// Item is the canonical item row. RecipeID and RecyclingRecipeID are owned by
// the recipe graph builder; a full-field item overwrite leaves them alone.
type Item struct {
	ID                string    `json:"id" db:"id"`
	Name              string    `json:"name" db:"name"`
	Description       string    `json:"description" db:"description"`
	FlavorText        *string   `json:"flavor_text,omitempty" db:"flavor_text"`
	Rarity            Rarity    `json:"rarity" db:"rarity"`
	Category          Category  `json:"category" db:"category"`
	Value             int       `json:"value" db:"value"`
	Weight            float64   `json:"weight" db:"weight"`
	MaxStack          int       `json:"max_stack" db:"max_stack"`
	FoundIn           []string  `json:"found_in" db:"found_in"`
	QuickUse          *QuickUse `json:"quick_use,omitempty" db:"quick_use"`
	Gear              *Gear     `json:"gear,omitempty" db:"gear"`
	Modifiers         Modifiers `json:"modifiers,omitempty" db:"modifiers"`
	RecipeID          *string   `json:"recipe_id,omitempty" db:"recipe_id"`
	RecyclingRecipeID *string   `json:"recycling_recipe_id,omitempty" db:"recycling_recipe_id"`
}
