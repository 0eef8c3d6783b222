package naming

// ============================================================================
// Slug Constants
// ============================================================================

// SlugSeparator replaces every run of characters outside [a-z0-9] in a slug.
const SlugSeparator = '_'

// ============================================================================
// Recipe ID Constants
// ============================================================================

// Recipe id prefixes. A recipe id is derived from its role and its primary
// subject so that re-ingesting the same source record always addresses the
// same row.
const (
	CraftingRecipePrefix  = "recipe_"
	RecyclingRecipePrefix = "recycle_"
	UpgradeRecipePrefix   = "upgrade_"

	// LevelInfix joins a weapon id and its upgrade level ("<weapon>_lvl<N>")
	LevelInfix = "_lvl"
)

// ============================================================================
// Workbench ID Corrections
// ============================================================================

// workbenchIDCorrections maps workbench ids that appear in scraped recipe
// data onto the ids used by the workbench source file.
var workbenchIDCorrections = map[string]string{
	"workbench_i":       "workbench",
	"gear_bench_i":      "gear_bench",
	"explosive_station": "explosives_station",
}

// InventoryWorkbenchKey is the pseudo workbench that marks a recipe as
// craftable from the inventory while in a raid.
const InventoryWorkbenchKey = "inventory"
