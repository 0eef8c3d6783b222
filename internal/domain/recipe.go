package domain

// RecipeType tags what a recipe is used for
type RecipeType string

const (
	RecipeCrafting  RecipeType = "crafting"
	RecipeRecycling RecipeType = "recycling"
	RecipeUpgrade   RecipeType = "upgrade"
)

// IORole is the side of a recipe an item sits on
type IORole string

const (
	RoleInput  IORole = "input"
	RoleOutput IORole = "output"
)

// Recipe is a recipe header row
type Recipe struct {
	ID                string     `json:"id" db:"id"`
	Type              RecipeType `json:"type" db:"type"`
	RequiresBlueprint bool       `json:"requires_blueprint" db:"requires_blueprint"`
	InRaid            bool       `json:"in_raid" db:"in_raid"`
}

// RecipeIO is one edge of the bipartite recipe graph
type RecipeIO struct {
	RecipeID string `json:"recipe_id" db:"recipe_id"`
	ItemID   string `json:"item_id" db:"item_id"`
	Role     IORole `json:"role" db:"role"`
	Quantity int    `json:"quantity" db:"quantity"`
}

// WorkbenchLink unlocks a recipe at a workbench tier
type WorkbenchLink struct {
	RecipeID    string `json:"recipe_id" db:"recipe_id"`
	WorkbenchID string `json:"workbench_id" db:"workbench_id"`
	Tier        int    `json:"tier" db:"tier"`
}
