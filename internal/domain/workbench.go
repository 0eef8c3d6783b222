package domain

// Workbench is a crafting station
type Workbench struct {
	ID            string `json:"id" db:"id"`
	Name          string `json:"name" db:"name"`
	Description   string `json:"description" db:"description"`
	Icon          string `json:"icon" db:"icon"`
	BaseTier      int    `json:"base_tier" db:"base_tier"`
	RaidsRequired int    `json:"raids_required" db:"raids_required"`
}

// Tier is one upgrade level of a workbench, unique per (workbench, tier)
type Tier struct {
	WorkbenchID string `json:"workbench_id" db:"workbench_id"`
	Tier        int    `json:"tier" db:"tier"`
	Name        string `json:"name" db:"tier_name"`
}

// TierRequirement is an item needed to build a workbench tier
type TierRequirement struct {
	WorkbenchID string `json:"workbench_id" db:"workbench_id"`
	Tier        int    `json:"tier" db:"tier"`
	ItemID      string `json:"item_id" db:"item_id"`
	Count       int    `json:"count" db:"count"`
}
