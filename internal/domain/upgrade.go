package domain

// Upgrade is one level of a weapon upgrade track, unique per (weapon, level)
type Upgrade struct {
	WeaponID  string    `json:"weapon_id" db:"weapon_id"`
	Level     int       `json:"level" db:"level"`
	Modifiers Modifiers `json:"modifiers" db:"modifiers"`
	RecipeID  *string   `json:"recipe_id,omitempty" db:"recipe_id"`
	SellPrice *int      `json:"sell_price,omitempty" db:"sell_price"`
}
