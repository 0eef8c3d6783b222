package naming

import (
	"strconv"
	"strings"
)

// Slug canonicalizes a raw key: lower-cased, every run of characters outside
// [a-z0-9] collapsed into a single underscore, no leading or trailing
// underscore. Slug is total; an input with no alphanumerics yields "".
func Slug(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	pending := false
	for _, r := range strings.ToLower(raw) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pending && b.Len() > 0 {
				b.WriteByte(SlugSeparator)
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}

	return b.String()
}

// CorrectWorkbenchID folds known misspelled workbench ids onto their
// canonical form. Unknown ids are returned unchanged.
func CorrectWorkbenchID(id string) string {
	if corrected, ok := workbenchIDCorrections[id]; ok {
		return corrected
	}
	return id
}

// CraftingRecipeID returns the id of the crafting recipe producing outputItemID.
func CraftingRecipeID(outputItemID string) string {
	return CraftingRecipePrefix + outputItemID
}

// RecyclingRecipeID returns the id of the recycling recipe consuming inputItemID.
func RecyclingRecipeID(inputItemID string) string {
	return RecyclingRecipePrefix + inputItemID
}

// UpgradeRecipeID returns the id of the upgrade-cost recipe for a weapon level.
func UpgradeRecipeID(weaponItemID string, level int) string {
	return UpgradeRecipePrefix + weaponItemID + LevelInfix + strconv.Itoa(level)
}

// UpgradeRecycleRecipeID returns the id of the recycle recipe for a weapon level.
func UpgradeRecycleRecipeID(weaponItemID string, level int) string {
	return RecyclingRecipePrefix + weaponItemID + LevelInfix + strconv.Itoa(level)
}
