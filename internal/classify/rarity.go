package classify

import (
	"strings"

	"github.com/osse101/raiddata/internal/domain"
)

// Rarity maps a scraped rarity onto the closed set, defaulting to common
func Rarity(raw string) domain.Rarity {
	r := domain.Rarity(strings.ToLower(strings.TrimSpace(raw)))
	if r.IsValid() {
		return r
	}
	return domain.RarityCommon
}
