package classify

import (
	"regexp"
	"strings"

	"github.com/osse101/raiddata/internal/domain"
	"github.com/osse101/raiddata/internal/naming"
)

var magazineSuffix = regexp.MustCompile(`_mag(azine)?$`)

// ShieldCompatibility keeps the light/medium/heavy entries of list in
// first-seen order without duplicates
func ShieldCompatibility(list []string) []domain.ShieldType {
	out := make([]domain.ShieldType, 0, len(list))
	seen := make(map[domain.ShieldType]bool, len(list))
	for _, raw := range list {
		st, ok := shieldTypes[strings.ToLower(strings.TrimSpace(raw))]
		if !ok || seen[st] {
			continue
		}
		seen[st] = true
		out = append(out, st)
	}
	return out
}

// ModSlots folds scraped slot names onto the closed slot set. Hyphens become
// underscores, "underbarrel" is a grip and any "*_mag"/"*_magazine" is a
// magazine. Unknown slots are dropped and order is first-seen.
func ModSlots(list []string) []domain.ModSlot {
	out := make([]domain.ModSlot, 0, len(list))
	seen := make(map[domain.ModSlot]bool, len(list))
	for _, raw := range list {
		k := naming.Slug(strings.ReplaceAll(raw, "-", "_"))
		if k == "underbarrel" {
			k = string(domain.ModSlotGrip)
		}
		if magazineSuffix.MatchString(k) {
			k = string(domain.ModSlotMagazine)
		}
		slot, ok := modSlots[k]
		if !ok || seen[slot] {
			continue
		}
		seen[slot] = true
		out = append(out, slot)
	}
	return out
}
