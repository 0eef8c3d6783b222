package modifier

import (
	"sort"
	"strings"

	"github.com/osse101/raiddata/internal/naming"
)

// SortMods orders the mod entries with EntryLess so curated additions land
// next to their siblings
func (f *File) SortMods() {
	sort.SliceStable(f.Mods, func(i, j int) bool {
		return EntryLess(f.Mods[i], f.Mods[j])
	})
}

// EntryLess orders entries by normalized metric ignoring case, then slug,
// then raw key
func EntryLess(a, b Entry) bool {
	an, bn := strings.ToLower(a.Normalized), strings.ToLower(b.Normalized)
	if an != bn {
		return an < bn
	}
	as, bs := slugOf(a), slugOf(b)
	if as != bs {
		return as < bs
	}
	return a.KeyRaw < b.KeyRaw
}

func slugOf(e Entry) string {
	if e.KeySlug != "" {
		return e.KeySlug
	}
	return naming.Slug(e.KeyRaw)
}
