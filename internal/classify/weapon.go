package classify

import (
	"strings"

	"github.com/osse101/raiddata/internal/domain"
	"github.com/osse101/raiddata/internal/naming"
)

// AmmoType reads the first word of a scraped ammo string ("Medium Ammo" is
// medium). ok is false when the word is not a known ammo type.
func AmmoType(raw string) (domain.AmmoType, bool) {
	fields := strings.Fields(strings.ToLower(raw))
	if len(fields) == 0 {
		return "", false
	}
	at, ok := ammoTypes[fields[0]]
	return at, ok
}

// WeaponClass slugs a scraped class name and checks it against the closed set
func WeaponClass(raw string) (domain.WeaponClass, bool) {
	wc, ok := weaponClasses[naming.Slug(raw)]
	return wc, ok
}
