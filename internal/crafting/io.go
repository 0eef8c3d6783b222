package crafting

import (
	"cmp"
	"math"
	"slices"

	"github.com/osse101/raiddata/internal/domain"
	"github.com/osse101/raiddata/internal/source"
)

type ioKey struct {
	item string
	role domain.IORole
}

// ioSet is the edge set of one recipe under construction. Edges that repeat
// an (item, role) pair are merged by summing quantities.
type ioSet struct {
	recipeID string
	rows     []domain.RecipeIO
	index    map[ioKey]int
	// outOfRange lists items whose quantity does not fit the quantity
	// column; a recipe with any of them is not written
	outOfRange []string
}

func newIOSet(recipeID string) *ioSet {
	return &ioSet{recipeID: recipeID, index: make(map[ioKey]int)}
}

func (s *ioSet) add(itemID string, role domain.IORole, qty int) {
	k := ioKey{itemID, role}
	if i, ok := s.index[k]; ok {
		if s.rows[i].Quantity+qty > math.MaxInt32 {
			s.reject(itemID)
			return
		}
		s.rows[i].Quantity += qty
		return
	}
	s.index[k] = len(s.rows)
	s.rows = append(s.rows, domain.RecipeIO{
		RecipeID: s.recipeID,
		ItemID:   itemID,
		Role:     role,
		Quantity: qty,
	})
}

// addMap adds every positive entry of m. Entries that are not numbers count
// as fallback; pass 0 to drop them.
func (s *ioSet) addMap(m source.NumberMap, role domain.IORole, fallback int) {
	for _, e := range m.Entries() {
		if e.Key == "" {
			continue
		}
		qty := fallback
		if e.Value.Valid {
			if e.Value.Value <= 0 {
				continue
			}
			n, ok := source.TruncInt(e.Value.Value)
			if !ok {
				s.reject(e.Key)
				continue
			}
			qty = n
		}
		if qty <= 0 {
			continue
		}
		s.add(e.Key, role, qty)
	}
}

func (s *ioSet) hasOutput() bool {
	return slices.ContainsFunc(s.rows, func(r domain.RecipeIO) bool {
		return r.Role == domain.RoleOutput
	})
}

func (s *ioSet) itemIDs() []string {
	ids := make([]string, 0, len(s.rows))
	for _, r := range s.rows {
		if !slices.Contains(ids, r.ItemID) {
			ids = append(ids, r.ItemID)
		}
	}
	return ids
}

func (s *ioSet) reject(itemID string) {
	if !slices.Contains(s.outOfRange, itemID) {
		s.outOfRange = append(s.outOfRange, itemID)
	}
}

func sameIO(a, b []domain.RecipeIO) bool {
	return slices.Equal(sortedIO(a), sortedIO(b))
}

func sortedIO(rows []domain.RecipeIO) []domain.RecipeIO {
	out := slices.Clone(rows)
	slices.SortFunc(out, func(x, y domain.RecipeIO) int {
		return cmp.Or(cmp.Compare(x.Role, y.Role), cmp.Compare(x.ItemID, y.ItemID))
	})
	return out
}

func sameLinks(a, b []domain.WorkbenchLink) bool {
	return slices.Equal(sortedLinks(a), sortedLinks(b))
}

func sortedLinks(links []domain.WorkbenchLink) []domain.WorkbenchLink {
	out := slices.Clone(links)
	slices.SortFunc(out, func(x, y domain.WorkbenchLink) int {
		return cmp.Or(cmp.Compare(x.WorkbenchID, y.WorkbenchID), cmp.Compare(x.Tier, y.Tier))
	})
	return out
}
