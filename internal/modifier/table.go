package modifier

import (
	"sort"

	"github.com/osse101/raiddata/internal/domain"
	"github.com/osse101/raiddata/internal/naming"
	"github.com/osse101/raiddata/internal/source"
)

// Entry is one curated row of a resolution table
type Entry struct {
	KeyRaw     string              `json:"key_raw"`
	KeySlug    string              `json:"key_slug"`
	Normalized string              `json:"normalized"`
	Kind       domain.ModifierKind `json:"kind"`
	Unit       domain.ModifierUnit `json:"unit"`
	Sign       domain.ModifierSign `json:"sign"`
}

// Apply computes the signed canonical value of a raw number under e.
// Percent multipliers are scaled to a fraction; any kind/unit pairing other
// than multiplicative/percent or additive/absolute passes value through.
func (e Entry) Apply(value float64) float64 {
	switch {
	case e.Kind == domain.ModifierMultiplicative && e.Unit == domain.UnitPercent:
		return e.signed(value / 100)
	case e.Kind == domain.ModifierAdditive && e.Unit == domain.UnitAbsolute:
		return e.signed(value)
	default:
		return value
	}
}

func (e Entry) signed(v float64) float64 {
	if e.Sign == domain.SignNegative {
		return -v
	}
	return v
}

// Canonical builds the canonical modifier for a raw value
func (e Entry) Canonical(value float64) domain.CanonicalModifier {
	return domain.CanonicalModifier{
		Metric: e.Normalized,
		Kind:   e.Kind,
		Unit:   e.Unit,
		Value:  e.Apply(value),
	}
}

// Pair is a raw key/value read from a source record
type Pair struct {
	Key   string
	Value float64
}

// Miss describes a key that no table entry matched
type Miss struct {
	Key   string
	Slug  string
	Tried []string
}

// Table resolves raw keys for one scope: exact raw key first, slug second
type Table struct {
	scope  Scope
	byRaw  map[string]Entry
	bySlug map[string]Entry
}

// NewTable indexes entries for scope. Later entries win over earlier ones
// that share a raw key or slug.
func NewTable(scope Scope, entries ...[]Entry) *Table {
	t := &Table{
		scope:  scope,
		byRaw:  make(map[string]Entry),
		bySlug: make(map[string]Entry),
	}
	for _, list := range entries {
		for _, e := range list {
			if e.KeySlug == "" {
				e.KeySlug = naming.Slug(e.KeyRaw)
			}
			if e.KeyRaw != "" {
				t.byRaw[e.KeyRaw] = e
			}
			t.bySlug[e.KeySlug] = e
		}
	}
	return t
}

// Scope returns the scope the table was built for
func (t *Table) Scope() Scope {
	return t.scope
}

// Len returns the number of distinct slugs in the table
func (t *Table) Len() int {
	return len(t.bySlug)
}

// Lookup finds the entry for key, trying the raw key before its slug
func (t *Table) Lookup(key string) (Entry, bool) {
	if e, ok := t.byRaw[key]; ok {
		return e, true
	}
	e, ok := t.bySlug[naming.Slug(key)]
	return e, ok
}

// Resolve canonicalizes a single raw pair. A miss is reported to the caller
// and never treated as an error.
func (t *Table) Resolve(p Pair) (domain.CanonicalModifier, *Miss) {
	if e, ok := t.Lookup(p.Key); ok {
		return e.Canonical(p.Value), nil
	}
	return domain.CanonicalModifier{}, &Miss{
		Key:   p.Key,
		Slug:  naming.Slug(p.Key),
		Tried: []string{PathRaw, PathSlug},
	}
}

// Normalize resolves every pair into a modifier map. Unmapped pairs are
// excluded from the result and returned as misses.
func (t *Table) Normalize(pairs []Pair) (domain.Modifiers, []Miss) {
	out := make(domain.Modifiers, len(pairs))
	var misses []Miss
	for _, p := range pairs {
		m, miss := t.Resolve(p)
		if miss != nil {
			misses = append(misses, *miss)
			continue
		}
		out.Set(m)
	}
	return out, misses
}

// Slugs returns the sorted slugs known to the table
func (t *Table) Slugs() []string {
	slugs := make([]string, 0, len(t.bySlug))
	for s := range t.bySlug {
		slugs = append(slugs, s)
	}
	sort.Strings(slugs)
	return slugs
}

// Pairs collects the numeric values of a scraped stat map in source order.
// Non-numeric values are dropped.
func Pairs(m source.NumberMap) []Pair {
	out := make([]Pair, 0, m.Len())
	for _, e := range m.Entries() {
		if e.Value.Valid {
			out = append(out, Pair{Key: e.Key, Value: e.Value.Value})
		}
	}
	return out
}
