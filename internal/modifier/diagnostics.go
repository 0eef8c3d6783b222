package modifier

import (
	"slices"
	"sort"
	"sync"

	"github.com/agnivade/levenshtein"
)

// maxOwners caps how many owning records are remembered per unmapped key
const maxOwners = 5

// Unmapped is a de-duplicated diagnostic for one key in one scope
type Unmapped struct {
	Scope      Scope
	Key        string
	Slug       string
	Tried      []string
	Suggestion string
	// Inferred is set when a heuristic supplied kind/unit instead of the
	// table, formatted as "<kind>/<unit>"
	Inferred string
	Count    int
	Owners   []string
}

type diagKey struct {
	scope Scope
	key   string
}

// Diagnostics collects unmapped keys across a run
type Diagnostics struct {
	mu      sync.Mutex
	entries map[diagKey]*Unmapped
}

// NewDiagnostics creates an empty collector
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{entries: make(map[diagKey]*Unmapped)}
}

// RecordMiss records a key that table t could not resolve for owner
func (d *Diagnostics) RecordMiss(t *Table, owner string, miss Miss) {
	d.record(t.Scope(), owner, miss, "", func() string { return t.suggest(miss.Slug) })
}

// RecordInferred records a key whose kind/unit came from a heuristic
func (d *Diagnostics) RecordInferred(scope Scope, owner string, miss Miss, inferred string) {
	d.record(scope, owner, miss, inferred, nil)
}

func (d *Diagnostics) record(scope Scope, owner string, miss Miss, inferred string, suggest func() string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	k := diagKey{scope: scope, key: miss.Key}
	u, ok := d.entries[k]
	if !ok {
		u = &Unmapped{
			Scope:    scope,
			Key:      miss.Key,
			Slug:     miss.Slug,
			Tried:    miss.Tried,
			Inferred: inferred,
		}
		if suggest != nil {
			u.Suggestion = suggest()
		}
		d.entries[k] = u
	}
	u.Count++
	if len(u.Owners) < maxOwners && !slices.Contains(u.Owners, owner) {
		u.Owners = append(u.Owners, owner)
	}
}

// Unmapped returns the diagnostics ordered by scope, then key
func (d *Diagnostics) Unmapped() []Unmapped {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]Unmapped, 0, len(d.entries))
	for _, u := range d.entries {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Scope != out[j].Scope {
			return out[i].Scope < out[j].Scope
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// Len returns the number of distinct (scope, key) diagnostics
func (d *Diagnostics) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.entries)
}

// suggest returns the closest known slug within an edit distance that grows
// with the length of the slug, or "" when nothing is close enough
func (t *Table) suggest(slug string) string {
	if slug == "" {
		return ""
	}
	best, bestDist := "", -1
	for _, cand := range t.Slugs() {
		dist := levenshtein.ComputeDistance(slug, cand)
		if dist > levenshteinLimit(len(cand)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = cand, dist
		}
	}
	return best
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
