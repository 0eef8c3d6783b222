// Package statkeys surveys the stat keys used by the scraped mod and weapon
// files and drafts resolution table entries for the ones worth curating
package statkeys

import (
	"context"
	"math"
	"strings"

	"github.com/osse101/raiddata/internal/domain"
	"github.com/osse101/raiddata/internal/logger"
	"github.com/osse101/raiddata/internal/modifier"
	"github.com/osse101/raiddata/internal/naming"
	"github.com/osse101/raiddata/internal/source"
)

// KeyStat summarizes every occurrence of one raw key
type KeyStat struct {
	Key          string    `json:"key"`
	KeySlug      string    `json:"key_slug"`
	Normalized   string    `json:"normalized_key,omitempty"`
	Kind         string    `json:"kind,omitempty"`
	Unit         string    `json:"unit,omitempty"`
	Count        int       `json:"count"`
	Min          *float64  `json:"min"`
	Max          *float64  `json:"max"`
	SampleValues []float64 `json:"sample_values"`
	SampleOwners []string  `json:"sample_owners"`
	PercentGuess bool      `json:"percent_guess,omitempty"`
}

// Summary lists mod stat keys and upgrade perk keys in first-seen order
type Summary struct {
	Mods     []*KeyStat `json:"mods"`
	Upgrades []*KeyStat `json:"upgrades"`
}

// collector accumulates KeyStats in first-seen order
type collector struct {
	order []*KeyStat
	byKey map[string]*KeyStat
}

func newCollector() *collector {
	return &collector{byKey: make(map[string]*KeyStat)}
}

func (c *collector) observe(key string, value source.Number, owner string, init func(*KeyStat)) {
	s, ok := c.byKey[key]
	if !ok {
		s = &KeyStat{Key: key, KeySlug: naming.Slug(key), SampleValues: []float64{}, SampleOwners: []string{}}
		if init != nil {
			init(s)
		}
		c.byKey[key] = s
		c.order = append(c.order, s)
	}
	s.Count++
	if value.Valid && !math.IsInf(value.Value, 0) && !math.IsNaN(value.Value) {
		v := value.Value
		if s.Min == nil || v < *s.Min {
			s.Min = &v
		}
		if s.Max == nil || v > *s.Max {
			s.Max = &v
		}
		if len(s.SampleValues) < MaxSamples {
			s.SampleValues = append(s.SampleValues, v)
		}
	}
	if owner != "" && len(s.SampleOwners) < MaxSamples && !contains(s.SampleOwners, owner) {
		s.SampleOwners = append(s.SampleOwners, owner)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Scan collects stat_modifiers keys from mods and upgrade perk keys from
// weapons. Either file may be nil.
func Scan(ctx context.Context, mods, weapons *source.File) *Summary {
	log := logger.FromContext(ctx)
	modKeys, perkKeys := newCollector(), newCollector()

	if mods != nil {
		for i := range mods.Records {
			rec, err := source.Decode[source.Item](mods, i)
			if err != nil {
				log.Debug(LogMsgRecordSkipped, "file", mods.Path, "index", i, "error", err)
				continue
			}
			for _, e := range rec.StatModifiers.Entries() {
				modKeys.observe(e.Key, e.Value, rec.ID.Value, nil)
			}
		}
	}

	if weapons != nil {
		for i := range weapons.Records {
			rec, err := source.Decode[source.Weapon](weapons, i)
			if err != nil {
				log.Debug(LogMsgRecordSkipped, "file", weapons.Path, "index", i, "error", err)
				continue
			}
			for _, up := range rec.Upgrades {
				for _, e := range up.Perks.Entries() {
					perkKeys.observe(e.Key, e.Value, rec.ID.Value, classifyPerk)
				}
			}
		}
	}

	out := &Summary{Mods: modKeys.order, Upgrades: perkKeys.order}
	for _, s := range out.Mods {
		s.PercentGuess = s.Max != nil && *s.Max <= 100 && *s.Min >= 0
	}
	return out
}

// classifyPerk reads kind and unit from the key suffix
func classifyPerk(s *KeyStat) {
	switch {
	case strings.HasSuffix(s.Key, PercentSuffix):
		s.Normalized = strings.TrimSuffix(s.Key, PercentSuffix)
		s.Kind, s.Unit = string(domain.ModifierMultiplicative), string(domain.UnitPercent)
	case strings.HasSuffix(s.Key, PlusSuffix):
		s.Normalized = strings.TrimSuffix(s.Key, PlusSuffix)
		s.Kind, s.Unit = string(domain.ModifierAdditive), string(domain.UnitAbsolute)
	default:
		s.Normalized = s.Key
		s.Kind, s.Unit = KindUnknown, KindUnknown
	}
}

// ScaffoldEntry is a draft table row with room for curator notes
type ScaffoldEntry struct {
	modifier.Entry
	Notes string `json:"notes"`
}

// Scaffold is a draft stat mapping file
type Scaffold struct {
	Mods     []ScaffoldEntry `json:"mods"`
	Upgrades []ScaffoldEntry `json:"upgrades"`
}

// BuildScaffold drafts one entry per key. Mod keys whose values all fall in
// [0, 100] are guessed to be percentages.
func BuildScaffold(s *Summary) *Scaffold {
	out := &Scaffold{
		Mods:     make([]ScaffoldEntry, 0, len(s.Mods)),
		Upgrades: make([]ScaffoldEntry, 0, len(s.Upgrades)),
	}
	for _, m := range s.Mods {
		kind, unit := domain.ModifierAdditive, domain.UnitAbsolute
		if m.PercentGuess {
			kind, unit = domain.ModifierMultiplicative, domain.UnitPercent
		}
		out.Mods = append(out.Mods, ScaffoldEntry{Entry: modifier.Entry{
			KeyRaw:     m.Key,
			KeySlug:    m.KeySlug,
			Normalized: m.KeySlug,
			Kind:       kind,
			Unit:       unit,
			Sign:       domain.SignPositive,
		}})
	}
	for _, u := range s.Upgrades {
		out.Upgrades = append(out.Upgrades, ScaffoldEntry{Entry: modifier.Entry{
			KeyRaw:     u.Key,
			KeySlug:    u.KeySlug,
			Normalized: naming.Slug(u.Normalized),
			Kind:       domain.ModifierKind(u.Kind),
			Unit:       domain.ModifierUnit(u.Unit),
			Sign:       domain.SignPositive,
		}})
	}
	return out
}
