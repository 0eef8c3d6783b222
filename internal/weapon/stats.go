package weapon

import (
	"context"
	"strings"

	"github.com/osse101/raiddata/internal/domain"
	"github.com/osse101/raiddata/internal/logger"
	"github.com/osse101/raiddata/internal/modifier"
	"github.com/osse101/raiddata/internal/source"
)

// StatNormalizer canonicalizes weapon base stats. The curated table is
// consulted first; keys it does not know fall back to known metric names,
// then to the _pct suffix rule, then to additive/absolute.
type StatNormalizer struct {
	table *modifier.Table
	diag  *modifier.Diagnostics
}

// NewStatNormalizer creates a normalizer over the weapon stat table
func NewStatNormalizer(table *modifier.Table, diag *modifier.Diagnostics) *StatNormalizer {
	return &StatNormalizer{table: table, diag: diag}
}

// Normalize builds the stats-base map of a weapon from its stat block. Only
// JSON numbers count; numeric strings are ignored.
func (n *StatNormalizer) Normalize(ctx context.Context, owner string, block source.WeaponBase) domain.Modifiers {
	out := make(domain.Modifiers)
	for _, e := range block.Stats.Entries() {
		if !e.Value.Valid || e.FromString {
			continue
		}
		out.Set(n.resolve(ctx, owner, modifier.Pair{Key: e.Key, Value: e.Value.Value}))
	}
	if block.MagazineSize.Valid {
		out.Set(n.resolve(ctx, owner, modifier.Pair{Key: MagazineSizeStat, Value: block.MagazineSize.Value}))
	}
	return out
}

func (n *StatNormalizer) resolve(ctx context.Context, owner string, p modifier.Pair) domain.CanonicalModifier {
	m, miss := n.table.Resolve(p)
	if miss == nil {
		return m
	}

	if metric, ok := knownMetrics[miss.Slug]; ok {
		return absolute(metric).Canonical(p.Value)
	}
	miss.Tried = append(miss.Tried, modifier.PathKnownName)

	var entry modifier.Entry
	var inferred string
	if stripped, ok := strings.CutSuffix(miss.Slug, PercentSuffix); ok && stripped != "" {
		entry = modifier.Entry{
			Normalized: stripped,
			Kind:       domain.ModifierMultiplicative,
			Unit:       domain.UnitPercent,
			Sign:       domain.SignPositive,
		}
		inferred = inferredPercent
	} else {
		miss.Tried = append(miss.Tried, modifier.PathSuffix)
		entry = absolute(miss.Slug)
		inferred = inferredAbsolute
	}

	n.diag.RecordInferred(n.table.Scope(), owner, *miss, inferred)
	logger.FromContext(ctx).Debug(LogMsgInferredStat, "item_id", owner, "key", p.Key, "metric", entry.Normalized, "as", inferred)
	return entry.Canonical(p.Value)
}

func absolute(metric string) modifier.Entry {
	return modifier.Entry{
		Normalized: metric,
		Kind:       domain.ModifierAdditive,
		Unit:       domain.UnitAbsolute,
		Sign:       domain.SignPositive,
	}
}
