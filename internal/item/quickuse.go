package item

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/osse101/raiddata/internal/domain"
	"github.com/osse101/raiddata/internal/source"
)

// Keys of a thrown/placed node that get a dedicated stat
var handledNodeKeys = map[string]bool{
	"damage":      true,
	"duration":    true,
	"radius":      true,
	"range":       true,
	"projectiles": true,
	"effect":      true,
	"arc_stun":    true,
	"raider_stun": true,
}

const overTime = "over_time"

// object is a loosely read JSON object
type object map[string]json.RawMessage

func asObject(raw json.RawMessage) object {
	var o object
	if err := json.Unmarshal(raw, &o); err != nil {
		return nil
	}
	return o
}

// get returns the raw value of key, or nil when absent or null
func (o object) get(key string) json.RawMessage {
	raw, ok := o[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}
	return raw
}

func firstOf(raws ...json.RawMessage) json.RawMessage {
	for _, r := range raws {
		if r != nil {
			return r
		}
	}
	return nil
}

func number(raw json.RawMessage) *float64 {
	if raw == nil {
		return nil
	}
	var n source.Number
	_ = n.UnmarshalJSON(raw)
	return numberPtr(n)
}

func text(raw json.RawMessage) string {
	var s string
	if raw == nil || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}

func boolPtr(v bool) *bool { return &v }

// defaultQuickUse is the payload a quick-use batch kind starts from
func defaultQuickUse(kind domain.BatchKind) *domain.QuickUse {
	var c domain.QuickUseCategory
	switch kind {
	case domain.KindGrenade:
		c = domain.QuickUseThrowable
	case domain.KindHealing:
		c = domain.QuickUseHealing
	case domain.KindQuickUse:
		c = domain.QuickUseUtility
	case domain.KindTrap:
		c = domain.QuickUseTrap
	default:
		return nil
	}
	return &domain.QuickUse{Category: c, Stats: []domain.QuickUseStat{}}
}

// QuickUse extracts the quick-use payload of a record. Kinds without a
// quick-use payload return nil; a record without a quick_use block keeps the
// kind default with no stats.
func QuickUse(kind domain.BatchKind, raw json.RawMessage) *domain.QuickUse {
	def := defaultQuickUse(kind)
	if def == nil {
		return nil
	}
	var present source.Flag
	if raw == nil || json.Unmarshal(raw, &present) != nil || !bool(present) {
		return def
	}

	quick := asObject(raw)
	switch kind {
	case domain.KindGrenade, domain.KindTrap:
		def.Stats = thrownStats(quick)
	case domain.KindHealing:
		def.Stats = healingStats(quick)
	case domain.KindQuickUse:
		def.Stats = utilityStats(quick)
	}
	return def
}

func thrownStats(quick object) []domain.QuickUseStat {
	nodeRaw := firstOf(quick.get("thrown"), quick.get("placed"))
	node := asObject(nodeRaw)
	stats := []domain.QuickUseStat{}

	if v := number(node.get("damage")); v != nil {
		stats = append(stats, domain.QuickUseStat{Name: "damage", Value: v, Effect: text(node.get("effect"))})
	}
	if v := number(firstOf(node.get("duration"), quick.get("duration"))); v != nil {
		stats = append(stats, domain.QuickUseStat{Name: "duration", Duration: v})
	}
	if v := number(firstOf(node.get("radius"), node.get("range"))); v != nil {
		stats = append(stats, domain.QuickUseStat{Name: "range", Range: v})
	}
	if v := number(node.get("projectiles")); v != nil {
		stats = append(stats, domain.QuickUseStat{Name: "projectiles", Value: v})
	}
	if v := number(node.get("arc_stun")); v != nil {
		stats = append(stats, domain.QuickUseStat{Name: "stun", Duration: v, Effect: "arc"})
	}
	if v := number(node.get("raider_stun")); v != nil {
		stats = append(stats, domain.QuickUseStat{Name: "stun", Duration: v, Effect: "raider"})
	}
	if v := number(quick.get("use_time")); v != nil {
		stats = append(stats, domain.QuickUseStat{Name: "use_time", Value: v})
	}
	if v := number(quick.get("delay")); v != nil {
		stats = append(stats, domain.QuickUseStat{Name: "delay", Value: v})
	}

	// remaining numeric keys in source order
	if nodeRaw != nil {
		var rest source.NumberMap
		_ = json.Unmarshal(nodeRaw, &rest)
		for _, e := range rest.Entries() {
			if handledNodeKeys[e.Key] || e.FromString || !e.Value.Valid {
				continue
			}
			stats = append(stats, domain.QuickUseStat{Name: e.Key, Value: numberPtr(e.Value)})
		}
	}
	return stats
}

func healingStats(quick object) []domain.QuickUseStat {
	stats := []domain.QuickUseStat{}
	for _, name := range []string{"health", "stamina"} {
		node := asObject(quick.get(name))
		v := number(node.get(name))
		if v == nil {
			continue
		}
		statName := name
		if name == "health" {
			statName = "healing"
		}
		perSecond := strings.ToLower(text(node.get("type"))) == overTime
		stats = append(stats, domain.QuickUseStat{Name: statName, Value: v, PerSecond: boolPtr(perSecond)})
	}
	if v := number(quick.get("use_time")); v != nil {
		stats = append(stats, domain.QuickUseStat{Name: "use_time", Value: v})
	}
	if v := number(quick.get("delay")); v != nil {
		stats = append(stats, domain.QuickUseStat{Name: "delay", Value: v})
	}
	if v := number(quick.get("duration")); v != nil {
		stats = append(stats, domain.QuickUseStat{Name: "duration", Duration: v})
	}
	return stats
}

func utilityStats(quick object) []domain.QuickUseStat {
	node := quick
	if nested := quick.get("quick_use"); nested != nil {
		node = asObject(nested)
	}
	stats := []domain.QuickUseStat{}
	if v := number(node.get("range")); v != nil {
		stats = append(stats, domain.QuickUseStat{Name: "range", Range: v})
	}
	if v := number(firstOf(node.get("use_time"), quick.get("use_time"))); v != nil {
		stats = append(stats, domain.QuickUseStat{Name: "use_time", Value: v})
	}
	if v := number(firstOf(node.get("duration"), quick.get("duration"))); v != nil {
		stats = append(stats, domain.QuickUseStat{Name: "duration", Duration: v})
	}
	return stats
}
