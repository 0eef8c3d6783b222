package item

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/raiddata/internal/domain"
)

func f(v float64) *float64 { return &v }
func b(v bool) *bool       { return &v }

func TestQuickUse_Defaults(t *testing.T) {
	assert.Nil(t, QuickUse(domain.KindGeneral, json.RawMessage(`{"use_time": 1}`)))
	assert.Nil(t, QuickUse(domain.KindAugment, nil))

	tests := []struct {
		kind domain.BatchKind
		want domain.QuickUseCategory
	}{
		{domain.KindGrenade, domain.QuickUseThrowable},
		{domain.KindHealing, domain.QuickUseHealing},
		{domain.KindQuickUse, domain.QuickUseUtility},
		{domain.KindTrap, domain.QuickUseTrap},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			for _, raw := range []json.RawMessage{nil, json.RawMessage(`null`), json.RawMessage(`false`)} {
				q := QuickUse(tt.kind, raw)
				require.NotNil(t, q)
				assert.Equal(t, tt.want, q.Category)
				assert.Empty(t, q.Stats)
			}
		})
	}
}

func TestQuickUse_Grenade(t *testing.T) {
	raw := json.RawMessage(`{
		"thrown": {"damage": 60, "effect": "Burn", "radius": 4, "arc_stun": 2, "raider_stun": 1.5, "fuse": 3, "label": "x", "projectiles": 6},
		"duration": 8,
		"use_time": 0.5,
		"delay": 1
	}`)
	q := QuickUse(domain.KindGrenade, raw)
	require.NotNil(t, q)
	assert.Equal(t, domain.QuickUseThrowable, q.Category)
	assert.Equal(t, []domain.QuickUseStat{
		{Name: "damage", Value: f(60), Effect: "Burn"},
		{Name: "duration", Duration: f(8)},
		{Name: "range", Range: f(4)},
		{Name: "projectiles", Value: f(6)},
		{Name: "stun", Duration: f(2), Effect: "arc"},
		{Name: "stun", Duration: f(1.5), Effect: "raider"},
		{Name: "use_time", Value: f(0.5)},
		{Name: "delay", Value: f(1)},
		{Name: "fuse", Value: f(3)},
	}, q.Stats)
}

func TestQuickUse_TrapUsesPlacedNode(t *testing.T) {
	q := QuickUse(domain.KindTrap, json.RawMessage(`{"placed": {"damage": 30, "range": 2, "duration": 20}}`))
	require.NotNil(t, q)
	assert.Equal(t, domain.QuickUseTrap, q.Category)
	assert.Equal(t, []domain.QuickUseStat{
		{Name: "damage", Value: f(30)},
		{Name: "duration", Duration: f(20)},
		{Name: "range", Range: f(2)},
	}, q.Stats)
}

func TestQuickUse_Healing(t *testing.T) {
	raw := json.RawMessage(`{
		"health": {"health": 25, "type": "Over_Time"},
		"stamina": {"stamina": 50, "type": "instant"},
		"use_time": 2,
		"duration": 10
	}`)
	q := QuickUse(domain.KindHealing, raw)
	require.NotNil(t, q)
	assert.Equal(t, []domain.QuickUseStat{
		{Name: "healing", Value: f(25), PerSecond: b(true)},
		{Name: "stamina", Value: f(50), PerSecond: b(false)},
		{Name: "use_time", Value: f(2)},
		{Name: "duration", Duration: f(10)},
	}, q.Stats)
}

func TestQuickUse_UtilityNested(t *testing.T) {
	q := QuickUse(domain.KindQuickUse, json.RawMessage(`{"quick_use": {"range": 30}, "use_time": 1.2, "duration": 5}`))
	require.NotNil(t, q)
	assert.Equal(t, domain.QuickUseUtility, q.Category)
	assert.Equal(t, []domain.QuickUseStat{
		{Name: "range", Range: f(30)},
		{Name: "use_time", Value: f(1.2)},
		{Name: "duration", Duration: f(5)},
	}, q.Stats)
}
