package source

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	tests := []struct {
		raw   string
		want  string
		valid bool
	}{
		{`"Ferro"`, "Ferro", true},
		{`""`, "", true},
		{`null`, "", false},
		{`42`, "", false},
		{`{"a":1}`, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var v Text
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &v))
			assert.Equal(t, tt.want, v.Value)
			assert.Equal(t, tt.valid, v.Valid)
		})
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		raw   string
		want  float64
		valid bool
	}{
		{`12.5`, 12.5, true},
		{`0`, 0, true},
		{`-3`, -3, true},
		{`"12"`, 0, false},
		{`null`, 0, false},
		{`true`, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var v Number
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &v))
			assert.Equal(t, tt.want, v.Value)
			assert.Equal(t, tt.valid, v.Valid)
		})
	}

	assert.Equal(t, 7.0, Number{}.Or(7))
	assert.Equal(t, 2.0, Number{Value: 2, Valid: true}.Or(7))
}

func TestTruncInt(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want int
		ok   bool
	}{
		{"truncates toward zero", 2.9, 2, true},
		{"negative", -2.9, -2, true},
		{"int32 max", math.MaxInt32, math.MaxInt32, true},
		{"int32 min", math.MinInt32, math.MinInt32, true},
		{"above int32", math.MaxInt32 + 1, 0, false},
		{"huge", 1e300, 0, false},
		{"huge negative", -1e19, 0, false},
		{"nan", math.NaN(), 0, false},
		{"inf", math.Inf(1), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TruncInt(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}

	_, ok := Number{}.Int()
	assert.False(t, ok)
	n, ok := Number{Value: 4.5, Valid: true}.Int()
	assert.True(t, ok)
	assert.Equal(t, 4, n)
}

func TestNumberMap(t *testing.T) {
	t.Run("keeps source order and accepts numeric strings", func(t *testing.T) {
		var m NumberMap
		require.NoError(t, json.Unmarshal([]byte(`{"zeta": 2, "alpha": "3.5", "mid": "lots", "n": null}`), &m))

		assert.True(t, m.Present())
		assert.Equal(t, []string{"zeta", "alpha", "mid", "n"}, m.Keys())

		e := m.Entries()
		assert.Equal(t, Number{Value: 2, Valid: true}, e[0].Value)
		assert.False(t, e[0].FromString)
		assert.Equal(t, Number{Value: 3.5, Valid: true}, e[1].Value)
		assert.True(t, e[1].FromString)
		assert.False(t, e[2].Value.Valid)
		assert.False(t, e[3].Value.Valid)
	})

	t.Run("duplicate keys keep the first position and the last value", func(t *testing.T) {
		var m NumberMap
		require.NoError(t, json.Unmarshal([]byte(`{"a": 1, "b": 2, "a": 3}`), &m))
		require.Equal(t, 2, m.Len())
		assert.Equal(t, "a", m.Entries()[0].Key)
		assert.Equal(t, 3.0, m.Entries()[0].Value.Value)
	})

	t.Run("empty object is present", func(t *testing.T) {
		var m NumberMap
		require.NoError(t, json.Unmarshal([]byte(`{}`), &m))
		assert.True(t, m.Present())
		assert.Zero(t, m.Len())
	})

	t.Run("non objects are absent", func(t *testing.T) {
		for _, raw := range []string{`null`, `[1,2]`, `"x"`, `5`} {
			var m NumberMap
			require.NoError(t, json.Unmarshal([]byte(raw), &m), raw)
			assert.False(t, m.Present(), raw)
		}
	})
}

func TestList(t *testing.T) {
	var l List[string]
	require.NoError(t, json.Unmarshal([]byte(`["a", 1, null, "b"]`), &l))
	assert.Equal(t, List[string]{"a", "b"}, l)

	require.NoError(t, json.Unmarshal([]byte(`"not a list"`), &l))
	assert.Empty(t, l)
}

func TestTextMap(t *testing.T) {
	var m TextMap
	require.NoError(t, json.Unmarshal([]byte(`{"1": "Basic", "2": 3, "3": null}`), &m))
	assert.Equal(t, TextMap{"1": "Basic"}, m)

	require.NoError(t, json.Unmarshal([]byte(`[1]`), &m))
	assert.Nil(t, m)
}

func TestFlag(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{`true`, true},
		{`false`, false},
		{`1`, true},
		{`0`, false},
		{`"yes"`, true},
		{`""`, false},
		{`null`, false},
		{`{}`, true},
		{`[]`, true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var f Flag
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &f))
			assert.Equal(t, tt.want, bool(f))
		})
	}
}
