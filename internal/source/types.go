package source

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

var jsonNull = []byte("null")

func isNull(b []byte) bool {
	return bytes.Equal(bytes.TrimSpace(b), jsonNull)
}

// Text is an optional string field. Any non-string value leaves it invalid.
type Text struct {
	Value string
	Valid bool
}

func (t *Text) UnmarshalJSON(b []byte) error {
	*t = Text{}
	var s string
	if err := json.Unmarshal(b, &s); err == nil && !isNull(b) {
		*t = Text{Value: s, Valid: true}
	}
	return nil
}

// String returns the value, or "" when absent
func (t Text) String() string {
	return t.Value
}

// Trimmed returns the value without surrounding whitespace
func (t Text) Trimmed() string {
	return strings.TrimSpace(t.Value)
}

// Present reports whether the field holds a non-empty string
func (t Text) Present() bool {
	return t.Valid && t.Value != ""
}

// Number is an optional JSON number. Strings and other values leave it
// invalid.
type Number struct {
	Value float64
	Valid bool
}

func (n *Number) UnmarshalJSON(b []byte) error {
	*n = Number{}
	if isNull(b) {
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		*n = Number{Value: f, Valid: true}
	}
	return nil
}

// Or returns the value when valid, fallback otherwise
func (n Number) Or(fallback float64) float64 {
	if n.Valid {
		return n.Value
	}
	return fallback
}

// Int truncates the value toward zero. ok is false when n is missing or
// the value does not fit an integer column (see TruncInt).
func (n Number) Int() (int, bool) {
	if !n.Valid {
		return 0, false
	}
	return TruncInt(n.Value)
}

// TruncInt truncates v toward zero. ok is false for NaN, infinities and
// values outside the 32-bit range of the catalog's integer columns.
func TruncInt(v float64) (int, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	t := math.Trunc(v)
	if t > math.MaxInt32 || t < math.MinInt32 {
		return 0, false
	}
	return int(t), true
}

// NumberEntry is one key of a NumberMap. Numeric strings are accepted as
// values and flagged with FromString.
type NumberEntry struct {
	Key        string
	Value      Number
	FromString bool
}

// NumberMap is a JSON object of loosely typed numbers that keeps the source
// key order. Present is true for any JSON object, including an empty one.
type NumberMap struct {
	entries []NumberEntry
	present bool
}

// NewNumberMap builds a present map from entries, mainly for tests
func NewNumberMap(entries ...NumberEntry) NumberMap {
	return NumberMap{entries: entries, present: true}
}

func (m *NumberMap) UnmarshalJSON(b []byte) error {
	*m = NumberMap{}

	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil
	}
	m.present = true

	index := make(map[string]int)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		entry := NumberEntry{Key: key}
		_ = entry.Value.UnmarshalJSON(raw)
		if !entry.Value.Valid {
			var s string
			if json.Unmarshal(raw, &s) == nil {
				if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
					entry.Value = Number{Value: f, Valid: true}
					entry.FromString = true
				}
			}
		}

		if i, ok := index[key]; ok {
			m.entries[i] = entry
			continue
		}
		index[key] = len(m.entries)
		m.entries = append(m.entries, entry)
	}
	return nil
}

// Present reports whether the source held an object for this field
func (m NumberMap) Present() bool {
	return m.present
}

// Len returns the number of keys
func (m NumberMap) Len() int {
	return len(m.entries)
}

// Entries returns the keys in source order
func (m NumberMap) Entries() []NumberEntry {
	return m.entries
}

// Keys returns the keys in source order
func (m NumberMap) Keys() []string {
	keys := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		keys = append(keys, e.Key)
	}
	return keys
}

// List is a JSON array whose elements are decoded one by one. Elements that
// are null or do not decode into T are dropped; anything other than an array
// yields an empty list.
type List[T any] []T

func (l *List[T]) UnmarshalJSON(b []byte) error {
	*l = nil
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil
	}
	out := make(List[T], 0, len(raw))
	for _, r := range raw {
		if isNull(r) {
			continue
		}
		var v T
		if err := json.Unmarshal(r, &v); err != nil {
			continue
		}
		out = append(out, v)
	}
	*l = out
	return nil
}

// TextMap is a JSON object of strings; non-string values are dropped
type TextMap map[string]string

func (m *TextMap) UnmarshalJSON(b []byte) error {
	*m = nil
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil
	}
	out := make(TextMap, len(raw))
	for k, v := range raw {
		var s string
		if json.Unmarshal(v, &s) == nil && !isNull(v) {
			out[k] = s
		}
	}
	*m = out
	return nil
}

// Flag follows truthiness: true, non-zero numbers, non-empty strings,
// arrays and objects are set; false, 0, "" and null are not.
type Flag bool

func (f *Flag) UnmarshalJSON(b []byte) error {
	*f = false
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil
	}
	switch b[0] {
	case 't', '[', '{':
		*f = true
	case '"':
		*f = len(b) > 2
	case 'f', 'n':
	default:
		var n float64
		if json.Unmarshal(b, &n) == nil {
			*f = n != 0
		}
	}
	return nil
}
