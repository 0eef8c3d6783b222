package domain

// ModifierKind describes how a modifier combines with a base value
type ModifierKind string

const (
	ModifierAdditive       ModifierKind = "additive"
	ModifierMultiplicative ModifierKind = "multiplicative"
)

// ModifierUnit describes the unit of a raw modifier value
type ModifierUnit string

const (
	UnitAbsolute ModifierUnit = "absolute"
	UnitPercent  ModifierUnit = "percent"
)

// ModifierSign tells whether a raw value is applied as-is or negated
type ModifierSign string

const (
	SignPositive ModifierSign = "positive"
	SignNegative ModifierSign = "negative"
)

// CanonicalModifier is the output of stat and perk normalization
type CanonicalModifier struct {
	Metric string       `json:"metric"`
	Kind   ModifierKind `json:"kind"`
	Unit   ModifierUnit `json:"unit"`
	Value  float64      `json:"value"`
}

// ModifierValue is a canonical modifier stored under its metric name
type ModifierValue struct {
	Kind  ModifierKind `json:"kind"`
	Unit  ModifierUnit `json:"unit"`
	Value float64      `json:"value"`
}

// Modifiers maps a canonical metric name to its signed value
type Modifiers map[string]ModifierValue

// Set stores m under its metric, replacing any earlier value
func (ms Modifiers) Set(m CanonicalModifier) {
	ms[m.Metric] = ModifierValue{Kind: m.Kind, Unit: m.Unit, Value: m.Value}
}
