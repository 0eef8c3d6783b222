package modifier

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/osse101/raiddata/internal/domain"
	"github.com/osse101/raiddata/internal/validation"
)

// File is the on-disk stat mapping metrics file
type File struct {
	Mods     []Entry `json:"mods"`
	Upgrades []Entry `json:"upgrades,omitempty"`
	Weapons  []Entry `json:"weapons,omitempty"`
}

// Tables holds the three independently scoped resolution tables
type Tables struct {
	WeaponStats  *Table
	UpgradePerks *Table
	ModStats     *Table
}

// Load reads, schema-validates and indexes the metrics file at path
func Load(path string, v validation.SchemaValidator) (*Tables, error) {
	f, err := ReadFile(path, v)
	if err != nil {
		return nil, err
	}
	return f.Tables(), nil
}

// ReadFile reads and validates the metrics file without indexing it
func ReadFile(path string, v validation.SchemaValidator) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadMetricsFailed, err)
	}

	if err := v.ValidateBytes(data, validation.StatMappingSchema); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaInvalid, path, err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf(ErrMsgParseMetricsFailed, err)
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks every entry's closed variants once so resolution never
// has to
func (f *File) Validate() error {
	sections := []struct {
		name    string
		entries []Entry
	}{
		{"mods", f.Mods},
		{"upgrades", f.Upgrades},
		{"weapons", f.Weapons},
	}
	for _, sec := range sections {
		for i, e := range sec.entries {
			if e.KeyRaw == "" && e.KeySlug == "" {
				return fmt.Errorf(ErrFmtEntryMissingKey, domain.ErrInvalidStatTable, sec.name, i)
			}
			if e.Normalized == "" {
				return fmt.Errorf(ErrFmtEntryMissingMetric, domain.ErrInvalidStatTable, sec.name, i, e.KeyRaw)
			}
			switch e.Kind {
			case domain.ModifierAdditive, domain.ModifierMultiplicative:
			default:
				return fmt.Errorf(ErrFmtEntryInvalidVariant, domain.ErrInvalidStatTable, sec.name, i, e.KeyRaw, "kind", e.Kind)
			}
			switch e.Unit {
			case domain.UnitAbsolute, domain.UnitPercent:
			default:
				return fmt.Errorf(ErrFmtEntryInvalidVariant, domain.ErrInvalidStatTable, sec.name, i, e.KeyRaw, "unit", e.Unit)
			}
			switch e.Sign {
			case domain.SignPositive, domain.SignNegative:
			default:
				return fmt.Errorf(ErrFmtEntryInvalidVariant, domain.ErrInvalidStatTable, sec.name, i, e.KeyRaw, "sign", e.Sign)
			}
		}
	}
	return nil
}

// Tables indexes the file. Upgrade perks resolve against the mod entries
// as well as their own, with upgrade entries taking precedence.
func (f *File) Tables() *Tables {
	return &Tables{
		WeaponStats:  NewTable(ScopeWeaponStats, f.Weapons),
		UpgradePerks: NewTable(ScopeUpgradePerks, f.Mods, f.Upgrades),
		ModStats:     NewTable(ScopeModStats, f.Mods),
	}
}
