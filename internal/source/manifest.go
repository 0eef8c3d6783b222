package source

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/osse101/raiddata/internal/domain"
	"github.com/osse101/raiddata/internal/validation"
)

// FileSpec names one source file and how to read it
type FileSpec struct {
	File string           `json:"file"`
	Kind domain.BatchKind `json:"kind"`
}

// Manifest lists the source files of one data set
type Manifest struct {
	Version     string     `json:"version"`
	MetricsFile string     `json:"metrics_file"`
	Files       []FileSpec `json:"files"`
}

// DefaultManifest returns the file layout of the scraped data set
func DefaultManifest() *Manifest {
	return &Manifest{
		Version:     ManifestVersion,
		MetricsFile: FileStatMetrics,
		Files: []FileSpec{
			{File: FileGeneralItems, Kind: domain.KindGeneral},
			{File: FileAugmentItems, Kind: domain.KindAugment},
			{File: FileGrenadeItems, Kind: domain.KindGrenade},
			{File: FileHealingItems, Kind: domain.KindHealing},
			{File: FileQuickUseItems, Kind: domain.KindQuickUse},
			{File: FileTrapItems, Kind: domain.KindTrap},
			{File: FileShields, Kind: domain.KindShield},
			{File: FileModItems, Kind: domain.KindMod},
			{File: FileWeaponItems, Kind: domain.KindWeapon},
			{File: FileWorkbenches, Kind: domain.KindWorkbench},
		},
	}
}

// LoadManifest reads and validates a manifest file
func LoadManifest(path string, v validation.SchemaValidator) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadManifestFailed, err)
	}
	if v != nil {
		if err := v.ValidateBytes(data, validation.ManifestSchema); err != nil {
			return nil, fmt.Errorf(ErrMsgManifestSchema, path, err)
		}
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf(ErrMsgParseManifestFailed, err)
	}
	if m.MetricsFile == "" {
		m.MetricsFile = FileStatMetrics
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks that every entry has a known kind
func (m *Manifest) Validate() error {
	if len(m.Files) == 0 {
		return fmt.Errorf(ErrFmtManifestNoFiles, domain.ErrInvalidConfig)
	}
	for i, f := range m.Files {
		if !f.Kind.IsValid() {
			return fmt.Errorf(ErrFmtManifestBadKind, domain.ErrInvalidConfig, i, f.File, f.Kind)
		}
	}
	return nil
}

// ItemFiles returns all files holding plain item records, in manifest order
func (m *Manifest) ItemFiles() []FileSpec {
	var out []FileSpec
	for _, f := range m.Files {
		if f.Kind.IsItemFile() {
			out = append(out, f)
		}
	}
	return out
}

// FilesOf returns the files of the given kinds, in manifest order
func (m *Manifest) FilesOf(kinds ...domain.BatchKind) []FileSpec {
	var out []FileSpec
	for _, f := range m.Files {
		for _, k := range kinds {
			if f.Kind == k {
				out = append(out, f)
				break
			}
		}
	}
	return out
}

// Resolve joins a manifest entry with the data directory
func Resolve(dir, file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(dir, file)
}
