package statkeys

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/osse101/raiddata/internal/logger"
	"github.com/osse101/raiddata/internal/modifier"
	"github.com/osse101/raiddata/internal/source"
	"github.com/osse101/raiddata/internal/validation"
)

// Generate scans the mod and weapon files under dataDir and writes the
// summary and scaffold into outDir. A missing source file is skipped.
func Generate(ctx context.Context, dataDir, modsFile, weaponsFile, outDir string) (*Summary, error) {
	mods, err := readOptional(source.Resolve(dataDir, modsFile))
	if err != nil {
		return nil, err
	}
	weapons, err := readOptional(source.Resolve(dataDir, weaponsFile))
	if err != nil {
		return nil, err
	}

	summary := Scan(ctx, mods, weapons)
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf(ErrMsgWriteFailed, outDir, err)
	}
	if err := writeJSON(ctx, filepath.Join(outDir, SummaryFile), summary); err != nil {
		return nil, err
	}
	if err := writeJSON(ctx, filepath.Join(outDir, ScaffoldFile), BuildScaffold(summary)); err != nil {
		return nil, err
	}
	return summary, nil
}

func readOptional(path string) (*source.File, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	f, err := source.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadSourceFailed, path, err)
	}
	return f, nil
}

func writeJSON(ctx context.Context, path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf(ErrMsgEncodeFailed, path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf(ErrMsgWriteFailed, path, err)
	}
	logger.FromContext(ctx).Info(LogMsgWrote, "path", path)
	return nil
}

// SortMetricsFile rewrites the stat mapping file at path with its mod
// entries ordered by modifier.EntryLess. The file is validated before it is
// touched and fields the loader ignores, such as curator notes, are kept.
func SortMetricsFile(path string, v validation.SchemaValidator) error {
	if _, err := modifier.ReadFile(path, v); err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf(ErrMsgReadSourceFailed, path, err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf(ErrMsgReadSourceFailed, path, err)
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(doc[ModsSection], &raw); err != nil {
		return fmt.Errorf(ErrMsgReadSourceFailed, path, err)
	}

	type row struct {
		entry modifier.Entry
		raw   json.RawMessage
	}
	rows := make([]row, len(raw))
	for i, r := range raw {
		rows[i].raw = r
		if err := json.Unmarshal(r, &rows[i].entry); err != nil {
			return fmt.Errorf(ErrMsgReadSourceFailed, path, err)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return modifier.EntryLess(rows[i].entry, rows[j].entry)
	})
	for i := range rows {
		raw[i] = rows[i].raw
	}

	sorted, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf(ErrMsgEncodeFailed, path, err)
	}
	doc[ModsSection] = sorted
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf(ErrMsgEncodeFailed, path, err)
	}
	if err := os.WriteFile(path, append(out, '\n'), 0644); err != nil {
		return fmt.Errorf(ErrMsgWriteFailed, path, err)
	}
	return nil
}
