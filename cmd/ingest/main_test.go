package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/raiddata/internal/bootstrap"
	"github.com/osse101/raiddata/internal/domain"
	"github.com/osse101/raiddata/internal/modifier"
	"github.com/osse101/raiddata/internal/pipeline"
	"github.com/osse101/raiddata/internal/source"
	"github.com/osse101/raiddata/internal/testing/memstore"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, 0},
		{"interrupted", context.Canceled, bootstrap.ExitCodeInterrupted},
		{"wrapped interrupt", fmt.Errorf("items phase: %w", context.Canceled), bootstrap.ExitCodeInterrupted},
		{"fatal", errors.New("connection refused"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestExitCode_FailedRecordsStillSucceed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "items.json"),
		[]byte(`[{"id": "metal_parts", "name": "Metal Parts"}]`), 0o644))
	m := &source.Manifest{Files: []source.FileSpec{
		{File: "missing.json", Kind: domain.KindGeneral},
		{File: "items.json", Kind: domain.KindGeneral},
	}}
	p, err := pipeline.New(memstore.New(), pipeline.Options{
		DataDir:  dir,
		Manifest: m,
		Tables: &modifier.Tables{
			WeaponStats:  modifier.NewTable(modifier.ScopeWeaponStats),
			UpgradePerks: modifier.NewTable(modifier.ScopeUpgradePerks),
			ModStats:     modifier.NewTable(modifier.ScopeModStats),
		},
	})
	require.NoError(t, err)

	rep, runErr := p.Run(context.Background())
	require.NoError(t, runErr)
	require.True(t, rep.Failed())

	assert.Equal(t, 0, exitCode(runErr))
}
