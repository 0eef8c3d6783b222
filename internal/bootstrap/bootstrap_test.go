package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/raiddata/internal/config"
	"github.com/osse101/raiddata/internal/testing/leaktest"
)

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2026-01-%02d_00-00-00", i+1))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o644))

	cleanupLogs(dir)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var logs []string
	for _, e := range entries {
		if filepath.Ext(e.Name()) == LogFileExtension {
			logs = append(logs, e.Name())
		}
	}
	assert.Len(t, logs, LogFileRetentionCount)
	assert.Equal(t, "session_2026-01-04_00-00-00.log", logs[0])
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
}

func TestCleanupLogs_BelowLimit(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, fmt.Sprintf("s%d.log", i)), nil, 0o644))
	}
	cleanupLogs(dir)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestSetupLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	t.Run("with log dir", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "logs")
		cfg := &config.Config{LogLevel: "debug", LogFormat: "json", LogDir: dir, Environment: "test"}

		f, err := SetupLogger(cfg)
		require.NoError(t, err)
		require.NotNil(t, f)
		defer f.Close()

		data, err := os.ReadFile(f.Name())
		require.NoError(t, err)
		assert.Contains(t, string(data), LogMsgLoggingInitialized)
		assert.Contains(t, string(data), `"environment":"test"`)
		assert.Contains(t, string(data), `"service":"raiddata-ingest"`)
	})

	t.Run("stdout only", func(t *testing.T) {
		f, err := SetupLogger(&config.Config{LogLevel: "info", LogFormat: "text"})
		require.NoError(t, err)
		assert.Nil(t, f)
	})

	t.Run("unwritable dir", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "plain")
		require.NoError(t, os.WriteFile(file, nil, 0o644))
		_, err := SetupLogger(&config.Config{LogDir: filepath.Join(file, "logs")})
		assert.Error(t, err)
	})
}

func TestSignalContext(t *testing.T) {
	t.Run("stop cancels", func(t *testing.T) {
		// The runtime starts its signal watcher on the first Notify and
		// never stops it, so start it before the baseline is taken.
		primeSignalWatcher()

		leaktest.CheckNoGoroutineLeak(t, func() {
			ctx, stop := SignalContext(context.Background())
			stop()
			stop()
			assert.ErrorIs(t, ctx.Err(), context.Canceled)
		})
	})

	t.Run("signal cancels", func(t *testing.T) {
		ctx, stop := SignalContext(context.Background())
		defer stop()

		require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGTERM))
		select {
		case <-ctx.Done():
		case <-time.After(2 * time.Second):
			t.Fatal("context not cancelled by SIGTERM")
		}
	})
}

func primeSignalWatcher() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGUSR1)
	signal.Stop(c)
}
