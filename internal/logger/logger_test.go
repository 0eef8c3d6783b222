package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandler_JSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfig("info", "json", "test-service", "1.0.0", "test", false)

	log := slog.New(NewHandler(cfg, &buf))
	log.Info("test message", "key", "value", "number", 42)
	log.Debug("filtered out")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-service", entry[AttrKeyService])
	assert.Equal(t, "1.0.0", entry[AttrKeyVersion])
	assert.Equal(t, "test", entry[AttrKeyEnvironment])
	assert.Equal(t, "test message", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "value", entry["key"])
	assert.Equal(t, float64(42), entry["number"])
}

func TestNewHandler_Text(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewHandler(DefaultConfig(), &buf))
	log.Warn("careful", "item_id", "ferro")

	assert.Contains(t, buf.String(), "msg=careful")
	assert.Contains(t, buf.String(), "item_id=ferro")
}

func TestRunIDContext(t *testing.T) {
	_, ok := RunIDFromContext(context.Background())
	assert.False(t, ok)

	id := GenerateRunID()
	ctx := WithRunID(context.Background(), id)
	got, ok := RunIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, id, got)

	var buf bytes.Buffer
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))

	FromContext(ctx).Info("hello")
	assert.Contains(t, buf.String(), "run_id="+id)
}

func TestConfig_LogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"nonsense", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, Config{Level: tt.level}.LogLevel())
		})
	}
}
