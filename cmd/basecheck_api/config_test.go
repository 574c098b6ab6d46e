package main

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/DjordjeVuckovic/base-checker/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppConfig_Load(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("ENV_PATH", filepath.Join(t.TempDir(), "missing.env"))

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("SESSION_LIMIT", "")
		t.Setenv("BASECHECK_SENTINEL", "")
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("HEALTH_CHECK_CAPACITY", "")

		cfg, err := NewAppConfig().Load()

		require.NoError(t, err)
		assert.Equal(t, session.DefaultStoreLimit, cfg.SessionLimit)
		assert.Equal(t, session.DefaultSentinel, cfg.Sentinel)
		assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
		assert.True(t, cfg.CapacityHealth)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("SESSION_LIMIT", "16")
		t.Setenv("BASECHECK_SENTINEL", "STOP")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("HEALTH_CHECK_CAPACITY", "false")

		cfg, err := NewAppConfig().Load()

		require.NoError(t, err)
		assert.Equal(t, 16, cfg.SessionLimit)
		assert.Equal(t, "STOP", cfg.Sentinel)
		assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
		assert.False(t, cfg.CapacityHealth)
	})

	t.Run("invalid log level", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "verbose")

		_, err := NewAppConfig().Load()

		assert.Error(t, err)
	})

	t.Run("invalid capacity flag", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("HEALTH_CHECK_CAPACITY", "sometimes")

		_, err := NewAppConfig().Load()

		assert.Error(t, err)
	})

	t.Run("invalid limit falls back", func(t *testing.T) {
		t.Setenv("SESSION_LIMIT", "-3")
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("HEALTH_CHECK_CAPACITY", "")

		cfg, err := NewAppConfig().Load()

		require.NoError(t, err)
		assert.Equal(t, session.DefaultStoreLimit, cfg.SessionLimit)
	})
}

func TestNewHealthChecker(t *testing.T) {
	store := session.NewStore(1)
	_, err := store.Create()
	require.NoError(t, err)

	gated := newHealthChecker(&CheckerAPIConfig{SessionLimit: 1, CapacityHealth: true}, store)
	assert.False(t, gated.Healthy(context.Background()))

	liveness := newHealthChecker(&CheckerAPIConfig{SessionLimit: 1, CapacityHealth: false}, store)
	assert.True(t, liveness.Healthy(context.Background()))
}
