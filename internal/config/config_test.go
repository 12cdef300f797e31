package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-tales/internal/config"
	"github.com/KirkDiggler/rpg-tales/internal/errors"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("TALES_GEMINI_API_KEY", "test-key")
	t.Setenv("TALES_AUTH_SECRET", "0123456789abcdef")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 50051, cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.Rooms.TTL)
	assert.Equal(t, 5*time.Second, cfg.Rooms.PollInterval)
	assert.Equal(t, 60*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, ":memory:", cfg.Journal.Path)
	assert.Empty(t, cfg.Redis.URL)
	assert.Equal(t, "rpg-tales", cfg.Telemetry.ServiceName)
	assert.True(t, cfg.Telemetry.Enabled)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("TALES_PORT", "6000")
	t.Setenv("TALES_REDIS_URL", "redis://localhost:6379/2")
	t.Setenv("TALES_ROOM_TTL", "2h")
	t.Setenv("TALES_LOG_LEVEL", "debug")
	t.Setenv("TALES_GEMINI_LANGUAGE", "English")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 6000, cfg.Port)
	assert.Equal(t, "redis://localhost:6379/2", cfg.Redis.URL)
	assert.Equal(t, 2*time.Hour, cfg.Rooms.TTL)
	assert.Equal(t, "English", cfg.Gemini.Language)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("TALES_GEMINI_API_KEY", "")
	t.Setenv("TALES_AUTH_SECRET", "short")

	cfg, err := config.Load()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "TALES_GEMINI_API_KEY")
	assert.Contains(t, err.Error(), "TALES_AUTH_SECRET")
}

func TestLoadEnvFile(t *testing.T) {
	t.Setenv("TALES_GEMINI_API_KEY", "")
	t.Setenv("TALES_AUTH_SECRET", "")
	// unset so the .env file can provide them
	require.NoError(t, os.Unsetenv("TALES_GEMINI_API_KEY"))
	require.NoError(t, os.Unsetenv("TALES_AUTH_SECRET"))

	dir := t.TempDir()
	file := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(file, []byte(
		"TALES_GEMINI_API_KEY=from-file\nTALES_AUTH_SECRET=abcdefghijklmnopqrstuvwxyz\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("TALES_GEMINI_API_KEY")
		_ = os.Unsetenv("TALES_AUTH_SECRET")
	})

	cfg, err := config.Load(filepath.Join(dir, "missing.env"), file)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Gemini.APIKey)
}

func TestLoadBadDuration(t *testing.T) {
	setRequired(t)
	t.Setenv("TALES_ROOM_TTL", "forever")

	_, err := config.Load()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}
