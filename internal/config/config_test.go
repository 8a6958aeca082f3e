package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "file:listingscan.db", cfg.Store.DSN)
	assert.False(t, cfg.Features.EnableTonerCartridges)
	assert.Equal(t, 0, cfg.Workers.Count)
	assert.Contains(t, cfg.Logging.Categories, "store")
}

func TestWorkerCount_DefaultsToNumCPU(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, runtime.NumCPU(), cfg.WorkerCount())
}

func TestWorkerCount_ExplicitOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Workers.Count = 4
	assert.Equal(t, 4, cfg.WorkerCount())
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "file:listingscan.db", cfg.Store.DSN)
}

func TestLoad_ParsesYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listingscan.yaml")
	writeFile(t, path, `
store:
  dsn: "file:custom.db"
workers:
  count: 8
features:
  enable_toner_cartridges: true
logging:
  debug_mode: true
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file:custom.db", cfg.Store.DSN)
	assert.Equal(t, 8, cfg.Workers.Count)
	assert.True(t, cfg.Features.EnableTonerCartridges)
	assert.True(t, cfg.Logging.DebugMode)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Run("store DSN", func(t *testing.T) {
		t.Setenv("LISTINGSCAN_STORE_DSN", "file:env.db")
		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, "file:env.db", cfg.Store.DSN)
	})

	t.Run("worker count", func(t *testing.T) {
		t.Setenv("LISTINGSCAN_WORKERS", "12")
		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, 12, cfg.Workers.Count)
	})

	t.Run("invalid worker count is ignored", func(t *testing.T) {
		t.Setenv("LISTINGSCAN_WORKERS", "not-a-number")
		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, 0, cfg.Workers.Count)
	})

	t.Run("debug mode", func(t *testing.T) {
		t.Setenv("LISTINGSCAN_DEBUG", "true")
		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.True(t, cfg.Logging.DebugMode)
	})

	t.Run("toner cartridges", func(t *testing.T) {
		t.Setenv("LISTINGSCAN_ENABLE_TONER", "1")
		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.True(t, cfg.Features.EnableTonerCartridges)
	})
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "listingscan.yaml")

	cfg := DefaultConfig()
	cfg.Store.DSN = "file:roundtrip.db"
	require.NoError(t, cfg.Save(path))

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "file:roundtrip.db", reloaded.Store.DSN)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}
