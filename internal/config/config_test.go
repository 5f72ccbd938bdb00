package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.toml")
	content := `
[engine]
ticks = 10
scene_path = "scenes/other.yaml"
scripts_dir = "lua"

[storage]
page_size = 64

[logging]
level = "debug"
format = "json"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Engine.Ticks)
	assert.Equal(t, "scenes/other.yaml", cfg.Engine.ScenePath)
	assert.Equal(t, "lua", cfg.Engine.ScriptsDir)
	assert.Equal(t, uint32(64), cfg.Storage.PageSize)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.toml")
	require.NoError(t, os.WriteFile(path, []byte("[engine]\nticks = 1\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Engine.Ticks)
	assert.Equal(t, uint32(32), cfg.Storage.PageSize)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 3, cfg.Engine.Ticks)
	assert.Equal(t, uint32(32), cfg.Storage.PageSize)
	assert.Equal(t, "info", cfg.Logging.Level)
}
