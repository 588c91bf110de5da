package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SHOPLIST_CONFIG", "")
	return home
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 10, cfg.List.InitialCapacity)
	require.Empty(t, cfg.List.SeedItems)
	require.True(t, cfg.Search.IgnoreCase)
	require.Equal(t, 2, cfg.Search.SuggestDistance)
	require.True(t, cfg.UI.Color)
	require.Equal(t, "error", cfg.Log.Level)
	require.Equal(t, "", cfg.Log.File)
}

func TestLoadDefaultLocation(t *testing.T) {
	home := isolate(t)

	dir := filepath.Join(home, ".config", "shoplist")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	data := []byte(`
[list]
initial_capacity = 4
seed_items = ["milk", "eggs"]

[ui]
color = false
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), data, 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 4, cfg.List.InitialCapacity)
	require.Equal(t, []string{"milk", "eggs"}, cfg.List.SeedItems)
	require.False(t, cfg.UI.Color)
	require.True(t, cfg.Search.IgnoreCase)
}

func TestLoadExplicitFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "custom.toml")
	data := []byte(`
[search]
ignore_case = false
suggest_distance = 0

[log]
level = "debug"
file = "/tmp/shoplist.log"
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	t.Setenv("SHOPLIST_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.False(t, cfg.Search.IgnoreCase)
	require.Equal(t, 0, cfg.Search.SuggestDistance)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "/tmp/shoplist.log", cfg.Log.File)
	require.Equal(t, 10, cfg.List.InitialCapacity)
}

func TestLoadExplicitFileMissing(t *testing.T) {
	isolate(t)
	t.Setenv("SHOPLIST_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))

	_, err := Load()
	require.Error(t, err)
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("SHOPLIST_LIST_INITIAL_CAPACITY", "3")
	t.Setenv("SHOPLIST_LOG_LEVEL", "info")
	t.Setenv("SHOPLIST_SEARCH_IGNORE_CASE", "false")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 3, cfg.List.InitialCapacity)
	require.Equal(t, "info", cfg.Log.Level)
	require.False(t, cfg.Search.IgnoreCase)
}
