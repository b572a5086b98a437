package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arpent/strum/internal/keymap"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("STRUM_ADDRESS", "")
	t.Setenv("STRUM_LOG_FILE", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:6600", cfg.Address)
	assert.Equal(t, 5, cfg.VolumeStep)
	assert.Equal(t, time.Second, cfg.StatusUpdateInterval)

	r := keymap.NewResolver(cfg.Bindings)
	action, ok := r.Resolve(keymap.ScopeQueue, keymap.Key{Code: "q"})
	require.True(t, ok)
	assert.Equal(t, keymap.ActionQuit, action)
}

func TestLoadFileOverridesScalars(t *testing.T) {
	t.Setenv("STRUM_ADDRESS", "")
	path := writeConfig(t, `
address = "music.local:6600"
volume_step = 10
status_update_interval_ms = 250
log_file = "/tmp/strum.log"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "music.local:6600", cfg.Address)
	assert.Equal(t, 10, cfg.VolumeStep)
	assert.Equal(t, 250*time.Millisecond, cfg.StatusUpdateInterval)
	assert.Equal(t, "/tmp/strum.log", cfg.LogFile)
}

func TestLoadClampsIntervalFloor(t *testing.T) {
	path := writeConfig(t, `status_update_interval_ms = 10`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 100*time.Millisecond, cfg.StatusUpdateInterval)
}

func TestLoadZeroIntervalDisablesPolling(t *testing.T) {
	path := writeConfig(t, `status_update_interval_ms = 0`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Zero(t, cfg.StatusUpdateInterval)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `address = "music.local:6600"`)
	t.Setenv("STRUM_ADDRESS", "other:6601")
	t.Setenv("STRUM_LOG_FILE", "/tmp/env.log")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "other:6601", cfg.Address)
	assert.Equal(t, "/tmp/env.log", cfg.LogFile)
}

func TestUserKeybindReplacesExactPair(t *testing.T) {
	path := writeConfig(t, `
[keybinds.global]
quit = ["Q"]
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	r := keymap.NewResolver(cfg.Bindings)

	action, ok := r.Resolve(keymap.ScopeAlbums, keymap.Key{Code: "Q"})
	require.True(t, ok)
	assert.Equal(t, keymap.ActionQuit, action)

	// The default "q" pair is untouched: user bindings replace exact
	// (key, modifier) pairs, they do not clear the action.
	action, ok = r.Resolve(keymap.ScopeAlbums, keymap.Key{Code: "q"})
	require.True(t, ok)
	assert.Equal(t, keymap.ActionQuit, action)

	// Unrelated defaults survive.
	action, ok = r.Resolve(keymap.ScopeAlbums, keymap.Key{Code: "p"})
	require.True(t, ok)
	assert.Equal(t, keymap.ActionTogglePause, action)
}

func TestUserKeybindShadowsDefaultPair(t *testing.T) {
	path := writeConfig(t, `
[keybinds.global]
stop = ["p"]
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	r := keymap.NewResolver(cfg.Bindings)
	action, ok := r.Resolve(keymap.ScopeQueue, keymap.Key{Code: "p"})
	require.True(t, ok)
	assert.Equal(t, keymap.ActionStop, action)
}

func TestLoadRejectsUnknownAction(t *testing.T) {
	path := writeConfig(t, `
[keybinds.global]
warp = ["w"]
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown action")
}

func TestLoadRejectsBadKeySpec(t *testing.T) {
	path := writeConfig(t, `
[keybinds.global]
quit = ["hyper+q"]
`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestDefaultTOMLRoundTrips(t *testing.T) {
	data, err := DefaultTOML()
	require.NoError(t, err)

	var file File
	require.NoError(t, toml.Unmarshal(data, &file))
	assert.Equal(t, DefaultFile(), file)
}
