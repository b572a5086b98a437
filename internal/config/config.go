// Package config loads the TOML configuration file and resolves
// keybinding tables into a keymap.Bindings set.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/arpent/strum/internal/keymap"
)

const (
	envAddress = "STRUM_ADDRESS"
	envLogFile = "STRUM_LOG_FILE"

	defaultAddress  = "127.0.0.1:6600"
	defaultVolStep  = 5
	defaultInterval = 1000 * time.Millisecond

	// Poll intervals below this churn the connection for no visible gain.
	minInterval = 100 * time.Millisecond
)

// File mirrors the on-disk TOML layout. Keybind tables map action names
// to one or more key specs ("q", "ctrl+d", "shift+tab").
type File struct {
	Address                string   `toml:"address"`
	VolumeStep             int      `toml:"volume_step"`
	StatusUpdateIntervalMS int64    `toml:"status_update_interval_ms"`
	LogFile                string   `toml:"log_file,omitempty"`
	Keybinds               Keybinds `toml:"keybinds"`
}

type Keybinds struct {
	Global      map[string][]string `toml:"global"`
	Navigation  map[string][]string `toml:"navigation"`
	Albums      map[string][]string `toml:"albums"`
	Artists     map[string][]string `toml:"artists"`
	Directories map[string][]string `toml:"directories"`
	Playlists   map[string][]string `toml:"playlists"`
	Queue       map[string][]string `toml:"queue"`
	Logs        map[string][]string `toml:"logs"`
}

// Config is the resolved runtime configuration.
type Config struct {
	Address              string
	VolumeStep           int
	StatusUpdateInterval time.Duration // zero disables the status poll
	LogFile              string
	Bindings             keymap.Bindings
}

// DefaultPath returns $XDG_CONFIG_HOME/strum/config.toml, falling back
// to ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "strum", "config.toml")
}

// DefaultFile returns the built-in configuration, including the stock
// keybind tables.
func DefaultFile() File {
	return File{
		Address:                defaultAddress,
		VolumeStep:             defaultVolStep,
		StatusUpdateIntervalMS: defaultInterval.Milliseconds(),
		Keybinds: Keybinds{
			Global: map[string][]string{
				"quit":           {"q"},
				"next_tab":       {"right"},
				"previous_tab":   {"left"},
				"toggle_pause":   {"p"},
				"stop":           {"s"},
				"next_track":     {">"},
				"previous_track": {"<"},
				"seek_forward":   {"f"},
				"seek_back":      {"b"},
				"volume_up":      {"."},
				"volume_down":    {","},
				"toggle_repeat":  {"z"},
				"toggle_random":  {"x"},
				"toggle_single":  {"c"},
				"toggle_consume": {"v"},
				"show_help":      {"?"},
			},
			Navigation: map[string][]string{
				"up":              {"k"},
				"down":            {"j"},
				"up_half":         {"ctrl+u"},
				"down_half":       {"ctrl+d"},
				"top":             {"g"},
				"bottom":          {"G"},
				"descend":         {"l"},
				"ascend":          {"h"},
				"enter_search":    {"/"},
				"next_result":     {"ctrl+n"},
				"previous_result": {"N"},
				"confirm":         {"enter"},
			},
			Albums:      map[string][]string{},
			Artists:     map[string][]string{},
			Directories: map[string][]string{},
			Playlists:   map[string][]string{},
			Queue: map[string][]string{
				"delete":     {"d"},
				"delete_all": {"D"},
				"save_queue": {"ctrl+s"},
			},
			Logs: map[string][]string{
				"clear": {"D"},
			},
		},
	}
}

// DefaultTOML renders the built-in configuration as a commented TOML
// document, suitable for bootstrapping a user config file.
func DefaultTOML() ([]byte, error) {
	data, err := toml.Marshal(DefaultFile())
	if err != nil {
		return nil, fmt.Errorf("marshal default config: %w", err)
	}
	header := "# strum configuration\n# Copy to " + DefaultPath() + " and edit as needed.\n\n"
	return append([]byte(header), data...), nil
}

// Load reads the config file at path and resolves it against the
// defaults. A missing file yields the default configuration; a present
// but invalid file is an error. STRUM_ADDRESS and STRUM_LOG_FILE
// override their file counterparts.
func Load(path string) (Config, error) {
	file := File{
		Address:                defaultAddress,
		VolumeStep:             defaultVolStep,
		StatusUpdateIntervalMS: defaultInterval.Milliseconds(),
	}
	userBinds := keymap.NewBindings()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &file); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
		userBinds, err = bindingsFromKeybinds(file.Keybinds)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// No file: run on defaults.
	default:
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	if addr := os.Getenv(envAddress); addr != "" {
		file.Address = addr
	}
	if logFile := os.Getenv(envLogFile); logFile != "" {
		file.LogFile = logFile
	}

	defaults, err := bindingsFromKeybinds(DefaultFile().Keybinds)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Address:    file.Address,
		VolumeStep: file.VolumeStep,
		LogFile:    file.LogFile,
		Bindings:   keymap.Merge(defaults, userBinds),
	}
	if cfg.VolumeStep <= 0 {
		cfg.VolumeStep = defaultVolStep
	}
	if file.StatusUpdateIntervalMS > 0 {
		cfg.StatusUpdateInterval = time.Duration(file.StatusUpdateIntervalMS) * time.Millisecond
		if cfg.StatusUpdateInterval < minInterval {
			cfg.StatusUpdateInterval = minInterval
		}
	}
	return cfg, nil
}

func bindingsFromKeybinds(kb Keybinds) (keymap.Bindings, error) {
	bindings := keymap.NewBindings()
	tables := []struct {
		scope keymap.Scope
		table map[string][]string
	}{
		{keymap.ScopeGlobal, kb.Global},
		{keymap.ScopeNavigation, kb.Navigation},
		{keymap.ScopeAlbums, kb.Albums},
		{keymap.ScopeArtists, kb.Artists},
		{keymap.ScopeDirectories, kb.Directories},
		{keymap.ScopePlaylists, kb.Playlists},
		{keymap.ScopeQueue, kb.Queue},
		{keymap.ScopeLogs, kb.Logs},
	}
	for _, t := range tables {
		for name, specs := range t.table {
			action, err := keymap.ParseAction(name)
			if err != nil {
				return keymap.Bindings{}, fmt.Errorf("keybinds.%s: %w", t.scope, err)
			}
			for _, spec := range specs {
				key, err := keymap.Parse(spec)
				if err != nil {
					return keymap.Bindings{}, fmt.Errorf("keybinds.%s.%s: %w", t.scope, name, err)
				}
				bindings.Bind(t.scope, key, action)
			}
		}
	}
	return bindings, nil
}
