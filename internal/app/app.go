// Package app wires configuration, logging and the daemon connection
// into a running Bubble Tea program.
package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arpent/strum/internal/config"
	"github.com/arpent/strum/internal/logging"
	"github.com/arpent/strum/internal/logging/events"
	"github.com/arpent/strum/internal/mpd"
	"github.com/arpent/strum/internal/ui"
)

// Options carry command-line overrides applied on top of the config file.
type Options struct {
	ConfigPath string
	Address    string
	LogLevel   string
}

// Run bootstraps and executes the client until quit.
func Run(opts Options) error {
	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if opts.Address != "" {
		cfg.Address = opts.Address
	}

	if err := logging.Configure(logging.Config{Level: opts.LogLevel, FilePath: cfg.LogFile}); err != nil {
		return err
	}
	defer logging.Close()

	events.App.Start(startupTracePayload(cfg))
	defer events.App.Stop()

	client, err := mpd.Connect(cfg.Address)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", cfg.Address, err)
	}
	defer client.Close()
	events.Proto.Connect(cfg.Address, client.Version())

	program := tea.NewProgram(ui.NewModel(client, cfg), tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
