// Package cmd defines the command-line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arpent/strum/internal/app"
)

var opts app.Options

var rootCmd = &cobra.Command{
	Use:           "strum",
	Short:         "Terminal client for an MPD music server",
	Long:          "strum is an interactive terminal client for MPD-compatible music daemons:\nbrowse the library by album, artist, directory or playlist, and control playback.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run(opts)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to the config file")
	rootCmd.Flags().StringVar(&opts.Address, "address", "", "server address, overriding the config file")
	rootCmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
