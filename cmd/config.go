package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arpent/strum/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration as TOML",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := config.DefaultTOML()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
