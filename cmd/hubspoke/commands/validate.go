package commands

import (
	"github.com/spf13/cobra"

	"github.com/soldal/hubspoke/cmd/hubspoke/handlers"
)

// Validate returns the validate command.
//
// Validate loads the config, checks it, and derives the full name set
// without touching Azure.
func Validate() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration without deploying",
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Validate(configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: hubspoke.yaml)")

	return cmd
}
