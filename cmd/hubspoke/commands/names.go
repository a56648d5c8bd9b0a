package commands

import (
	"github.com/spf13/cobra"

	"github.com/soldal/hubspoke/cmd/hubspoke/handlers"
)

// Names returns the names command.
//
// Names derives every resource name from the config and prints them
// without touching Azure. Useful for reviewing what a deployment will
// be called before applying it.
func Names() *cobra.Command {
	var configPath string
	var format string

	cmd := &cobra.Command{
		Use:   "names",
		Short: "Print the derived resource names",
		Long: `Names derives the full resource name set from the config.

Each resource type gets a general name (hyphenated, max 63 characters)
and a storage name (alphanumeric only, max 24 characters). Name
variants from name_suffixes are listed per type.

Examples:
  hubspoke names
  hubspoke names -c production.yaml -f json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Names(cmd.OutOrStdout(), configPath, format)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: hubspoke.yaml)")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table, json, or yaml")

	return cmd
}
