package commands

import (
	"github.com/spf13/cobra"

	"github.com/soldal/hubspoke/cmd/hubspoke/handlers"
)

// Init returns the init command.
//
// Init walks through an interactive wizard and writes a starter
// configuration file.
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file interactively",
		Long: `Init asks a few questions and writes a starter configuration.

The wizard covers the naming components, the Azure location, the hub
address space, and whether to include the firewall appliance and a Key
Vault. Edit the generated file to add spokes, security rules, and
routes.

Example:
  hubspoke init
  hubspoke init -o production.yaml`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Init(outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Where to write the config (default: hubspoke.yaml)")

	return cmd
}
