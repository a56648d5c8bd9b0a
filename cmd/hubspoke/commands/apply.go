package commands

import (
	"github.com/spf13/cobra"

	"github.com/soldal/hubspoke/cmd/hubspoke/handlers"
)

// Apply returns the command that provisions the topology.
//
// Optional flags:
//
//	--config, -c: Path to topology configuration YAML file (default: hubspoke.yaml)
//	--verbose, -v: Emit debug-level log output
//
// Authentication uses the Azure default credential chain: environment
// variables, workload identity, managed identity, then the Azure CLI.
func Apply() *cobra.Command {
	var configPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Create or update the topology",
		Long: `Create or update the Hub-and-Spoke topology.

This command provisions all Azure resources described by the config:
the resource group, security groups and route tables, the hub virtual
network, the optional firewall appliance, spoke networks, peerings, and
the optional Key Vault. Re-running converges an existing deployment.

If no config file is specified, it looks for hubspoke.yaml in the
current directory. Use 'hubspoke init' to create one.

Examples:
  # Apply using hubspoke.yaml in the current directory
  hubspoke apply

  # Apply a specific config file
  hubspoke apply -c production.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Apply(cmd.Context(), configPath, verbose)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: hubspoke.yaml)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Emit debug-level log output")

	return cmd
}
