package commands

import (
	"github.com/spf13/cobra"

	"github.com/soldal/hubspoke/cmd/hubspoke/handlers"
)

// Destroy returns the destroy command.
//
// The destroy command removes all topology resources from Azure in
// reverse dependency order: private endpoint, key vault, firewall VM,
// NICs, public IP, spoke networks, hub network, security groups, route
// tables, and finally the resource group.
func Destroy() *cobra.Command {
	var configPath string
	var yes bool

	cmd := &cobra.Command{
		Use:   "destroy",
		Short: "Destroy the topology and all associated resources",
		Long: `Destroy removes all topology resources from Azure.

Resources are deleted in reverse dependency order so partially applied
deployments tear down cleanly. The resource group is removed last.

Example:
  hubspoke destroy -c hubspoke.yaml

WARNING: This operation is irreversible.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Destroy(cmd.Context(), configPath, yes)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: hubspoke.yaml)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
