// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing, flag binding, and validation. Command execution is delegated
// to handler functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the hubspoke CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hubspoke",
		Short: "Provision an Azure Hub-and-Spoke network topology",
	}

	cmd.AddCommand(Init())
	cmd.AddCommand(Apply())
	cmd.AddCommand(Destroy())
	cmd.AddCommand(Validate())
	cmd.AddCommand(Names())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
