// Package main is the entry point for the hubspoke CLI.
//
// hubspoke provisions an Azure Hub-and-Spoke network topology from a
// single declarative YAML file: the hub virtual network with an optional
// firewall VM appliance, peered spoke networks, network security groups,
// route tables, and an optional Key Vault. Resource names are derived
// deterministically from a small set of naming components.
//
// Commands: init, apply, destroy, validate, names.
//
// For detailed usage information, run:
//
//	hubspoke --help
package main

import (
	"fmt"
	"os"

	"github.com/soldal/hubspoke/cmd/hubspoke/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
