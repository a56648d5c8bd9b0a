// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic
// and can be tested independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"

	"github.com/soldal/hubspoke/internal/azure"
	"github.com/soldal/hubspoke/internal/config"
	"github.com/soldal/hubspoke/internal/logging"
	"github.com/soldal/hubspoke/internal/provisioning"
)

// Factory function variables - replaced in tests for dependency injection.
var (
	// newClient creates the Azure client using the default credential
	// chain.
	newClient = func(subscriptionID string) (azure.Client, error) {
		return azure.NewRealClient(subscriptionID)
	}

	// loadConfigFile loads config from a file.
	loadConfigFile = config.LoadFile
)

// Apply provisions the Hub-and-Spoke topology described by the config.
//
// The pipeline runs validation first and then converges each resource
// layer in dependency order. Re-running apply on an existing deployment
// is safe: every step uses ARM's PUT semantics.
func Apply(ctx context.Context, configPath string, verbose bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	client, err := newClient(cfg.SubscriptionID)
	if err != nil {
		return fmt.Errorf("creating Azure client: %w", err)
	}

	pCtx, err := newProvisioningContext(ctx, cfg, client, verbose)
	if err != nil {
		return err
	}

	if err := provisioning.Apply(pCtx); err != nil {
		return err
	}

	fmt.Printf("Topology applied: resource group %s in %s\n", pCtx.State.ResourceGroupName, cfg.Location)
	if pCtx.State.FirewallPublicIP != "" {
		fmt.Printf("Firewall public IP: %s\n", pCtx.State.FirewallPublicIP)
	}
	if pCtx.State.VaultURI != "" {
		fmt.Printf("Key vault: %s\n", pCtx.State.VaultURI)
	}
	return nil
}

// loadConfig loads and returns the configuration. If configPath is
// empty, the default file in the current directory is used.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath == "" {
		configPath = config.DefaultConfigFile
	}
	cfg, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun 'hubspoke init' to create one", err)
	}
	return cfg, nil
}

func newProvisioningContext(ctx context.Context, cfg *config.Config, client azure.Client, verbose bool) (*provisioning.Context, error) {
	level := "info"
	if verbose {
		level = "debug"
	}
	observer := provisioning.NewLogObserver(logging.NewConsoleLogger(level))
	return provisioning.NewContext(ctx, cfg, client, observer)
}
