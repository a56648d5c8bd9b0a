package handlers

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/soldal/hubspoke/internal/provisioning"
)

// confirmDestroy asks for interactive confirmation - replaced in tests.
var confirmDestroy = func(resourceGroup string) (bool, error) {
	var confirmed bool
	err := huh.NewConfirm().
		Title(fmt.Sprintf("Delete resource group %s and everything in it?", resourceGroup)).
		Affirmative("Destroy").
		Negative("Cancel").
		Value(&confirmed).
		Run()
	return confirmed, err
}

// Destroy removes the topology and all associated Azure resources.
//
// Resources are deleted in reverse dependency order: private endpoint,
// key vault, firewall VM, NICs, public IP, spoke networks, hub network,
// security groups, route tables, and finally the resource group.
func Destroy(ctx context.Context, configPath string, skipConfirm bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	client, err := newClient(cfg.SubscriptionID)
	if err != nil {
		return fmt.Errorf("creating Azure client: %w", err)
	}

	pCtx, err := newProvisioningContext(ctx, cfg, client, false)
	if err != nil {
		return err
	}

	rg, err := pCtx.Names.General("resource_group")
	if err != nil {
		return err
	}

	if !skipConfirm {
		confirmed, err := confirmDestroy(rg)
		if err != nil {
			return fmt.Errorf("confirmation failed: %w", err)
		}
		if !confirmed {
			fmt.Println("Destroy cancelled")
			return nil
		}
	}

	if err := provisioning.Destroy(pCtx); err != nil {
		return fmt.Errorf("destroy failed: %w", err)
	}

	fmt.Printf("Topology destroyed: resource group %s removed\n", rg)
	return nil
}
