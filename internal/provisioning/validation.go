package provisioning

import (
	"fmt"
	"os"
)

// ValidationPhase runs every offline check before the first cloud call:
// config validation, name derivation sanity, and the firewall admin
// password environment variable.
type ValidationPhase struct{}

func (p *ValidationPhase) Name() string { return "validation" }

func (p *ValidationPhase) Run(ctx *Context) error {
	if err := ctx.Config.Validate(); err != nil {
		return err
	}

	// Every resource type the pipeline derives names for must resolve.
	required := []string{
		"resource_group",
		"virtual_network",
		"subnet",
		"network_security_group",
		"route_table",
		"virtual_network_peering",
		"public_ip",
		"network_interface",
	}
	if ctx.Config.Hub.Firewall.Enabled {
		required = append(required, "palo_alto_vm_series")
	}
	if ctx.Config.KeyVault.Enabled {
		required = append(required, "key_vault")
		if ctx.Config.KeyVault.PrivateEndpoint {
			required = append(required, "private_endpoint")
		}
	}
	for _, key := range required {
		if _, err := ctx.Names.Lookup(key); err != nil {
			return err
		}
	}

	if fw := ctx.Config.Hub.Firewall; fw.Enabled {
		if _, ok := os.LookupEnv(fw.AdminPasswordEnv); !ok {
			return fmt.Errorf("environment variable %s is not set (firewall admin password)", fw.AdminPasswordEnv)
		}
	}
	return nil
}
