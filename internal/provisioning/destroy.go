package provisioning

import "fmt"

// deleteStep is one resource deletion in the teardown sequence.
type deleteStep struct {
	resource string
	run      func() error
}

// Destroy tears the topology down in reverse dependency order, then
// removes the resource group itself. Every delete tolerates resources
// that are already gone, so a partially applied or partially destroyed
// topology converges to nothing.
func Destroy(ctx *Context) error {
	rg, err := ctx.Names.General("resource_group")
	if err != nil {
		return err
	}

	steps, err := destroySteps(ctx, rg)
	if err != nil {
		return err
	}

	for _, step := range steps {
		if err := step.run(); err != nil {
			return fmt.Errorf("deleting %s: %w", step.resource, err)
		}
		ctx.event(Event{Type: EventResourceDeleted, Phase: "destroy", Resource: step.resource, Message: "resource deleted"})
	}

	if err := ctx.Client.DeleteResourceGroup(ctx, rg); err != nil {
		return fmt.Errorf("deleting resource group %s: %w", rg, err)
	}
	ctx.event(Event{Type: EventResourceDeleted, Phase: "destroy", Resource: rg, Message: "resource group deleted"})
	return nil
}

// destroySteps derives the teardown sequence from the config alone, so
// destroy works without an apply in the same process.
func destroySteps(ctx *Context, rg string) ([]deleteStep, error) {
	var steps []deleteStep

	add := func(typeKey, suffix string, fn func(name string) error) error {
		name, err := ctx.Name(typeKey, suffix)
		if err != nil {
			return err
		}
		steps = append(steps, deleteStep{resource: name, run: func() error { return fn(name) }})
		return nil
	}

	cfg := ctx.Config
	if cfg.KeyVault.Enabled {
		if cfg.KeyVault.PrivateEndpoint {
			if err := add("private_endpoint", "kv", func(name string) error {
				return ctx.Client.DeletePrivateEndpoint(ctx, rg, name)
			}); err != nil {
				return nil, err
			}
		}
		vault, err := ctx.Names.Storage("key_vault")
		if err != nil {
			return nil, err
		}
		steps = append(steps, deleteStep{resource: vault, run: func() error {
			return ctx.Client.DeleteVault(ctx, rg, vault)
		}})
	}

	if cfg.Hub.Firewall.Enabled {
		vm, err := ctx.Names.General("palo_alto_vm_series")
		if err != nil {
			return nil, err
		}
		steps = append(steps, deleteStep{resource: vm, run: func() error {
			return ctx.Client.DeleteVirtualMachine(ctx, rg, vm)
		}})

		for _, nic := range []string{"fw-untrusted", "fw-trusted"} {
			if err := add("network_interface", nic, func(name string) error {
				return ctx.Client.DeleteNetworkInterface(ctx, rg, name)
			}); err != nil {
				return nil, err
			}
		}
		if err := add("public_ip", "fw", func(name string) error {
			return ctx.Client.DeletePublicIP(ctx, rg, name)
		}); err != nil {
			return nil, err
		}
	}

	// Peerings die with their VNets.
	for i := len(cfg.Spokes) - 1; i >= 0; i-- {
		if err := add("virtual_network", cfg.Spokes[i].Key, func(name string) error {
			return ctx.Client.DeleteVirtualNetwork(ctx, rg, name)
		}); err != nil {
			return nil, err
		}
	}
	if err := add("virtual_network", "hub", func(name string) error {
		return ctx.Client.DeleteVirtualNetwork(ctx, rg, name)
	}); err != nil {
		return nil, err
	}

	for _, set := range sortedRuleSets(cfg.NSGRules) {
		if err := add("network_security_group", set, func(name string) error {
			return ctx.Client.DeleteSecurityGroup(ctx, rg, name)
		}); err != nil {
			return nil, err
		}
	}
	for _, table := range sortedRouteTables(cfg.RouteTables) {
		if err := add("route_table", table, func(name string) error {
			return ctx.Client.DeleteRouteTable(ctx, rg, name)
		}); err != nil {
			return nil, err
		}
	}
	return steps, nil
}
