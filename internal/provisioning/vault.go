package provisioning

import (
	"github.com/soldal/hubspoke/internal/azure"
	"github.com/soldal/hubspoke/internal/util/tags"
)

// VaultPhase creates the optional Key Vault and, when configured, a
// private endpoint for it inside the hub.
type VaultPhase struct{}

func (p *VaultPhase) Name() string { return "vault" }

func (p *VaultPhase) Run(ctx *Context) error {
	kv := ctx.Config.KeyVault
	if !kv.Enabled {
		ctx.event(Event{Type: EventResourceSkipped, Phase: p.Name(), Message: "key vault disabled"})
		return nil
	}

	rg := ctx.State.ResourceGroupName
	hubTags := ctx.Tags(tags.TopologyHub)

	// Vault names ride the storage sanitization class: alphanumeric only,
	// 24 characters at most.
	name, err := ctx.Names.Storage("key_vault")
	if err != nil {
		return err
	}
	id, uri, err := ctx.Client.EnsureVault(ctx, rg, name, ctx.Config.Location, azure.VaultOptions{
		TenantID:        ctx.Config.TenantID,
		SKU:             kv.SKU,
		PurgeProtection: kv.PurgeProtection,
		DefaultAction:   kv.DefaultAction,
	}, hubTags)
	if err != nil {
		return err
	}
	ctx.State.VaultID = id
	ctx.State.VaultURI = uri
	ctx.event(Event{Type: EventResourceEnsured, Phase: p.Name(), Resource: name, Message: "key vault ensured"})

	if !kv.PrivateEndpoint {
		return nil
	}

	peName, err := ctx.Name("private_endpoint", "kv")
	if err != nil {
		return err
	}
	peID, err := ctx.Client.EnsurePrivateEndpoint(ctx, rg, peName, ctx.Config.Location,
		ctx.State.HubSubnetIDs[kv.PrivateEndpointSubnet], id, []string{"vault"}, hubTags)
	if err != nil {
		return err
	}
	ctx.State.VaultEndpointID = peID
	ctx.event(Event{Type: EventResourceEnsured, Phase: p.Name(), Resource: peName, Message: "vault private endpoint ensured"})
	return nil
}
