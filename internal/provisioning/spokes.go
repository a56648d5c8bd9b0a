package provisioning

import (
	"github.com/soldal/hubspoke/internal/config"
)

// SpokesPhase creates every spoke virtual network and its subnets.
type SpokesPhase struct{}

func (p *SpokesPhase) Name() string { return "spokes" }

func (p *SpokesPhase) Run(ctx *Context) error {
	rg := ctx.State.ResourceGroupName
	for _, spoke := range ctx.Config.Spokes {
		if err := p.ensureSpoke(ctx, rg, spoke); err != nil {
			return err
		}
	}
	return nil
}

func (p *SpokesPhase) ensureSpoke(ctx *Context, rg string, spoke config.SpokeConfig) error {
	spokeTags := ctx.SpokeTags(spoke.Key)

	vnetName, err := ctx.Name("virtual_network", spoke.Key)
	if err != nil {
		return err
	}
	vnetID, err := ctx.Client.EnsureVirtualNetwork(ctx, rg, vnetName, ctx.Config.Location,
		spoke.AddressSpace, spokeTags)
	if err != nil {
		return err
	}
	ctx.State.SpokeVNetNames[spoke.Key] = vnetName
	ctx.State.SpokeVNetIDs[spoke.Key] = vnetID
	ctx.event(Event{Type: EventResourceEnsured, Phase: p.Name(), Resource: vnetName, Message: "spoke virtual network ensured"})

	subnetIDs := make(map[string]string, len(spoke.Subnets))
	for _, subnet := range spoke.Subnets {
		name, err := ctx.Name("subnet", spoke.Key+"-"+subnet.Key)
		if err != nil {
			return err
		}
		id, err := ctx.Client.EnsureSubnet(ctx, rg, vnetName, name, subnet.CIDR,
			ctx.State.SecurityGroups[subnet.SecurityRules],
			ctx.State.RouteTables[subnet.RouteTable])
		if err != nil {
			return err
		}
		subnetIDs[subnet.Key] = id
		ctx.event(Event{Type: EventResourceEnsured, Phase: p.Name(), Resource: name, Message: "spoke subnet ensured"})
	}
	ctx.State.SpokeSubnetIDs[spoke.Key] = subnetIDs
	return nil
}
