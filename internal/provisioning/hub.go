package provisioning

import (
	"github.com/soldal/hubspoke/internal/config"
	"github.com/soldal/hubspoke/internal/util/tags"
)

// HubPhase creates the hub virtual network and its subnets, attaching
// the security groups and route tables created by the security phase.
type HubPhase struct{}

func (p *HubPhase) Name() string { return "hub" }

func (p *HubPhase) Run(ctx *Context) error {
	rg := ctx.State.ResourceGroupName
	hubTags := ctx.Tags(tags.TopologyHub)

	vnetName, err := ctx.Name("virtual_network", "hub")
	if err != nil {
		return err
	}
	vnetID, err := ctx.Client.EnsureVirtualNetwork(ctx, rg, vnetName, ctx.Config.Location,
		ctx.Config.Hub.AddressSpace, hubTags)
	if err != nil {
		return err
	}
	ctx.State.HubVNetName = vnetName
	ctx.State.HubVNetID = vnetID
	ctx.event(Event{Type: EventResourceEnsured, Phase: p.Name(), Resource: vnetName, Message: "hub virtual network ensured"})

	for _, subnet := range ctx.Config.Hub.Subnets {
		id, err := p.ensureSubnet(ctx, rg, vnetName, subnet)
		if err != nil {
			return err
		}
		ctx.State.HubSubnetIDs[subnet.Key] = id
	}
	return nil
}

func (p *HubPhase) ensureSubnet(ctx *Context, rg, vnet string, subnet config.SubnetConfig) (string, error) {
	name, err := ctx.Name("subnet", subnet.Key)
	if err != nil {
		return "", err
	}
	id, err := ctx.Client.EnsureSubnet(ctx, rg, vnet, name, subnet.CIDR,
		ctx.State.SecurityGroups[subnet.SecurityRules],
		ctx.State.RouteTables[subnet.RouteTable])
	if err != nil {
		return "", err
	}
	ctx.event(Event{Type: EventResourceEnsured, Phase: p.Name(), Resource: name, Message: "hub subnet ensured"})
	return id, nil
}
