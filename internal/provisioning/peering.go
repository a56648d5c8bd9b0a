package provisioning

import (
	"github.com/soldal/hubspoke/internal/azure"
	"github.com/soldal/hubspoke/internal/config"
)

// PeeringPhase connects each spoke to the hub with a bidirectional
// peering pair. The hub side always allows gateway transit so spokes can
// opt into the hub's gateways.
type PeeringPhase struct{}

func (p *PeeringPhase) Name() string { return "peering" }

func (p *PeeringPhase) Run(ctx *Context) error {
	rg := ctx.State.ResourceGroupName
	for _, spoke := range ctx.Config.Spokes {
		if err := p.peerSpoke(ctx, rg, spoke); err != nil {
			return err
		}
	}
	return nil
}

func (p *PeeringPhase) peerSpoke(ctx *Context, rg string, spoke config.SpokeConfig) error {
	forwarded := boolValue(spoke.Peering.AllowForwardedTraffic, true)
	remoteGateways := boolValue(spoke.Peering.UseRemoteGateways, false)

	hubToSpoke, err := ctx.Name("virtual_network_peering", "hub-to-"+spoke.Key)
	if err != nil {
		return err
	}
	err = ctx.Client.EnsurePeering(ctx, rg, ctx.State.HubVNetName, hubToSpoke,
		ctx.State.SpokeVNetIDs[spoke.Key], azure.PeeringOptions{
			AllowForwardedTraffic: forwarded,
			AllowGatewayTransit:   true,
		})
	if err != nil {
		return err
	}
	ctx.event(Event{Type: EventResourceEnsured, Phase: p.Name(), Resource: hubToSpoke, Message: "hub-to-spoke peering ensured"})

	spokeToHub, err := ctx.Name("virtual_network_peering", spoke.Key+"-to-hub")
	if err != nil {
		return err
	}
	err = ctx.Client.EnsurePeering(ctx, rg, ctx.State.SpokeVNetNames[spoke.Key], spokeToHub,
		ctx.State.HubVNetID, azure.PeeringOptions{
			AllowForwardedTraffic: forwarded,
			UseRemoteGateways:     remoteGateways,
		})
	if err != nil {
		return err
	}
	ctx.event(Event{Type: EventResourceEnsured, Phase: p.Name(), Resource: spokeToHub, Message: "spoke-to-hub peering ensured"})
	return nil
}

func boolValue(b *bool, fallback bool) bool {
	if b == nil {
		return fallback
	}
	return *b
}
