package provisioning

import (
	"github.com/soldal/hubspoke/internal/util/tags"
)

// ResourceGroupPhase creates the resource group everything else lives in.
type ResourceGroupPhase struct{}

func (p *ResourceGroupPhase) Name() string { return "resource-group" }

func (p *ResourceGroupPhase) Run(ctx *Context) error {
	name, err := ctx.Names.General("resource_group")
	if err != nil {
		return err
	}

	id, err := ctx.Client.EnsureResourceGroup(ctx, name, ctx.Config.Location, ctx.Tags(tags.TopologyHub))
	if err != nil {
		return err
	}

	ctx.State.ResourceGroupName = name
	ctx.State.ResourceGroupID = id
	ctx.event(Event{Type: EventResourceEnsured, Phase: p.Name(), Resource: name, Message: "resource group ensured"})
	return nil
}
