package provisioning

import (
	"context"
	"fmt"
	"time"

	"github.com/soldal/hubspoke/internal/azure"
	"github.com/soldal/hubspoke/internal/config"
	"github.com/soldal/hubspoke/internal/naming"
	"github.com/soldal/hubspoke/internal/util/tags"
)

// Context carries everything a phase needs: the topology config, the
// derived name set, the Azure client, the shared state, and an observer
// for structured events.
type Context struct {
	context.Context

	Config   *config.Config
	Names    *naming.Set
	Client   azure.Client
	State    *State
	Observer Observer

	// CreatedOn stamps every resource with the same creation timestamp.
	CreatedOn time.Time
}

// NewContext builds a provisioning context. The name set is derived from
// the config's naming section; invalid components or unknown resource
// types surface here, before any cloud call happens.
func NewContext(ctx context.Context, cfg *config.Config, client azure.Client, observer Observer) (*Context, error) {
	names, err := naming.NewSet(cfg.Naming.Components(), cfg.Naming.CustomResourceTypes, cfg.Naming.NameSuffixes)
	if err != nil {
		return nil, fmt.Errorf("deriving names: %w", err)
	}
	if observer == nil {
		observer = NopObserver{}
	}
	return &Context{
		Context:   ctx,
		Config:    cfg,
		Names:     names,
		Client:    client,
		State:     NewState(),
		Observer:  observer,
		CreatedOn: time.Now(),
	}, nil
}

// Name derives a resource name: the general-sanitized name for typeKey,
// with an instance suffix appended when non-empty. Peerings, NICs, and
// per-subnet resources all get their instance identity this way.
func (c *Context) Name(typeKey, suffix string) (string, error) {
	base, err := c.Names.General(typeKey)
	if err != nil {
		return "", err
	}
	if suffix == "" {
		return base, nil
	}
	return base + "-" + suffix, nil
}

// Tags builds the base tag set for a resource with the given topology
// role. User tags from the config are merged in; managed keys win.
func (c *Context) Tags(topology string) map[string]string {
	return tags.NewBuilder(c.CreatedOn).
		WithEnvironment(c.Config.Naming.Environment).
		WithTopology(topology).
		WithUserTags(c.Config.Tags).
		Build()
}

// SpokeTags builds the tag set for a resource belonging to one spoke.
func (c *Context) SpokeTags(spoke string) map[string]string {
	return tags.NewBuilder(c.CreatedOn).
		WithEnvironment(c.Config.Naming.Environment).
		WithTopology(tags.TopologySpoke).
		WithSpoke(spoke).
		WithUserTags(c.Config.Tags).
		Build()
}

func (c *Context) event(event Event) {
	c.Observer.Event(event)
}
