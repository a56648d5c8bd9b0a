package tags

import "time"

// Standard tag keys for Azure resources. Azure tag names cannot contain
// slashes, so keys use dot namespacing.
const (
	// KeyManagedBy identifies the management tool.
	KeyManagedBy = "hubspoke.managed-by"

	// KeyTopology identifies the topology role of a resource (hub, spoke).
	KeyTopology = "hubspoke.topology"

	// KeyEnvironment carries the naming environment component.
	KeyEnvironment = "hubspoke.environment"

	// KeySpoke identifies which spoke a resource belongs to.
	KeySpoke = "hubspoke.spoke"

	// KeyCreatedOn records when the resource was first declared.
	// The timestamp is supplied by the caller at invocation time.
	KeyCreatedOn = "CreatedOn"
)

// Topology values.
const (
	TopologyHub   = "hub"
	TopologySpoke = "spoke"
)

// ManagedByHubspoke is the value every managed resource carries.
const ManagedByHubspoke = "hubspoke"

// Builder provides a fluent interface for building Azure resource tag
// sets. Tags identify and group resources belonging to one topology.
type Builder struct {
	tags map[string]string
}

// NewBuilder creates a builder with the managed-by tag and the CreatedOn
// timestamp pre-set. createdOn is ambient caller input; pass the same
// value to every builder in one invocation so all resources agree.
func NewBuilder(createdOn time.Time) *Builder {
	return &Builder{
		tags: map[string]string{
			KeyManagedBy: ManagedByHubspoke,
			KeyCreatedOn: createdOn.UTC().Format(time.RFC3339),
		},
	}
}

// WithEnvironment adds the environment tag. Empty values are skipped.
func (b *Builder) WithEnvironment(env string) *Builder {
	if env != "" {
		b.tags[KeyEnvironment] = env
	}
	return b
}

// WithTopology adds the topology role tag (hub or spoke).
func (b *Builder) WithTopology(role string) *Builder {
	b.tags[KeyTopology] = role
	return b
}

// WithSpoke adds the spoke identity tag.
func (b *Builder) WithSpoke(spoke string) *Builder {
	b.tags[KeySpoke] = spoke
	return b
}

// WithUserTags merges caller-supplied tags. Managed keys win on
// collision so user tags cannot spoof tool identity.
func (b *Builder) WithUserTags(user map[string]string) *Builder {
	for k, v := range user {
		if _, managed := b.tags[k]; managed {
			continue
		}
		b.tags[k] = v
	}
	return b
}

// Build returns the tag set as a plain string map.
func (b *Builder) Build() map[string]string {
	out := make(map[string]string, len(b.tags))
	for k, v := range b.tags {
		out[k] = v
	}
	return out
}

// BuildARM returns the tag set in the pointer-valued shape the Azure SDK
// expects.
func (b *Builder) BuildARM() map[string]*string {
	out := make(map[string]*string, len(b.tags))
	for k, v := range b.tags {
		v := v
		out[k] = &v
	}
	return out
}
