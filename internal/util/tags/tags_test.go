package tags

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	createdOn := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	got := NewBuilder(createdOn).
		WithEnvironment("prod").
		WithTopology(TopologyHub).
		Build()

	assert.Equal(t, ManagedByHubspoke, got[KeyManagedBy])
	assert.Equal(t, "2025-03-14T09:26:53Z", got[KeyCreatedOn])
	assert.Equal(t, "prod", got[KeyEnvironment])
	assert.Equal(t, TopologyHub, got[KeyTopology])
}

func TestBuilderSkipsEmptyEnvironment(t *testing.T) {
	got := NewBuilder(time.Now()).WithEnvironment("").Build()
	assert.NotContains(t, got, KeyEnvironment)
}

func TestBuilderUserTagsCannotOverrideManaged(t *testing.T) {
	got := NewBuilder(time.Now()).
		WithUserTags(map[string]string{
			KeyManagedBy: "someone-else",
			"team":       "network",
		}).
		Build()

	assert.Equal(t, ManagedByHubspoke, got[KeyManagedBy])
	assert.Equal(t, "network", got["team"])
}

func TestBuildARM(t *testing.T) {
	got := NewBuilder(time.Unix(0, 0)).WithSpoke("app").BuildARM()

	require.Contains(t, got, KeySpoke)
	require.NotNil(t, got[KeySpoke])
	assert.Equal(t, "app", *got[KeySpoke])
}

func TestBuildReturnsCopy(t *testing.T) {
	b := NewBuilder(time.Now())
	first := b.Build()
	first["mutated"] = "yes"
	assert.NotContains(t, b.Build(), "mutated")
}
