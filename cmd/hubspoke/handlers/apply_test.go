package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyProvisionsTopology(t *testing.T) {
	mock := withMockClient(t)
	path := writeTestConfig(t)

	require.NoError(t, Apply(context.Background(), path, false))

	calls := mock.CallNames()
	assert.Contains(t, calls, "EnsureResourceGroup:neko-rg-prod-weu-01")
	assert.Contains(t, calls, "EnsureVirtualNetwork:neko-vnet-prod-weu-01-hub")
	assert.Contains(t, calls, "EnsureVirtualNetwork:neko-vnet-prod-weu-01-app")
	assert.Contains(t, calls, "EnsurePeering:neko-peer-prod-weu-01-hub-to-app")
}

func TestApplyMissingConfig(t *testing.T) {
	withMockClient(t)

	err := Apply(context.Background(), "does-not-exist.yaml", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hubspoke init")
}

func TestApplyPropagatesProvisioningErrors(t *testing.T) {
	mock := withMockClient(t)
	mock.FailOn = map[string]error{"EnsureResourceGroup": assert.AnError}
	path := writeTestConfig(t)

	err := Apply(context.Background(), path, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
