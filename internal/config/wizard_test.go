package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWizardConfigMinimal(t *testing.T) {
	cfg, err := buildWizardConfig(wizardAnswers{
		SubscriptionID: "sub",
		Location:       "westeurope",
		Prefix:         "neko",
		Environment:    "dev",
		HubCIDR:        "10.0.0.0/16",
		SpokeCIDR:      "10.1.0.0/16",
	})
	require.NoError(t, err)

	assert.Equal(t, "10.0.0.0/24", cfg.Hub.Subnets[0].CIDR)
	assert.Len(t, cfg.Spokes, 1)
	assert.Equal(t, "app", cfg.Spokes[0].Key)
	assert.False(t, cfg.Hub.Firewall.Enabled)
	assert.False(t, cfg.KeyVault.Enabled)
	require.NoError(t, cfg.Validate())
}

func TestBuildWizardConfigWithFirewallAndVault(t *testing.T) {
	cfg, err := buildWizardConfig(wizardAnswers{
		SubscriptionID: "sub",
		Location:       "eastus",
		Prefix:         "corp",
		Environment:    "prod",
		HubCIDR:        "10.0.0.0/16",
		SpokeCIDR:      "10.1.0.0/16",
		Firewall:       true,
		KeyVault:       true,
	})
	require.NoError(t, err)

	require.Len(t, cfg.Hub.Subnets, 3)
	assert.Equal(t, "10.0.1.0/24", cfg.Hub.Subnets[1].CIDR)
	assert.Equal(t, "10.0.2.0/24", cfg.Hub.Subnets[2].CIDR)
	assert.True(t, cfg.Hub.Firewall.Enabled)
	assert.Equal(t, defaultFirewallSize, cfg.Hub.Firewall.Size)
	assert.True(t, cfg.KeyVault.Enabled)
	assert.Equal(t, defaultVaultSKU, cfg.KeyVault.SKU)
	require.NoError(t, cfg.Validate())
}

func TestBuildWizardConfigRejectsBadPrefix(t *testing.T) {
	_, err := buildWizardConfig(wizardAnswers{
		SubscriptionID: "sub",
		Location:       "westeurope",
		Prefix:         "no_good",
		HubCIDR:        "10.0.0.0/16",
		SpokeCIDR:      "10.1.0.0/16",
	})
	assert.Error(t, err)
}

func TestSubnetOf(t *testing.T) {
	assert.Equal(t, "10.5.0.0/24", subnetOf("10.5.0.0/16", 0))
	assert.Equal(t, "10.5.3.0/24", subnetOf("10.5.0.0/16", 3))
	// Too small to split: returned unchanged.
	assert.Equal(t, "10.5.0.0/28", subnetOf("10.5.0.0/28", 1))
}
