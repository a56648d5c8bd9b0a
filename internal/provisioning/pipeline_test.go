package provisioning

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soldal/hubspoke/internal/azure"
	"github.com/soldal/hubspoke/internal/config"
)

// testConfig returns a full topology: hub with firewall, one spoke, one
// NSG rule set, one route table pointing at the appliance, and a key
// vault with a private endpoint.
func testConfig() *config.Config {
	return &config.Config{
		SubscriptionID: "00000000-0000-0000-0000-000000000000",
		Location:       "westeurope",
		Naming: config.NamingConfig{
			Prefix:      "neko",
			Suffix:      "01",
			Environment: "prod",
			Region:      "weu",
		},
		Hub: config.HubConfig{
			AddressSpace: "10.0.0.0/16",
			Subnets: []config.SubnetConfig{
				{Key: "mgmt", CIDR: "10.0.0.0/24", SecurityRules: "mgmt"},
				{Key: "trusted", CIDR: "10.0.1.0/24"},
				{Key: "untrusted", CIDR: "10.0.2.0/24"},
				{Key: "endpoints", CIDR: "10.0.3.0/24"},
			},
			Firewall: config.FirewallConfig{
				Enabled:          true,
				Size:             "Standard_D3_v2",
				TrustedSubnet:    "trusted",
				UntrustedSubnet:  "untrusted",
				AdminUsername:    "fwadmin",
				AdminPasswordEnv: "HUBSPOKE_TEST_FW_PASSWORD",
			},
		},
		Spokes: []config.SpokeConfig{
			{
				Key:          "app",
				AddressSpace: "10.1.0.0/16",
				Subnets: []config.SubnetConfig{
					{Key: "workload", CIDR: "10.1.0.0/24", RouteTable: "to-fw"},
				},
			},
		},
		NSGRules: map[string][]config.RuleConfig{
			"mgmt": {
				{
					Name:              "allow-ssh",
					Priority:          100,
					Direction:         "Inbound",
					Access:            "Allow",
					Protocol:          "Tcp",
					SourcePrefix:      "10.0.0.0/16",
					SourcePorts:       "*",
					DestinationPrefix: "*",
					DestinationPorts:  "22",
				},
			},
		},
		RouteTables: map[string][]config.RouteConfig{
			"to-fw": {
				{Name: "default", AddressPrefix: "0.0.0.0/0", NextHopType: "VirtualAppliance", NextHopIP: "10.0.1.4"},
			},
		},
		KeyVault: config.KeyVaultConfig{
			Enabled:               true,
			SKU:                   "standard",
			DefaultAction:         "Deny",
			PrivateEndpoint:       true,
			PrivateEndpointSubnet: "endpoints",
		},
	}
}

func newTestContext(t *testing.T, cfg *config.Config) (*Context, *azure.MockClient) {
	t.Helper()
	client := azure.NewMockClient()
	ctx, err := NewContext(context.Background(), cfg, client, NopObserver{})
	require.NoError(t, err)
	return ctx, client
}

func TestApplyFullTopology(t *testing.T) {
	t.Setenv("HUBSPOKE_TEST_FW_PASSWORD", "test-password")
	ctx, client := newTestContext(t, testConfig())

	require.NoError(t, Apply(ctx))

	want := []string{
		"EnsureResourceGroup:neko-rg-prod-weu-01",
		"EnsureSecurityGroup:neko-nsg-prod-weu-01-mgmt",
		"EnsureRouteTable:neko-rt-prod-weu-01-to-fw",
		"EnsureVirtualNetwork:neko-vnet-prod-weu-01-hub",
		"EnsureSubnet:neko-snet-prod-weu-01-mgmt",
		"EnsureSubnet:neko-snet-prod-weu-01-trusted",
		"EnsureSubnet:neko-snet-prod-weu-01-untrusted",
		"EnsureSubnet:neko-snet-prod-weu-01-endpoints",
		"EnsurePublicIP:neko-pip-prod-weu-01-fw",
		"EnsureNetworkInterface:neko-nic-prod-weu-01-fw-trusted",
		"EnsureNetworkInterface:neko-nic-prod-weu-01-fw-untrusted",
		"EnsureVirtualMachine:neko-palofw-prod-weu-01",
		"EnsureVirtualNetwork:neko-vnet-prod-weu-01-app",
		"EnsureSubnet:neko-snet-prod-weu-01-app-workload",
		"EnsurePeering:neko-peer-prod-weu-01-hub-to-app",
		"EnsurePeering:neko-peer-prod-weu-01-app-to-hub",
		"EnsureVault:nekokvprodweu01",
		"EnsurePrivateEndpoint:neko-pe-prod-weu-01-kv",
	}
	assert.Equal(t, want, client.CallNames())

	assert.Equal(t, "neko-rg-prod-weu-01", ctx.State.ResourceGroupName)
	assert.Equal(t, "10.0.1.4", ctx.State.FirewallPrivateIP)
	assert.Equal(t, "203.0.113.10", ctx.State.FirewallPublicIP)
	assert.Equal(t, "https://nekokvprodweu01.vault.azure.net/", ctx.State.VaultURI)
	assert.Contains(t, ctx.State.HubSubnetIDs, "trusted")
	assert.Contains(t, ctx.State.SpokeSubnetIDs["app"], "workload")
}

func TestApplySkipsDisabledFeatures(t *testing.T) {
	cfg := testConfig()
	cfg.Hub.Firewall = config.FirewallConfig{}
	cfg.KeyVault = config.KeyVaultConfig{}
	ctx, client := newTestContext(t, cfg)

	require.NoError(t, Apply(ctx))

	for _, call := range client.CallNames() {
		assert.NotContains(t, call, "EnsureVirtualMachine")
		assert.NotContains(t, call, "EnsureVault")
		assert.NotContains(t, call, "EnsurePublicIP")
		assert.NotContains(t, call, "EnsurePrivateEndpoint")
	}
	assert.Empty(t, ctx.State.FirewallVMID)
	assert.Empty(t, ctx.State.VaultID)
}

func TestApplyPhaseFailurePropagates(t *testing.T) {
	t.Setenv("HUBSPOKE_TEST_FW_PASSWORD", "test-password")
	ctx, client := newTestContext(t, testConfig())
	client.FailOn = map[string]error{"EnsureVirtualNetwork": assert.AnError}

	err := Apply(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.ErrorContains(t, err, "phase hub")
}

func TestApplyFailsWithoutPasswordEnv(t *testing.T) {
	cfg := testConfig()
	cfg.Hub.Firewall.AdminPasswordEnv = "HUBSPOKE_TEST_MISSING_PASSWORD"
	ctx, client := newTestContext(t, cfg)

	err := Apply(ctx)
	require.Error(t, err)
	assert.ErrorContains(t, err, "HUBSPOKE_TEST_MISSING_PASSWORD")
	assert.Empty(t, client.CallNames())
}

func TestDestroyReverseOrder(t *testing.T) {
	ctx, client := newTestContext(t, testConfig())

	require.NoError(t, Destroy(ctx))

	want := []string{
		"DeletePrivateEndpoint:neko-pe-prod-weu-01-kv",
		"DeleteVault:nekokvprodweu01",
		"DeleteVirtualMachine:neko-palofw-prod-weu-01",
		"DeleteNetworkInterface:neko-nic-prod-weu-01-fw-untrusted",
		"DeleteNetworkInterface:neko-nic-prod-weu-01-fw-trusted",
		"DeletePublicIP:neko-pip-prod-weu-01-fw",
		"DeleteVirtualNetwork:neko-vnet-prod-weu-01-app",
		"DeleteVirtualNetwork:neko-vnet-prod-weu-01-hub",
		"DeleteSecurityGroup:neko-nsg-prod-weu-01-mgmt",
		"DeleteRouteTable:neko-rt-prod-weu-01-to-fw",
		"DeleteResourceGroup:neko-rg-prod-weu-01",
	}
	assert.Equal(t, want, client.CallNames())
}

func TestDestroyStopsOnError(t *testing.T) {
	ctx, client := newTestContext(t, testConfig())
	client.FailOn = map[string]error{"DeleteVault": assert.AnError}

	err := Destroy(ctx)
	require.Error(t, err)
	assert.ErrorContains(t, err, "deleting nekokvprodweu01")

	calls := client.CallNames()
	assert.Equal(t, "DeleteVault:nekokvprodweu01", calls[len(calls)-1])
}
