package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
subscription_id: 00000000-0000-0000-0000-000000000000
location: westeurope
naming:
  prefix: neko
  suffix: "01"
  environment: prod
  region: weu
  custom_resource_types:
    fortinet_firewall: fgfw
  name_suffixes: [hub, spoke-app]
hub:
  address_space: 10.0.0.0/16
  subnets:
    - key: mgmt
      cidr: 10.0.0.0/24
      security_rules: mgmt
    - key: trusted
      cidr: 10.0.1.0/24
      route_table: via-firewall
    - key: untrusted
      cidr: 10.0.2.0/24
  firewall:
    enabled: true
    trusted_subnet: trusted
    untrusted_subnet: untrusted
    admin_password_env: HUBSPOKE_FW_PASSWORD
spokes:
  - key: app
    address_space: 10.1.0.0/16
    subnets:
      - key: workload
        cidr: 10.1.0.0/24
nsg_rules:
  mgmt:
    - name: allow-https-inbound
      priority: 100
      direction: Inbound
      access: Allow
      protocol: Tcp
      source_prefix: "*"
      source_ports: "*"
      destination_prefix: "*"
      destination_ports: "443"
route_tables:
  via-firewall:
    - name: default-route
      address_prefix: 0.0.0.0/0
      next_hop_type: VirtualAppliance
      next_hop_ip: 10.0.1.4
key_vault:
  enabled: true
tags:
  team: network
`

func TestLoadValidConfig(t *testing.T) {
	cfg, err := Load([]byte(validYAML))
	require.NoError(t, err)

	assert.Equal(t, "westeurope", cfg.Location)
	assert.Equal(t, "neko", cfg.Naming.Prefix)
	assert.Equal(t, "weu", cfg.Naming.Region)
	assert.Len(t, cfg.Hub.Subnets, 3)
	assert.Len(t, cfg.Spokes, 1)
	assert.Equal(t, "network", cfg.Tags["team"])
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load([]byte(validYAML))
	require.NoError(t, err)

	// Firewall defaults.
	assert.Equal(t, defaultFirewallSize, cfg.Hub.Firewall.Size)
	assert.Equal(t, defaultFirewallAdminUser, cfg.Hub.Firewall.AdminUsername)
	assert.Equal(t, "paloaltonetworks", cfg.Hub.Firewall.Image.Publisher)

	// Key vault defaults.
	assert.Equal(t, defaultVaultSKU, cfg.KeyVault.SKU)
	assert.Equal(t, defaultVaultAction, cfg.KeyVault.DefaultAction)

	// Peering defaults.
	require.NotNil(t, cfg.Spokes[0].Peering.AllowForwardedTraffic)
	assert.True(t, *cfg.Spokes[0].Peering.AllowForwardedTraffic)
	require.NotNil(t, cfg.Spokes[0].Peering.UseRemoteGateways)
	assert.False(t, *cfg.Spokes[0].Peering.UseRemoteGateways)
}

func TestLoadRegionDefaultsToLocation(t *testing.T) {
	cfg, err := Load([]byte(`
subscription_id: sub
location: northeurope
hub:
  address_space: 10.0.0.0/16
`))
	require.NoError(t, err)
	assert.Equal(t, "northeurope", cfg.Naming.Region)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load([]byte(`
subscription_id: sub
location: westeurope
hub:
  address_space: 10.0.0.0/16
  adress_spaces: typo
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hubspoke.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validYAML), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "neko", cfg.Naming.Prefix)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg, err := Load([]byte(validYAML))
	require.NoError(t, err)

	out, err := cfg.Marshal()
	require.NoError(t, err)

	again, err := Load(out)
	require.NoError(t, err)
	assert.Equal(t, cfg.Hub.AddressSpace, again.Hub.AddressSpace)
	assert.Equal(t, cfg.NSGRules, again.NSGRules)
}
