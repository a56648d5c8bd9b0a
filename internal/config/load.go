package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads, parses, defaults, and validates a topology file.
func LoadFile(path string) (*Config, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Load(data)
}

// Load parses a topology from raw YAML. Unknown fields are rejected so
// typos surface immediately instead of silently dropping config.
func Load(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// applyDefaults fills optional fields after unmarshal.
func (c *Config) applyDefaults() {
	if c.Hub.Firewall.Enabled {
		if c.Hub.Firewall.Size == "" {
			c.Hub.Firewall.Size = defaultFirewallSize
		}
		if c.Hub.Firewall.AdminUsername == "" {
			c.Hub.Firewall.AdminUsername = defaultFirewallAdminUser
		}
		if c.Hub.Firewall.Image == (ImageReference{}) {
			c.Hub.Firewall.Image = ImageReference{
				Publisher: "paloaltonetworks",
				Offer:     "vmseries-flex",
				SKU:       "byol",
				Version:   "latest",
			}
		}
	}

	if c.KeyVault.Enabled {
		if c.KeyVault.SKU == "" {
			c.KeyVault.SKU = defaultVaultSKU
		}
		if c.KeyVault.DefaultAction == "" {
			c.KeyVault.DefaultAction = defaultVaultAction
		}
	}

	for i := range c.Spokes {
		if c.Spokes[i].Peering.AllowForwardedTraffic == nil {
			allow := true
			c.Spokes[i].Peering.AllowForwardedTraffic = &allow
		}
		if c.Spokes[i].Peering.UseRemoteGateways == nil {
			use := false
			c.Spokes[i].Peering.UseRemoteGateways = &use
		}
	}

	// The naming region component defaults to the deployment location
	// so names stay region-qualified without duplicating config.
	if c.Naming.Region == "" {
		c.Naming.Region = c.Location
	}
}

// Marshal serializes the config back to YAML, used by the init wizard
// to write the generated file.
func (c *Config) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return out, nil
}
