package config

import (
	"fmt"
	"net"
	"sort"

	"github.com/soldal/hubspoke/internal/util/netutil"
)

// Validate checks the configuration for common errors and returns a
// detailed error on the first violation.
func (c *Config) Validate() error {
	if c.SubscriptionID == "" {
		return fmt.Errorf("subscription_id is required")
	}
	if c.Location == "" {
		return fmt.Errorf("location is required")
	}
	if !ValidLocations[c.Location] {
		return fmt.Errorf("invalid location %q: must be one of %v", c.Location, sortedKeys(ValidLocations))
	}

	if err := c.Naming.Components().Validate(); err != nil {
		return fmt.Errorf("naming validation failed: %w", err)
	}

	if err := c.validateNetworks(); err != nil {
		return fmt.Errorf("network validation failed: %w", err)
	}
	if err := c.validateRules(); err != nil {
		return fmt.Errorf("nsg rule validation failed: %w", err)
	}
	if err := c.validateRoutes(); err != nil {
		return fmt.Errorf("route table validation failed: %w", err)
	}
	if err := c.validateFirewall(); err != nil {
		return fmt.Errorf("firewall validation failed: %w", err)
	}
	if err := c.validateKeyVault(); err != nil {
		return fmt.Errorf("key vault validation failed: %w", err)
	}
	return nil
}

func (c *Config) validateNetworks() error {
	if c.Hub.AddressSpace == "" {
		return fmt.Errorf("hub.address_space is required")
	}
	if _, _, err := net.ParseCIDR(c.Hub.AddressSpace); err != nil {
		return fmt.Errorf("invalid hub.address_space: %w", err)
	}
	if err := c.validateSubnets("hub", c.Hub.AddressSpace, c.Hub.Subnets); err != nil {
		return err
	}

	spaces := []string{c.Hub.AddressSpace}
	seen := map[string]bool{}
	for _, spoke := range c.Spokes {
		if spoke.Key == "" {
			return fmt.Errorf("every spoke needs a key")
		}
		if seen[spoke.Key] {
			return fmt.Errorf("duplicate spoke key %q", spoke.Key)
		}
		seen[spoke.Key] = true

		if spoke.AddressSpace == "" {
			return fmt.Errorf("spoke %q: address_space is required", spoke.Key)
		}
		if _, _, err := net.ParseCIDR(spoke.AddressSpace); err != nil {
			return fmt.Errorf("spoke %q: invalid address_space: %w", spoke.Key, err)
		}
		for _, other := range spaces {
			overlap, err := netutil.Overlaps(other, spoke.AddressSpace)
			if err != nil {
				return err
			}
			if overlap {
				return fmt.Errorf("spoke %q address space %s overlaps %s", spoke.Key, spoke.AddressSpace, other)
			}
		}
		spaces = append(spaces, spoke.AddressSpace)

		if err := c.validateSubnets("spoke "+spoke.Key, spoke.AddressSpace, spoke.Subnets); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateSubnets(scope, addressSpace string, subnets []SubnetConfig) error {
	seen := map[string]bool{}
	for _, subnet := range subnets {
		if subnet.Key == "" {
			return fmt.Errorf("%s: every subnet needs a key", scope)
		}
		if seen[subnet.Key] {
			return fmt.Errorf("%s: duplicate subnet key %q", scope, subnet.Key)
		}
		seen[subnet.Key] = true

		if subnet.CIDR == "" {
			return fmt.Errorf("%s: subnet %q: cidr is required", scope, subnet.Key)
		}
		inside, err := netutil.Contains(addressSpace, subnet.CIDR)
		if err != nil {
			return fmt.Errorf("%s: subnet %q: %w", scope, subnet.Key, err)
		}
		if !inside {
			return fmt.Errorf("%s: subnet %q cidr %s is outside address space %s",
				scope, subnet.Key, subnet.CIDR, addressSpace)
		}

		if subnet.SecurityRules != "" {
			if _, ok := c.NSGRules[subnet.SecurityRules]; !ok {
				return fmt.Errorf("%s: subnet %q references unknown nsg rule set %q",
					scope, subnet.Key, subnet.SecurityRules)
			}
		}
		if subnet.RouteTable != "" {
			if _, ok := c.RouteTables[subnet.RouteTable]; !ok {
				return fmt.Errorf("%s: subnet %q references unknown route table %q",
					scope, subnet.Key, subnet.RouteTable)
			}
		}
	}
	return nil
}

func (c *Config) validateRules() error {
	for set, rules := range c.NSGRules {
		priorities := map[int32]string{}
		for _, rule := range rules {
			if rule.Name == "" {
				return fmt.Errorf("rule set %q: every rule needs a name", set)
			}
			if rule.Priority < minRulePriority || rule.Priority > maxRulePriority {
				return fmt.Errorf("rule set %q: rule %q priority %d outside [%d, %d]",
					set, rule.Name, rule.Priority, minRulePriority, maxRulePriority)
			}
			if prev, dup := priorities[rule.Priority]; dup {
				return fmt.Errorf("rule set %q: rules %q and %q share priority %d",
					set, prev, rule.Name, rule.Priority)
			}
			priorities[rule.Priority] = rule.Name

			if !validDirections[rule.Direction] {
				return fmt.Errorf("rule set %q: rule %q has invalid direction %q", set, rule.Name, rule.Direction)
			}
			if !validAccess[rule.Access] {
				return fmt.Errorf("rule set %q: rule %q has invalid access %q", set, rule.Name, rule.Access)
			}
			if !validProtocols[rule.Protocol] {
				return fmt.Errorf("rule set %q: rule %q has invalid protocol %q", set, rule.Name, rule.Protocol)
			}
		}
	}
	return nil
}

func (c *Config) validateRoutes() error {
	for table, routes := range c.RouteTables {
		for _, route := range routes {
			if route.Name == "" {
				return fmt.Errorf("route table %q: every route needs a name", table)
			}
			if _, _, err := net.ParseCIDR(route.AddressPrefix); err != nil {
				return fmt.Errorf("route table %q: route %q has invalid address prefix: %w",
					table, route.Name, err)
			}
			if !validNextHopTypes[route.NextHopType] {
				return fmt.Errorf("route table %q: route %q has invalid next hop type %q",
					table, route.Name, route.NextHopType)
			}
			if route.NextHopType == "VirtualAppliance" && route.NextHopIP == "" {
				return fmt.Errorf("route table %q: route %q needs next_hop_ip for VirtualAppliance",
					table, route.Name)
			}
			if route.NextHopType != "VirtualAppliance" && route.NextHopIP != "" {
				return fmt.Errorf("route table %q: route %q sets next_hop_ip but next hop type is %q",
					table, route.Name, route.NextHopType)
			}
		}
	}
	return nil
}

func (c *Config) validateFirewall() error {
	fw := c.Hub.Firewall
	if !fw.Enabled {
		return nil
	}
	if fw.TrustedSubnet == "" || fw.UntrustedSubnet == "" {
		return fmt.Errorf("trusted_subnet and untrusted_subnet are required when the firewall is enabled")
	}
	if fw.TrustedSubnet == fw.UntrustedSubnet {
		return fmt.Errorf("trusted_subnet and untrusted_subnet must differ")
	}
	for _, key := range []string{fw.TrustedSubnet, fw.UntrustedSubnet} {
		if c.hubSubnet(key) == nil {
			return fmt.Errorf("firewall references unknown hub subnet %q", key)
		}
	}
	if fw.AdminPasswordEnv == "" {
		return fmt.Errorf("admin_password_env is required when the firewall is enabled")
	}
	return nil
}

func (c *Config) validateKeyVault() error {
	kv := c.KeyVault
	if !kv.Enabled {
		return nil
	}
	if !validVaultSKUs[kv.SKU] {
		return fmt.Errorf("invalid key vault sku %q: must be one of %v", kv.SKU, sortedKeys(validVaultSKUs))
	}
	if kv.DefaultAction != "Allow" && kv.DefaultAction != "Deny" {
		return fmt.Errorf("invalid key vault default_action %q: must be Allow or Deny", kv.DefaultAction)
	}
	if kv.PrivateEndpoint {
		if kv.PrivateEndpointSubnet == "" {
			return fmt.Errorf("private_endpoint_subnet is required when private_endpoint is enabled")
		}
		if c.hubSubnet(kv.PrivateEndpointSubnet) == nil {
			return fmt.Errorf("key vault private endpoint references unknown hub subnet %q", kv.PrivateEndpointSubnet)
		}
	}
	return nil
}

// hubSubnet returns the hub subnet with the given key, or nil.
func (c *Config) hubSubnet(key string) *SubnetConfig {
	for i := range c.Hub.Subnets {
		if c.Hub.Subnets[i].Key == key {
			return &c.Hub.Subnets[i]
		}
	}
	return nil
}

// sortedKeys returns map keys sorted for stable error messages.
func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
