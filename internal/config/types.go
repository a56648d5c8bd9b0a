package config

import "github.com/soldal/hubspoke/internal/naming"

// Config holds the full topology configuration.
type Config struct {
	// SubscriptionID is the Azure subscription everything deploys into.
	SubscriptionID string `yaml:"subscription_id"`

	// TenantID is the Azure AD tenant. Optional; the default credential
	// chain resolves it from the environment when empty.
	TenantID string `yaml:"tenant_id"`

	// Location is the Azure region, e.g. westeurope.
	Location string `yaml:"location"`

	// Naming holds the name-derivation inputs.
	Naming NamingConfig `yaml:"naming"`

	// Hub describes the hub virtual network.
	Hub HubConfig `yaml:"hub"`

	// Spokes describes the spoke virtual networks peered to the hub.
	Spokes []SpokeConfig `yaml:"spokes"`

	// NSGRules holds named security rule sets referenced by subnets.
	NSGRules map[string][]RuleConfig `yaml:"nsg_rules"`

	// RouteTables holds named route tables referenced by subnets.
	RouteTables map[string][]RouteConfig `yaml:"route_tables"`

	// KeyVault configures the optional Key Vault.
	KeyVault KeyVaultConfig `yaml:"key_vault"`

	// Tags are free-form user tags merged onto every resource.
	Tags map[string]string `yaml:"tags"`
}

// NamingConfig holds the Naming Engine inputs.
type NamingConfig struct {
	Prefix      string `yaml:"prefix"`
	Suffix      string `yaml:"suffix"`
	Environment string `yaml:"environment"`
	Region      string `yaml:"region"`

	// CustomResourceTypes overrides or extends the built-in
	// resource-type short-name table.
	CustomResourceTypes map[string]string `yaml:"custom_resource_types"`

	// NameSuffixes bulk-produces name variants per resource type.
	NameSuffixes []string `yaml:"name_suffixes"`
}

// Components returns the naming components in the engine's shape.
func (n NamingConfig) Components() naming.Components {
	return naming.Components{
		Prefix:      n.Prefix,
		Suffix:      n.Suffix,
		Environment: n.Environment,
		Region:      n.Region,
	}
}

// HubConfig describes the hub virtual network.
type HubConfig struct {
	// AddressSpace is the hub VNet CIDR.
	AddressSpace string `yaml:"address_space"`

	// Subnets are the hub subnets, keyed by their Key field.
	Subnets []SubnetConfig `yaml:"subnets"`

	// Firewall configures the optional firewall VM appliance.
	Firewall FirewallConfig `yaml:"firewall"`
}

// SubnetConfig describes one subnet inside a virtual network.
type SubnetConfig struct {
	// Key identifies the subnet within the config and becomes the name
	// variant suffix.
	Key string `yaml:"key"`

	// CIDR is the subnet address prefix.
	CIDR string `yaml:"cidr"`

	// SecurityRules references a named rule set in Config.NSGRules.
	// Empty means no NSG is attached.
	SecurityRules string `yaml:"security_rules"`

	// RouteTable references a named table in Config.RouteTables.
	// Empty means no route table is attached.
	RouteTable string `yaml:"route_table"`
}

// FirewallConfig describes the third-party firewall VM appliance placed
// in the hub.
type FirewallConfig struct {
	Enabled bool `yaml:"enabled"`

	// Size is the Azure VM size, e.g. Standard_D3_v2.
	Size string `yaml:"size"`

	// Image selects the marketplace image for the appliance.
	Image ImageReference `yaml:"image"`

	// TrustedSubnet and UntrustedSubnet reference hub subnet keys the
	// appliance NICs attach to.
	TrustedSubnet   string `yaml:"trusted_subnet"`
	UntrustedSubnet string `yaml:"untrusted_subnet"`

	// AdminUsername for the appliance OS account.
	AdminUsername string `yaml:"admin_username"`

	// AdminPasswordEnv names the environment variable holding the
	// appliance admin password. The password itself never lives in the
	// config file.
	AdminPasswordEnv string `yaml:"admin_password_env"`
}

// ImageReference selects a marketplace VM image.
type ImageReference struct {
	Publisher string `yaml:"publisher"`
	Offer     string `yaml:"offer"`
	SKU       string `yaml:"sku"`
	Version   string `yaml:"version"`
}

// SpokeConfig describes one spoke virtual network.
type SpokeConfig struct {
	// Key identifies the spoke and becomes the name variant suffix.
	Key string `yaml:"key"`

	// AddressSpace is the spoke VNet CIDR.
	AddressSpace string `yaml:"address_space"`

	// Subnets are the spoke subnets.
	Subnets []SubnetConfig `yaml:"subnets"`

	// Peering tunes the hub<->spoke peering pair.
	Peering PeeringConfig `yaml:"peering"`
}

// PeeringConfig tunes one hub<->spoke peering pair. Nil pointers take
// the defaults applied at load time.
type PeeringConfig struct {
	// AllowForwardedTraffic permits traffic forwarded by the hub
	// appliance into the spoke. Default: true.
	AllowForwardedTraffic *bool `yaml:"allow_forwarded_traffic"`

	// UseRemoteGateways lets the spoke use the hub's gateways.
	// Default: false.
	UseRemoteGateways *bool `yaml:"use_remote_gateways"`
}

// RuleConfig describes one NSG security rule.
type RuleConfig struct {
	Name     string `yaml:"name"`
	Priority int32  `yaml:"priority"`

	// Direction is Inbound or Outbound.
	Direction string `yaml:"direction"`

	// Access is Allow or Deny.
	Access string `yaml:"access"`

	// Protocol is Tcp, Udp, Icmp, or * for any.
	Protocol string `yaml:"protocol"`

	SourcePrefix      string `yaml:"source_prefix"`
	SourcePorts       string `yaml:"source_ports"`
	DestinationPrefix string `yaml:"destination_prefix"`
	DestinationPorts  string `yaml:"destination_ports"`
}

// RouteConfig describes one route in a route table.
type RouteConfig struct {
	Name          string `yaml:"name"`
	AddressPrefix string `yaml:"address_prefix"`

	// NextHopType is one of VirtualAppliance, VnetLocal, Internet,
	// VirtualNetworkGateway, None.
	NextHopType string `yaml:"next_hop_type"`

	// NextHopIP is required iff NextHopType is VirtualAppliance.
	NextHopIP string `yaml:"next_hop_ip"`
}

// KeyVaultConfig configures the optional Key Vault.
type KeyVaultConfig struct {
	Enabled bool `yaml:"enabled"`

	// SKU is standard or premium.
	SKU string `yaml:"sku"`

	// PurgeProtection enables purge protection on the vault.
	PurgeProtection bool `yaml:"purge_protection"`

	// DefaultAction is the network ACL default: Allow or Deny.
	DefaultAction string `yaml:"default_action"`

	// PrivateEndpoint attaches a private endpoint in the hub.
	// PrivateEndpointSubnet names the hub subnet key it lands in.
	PrivateEndpoint       bool   `yaml:"private_endpoint"`
	PrivateEndpointSubnet string `yaml:"private_endpoint_subnet"`
}
