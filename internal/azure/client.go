// Package azure wraps the Azure Resource Manager SDK behind small,
// concern-scoped interfaces so provisioning code can be tested against a
// mock. Every Ensure operation is idempotent: resources are created or
// converged to the declared state via ARM's PUT semantics.
package azure

import "context"

// PeeringOptions tunes one direction of a VNet peering.
type PeeringOptions struct {
	AllowForwardedTraffic bool
	AllowGatewayTransit   bool
	UseRemoteGateways     bool
}

// SecurityRule is one NSG rule in provider-neutral form.
type SecurityRule struct {
	Name              string
	Priority          int32
	Direction         string // Inbound or Outbound
	Access            string // Allow or Deny
	Protocol          string // Tcp, Udp, Icmp, *
	SourcePrefix      string
	SourcePorts       string
	DestinationPrefix string
	DestinationPorts  string
}

// Route is one route-table entry in provider-neutral form.
type Route struct {
	Name          string
	AddressPrefix string
	NextHopType   string
	NextHopIP     string
}

// VaultOptions configures a Key Vault.
type VaultOptions struct {
	TenantID        string
	SKU             string // standard or premium
	PurgeProtection bool
	DefaultAction   string // Allow or Deny
}

// VMImage selects a marketplace image.
type VMImage struct {
	Publisher string
	Offer     string
	SKU       string
	Version   string
}

// VMSpec describes the firewall appliance VM.
type VMSpec struct {
	Size          string
	Image         VMImage
	AdminUsername string
	AdminPassword string
	NICIDs        []string // primary first
}

// NetworkManager provisions resource groups, virtual networks, subnets,
// peerings, public IPs, and network interfaces.
type NetworkManager interface {
	EnsureResourceGroup(ctx context.Context, name, location string, tags map[string]string) (string, error)
	DeleteResourceGroup(ctx context.Context, name string) error

	EnsureVirtualNetwork(ctx context.Context, rg, name, location, addressSpace string, tags map[string]string) (string, error)
	DeleteVirtualNetwork(ctx context.Context, rg, name string) error

	// EnsureSubnet attaches the NSG and route table when their IDs are
	// non-empty.
	EnsureSubnet(ctx context.Context, rg, vnet, name, cidr, nsgID, routeTableID string) (string, error)

	// EnsurePeering creates one direction of a peering pair; callers
	// invoke it twice with the roles swapped.
	EnsurePeering(ctx context.Context, rg, vnet, name, remoteVNetID string, opts PeeringOptions) error

	EnsurePublicIP(ctx context.Context, rg, name, location string, tags map[string]string) (id, address string, err error)
	DeletePublicIP(ctx context.Context, rg, name string) error

	// EnsureNetworkInterface pins privateIP statically when non-empty
	// and associates publicIPID when non-empty.
	EnsureNetworkInterface(ctx context.Context, rg, name, location, subnetID, privateIP, publicIPID string, ipForwarding bool, tags map[string]string) (string, error)
	DeleteNetworkInterface(ctx context.Context, rg, name string) error
}

// SecurityManager provisions network security groups and route tables.
type SecurityManager interface {
	EnsureSecurityGroup(ctx context.Context, rg, name, location string, rules []SecurityRule, tags map[string]string) (string, error)
	DeleteSecurityGroup(ctx context.Context, rg, name string) error

	EnsureRouteTable(ctx context.Context, rg, name, location string, routes []Route, tags map[string]string) (string, error)
	DeleteRouteTable(ctx context.Context, rg, name string) error
}

// VaultManager provisions Key Vaults and private endpoints.
type VaultManager interface {
	EnsureVault(ctx context.Context, rg, name, location string, opts VaultOptions, tags map[string]string) (id, uri string, err error)
	DeleteVault(ctx context.Context, rg, name string) error

	EnsurePrivateEndpoint(ctx context.Context, rg, name, location, subnetID, targetID string, groupIDs []string, tags map[string]string) (string, error)
	DeletePrivateEndpoint(ctx context.Context, rg, name string) error
}

// ComputeManager provisions the firewall appliance VM.
type ComputeManager interface {
	EnsureVirtualMachine(ctx context.Context, rg, name, location string, spec VMSpec, tags map[string]string) (string, error)
	DeleteVirtualMachine(ctx context.Context, rg, name string) error
}

// Client aggregates every concern the provisioning pipeline needs.
type Client interface {
	NetworkManager
	SecurityManager
	VaultManager
	ComputeManager
}
