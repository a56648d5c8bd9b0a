package azure

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	armcompute "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/keyvault/armkeyvault"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
)

// RealClient implements Client against the Azure Resource Manager API.
type RealClient struct {
	groups           *armresources.ResourceGroupsClient
	vnets            *armnetwork.VirtualNetworksClient
	subnets          *armnetwork.SubnetsClient
	securityGroups   *armnetwork.SecurityGroupsClient
	routeTables      *armnetwork.RouteTablesClient
	peerings         *armnetwork.VirtualNetworkPeeringsClient
	publicIPs        *armnetwork.PublicIPAddressesClient
	interfaces       *armnetwork.InterfacesClient
	privateEndpoints *armnetwork.PrivateEndpointsClient
	vaults           *armkeyvault.VaultsClient
	machines         *armcompute.VirtualMachinesClient
}

var _ Client = (*RealClient)(nil)

// NewRealClient builds a RealClient using the default credential chain
// (environment, workload identity, managed identity, CLI).
func NewRealClient(subscriptionID string) (*RealClient, error) {
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build Azure credential: %w", err)
	}
	return NewRealClientWithCredential(subscriptionID, cred, nil)
}

// NewRealClientWithCredential builds a RealClient with an explicit
// credential, used by tests and callers with their own auth setup.
func NewRealClientWithCredential(subscriptionID string, cred azcore.TokenCredential, opts *arm.ClientOptions) (*RealClient, error) {
	c := &RealClient{}
	var err error

	if c.groups, err = armresources.NewResourceGroupsClient(subscriptionID, cred, opts); err != nil {
		return nil, fmt.Errorf("failed to create resource groups client: %w", err)
	}
	if c.vnets, err = armnetwork.NewVirtualNetworksClient(subscriptionID, cred, opts); err != nil {
		return nil, fmt.Errorf("failed to create virtual networks client: %w", err)
	}
	if c.subnets, err = armnetwork.NewSubnetsClient(subscriptionID, cred, opts); err != nil {
		return nil, fmt.Errorf("failed to create subnets client: %w", err)
	}
	if c.securityGroups, err = armnetwork.NewSecurityGroupsClient(subscriptionID, cred, opts); err != nil {
		return nil, fmt.Errorf("failed to create security groups client: %w", err)
	}
	if c.routeTables, err = armnetwork.NewRouteTablesClient(subscriptionID, cred, opts); err != nil {
		return nil, fmt.Errorf("failed to create route tables client: %w", err)
	}
	if c.peerings, err = armnetwork.NewVirtualNetworkPeeringsClient(subscriptionID, cred, opts); err != nil {
		return nil, fmt.Errorf("failed to create peerings client: %w", err)
	}
	if c.publicIPs, err = armnetwork.NewPublicIPAddressesClient(subscriptionID, cred, opts); err != nil {
		return nil, fmt.Errorf("failed to create public IP client: %w", err)
	}
	if c.interfaces, err = armnetwork.NewInterfacesClient(subscriptionID, cred, opts); err != nil {
		return nil, fmt.Errorf("failed to create interfaces client: %w", err)
	}
	if c.privateEndpoints, err = armnetwork.NewPrivateEndpointsClient(subscriptionID, cred, opts); err != nil {
		return nil, fmt.Errorf("failed to create private endpoints client: %w", err)
	}
	if c.vaults, err = armkeyvault.NewVaultsClient(subscriptionID, cred, opts); err != nil {
		return nil, fmt.Errorf("failed to create vaults client: %w", err)
	}
	if c.machines, err = armcompute.NewVirtualMachinesClient(subscriptionID, cred, opts); err != nil {
		return nil, fmt.Errorf("failed to create virtual machines client: %w", err)
	}
	return c, nil
}

// armTags converts a plain tag map to the pointer-valued ARM shape.
func armTags(tags map[string]string) map[string]*string {
	out := make(map[string]*string, len(tags))
	for k, v := range tags {
		v := v
		out[k] = &v
	}
	return out
}
