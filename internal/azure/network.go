package azure

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork"
)

// EnsureVirtualNetwork creates or updates a VNet with a single address
// space and returns its ID.
func (c *RealClient) EnsureVirtualNetwork(ctx context.Context, rg, name, location, addressSpace string, tags map[string]string) (string, error) {
	var id string
	err := putResource(ctx, name, func(ctx context.Context) error {
		poller, err := c.vnets.BeginCreateOrUpdate(ctx, rg, name, armnetwork.VirtualNetwork{
			Location: to.Ptr(location),
			Tags:     armTags(tags),
			Properties: &armnetwork.VirtualNetworkPropertiesFormat{
				AddressSpace: &armnetwork.AddressSpace{
					AddressPrefixes: []*string{to.Ptr(addressSpace)},
				},
			},
		}, nil)
		if err != nil {
			return err
		}
		resp, err := poller.PollUntilDone(ctx, nil)
		if err != nil {
			return err
		}
		id = deref(resp.ID)
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// DeleteVirtualNetwork removes a VNet. Subnets and peerings go with it.
func (c *RealClient) DeleteVirtualNetwork(ctx context.Context, rg, name string) error {
	return deleteResource(ctx, name, func(ctx context.Context) error {
		poller, err := c.vnets.BeginDelete(ctx, rg, name, nil)
		if err != nil {
			return err
		}
		_, err = poller.PollUntilDone(ctx, nil)
		return err
	})
}

// EnsureSubnet creates or updates a subnet, attaching the NSG and route
// table when their IDs are non-empty, and returns the subnet ID.
func (c *RealClient) EnsureSubnet(ctx context.Context, rg, vnet, name, cidr, nsgID, routeTableID string) (string, error) {
	props := &armnetwork.SubnetPropertiesFormat{
		AddressPrefix: to.Ptr(cidr),
	}
	if nsgID != "" {
		props.NetworkSecurityGroup = &armnetwork.SecurityGroup{ID: to.Ptr(nsgID)}
	}
	if routeTableID != "" {
		props.RouteTable = &armnetwork.RouteTable{ID: to.Ptr(routeTableID)}
	}

	var id string
	err := putResource(ctx, name, func(ctx context.Context) error {
		poller, err := c.subnets.BeginCreateOrUpdate(ctx, rg, vnet, name, armnetwork.Subnet{
			Properties: props,
		}, nil)
		if err != nil {
			return err
		}
		resp, err := poller.PollUntilDone(ctx, nil)
		if err != nil {
			return err
		}
		id = deref(resp.ID)
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// EnsurePeering creates or updates one direction of a VNet peering.
// Virtual network access is always allowed; that is the point of the
// topology.
func (c *RealClient) EnsurePeering(ctx context.Context, rg, vnet, name, remoteVNetID string, opts PeeringOptions) error {
	return putResource(ctx, name, func(ctx context.Context) error {
		poller, err := c.peerings.BeginCreateOrUpdate(ctx, rg, vnet, name, armnetwork.VirtualNetworkPeering{
			Properties: &armnetwork.VirtualNetworkPeeringPropertiesFormat{
				RemoteVirtualNetwork:      &armnetwork.SubResource{ID: to.Ptr(remoteVNetID)},
				AllowVirtualNetworkAccess: to.Ptr(true),
				AllowForwardedTraffic:     to.Ptr(opts.AllowForwardedTraffic),
				AllowGatewayTransit:       to.Ptr(opts.AllowGatewayTransit),
				UseRemoteGateways:         to.Ptr(opts.UseRemoteGateways),
			},
		}, nil)
		if err != nil {
			return err
		}
		_, err = poller.PollUntilDone(ctx, nil)
		return err
	})
}

// EnsurePublicIP creates or updates a standard static public IP and
// returns its ID and allocated address.
func (c *RealClient) EnsurePublicIP(ctx context.Context, rg, name, location string, tags map[string]string) (string, string, error) {
	var id, address string
	err := putResource(ctx, name, func(ctx context.Context) error {
		poller, err := c.publicIPs.BeginCreateOrUpdate(ctx, rg, name, armnetwork.PublicIPAddress{
			Location: to.Ptr(location),
			Tags:     armTags(tags),
			SKU: &armnetwork.PublicIPAddressSKU{
				Name: to.Ptr(armnetwork.PublicIPAddressSKUNameStandard),
			},
			Properties: &armnetwork.PublicIPAddressPropertiesFormat{
				PublicIPAllocationMethod: to.Ptr(armnetwork.IPAllocationMethodStatic),
			},
		}, nil)
		if err != nil {
			return err
		}
		resp, err := poller.PollUntilDone(ctx, nil)
		if err != nil {
			return err
		}
		id = deref(resp.ID)
		if resp.Properties != nil {
			address = deref(resp.Properties.IPAddress)
		}
		return nil
	})
	if err != nil {
		return "", "", err
	}
	return id, address, nil
}

// DeletePublicIP removes a public IP address.
func (c *RealClient) DeletePublicIP(ctx context.Context, rg, name string) error {
	return deleteResource(ctx, name, func(ctx context.Context) error {
		poller, err := c.publicIPs.BeginDelete(ctx, rg, name, nil)
		if err != nil {
			return err
		}
		_, err = poller.PollUntilDone(ctx, nil)
		return err
	})
}

// EnsureNetworkInterface creates or updates a NIC. When privateIP is
// non-empty the address is allocated statically, which the firewall
// appliance needs so route tables can point at a stable next hop.
func (c *RealClient) EnsureNetworkInterface(ctx context.Context, rg, name, location, subnetID, privateIP, publicIPID string, ipForwarding bool, tags map[string]string) (string, error) {
	ipConfig := &armnetwork.InterfaceIPConfigurationPropertiesFormat{
		Subnet:  &armnetwork.Subnet{ID: to.Ptr(subnetID)},
		Primary: to.Ptr(true),
	}
	if privateIP != "" {
		ipConfig.PrivateIPAllocationMethod = to.Ptr(armnetwork.IPAllocationMethodStatic)
		ipConfig.PrivateIPAddress = to.Ptr(privateIP)
	} else {
		ipConfig.PrivateIPAllocationMethod = to.Ptr(armnetwork.IPAllocationMethodDynamic)
	}
	if publicIPID != "" {
		ipConfig.PublicIPAddress = &armnetwork.PublicIPAddress{ID: to.Ptr(publicIPID)}
	}

	var id string
	err := putResource(ctx, name, func(ctx context.Context) error {
		poller, err := c.interfaces.BeginCreateOrUpdate(ctx, rg, name, armnetwork.Interface{
			Location: to.Ptr(location),
			Tags:     armTags(tags),
			Properties: &armnetwork.InterfacePropertiesFormat{
				EnableIPForwarding: to.Ptr(ipForwarding),
				IPConfigurations: []*armnetwork.InterfaceIPConfiguration{{
					Name:       to.Ptr("primary"),
					Properties: ipConfig,
				}},
			},
		}, nil)
		if err != nil {
			return err
		}
		resp, err := poller.PollUntilDone(ctx, nil)
		if err != nil {
			return err
		}
		id = deref(resp.ID)
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// DeleteNetworkInterface removes a NIC.
func (c *RealClient) DeleteNetworkInterface(ctx context.Context, rg, name string) error {
	return deleteResource(ctx, name, func(ctx context.Context) error {
		poller, err := c.interfaces.BeginDelete(ctx, rg, name, nil)
		if err != nil {
			return err
		}
		_, err = poller.PollUntilDone(ctx, nil)
		return err
	})
}
