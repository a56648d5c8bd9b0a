package azure

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	armcompute "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v2"
)

// EnsureVirtualMachine creates or updates the firewall appliance VM and
// returns its ID. The first NIC in spec.NICIDs becomes the primary
// interface.
func (c *RealClient) EnsureVirtualMachine(ctx context.Context, rg, name, location string, spec VMSpec, tags map[string]string) (string, error) {
	nics := make([]*armcompute.NetworkInterfaceReference, 0, len(spec.NICIDs))
	for i, nicID := range spec.NICIDs {
		nics = append(nics, &armcompute.NetworkInterfaceReference{
			ID: to.Ptr(nicID),
			Properties: &armcompute.NetworkInterfaceReferenceProperties{
				Primary: to.Ptr(i == 0),
			},
		})
	}

	var id string
	err := putResource(ctx, name, func(ctx context.Context) error {
		poller, err := c.machines.BeginCreateOrUpdate(ctx, rg, name, armcompute.VirtualMachine{
			Location: to.Ptr(location),
			Tags:     armTags(tags),
			Properties: &armcompute.VirtualMachineProperties{
				HardwareProfile: &armcompute.HardwareProfile{
					VMSize: to.Ptr(armcompute.VirtualMachineSizeTypes(spec.Size)),
				},
				StorageProfile: &armcompute.StorageProfile{
					ImageReference: &armcompute.ImageReference{
						Publisher: to.Ptr(spec.Image.Publisher),
						Offer:     to.Ptr(spec.Image.Offer),
						SKU:       to.Ptr(spec.Image.SKU),
						Version:   to.Ptr(spec.Image.Version),
					},
					OSDisk: &armcompute.OSDisk{
						CreateOption: to.Ptr(armcompute.DiskCreateOptionTypesFromImage),
						ManagedDisk: &armcompute.ManagedDiskParameters{
							StorageAccountType: to.Ptr(armcompute.StorageAccountTypesStandardSSDLRS),
						},
					},
				},
				OSProfile: &armcompute.OSProfile{
					ComputerName:  to.Ptr(name),
					AdminUsername: to.Ptr(spec.AdminUsername),
					AdminPassword: to.Ptr(spec.AdminPassword),
				},
				NetworkProfile: &armcompute.NetworkProfile{
					NetworkInterfaces: nics,
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

// DeleteVirtualMachine removes the appliance VM and its OS disk.
func (c *RealClient) DeleteVirtualMachine(ctx context.Context, rg, name string) error {
	return deleteResource(ctx, name, func(ctx context.Context) error {
		poller, err := c.machines.BeginDelete(ctx, rg, name, &armcompute.VirtualMachinesClientBeginDeleteOptions{
			ForceDeletion: to.Ptr(true),
		})
		if err != nil {
			return err
		}
		_, err = poller.PollUntilDone(ctx, nil)
		return err
	})
}
