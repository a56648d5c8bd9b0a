package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
)

// EnsureResourceGroup creates or updates a resource group and returns
// its ID.
func (c *RealClient) EnsureResourceGroup(ctx context.Context, name, location string, tags map[string]string) (string, error) {
	var id string
	err := putResource(ctx, name, func(ctx context.Context) error {
		resp, err := c.groups.CreateOrUpdate(ctx, name, armresources.ResourceGroup{
			Location: to.Ptr(location),
			Tags:     armTags(tags),
		}, nil)
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

// DeleteResourceGroup removes a resource group and everything in it.
// Absent groups are treated as already deleted.
func (c *RealClient) DeleteResourceGroup(ctx context.Context, name string) error {
	exists, err := c.groups.CheckExistence(ctx, name, nil)
	if err != nil {
		return fmt.Errorf("failed to check resource group %s: %w", name, err)
	}
	if !exists.Success {
		return nil
	}
	return deleteResource(ctx, name, func(ctx context.Context) error {
		poller, err := c.groups.BeginDelete(ctx, name, nil)
		if err != nil {
			return err
		}
		_, err = poller.PollUntilDone(ctx, nil)
		return err
	})
}

// deref returns the value behind a possibly-nil string pointer.
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
