package azure

import (
	"context"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/keyvault/armkeyvault"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork"
)

// EnsureVault creates or updates a Key Vault and returns its ID and
// vault URI. Soft-deleted vaults with the same name are recovered
// instead of recreated, matching the portal behavior.
func (c *RealClient) EnsureVault(ctx context.Context, rg, name, location string, opts VaultOptions, tags map[string]string) (string, string, error) {
	skuName := armkeyvault.SKUNameStandard
	if strings.EqualFold(opts.SKU, "premium") {
		skuName = armkeyvault.SKUNamePremium
	}
	defaultAction := armkeyvault.NetworkRuleActionDeny
	if strings.EqualFold(opts.DefaultAction, "allow") {
		defaultAction = armkeyvault.NetworkRuleActionAllow
	}

	params := armkeyvault.VaultCreateOrUpdateParameters{
		Location: to.Ptr(location),
		Tags:     armTags(tags),
		Properties: &armkeyvault.VaultProperties{
			TenantID:         to.Ptr(opts.TenantID),
			EnableSoftDelete: to.Ptr(true),
			EnableRbacAuthorization: to.Ptr(true),
			CreateMode:       to.Ptr(armkeyvault.CreateModeDefault),
			SKU: &armkeyvault.SKU{
				Family: to.Ptr(armkeyvault.SKUFamilyA),
				Name:   to.Ptr(skuName),
			},
			NetworkACLs: &armkeyvault.NetworkRuleSet{
				Bypass:        to.Ptr(armkeyvault.NetworkRuleBypassOptionsAzureServices),
				DefaultAction: to.Ptr(defaultAction),
			},
		},
	}
	if opts.PurgeProtection {
		// Purge protection cannot be disabled once set; only send the
		// flag when requested.
		params.Properties.EnablePurgeProtection = to.Ptr(true)
	}

	// A soft-deleted vault blocks creation under the same name, so
	// recover it instead.
	if _, err := c.vaults.GetDeleted(ctx, name, location, nil); err == nil {
		params.Properties.CreateMode = to.Ptr(armkeyvault.CreateModeRecover)
	} else if !IsNotFound(err) && !IsForbidden(err) {
		return "", "", err
	}

	var id, uri string
	err := putResource(ctx, name, func(ctx context.Context) error {
		poller, err := c.vaults.BeginCreateOrUpdate(ctx, rg, name, params, nil)
		if err != nil {
			return err
		}
		resp, err := poller.PollUntilDone(ctx, nil)
		if err != nil {
			return err
		}
		id = deref(resp.ID)
		if resp.Properties != nil {
			uri = deref(resp.Properties.VaultURI)
		}
		return nil
	})
	if err != nil {
		return "", "", err
	}
	return id, uri, nil
}

// DeleteVault removes a Key Vault. The vault stays soft-deleted per
// Azure retention policy; purging is deliberately out of scope.
func (c *RealClient) DeleteVault(ctx context.Context, rg, name string) error {
	return deleteResource(ctx, name, func(ctx context.Context) error {
		_, err := c.vaults.Delete(ctx, rg, name, nil)
		return err
	})
}

// EnsurePrivateEndpoint creates or updates a private endpoint in the
// given subnet targeting targetID and returns its ID.
func (c *RealClient) EnsurePrivateEndpoint(ctx context.Context, rg, name, location, subnetID, targetID string, groupIDs []string, tags map[string]string) (string, error) {
	groups := make([]*string, 0, len(groupIDs))
	for _, g := range groupIDs {
		groups = append(groups, to.Ptr(g))
	}

	var id string
	err := putResource(ctx, name, func(ctx context.Context) error {
		poller, err := c.privateEndpoints.BeginCreateOrUpdate(ctx, rg, name, armnetwork.PrivateEndpoint{
			Location: to.Ptr(location),
			Tags:     armTags(tags),
			Properties: &armnetwork.PrivateEndpointProperties{
				Subnet: &armnetwork.Subnet{ID: to.Ptr(subnetID)},
				PrivateLinkServiceConnections: []*armnetwork.PrivateLinkServiceConnection{{
					Name: to.Ptr(name),
					Properties: &armnetwork.PrivateLinkServiceConnectionProperties{
						PrivateLinkServiceID: to.Ptr(targetID),
						GroupIDs:             groups,
					},
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

// DeletePrivateEndpoint removes a private endpoint.
func (c *RealClient) DeletePrivateEndpoint(ctx context.Context, rg, name string) error {
	return deleteResource(ctx, name, func(ctx context.Context) error {
		poller, err := c.privateEndpoints.BeginDelete(ctx, rg, name, nil)
		if err != nil {
			return err
		}
		_, err = poller.PollUntilDone(ctx, nil)
		return err
	})
}
