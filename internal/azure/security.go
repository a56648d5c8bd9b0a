package azure

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork"
)

// EnsureSecurityGroup creates or updates an NSG with the full declared
// rule set and returns its ID. Rules not in the declaration are removed
// by ARM's PUT semantics.
func (c *RealClient) EnsureSecurityGroup(ctx context.Context, rg, name, location string, rules []SecurityRule, tags map[string]string) (string, error) {
	armRules := make([]*armnetwork.SecurityRule, 0, len(rules))
	for _, rule := range rules {
		armRules = append(armRules, &armnetwork.SecurityRule{
			Name: to.Ptr(rule.Name),
			Properties: &armnetwork.SecurityRulePropertiesFormat{
				Priority:                 to.Ptr(rule.Priority),
				Direction:                to.Ptr(armnetwork.SecurityRuleDirection(rule.Direction)),
				Access:                   to.Ptr(armnetwork.SecurityRuleAccess(rule.Access)),
				Protocol:                 to.Ptr(armnetwork.SecurityRuleProtocol(rule.Protocol)),
				SourceAddressPrefix:      to.Ptr(rule.SourcePrefix),
				SourcePortRange:          to.Ptr(rule.SourcePorts),
				DestinationAddressPrefix: to.Ptr(rule.DestinationPrefix),
				DestinationPortRange:     to.Ptr(rule.DestinationPorts),
			},
		})
	}

	var id string
	err := putResource(ctx, name, func(ctx context.Context) error {
		poller, err := c.securityGroups.BeginCreateOrUpdate(ctx, rg, name, armnetwork.SecurityGroup{
			Location: to.Ptr(location),
			Tags:     armTags(tags),
			Properties: &armnetwork.SecurityGroupPropertiesFormat{
				SecurityRules: armRules,
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

// DeleteSecurityGroup removes an NSG.
func (c *RealClient) DeleteSecurityGroup(ctx context.Context, rg, name string) error {
	return deleteResource(ctx, name, func(ctx context.Context) error {
		poller, err := c.securityGroups.BeginDelete(ctx, rg, name, nil)
		if err != nil {
			return err
		}
		_, err = poller.PollUntilDone(ctx, nil)
		return err
	})
}

// EnsureRouteTable creates or updates a route table with the declared
// routes and returns its ID.
func (c *RealClient) EnsureRouteTable(ctx context.Context, rg, name, location string, routes []Route, tags map[string]string) (string, error) {
	armRoutes := make([]*armnetwork.Route, 0, len(routes))
	for _, route := range routes {
		props := &armnetwork.RoutePropertiesFormat{
			AddressPrefix: to.Ptr(route.AddressPrefix),
			NextHopType:   to.Ptr(armnetwork.RouteNextHopType(route.NextHopType)),
		}
		if route.NextHopIP != "" {
			props.NextHopIPAddress = to.Ptr(route.NextHopIP)
		}
		armRoutes = append(armRoutes, &armnetwork.Route{
			Name:       to.Ptr(route.Name),
			Properties: props,
		})
	}

	var id string
	err := putResource(ctx, name, func(ctx context.Context) error {
		poller, err := c.routeTables.BeginCreateOrUpdate(ctx, rg, name, armnetwork.RouteTable{
			Location: to.Ptr(location),
			Tags:     armTags(tags),
			Properties: &armnetwork.RouteTablePropertiesFormat{
				Routes: armRoutes,
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

// DeleteRouteTable removes a route table.
func (c *RealClient) DeleteRouteTable(ctx context.Context, rg, name string) error {
	return deleteResource(ctx, name, func(ctx context.Context) error {
		poller, err := c.routeTables.BeginDelete(ctx, rg, name, nil)
		if err != nil {
			return err
		}
		_, err = poller.PollUntilDone(ctx, nil)
		return err
	})
}
