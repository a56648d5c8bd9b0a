package provisioning

import (
	"sort"

	"github.com/soldal/hubspoke/internal/azure"
	"github.com/soldal/hubspoke/internal/config"
	"github.com/soldal/hubspoke/internal/util/tags"
)

// SecurityPhase creates every network security group and route table
// before any subnet references them.
type SecurityPhase struct{}

func (p *SecurityPhase) Name() string { return "security" }

func (p *SecurityPhase) Run(ctx *Context) error {
	rg := ctx.State.ResourceGroupName
	base := ctx.Tags(tags.TopologyHub)

	for _, set := range sortedRuleSets(ctx.Config.NSGRules) {
		name, err := ctx.Name("network_security_group", set)
		if err != nil {
			return err
		}
		id, err := ctx.Client.EnsureSecurityGroup(ctx, rg, name, ctx.Config.Location,
			toSecurityRules(ctx.Config.NSGRules[set]), base)
		if err != nil {
			return err
		}
		ctx.State.SecurityGroups[set] = id
		ctx.event(Event{Type: EventResourceEnsured, Phase: p.Name(), Resource: name, Message: "security group ensured"})
	}

	for _, table := range sortedRouteTables(ctx.Config.RouteTables) {
		name, err := ctx.Name("route_table", table)
		if err != nil {
			return err
		}
		id, err := ctx.Client.EnsureRouteTable(ctx, rg, name, ctx.Config.Location,
			toRoutes(ctx.Config.RouteTables[table]), base)
		if err != nil {
			return err
		}
		ctx.State.RouteTables[table] = id
		ctx.event(Event{Type: EventResourceEnsured, Phase: p.Name(), Resource: name, Message: "route table ensured"})
	}
	return nil
}

func sortedRuleSets(sets map[string][]config.RuleConfig) []string {
	keys := make([]string, 0, len(sets))
	for k := range sets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedRouteTables(tables map[string][]config.RouteConfig) []string {
	keys := make([]string, 0, len(tables))
	for k := range tables {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func toSecurityRules(rules []config.RuleConfig) []azure.SecurityRule {
	out := make([]azure.SecurityRule, 0, len(rules))
	for _, r := range rules {
		out = append(out, azure.SecurityRule{
			Name:              r.Name,
			Priority:          r.Priority,
			Direction:         r.Direction,
			Access:            r.Access,
			Protocol:          r.Protocol,
			SourcePrefix:      r.SourcePrefix,
			SourcePorts:       r.SourcePorts,
			DestinationPrefix: r.DestinationPrefix,
			DestinationPorts:  r.DestinationPorts,
		})
	}
	return out
}

func toRoutes(routes []config.RouteConfig) []azure.Route {
	out := make([]azure.Route, 0, len(routes))
	for _, r := range routes {
		out = append(out, azure.Route{
			Name:          r.Name,
			AddressPrefix: r.AddressPrefix,
			NextHopType:   r.NextHopType,
			NextHopIP:     r.NextHopIP,
		})
	}
	return out
}
