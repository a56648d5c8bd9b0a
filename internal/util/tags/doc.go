// Package tags provides consistent tagging for Azure resources.
//
// All managed resources carry a hubspoke.managed-by tag plus topology
// role, environment, and CreatedOn timestamp tags, built through a
// fluent builder so every provisioning phase produces the same tag set.
package tags
