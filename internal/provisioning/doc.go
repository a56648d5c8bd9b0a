// Package provisioning orchestrates the Hub-and-Spoke rollout as a
// sequence of phases sharing a progressively populated state.
//
// Apply order: validation, resource group, security (NSGs and route
// tables), hub network, firewall appliance, spokes, peering, key vault.
// Destroy runs the dependency order in reverse and tolerates resources
// that are already gone.
package provisioning
