// Package config defines the declarative topology configuration and its
// validation.
//
// A single YAML file describes the whole Hub-and-Spoke deployment: naming
// components, the hub network with its subnets, security rule sets, route
// tables, the optional firewall appliance, spoke networks with peering
// options, and the Key Vault. Loading applies defaults and then
// validates everything up front so provisioning never starts from a
// half-broken topology.
package config
