package config

// DefaultConfigFile is the config file looked up when no --config flag
// is given.
const DefaultConfigFile = "hubspoke.yaml"

// ValidLocations contains the Azure regions this tool deploys to.
// https://azure.microsoft.com/en-us/explore/global-infrastructure/geographies/
var ValidLocations = map[string]bool{
	"westeurope":       true,
	"northeurope":      true,
	"swedencentral":    true,
	"germanywestcentral": true,
	"uksouth":          true,
	"ukwest":           true,
	"francecentral":    true,
	"switzerlandnorth": true,
	"eastus":           true,
	"eastus2":          true,
	"westus2":          true,
	"westus3":          true,
	"centralus":        true,
	"canadacentral":    true,
	"brazilsouth":      true,
	"southeastasia":    true,
	"eastasia":         true,
	"japaneast":        true,
	"australiaeast":    true,
}

// validDirections, validAccess, validProtocols bound NSG rule enums.
var (
	validDirections = map[string]bool{"Inbound": true, "Outbound": true}
	validAccess     = map[string]bool{"Allow": true, "Deny": true}
	validProtocols  = map[string]bool{"Tcp": true, "Udp": true, "Icmp": true, "*": true}
)

// validNextHopTypes bounds route next-hop enums.
var validNextHopTypes = map[string]bool{
	"VirtualAppliance":      true,
	"VnetLocal":             true,
	"Internet":              true,
	"VirtualNetworkGateway": true,
	"None":                  true,
}

// validVaultSKUs bounds the Key Vault SKU enum.
var validVaultSKUs = map[string]bool{"standard": true, "premium": true}

// NSG rule priority bounds imposed by Azure.
const (
	minRulePriority = 100
	maxRulePriority = 4096
)

// Defaults applied at load time.
const (
	defaultFirewallSize      = "Standard_D3_v2"
	defaultFirewallAdminUser = "fwadmin"
	defaultVaultSKU          = "standard"
	defaultVaultAction       = "Deny"
)
