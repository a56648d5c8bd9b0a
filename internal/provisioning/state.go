package provisioning

// State collects Azure resource identities as phases create them. Fields
// are populated progressively: a phase may rely on everything filled in
// by the phases that ran before it.
type State struct {
	ResourceGroupName string
	ResourceGroupID   string

	HubVNetName  string
	HubVNetID    string
	HubSubnetIDs map[string]string

	SpokeVNetNames map[string]string
	SpokeVNetIDs   map[string]string
	SpokeSubnetIDs map[string]map[string]string
	SecurityGroups map[string]string
	RouteTables    map[string]string

	FirewallTrustedNICID   string
	FirewallUntrustedNICID string
	FirewallPublicIPID     string
	FirewallPublicIP       string
	FirewallPrivateIP      string
	FirewallVMID           string

	VaultID         string
	VaultURI        string
	VaultEndpointID string
}

// NewState returns a State with all maps initialised.
func NewState() *State {
	return &State{
		HubSubnetIDs:   make(map[string]string),
		SpokeVNetNames: make(map[string]string),
		SpokeVNetIDs:   make(map[string]string),
		SpokeSubnetIDs: make(map[string]map[string]string),
		SecurityGroups: make(map[string]string),
		RouteTables:    make(map[string]string),
	}
}
