package provisioning

import (
	"fmt"
	"os"

	"github.com/soldal/hubspoke/internal/azure"
	"github.com/soldal/hubspoke/internal/util/netutil"
	"github.com/soldal/hubspoke/internal/util/tags"
)

// firewallHostNum is the host offset within the trusted subnet reserved
// for the appliance. Azure reserves the first three usable addresses of
// every subnet, so the appliance takes the fourth.
const firewallHostNum = 4

// FirewallPhase places the firewall VM appliance in the hub: a public IP
// for the untrusted side, two NICs with IP forwarding, and the VM itself.
// The trusted NIC gets a static address so route tables can point at it.
type FirewallPhase struct{}

func (p *FirewallPhase) Name() string { return "firewall" }

func (p *FirewallPhase) Run(ctx *Context) error {
	fw := ctx.Config.Hub.Firewall
	if !fw.Enabled {
		ctx.event(Event{Type: EventResourceSkipped, Phase: p.Name(), Message: "firewall disabled"})
		return nil
	}

	rg := ctx.State.ResourceGroupName
	hubTags := ctx.Tags(tags.TopologyHub)

	pipName, err := ctx.Name("public_ip", "fw")
	if err != nil {
		return err
	}
	pipID, pipAddress, err := ctx.Client.EnsurePublicIP(ctx, rg, pipName, ctx.Config.Location, hubTags)
	if err != nil {
		return err
	}
	ctx.State.FirewallPublicIPID = pipID
	ctx.State.FirewallPublicIP = pipAddress
	ctx.event(Event{Type: EventResourceEnsured, Phase: p.Name(), Resource: pipName, Message: "firewall public IP ensured"})

	trustedSubnet := ctx.Config.Hub.Subnets[indexOfSubnet(ctx, fw.TrustedSubnet)]
	trustedIP, err := netutil.Host(trustedSubnet.CIDR, firewallHostNum)
	if err != nil {
		return fmt.Errorf("deriving firewall trusted IP from %s: %w", trustedSubnet.CIDR, err)
	}

	trustedNIC, err := ctx.Name("network_interface", "fw-trusted")
	if err != nil {
		return err
	}
	trustedID, err := ctx.Client.EnsureNetworkInterface(ctx, rg, trustedNIC, ctx.Config.Location,
		ctx.State.HubSubnetIDs[fw.TrustedSubnet], trustedIP, "", true, hubTags)
	if err != nil {
		return err
	}
	ctx.State.FirewallTrustedNICID = trustedID
	ctx.State.FirewallPrivateIP = trustedIP
	ctx.event(Event{Type: EventResourceEnsured, Phase: p.Name(), Resource: trustedNIC, Message: "firewall trusted NIC ensured"})

	untrustedNIC, err := ctx.Name("network_interface", "fw-untrusted")
	if err != nil {
		return err
	}
	untrustedID, err := ctx.Client.EnsureNetworkInterface(ctx, rg, untrustedNIC, ctx.Config.Location,
		ctx.State.HubSubnetIDs[fw.UntrustedSubnet], "", pipID, true, hubTags)
	if err != nil {
		return err
	}
	ctx.State.FirewallUntrustedNICID = untrustedID
	ctx.event(Event{Type: EventResourceEnsured, Phase: p.Name(), Resource: untrustedNIC, Message: "firewall untrusted NIC ensured"})

	vmName, err := ctx.Names.General("palo_alto_vm_series")
	if err != nil {
		return err
	}
	spec := azure.VMSpec{
		Size: fw.Size,
		Image: azure.VMImage{
			Publisher: fw.Image.Publisher,
			Offer:     fw.Image.Offer,
			SKU:       fw.Image.SKU,
			Version:   fw.Image.Version,
		},
		AdminUsername: fw.AdminUsername,
		AdminPassword: os.Getenv(fw.AdminPasswordEnv),
		// The untrusted NIC is primary: it carries the public address the
		// appliance is managed through.
		NICIDs: []string{untrustedID, trustedID},
	}
	vmID, err := ctx.Client.EnsureVirtualMachine(ctx, rg, vmName, ctx.Config.Location, spec, hubTags)
	if err != nil {
		return err
	}
	ctx.State.FirewallVMID = vmID
	ctx.event(Event{Type: EventResourceEnsured, Phase: p.Name(), Resource: vmName, Message: "firewall appliance ensured"})
	return nil
}

// indexOfSubnet returns the index of the hub subnet with the given key.
// Validation guarantees the key exists when the firewall is enabled.
func indexOfSubnet(ctx *Context, key string) int {
	for i, subnet := range ctx.Config.Hub.Subnets {
		if subnet.Key == key {
			return i
		}
	}
	return 0
}
