package config

import (
	"fmt"
	"net"

	"github.com/charmbracelet/huh"
)

// wizardAnswers collects the interactive init inputs before they are
// expanded into a full Config.
type wizardAnswers struct {
	SubscriptionID string
	Location       string
	Prefix         string
	Environment    string
	HubCIDR        string
	SpokeCIDR      string
	Firewall       bool
	KeyVault       bool
}

// RunWizard walks the user through an interactive topology setup and
// returns the assembled configuration.
func RunWizard() (*Config, error) {
	answers := wizardAnswers{
		Environment: "dev",
		HubCIDR:     "10.0.0.0/16",
		SpokeCIDR:   "10.1.0.0/16",
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Azure subscription ID").
				Value(&answers.SubscriptionID).
				Validate(requireValue("subscription ID")),
			huh.NewSelect[string]().
				Title("Region").
				Options(locationOptions()...).
				Value(&answers.Location),
			huh.NewInput().
				Title("Name prefix").
				Description("Short token prepended to every resource name").
				Value(&answers.Prefix).
				Validate(requireValue("prefix")),
			huh.NewSelect[string]().
				Title("Environment").
				Options(
					huh.NewOption("Development", "dev"),
					huh.NewOption("Staging", "stage"),
					huh.NewOption("Production", "prod"),
				).
				Value(&answers.Environment),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Hub address space").
				Value(&answers.HubCIDR).
				Validate(validateCIDRInput),
			huh.NewInput().
				Title("First spoke address space").
				Value(&answers.SpokeCIDR).
				Validate(validateCIDRInput),
			huh.NewConfirm().
				Title("Deploy a firewall appliance in the hub?").
				Value(&answers.Firewall),
			huh.NewConfirm().
				Title("Deploy a Key Vault?").
				Value(&answers.KeyVault),
		),
	)

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("wizard aborted: %w", err)
	}
	return buildWizardConfig(answers)
}

// buildWizardConfig expands the wizard answers into a validated Config
// with a conventional hub layout: a management subnet, trusted and
// untrusted firewall subnets when the appliance is requested, and one
// workload spoke.
func buildWizardConfig(a wizardAnswers) (*Config, error) {
	cfg := &Config{
		SubscriptionID: a.SubscriptionID,
		Location:       a.Location,
		Naming: NamingConfig{
			Prefix:      a.Prefix,
			Environment: a.Environment,
		},
		Hub: HubConfig{
			AddressSpace: a.HubCIDR,
			Subnets: []SubnetConfig{
				{Key: "mgmt", CIDR: subnetOf(a.HubCIDR, 0), SecurityRules: "mgmt"},
			},
		},
		Spokes: []SpokeConfig{
			{
				Key:          "app",
				AddressSpace: a.SpokeCIDR,
				Subnets: []SubnetConfig{
					{Key: "workload", CIDR: subnetOf(a.SpokeCIDR, 0)},
				},
			},
		},
		NSGRules: map[string][]RuleConfig{
			"mgmt": {
				{
					Name:              "allow-https-inbound",
					Priority:          100,
					Direction:         "Inbound",
					Access:            "Allow",
					Protocol:          "Tcp",
					SourcePrefix:      "*",
					SourcePorts:       "*",
					DestinationPrefix: "*",
					DestinationPorts:  "443",
				},
			},
		},
	}

	if a.Firewall {
		cfg.Hub.Subnets = append(cfg.Hub.Subnets,
			SubnetConfig{Key: "trusted", CIDR: subnetOf(a.HubCIDR, 1)},
			SubnetConfig{Key: "untrusted", CIDR: subnetOf(a.HubCIDR, 2)},
		)
		cfg.Hub.Firewall = FirewallConfig{
			Enabled:          true,
			TrustedSubnet:    "trusted",
			UntrustedSubnet:  "untrusted",
			AdminPasswordEnv: "HUBSPOKE_FW_PASSWORD",
		}
	}
	if a.KeyVault {
		cfg.KeyVault = KeyVaultConfig{Enabled: true}
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("wizard produced invalid config: %w", err)
	}
	return cfg, nil
}

// subnetOf carves the nth /24 out of a /16-style address space. Falls
// back to the space itself when it cannot be split; validation catches
// any resulting mismatch.
func subnetOf(space string, n int) string {
	ip, network, err := net.ParseCIDR(space)
	if err != nil {
		return space
	}
	ip4 := ip.To4()
	if ip4 == nil {
		return space
	}
	size, _ := network.Mask.Size()
	if size > 24 {
		return space
	}
	out := make(net.IP, len(ip4))
	copy(out, ip4)
	out[2] = byte(n)
	return fmt.Sprintf("%s/24", out.String())
}

func locationOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(ValidLocations))
	for _, loc := range sortedKeys(ValidLocations) {
		opts = append(opts, huh.NewOption(loc, loc))
	}
	return opts
}

func requireValue(what string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", what)
		}
		return nil
	}
}

func validateCIDRInput(s string) error {
	if _, _, err := net.ParseCIDR(s); err != nil {
		return fmt.Errorf("not a valid CIDR: %v", err)
	}
	return nil
}
