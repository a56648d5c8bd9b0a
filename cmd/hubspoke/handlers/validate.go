package handlers

import (
	"fmt"

	"github.com/soldal/hubspoke/internal/naming"
)

// Validate loads the config, validates it, and derives the full name
// set without making any Azure calls.
func Validate(configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if _, err := naming.NewSet(cfg.Naming.Components(), cfg.Naming.CustomResourceTypes, cfg.Naming.NameSuffixes); err != nil {
		return fmt.Errorf("deriving names: %w", err)
	}

	fmt.Println("Configuration is valid")
	return nil
}
