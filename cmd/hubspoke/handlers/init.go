package handlers

import (
	"fmt"
	"os"

	"github.com/soldal/hubspoke/internal/config"
)

// Factory variables for the init flow - replaced in tests.
var (
	runWizard = config.RunWizard
	writeFile = os.WriteFile
)

// Init runs the interactive wizard and writes the resulting config.
// Existing files are never overwritten.
func Init(outputPath string) error {
	if outputPath == "" {
		outputPath = config.DefaultConfigFile
	}

	if _, err := os.Stat(outputPath); err == nil {
		return fmt.Errorf("%s already exists, refusing to overwrite", outputPath)
	}

	cfg, err := runWizard()
	if err != nil {
		return fmt.Errorf("wizard failed: %w", err)
	}

	data, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := writeFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}

	fmt.Printf("Wrote %s\n", outputPath)
	fmt.Println("Review the file, add spokes and rules, then run 'hubspoke apply'")
	return nil
}
