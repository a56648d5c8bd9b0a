package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/soldal/hubspoke/internal/naming"
)

// nameEntry is one resource type's derived names, for output.
type nameEntry struct {
	Type     string            `json:"type" yaml:"type"`
	General  string            `json:"general" yaml:"general"`
	Storage  string            `json:"storage" yaml:"storage"`
	Variants map[string]string `json:"variants,omitempty" yaml:"variants,omitempty"`
}

// Names derives the full name set from the config and writes it to w in
// the requested format: table, json, or yaml.
func Names(w io.Writer, configPath, format string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	set, err := naming.NewSet(cfg.Naming.Components(), cfg.Naming.CustomResourceTypes, cfg.Naming.NameSuffixes)
	if err != nil {
		return fmt.Errorf("deriving names: %w", err)
	}

	entries := make([]nameEntry, 0)
	variants := set.Variants()
	for _, key := range set.Keys() {
		name, err := set.Lookup(key)
		if err != nil {
			return err
		}
		entries = append(entries, nameEntry{
			Type:     key,
			General:  name.General,
			Storage:  name.Storage,
			Variants: variants[key],
		})
	}

	switch format {
	case "table", "":
		return renderNamesTable(w, entries)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case "yaml":
		return yaml.NewEncoder(w).Encode(entries)
	default:
		return fmt.Errorf("unknown format %q: must be table, json, or yaml", format)
	}
}

func renderNamesTable(w io.Writer, entries []nameEntry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tGENERAL\tSTORAGE")
	for _, entry := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", entry.Type, entry.General, entry.Storage)
	}
	return tw.Flush()
}
