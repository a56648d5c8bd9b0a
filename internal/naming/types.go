package naming

import (
	"errors"
	"fmt"
)

// ErrUnknownResourceType is returned when a name is requested for a key
// absent from the merged resource-type map. A lookup miss is an error
// rather than an empty string so nothing downstream gets a silently
// wrong name.
var ErrUnknownResourceType = errors.New("unknown resource type")

// defaultResourceTypes maps symbolic resource-type keys to the short
// tokens used inside composed names. Callers may override or extend any
// entry via MergeResourceTypes.
var defaultResourceTypes = map[string]string{
	"resource_group":          "rg",
	"virtual_network":         "vnet",
	"subnet":                  "snet",
	"network_security_group":  "nsg",
	"route_table":             "rt",
	"route_table_route":       "route",
	"virtual_network_peering": "peer",
	"key_vault":               "kv",
	"private_endpoint":        "pe",
	"storage_account":         "st",
	"public_ip":               "pip",
	"network_interface":       "nic",
	"palo_alto_vm_series":     "palofw",
	"custom_vm":               "vm",
	"log_analytics":           "log",
}

// DefaultResourceTypes returns a copy of the built-in resource-type
// table. The copy keeps the package-level table immutable from the
// caller's point of view.
func DefaultResourceTypes() map[string]string {
	out := make(map[string]string, len(defaultResourceTypes))
	for k, v := range defaultResourceTypes {
		out[k] = v
	}
	return out
}

// MergeResourceTypes merges overrides into defaults. Override entries win
// on key collision; unrelated keys from both sides are preserved. Neither
// argument is mutated.
func MergeResourceTypes(defaults, overrides map[string]string) map[string]string {
	merged := make(map[string]string, len(defaults)+len(overrides))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

// ShortName looks up the short token for a resource-type key in types.
func ShortName(types map[string]string, key string) (string, error) {
	short, ok := types[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownResourceType, key)
	}
	return short, nil
}
