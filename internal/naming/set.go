package naming

import "sort"

// Name holds the derived names for one resource-type key.
type Name struct {
	// Raw is the composed name before any sanitization.
	Raw string
	// General is Raw sanitized under ClassGeneral.
	General string
	// Storage is Raw sanitized under ClassStorage.
	Storage string
}

// Set is the full derived name catalog for one invocation: one Name per
// resource-type key plus the suffix-variant map. A Set is immutable once
// built and safe for concurrent use.
type Set struct {
	components Components
	types      map[string]string
	names      map[string]Name
	variants   map[string]map[string]string
}

// NewSet validates the components, merges the resource-type table with
// overrides, and derives the complete name catalog. It is the single
// entry point callers use; the whole computation is synchronous and
// referentially transparent.
func NewSet(c Components, overrides map[string]string, suffixes []string) (*Set, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	types := MergeResourceTypes(defaultResourceTypes, overrides)

	names := make(map[string]Name, len(types))
	general := make(map[string]string, len(types))
	for key, short := range types {
		composed := Compose(c, short)
		names[key] = Name{
			Raw:     composed,
			General: Sanitize(composed, ClassGeneral),
			Storage: Sanitize(composed, ClassStorage),
		}
		general[key] = names[key].General
	}

	// Variants build on the general-sanitized names so every variant
	// starts from a constraint-compliant base.
	return &Set{
		components: c,
		types:      types,
		names:      names,
		variants:   BuildVariants(general, suffixes),
	}, nil
}

// Lookup returns the derived names for a resource-type key.
// A key absent from the merged table is a lookup miss, not an empty Name.
func (s *Set) Lookup(key string) (Name, error) {
	name, ok := s.names[key]
	if !ok {
		return Name{}, &LookupError{Key: key}
	}
	return name, nil
}

// Variant returns the suffix variant "{name}-{suffix}" for a key.
func (s *Set) Variant(key, suffix string) (string, error) {
	inner, ok := s.variants[key]
	if !ok {
		return "", &LookupError{Key: key}
	}
	v, ok := inner[suffix]
	if !ok {
		return "", &LookupError{Key: key, Suffix: suffix}
	}
	return v, nil
}

// Variants returns the full two-level variant map. The returned map is
// shared; callers must not mutate it.
func (s *Set) Variants() map[string]map[string]string {
	return s.variants
}

// Keys returns the resource-type keys of the set in sorted order.
func (s *Set) Keys() []string {
	keys := make([]string, 0, len(s.names))
	for k := range s.names {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// General is a convenience accessor for the ClassGeneral name of a key.
func (s *Set) General(key string) (string, error) {
	n, err := s.Lookup(key)
	if err != nil {
		return "", err
	}
	return n.General, nil
}

// Storage is a convenience accessor for the ClassStorage name of a key.
func (s *Set) Storage(key string) (string, error) {
	n, err := s.Lookup(key)
	if err != nil {
		return "", err
	}
	return n.Storage, nil
}
