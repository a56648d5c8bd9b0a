package naming

import (
	"fmt"
	"regexp"
	"strings"
)

// componentPattern is the allowed character set for every naming component.
var componentPattern = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)

// Components holds the caller-supplied naming inputs. Every field is
// optional; absent fields are simply omitted from composed names.
type Components struct {
	Prefix      string `yaml:"prefix"`
	Suffix      string `yaml:"suffix"`
	Environment string `yaml:"environment"`
	Region      string `yaml:"region"`
}

// FieldError reports a naming component that failed input validation.
type FieldError struct {
	Field  string
	Value  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("naming component %s=%q is invalid: %s", e.Field, e.Value, e.Reason)
}

// Validate checks each present component against the allowed character set.
// The first violation rejects the whole invocation; nothing is composed
// from partially valid input.
func (c Components) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"prefix", c.Prefix},
		{"suffix", c.Suffix},
		{"environment", c.Environment},
		{"region", c.Region},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		if !componentPattern.MatchString(f.value) {
			return &FieldError{
				Field:  f.name,
				Value:  f.value,
				Reason: "must contain only letters, digits, and hyphens",
			}
		}
	}
	return nil
}

// Compose joins the components and the resource-type short name into a
// single hyphen-delimited name. Segment order is fixed:
// prefix, short name, environment, region, suffix. Empty segments drop
// out along with their delimiter, so a fully absent component set yields
// exactly the short name. No length or character enforcement happens
// here; that is Sanitize's job.
func Compose(c Components, shortName string) string {
	segments := make([]string, 0, 5)
	for _, s := range []string{c.Prefix, shortName, c.Environment, c.Region, c.Suffix} {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return strings.Join(segments, "-")
}

// BuildVariants produces, for every resource-type key in names and every
// suffix, the string "{name}-{suffix}". The outer map keys match names'
// keys exactly; an empty suffix list yields an empty inner map per key.
func BuildVariants(names map[string]string, suffixes []string) map[string]map[string]string {
	variants := make(map[string]map[string]string, len(names))
	for key, name := range names {
		inner := make(map[string]string, len(suffixes))
		for _, suffix := range suffixes {
			inner[suffix] = fmt.Sprintf("%s-%s", name, suffix)
		}
		variants[key] = inner
	}
	return variants
}
