package naming

import (
	"regexp"
	"strings"
)

// Class selects which sanitization rule applies to a composed name.
type Class string

const (
	// ClassGeneral covers most Azure resources: lowercase letters,
	// digits, and hyphens, at most 63 characters.
	ClassGeneral Class = "general"

	// ClassStorage covers storage-account style names: lowercase
	// letters and digits only, at most 24 characters.
	ClassStorage Class = "storage"
)

// classRule is a table-driven sanitization rule. Adding a new class is a
// data change, not a code change.
type classRule struct {
	strip  *regexp.Regexp // characters removed from the input
	maxLen int
}

var classRules = map[Class]classRule{
	ClassGeneral: {strip: regexp.MustCompile(`[^a-zA-Z0-9-]`), maxLen: 63},
	ClassStorage: {strip: regexp.MustCompile(`[^a-zA-Z0-9]`), maxLen: 24},
}

// Sanitize strips every character outside the class allow-list, folds to
// lowercase, and truncates to the class maximum length. It always returns
// a string, possibly empty, and is idempotent.
//
// Truncation is a plain left-anchored cut. Long inputs that share a
// prefix can therefore collide after sanitization; callers that need
// uniqueness must keep composed names within the class length bound.
func Sanitize(name string, class Class) string {
	rule, ok := classRules[class]
	if !ok {
		rule = classRules[ClassGeneral]
	}
	out := rule.strip.ReplaceAllString(name, "")
	out = strings.ToLower(out)
	if len(out) > rule.maxLen {
		out = out[:rule.maxLen]
	}
	return out
}
