package naming

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		class    Class
		expected string
	}{
		{
			name:     "mixed case with hyphens general",
			input:    "Neko-PaloFW-Prod-WEU-01",
			class:    ClassGeneral,
			expected: "neko-palofw-prod-weu-01",
		},
		{
			name:     "mixed case with hyphens storage",
			input:    "Neko-PaloFW-Prod-WEU-01",
			class:    ClassStorage,
			expected: "nekopalofwprodweu01",
		},
		{
			name:     "illegal characters stripped",
			input:    "my_vault.name!",
			class:    ClassGeneral,
			expected: "myvaultname",
		},
		{
			name:     "general truncated to 63",
			input:    strings.Repeat("a", 80),
			class:    ClassGeneral,
			expected: strings.Repeat("a", 63),
		},
		{
			name:     "storage truncated to 24",
			input:    strings.Repeat("ab", 20),
			class:    ClassStorage,
			expected: strings.Repeat("ab", 12),
		},
		{
			name:     "everything stripped yields empty",
			input:    "___...___",
			class:    ClassStorage,
			expected: "",
		},
		{
			name:     "empty input",
			input:    "",
			class:    ClassGeneral,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Sanitize(tt.input, tt.class))
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"Neko-PaloFW-Prod-WEU-01",
		"UPPER_case.with-Symbols!",
		strings.Repeat("Xy-9", 30),
		"",
	}
	for _, class := range []Class{ClassGeneral, ClassStorage} {
		for _, in := range inputs {
			once := Sanitize(in, class)
			assert.Equal(t, once, Sanitize(once, class),
				"Sanitize must be idempotent for class %s input %q", class, in)
		}
	}
}

func TestSanitizeBounds(t *testing.T) {
	generalOut := regexp.MustCompile(`^[a-z0-9-]*$`)
	storageOut := regexp.MustCompile(`^[a-z0-9]*$`)

	inputs := []string{
		"Short",
		strings.Repeat("Long-Segment-", 12),
		"weird *&^% chars 123",
	}
	for _, in := range inputs {
		g := Sanitize(in, ClassGeneral)
		s := Sanitize(in, ClassStorage)
		assert.LessOrEqual(t, len(g), 63)
		assert.LessOrEqual(t, len(s), 24)
		assert.Regexp(t, generalOut, g)
		assert.Regexp(t, storageOut, s)
	}
}

func TestSanitizeUnknownClassFallsBackToGeneral(t *testing.T) {
	assert.Equal(t, Sanitize("A-b", ClassGeneral), Sanitize("A-b", Class("bogus")))
}
