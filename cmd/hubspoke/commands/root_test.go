package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootHasAllSubcommands(t *testing.T) {
	root := Root()

	want := []string{"init", "apply", "destroy", "validate", "names", "version", "completion"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		assert.True(t, found, "missing subcommand %s", name)
	}
}

func TestApplyFlags(t *testing.T) {
	cmd := Apply()
	require.NotNil(t, cmd.Flags().Lookup("config"))
	require.NotNil(t, cmd.Flags().Lookup("verbose"))
	assert.Equal(t, "c", cmd.Flags().Lookup("config").Shorthand)
}

func TestDestroyFlags(t *testing.T) {
	cmd := Destroy()
	require.NotNil(t, cmd.Flags().Lookup("config"))
	require.NotNil(t, cmd.Flags().Lookup("yes"))
}

func TestNamesFlags(t *testing.T) {
	cmd := Names()
	require.NotNil(t, cmd.Flags().Lookup("format"))
	assert.Equal(t, "table", cmd.Flags().Lookup("format").DefValue)
}

func TestCompletionRejectsUnknownShell(t *testing.T) {
	cmd := Completion()
	cmd.SetArgs([]string{"tcsh"})
	assert.Error(t, cmd.Execute())
}
