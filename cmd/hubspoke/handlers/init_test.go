package handlers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soldal/hubspoke/internal/config"
)

func stubWizard(t *testing.T) {
	t.Helper()
	orig := runWizard
	runWizard = func() (*config.Config, error) {
		return config.Load([]byte(testConfigYAML))
	}
	t.Cleanup(func() { runWizard = orig })
}

func TestInitWritesConfig(t *testing.T) {
	stubWizard(t)
	path := filepath.Join(t.TempDir(), "hubspoke.yaml")

	require.NoError(t, Init(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "subscription_id")

	cfg, err := config.Load(data)
	require.NoError(t, err)
	assert.Equal(t, "neko", cfg.Naming.Prefix)
}

func TestInitRefusesOverwrite(t *testing.T) {
	stubWizard(t)
	path := writeTestConfig(t)

	err := Init(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refusing to overwrite")
}
