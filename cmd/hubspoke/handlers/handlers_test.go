package handlers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/soldal/hubspoke/internal/azure"
)

const testConfigYAML = `subscription_id: 00000000-0000-0000-0000-000000000000
location: westeurope
naming:
  prefix: neko
  suffix: "01"
  environment: prod
  region: weu
hub:
  address_space: 10.0.0.0/16
  subnets:
    - key: mgmt
      cidr: 10.0.0.0/24
spokes:
  - key: app
    address_space: 10.1.0.0/16
    subnets:
      - key: workload
        cidr: 10.1.0.0/24
`

// writeTestConfig writes a valid config into a temp dir and returns its
// path.
func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hubspoke.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfigYAML), 0o644))
	return path
}

// withMockClient swaps the Azure client factory for a recording mock
// for the duration of one test.
func withMockClient(t *testing.T) *azure.MockClient {
	t.Helper()
	mock := azure.NewMockClient()
	orig := newClient
	newClient = func(string) (azure.Client, error) { return mock, nil }
	t.Cleanup(func() { newClient = orig })
	return mock
}
