package azure

import (
	"context"
	"fmt"
	"sync"
)

// MockClient is a recording implementation of Client for pipeline
// tests. Every call appends "Method:name" to Calls; FailOn injects an
// error for a given method name.
type MockClient struct {
	mu     sync.Mutex
	Calls  []string
	FailOn map[string]error

	// PublicIPAddress is returned by EnsurePublicIP.
	PublicIPAddress string
}

var _ Client = (*MockClient)(nil)

// NewMockClient creates an empty recording mock.
func NewMockClient() *MockClient {
	return &MockClient{PublicIPAddress: "203.0.113.10"}
}

// CallNames returns the recorded calls in order.
func (m *MockClient) CallNames() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.Calls))
	copy(out, m.Calls)
	return out
}

func (m *MockClient) record(method, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, fmt.Sprintf("%s:%s", method, name))
	if err, ok := m.FailOn[method]; ok {
		return err
	}
	return nil
}

func mockID(name string) string {
	return "/subscriptions/mock/providers/mock/" + name
}

func (m *MockClient) EnsureResourceGroup(_ context.Context, name, _ string, _ map[string]string) (string, error) {
	if err := m.record("EnsureResourceGroup", name); err != nil {
		return "", err
	}
	return mockID(name), nil
}

func (m *MockClient) DeleteResourceGroup(_ context.Context, name string) error {
	return m.record("DeleteResourceGroup", name)
}

func (m *MockClient) EnsureVirtualNetwork(_ context.Context, _, name, _, _ string, _ map[string]string) (string, error) {
	if err := m.record("EnsureVirtualNetwork", name); err != nil {
		return "", err
	}
	return mockID(name), nil
}

func (m *MockClient) DeleteVirtualNetwork(_ context.Context, _, name string) error {
	return m.record("DeleteVirtualNetwork", name)
}

func (m *MockClient) EnsureSubnet(_ context.Context, _, _, name, _, _, _ string) (string, error) {
	if err := m.record("EnsureSubnet", name); err != nil {
		return "", err
	}
	return mockID(name), nil
}

func (m *MockClient) EnsurePeering(_ context.Context, _, _, name, _ string, _ PeeringOptions) error {
	return m.record("EnsurePeering", name)
}

func (m *MockClient) EnsurePublicIP(_ context.Context, _, name, _ string, _ map[string]string) (string, string, error) {
	if err := m.record("EnsurePublicIP", name); err != nil {
		return "", "", err
	}
	return mockID(name), m.PublicIPAddress, nil
}

func (m *MockClient) DeletePublicIP(_ context.Context, _, name string) error {
	return m.record("DeletePublicIP", name)
}

func (m *MockClient) EnsureNetworkInterface(_ context.Context, _, name, _, _, _, _ string, _ bool, _ map[string]string) (string, error) {
	if err := m.record("EnsureNetworkInterface", name); err != nil {
		return "", err
	}
	return mockID(name), nil
}

func (m *MockClient) DeleteNetworkInterface(_ context.Context, _, name string) error {
	return m.record("DeleteNetworkInterface", name)
}

func (m *MockClient) EnsureSecurityGroup(_ context.Context, _, name, _ string, _ []SecurityRule, _ map[string]string) (string, error) {
	if err := m.record("EnsureSecurityGroup", name); err != nil {
		return "", err
	}
	return mockID(name), nil
}

func (m *MockClient) DeleteSecurityGroup(_ context.Context, _, name string) error {
	return m.record("DeleteSecurityGroup", name)
}

func (m *MockClient) EnsureRouteTable(_ context.Context, _, name, _ string, _ []Route, _ map[string]string) (string, error) {
	if err := m.record("EnsureRouteTable", name); err != nil {
		return "", err
	}
	return mockID(name), nil
}

func (m *MockClient) DeleteRouteTable(_ context.Context, _, name string) error {
	return m.record("DeleteRouteTable", name)
}

func (m *MockClient) EnsureVault(_ context.Context, _, name, _ string, _ VaultOptions, _ map[string]string) (string, string, error) {
	if err := m.record("EnsureVault", name); err != nil {
		return "", "", err
	}
	return mockID(name), "https://" + name + ".vault.azure.net/", nil
}

func (m *MockClient) DeleteVault(_ context.Context, _, name string) error {
	return m.record("DeleteVault", name)
}

func (m *MockClient) EnsurePrivateEndpoint(_ context.Context, _, name, _, _, _ string, _ []string, _ map[string]string) (string, error) {
	if err := m.record("EnsurePrivateEndpoint", name); err != nil {
		return "", err
	}
	return mockID(name), nil
}

func (m *MockClient) DeletePrivateEndpoint(_ context.Context, _, name string) error {
	return m.record("DeletePrivateEndpoint", name)
}

func (m *MockClient) EnsureVirtualMachine(_ context.Context, _, name, _ string, _ VMSpec, _ map[string]string) (string, error) {
	if err := m.record("EnsureVirtualMachine", name); err != nil {
		return "", err
	}
	return mockID(name), nil
}

func (m *MockClient) DeleteVirtualMachine(_ context.Context, _, name string) error {
	return m.record("DeleteVirtualMachine", name)
}
