package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDestroySkipConfirm(t *testing.T) {
	mock := withMockClient(t)
	path := writeTestConfig(t)

	require.NoError(t, Destroy(context.Background(), path, true))

	calls := mock.CallNames()
	require.NotEmpty(t, calls)
	assert.Equal(t, "DeleteResourceGroup:neko-rg-prod-weu-01", calls[len(calls)-1])
}

func TestDestroyCancelled(t *testing.T) {
	mock := withMockClient(t)
	path := writeTestConfig(t)

	orig := confirmDestroy
	confirmDestroy = func(string) (bool, error) { return false, nil }
	t.Cleanup(func() { confirmDestroy = orig })

	require.NoError(t, Destroy(context.Background(), path, false))
	assert.Empty(t, mock.CallNames())
}

func TestDestroyConfirmed(t *testing.T) {
	mock := withMockClient(t)
	path := writeTestConfig(t)

	orig := confirmDestroy
	confirmDestroy = func(string) (bool, error) { return true, nil }
	t.Cleanup(func() { confirmDestroy = orig })

	require.NoError(t, Destroy(context.Background(), path, false))
	assert.NotEmpty(t, mock.CallNames())
}
