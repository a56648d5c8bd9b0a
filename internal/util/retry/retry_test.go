package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoSucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := Do(context.Background(), func() error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDoRetriesTransientErrors(t *testing.T) {
	calls := 0
	err := Do(context.Background(), func() error {
		calls++
		if calls < 3 {
			return errors.New("throttled")
		}
		return nil
	}, WithInitialDelay(time.Millisecond))
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDoExhaustsRetries(t *testing.T) {
	transient := errors.New("conflict")
	calls := 0
	err := Do(context.Background(), func() error {
		calls++
		return transient
	}, WithMaxRetries(2), WithInitialDelay(time.Millisecond))

	require.Error(t, err)
	assert.ErrorIs(t, err, transient)
	assert.Equal(t, 3, calls)
}

func TestDoStopsOnFatal(t *testing.T) {
	boom := errors.New("bad request")
	calls := 0
	err := Do(context.Background(), func() error {
		calls++
		return Fatal(boom)
	}, WithInitialDelay(time.Millisecond))

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestDoRespectsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Do(ctx, func() error {
		return errors.New("transient")
	}, WithInitialDelay(time.Second))

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFatalNil(t *testing.T) {
	assert.NoError(t, Fatal(nil))
}

func TestIsFatalUnwrapsChains(t *testing.T) {
	wrapped := Fatal(errors.New("inner"))
	assert.True(t, IsFatal(wrapped))
	assert.False(t, IsFatal(errors.New("plain")))
}
