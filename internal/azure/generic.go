package azure

import (
	"context"
	"fmt"
	"time"

	"github.com/soldal/hubspoke/internal/util/retry"
)

// putResource converges one resource to its declared state. ARM PUTs are
// idempotent, so converging means calling put under retry; throttled and
// conflicting responses back off, everything else fails fast.
func putResource(ctx context.Context, name string, put func(ctx context.Context) error) error {
	err := retry.Do(ctx, func() error {
		if err := put(ctx); err != nil {
			if IsRetryable(err) {
				return err
			}
			return retry.Fatal(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to reconcile resource %s: %w", name, err)
	}
	return nil
}

// deleteResource removes a resource, treating absence as success so
// destroy runs are repeatable.
func deleteResource(ctx context.Context, name string, del func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Minute)
	defer cancel()

	err := retry.Do(ctx, func() error {
		if err := del(ctx); err != nil {
			if IsNotFound(err) {
				return nil
			}
			if IsRetryable(err) {
				return err
			}
			return retry.Fatal(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete resource %s: %w", name, err)
	}
	return nil
}
