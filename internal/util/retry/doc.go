// Package retry provides exponential backoff retry for Azure management
// operations.
//
// Throttled (429) and conflicting (409) API responses are the expected
// transient failures; anything wrapped with [Fatal] stops the loop
// immediately. Context cancellation is respected between attempts.
package retry
