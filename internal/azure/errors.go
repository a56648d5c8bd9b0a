package azure

import (
	"errors"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
)

// ErrNotFound is returned when a managed resource does not exist.
var ErrNotFound = errors.New("resource not found")

// IsNotFound reports whether err represents a missing resource, either
// our sentinel or an ARM 404 response.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var respErr *azcore.ResponseError
	return errors.As(err, &respErr) && respErr.StatusCode == http.StatusNotFound
}

// IsRetryable reports whether err is a transient ARM failure worth
// retrying: throttling or an in-flight conflicting operation.
func IsRetryable(err error) bool {
	var respErr *azcore.ResponseError
	if !errors.As(err, &respErr) {
		return false
	}
	return respErr.StatusCode == http.StatusTooManyRequests ||
		respErr.StatusCode == http.StatusConflict
}

// IsForbidden reports whether err is an authorization failure. These
// are never retried; the credential needs fixing, not patience.
func IsForbidden(err error) bool {
	var respErr *azcore.ResponseError
	return errors.As(err, &respErr) && respErr.StatusCode == http.StatusForbidden
}
