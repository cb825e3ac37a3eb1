package providers

import (
	"errors"
	"fmt"
	"time"
)

// ErrProviderUnavailable signals a misconfigured or unreachable provider.
var ErrProviderUnavailable = errors.New("provider unavailable")

// NotFoundError reports that the requested entity has no upstream data.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Key)
}

// AsNotFound attempts to unwrap an error into a NotFoundError.
func AsNotFound(err error) (*NotFoundError, bool) {
	var nfErr *NotFoundError
	if errors.As(err, &nfErr) {
		return nfErr, true
	}
	return nil, false
}

// ValidationError reports malformed user input rejected before any network call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// AsValidation attempts to unwrap an error into a ValidationError.
func AsValidation(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// UpstreamError wraps an unexpected upstream response.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Provider, e.StatusCode, e.Message)
}

// IsRetryable reports whether a failed call is worth retrying. Input and
// not-found failures are deterministic; everything else is assumed transient.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if _, ok := AsNotFound(err); ok {
		return false
	}
	if _, ok := AsValidation(err); ok {
		return false
	}
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr.StatusCode >= 500
	}
	return true
}
