package llm

import (
	"errors"
	"fmt"
)

// AuthError means the backend rejected the credential. Not retryable;
// restarting with the same key will not help.
type AuthError struct {
	Provider string
	Err      error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: authentication failed: %v", e.Provider, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// TransportError covers network failures, timeouts, rate limits and
// server-side errors. Retryable with bounded backoff.
type TransportError struct {
	Provider string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport failure: %v", e.Provider, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ValidationError means the backend answered but the payload does not
// conform to the declared schema. Never retried; the caller sees the
// failure instead of a malformed result.
type ValidationError struct {
	Provider string
	Err      error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: response failed validation: %v", e.Provider, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// IsRetryable reports whether the error is a transient transport failure.
func IsRetryable(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// statusError maps an HTTP status from either backend onto the error
// taxonomy. Statuses that indicate neither credential rejection nor a
// transient condition pass through unchanged.
func statusError(provider string, status int, err error) error {
	switch {
	case status == 401 || status == 403:
		return &AuthError{Provider: provider, Err: err}
	case status == 408 || status == 429 || status >= 500:
		return &TransportError{Provider: provider, Err: err}
	default:
		return err
	}
}
