package errs

import (
	"errors"
	"fmt"
)

// ErrContentionTimeout is the sentinel error returned when a row or sequence
// lock could not be acquired within the configured bound. Callers may retry
// the whole operation with backoff; no partial effect has been persisted.
var ErrContentionTimeout = errors.New("contention timeout")

// ContentionTimeoutError reports a bounded lock wait that expired.
type ContentionTimeoutError struct {
	Resource string
	Cause    error
}

// NewContentionTimeoutError creates a ContentionTimeoutError for the named resource.
func NewContentionTimeoutError(resource string, cause error) *ContentionTimeoutError {
	return &ContentionTimeoutError{Resource: resource, Cause: cause}
}

func (e *ContentionTimeoutError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrContentionTimeout, e.Resource, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrContentionTimeout, e.Resource))
}

func (e *ContentionTimeoutError) Unwrap() error {
	return ErrContentionTimeout
}
