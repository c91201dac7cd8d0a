package client

import (
	"errors"
	"fmt"
)

// HTTPError represents a non-2xx HTTP response from the API.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// DeniedError is a delivered envelope with success=false: the server
// answered but refused the operation. Message may be empty, in which case
// the caller shows its own fallback text.
type DeniedError struct {
	Message string
}

func (e *DeniedError) Error() string {
	if e.Message == "" {
		return "request denied"
	}
	return "request denied: " + e.Message
}

// IsStatus returns true if err (or any wrapped error) is an HTTPError with the given status code.
func IsStatus(err error, code int) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == code
	}
	return false
}

// Denied unwraps a *DeniedError from err, if one is present.
func Denied(err error) (*DeniedError, bool) {
	var denied *DeniedError
	if errors.As(err, &denied) {
		return denied, true
	}
	return nil, false
}
