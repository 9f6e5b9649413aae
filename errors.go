package httpexec

import (
	"errors"
	"fmt"
)

// StatusUnknown is the sentinel status carried by a StatusCodeError when no
// status code could be determined for a completed exchange.
const StatusUnknown = -1

// InvalidPathnameError reports a request path that would escape the
// configured origin or prefix. It is returned before any network I/O or
// pool interaction and is never retryable.
type InvalidPathnameError struct {
	// Path is the caller-supplied request path.
	Path string
}

// Error implements the error interface.
func (e *InvalidPathnameError) Error() string {
	return fmt.Sprintf("httpexec: invalid pathname %q", e.Path)
}

// StatusCodeError reports a complete, well-formed exchange whose status
// fell outside the accepted range.
type StatusCodeError struct {
	// StatusCode is the observed status, or StatusUnknown.
	StatusCode int
	// Body is the decoded response body text (may be empty).
	Body string
}

// Error implements the error interface.
func (e *StatusCodeError) Error() string {
	if e.StatusCode == StatusUnknown {
		return "httpexec: response status unknown"
	}
	return fmt.Sprintf("httpexec: unexpected status %d", e.StatusCode)
}

// NewStatusCodeError creates a StatusCodeError, normalizing unreadable
// status codes to StatusUnknown.
func NewStatusCodeError(statusCode int, body string) *StatusCodeError {
	if statusCode <= 0 {
		statusCode = StatusUnknown
	}
	return &StatusCodeError{StatusCode: statusCode, Body: body}
}

// classifyStatus maps a terminal status code and accumulated body text to
// nil (success) or a StatusCodeError. The accepted range is [200, 300).
func classifyStatus(statusCode int, body string) error {
	if statusCode >= 200 && statusCode < 300 {
		return nil
	}
	return NewStatusCodeError(statusCode, body)
}

// IsInvalidPathname checks if an error is an InvalidPathnameError.
func IsInvalidPathname(err error) bool {
	var e *InvalidPathnameError
	return errors.As(err, &e)
}

// IsStatusCode checks if an error is a StatusCodeError.
func IsStatusCode(err error) bool {
	var e *StatusCodeError
	return errors.As(err, &e)
}

// StatusCode extracts the status carried by a StatusCodeError.
// The second return is false for every other error.
func StatusCode(err error) (int, bool) {
	var e *StatusCodeError
	if errors.As(err, &e) {
		return e.StatusCode, true
	}
	return 0, false
}
