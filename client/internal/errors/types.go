// Package errors provides the error taxonomy of the client SDK.
// Status failures carry a fixed per-operation message; the category lets
// pollers decide whether asking again can help.
package errors

import "fmt"

// ErrorCategory determines how errors should be handled by polling logic.
type ErrorCategory int

const (
	// Recoverable errors may succeed if the request is repeated later.
	// Examples: 500 Internal Server Error, 429 Too Many Requests.
	Recoverable ErrorCategory = iota

	// Irrecoverable errors will fail the same way on every attempt.
	// Examples: 401 Unauthorized, 404 Not Found, 400 Bad Request.
	Irrecoverable
)

// String returns a human-readable representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// RequestError is returned when the server answers with a non-2xx status.
// Error() yields only the fixed operation message; the response body is
// never inspected.
type RequestError struct {
	Op         string // operation name, e.g. "load_trips"
	Message    string // fixed, operation-specific message
	StatusCode int
	Category   ErrorCategory
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	return e.Message
}

// IsIrrecoverable returns true if repeating the request cannot succeed.
func IsIrrecoverable(err error) bool {
	var re *RequestError
	if As(err, &re) {
		return re.Category == Irrecoverable
	}
	return false
}
