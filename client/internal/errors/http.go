package errors

import (
	"encoding/json"
	stderrors "errors"
)

// As is errors.As, re-exported so callers of this package need not alias the
// standard library.
func As(err error, target any) bool { return stderrors.As(err, target) }

// NewRequestError builds the status failure for op.
func NewRequestError(op, message string, statusCode int) *RequestError {
	return &RequestError{
		Op:         op,
		Message:    message,
		StatusCode: statusCode,
		Category:   categoryFor(statusCode),
	}
}

// Success reports whether statusCode is 2xx.
func Success(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}

// categoryFor maps HTTP status codes to error categories.
func categoryFor(statusCode int) ErrorCategory {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case 408, 429:
			return Recoverable
		default:
			return Irrecoverable
		}
	case statusCode >= 500 && statusCode < 600:
		return Recoverable
	default:
		// 1xx/3xx that reached us unfollowed; be conservative.
		return Recoverable
	}
}

// IsDecodeError reports whether err came from decoding a response body.
// Decode errors are returned exactly as encoding/json produced them. A body
// cut short by a dropped connection surfaces as io.ErrUnexpectedEOF from the
// read and is a transport failure, not a decode failure.
func IsDecodeError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return stderrors.As(err, &syntaxErr) || stderrors.As(err, &typeErr)
}
