package client

import (
	"errors"
	"fmt"

	clienterrors "github.com/flightai/csbot/client/internal/errors"
)

// RequestError is returned when the backend answers with a non-2xx status.
// Its Error() is the fixed message of the operation, e.g. "Failed to fetch trips".
type RequestError = clienterrors.RequestError

// ErrorCategory tells whether repeating a failed request can help.
type ErrorCategory = clienterrors.ErrorCategory

const (
	Recoverable   = clienterrors.Recoverable
	Irrecoverable = clienterrors.Irrecoverable
)

// IsRequestError reports whether err is (or wraps) a *RequestError.
func IsRequestError(err error) bool {
	var re *RequestError
	return errors.As(err, &re)
}

// IsDecodeError reports whether err came from decoding a response body.
func IsDecodeError(err error) bool { return clienterrors.IsDecodeError(err) }

// ErrNoIngestionJob is returned by AwaitIngestion when the backend reports no job.
var ErrNoIngestionJob = errors.New("no ingestion job found")

// ErrIngestionTimeout is returned when polling gave up before the job finished.
var ErrIngestionTimeout = errors.New("ingestion job did not finish in time")

// IngestionFailedError reports a job that ended in FAILED or STOPPED.
type IngestionFailedError struct {
	Job IngestionJob
}

func (e *IngestionFailedError) Error() string {
	return fmt.Sprintf("ingestion job %s ended with status %s", e.Job.IngestionJobID, e.Job.Status)
}
