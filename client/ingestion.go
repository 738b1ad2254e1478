package client

import (
	"context"
	"fmt"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	clienterrors "github.com/flightai/csbot/client/internal/errors"
	"github.com/rs/zerolog/log"
)

// AwaitIngestion polls GetSyncStatus until the ingestion job reaches a
// terminal status. Waits grow exponentially from the poll interval and stop
// after the configured max wait.
//
//   - COMPLETE returns the job.
//   - FAILED or STOPPED returns *IngestionFailedError.
//   - A response without a job returns ErrNoIngestionJob.
//   - Irrecoverable status errors and decode errors are returned at once;
//     recoverable ones (5xx, 408, 429, transport) are polled through.
func (c *Client) AwaitIngestion(ctx context.Context) (*IngestionJob, error) {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = c.pollInterval
	exp.Multiplier = 1.5
	exp.MaxInterval = 15 * c.pollInterval
	exp.MaxElapsedTime = c.pollMaxWait
	exp.Reset()

	last := "unknown"
	for {
		sr, err := c.GetSyncStatus(ctx)
		switch {
		case err == nil:
			job := sr.IngestionJob
			if job == nil {
				return nil, ErrNoIngestionJob
			}
			ingestionPollsTotal.WithLabelValues(job.Status).Inc()
			if job.Terminal() {
				if job.Status == IngestionComplete {
					return job, nil
				}
				return nil, &IngestionFailedError{Job: *job}
			}
			last = job.Status
		case ctx.Err() != nil:
			return nil, ctx.Err()
		case clienterrors.IsIrrecoverable(err), clienterrors.IsDecodeError(err):
			return nil, err
		default:
			ingestionPollsTotal.WithLabelValues("error").Inc()
			log.Debug().Err(err).Msg("sync status poll failed; retrying")
			last = err.Error()
		}

		wait := exp.NextBackOff()
		if wait == backoff.Stop {
			return nil, fmt.Errorf("%w (last status: %s)", ErrIngestionTimeout, last)
		}
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}
