package client

import (
	"context"
	"errors"
	"time"

	clienterrors "github.com/flightai/csbot/client/internal/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "csbot_client",
			Name:      "requests_total",
			Help:      "Backend calls by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "csbot_client",
			Name:      "request_duration_seconds",
			Help:      "Wall time of backend calls, including body decoding.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	ingestionPollsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "csbot_client",
			Name:      "ingestion_polls_total",
			Help:      "AwaitIngestion polls by observed job status.",
		},
		[]string{"status"},
	)
)

// Outcome labels.
const (
	outcomeOK        = "ok"
	outcomeStatus    = "status"
	outcomeDecode    = "decode"
	outcomeCanceled  = "canceled"
	outcomeTransport = "transport"
)

func observe(op string, start time.Time, err error) {
	requestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	requestsTotal.WithLabelValues(op, outcomeOf(err)).Inc()
}

func outcomeOf(err error) string {
	var re *clienterrors.RequestError
	switch {
	case err == nil:
		return outcomeOK
	case errors.As(err, &re):
		return outcomeStatus
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return outcomeCanceled
	case clienterrors.IsDecodeError(err):
		return outcomeDecode
	default:
		return outcomeTransport
	}
}
