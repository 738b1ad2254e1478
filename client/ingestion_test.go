package client_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/flightai/csbot/client"
	"github.com/flightai/csbot/internal/apitest"
)

func syncBody(status string) client.SyncResponse {
	return client.SyncResponse{
		Status: "ok",
		IngestionJob: &client.IngestionJob{
			KnowledgeBaseID: "KB1", DataSourceID: "DS1", IngestionJobID: "J1", Status: status,
			CreatedAt: "2025-08-01T12:00:00Z", UpdatedAt: "2025-08-01T12:00:05Z",
		},
	}
}

func fastPolling(t *testing.T, b *apitest.Backend) *client.Client {
	return newTestClient(t, b, client.WithPollInterval(time.Millisecond), client.WithPollMaxWait(2*time.Second))
}

func TestAwaitIngestion_Complete(t *testing.T) {
	t.Parallel()
	b := apitest.New()
	defer b.Close()
	b.Enqueue(apitest.SyncStatus, http.StatusOK, syncBody(client.IngestionStarting))
	b.Enqueue(apitest.SyncStatus, http.StatusOK, syncBody(client.IngestionInProgress))
	b.Enqueue(apitest.SyncStatus, http.StatusBadGateway, ``)
	b.Respond(apitest.SyncStatus, http.StatusOK, syncBody(client.IngestionComplete))

	job, err := fastPolling(t, b).AwaitIngestion(context.Background())
	if err != nil {
		t.Fatalf("AwaitIngestion: %v", err)
	}
	if job.Status != client.IngestionComplete || job.IngestionJobID != "J1" {
		t.Fatalf("unexpected job: %+v", job)
	}
	if got := len(b.RequestsFor(apitest.SyncStatus)); got != 4 {
		t.Fatalf("expected 4 polls, got %d", got)
	}
}

func TestAwaitIngestion_Failed(t *testing.T) {
	t.Parallel()
	b := apitest.New()
	defer b.Close()
	b.Respond(apitest.SyncStatus, http.StatusOK, syncBody(client.IngestionFailed))

	_, err := fastPolling(t, b).AwaitIngestion(context.Background())
	var failed *client.IngestionFailedError
	if !errors.As(err, &failed) || failed.Job.Status != client.IngestionFailed {
		t.Fatalf("expected IngestionFailedError, got %v", err)
	}
}

func TestAwaitIngestion_NoJob(t *testing.T) {
	t.Parallel()
	b := apitest.New()
	defer b.Close()

	if _, err := fastPolling(t, b).AwaitIngestion(context.Background()); !errors.Is(err, client.ErrNoIngestionJob) {
		t.Fatalf("expected ErrNoIngestionJob, got %v", err)
	}
}

func TestAwaitIngestion_StopsOnIrrecoverable(t *testing.T) {
	t.Parallel()
	b := apitest.New()
	defer b.Close()
	b.Respond(apitest.SyncStatus, http.StatusNotFound, ``)

	_, err := fastPolling(t, b).AwaitIngestion(context.Background())
	if err == nil || err.Error() != "Failed to fetch sync status" {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(b.RequestsFor(apitest.SyncStatus)); got != 1 {
		t.Fatalf("404 must not be polled again, got %d polls", got)
	}
}

func TestAwaitIngestion_Timeout(t *testing.T) {
	t.Parallel()
	b := apitest.New()
	defer b.Close()
	b.Respond(apitest.SyncStatus, http.StatusOK, syncBody(client.IngestionInProgress))

	c := newTestClient(t, b, client.WithPollInterval(time.Millisecond), client.WithPollMaxWait(20*time.Millisecond))
	_, err := c.AwaitIngestion(context.Background())
	if !errors.Is(err, client.ErrIngestionTimeout) {
		t.Fatalf("expected ErrIngestionTimeout, got %v", err)
	}
}

func TestAwaitIngestion_ContextCanceled(t *testing.T) {
	t.Parallel()
	b := apitest.New()
	defer b.Close()
	b.Respond(apitest.SyncStatus, http.StatusOK, syncBody(client.IngestionInProgress))

	c := newTestClient(t, b, client.WithPollInterval(50*time.Millisecond))
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := c.AwaitIngestion(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// failingReader yields a prefix of the body and then the read error a
// dropped connection produces.
type failingReader struct{ r io.Reader }

func (f failingReader) Read(p []byte) (int, error) {
	n, err := f.r.Read(p)
	if err == io.EOF {
		return n, io.ErrUnexpectedEOF
	}
	return n, err
}

func TestAwaitIngestion_TruncatedBodyIsPolledThrough(t *testing.T) {
	t.Parallel()
	b := apitest.New()
	defer b.Close()
	b.Respond(apitest.SyncStatus, http.StatusOK, syncBody(client.IngestionComplete))

	base := b.Client().Transport
	var calls atomic.Int32
	hc := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		resp, err := base.RoundTrip(r)
		if err != nil || calls.Add(1) > 1 {
			return resp, err
		}
		_ = resp.Body.Close()
		resp.Body = io.NopCloser(failingReader{strings.NewReader(`{"status":"ok"`)})
		return resp, nil
	})}

	c, err := client.New(b.URL(), client.WithHTTPClient(hc),
		client.WithPollInterval(time.Millisecond), client.WithPollMaxWait(2*time.Second))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	job, err := c.AwaitIngestion(context.Background())
	if err != nil {
		t.Fatalf("AwaitIngestion: %v", err)
	}
	if job.Status != client.IngestionComplete {
		t.Fatalf("unexpected job: %+v", job)
	}
	if got := len(b.RequestsFor(apitest.SyncStatus)); got != 2 {
		t.Fatalf("expected 2 polls, got %d", got)
	}
}
