package api

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// seen captures what the stub server received so assertions run on the test goroutine.
type seen struct {
	mu          sync.Mutex
	method      string
	requestURI  string
	contentType string
	body        []byte
}

func (s *seen) get() seen {
	s.mu.Lock()
	defer s.mu.Unlock()
	return seen{method: s.method, requestURI: s.requestURI, contentType: s.contentType, body: s.body}
}

// stubServer answers every request with status and body and records the last request.
func stubServer(t *testing.T, status int, body string) (*httptest.Server, *seen) {
	t.Helper()
	s := &seen{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf, _ := io.ReadAll(r.Body)
		s.mu.Lock()
		s.method = r.Method
		s.requestURI = r.RequestURI
		s.contentType = r.Header.Get("Content-Type")
		s.body = buf
		s.mu.Unlock()
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, s
}
