// Package apitest provides an in-process fake of the customer-service
// backend for tests. Routes match on the escaped path, so an ID that was
// not escaped as a single segment fails to route instead of silently
// hitting another handler.
package apitest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"

	"github.com/gorilla/mux"
)

// Route names accepted by Respond, Enqueue and RequestsFor.
const (
	ChatHistory    = "chat-history"
	Trips          = "trips"
	TripDetails    = "trip-details"
	RenameTrip     = "rename-trip"
	Questions      = "questions"
	UpdateQuestion = "update-question"
	Sync           = "sync"
	SyncStatus     = "sync-status"
)

// Request is what the backend received.
type Request struct {
	Route  string
	Method string
	RawURI string            // request target exactly as sent
	Vars   map[string]string // path variables, unescaped
	Header http.Header
	Body   []byte
}

type reply struct {
	status int
	body   []byte
}

// Backend is a fake backend listening on a local port.
type Backend struct {
	srv *httptest.Server

	mu       sync.Mutex
	defaults map[string]reply
	queued   map[string][]reply
	requests []Request
}

// New starts a Backend whose routes answer 2xx with empty payloads.
func New() *Backend {
	b := &Backend{
		defaults: map[string]reply{
			ChatHistory:    {http.StatusOK, []byte(`{"messages":[]}`)},
			Trips:          {http.StatusOK, []byte(`[]`)},
			TripDetails:    {http.StatusOK, []byte(`{"name":"","flights":[]}`)},
			RenameTrip:     {http.StatusNoContent, nil},
			Questions:      {http.StatusOK, []byte(`[]`)},
			UpdateQuestion: {http.StatusNoContent, nil},
			Sync:           {http.StatusOK, []byte(`{"status":"no_changes","ingestionJob":null}`)},
			SyncStatus:     {http.StatusOK, []byte(`{"status":"idle","ingestionJob":null}`)},
		},
		queued: make(map[string][]reply),
	}

	r := mux.NewRouter().UseEncodedPath()
	r.HandleFunc("/api/chat", b.handle(ChatHistory)).Methods(http.MethodGet)
	r.HandleFunc("/api/trips", b.handle(Trips)).Methods(http.MethodGet)
	r.HandleFunc("/api/trip/{tripId}", b.handle(TripDetails)).Methods(http.MethodGet)
	r.HandleFunc("/api/trips/{tripId}/rename", b.handle(RenameTrip)).Methods(http.MethodPost)
	r.HandleFunc("/api/questions", b.handle(Questions)).Methods(http.MethodGet)
	r.HandleFunc("/api/questions/{questionId}", b.handle(UpdateQuestion)).Methods(http.MethodPatch)
	r.HandleFunc("/api/sync", b.handle(Sync)).Methods(http.MethodPost)
	r.HandleFunc("/api/sync", b.handle(SyncStatus)).Methods(http.MethodGet)

	b.srv = httptest.NewServer(r)
	return b
}

// URL is the base URL to hand to the client.
func (b *Backend) URL() string { return b.srv.URL }

// Client returns an *http.Client wired to the backend.
func (b *Backend) Client() *http.Client { return b.srv.Client() }

// Close shuts the server down.
func (b *Backend) Close() { b.srv.Close() }

// Respond sets the reply a route gives whenever nothing is queued.
// body may be a string or []byte (sent verbatim) or any JSON-encodable value.
func (b *Backend) Respond(route string, status int, body any) {
	rep := reply{status: status, body: encode(body)}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.defaults[route] = rep
}

// Enqueue adds a one-shot reply; queued replies are served FIFO before the default.
func (b *Backend) Enqueue(route string, status int, body any) {
	rep := reply{status: status, body: encode(body)}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.queued[route] = append(b.queued[route], rep)
}

// Requests returns every request received so far.
func (b *Backend) Requests() []Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Request(nil), b.requests...)
}

// RequestsFor returns the requests received on route.
func (b *Backend) RequestsFor(route string) []Request {
	var out []Request
	for _, r := range b.Requests() {
		if r.Route == route {
			out = append(out, r)
		}
	}
	return out
}

func (b *Backend) handle(route string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		vars := make(map[string]string)
		for k, v := range mux.Vars(r) {
			if dec, err := url.PathUnescape(v); err == nil {
				v = dec
			}
			vars[k] = v
		}

		b.mu.Lock()
		b.requests = append(b.requests, Request{
			Route:  route,
			Method: r.Method,
			RawURI: r.RequestURI,
			Vars:   vars,
			Header: r.Header.Clone(),
			Body:   body,
		})
		rep := b.defaults[route]
		if q := b.queued[route]; len(q) > 0 {
			rep, b.queued[route] = q[0], q[1:]
		}
		b.mu.Unlock()

		if len(rep.body) > 0 {
			w.Header().Set("Content-Type", "application/json")
		}
		w.WriteHeader(rep.status)
		_, _ = w.Write(rep.body)
	}
}

func encode(body any) []byte {
	switch v := body.(type) {
	case nil:
		return nil
	case string:
		return []byte(v)
	case []byte:
		return v
	}
	b, err := json.Marshal(body)
	if err != nil {
		panic(fmt.Sprintf("apitest: cannot encode reply: %v", err))
	}
	return b
}
