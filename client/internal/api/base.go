package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	clienterrors "github.com/flightai/csbot/client/internal/errors"
)

// HTTPClient interface for dependency injection
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Operation names; used as error Op and metric labels.
const (
	OpLoadChatHistory   = "load_chat_history"
	OpLoadTrips         = "load_trips"
	OpLoadTripDetails   = "load_trip_details"
	OpRenameTrip        = "rename_trip"
	OpListQuestions     = "list_questions"
	OpUpdateQuestion    = "update_question"
	OpSyncKnowledgeBase = "sync_knowledge_base"
	OpGetSyncStatus     = "get_sync_status"
)

// endpoint joins baseURL with a fixed path prefix and optional opaque IDs.
// Each ID is escaped as a single path segment so reserved characters such
// as '/', '?' or '#' cannot change the route.
func endpoint(baseURL, path string, ids ...string) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(baseURL, "/"))
	b.WriteString(path)
	for _, id := range ids {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(id))
	}
	return b.String()
}

// newJSONRequest builds a request; a non-nil payload is encoded as the JSON
// body and sets Content-Type.
func newJSONRequest(ctx context.Context, method, target string, payload any) (*http.Request, error) {
	if payload == nil {
		return http.NewRequestWithContext(ctx, method, target, nil)
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// send performs exactly one round trip. Non-2xx statuses become a
// RequestError carrying failMsg; the body is closed unread in that case.
func send(httpClient HTTPClient, req *http.Request, op, failMsg string) (*http.Response, error) {
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if !clienterrors.Success(resp.StatusCode) {
		_ = resp.Body.Close()
		return nil, clienterrors.NewRequestError(op, failMsg, resp.StatusCode)
	}
	return resp, nil
}

// decodeBody reads the whole body and unmarshals it into v. Trailing data
// after the JSON value is rejected.
func decodeBody(resp *http.Response, v any) error {
	defer func() { _ = resp.Body.Close() }()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}
