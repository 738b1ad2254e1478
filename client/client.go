package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/flightai/csbot/client/internal/api"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client talks to the FlightAI customer-service backend. It holds only
// immutable configuration; every method is one independent round trip and
// the Client is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration

	bearerToken string
	requestIDs  bool
	debug       bool

	pollInterval time.Duration
	pollMaxWait  time.Duration
}

// New constructs a Client for the backend at baseURL. A missing scheme
// defaults to http. Additional options can be provided via functional
// arguments.
func New(baseURL string, opts ...Option) (*Client, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	c := &Client{
		baseURL:      normalized,
		http:         &http.Client{},
		pollInterval: 2 * time.Second,
		pollMaxWait:  10 * time.Minute,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.wrapTransport()
	return c, nil
}

// BaseURL returns the normalized backend URL.
func (c *Client) BaseURL() string { return c.baseURL }

// normalizeBaseURL adds a scheme when missing and drops trailing slashes.
// A path prefix is kept so the backend may live under a sub-path.
func normalizeBaseURL(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", fmt.Errorf("base URL cannot be empty")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid base URL %q", raw)
	}
	u.RawQuery = ""
	u.Fragment = ""
	return strings.TrimRight(u.String(), "/"), nil
}

// wrapTransport layers the configured round trippers and applies the
// timeout. The debug logger sits innermost so it sees the headers added by
// the outer wrappers.
func (c *Client) wrapTransport() {
	transport := c.http.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	if c.debug {
		transport = &debugTransport{base: transport}
	}
	if c.requestIDs {
		transport = &requestIDTransport{base: transport}
	}
	if c.bearerToken != "" {
		transport = &bearerTransport{base: transport, token: c.bearerToken}
	}
	c.http.Transport = transport
	if c.timeout > 0 {
		c.http.Timeout = c.timeout
	}
}

// --------------------------------------------------------------------
// Chat operations - delegated to internal/api
// --------------------------------------------------------------------

// LoadChatHistory returns the conversation's messages in order.
func (c *Client) LoadChatHistory(ctx context.Context) ([]Message, error) {
	start := time.Now()
	msgs, err := api.LoadChatHistory(ctx, c.http, c.baseURL)
	observe(api.OpLoadChatHistory, start, err)
	return msgs, err
}

// --------------------------------------------------------------------
// Trip operations - delegated to internal/api
// --------------------------------------------------------------------

// LoadTrips returns the caller's trips.
func (c *Client) LoadTrips(ctx context.Context) ([]Trip, error) {
	start := time.Now()
	trips, err := api.LoadTrips(ctx, c.http, c.baseURL)
	observe(api.OpLoadTrips, start, err)
	return trips, err
}

// LoadTripDetails returns a trip's name and flights. tripID is treated as
// an opaque string and escaped into the path.
func (c *Client) LoadTripDetails(ctx context.Context, tripID string) (*FullTrip, error) {
	start := time.Now()
	trip, err := api.LoadTripDetails(ctx, c.http, c.baseURL, tripID)
	observe(api.OpLoadTripDetails, start, err)
	return trip, err
}

// RenameTrip changes a trip's display name.
func (c *Client) RenameTrip(ctx context.Context, tripID, newName string) error {
	start := time.Now()
	err := api.RenameTrip(ctx, c.http, c.baseURL, tripID, newName)
	observe(api.OpRenameTrip, start, err)
	return err
}

// --------------------------------------------------------------------
// Admin operations - delegated to internal/api
// --------------------------------------------------------------------

// ListQuestions returns the FAQ questions managed by the admin service.
func (c *Client) ListQuestions(ctx context.Context) ([]Question, error) {
	start := time.Now()
	qs, err := api.ListQuestions(ctx, c.http, c.baseURL)
	observe(api.OpListQuestions, start, err)
	return qs, err
}

// UpdateQuestion applies a partial update to a question.
func (c *Client) UpdateQuestion(ctx context.Context, questionID string, payload UpdateQuestionPayload) error {
	start := time.Now()
	err := api.UpdateQuestion(ctx, c.http, c.baseURL, questionID, payload)
	observe(api.OpUpdateQuestion, start, err)
	return err
}

// SyncKnowledgeBase triggers a knowledge-base ingestion.
func (c *Client) SyncKnowledgeBase(ctx context.Context) (*SyncResponse, error) {
	start := time.Now()
	sr, err := api.SyncKnowledgeBase(ctx, c.http, c.baseURL)
	observe(api.OpSyncKnowledgeBase, start, err)
	return sr, err
}

// GetSyncStatus reports the latest ingestion job.
func (c *Client) GetSyncStatus(ctx context.Context) (*SyncResponse, error) {
	start := time.Now()
	sr, err := api.GetSyncStatus(ctx, c.http, c.baseURL)
	observe(api.OpGetSyncStatus, start, err)
	return sr, err
}
