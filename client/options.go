package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"
)

// Option configures a Client during construction in New.
//
// Options only record settings; New assembles the transport chain after all
// options ran, so their order does not matter.
type Option func(*Client) error

// WithHTTPClient injects a custom *http.Client. The client is copied, so the
// caller's value is never mutated by the transport wrappers.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("nil http client")
		}
		clone := *hc
		c.http = &clone
		return nil
	}
}

// WithHTTPTimeout bounds every request, including reading the body.
//
// The SDK sets no timeout by default; prefer per-call context deadlines.
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.timeout = d
		return nil
	}
}

// WithDebugLogging logs every request/response at debug level when enabled.
// Do not enable this option in production environments; dumps include
// headers and bodies.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		c.debug = c.debug || enabled
		return nil
	}
}

// WithBearerToken sends "Authorization: Bearer <token>" on every request.
func WithBearerToken(token string) Option {
	return func(c *Client) error {
		if token == "" {
			return fmt.Errorf("bearer token cannot be empty")
		}
		c.bearerToken = token
		return nil
	}
}

// WithRequestIDs tags every request with a fresh X-Request-Id.
func WithRequestIDs(enabled bool) Option {
	return func(c *Client) error {
		c.requestIDs = enabled
		return nil
	}
}

// WithPollInterval sets the first wait between AwaitIngestion polls.
func WithPollInterval(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("poll interval must be > 0")
		}
		c.pollInterval = d
		return nil
	}
}

// WithPollMaxWait bounds the total time AwaitIngestion keeps polling.
func WithPollMaxWait(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("poll max wait must be > 0")
		}
		c.pollMaxWait = d
		return nil
	}
}
