package client

import (
	"context"
	"net/http"
	"testing"
	"time"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestNew_RejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		base string
		opts []Option
	}{
		{"empty base", "", nil},
		{"no host", "http://", nil},
		{"nil http client", "http://example.com", []Option{WithHTTPClient(nil)}},
		{"zero timeout", "http://example.com", []Option{WithHTTPTimeout(0)}},
		{"empty token", "http://example.com", []Option{WithBearerToken("")}},
		{"zero poll interval", "http://example.com", []Option{WithPollInterval(0)}},
		{"negative max wait", "http://example.com", []Option{WithPollMaxWait(-time.Second)}},
	}
	for _, c := range cases {
		if _, err := New(c.base, c.opts...); err == nil {
			t.Fatalf("%s: expected error", c.name)
		}
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	cases := map[string]string{
		"localhost:8000":               "http://localhost:8000",
		"https://api.example.com/":     "https://api.example.com",
		"https://api.example.com/v1//": "https://api.example.com/v1",
		"http://h:1/prefix?x=1#frag":   "http://h:1/prefix",
	}
	for in, want := range cases {
		got, err := normalizeBaseURL(in)
		if err != nil || got != want {
			t.Fatalf("normalizeBaseURL(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
}

func TestNew_DefaultsHaveNoTimeout(t *testing.T) {
	c, err := New("http://example.com")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.http.Timeout != 0 {
		t.Fatalf("default timeout = %v, want none", c.http.Timeout)
	}
	if c.http.Transport != http.DefaultTransport {
		t.Fatalf("unexpected transport %T", c.http.Transport)
	}
}

func TestWithHTTPClient_DoesNotMutateCaller(t *testing.T) {
	hc := &http.Client{}
	c, err := New("http://example.com", WithHTTPTimeout(3*time.Second), WithHTTPClient(hc), WithBearerToken("t"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if hc.Transport != nil || hc.Timeout != 0 {
		t.Fatalf("caller's client was mutated: %+v", hc)
	}
	if c.http.Timeout != 3*time.Second {
		t.Fatalf("timeout lost regardless of option order: %v", c.http.Timeout)
	}
}

func TestTransportChain_Order(t *testing.T) {
	var seen http.Header
	base := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		seen = r.Header.Clone()
		return &http.Response{StatusCode: 200, Body: http.NoBody, Header: make(http.Header), Request: r}, nil
	})
	c, err := New("http://example.com",
		WithHTTPClient(&http.Client{Transport: base}),
		WithDebugLogging(true),
		WithRequestIDs(true),
		WithBearerToken("tok"),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	bt, ok := c.http.Transport.(*bearerTransport)
	if !ok {
		t.Fatalf("outermost transport = %T", c.http.Transport)
	}
	rt, ok := bt.base.(*requestIDTransport)
	if !ok {
		t.Fatalf("second transport = %T", bt.base)
	}
	if _, ok := rt.base.(*debugTransport); !ok {
		t.Fatalf("innermost wrapper = %T", rt.base)
	}

	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com/api/trips", http.NoBody)
	if _, err := c.http.Do(req); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if seen.Get("Authorization") != "Bearer tok" || seen.Get("X-Request-Id") == "" {
		t.Fatalf("base transport saw headers %v", seen)
	}
	if req.Header.Get("Authorization") != "" {
		t.Fatal("caller's request was mutated")
	}
}

func TestRequestIDTransport_KeepsCallerID(t *testing.T) {
	var got string
	rt := &requestIDTransport{base: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		got = r.Header.Get(requestIDHeader)
		return &http.Response{StatusCode: 204, Body: http.NoBody, Header: make(http.Header)}, nil
	})}
	req, _ := http.NewRequest(http.MethodGet, "http://example.com", http.NoBody)
	req.Header.Set(requestIDHeader, "caller-id")
	if _, err := rt.RoundTrip(req); err != nil {
		t.Fatalf("RoundTrip: %v", err)
	}
	if got != "caller-id" {
		t.Fatalf("request id = %q", got)
	}
}

func TestNew_AutoEnableDebugViaEnv(t *testing.T) {
	t.Setenv("CSBOT_DEBUG", "true")
	c, err := New("http://example.com")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := c.http.Transport.(*debugTransport); !ok {
		t.Fatalf("expected debugTransport to be installed when CSBOT_DEBUG=true")
	}
}

func TestDebugTransport_ErrorPath(t *testing.T) {
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return nil, context.DeadlineExceeded
	})
	c, err := New("http://example.com", WithHTTPClient(&http.Client{Transport: rt}), WithDebugLogging(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", http.NoBody)
	if _, err := c.http.Do(req); err == nil {
		t.Fatalf("expected error from underlying transport")
	}
}
