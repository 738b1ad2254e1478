package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	clienterrors "github.com/flightai/csbot/client/internal/errors"
	"github.com/flightai/csbot/client/internal/types"
)

func TestLoadChatHistory_Success(t *testing.T) {
	t.Parallel()
	srv, got := stubServer(t, http.StatusOK, `{"messages":[
		{"role":"user","content":[{"text":"hi"}]},
		{"role":"assistant","content":[{"text":"hello"},{"text":" there"}]}]}`)

	msgs, err := LoadChatHistory(context.Background(), srv.Client(), srv.URL)
	if err != nil {
		t.Fatalf("LoadChatHistory: %v", err)
	}
	want := []types.Message{
		{Role: types.RoleUser, Content: []types.MessageContent{{Text: "hi"}}},
		{Role: types.RoleAssistant, Content: []types.MessageContent{{Text: "hello"}, {Text: " there"}}},
	}
	if len(msgs) != len(want) {
		t.Fatalf("got %d messages", len(msgs))
	}
	for i := range want {
		if msgs[i].Role != want[i].Role || msgs[i].Text() != want[i].Text() {
			t.Fatalf("message %d = %+v, want %+v", i, msgs[i], want[i])
		}
	}
	req := got.get()
	if req.method != http.MethodGet || req.requestURI != "/api/chat" {
		t.Fatalf("unexpected request %s %s", req.method, req.requestURI)
	}
}

func TestLoadChatHistory_StatusIgnoresBody(t *testing.T) {
	t.Parallel()
	srv, _ := stubServer(t, http.StatusInternalServerError, `{"error":"x"}`)
	_, err := LoadChatHistory(context.Background(), srv.Client(), srv.URL)
	var re *clienterrors.RequestError
	if !errors.As(err, &re) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if err.Error() != "Failed to fetch chat history" || re.StatusCode != 500 || re.Op != OpLoadChatHistory {
		t.Fatalf("unexpected error: %+v", re)
	}
}

func TestLoadChatHistory_MalformedJSON(t *testing.T) {
	t.Parallel()
	srv, _ := stubServer(t, http.StatusOK, `{"messages":[`)
	msgs, err := LoadChatHistory(context.Background(), srv.Client(), srv.URL)
	if err == nil || msgs != nil {
		t.Fatalf("expected decode failure, got msgs=%v err=%v", msgs, err)
	}
	var syntaxErr *json.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("expected *json.SyntaxError, got %T", err)
	}
}

func TestLoadChatHistory_UnknownRole(t *testing.T) {
	t.Parallel()
	srv, _ := stubServer(t, http.StatusOK, `{"messages":[{"role":"tool","content":[]}]}`)
	if _, err := LoadChatHistory(context.Background(), srv.Client(), srv.URL); !clienterrors.IsDecodeError(err) {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestLoadChatHistory_HTTPDoError(t *testing.T) {
	t.Parallel()
	hc := &http.Client{Transport: &errRT{}}
	_, err := LoadChatHistory(context.Background(), hc, "http://example.com")
	if err == nil {
		t.Fatal("expected transport error")
	}
	var re *clienterrors.RequestError
	if errors.As(err, &re) {
		t.Fatal("transport failure must not become a RequestError")
	}
}

func TestLoadChatHistory_CtxCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	srv, got := stubServer(t, http.StatusOK, `{"messages":[]}`)
	if _, err := LoadChatHistory(ctx, srv.Client(), srv.URL); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if got.get().method != "" {
		t.Fatal("no request should be sent on a cancelled context")
	}
}
