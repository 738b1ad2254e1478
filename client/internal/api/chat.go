package api

import (
	"context"
	"net/http"

	"github.com/flightai/csbot/client/internal/types"
)

// LoadChatHistory fetches the conversation and returns its messages in order.
func LoadChatHistory(ctx context.Context, httpClient HTTPClient, baseURL string) ([]types.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodGet, endpoint(baseURL, "/api/chat"), nil)
	if err != nil {
		return nil, err
	}
	resp, err := send(httpClient, httpReq, OpLoadChatHistory, "Failed to fetch chat history")
	if err != nil {
		return nil, err
	}

	var history types.ChatHistory
	if err := decodeBody(resp, &history); err != nil {
		return nil, err
	}
	return history.Messages, nil
}
