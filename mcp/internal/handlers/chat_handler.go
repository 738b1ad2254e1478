package handlers

import (
	"context"
	"time"

	"github.com/flightai/csbot/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"
)

// ChatHandler exposes the conversation history.
type ChatHandler struct {
	client *client.Client
}

func NewChatHandler(c *client.Client) *ChatHandler { return &ChatHandler{client: c} }

func (ch *ChatHandler) RegisterTools(s *server.MCPServer) error {
	history := mcp.NewTool("load_chat_history",
		mcp.WithDescription("Load the conversation so far as an ordered list of {role, text} messages"),
	)
	s.AddTool(history, ch.handleLoadChatHistory)
	return nil
}

// handleLoadChatHistory flattens each message's content blocks into one text.
func (ch *ChatHandler) handleLoadChatHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log.Debug().Msg("load_chat_history invoked")

	start := time.Now()
	msgs, err := ch.client.LoadChatHistory(ctx)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Dur("elapsed", elapsed).Msg("load_chat_history failed")
		return mcp.NewToolResultError(err.Error()), nil
	}

	type lite struct {
		Role client.Role `json:"role"`
		Text string      `json:"text"`
	}
	out := make([]lite, len(msgs))
	for i, m := range msgs {
		out[i] = lite{Role: m.Role, Text: m.Text()}
	}
	return jsonResult(out)
}
