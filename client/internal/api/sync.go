package api

import (
	"context"
	"net/http"

	"github.com/flightai/csbot/client/internal/types"
)

// SyncKnowledgeBase asks the admin service to start a knowledge-base ingestion.
func SyncKnowledgeBase(ctx context.Context, httpClient HTTPClient, baseURL string) (*types.SyncResponse, error) {
	return syncRequest(ctx, httpClient, http.MethodPost, baseURL, OpSyncKnowledgeBase, "Failed to sync knowledge base")
}

// GetSyncStatus returns the most recent ingestion job, if any.
func GetSyncStatus(ctx context.Context, httpClient HTTPClient, baseURL string) (*types.SyncResponse, error) {
	return syncRequest(ctx, httpClient, http.MethodGet, baseURL, OpGetSyncStatus, "Failed to fetch sync status")
}

func syncRequest(ctx context.Context, httpClient HTTPClient, method, baseURL, op, failMsg string) (*types.SyncResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpReq, err := newJSONRequest(ctx, method, endpoint(baseURL, "/api/sync"), nil)
	if err != nil {
		return nil, err
	}
	resp, err := send(httpClient, httpReq, op, failMsg)
	if err != nil {
		return nil, err
	}

	var sr types.SyncResponse
	if err := decodeBody(resp, &sr); err != nil {
		return nil, err
	}
	return &sr, nil
}
