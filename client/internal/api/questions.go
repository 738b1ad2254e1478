package api

import (
	"context"
	"net/http"

	"github.com/flightai/csbot/client/internal/types"
)

// ListQuestions returns every FAQ question known to the admin service.
func ListQuestions(ctx context.Context, httpClient HTTPClient, baseURL string) ([]types.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodGet, endpoint(baseURL, "/api/questions"), nil)
	if err != nil {
		return nil, err
	}
	resp, err := send(httpClient, httpReq, OpListQuestions, "Failed to fetch questions")
	if err != nil {
		return nil, err
	}

	var questions []types.Question
	if err := decodeBody(resp, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// UpdateQuestion applies a partial update. Omitted payload fields are not
// sent; Null fields are sent as JSON null.
func UpdateQuestion(ctx context.Context, httpClient HTTPClient, baseURL, questionID string, payload types.UpdateQuestionPayload) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodPatch, endpoint(baseURL, "/api/questions", questionID), payload)
	if err != nil {
		return err
	}
	resp, err := send(httpClient, httpReq, OpUpdateQuestion, "Failed to update question")
	if err != nil {
		return err
	}
	_ = resp.Body.Close()
	return nil
}
