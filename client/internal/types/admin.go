package types

import "time"

// ------------------------------
// Admin: FAQ questions
// ------------------------------

// Question is an FAQ entry curated through the admin UI.
type Question struct {
	QuestionID string  `json:"question_id"`
	Question   string  `json:"question"`
	Answer     *string `json:"answer"`
	Processed  bool    `json:"processed"`
}

// UpdateQuestionPayload is a partial update. An omitted field leaves the
// server value unchanged; Null clears it.
type UpdateQuestionPayload struct {
	Question Optional[string] `json:"question,omitzero"`
	Answer   Optional[string] `json:"answer,omitzero"`
}

// ------------------------------
// Admin: knowledge-base ingestion
// ------------------------------

// Ingestion job statuses reported by the knowledge-base service.
const (
	IngestionStarting   = "STARTING"
	IngestionInProgress = "IN_PROGRESS"
	IngestionComplete   = "COMPLETE"
	IngestionFailed     = "FAILED"
	IngestionStopping   = "STOPPING"
	IngestionStopped    = "STOPPED"
)

// IngestionJob tracks an asynchronous knowledge-base data sync.
type IngestionJob struct {
	KnowledgeBaseID string `json:"knowledgeBaseId"`
	DataSourceID    string `json:"dataSourceId"`
	IngestionJobID  string `json:"ingestionJobId"`
	Status          string `json:"status"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

// Terminal reports whether the job will not change status again.
func (j IngestionJob) Terminal() bool {
	switch j.Status {
	case IngestionComplete, IngestionFailed, IngestionStopped:
		return true
	}
	return false
}

// Created parses CreatedAt as RFC 3339.
func (j IngestionJob) Created() (time.Time, error) {
	return time.Parse(time.RFC3339, j.CreatedAt)
}

// Updated parses UpdatedAt as RFC 3339.
func (j IngestionJob) Updated() (time.Time, error) {
	return time.Parse(time.RFC3339, j.UpdatedAt)
}

// SyncResponse is returned by the sync endpoints. A nil IngestionJob means
// no job was triggered or found.
type SyncResponse struct {
	Status       string        `json:"status"`
	IngestionJob *IngestionJob `json:"ingestionJob"`
}
