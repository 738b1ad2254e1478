package types

import (
	"encoding/json"
	"testing"
)

func TestIngestionJob_Terminal(t *testing.T) {
	t.Parallel()
	cases := []struct {
		status string
		want   bool
	}{
		{IngestionStarting, false}, {IngestionInProgress, false}, {IngestionStopping, false},
		{IngestionComplete, true}, {IngestionFailed, true}, {IngestionStopped, true}, {"", false},
	}
	for _, c := range cases {
		if got := (IngestionJob{Status: c.status}).Terminal(); got != c.want {
			t.Fatalf("Terminal(%q) = %v", c.status, got)
		}
	}
}

func TestIngestionJob_Timestamps(t *testing.T) {
	t.Parallel()
	j := IngestionJob{CreatedAt: "2025-08-01T12:00:00Z", UpdatedAt: "not a time"}
	created, err := j.Created()
	if err != nil || created.Year() != 2025 {
		t.Fatalf("Created() = %v, %v", created, err)
	}
	if _, err := j.Updated(); err == nil {
		t.Fatal("expected parse error for UpdatedAt")
	}
}

func TestSyncResponse_NullJob(t *testing.T) {
	t.Parallel()
	var r SyncResponse
	if err := json.Unmarshal([]byte(`{"status":"no_changes","ingestionJob":null}`), &r); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if r.IngestionJob != nil {
		t.Fatalf("expected nil job, got %+v", r.IngestionJob)
	}
}

func TestQuestion_NullableAnswer(t *testing.T) {
	t.Parallel()
	var qs []Question
	raw := `[{"question_id":"q1","question":"Baggage?","answer":null,"processed":false},
		{"question_id":"q2","question":"Pets?","answer":"Small pets only","processed":true}]`
	if err := json.Unmarshal([]byte(raw), &qs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if qs[0].Answer != nil {
		t.Fatalf("q1 answer should be nil")
	}
	if qs[1].Answer == nil || *qs[1].Answer != "Small pets only" || !qs[1].Processed {
		t.Fatalf("unexpected q2: %+v", qs[1])
	}
	b, _ := json.Marshal(qs[0])
	if string(b) != `{"question_id":"q1","question":"Baggage?","answer":null,"processed":false}` {
		t.Fatalf("null answer must be preserved on encode: %s", b)
	}
}
