package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAppendAndQueryLLMRequests(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events, err := repo.QueryLLMRequests(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query (empty): %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected no events, got %d", len(events))
	}

	err = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "mistral-small-latest",
		Model:        "mistral-small-latest",
		Purpose:      "feedback-gender",
		InputTokens:  42,
		OutputTokens: 17,
		LatencyMs:    350,
		Success:      true,
		RequestBody:  "[user]\nExplain the gender of 'maison'.",
		ResponseBody: "The word 'maison' is feminine.",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	err = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "mistral-small-latest",
		Model:        "mistral-small-latest",
		Purpose:      "word-deck",
		Success:      false,
		ErrorMessage: "rate limited",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err = repo.QueryLLMRequests(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	// Newest first.
	if events[0].Purpose != "word-deck" {
		t.Errorf("expected newest event first, got purpose %q", events[0].Purpose)
	}
	if events[1].InputTokens != 42 {
		t.Errorf("input tokens = %d, want 42", events[1].InputTokens)
	}
	if !events[1].Success {
		t.Error("expected first event to be marked successful")
	}
	if events[0].ErrorMessage != "rate limited" {
		t.Errorf("error message = %q, want 'rate limited'", events[0].ErrorMessage)
	}
}

func TestQueryLLMRequests_Filters(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for range 3 {
		if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "mock", Model: "mock", Purpose: "feedback-gender", Success: true,
		}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "word-deck", Success: true,
	}); err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMRequests(ctx, QueryOpts{Purpose: "feedback-gender"})
	if err != nil {
		t.Fatalf("query by purpose: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 feedback-gender events, got %d", len(events))
	}

	events, err = repo.QueryLLMRequests(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query with limit: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events with limit, got %d", len(events))
	}

	events, err = repo.QueryLLMRequests(ctx, QueryOpts{Since: time.Now().Add(time.Hour)})
	if err != nil {
		t.Fatalf("query with since: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected no events after future cutoff, got %d", len(events))
	}
}

func TestGetLLMRequest(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	ev, err := repo.GetLLMRequest(ctx, 12345)
	if err != nil {
		t.Fatalf("get (absent): %v", err)
	}
	if ev != nil {
		t.Fatal("expected nil for unknown id")
	}

	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "feedback-sentence",
		Success: true, RequestBody: "req", ResponseBody: "resp",
	}); err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMRequests(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}

	ev, err = repo.GetLLMRequest(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ev == nil {
		t.Fatal("expected event")
	}
	if ev.RequestBody != "req" || ev.ResponseBody != "resp" {
		t.Errorf("bodies = %q/%q, want req/resp", ev.RequestBody, ev.ResponseBody)
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose (empty): %v", err)
	}
	if len(byPurpose) != 0 {
		t.Fatalf("expected no usage rows, got %d", len(byPurpose))
	}

	seed := []LLMRequestEventData{
		{Provider: "mistral-small-latest", Model: "mistral-small-latest", Purpose: "feedback-gender", InputTokens: 100, OutputTokens: 40, LatencyMs: 200, Success: true},
		{Provider: "mistral-small-latest", Model: "mistral-small-latest", Purpose: "feedback-gender", InputTokens: 120, OutputTokens: 60, LatencyMs: 400, Success: true},
		{Provider: "mistral-small-latest", Model: "mistral-small-latest", Purpose: "word-deck", InputTokens: 300, OutputTokens: 900, LatencyMs: 1500, Success: true},
		{Provider: "gpt-4o-mini", Model: "gpt-4o-mini", Purpose: "word-deck", InputTokens: 300, OutputTokens: 800, LatencyMs: 1200, Success: true},
	}
	for _, data := range seed {
		if err := repo.AppendLLMRequest(ctx, data); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byPurpose, err = repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purpose rows, got %d", len(byPurpose))
	}
	// Ordered by purpose name.
	fg := byPurpose[0]
	if fg.Purpose != "feedback-gender" || fg.Calls != 2 || fg.InputTokens != 220 || fg.OutputTokens != 100 {
		t.Errorf("feedback-gender usage = %+v", fg)
	}
	if fg.AvgLatencyMs != 300 {
		t.Errorf("avg latency = %d, want 300", fg.AvgLatencyMs)
	}
	wd := byPurpose[1]
	if wd.Purpose != "word-deck" || wd.Calls != 2 || wd.OutputTokens != 1700 {
		t.Errorf("word-deck usage = %+v", wd)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("expected 2 model rows, got %d", len(byModel))
	}
	if byModel[0].Model != "gpt-4o-mini" || byModel[0].Calls != 1 {
		t.Errorf("model row 0 = %+v", byModel[0])
	}
	if byModel[1].Model != "mistral-small-latest" || byModel[1].InputTokens != 520 {
		t.Errorf("model row 1 = %+v", byModel[1])
	}
}

func TestHeadlineCacheRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.HeadlineRepo()
	ctx := context.Background()

	headlines, fetchedAt, err := repo.LoadHeadlines(ctx)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if len(headlines) != 0 || !fetchedAt.IsZero() {
		t.Fatal("expected empty cache")
	}

	pool := []string{
		"Le gouvernement annonce une réforme.",
		"La grève continue à Paris.",
	}
	if err := repo.SaveHeadlines(ctx, pool); err != nil {
		t.Fatalf("save: %v", err)
	}

	headlines, fetchedAt, err = repo.LoadHeadlines(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(headlines) != 2 {
		t.Fatalf("expected 2 headlines, got %d", len(headlines))
	}
	if headlines[0] != pool[0] {
		t.Errorf("headline[0] = %q, want %q", headlines[0], pool[0])
	}
	if fetchedAt.IsZero() {
		t.Error("expected non-zero fetch time")
	}

	// Second save replaces, never appends.
	if err := repo.SaveHeadlines(ctx, []string{"Une seule"}); err != nil {
		t.Fatalf("second save: %v", err)
	}
	headlines, _, err = repo.LoadHeadlines(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(headlines) != 1 {
		t.Fatalf("expected replacement, got %d headlines", len(headlines))
	}
}
