package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/abhisek/notequiz/internal/quiz"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twice.db")
	for i := 0; i < 2; i++ {
		s, err := Open(path)
		if err != nil {
			t.Fatalf("open #%d: %v", i+1, err)
		}
		s.Close()
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
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

func sampleItems() []quiz.Item {
	return []quiz.Item{
		{
			Question:    "Which is not an HTTP method?",
			Choices:     []string{"GET", "POST", "PUT", "TRANSMIT"},
			Answer:      "TRANSMIT",
			Explanation: "TRANSMIT is not defined by HTTP.",
		},
		{
			ID:       "fixed-id",
			Question: "Which letter is not in ACID?",
			Choices:  []string{"Atomicity", "Consistency", "Isolation", "Distribution"},
			Answer:   "Distribution",
		},
	}
}

func TestNoteCreateAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.NoteRepo()
	ctx := context.Background()

	n, err := repo.Create(ctx, NewNote{UserID: 1, Title: "Networks", Content: "HTTP verbs"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if n.ID == 0 {
		t.Fatal("expected assigned id")
	}

	saved, err := repo.AddQuizzes(ctx, n.ID, sampleItems())
	if err != nil {
		t.Fatalf("add quizzes: %v", err)
	}
	if len(saved) != 2 {
		t.Fatalf("saved %d quizzes, want 2", len(saved))
	}
	if saved[0].ID == "" {
		t.Error("expected generated id for first quiz")
	}
	if saved[1].ID != "fixed-id" {
		t.Errorf("second id = %q, want fixed-id", saved[1].ID)
	}

	got, err := repo.Get(ctx, n.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected note")
	}
	if got.Title != "Networks" || got.Content != "HTTP verbs" || got.UserID != 1 {
		t.Errorf("unexpected note: %+v", got)
	}
	if len(got.Quizzes) != 2 {
		t.Fatalf("got %d quizzes, want 2", len(got.Quizzes))
	}
	if got.Quizzes[0].ID != saved[0].ID {
		t.Errorf("quiz order changed: %q vs %q", got.Quizzes[0].ID, saved[0].ID)
	}
	if got.Quizzes[0].Choices[3] != "TRANSMIT" {
		t.Errorf("choices = %v", got.Quizzes[0].Choices)
	}
	if got.Quizzes[1].Explanation != "" {
		t.Errorf("explanation = %q, want empty", got.Quizzes[1].Explanation)
	}
}

func TestNoteGetMissing(t *testing.T) {
	s := openTestStore(t)
	n, err := s.NoteRepo().Get(context.Background(), 999)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if n != nil {
		t.Fatalf("expected nil, got %+v", n)
	}
}

func TestAddQuizzesRejectsUnknownNote(t *testing.T) {
	s := openTestStore(t)
	_, err := s.NoteRepo().AddQuizzes(context.Background(), 42, sampleItems())
	if err == nil {
		t.Fatal("expected foreign key error")
	}
}

func TestAddQuizzesRollsBackOnDuplicateID(t *testing.T) {
	s := openTestStore(t)
	repo := s.NoteRepo()
	ctx := context.Background()

	n, err := repo.Create(ctx, NewNote{UserID: 1, Title: "t", Content: "c"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	items := []quiz.Item{
		{ID: "dup", Question: "a", Choices: []string{"1", "2", "3", "4"}, Answer: "1"},
		{ID: "dup", Question: "b", Choices: []string{"1", "2", "3", "4"}, Answer: "2"},
	}
	if _, err := repo.AddQuizzes(ctx, n.ID, items); err == nil {
		t.Fatal("expected duplicate id error")
	}

	got, err := repo.Get(ctx, n.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Quizzes) != 0 {
		t.Errorf("expected rollback, found %d quizzes", len(got.Quizzes))
	}
}

func TestNoteList(t *testing.T) {
	s := openTestStore(t)
	repo := s.NoteRepo()
	ctx := context.Background()

	first, _ := repo.Create(ctx, NewNote{UserID: 1, Title: "first", Content: "a"})
	second, _ := repo.Create(ctx, NewNote{UserID: 1, Title: "second", Content: "b"})
	if _, err := repo.AddQuizzes(ctx, first.ID, sampleItems()); err != nil {
		t.Fatalf("add quizzes: %v", err)
	}

	notes, err := repo.List(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("got %d notes, want 2", len(notes))
	}
	if notes[0].ID != second.ID {
		t.Errorf("expected newest first, got id %d", notes[0].ID)
	}
	if notes[0].QuizCount != 0 || notes[1].QuizCount != 2 {
		t.Errorf("quiz counts = %d, %d; want 0, 2", notes[0].QuizCount, notes[1].QuizCount)
	}

	limited, err := repo.List(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("list limit: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("got %d notes, want 1", len(limited))
	}

	older, err := repo.List(ctx, QueryOpts{Before: second.ID})
	if err != nil {
		t.Fatalf("list before: %v", err)
	}
	if len(older) != 1 || older[0].ID != first.ID {
		t.Errorf("before filter returned %+v", older)
	}
}

func TestLLMEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-sonnet-4-20250514",
		Purpose:      "quiz-gen",
		RequestID:    "req-1",
		InputTokens:  120,
		OutputTokens: 300,
		LatencyMs:    900,
		Success:      true,
		RequestBody:  `{"messages":[]}`,
		ResponseBody: `{"quizzes":[]}`,
	}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-sonnet-4-20250514",
		Purpose:      "quiz-gen",
		InputTokens:  80,
		LatencyMs:    100,
		ErrorMessage: "rate limited",
	}); err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Success || events[0].ErrorMessage != "rate limited" {
		t.Errorf("expected newest (failed) event first, got %+v", events[0])
	}
	if time.Since(events[0].Timestamp) > time.Minute {
		t.Errorf("timestamp looks wrong: %v", events[0].Timestamp)
	}

	e, err := repo.GetLLMEvent(ctx, events[1].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil || e.ResponseBody != `{"quizzes":[]}` || !e.Success || e.RequestID != "req-1" {
		t.Errorf("unexpected event: %+v", e)
	}

	missing, err := repo.GetLLMEvent(ctx, 12345)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 1 {
		t.Fatalf("got %d purposes, want 1", len(byPurpose))
	}
	u := byPurpose[0]
	if u.Calls != 2 || u.InputTokens != 200 || u.OutputTokens != 300 || u.AvgLatencyMs != 500 {
		t.Errorf("unexpected usage: %+v", u)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 1 || byModel[0].Calls != 2 {
		t.Errorf("unexpected model usage: %+v", byModel)
	}
}

func TestOpenAddsRequestIDToOldEventTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.db")
	raw, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open raw: %v", err)
	}
	_, err = raw.Exec(`CREATE TABLE llm_request_events (
		id integer PRIMARY KEY AUTOINCREMENT,
		timestamp integer NOT NULL,
		provider text NOT NULL,
		model text NOT NULL,
		purpose text NOT NULL,
		input_tokens integer NOT NULL DEFAULT 0,
		output_tokens integer NOT NULL DEFAULT 0,
		latency_ms integer NOT NULL DEFAULT 0,
		success boolean NOT NULL,
		error_message text NOT NULL DEFAULT '',
		request_body text NOT NULL DEFAULT '',
		response_body text NOT NULL DEFAULT ''
	)`)
	if err != nil {
		t.Fatalf("create old table: %v", err)
	}
	raw.Close()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	if err := s.EventRepo().AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "quiz-gen", RequestID: "abc", Success: true}); err != nil {
		t.Fatalf("append after migration: %v", err)
	}
	events, err := s.EventRepo().QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 || events[0].RequestID != "abc" {
		t.Errorf("unexpected events: %+v", events)
	}
}
