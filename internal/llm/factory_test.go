package llm

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/abhisek/notequiz/internal/logger"
	"github.com/abhisek/notequiz/internal/store"
)

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"NOTEQUIZ_LLM_PROVIDER",
		"NOTEQUIZ_ANTHROPIC_API_KEY",
		"NOTEQUIZ_OPENAI_API_KEY",
		"NOTEQUIZ_GEMINI_API_KEY",
		"NOTEQUIZ_OPENROUTER_API_KEY",
		"NOTEQUIZ_LLM_TIMEOUT",
		"GEMINI_API_KEY",
		"OPENAI_API_KEY",
		"ANTHROPIC_API_KEY",
		"OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestNewProviderFromEnv_NotConfigured(t *testing.T) {
	clearProviderEnv(t)

	_, err := NewProviderFromEnv(context.Background(), nil, nil)
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestNewProviderFromEnv_ExplicitProviderRequiresKey(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("NOTEQUIZ_LLM_PROVIDER", "anthropic")

	if _, err := NewProviderFromEnv(context.Background(), nil, nil); err == nil {
		t.Fatal("expected missing key error")
	}
}

func TestNewProviderFromEnv_Discovered(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("OPENROUTER_API_KEY", "sk-or-test")

	p, err := NewProviderFromEnv(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != DefaultConfig().OpenRouter.Model {
		t.Errorf("model = %q, want %q", p.ModelID(), DefaultConfig().OpenRouter.Model)
	}
}

func TestConfigFromEnv_Timeout(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("NOTEQUIZ_LLM_TIMEOUT", "45s")
	if got := ConfigFromEnv().Timeout; got != 45*time.Second {
		t.Errorf("Timeout = %v, want 45s", got)
	}

	t.Setenv("NOTEQUIZ_LLM_TIMEOUT", "soon")
	if got := ConfigFromEnv().Timeout; got != DefaultConfig().Timeout {
		t.Errorf("invalid value should keep default, got %v", got)
	}
}

func TestLoggingProvider_RecordsEvent(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "events.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"quizzes":[]}`), Usage: Usage{InputTokens: 12, OutputTokens: 7}},
		MockResponse{Err: &ErrProviderUnavailable{}},
	)
	p := WithLogging(mock, st.EventRepo(), logger.Nop())
	ctx := WithRequestID(WithPurpose(context.Background(), "quiz-gen"), "req-7")

	if _, err := p.Generate(ctx, Request{System: "sys", Messages: []Message{{Role: RoleUser, Content: "note"}}}); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if _, err := p.Generate(ctx, Request{}); err == nil {
		t.Fatal("second call: expected error")
	}

	events, err := st.EventRepo().QueryLLMEvents(context.Background(), store.QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}

	failed, ok := events[0], events[1]
	if failed.Success || failed.ErrorMessage == "" {
		t.Errorf("expected failed event first, got %+v", failed)
	}
	if !ok.Success || ok.Provider != "mock" || ok.Purpose != "quiz-gen" || ok.RequestID != "req-7" {
		t.Errorf("unexpected event: %+v", ok)
	}
	if ok.InputTokens != 12 || ok.OutputTokens != 7 {
		t.Errorf("tokens = %d/%d, want 12/7", ok.InputTokens, ok.OutputTokens)
	}
	if ok.ResponseBody != `{"quizzes":[]}` {
		t.Errorf("response body = %q", ok.ResponseBody)
	}
	if ok.RequestBody == "" {
		t.Error("expected request body to be captured")
	}
}

type blockingProvider struct{}

func (blockingProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingProvider) ModelID() string { return "blocking" }

func TestTimeoutProvider(t *testing.T) {
	p := WithTimeout(blockingProvider{}, 10*time.Millisecond)

	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if p.ModelID() != "blocking" {
		t.Errorf("ModelID = %q", p.ModelID())
	}
}
