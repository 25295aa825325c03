package llm

import (
	"context"
	"net/http"
	"testing"
)

func TestOpenRouter_SendsAttributionAndRawModel(t *testing.T) {
	url, calls := chatServer(t, http.StatusOK, chatCompletion(`plain text`, "stop"))
	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey:  "sk-or-test",
		Model:   "anthropic/claude-3-haiku",
		BaseURL: url,
	})
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}

	if _, err := p.Generate(context.Background(), UserPrompt("", "hello")); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	got := (*calls)[0]
	if got.path != "/v1/chat/completions" {
		t.Errorf("path = %q", got.path)
	}
	if got.header.Get("X-Title") != openRouterTitle || got.header.Get("HTTP-Referer") != openRouterReferer {
		t.Errorf("attribution headers missing: %v", got.header)
	}
	if got.header.Get("Authorization") != "Bearer sk-or-test" {
		t.Errorf("Authorization = %q", got.header.Get("Authorization"))
	}
	if got.payload["model"] != "anthropic/claude-3-haiku" {
		t.Errorf("model = %v, want the id unchanged", got.payload["model"])
	}
	if ProviderName(p) != "openrouter" {
		t.Errorf("ProviderName = %q", ProviderName(p))
	}
}

func TestOpenRouter_RequiresKey(t *testing.T) {
	if _, err := NewOpenRouterProvider(OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"}); err == nil {
		t.Fatal("expected error without API key")
	}
}
