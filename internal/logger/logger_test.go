package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func observed() (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return &Logger{SugaredLogger: zap.New(core).Sugar()}, logs
}

func TestRedactsSecretKeys(t *testing.T) {
	l, logs := observed()

	l.Info("login submitted", "email", "kid@example.com", "password", "hunter2", "api_key", "sk-123", "screen", "login")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	for _, k := range []string{"email", "password", "api_key"} {
		if fields[k] != "[REDACTED]" {
			t.Errorf("%s = %v, want [REDACTED]", k, fields[k])
		}
	}
	if fields["screen"] != "login" {
		t.Errorf("screen = %v, want login", fields["screen"])
	}
}

func TestWithCarriesFields(t *testing.T) {
	l, logs := observed()

	l.With("request_id", "r-1").Warn("slow")

	fields := logs.All()[0].ContextMap()
	if fields["request_id"] != "r-1" {
		t.Errorf("request_id = %v, want r-1", fields["request_id"])
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Info("ignored", "k", "v")
	l.Sync()
}

func TestRedactKeyMatchesWholeNameOrSuffix(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"token", true},
		{"access_token", true},
		{"refresh-token", true},
		{"x-api-key", true},
		{"openai.api_key", true},
		{"user_email", true},
		{"tokens", false},
		{"input_tokens", false},
		{"max_tokens", false},
		{"total_tokens", false},
		{"emails_sent", false},
		{"purpose", false},
	}
	for _, tt := range tests {
		if got := isRedactKey(tt.key); got != tt.want {
			t.Errorf("isRedactKey(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestTokenCountsAreLogged(t *testing.T) {
	l, logs := observed()

	l.Info("llm call", "input_tokens", 120, "max_tokens", 2048)

	fields := logs.All()[0].ContextMap()
	if fields["input_tokens"] != int64(120) {
		t.Errorf("input_tokens = %v, want 120", fields["input_tokens"])
	}
	if fields["max_tokens"] != int64(2048) {
		t.Errorf("max_tokens = %v, want 2048", fields["max_tokens"])
	}
}
