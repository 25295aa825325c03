package llm

import (
	"context"
	"encoding/json"
)

// Provider sends one prompt to a language model and returns its answer.
// Implementations are safe for concurrent use.
type Provider interface {
	// Generate performs a single exchange. When req.Schema is set the
	// provider asks for structured output and only returns Content that
	// validates against the schema.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the configured model, before any provider-side aliasing.
	ModelID() string
}

// Request is a provider-neutral prompt.
type Request struct {
	System   string
	Messages []Message

	// Schema requests structured JSON output. Nil means free text.
	Schema *Schema

	MaxTokens int

	// Temperature in [0, 1]. Zero leaves the provider default in place.
	Temperature float64
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// UserPrompt is the common single-turn request: a system prompt and one
// user message.
func UserPrompt(system, prompt string) Request {
	return Request{
		System:   system,
		Messages: []Message{{Role: RoleUser, Content: prompt}},
	}
}

// Schema names a JSON Schema document. Name doubles as the schema name in
// provider APIs that want one and as the validator cache label.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Normalized stop reasons.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

// Response is a model answer.
type Response struct {
	// Content is the validated JSON document when a Schema was requested,
	// and the raw text otherwise.
	Content json.RawMessage

	Usage Usage

	// Model is the model that actually served the call, as reported by
	// the provider.
	Model string

	// StopReason is StopEnd or StopMaxTokens.
	StopReason string
}

// Usage counts tokens for one call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
