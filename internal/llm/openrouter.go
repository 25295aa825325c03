package llm

import (
	"errors"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

const (
	openRouterURL = "https://openrouter.ai/api/v1"

	// openRouterTitle and openRouterReferer identify the app in the
	// OpenRouter dashboard.
	openRouterTitle   = "notequiz"
	openRouterReferer = "https://github.com/abhisek/notequiz"
)

// OpenRouterProvider reaches many vendors' models through OpenRouter's
// OpenAI-compatible API. Model ids are vendor-qualified, e.g.
// "google/gemini-2.0-flash-exp", and are never aliased.
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider builds a provider for cfg.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openrouter: API key is required")
	}
	cc := openai.DefaultConfig(cfg.APIKey)
	cc.BaseURL = openRouterURL
	if cfg.BaseURL != "" {
		cc.BaseURL = cfg.BaseURL
	}
	cc.HTTPClient = &http.Client{Transport: attributionTransport{next: http.DefaultTransport}}
	return &OpenRouterProvider{OpenAIProvider: newChatProvider("openrouter", cc, cfg.Model)}, nil
}

// attributionTransport adds OpenRouter's app attribution headers.
type attributionTransport struct {
	next http.RoundTripper
}

func (t attributionTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	r.Header.Set("X-Title", openRouterTitle)
	r.Header.Set("HTTP-Referer", openRouterReferer)
	return t.next.RoundTrip(r)
}
