package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config selects and configures the LLM backend used for quiz generation.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "openrouter"
	// or "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig

	Retry RetryConfig

	// Timeout bounds one Generate call including its retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey string
	Model  string

	// BaseURL targets an OpenAI-compatible endpoint instead of OpenAI.
	BaseURL string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig shapes the backoff between attempts: the first wait is
// InitialWait, each later one Multiplier times longer, capped at MaxWait.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig uses small, cheap models: one note produces a handful of
// short quizzes.
func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     8 * time.Second,
			Multiplier:  2,
		},
		Timeout: 45 * time.Second,
	}
}

// ConfigFromEnv starts from DefaultConfig and applies every NOTEQUIZ_*
// variable that is set. Unparseable durations are ignored.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	for key, dst := range map[string]*string{
		"NOTEQUIZ_LLM_PROVIDER":       &cfg.Provider,
		"NOTEQUIZ_ANTHROPIC_API_KEY":  &cfg.Anthropic.APIKey,
		"NOTEQUIZ_ANTHROPIC_MODEL":    &cfg.Anthropic.Model,
		"NOTEQUIZ_OPENAI_API_KEY":     &cfg.OpenAI.APIKey,
		"NOTEQUIZ_OPENAI_MODEL":       &cfg.OpenAI.Model,
		"NOTEQUIZ_OPENAI_BASE_URL":    &cfg.OpenAI.BaseURL,
		"NOTEQUIZ_GEMINI_API_KEY":     &cfg.Gemini.APIKey,
		"NOTEQUIZ_GEMINI_MODEL":       &cfg.Gemini.Model,
		"NOTEQUIZ_OPENROUTER_API_KEY": &cfg.OpenRouter.APIKey,
		"NOTEQUIZ_OPENROUTER_MODEL":   &cfg.OpenRouter.Model,
	} {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	if d, err := time.ParseDuration(os.Getenv("NOTEQUIZ_LLM_TIMEOUT")); err == nil && d > 0 {
		cfg.Timeout = d
	}
	return cfg
}

// discoverOrder lists the vendors' own key variables, most preferred first.
var discoverOrder = []struct {
	env      string
	provider string
}{
	{"GEMINI_API_KEY", "gemini"},
	{"OPENAI_API_KEY", "openai"},
	{"ANTHROPIC_API_KEY", "anthropic"},
	{"OPENROUTER_API_KEY", "openrouter"},
}

// DiscoverConfig picks the first provider whose vendor key variable
// (GEMINI_API_KEY, OPENAI_API_KEY, ...) is set. It reports false when none is.
func DiscoverConfig() (Config, bool) {
	for _, d := range discoverOrder {
		key := os.Getenv(d.env)
		if key == "" {
			continue
		}
		cfg := DefaultConfig()
		cfg.Provider = d.provider
		*cfg.keyFor(d.provider) = key
		return cfg, true
	}
	return Config{}, false
}

// keyFor points at the API key field of provider, or nil for providers
// that take none.
func (c *Config) keyFor(provider string) *string {
	switch provider {
	case "anthropic":
		return &c.Anthropic.APIKey
	case "openai":
		return &c.OpenAI.APIKey
	case "gemini":
		return &c.Gemini.APIKey
	case "openrouter":
		return &c.OpenRouter.APIKey
	}
	return nil
}

// Validate checks that Provider is known and has its API key.
func (c Config) Validate() error {
	if c.Provider == "mock" {
		return nil
	}
	key := c.keyFor(c.Provider)
	if key == nil {
		return fmt.Errorf("unknown LLM provider %q", c.Provider)
	}
	if *key == "" {
		return fmt.Errorf("NOTEQUIZ_%s_API_KEY is required for the %s provider", strings.ToUpper(c.Provider), c.Provider)
	}
	return nil
}
