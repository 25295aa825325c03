package quizgen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/notequiz/internal/llm"
	"github.com/abhisek/notequiz/internal/logger"
	"github.com/abhisek/notequiz/internal/quiz"
)

// Purpose labels quiz generation requests in the LLM event log.
const Purpose = "quiz-gen"

// ErrNoValidQuizzes is returned when every candidate failed validation.
var ErrNoValidQuizzes = errors.New("no valid quizzes generated")

// ErrEmptyNote is returned for blank note content.
var ErrEmptyNote = errors.New("note content is empty")

// LLMGenerator implements Generator using an LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
	log      *logger.Logger
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config, log *logger.Logger) *LLMGenerator {
	if log == nil {
		log = logger.Nop()
	}
	return &LLMGenerator{provider: provider, config: cfg, log: log}
}

// Generate asks the model for quizzes about content, drops candidates that
// fail validation and returns at most Config.MaxQuizzes of the rest.
func (g *LLMGenerator) Generate(ctx context.Context, content string) ([]quiz.Item, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyNote
	}
	ctx = llm.WithPurpose(ctx, Purpose)

	req := llm.UserPrompt(systemPrompt, buildUserMessage(content, g.config))
	req.Schema = QuizzesSchema
	req.MaxTokens = g.config.MaxTokens
	req.Temperature = g.config.Temperature

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	candidates, err := parseCandidates(resp.Content)
	if err != nil {
		return nil, err
	}

	items, rejected := g.validate(candidates)
	for _, verr := range rejected {
		g.log.Debug("quiz candidate dropped", "validator", verr.Validator, "index", verr.Index, "reason", verr.Message)
	}
	if len(items) == 0 {
		errs := []error{ErrNoValidQuizzes}
		for _, verr := range rejected {
			errs = append(errs, verr)
		}
		return nil, errors.Join(errs...)
	}

	if g.config.MaxQuizzes > 0 && len(items) > g.config.MaxQuizzes {
		items = items[:g.config.MaxQuizzes]
	}
	g.log.Info("quizzes generated", "count", len(items), "dropped", len(rejected), "model", resp.Model)
	return items, nil
}

// validate runs the validator chain on every candidate. Candidates keep
// their relative order.
func (g *LLMGenerator) validate(candidates []candidate) ([]quiz.Item, []*ValidationError) {
	items := make([]quiz.Item, 0, len(candidates))
	var rejected []*ValidationError

	for i, c := range candidates {
		it := normalize(c.item())
		if verr := runValidators(g.config.Validators, &it); verr != nil {
			verr.Index = i
			rejected = append(rejected, verr)
			continue
		}
		items = append(items, it)
	}
	return items, rejected
}

func runValidators(validators []Validator, it *quiz.Item) *ValidationError {
	for _, v := range validators {
		if verr := v.Validate(it); verr != nil {
			return verr
		}
	}
	return nil
}

// normalize trims surrounding whitespace so that an answer matches its
// choice even when the model pads one of them.
func normalize(it quiz.Item) quiz.Item {
	it.Question = strings.TrimSpace(it.Question)
	it.Answer = strings.TrimSpace(it.Answer)
	it.Explanation = strings.TrimSpace(it.Explanation)
	if it.Choices != nil {
		choices := make([]string, len(it.Choices))
		for i, c := range it.Choices {
			choices[i] = strings.TrimSpace(c)
		}
		it.Choices = choices
	}
	return it
}
