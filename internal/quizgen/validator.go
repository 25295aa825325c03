package quizgen

import (
	"fmt"

	"github.com/abhisek/notequiz/internal/quiz"
)

// Validator checks a candidate quiz.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier used in errors and logs.
	Name() string

	// Validate returns nil if q passes.
	Validate(q *quiz.Item) *ValidationError
}

// ValidationError describes why a candidate quiz was dropped.
type ValidationError struct {
	Validator string
	Index     int // position of the candidate in the model output
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("quiz %d: validator %q: %s", e.Index, e.Validator, e.Message)
}

// ChoiceCount is the number of options every quiz must offer.
const ChoiceCount = 4

const (
	maxQuestionLen    = 500
	maxChoiceLen      = 300
	maxExplanationLen = 1500
)

// StructuralValidator checks required fields and length limits.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *quiz.Item) *ValidationError {
	switch {
	case q.Question == "":
		return &ValidationError{Validator: v.Name(), Message: "question is empty"}
	case len(q.Question) > maxQuestionLen:
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("question exceeds %d characters", maxQuestionLen)}
	case len(q.Explanation) > maxExplanationLen:
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("explanation exceeds %d characters", maxExplanationLen)}
	}
	return nil
}

// ChoicesValidator requires exactly ChoiceCount non-empty options.
type ChoicesValidator struct{}

func (v *ChoicesValidator) Name() string { return "choices" }

func (v *ChoicesValidator) Validate(q *quiz.Item) *ValidationError {
	if len(q.Choices) != ChoiceCount {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("expected %d choices, got %d", ChoiceCount, len(q.Choices)),
		}
	}
	for i, c := range q.Choices {
		if c == "" {
			return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("choice %s is empty", quiz.Label(i))}
		}
		if len(c) > maxChoiceLen {
			return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("choice %s exceeds %d characters", quiz.Label(i), maxChoiceLen)}
		}
	}
	return nil
}

// AnswerValidator requires the answer to be the exact text of one choice.
type AnswerValidator struct{}

func (v *AnswerValidator) Name() string { return "answer" }

func (v *AnswerValidator) Validate(q *quiz.Item) *ValidationError {
	if q.AnswerIndex() < 0 {
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("answer %q is not one of the choices", q.Answer)}
	}
	return nil
}
