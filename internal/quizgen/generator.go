package quizgen

import (
	"context"

	"github.com/abhisek/notequiz/internal/quiz"
)

// Generator produces multiple-choice quizzes from study notes.
type Generator interface {
	// Generate returns between one and Config.MaxQuizzes validated quizzes
	// for content, or an error.
	Generate(ctx context.Context, content string) ([]quiz.Item, error)
}
