package quizgen

import (
	"context"
	"strings"

	"github.com/abhisek/notequiz/internal/quiz"
)

// SampleGenerator returns a fixed set of quizzes regardless of the note.
// It backs the server when no LLM provider is configured.
type SampleGenerator struct{}

// NewSample returns a SampleGenerator.
func NewSample() *SampleGenerator { return &SampleGenerator{} }

func (SampleGenerator) Generate(ctx context.Context, content string) ([]quiz.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyNote
	}
	return SampleQuizzes(), nil
}

// SampleQuizzes returns a fresh copy of the built-in quizzes.
func SampleQuizzes() []quiz.Item {
	return []quiz.Item{
		{
			Question:    "Which of these is not a method a client uses to request a resource over HTTP?",
			Choices:     []string{"GET", "POST", "DELETE", "TRANSMIT"},
			Answer:      "TRANSMIT",
			Explanation: "Standard HTTP methods include GET, POST, PUT and DELETE. There is no TRANSMIT method.",
		},
		{
			Question: "Which statement best describes REST API design?",
			Choices: []string{
				"Every request must use the same URL.",
				"Resources are expressed as URLs and actions as HTTP methods.",
				"Each request needs a new TCP socket.",
				"Data must always be exchanged as XML.",
			},
			Answer:      "Resources are expressed as URLs and actions as HTTP methods.",
			Explanation: "REST names resources with URLs such as /notes/1 and distinguishes read, create, update and delete with GET, POST, PUT and DELETE.",
		},
		{
			Question:    "Which of these is not one of the ACID properties of a database transaction?",
			Choices:     []string{"Atomicity", "Consistency", "Isolation", "Distribution"},
			Answer:      "Distribution",
			Explanation: "ACID stands for Atomicity, Consistency, Isolation and Durability. Distribution is not part of it.",
		},
	}
}
