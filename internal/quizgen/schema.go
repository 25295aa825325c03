package quizgen

import "github.com/abhisek/notequiz/internal/llm"

// QuizzesSchema defines the JSON schema for quiz generation responses.
var QuizzesSchema = &llm.Schema{
	Name:        "note-quizzes",
	Description: "Multiple-choice quizzes that check understanding of a study note",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"quizzes": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question shown to the learner",
						},
						"choices": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Exactly 4 answer options",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The exact text of the correct option",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the answer is correct",
						},
					},
					"required":             []any{"question", "choices", "answer", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"quizzes"},
		"additionalProperties": false,
	},
}
