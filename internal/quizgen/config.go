package quizgen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators run in order on every candidate quiz; the first failure
	// drops the candidate.
	Validators []Validator

	// Count is how many quizzes the prompt asks for.
	Count int

	// MaxQuizzes caps how many validated quizzes are returned.
	MaxQuizzes int

	// MaxTokens caps the length of the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxNoteChars truncates very long notes before prompting. 0 disables.
	MaxNoteChars int
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&ChoicesValidator{},
			&AnswerValidator{},
		},
		Count:        3,
		MaxQuizzes:   3,
		MaxTokens:    2048,
		Temperature:  0.7,
		MaxNoteChars: 20000,
	}
}
