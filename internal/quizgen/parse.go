package quizgen

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhisek/notequiz/internal/quiz"
)

// ErrMalformedOutput is returned when the model output holds no quiz list.
var ErrMalformedOutput = errors.New("malformed quiz output")

// candidate is one raw quiz from the model before validation.
type candidate struct {
	Question    string   `json:"question"`
	Choices     []string `json:"choices"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

// parseCandidates extracts the quiz list from raw model output. Prose
// around the JSON is ignored. Both {"quizzes":[...]} and a bare array are
// accepted.
func parseCandidates(raw []byte) ([]candidate, error) {
	body := bytes.TrimSpace(raw)

	// Plain-text responses arrive as a JSON string.
	if len(body) > 0 && body[0] == '"' {
		var text string
		if err := json.Unmarshal(body, &text); err == nil {
			body = bytes.TrimSpace([]byte(text))
		}
	}

	if len(body) > 0 && body[0] == '[' {
		if end := bytes.LastIndexByte(body, ']'); end > 0 {
			body = body[:end+1]
		}
		var list []candidate
		if err := json.Unmarshal(body, &list); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
		}
		return list, nil
	}

	start := bytes.IndexByte(body, '{')
	end := bytes.LastIndexByte(body, '}')
	if start == -1 || end <= start {
		return nil, fmt.Errorf("%w: no JSON object found", ErrMalformedOutput)
	}
	body = body[start : end+1]

	var wrapper struct {
		Quizzes *[]candidate `json:"quizzes"`
	}
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	if wrapper.Quizzes == nil {
		return nil, fmt.Errorf("%w: missing \"quizzes\" list", ErrMalformedOutput)
	}
	return *wrapper.Quizzes, nil
}

func (c candidate) item() quiz.Item {
	return quiz.Item{
		Question:    c.Question,
		Choices:     c.Choices,
		Answer:      c.Answer,
		Explanation: c.Explanation,
	}
}
