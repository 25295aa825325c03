package quiz

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Item is one multiple-choice question generated from a note.
type Item struct {
	// ID is the server-issued identifier. Servers send it as a string or a
	// number; numbers are kept in their JSON text form. It may be empty, and
	// Key falls back to the question text then.
	ID string `json:"id,omitempty"`

	// Question is the display text of the prompt.
	Question string `json:"question"`

	// Choices are the answer options in display order. They are labelled
	// A, B, C, ... by position.
	Choices []string `json:"choices"`

	// Answer is the display text of the correct choice.
	Answer string `json:"answer"`

	// Explanation is an optional rationale shown together with the answer.
	Explanation string `json:"explanation,omitempty"`
}

// Key returns the identity key used to track per-item review state.
func (it Item) Key() string {
	if it.ID != "" {
		return it.ID
	}
	return it.Question
}

// HasExplanation reports whether the item carries a non-blank explanation.
func (it Item) HasExplanation() bool {
	return strings.TrimSpace(it.Explanation) != ""
}

// AnswerIndex returns the position of Answer within Choices, or -1.
func (it Item) AnswerIndex() int {
	for i, c := range it.Choices {
		if c == it.Answer {
			return i
		}
	}
	return -1
}

// UnmarshalJSON accepts "id" as a JSON string, a JSON number or null.
func (it *Item) UnmarshalJSON(data []byte) error {
	type plain Item
	var raw struct {
		plain
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*it = Item(raw.plain)

	id := bytes.TrimSpace(raw.ID)
	switch {
	case len(id) == 0 || bytes.Equal(id, []byte("null")):
		it.ID = ""
	case id[0] == '"':
		if err := json.Unmarshal(id, &it.ID); err != nil {
			return fmt.Errorf("quiz id: %w", err)
		}
	default:
		var n json.Number
		if err := json.Unmarshal(id, &n); err != nil {
			return fmt.Errorf("quiz id: %w", err)
		}
		it.ID = n.String()
	}
	return nil
}
