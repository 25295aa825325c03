package study

import (
	"errors"

	"github.com/abhisek/notequiz/internal/notesapi"
)

// User-facing messages. Only one is shown at a time.
const (
	ErrMsgEmptyContent     = "Please enter some text to study."
	ErrMsgGenerationFailed = "Quiz generation request failed. Please try again."
)

// FailureKind classifies why a generation attempt did not produce quizzes.
// Every kind is shown to the user as a single inline message; the kind only
// matters for logging.
type FailureKind string

const (
	FailureNone       FailureKind = ""
	FailureValidation FailureKind = "validation"
	FailureRequest    FailureKind = "request"
	FailureTransport  FailureKind = "transport"
)

// ErrEmptyContent is reported when the draft is blank or whitespace-only.
var ErrEmptyContent = errors.New("content is empty")

// Classify maps an error from Begin or a Result to its FailureKind.
func Classify(err error) FailureKind {
	if err == nil {
		return FailureNone
	}
	if errors.Is(err, ErrEmptyContent) {
		return FailureValidation
	}
	var se *notesapi.StatusError
	if errors.As(err, &se) {
		return FailureRequest
	}
	return FailureTransport
}
