package notesapi

import (
	"fmt"

	"github.com/abhisek/notequiz/internal/quiz"
)

// NotesPath is the generation endpoint path. The trailing slash is part of
// the contract.
const NotesPath = "/api/notes/"

// CreateNoteRequest is the body of POST /api/notes/.
type CreateNoteRequest struct {
	Content string `json:"content"`
	Title   string `json:"title,omitempty"`
	UserID  int64  `json:"user_id,omitempty"`
}

// Note is the stored note echoed back by the server.
type Note struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CreateNoteResponse is the success body of POST /api/notes/ and of
// GET /api/notes/{id}.
type CreateNoteResponse struct {
	Note    Note        `json:"note"`
	Quizzes []quiz.Item `json:"quizzes"`
}

// HealthResponse is the body of GET /.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// ErrorResponse is the body the server sends with non-2xx statuses.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}
