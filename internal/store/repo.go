package store

import (
	"context"
	"time"

	"github.com/abhisek/notequiz/internal/quiz"
)

// QueryOpts configures list queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // id > After
	Before int64     // id < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// NewNote is the input for NoteRepo.Create.
type NewNote struct {
	UserID  int64
	Title   string
	Content string
}

// Note is a persisted note together with the quizzes generated for it.
type Note struct {
	ID        int64
	UserID    int64
	Title     string
	Content   string
	CreatedAt time.Time

	// QuizCount is filled by List; Quizzes is filled by Get.
	QuizCount int
	Quizzes   []Quiz
}

// Quiz is a persisted quiz item.
type Quiz struct {
	quiz.Item
	NoteID    int64
	CreatedAt time.Time
}

// NoteRepo persists notes and their quizzes.
type NoteRepo interface {
	// Create saves a note and returns it with its assigned id.
	Create(ctx context.Context, n NewNote) (*Note, error)

	// AddQuizzes saves items for noteID in one transaction, in order.
	// Items without an id are given a fresh UUID.
	AddQuizzes(ctx context.Context, noteID int64, items []quiz.Item) ([]Quiz, error)

	// Get returns a note with its quizzes, or nil if it does not exist.
	Get(ctx context.Context, id int64) (*Note, error)

	// List returns notes newest first.
	List(ctx context.Context, opts QueryOpts) ([]Note, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	RequestID    string // HTTP request that triggered the call, if any
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a recorded LLM request.
type LLMEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates LLM usage for one purpose.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int
}

// ModelUsage aggregates LLM usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one event, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}
