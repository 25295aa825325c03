package study

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/notequiz/internal/quiz"
)

// Generator turns note content into quiz items with one remote exchange.
type Generator interface {
	Generate(ctx context.Context, content string) ([]quiz.Item, error)
}

// Session owns the study screen state: the draft, the current quiz set, the
// loading flag, the inline error and the per-item disclosure state. It is
// not safe for concurrent use; all methods except Attempt.Run are meant to
// be called from a single event loop.
type Session struct {
	gen Generator

	content    string
	quizzes    []quiz.Item
	keys       []string
	loading    bool
	errMsg     string
	disclosure Disclosure

	// attempt is the token of the newest generation attempt. Results
	// carrying any other token are stale and dropped.
	attempt uint64
	cancel  context.CancelFunc
}

// NewSession creates an empty Session that generates quizzes with gen.
func NewSession(gen Generator) *Session {
	return &Session{gen: gen}
}

// Attempt is one in-flight generation exchange started by Begin.
type Attempt struct {
	ID      uint64
	Content string

	ctx context.Context
	gen Generator
}

// Result is the settled outcome of an Attempt.
type Result struct {
	Attempt uint64
	Quizzes []quiz.Item
	Err     error
}

// Card is a quiz item as the review UI sees it.
type Card struct {
	Key   string
	Item  quiz.Item
	Shown bool
}

// Panel is the answer area of a shown card.
type Panel struct {
	Answer      string
	Explanation string
}

// Reveal returns the answer panel for a shown card. Hidden cards reveal
// nothing.
func (c Card) Reveal() (Panel, bool) {
	if !c.Shown {
		return Panel{}, false
	}
	p := Panel{Answer: c.Item.Answer}
	if c.Item.HasExplanation() {
		p.Explanation = c.Item.Explanation
	}
	return p, true
}

// SetContent replaces the draft. Allowed at any time, including while a
// request is in flight.
func (s *Session) SetContent(content string) {
	s.content = content
}

// Content returns the current draft.
func (s *Session) Content() string { return s.content }

// Loading reports whether a generation request is outstanding.
func (s *Session) Loading() bool { return s.loading }

// Error returns the inline error message, or "".
func (s *Session) Error() string { return s.errMsg }

// CanSubmit reports whether a new submission should be offered to the user.
func (s *Session) CanSubmit() bool { return !s.loading }

// Quizzes returns a copy of the current quiz set.
func (s *Session) Quizzes() []quiz.Item {
	out := make([]quiz.Item, len(s.quizzes))
	copy(out, s.quizzes)
	return out
}

// Cards returns the current quiz set with identity keys and disclosure state.
func (s *Session) Cards() []Card {
	cards := make([]Card, len(s.quizzes))
	for i, it := range s.quizzes {
		cards[i] = Card{
			Key:   s.keys[i],
			Item:  it,
			Shown: s.disclosure.Shown(s.keys[i]),
		}
	}
	return cards
}

// Shown reports whether the answer for key is currently shown.
func (s *Session) Shown(key string) bool {
	return s.disclosure.Shown(key)
}

// Toggle flips the disclosure state of the quiz with the given identity key.
// Keys outside the current quiz set are ignored.
func (s *Session) Toggle(key string) bool {
	for _, k := range s.keys {
		if k == key {
			s.disclosure.Toggle(key)
			return true
		}
	}
	return false
}

// Begin validates the draft and, when it is not blank, starts a new attempt:
// loading is raised, the error, the quiz set and all disclosure state are
// cleared, and any earlier in-flight attempt is cancelled. A blank draft sets
// the inline error, leaves the quiz set untouched and returns ErrEmptyContent.
func (s *Session) Begin(ctx context.Context) (*Attempt, error) {
	if strings.TrimSpace(s.content) == "" {
		s.errMsg = ErrMsgEmptyContent
		return nil, ErrEmptyContent
	}

	if s.cancel != nil {
		s.cancel()
	}
	actx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.attempt++

	s.loading = true
	s.errMsg = ""
	s.quizzes = nil
	s.keys = nil
	s.disclosure.Reset()

	return &Attempt{
		ID:      s.attempt,
		Content: s.content,
		ctx:     actx,
		gen:     s.gen,
	}, nil
}

// Run performs the exchange. It never panics and never returns an error
// directly: every failure, including a panic in the generator, ends up in
// Result.Err. Run touches no Session state and may run on any goroutine.
func (a *Attempt) Run() (res Result) {
	res.Attempt = a.ID
	defer func() {
		if r := recover(); r != nil {
			res.Quizzes = nil
			res.Err = fmt.Errorf("generate: panic: %v", r)
		}
	}()

	if a.gen == nil {
		res.Err = fmt.Errorf("generate: no generator configured")
		return res
	}

	items, err := a.gen.Generate(a.ctx, a.Content)
	if err != nil {
		res.Err = err
		return res
	}
	if items == nil {
		items = []quiz.Item{}
	}
	res.Quizzes = items
	return res
}

// Settle applies a finished attempt as one state update. Loading is lowered
// and either the new quiz set is installed with all disclosure reset, or the
// generic failure message is set with an empty quiz set. Results from
// attempts other than the newest are ignored and Settle returns false.
func (s *Session) Settle(res Result) bool {
	if res.Attempt != s.attempt || !s.loading {
		return false
	}

	s.loading = false
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.disclosure.Reset()

	if res.Err != nil {
		s.errMsg = ErrMsgGenerationFailed
		s.quizzes = nil
		s.keys = nil
		return true
	}

	s.errMsg = ""
	s.quizzes = make([]quiz.Item, len(res.Quizzes))
	copy(s.quizzes, res.Quizzes)
	s.keys = quiz.Keys(s.quizzes)
	return true
}

// Submit runs the whole generation workflow synchronously for content:
// validate, begin, exchange, settle. Failures are absorbed into the session
// state; the returned kind is for logging only. Loading is always lowered
// before Submit returns, whichever path was taken.
func (s *Session) Submit(ctx context.Context, content string) FailureKind {
	s.SetContent(content)

	a, err := s.Begin(ctx)
	if err != nil {
		return Classify(err)
	}

	res := Result{Attempt: a.ID, Err: fmt.Errorf("generate: aborted")}
	defer func() { s.Settle(res) }()

	res = a.Run()
	return Classify(res.Err)
}
