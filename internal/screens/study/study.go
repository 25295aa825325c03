package study

import (
	"context"
	"time"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/notequiz/internal/auth"
	"github.com/abhisek/notequiz/internal/logger"
	"github.com/abhisek/notequiz/internal/screen"
	sess "github.com/abhisek/notequiz/internal/study"
	"github.com/abhisek/notequiz/internal/ui/layout"
)

const spinnerInterval = 120 * time.Millisecond

type focusArea int

const (
	focusEditor focusArea = iota
	focusCards
)

// StudyScreen is the main screen: a note editor, a submit action and the
// review cards of the current quiz set.
type StudyScreen struct {
	session   *sess.Session
	principal auth.Principal
	editor    textarea.Model
	focus     focusArea
	cursor    int
	frame     int
	spinning  bool
	log       *logger.Logger
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)
var _ screen.PrincipalProvider = (*StudyScreen)(nil)

// New creates a StudyScreen acting for p that generates quizzes with gen.
// A nil log discards.
func New(p auth.Principal, gen sess.Generator, log *logger.Logger) *StudyScreen {
	if log == nil {
		log = logger.Nop()
	}
	ed := textarea.New()
	ed.Placeholder = "Paste or type your notes here..."
	ed.ShowLineNumbers = false
	ed.CharLimit = 0
	ed.MaxHeight = 0
	ed.SetWidth(72)
	ed.SetHeight(editorHeight)

	return &StudyScreen{
		session:   sess.NewSession(gen),
		principal: p,
		editor:    ed,
		log:       log.With("screen", "study"),
	}
}

// Session exposes the underlying session state.
func (s *StudyScreen) Session() *sess.Session { return s.session }

func (s *StudyScreen) Title() string { return "Study" }

func (s *StudyScreen) PrincipalLabel() string { return s.principal.Display() }

func (s *StudyScreen) Init() tea.Cmd {
	if !s.allowed() {
		return nil
	}
	return s.editor.Focus()
}

func (s *StudyScreen) allowed() bool {
	return s.principal.Can(auth.CapStudy)
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	if !s.allowed() {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	hints := make([]layout.KeyHint, 0, 4)
	if s.session.CanSubmit() {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+S", Description: "Generate"})
	}
	if len(s.session.Quizzes()) > 0 {
		if s.focus == focusCards {
			hints = append(hints,
				layout.KeyHint{Key: "↑↓", Description: "Move"},
				layout.KeyHint{Key: "Enter", Description: "Show/hide answer"},
				layout.KeyHint{Key: "Tab", Description: "Edit note"},
			)
		} else {
			hints = append(hints, layout.KeyHint{Key: "Tab", Description: "Review"})
		}
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if !s.allowed() {
		return s, nil
	}

	switch msg := msg.(type) {
	case generatedMsg:
		return s.handleGenerated(msg)

	case spinnerTickMsg:
		if !s.session.Loading() {
			s.spinning = false
			return s, nil
		}
		s.frame++
		return s, spinnerTick()

	case tea.WindowSizeMsg:
		s.editor.SetWidth(editorWidth(msg.Width))
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	if s.focus == focusEditor {
		var cmd tea.Cmd
		s.editor, cmd = s.editor.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *StudyScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		return s, s.submit()
	case "tab", "shift+tab":
		return s, s.switchFocus()
	}

	if s.focus == focusCards {
		cards := s.session.Cards()
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(cards)-1 {
				s.cursor++
			}
		case "enter", "space", " ":
			if s.cursor < len(cards) {
				s.session.Toggle(cards[s.cursor].Key)
			}
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.editor, cmd = s.editor.Update(msg)
	s.session.SetContent(s.editor.Value())
	return s, cmd
}

func (s *StudyScreen) switchFocus() tea.Cmd {
	if s.focus == focusCards || len(s.session.Quizzes()) == 0 {
		s.focus = focusEditor
		return s.editor.Focus()
	}
	s.focus = focusCards
	s.editor.Blur()
	return nil
}

// submit starts a generation exchange for the editor content. It is a no-op
// while another exchange is outstanding.
func (s *StudyScreen) submit() tea.Cmd {
	if !s.session.CanSubmit() {
		return nil
	}
	s.session.SetContent(s.editor.Value())

	a, err := s.session.Begin(context.Background())
	if err != nil {
		s.log.Debug("submit rejected", "kind", string(sess.Classify(err)))
		return nil
	}
	s.cursor = 0
	s.focus = focusEditor
	s.log.Info("quiz generation started", "attempt", a.ID, "chars", len(a.Content))

	cmds := []tea.Cmd{exchange(a)}
	if !s.spinning {
		s.spinning = true
		cmds = append(cmds, spinnerTick())
	}
	return tea.Batch(cmds...)
}

func exchange(a *sess.Attempt) tea.Cmd {
	return func() tea.Msg {
		return generatedMsg{Result: a.Run()}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (s *StudyScreen) handleGenerated(msg generatedMsg) (screen.Screen, tea.Cmd) {
	if !s.session.Settle(msg.Result) {
		s.log.Debug("stale generation result dropped", "attempt", msg.Result.Attempt)
		return s, nil
	}

	if msg.Result.Err != nil {
		s.log.Warn("quiz generation failed",
			"attempt", msg.Result.Attempt,
			"kind", string(sess.Classify(msg.Result.Err)),
			"error", msg.Result.Err,
		)
		return s, nil
	}

	n := len(s.session.Quizzes())
	s.log.Info("quiz generation finished", "attempt", msg.Result.Attempt, "quizzes", n)
	s.cursor = 0
	if n > 0 && s.focus == focusEditor {
		s.focus = focusCards
		s.editor.Blur()
	}
	return s, nil
}
