package study

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/notequiz/internal/ui/components"
	"github.com/abhisek/notequiz/internal/ui/layout"
	"github.com/abhisek/notequiz/internal/ui/theme"
)

const editorHeight = 8

// Copy shown around the card list.
const (
	EmptyCopy      = "No quizzes yet. Paste a note and press Ctrl+S."
	GeneratingCopy = "Generating quizzes from your note..."
	ForbiddenCopy  = "This account cannot use the study screen."
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func editorWidth(width int) int {
	w := width - 6
	if !layout.IsCompactWidth(width) {
		w = width - 12
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (s *StudyScreen) View(width, height int) string {
	if !s.allowed() {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.ErrorLine.Render(ForbiddenCopy))
	}

	margin := 2
	if !layout.IsCompactWidth(width) {
		margin = 5
	}
	inner := width - 2*margin
	pad := lipgloss.NewStyle().PaddingLeft(margin)

	var top strings.Builder
	label := theme.Label.Render("Your notes")
	if s.focus == focusEditor {
		label = theme.Selected.Render("Your notes")
	}
	top.WriteString(label)
	top.WriteString("\n")
	top.WriteString(s.editor.View())
	top.WriteString("\n\n")
	top.WriteString(s.statusLine())
	top.WriteString("\n")

	head := pad.Render(top.String())
	avail := height - lipgloss.Height(head) - 1
	body := pad.Render(s.renderCards(inner, avail))

	return head + "\n" + body
}

func (s *StudyScreen) statusLine() string {
	switch {
	case s.session.Loading():
		frame := spinnerFrames[s.frame%len(spinnerFrames)]
		return lipgloss.NewStyle().Foreground(theme.Secondary).Render(frame + " " + GeneratingCopy)
	case s.session.Error() != "":
		return theme.ErrorLine.Render(s.session.Error())
	default:
		return theme.Hint.Render("Ctrl+S to generate quizzes")
	}
}

// renderCards renders as many cards as fit in height, scrolled so the
// cursor card is visible.
func (s *StudyScreen) renderCards(width, height int) string {
	cards := s.session.Cards()
	if len(cards) == 0 {
		if s.session.Loading() {
			return ""
		}
		return theme.Hint.Render(EmptyCopy)
	}

	views := make([]string, len(cards))
	for i, c := range cards {
		qc := components.QuizCard{
			Number:   i + 1,
			Question: c.Item.Question,
			Choices:  c.Item.Choices,
			Focused:  s.focus == focusCards && i == s.cursor,
		}
		if panel, ok := c.Reveal(); ok {
			qc.Revealed = true
			qc.AnswerIndex = c.Item.AnswerIndex()
			qc.Answer = panel.Answer
			qc.Explanation = panel.Explanation
		}
		views[i] = qc.View(width)
	}

	start := 0
	for start < s.cursor && span(views[start:s.cursor+1]) > height {
		start++
	}
	end := start + 1
	for end < len(views) && span(views[start:end+1]) <= height {
		end++
	}
	return strings.Join(views[start:end], "\n")
}

func span(views []string) int {
	h := 0
	for _, v := range views {
		h += lipgloss.Height(v) + 1
	}
	return h
}
