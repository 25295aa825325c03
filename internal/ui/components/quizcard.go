package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/notequiz/internal/quiz"
	"github.com/abhisek/notequiz/internal/ui/theme"
)

// QuizCard is the rendered form of one quiz item.
type QuizCard struct {
	Number   int
	Question string
	Choices  []string
	Focused  bool

	// Revealed is set when the answer panel is shown. AnswerIndex is only
	// meaningful then and may be -1 if the answer matches no choice.
	Revealed    bool
	AnswerIndex int
	Answer      string
	Explanation string
}

// View renders the card at the given outer width.
func (c QuizCard) View(width int) string {
	var b strings.Builder

	marker := "  "
	if c.Focused {
		marker = "▸ "
	}
	qStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	if c.Focused {
		qStyle = theme.Selected
	}
	b.WriteString(qStyle.Render(fmt.Sprintf("%s%d. %s", marker, c.Number, c.Question)))
	b.WriteString("\n")

	for i, choice := range c.Choices {
		line := fmt.Sprintf("    %s) %s", quiz.Label(i), choice)
		switch {
		case c.Revealed && i == c.AnswerIndex:
			b.WriteString(theme.Answer.Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}

	if c.Revealed {
		b.WriteString("\n")
		b.WriteString(theme.Answer.Render("    Answer: " + c.Answer))
		if c.Explanation != "" {
			b.WriteString("\n")
			b.WriteString(theme.Explanation.Render("    " + c.Explanation))
		}
	} else {
		b.WriteString(theme.Hint.Render("    Enter to show the answer"))
	}

	style := theme.Card
	if c.Focused {
		style = theme.CardFocused
	}
	if width > 2 {
		style = style.Width(width - 2)
	}
	return style.Render(b.String())
}
