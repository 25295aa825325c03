// Package theme holds the colours and lipgloss styles shared by every
// screen of the study client.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

var (
	Primary   = lipgloss.Color("#6366F1") // indigo: focus, titles
	Secondary = lipgloss.Color("#14B8A6") // teal: progress
	Accent    = lipgloss.Color("#F59E0B") // amber: principal, warnings
	Success   = lipgloss.Color("#22C55E") // revealed answers
	Error     = lipgloss.Color("#F43F5E")
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgDark    = lipgloss.Color("#0F172A")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")
)

func fg(c color.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

func boxed(border color.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}

// Text styles.
var (
	Title    = fg(Primary).Bold(true).Align(lipgloss.Center)
	Subtitle = fg(TextDim).Align(lipgloss.Center)
	Body     = fg(Text)
	Hint     = fg(TextDim).Italic(true)
	Label    = fg(TextDim).Bold(true)

	Selected   = fg(Primary).Bold(true)
	Unselected = fg(Text)

	Answer      = fg(Success).Bold(true)
	Explanation = fg(TextDim)
	ErrorLine   = fg(Error).Bold(true)
	Warning     = fg(Accent)
)

// Quiz cards. The focused card swaps only its border colour so the layout
// does not shift when focus moves.
var (
	Card        = boxed(Border)
	CardFocused = boxed(Primary)
)

// Buttons.
var (
	ButtonActive   = lipgloss.NewStyle().Background(Primary).Foreground(Text).Bold(true).Padding(0, 2)
	ButtonInactive = boxed(Border).Foreground(TextDim).Padding(0, 2)
	ButtonDisabled = fg(Border).Padding(0, 2)
)
