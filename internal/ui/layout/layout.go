package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/notequiz/internal/ui/theme"
)

// Minimum terminal size the client draws in.
const (
	MinWidth  = 60
	MinHeight = 20

	// CompactWidthThreshold is the width below which cards drop their
	// side margins.
	CompactWidthThreshold = 100
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// DefaultHints is shown when the active screen supplies none.
var DefaultHints = []KeyHint{
	{Key: "Ctrl+C", Description: "Quit"},
}

// IsCompactWidth reports whether width is in the compact range.
func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

// IsTooSmall reports whether the terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage replaces the whole frame when the terminal is below
// MinWidth x MinHeight.
func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf("Terminal too small.\n\nNeed at least %d x %d, have %d x %d.",
		MinWidth, MinHeight, width, height)
	return theme.Body.Align(lipgloss.Center).Width(width).Height(height).Render(msg)
}

// bar draws one full-width framed strip, used for header and footer.
func bar(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// spread lays out left, center and right on one line of the given width,
// keeping center as close to the middle as the side texts allow.
func spread(left, center, right string, width int) string {
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)
	gapL := max(1, (width-cw)/2-lw)
	gapR := max(1, width-lw-gapL-cw-rw)
	return left + strings.Repeat(" ", gapL) + center + strings.Repeat(" ", gapR) + right
}

// RenderHeader shows the app name, the screen title and, when who is not
// empty, the principal using the client.
func RenderHeader(title, who string, width int) string {
	var right string
	if who != "" {
		right = theme.Warning.Render("● " + who)
	}
	inner := max(0, width-4)
	return bar(spread(theme.Selected.Render("  notequiz"), theme.Body.Render(title), right, inner), width)
}

// RenderFooter lists key hints, falling back to DefaultHints.
func RenderFooter(hints []KeyHint, width int) string {
	if len(hints) == 0 {
		hints = DefaultHints
	}
	key := theme.Body.Bold(true)
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = key.Render(h.Key) + " " + theme.Explanation.Render(h.Description)
	}
	return bar("  "+strings.Join(parts, "   "), width)
}

// RenderFrame stacks header, content and footer, giving content whatever
// height is left.
func RenderFrame(header, content, footer string, width, height int) string {
	rest := max(0, height-lipgloss.Height(header)-lipgloss.Height(footer))
	body := lipgloss.NewStyle().Width(width).Height(rest).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
