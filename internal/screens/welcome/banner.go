package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/notequiz/internal/ui/theme"
)

const bannerArt = `
 ┏┓╻┏━┓╺┳╸┏━╸┏━┓╻ ╻╻╺━┓
 ┃┗┫┃ ┃ ┃ ┣╸ ┃┓┃┃ ┃┃┏━┛
 ╹ ╹┗━┛ ╹ ┗━╸┗┻┛┗━┛╹┗━╸`

const bannerCompact = "n o t e q u i z"

// bannerMinWidth is the narrowest terminal that fits bannerArt.
const bannerMinWidth = 30

// RenderBanner returns the app banner, or a one-line fallback on narrow
// terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
