package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/notequiz/internal/ui/layout"
)

// Screen is one page of the terminal client.
type Screen interface {
	// Init returns the command to run when the screen becomes active.
	Init() tea.Cmd

	// Update handles a message and returns the updated screen.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body between header and footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider is implemented by screens that supply their own footer
// hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// PrincipalProvider is implemented by screens that act on behalf of a
// signed-in identity. The app header shows the returned label.
type PrincipalProvider interface {
	PrincipalLabel() string
}
