package signup

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/notequiz/internal/auth"
	"github.com/abhisek/notequiz/internal/logger"
	"github.com/abhisek/notequiz/internal/router"
	"github.com/abhisek/notequiz/internal/screen"
	"github.com/abhisek/notequiz/internal/ui/components"
	"github.com/abhisek/notequiz/internal/ui/layout"
	"github.com/abhisek/notequiz/internal/ui/theme"
)

// SignedUpMsg is delivered to the screen below signup once the form was
// submitted.
type SignedUpMsg struct {
	Principal auth.Principal
}

// Focus targets in tab order.
const (
	focusName = iota
	focusEmail
	focusPassword
	focusSubmit
	focusBack
	focusCount
)

// SignupScreen collects a name, an email and a password. Nothing is sent
// anywhere: submitting pops back and hands an unverified Principal to the
// screen below.
type SignupScreen struct {
	name     components.TextInput
	email    components.TextInput
	password components.TextInput
	submit   components.Button
	back     components.Button
	focus    int
	done     bool
	log      *logger.Logger
}

var _ screen.Screen = (*SignupScreen)(nil)
var _ screen.KeyHintProvider = (*SignupScreen)(nil)

// New creates a SignupScreen. A nil log discards.
func New(log *logger.Logger) *SignupScreen {
	if log == nil {
		log = logger.Nop()
	}
	s := &SignupScreen{
		name:     components.NewTextInput("Name", "Your name", false, 64),
		email:    components.NewTextInput("Email", "example@email.com", false, 254),
		password: components.NewTextInput("Password", "********", true, 128),
		log:      log,
	}
	s.submit = components.NewButton("Sign up", s.complete)
	s.back = components.NewButton("Back to log in", func() tea.Cmd {
		return func() tea.Msg { return router.PopScreenMsg{} }
	})
	return s
}

func (s *SignupScreen) Title() string { return "Sign up" }

func (s *SignupScreen) Init() tea.Cmd {
	return s.setFocus(focusName)
}

func (s *SignupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SignupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "tab", "down":
			return s, s.setFocus((s.focus + 1) % focusCount)
		case "shift+tab", "up":
			return s, s.setFocus((s.focus + focusCount - 1) % focusCount)
		case "enter":
			return s, s.pressEnter(kmsg)
		}
	}

	var cmd tea.Cmd
	switch s.focus {
	case focusName:
		s.name, cmd = s.name.Update(msg)
	case focusEmail:
		s.email, cmd = s.email.Update(msg)
	case focusPassword:
		s.password, cmd = s.password.Update(msg)
	}
	return s, cmd
}

func (s *SignupScreen) pressEnter(kmsg tea.KeyPressMsg) tea.Cmd {
	var cmd tea.Cmd
	switch s.focus {
	case focusSubmit:
		s.submit, cmd = s.submit.Update(kmsg)
	case focusBack:
		s.back, cmd = s.back.Update(kmsg)
	case focusPassword:
		cmd = s.complete()
	default:
		cmd = s.setFocus(s.focus + 1)
	}
	return cmd
}

func (s *SignupScreen) complete() tea.Cmd {
	if s.done {
		return nil
	}
	s.done = true
	p := auth.Signup(auth.Registration{
		Name:     s.name.Value(),
		Email:    s.email.Value(),
		Password: s.password.Model.Value(),
	})
	s.log.Info("signup submitted", "email", p.Email, "verified", p.Verified())
	return func() tea.Msg {
		return router.PopScreenMsg{Result: SignedUpMsg{Principal: p}}
	}
}

func (s *SignupScreen) setFocus(f int) tea.Cmd {
	s.focus = f
	s.name.Blur()
	s.email.Blur()
	s.password.Blur()
	s.submit.Focused = f == focusSubmit
	s.back.Focused = f == focusBack

	switch f {
	case focusName:
		return s.name.Focus()
	case focusEmail:
		return s.email.Focus()
	case focusPassword:
		return s.password.Focus()
	}
	return nil
}

func (s *SignupScreen) View(width, height int) string {
	heading := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Sign up")
	sub := theme.Hint.Render("Create an account to keep studying")

	form := strings.Join([]string{
		heading,
		sub,
		"",
		s.name.View(),
		"",
		s.email.View(),
		"",
		s.password.View(),
		"",
		s.submit.View(),
		"",
		s.back.View(),
	}, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Card.Padding(1, 3).Render(form))
}
