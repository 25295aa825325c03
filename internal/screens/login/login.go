package login

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/notequiz/internal/auth"
	"github.com/abhisek/notequiz/internal/logger"
	"github.com/abhisek/notequiz/internal/router"
	"github.com/abhisek/notequiz/internal/screen"
	"github.com/abhisek/notequiz/internal/screens/signup"
	"github.com/abhisek/notequiz/internal/ui/components"
	"github.com/abhisek/notequiz/internal/ui/layout"
	"github.com/abhisek/notequiz/internal/ui/theme"
)

// Focus targets in tab order.
const (
	focusEmail = iota
	focusPassword
	focusSubmit
	focusSignup
	focusCount
)

// Factory builds the screen shown after login for p.
type Factory func(p auth.Principal) screen.Screen

// LoginScreen is the entry form. Submitting never contacts a backend: any
// input, including an empty form, yields an unverified Principal and the
// screen replaces itself with the one built by next.
type LoginScreen struct {
	email    components.TextInput
	password components.TextInput
	submit   components.Button
	signup   components.Button
	focus    int
	done     bool
	next     Factory
	log      *logger.Logger
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// New creates a LoginScreen. A nil log discards.
func New(next Factory, log *logger.Logger) *LoginScreen {
	if log == nil {
		log = logger.Nop()
	}
	s := &LoginScreen{
		email:    components.NewTextInput("Email", "example@email.com", false, 254),
		password: components.NewTextInput("Password", "********", true, 128),
		next:     next,
		log:      log,
	}
	s.submit = components.NewButton("Log in", s.login)
	s.signup = components.NewButton("No account? Sign up", s.openSignup)
	return s
}

func (s *LoginScreen) Title() string { return "Log in" }

func (s *LoginScreen) Init() tea.Cmd {
	return s.setFocus(focusEmail)
}

func (s *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Log in"},
		{Key: "Ctrl+N", Description: "Sign up"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case signup.SignedUpMsg:
		return s, s.enter(msg.Principal)

	case tea.KeyPressMsg:
		switch msg.String() {
		case "tab", "down":
			return s, s.setFocus((s.focus + 1) % focusCount)
		case "shift+tab", "up":
			return s, s.setFocus((s.focus + focusCount - 1) % focusCount)
		case "ctrl+n":
			return s, s.openSignup()
		case "enter":
			return s, s.pressEnter(msg)
		}
	}

	var cmd tea.Cmd
	switch s.focus {
	case focusEmail:
		s.email, cmd = s.email.Update(msg)
	case focusPassword:
		s.password, cmd = s.password.Update(msg)
	}
	return s, cmd
}

func (s *LoginScreen) pressEnter(kmsg tea.KeyPressMsg) tea.Cmd {
	var cmd tea.Cmd
	switch s.focus {
	case focusEmail:
		cmd = s.setFocus(focusPassword)
	case focusPassword:
		cmd = s.login()
	case focusSubmit:
		s.submit, cmd = s.submit.Update(kmsg)
	case focusSignup:
		s.signup, cmd = s.signup.Update(kmsg)
	}
	return cmd
}

func (s *LoginScreen) login() tea.Cmd {
	p := auth.Login(auth.Credentials{
		Email:    s.email.Value(),
		Password: s.password.Model.Value(),
	})
	s.log.Info("login submitted", "email", p.Email, "verified", p.Verified())
	return s.enter(p)
}

func (s *LoginScreen) enter(p auth.Principal) tea.Cmd {
	if s.done {
		return nil
	}
	s.done = true
	next := s.next(p)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *LoginScreen) openSignup() tea.Cmd {
	su := signup.New(s.log)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: su}
	}
}

func (s *LoginScreen) setFocus(f int) tea.Cmd {
	s.focus = f
	s.email.Blur()
	s.password.Blur()
	s.submit.Focused = f == focusSubmit
	s.signup.Focused = f == focusSignup

	switch f {
	case focusEmail:
		return s.email.Focus()
	case focusPassword:
		return s.password.Focus()
	}
	return nil
}

func (s *LoginScreen) View(width, height int) string {
	heading := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Log in")
	sub := theme.Hint.Render("Log in to keep studying")
	notice := theme.Warning.Render("Credentials are not checked.")

	form := strings.Join([]string{
		heading,
		sub,
		"",
		s.email.View(),
		"",
		s.password.View(),
		"",
		s.submit.View(),
		"",
		s.signup.View(),
		"",
		notice,
	}, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Card.Padding(1, 3).Render(form))
}
