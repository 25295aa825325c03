package login

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/notequiz/internal/auth"
	"github.com/abhisek/notequiz/internal/router"
	"github.com/abhisek/notequiz/internal/screen"
	"github.com/abhisek/notequiz/internal/screens/signup"
)

type stubScreen struct{ p auth.Principal }

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "study" }
func (s *stubScreen) Title() string                           { return "Study" }

func newTestLogin() (*LoginScreen, *[]auth.Principal) {
	var got []auth.Principal
	s := New(func(p auth.Principal) screen.Screen {
		got = append(got, p)
		return &stubScreen{p: p}
	}, nil)
	s.Init()
	return s, &got
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func typeText(s screen.Screen, text string) {
	for _, r := range text {
		s.Update(keyPress(r))
	}
}

func replaced(t *testing.T, cmd tea.Cmd) *stubScreen {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg")
	}
	st, ok := msg.Screen.(*stubScreen)
	if !ok {
		t.Fatalf("unexpected screen %T", msg.Screen)
	}
	return st
}

func TestInitFocusesEmail(t *testing.T) {
	s, _ := newTestLogin()
	if s.focus != focusEmail || !s.email.Focused() {
		t.Error("email should be focused first")
	}
	if s.password.Focused() {
		t.Error("password should not be focused")
	}
}

func TestLoginWithCredentials(t *testing.T) {
	s, got := newTestLogin()

	typeText(s, "kid@example.com")
	s.Update(specialKey(tea.KeyEnter))
	if s.focus != focusPassword {
		t.Fatalf("enter on email should move to password, focus = %d", s.focus)
	}
	typeText(s, "secret")

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	st := replaced(t, cmd)

	if len(*got) != 1 {
		t.Fatalf("factory calls = %d, want 1", len(*got))
	}
	if st.p.Email != "kid@example.com" {
		t.Errorf("email = %q", st.p.Email)
	}
	if st.p.Verified() || !st.p.Can(auth.CapStudy) {
		t.Error("expected an unverified study principal")
	}
}

func TestEmptyFormStillEnters(t *testing.T) {
	s, _ := newTestLogin()

	s.Update(specialKey(tea.KeyTab))
	s.Update(specialKey(tea.KeyTab))
	if s.focus != focusSubmit {
		t.Fatalf("focus = %d, want submit", s.focus)
	}

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	st := replaced(t, cmd)
	if st.p.Display() != "guest (unverified)" {
		t.Errorf("Display() = %q", st.p.Display())
	}
}

func TestEntersOnce(t *testing.T) {
	s, got := newTestLogin()
	s.Update(specialKey(tea.KeyTab))

	s.Update(specialKey(tea.KeyEnter))
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("second submit should do nothing")
	}
	if len(*got) != 1 {
		t.Errorf("factory calls = %d, want 1", len(*got))
	}
}

func TestTabWraps(t *testing.T) {
	s, _ := newTestLogin()
	for i := 0; i < focusCount; i++ {
		s.Update(specialKey(tea.KeyTab))
	}
	if s.focus != focusEmail {
		t.Errorf("focus = %d, want email after a full cycle", s.focus)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if s.focus != focusSignup {
		t.Errorf("focus = %d, want signup link", s.focus)
	}
}

func TestCtrlNOpensSignup(t *testing.T) {
	s, _ := newTestLogin()

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'n', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := msg.Screen.(*signup.SignupScreen); !ok {
		t.Errorf("pushed %T, want *signup.SignupScreen", msg.Screen)
	}
}

func TestSignedUpEnters(t *testing.T) {
	s, _ := newTestLogin()

	_, cmd := s.Update(signup.SignedUpMsg{Principal: auth.Signup(auth.Registration{Name: "Ada"})})
	st := replaced(t, cmd)
	if st.p.Display() != "Ada (unverified)" {
		t.Errorf("Display() = %q", st.p.Display())
	}
}

func TestPasswordMasked(t *testing.T) {
	s, _ := newTestLogin()
	s.Update(specialKey(tea.KeyTab))
	typeText(s, "hunter2")

	if s.password.Model.Value() != "hunter2" {
		t.Fatalf("password value = %q", s.password.Model.Value())
	}
	if v := s.View(100, 30); contains(v, "hunter2") {
		t.Error("password rendered in clear text")
	}
}

func contains(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
