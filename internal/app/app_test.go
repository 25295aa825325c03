package app

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/notequiz/internal/quiz"
	"github.com/abhisek/notequiz/internal/router"
	"github.com/abhisek/notequiz/internal/screens/login"
	"github.com/abhisek/notequiz/internal/screens/study"
	"github.com/abhisek/notequiz/internal/screens/welcome"
)

type stubGenerator struct{}

func (stubGenerator) Generate(context.Context, string) ([]quiz.Item, error) {
	return nil, nil
}

// send feeds msg to m and drops the resulting command.
func send(m AppModel, msg tea.Msg) AppModel {
	next, _ := m.Update(msg)
	return next.(AppModel)
}

// apply feeds msg to m and then every navigation message its command
// produces, the way the Bubble Tea runtime would.
func apply(m AppModel, msg tea.Msg) AppModel {
	next, cmd := m.Update(msg)
	m = next.(AppModel)
	if cmd == nil {
		return m
	}
	switch out := cmd().(type) {
	case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg:
		return apply(m, out)
	}
	return m
}

func TestStartsWithSplash(t *testing.T) {
	m := newAppModel(Options{Generator: stubGenerator{}})
	if _, ok := m.router.Active().(*welcome.WelcomeScreen); !ok {
		t.Fatalf("start screen = %T, want welcome", m.router.Active())
	}
}

func TestLoginReachesStudy(t *testing.T) {
	m := newAppModel(Options{Generator: stubGenerator{}, SkipSplash: true})
	if _, ok := m.router.Active().(*login.LoginScreen); !ok {
		t.Fatalf("start screen = %T, want login", m.router.Active())
	}
	m.Init()

	for _, r := range "kid@example.com" {
		m = send(m, tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	m = apply(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	m = apply(m, tea.KeyPressMsg{Code: tea.KeyEnter})

	if _, ok := m.router.Active().(*study.StudyScreen); !ok {
		t.Fatalf("active = %T, want study", m.router.Active())
	}
	if m.router.Depth() != 1 {
		t.Errorf("depth = %d, login should have been replaced", m.router.Depth())
	}

	m = send(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	content := m.render()
	if !strings.Contains(content, "kid@example.com (unverified)") {
		t.Error("header should name the unverified principal")
	}
}

func TestSignupRoundTrip(t *testing.T) {
	m := newAppModel(Options{Generator: stubGenerator{}, SkipSplash: true})
	m.Init()

	m = apply(m, tea.KeyPressMsg{Code: 'n', Mod: tea.ModCtrl})
	if m.router.Depth() != 2 {
		t.Fatalf("depth = %d, want signup pushed", m.router.Depth())
	}

	m = apply(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if _, ok := m.router.Active().(*login.LoginScreen); !ok {
		t.Fatalf("esc should return to login, got %T", m.router.Active())
	}
}

func TestTooSmall(t *testing.T) {
	m := newAppModel(Options{SkipSplash: true})
	m = send(m, tea.WindowSizeMsg{Width: 30, Height: 10})
	if !strings.Contains(m.render(), "Terminal too small") {
		t.Error("expected size warning")
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModel(Options{SkipSplash: true})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
