// Package router keeps the client's screen stack. The top screen is the
// only one that sees input; navigation happens through messages so screens
// never hold a reference to the router.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/notequiz/internal/screen"
)

// PushScreenMsg opens Screen above the current one.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg closes the current screen. A non-nil Result is handed to the
// screen underneath once it is on top again, which is how signup reports
// the new principal back to login.
type PopScreenMsg struct {
	Result tea.Msg
}

// ReplaceScreenMsg swaps the current screen for Screen without growing the
// stack, e.g. login giving way to study.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

type Router struct {
	stack []screen.Screen
}

// New starts a stack holding only root.
func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop closes the top screen. The root screen stays, so Pop at depth 1
// does nothing.
func (r *Router) Pop() tea.Cmd {
	n := len(r.stack)
	if n < 2 {
		return nil
	}
	r.stack[n-1] = nil
	r.stack = r.stack[:n-1]
	return nil
}

// Replace puts s in place of the top screen and runs its Init.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if n := len(r.stack); n > 0 {
		r.stack[n-1] = s
	} else {
		r.stack = []screen.Screen{s}
	}
	return s.Init()
}

// Active is the top screen, nil only for a zero Router.
func (r *Router) Active() screen.Screen {
	if n := len(r.stack); n > 0 {
		return r.stack[n-1]
	}
	return nil
}

func (r *Router) Depth() int { return len(r.stack) }

// Update handles navigation messages itself and forwards anything else to
// the active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch nav := msg.(type) {
	case PushScreenMsg:
		return r.Push(nav.Screen)
	case ReplaceScreenMsg:
		return r.Replace(nav.Screen)
	case PopScreenMsg:
		if r.Depth() < 2 {
			return nil
		}
		r.Pop()
		if nav.Result != nil {
			return r.Update(nav.Result)
		}
		return nil
	}

	top := r.Active()
	if top == nil {
		return nil
	}
	next, cmd := top.Update(msg)
	r.stack[len(r.stack)-1] = next
	return cmd
}

// View draws the active screen's body.
func (r *Router) View(width, height int) string {
	if top := r.Active(); top != nil {
		return top.View(width, height)
	}
	return ""
}
