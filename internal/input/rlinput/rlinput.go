// Package rlinput feeds raylib keyboard/mouse polling into input.State and implements pointer
// capture on top of raylib's cursor lock.
package rlinput

import (
	"fmt"

	"fog-explorer/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Binding maps raylib key codes to movement actions.
type Binding map[int32]input.Action

// arrows are bound in every layout.
var arrows = Binding{
	rl.KeyUp:    input.MoveForward,
	rl.KeyDown:  input.MoveBack,
	rl.KeyLeft:  input.StrafeLeft,
	rl.KeyRight: input.StrafeRight,
}

// Layout returns the bindings for a keyboard layout name ("azerty" or "qwerty").
func Layout(name string) (Binding, error) {
	b := Binding{}
	for k, a := range arrows {
		b[k] = a
	}
	switch name {
	case "azerty":
		b[rl.KeyZ] = input.MoveForward
		b[rl.KeyS] = input.MoveBack
		b[rl.KeyQ] = input.StrafeLeft
		b[rl.KeyD] = input.StrafeRight
	case "qwerty":
		b[rl.KeyW] = input.MoveForward
		b[rl.KeyS] = input.MoveBack
		b[rl.KeyA] = input.StrafeLeft
		b[rl.KeyD] = input.StrafeRight
	default:
		return nil, fmt.Errorf("rlinput: unknown layout %q", name)
	}
	return b, nil
}

// Poller copies raylib's per-frame input into a State. Several keys may map to one action;
// the action is held while any of them is down.
type Poller struct {
	binding Binding
	state   *input.State
	lock    *input.PointerLock
}

// NewPoller returns a Poller writing into state and retrying capture on lock when the view is clicked.
func NewPoller(b Binding, state *input.State, lock *input.PointerLock) *Poller {
	return &Poller{binding: b, state: state, lock: lock}
}

// Poll reads keys, clicks and mouse movement. Call once per frame before the session update.
func (p *Poller) Poll() {
	var down [4]bool
	for key, a := range p.binding {
		if int(a) < len(down) && rl.IsKeyDown(key) {
			down[a] = true
		}
	}
	for a, held := range down {
		if held {
			p.state.Press(input.Action(a))
		} else {
			p.state.Release(input.Action(a))
		}
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		p.lock.Click()
	}
	if p.lock.Captured() {
		d := rl.GetMouseDelta()
		p.state.Look(d.X, d.Y)
	}
}

// Cursor is the raylib pointer-capture platform.
type Cursor struct{}

func (Cursor) RequestCapture() { rl.DisableCursor() }

// Captured is true while the cursor is hidden and locked to a focused window.
func (Cursor) Captured() bool { return rl.IsCursorHidden() && rl.IsWindowFocused() }

func (Cursor) ReleaseCapture() { rl.EnableCursor() }
