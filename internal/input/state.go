package input

import "sync"

// Action is a movement intent a key can be bound to.
type Action uint8

const (
	MoveForward Action = iota
	MoveBack
	StrafeLeft
	StrafeRight
	actionCount
)

var actionNames = [actionCount]string{"forward", "back", "left", "right"}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "unknown"
}

// Keys is the set of held actions.
type Keys uint8

// Has reports whether a is held.
func (k Keys) Has(a Action) bool {
	return k&(1<<a) != 0
}

// Any reports whether at least one movement action is held.
func (k Keys) Any() bool {
	return k != 0
}

// State is the input collected between two frames: held movement actions and the mouse-look
// delta accumulated since the last ConsumeLook. Event producers write it, the frame update reads
// it once; the mutex keeps both sides serialized when they run on different goroutines.
type State struct {
	mu    sync.Mutex
	held  Keys
	lookX float32
	lookY float32
}

// Press marks a as held.
func (s *State) Press(a Action) {
	if a >= actionCount {
		return
	}
	s.mu.Lock()
	s.held |= 1 << a
	s.mu.Unlock()
}

// Release marks a as no longer held.
func (s *State) Release(a Action) {
	if a >= actionCount {
		return
	}
	s.mu.Lock()
	s.held &^= 1 << a
	s.mu.Unlock()
}

// ReleaseAll clears every held action, e.g. when the console takes the keyboard.
func (s *State) ReleaseAll() {
	s.mu.Lock()
	s.held = 0
	s.mu.Unlock()
}

// Held returns the currently held actions.
func (s *State) Held() Keys {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.held
}

// Look accumulates a mouse movement: dx turns yaw, dy turns pitch.
func (s *State) Look(dx, dy float32) {
	s.mu.Lock()
	s.lookX += dx
	s.lookY += dy
	s.mu.Unlock()
}

// ConsumeLook returns the accumulated look delta and resets it.
func (s *State) ConsumeLook() (dx, dy float32) {
	s.mu.Lock()
	dx, dy = s.lookX, s.lookY
	s.lookX, s.lookY = 0, 0
	s.mu.Unlock()
	return dx, dy
}
