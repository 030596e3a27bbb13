package input

import "time"

// Platform is the windowing side of pointer capture.
type Platform interface {
	RequestCapture()
	// Captured reports whether the platform currently confirms the capture.
	Captured() bool
	ReleaseCapture()
}

// PointerLock tracks mouse capture. Captured is true only once a capture was requested and the
// platform confirmed it; a denied request simply leaves it false until the next Click.
type PointerLock struct {
	platform  Platform
	requested bool
	captured  bool
	autoAt    time.Time
}

// NewPointerLock returns an uncaptured lock over platform. A nil platform never captures.
func NewPointerLock(platform Platform) *PointerLock {
	return &PointerLock{platform: platform}
}

// Request asks the platform for capture.
func (p *PointerLock) Request() {
	if p.platform == nil {
		return
	}
	p.requested = true
	p.platform.RequestCapture()
}

// Release gives the pointer back, e.g. while the console is open.
func (p *PointerLock) Release() {
	p.requested = false
	p.captured = false
	p.autoAt = time.Time{}
	if p.platform != nil {
		p.platform.ReleaseCapture()
	}
}

// Click is the user clicking the game view: retry the capture when not held.
func (p *PointerLock) Click() {
	if !p.Captured() {
		p.Request()
	}
}

// RequestAt schedules an automatic request at t; Sync issues it once t has passed.
func (p *PointerLock) RequestAt(t time.Time) {
	p.autoAt = t
}

// Sync refreshes the captured flag from the platform and fires a scheduled request. Call once per frame.
func (p *PointerLock) Sync(now time.Time) {
	if !p.autoAt.IsZero() && !now.Before(p.autoAt) {
		p.autoAt = time.Time{}
		if !p.requested {
			p.Request()
		}
	}
	p.captured = p.requested && p.platform != nil && p.platform.Captured()
}

// Captured reports whether mouse-look is live.
func (p *PointerLock) Captured() bool {
	return p.captured
}
