package session

import (
	"time"

	"fog-explorer/internal/camera"
	"fog-explorer/internal/ground"
	"fog-explorer/internal/input"
	"fog-explorer/internal/locomotion"
	"fog-explorer/internal/logger"
	"fog-explorer/internal/visited"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// maxFrameStep bounds the physics step after a stall (window drag, breakpoint).
const maxFrameStep = 0.1

// Stepper advances the physics simulation by dt seconds.
type Stepper interface {
	Step(dt float32)
}

// Sink receives one Snapshot per frame.
type Sink interface {
	Publish(Snapshot)
}

// Options tunes a session.
type Options struct {
	Locomotion locomotion.Config
	Camera     camera.Config
	// CaptureDelay is how long after Ready the pointer capture is requested automatically.
	CaptureDelay time.Duration
	// DebugInterval rate-limits the movement debug line; 0 disables it.
	DebugInterval time.Duration
}

// DefaultOptions returns the shipped tuning.
func DefaultOptions() Options {
	return Options{
		Locomotion:    locomotion.DefaultConfig(),
		Camera:        camera.DefaultConfig(),
		CaptureDelay:  500 * time.Millisecond,
		DebugInterval: 500 * time.Millisecond,
	}
}

// Status is what one Frame did.
type Status struct {
	Frame    uint64
	Result   locomotion.Result
	Pose     camera.Pose
	Captured bool
	// Followed is false when no body was attached and the previous pose was kept.
	Followed bool
}

// Session is the per-game context: everything the frame update needs, owned in one place.
type Session struct {
	// ID tags every snapshot of this session.
	ID string

	Input      *input.State
	Pointer    *input.PointerLock
	Rig        *camera.Rig
	Controller *locomotion.Controller

	painter *visited.Painter
	log     *logger.Logger
	physics Stepper
	sink    Sink

	opts   Options
	body   locomotion.Body
	debug  logger.Throttle
	last   time.Time
	frames uint64
	status Status

	copyFailed bool
}

// New builds a session. sensor, painter and log may be nil.
func New(opts Options, pointer *input.PointerLock, sensor *ground.Sensor, painter *visited.Painter, log *logger.Logger) *Session {
	if pointer == nil {
		pointer = input.NewPointerLock(nil)
	}
	return &Session{
		ID:         uuid.NewString(),
		Input:      &input.State{},
		Pointer:    pointer,
		Rig:        camera.NewRig(opts.Camera),
		Controller: locomotion.New(opts.Locomotion, sensor),
		painter:    painter,
		log:        log,
		opts:       opts,
		debug:      logger.Throttle{Interval: opts.DebugInterval},
	}
}

// Attach sets the controlled body, replacing any previous one. nil detaches.
func (s *Session) Attach(body locomotion.Body) {
	s.body = body
	s.Controller.ResetHistory()
}

// Body returns the controlled body, or nil.
func (s *Session) Body() locomotion.Body {
	return s.body
}

// SetPhysics installs the simulation stepped after locomotion each frame.
func (s *Session) SetPhysics(p Stepper) {
	s.physics = p
}

// SetSink installs the snapshot consumer; nil stops publishing.
func (s *Session) SetSink(sink Sink) {
	s.sink = sink
}

// Options returns the active tuning.
func (s *Session) Options() Options {
	return s.opts
}

// Tune swaps locomotion and camera tuning at runtime.
func (s *Session) Tune(opts Options) {
	s.opts = opts
	s.Controller.SetConfig(opts.Locomotion)
	s.Rig.SetConfig(opts.Camera)
	s.debug.Interval = opts.DebugInterval
}

// Ready schedules the automatic pointer capture.
func (s *Session) Ready(now time.Time) {
	s.Pointer.RequestAt(now.Add(s.opts.CaptureDelay))
}

// Pause drops held keys and gives the pointer back, e.g. while the console is open.
func (s *Session) Pause() {
	s.Input.ReleaseAll()
	s.Pointer.Release()
}

// Resume asks for the pointer again.
func (s *Session) Resume() {
	s.Pointer.Request()
}

// Status returns the last frame's status.
func (s *Session) Status() Status {
	return s.status
}

// Frame runs one update: capture, look, locomotion, physics, camera follow, paint.
func (s *Session) Frame(now time.Time) Status {
	var dt float32
	if !s.last.IsZero() {
		dt = min(float32(now.Sub(s.last).Seconds()), maxFrameStep)
	}
	s.last = now
	s.frames++

	s.Pointer.Sync(now)
	// Deltas gathered while uncaptured are dropped so the view does not jump on capture.
	dx, dy := s.Input.ConsumeLook()
	if s.Pointer.Captured() {
		s.Rig.Rotate(dx, dy)
	}

	res := s.Controller.Step(now, s.body, s.Input.Held(), s.Rig.Yaw())

	if s.physics != nil && dt > 0 {
		s.physics.Step(dt)
	}

	st := Status{Frame: s.frames, Result: res, Captured: s.Pointer.Captured(), Pose: s.Rig.Pose()}
	if s.body != nil {
		pos := s.body.Position()
		st.Pose = s.Rig.Follow(pos)
		st.Followed = true
		if s.painter != nil {
			s.painter.Paint(pos)
		}
	}

	if s.log != nil && res.Moving && res.Attached && s.debug.Allow(now) {
		s.log.Logf("speed %.2f/%.2f slope %s x%.2f grounded=%t", res.Speed, res.SpeedCap, slopeName(res.DeltaY, s.opts.Locomotion.Slope), res.SlopeFactor, res.Grounded)
	}

	s.status = st
	if s.sink != nil {
		s.sink.Publish(s.snapshot(now, st))
	}
	return st
}

func (s *Session) snapshot(now time.Time, st Status) Snapshot {
	var snap Snapshot
	s.copyFields(&snap, &st.Result)
	snap.Session = s.ID
	snap.Frame = st.Frame
	snap.Time = now
	snap.Captured = st.Captured
	snap.Yaw = s.Rig.Yaw()
	snap.Pitch = s.Rig.Pitch()
	snap.Camera = st.Pose.Position
	if s.body != nil {
		snap.Position = s.body.Position()
	}
	return snap
}

// copyFields fills the snapshot fields named like from's. A failure is logged once per session.
func (s *Session) copyFields(snap *Snapshot, from any) {
	err := copier.Copy(snap, from)
	if err == nil || s.copyFailed {
		return
	}
	s.copyFailed = true
	if s.log != nil {
		s.log.Logf("snapshot: copy %T: %v", from, err)
	}
}

func slopeName(deltaY float32, c locomotion.SlopeConfig) string {
	switch {
	case deltaY > c.FlatThreshold:
		return "uphill"
	case deltaY < -c.FlatThreshold:
		return "downhill"
	default:
		return "flat"
	}
}
