package locomotion

import (
	"time"

	"fog-explorer/internal/ground"
	"fog-explorer/internal/input"
	"fog-explorer/internal/vmath"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Handle is the physics side of the controlled body.
type Handle interface {
	ApplyImpulse(impulse, point mgl32.Vec3)
	LinearVelocity() mgl32.Vec3
	SetLinearVelocity(v mgl32.Vec3)
}

// Body is the entity the player commands.
type Body interface {
	Position() mgl32.Vec3
	// Handle returns nil while no physics representation is attached.
	Handle() Handle
}

// Config tunes the controller.
type Config struct {
	// MoveSpeed is the impulse contributed by each held movement key.
	MoveSpeed float32
	// Friction multiplies planar velocity while moving, StopFriction when no key is held.
	Friction     float32
	StopFriction float32
	MaxVelocity  float32
	// StopThreshold is the per-axis speed under which an idle body is stopped dead.
	StopThreshold  float32
	Slope          SlopeConfig
	HeightInterval time.Duration
}

// DefaultConfig matches the shipped tuning.
func DefaultConfig() Config {
	return Config{
		MoveSpeed:      1.2,
		Friction:       0.95,
		StopFriction:   0.5,
		MaxVelocity:    20,
		StopThreshold:  0.3,
		Slope:          DefaultSlope(),
		HeightInterval: 100 * time.Millisecond,
	}
}

// Result describes what one Step observed and did.
type Result struct {
	Grounded bool
	Moving   bool
	DeltaY   float32
	// SlopeFactor scales both the impulse and the speed cap.
	SlopeFactor float32
	Impulse     mgl32.Vec3
	Velocity    mgl32.Vec3
	Speed       float32
	SpeedCap    float32
	// Attached is false when the body had no physics handle and nothing was applied.
	Attached bool
}

// Controller turns held keys into impulses and keeps the body's planar velocity in check.
type Controller struct {
	cfg     Config
	sensor  *ground.Sensor
	history HeightHistory
}

// New returns a controller probing the ground with sensor. A nil sensor means always airborne.
func New(cfg Config, sensor *ground.Sensor) *Controller {
	return &Controller{
		cfg:     cfg,
		sensor:  sensor,
		history: HeightHistory{Interval: cfg.HeightInterval},
	}
}

// Config returns the active tuning.
func (c *Controller) Config() Config {
	return c.cfg
}

// SetConfig swaps the tuning; the height sample is kept.
func (c *Controller) SetConfig(cfg Config) {
	c.cfg = cfg
	c.history.Interval = cfg.HeightInterval
}

// ResetHistory drops the height sample so the next Step starts flat.
func (c *Controller) ResetHistory() {
	c.history.Reset()
}

// Direction sums the held keys into a local-space vector: forward is +Z, right is +X.
func Direction(keys input.Keys, speed float32) mgl32.Vec3 {
	var d mgl32.Vec3
	if keys.Has(input.MoveForward) {
		d[2] += speed
	}
	if keys.Has(input.MoveBack) {
		d[2] -= speed
	}
	if keys.Has(input.StrafeLeft) {
		d[0] -= speed
	}
	if keys.Has(input.StrafeRight) {
		d[0] += speed
	}
	return d
}

// ToWorld rotates a local direction by the camera yaw only, so movement stays horizontal
// whatever the camera pitch.
func ToWorld(local mgl32.Vec3, yaw float32) mgl32.Vec3 {
	return mgl32.Rotate3DY(yaw).Mul3x1(local)
}

// Step runs one frame: ground check, impulse, speed cap, friction. yaw is the camera yaw in radians.
func (c *Controller) Step(now time.Time, body Body, keys input.Keys, yaw float32) Result {
	r := Result{SlopeFactor: 1, Moving: keys.Any()}
	if body == nil {
		return r
	}
	pos := body.Position()
	c.history.Observe(now, pos.Y())

	r.Grounded = c.sensor.Grounded(pos)

	dir := Direction(keys, c.cfg.MoveSpeed)
	if !vmath.IsZero(dir) {
		dir = ToWorld(dir, yaw)
	}

	if r.Grounded {
		r.DeltaY = c.history.Delta(pos.Y())
		r.SlopeFactor = SlopeFactor(r.DeltaY, c.cfg.Slope)
	}
	r.SpeedCap = c.cfg.MaxVelocity * r.SlopeFactor

	h := body.Handle()
	if h == nil {
		return r
	}
	r.Attached = true

	if !vmath.IsZero(dir) {
		r.Impulse = dir.Mul(r.SlopeFactor)
		h.ApplyImpulse(r.Impulse, pos)
	}

	c.clamp(h, r.SpeedCap)
	if r.Grounded {
		c.friction(h, r.Moving)
	}

	r.Velocity = h.LinearVelocity()
	r.Speed = vmath.PlanarLen(r.Velocity)
	return r
}

// clamp rescales planar velocity down to limit, keeping its direction and the vertical component.
func (c *Controller) clamp(h Handle, limit float32) {
	v := h.LinearVelocity()
	speed := vmath.PlanarLen(v)
	if speed <= limit || speed == 0 {
		return
	}
	scale := limit / speed
	v[0] *= scale
	v[2] *= scale
	h.SetLinearVelocity(v)
}

// friction damps planar velocity; an idle body below StopThreshold on both axes is stopped.
func (c *Controller) friction(h Handle, moving bool) {
	f := c.cfg.Friction
	if !moving {
		f = c.cfg.StopFriction
	}
	v := h.LinearVelocity()
	v[0] *= f
	v[2] *= f
	if !moving && math32.Abs(v[0]) < c.cfg.StopThreshold && math32.Abs(v[2]) < c.cfg.StopThreshold {
		v[0], v[2] = 0, 0
	}
	h.SetLinearVelocity(v)
}
