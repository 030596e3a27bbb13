package camera

import (
	"fog-explorer/internal/vmath"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Config places the camera relative to the followed body.
type Config struct {
	// Distance is the orbit radius.
	Distance float32
	// Height is added to the body's Y before the pitch offset.
	Height float32
	// Sensitivity converts mouse delta units to radians.
	Sensitivity float32
	// MaxPitch bounds pitch symmetrically, in radians.
	MaxPitch float32
}

// DefaultConfig matches the shipped tuning: 10 units back, 5 up, pitch within ±20°.
func DefaultConfig() Config {
	return Config{
		Distance:    10,
		Height:      5,
		Sensitivity: 0.002,
		MaxPitch:    math32.Pi / 9,
	}
}

// Pose is where the camera sits and what it looks at.
type Pose struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
}

// Rig is a third-person orbit camera driven by yaw and pitch. Yaw is unbounded; pitch is
// clamped to ±MaxPitch.
type Rig struct {
	cfg   Config
	yaw   float32
	pitch float32
	pose  Pose
}

// NewRig returns a rig looking down +Z with zero pitch.
func NewRig(cfg Config) *Rig {
	return &Rig{cfg: cfg}
}

func (r *Rig) Yaw() float32   { return r.yaw }
func (r *Rig) Pitch() float32 { return r.pitch }

// Config returns the rig settings.
func (r *Rig) Config() Config { return r.cfg }

// SetConfig replaces the settings and re-clamps pitch.
func (r *Rig) SetConfig(cfg Config) {
	r.cfg = cfg
	r.pitch = vmath.Clamp(r.pitch, -cfg.MaxPitch, cfg.MaxPitch)
}

// Rotate applies a mouse delta: dx turns yaw, dy turns pitch.
func (r *Rig) Rotate(dx, dy float32) {
	r.yaw += dx * r.cfg.Sensitivity
	r.pitch = vmath.Clamp(r.pitch+dy*r.cfg.Sensitivity, -r.cfg.MaxPitch, r.cfg.MaxPitch)
}

// Offset is the spherical offset from the body to the camera before the height bias.
func (r *Rig) Offset() mgl32.Vec3 {
	sy, cy := math32.Sin(r.yaw), math32.Cos(r.yaw)
	sp, cp := math32.Sin(r.pitch), math32.Cos(r.pitch)
	d := r.cfg.Distance
	return mgl32.Vec3{d * sy * cp, d * sp, d * cy * cp}
}

// Follow places the camera behind target and aims it at target.
func (r *Rig) Follow(target mgl32.Vec3) Pose {
	pos := target.Sub(r.Offset())
	pos[1] += r.cfg.Height
	r.pose = Pose{Position: pos, Target: target}
	return r.pose
}

// Pose returns the result of the last Follow.
func (r *Rig) Pose() Pose { return r.pose }
