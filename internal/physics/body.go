package physics

import "github.com/go-gl/mathgl/mgl32"

// Body is a 3D rigid body with a center, velocity and an AABB sized by Scale.
// Static bodies do not move and are not affected by gravity.
type Body struct {
	Center   mgl32.Vec3
	Velocity mgl32.Vec3
	Scale    mgl32.Vec3
	Mass     float32
	Static   bool

	world *World
}

// NewBody returns a body at center with the given AABB size. Velocity is zero.
// mass <= 0 is treated as 1.
func NewBody(center, scale mgl32.Vec3, mass float32, static bool) *Body {
	if mass <= 0 {
		mass = 1
	}
	return &Body{
		Center: center,
		Scale:  scale,
		Mass:   mass,
		Static: static,
	}
}

// Position returns the body center.
func (b *Body) Position() mgl32.Vec3 {
	return b.Center
}

// Attached reports whether the body has been added to a world.
func (b *Body) Attached() bool {
	return b.world != nil
}

// ApplyImpulse changes velocity by impulse/mass. Bodies carry no angular state, so point is
// only accepted for interface compatibility. Static bodies ignore impulses.
func (b *Body) ApplyImpulse(impulse, point mgl32.Vec3) {
	if b.Static {
		return
	}
	b.Velocity = b.Velocity.Add(impulse.Mul(1 / b.Mass))
}

func (b *Body) LinearVelocity() mgl32.Vec3 {
	return b.Velocity
}

func (b *Body) SetLinearVelocity(v mgl32.Vec3) {
	if b.Static {
		return
	}
	b.Velocity = v
}

// Teleport moves the body to center and stops it.
func (b *Body) Teleport(center mgl32.Vec3) {
	b.Center = center
	b.Velocity = mgl32.Vec3{}
}
