package physics

import (
	"github.com/go-gl/mathgl/mgl32"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// World holds a set of bodies and runs a simple 3D physics step: gravity, integration, AABB collision.
// Only pairs with at least one dynamic body are tested, so large static terrains stay cheap.
type World struct {
	Gravity mgl32.Vec3
	Bodies  []*Body
}

// NewWorld returns a world pulling towards -Y with the given strength (e.g. -8).
func NewWorld(gravity float32) *World {
	return &World{Gravity: mgl32.Vec3{0, gravity, 0}}
}

// AddBody appends a body to the world and attaches it.
func (w *World) AddBody(b *Body) {
	b.world = w
	w.Bodies = append(w.Bodies, b)
}

// bodyAABB returns the AABB for a body (center position, half extents from scale).
func bodyAABB(b *Body) rl.BoundingBox {
	half := b.Scale.Mul(0.5)
	for i := range half {
		if half[i] == 0 {
			half[i] = 0.5
		}
	}
	lo := b.Center.Sub(half)
	hi := b.Center.Add(half)
	return rl.NewBoundingBox(rl.NewVector3(lo[0], lo[1], lo[2]), rl.NewVector3(hi[0], hi[1], hi[2]))
}

// penetrationAxis returns the overlap amount and axis index (0=X, 1=Y, 2=Z) for the minimum penetration.
// If no overlap, returns (0, -1).
func penetrationAxis(a, b rl.BoundingBox) (depth float32, axis int) {
	overlap := [3]float32{
		min(a.Max.X, b.Max.X) - max(a.Min.X, b.Min.X),
		min(a.Max.Y, b.Max.Y) - max(a.Min.Y, b.Min.Y),
		min(a.Max.Z, b.Max.Z) - max(a.Min.Z, b.Min.Z),
	}
	if overlap[0] <= 0 || overlap[1] <= 0 || overlap[2] <= 0 {
		return 0, -1
	}
	depth, axis = overlap[0], 0
	for i := 1; i < 3; i++ {
		if overlap[i] < depth {
			depth, axis = overlap[i], i
		}
	}
	return depth, axis
}

// Step advances the simulation by dt seconds: apply gravity, integrate, then resolve AABB overlaps.
func (w *World) Step(dt float32) {
	for _, b := range w.Bodies {
		if b.Static {
			continue
		}
		b.Velocity = b.Velocity.Add(w.Gravity.Mul(dt))
		b.Center = b.Center.Add(b.Velocity.Mul(dt))
	}

	for i, bi := range w.Bodies {
		if bi.Static {
			continue
		}
		for j, bj := range w.Bodies {
			// Dynamic pairs are visited once, from the lower index.
			if j == i || (!bj.Static && j < i) {
				continue
			}
			w.resolve(bi, bj)
		}
	}
}

// resolve pushes dynamic bi out of bj along the axis of least penetration and zeroes velocity on that axis.
func (w *World) resolve(bi, bj *Body) {
	boxI, boxJ := bodyAABB(bi), bodyAABB(bj)
	if !rl.CheckCollisionBoxes(boxI, boxJ) {
		return
	}
	depth, axis := penetrationAxis(boxI, boxJ)
	if axis < 0 {
		return
	}
	// Push away from bj's center.
	sign := float32(-1)
	if bi.Center[axis] > bj.Center[axis] {
		sign = 1
	}
	if bj.Static {
		bi.Center[axis] += sign * depth
		bi.Velocity[axis] = 0
		return
	}
	total := bi.Mass + bj.Mass
	bi.Center[axis] += sign * depth * (bj.Mass / total)
	bj.Center[axis] -= sign * depth * (bi.Mass / total)
	bi.Velocity[axis] = 0
	bj.Velocity[axis] = 0
}

// CastRay reports whether a ray from origin along direction hits a static body within maxDistance.
// A ray starting inside a static box counts as a hit.
func (w *World) CastRay(origin, direction mgl32.Vec3, maxDistance float32) bool {
	if direction.Len() == 0 {
		return false
	}
	dir := direction.Normalize()
	ray := rl.NewRay(rl.NewVector3(origin[0], origin[1], origin[2]), rl.NewVector3(dir[0], dir[1], dir[2]))
	for _, b := range w.Bodies {
		if !b.Static {
			continue
		}
		hit := rl.GetRayCollisionBox(ray, bodyAABB(b))
		if hit.Hit && hit.Distance <= maxDistance {
			return true
		}
	}
	return false
}
