package ground

import "github.com/go-gl/mathgl/mgl32"

const (
	// DefaultDistance is the ray length for coarse "is anything below" checks.
	DefaultDistance = 3
	// LocomotionDistance is the shorter ray used by the movement controller.
	LocomotionDistance = 1.5
	// DefaultOffset lifts the ray origin above the body position.
	DefaultOffset = 0.2
)

// Down is the sensor's ray direction.
var Down = mgl32.Vec3{0, -1, 0}

// RayCaster answers ray queries against the collision world.
type RayCaster interface {
	CastRay(origin, direction mgl32.Vec3, maxDistance float32) bool
}

// Sensor casts one downward ray per query. A miss means airborne; there are no retries.
type Sensor struct {
	Caster   RayCaster
	Offset   float32
	Distance float32
}

// New returns a sensor over c with the default offset and the given ray distance.
func New(c RayCaster, distance float32) *Sensor {
	return &Sensor{Caster: c, Offset: DefaultOffset, Distance: distance}
}

// Grounded reports whether a surface lies within Distance below position+Offset.
func (s *Sensor) Grounded(position mgl32.Vec3) bool {
	if s == nil || s.Caster == nil {
		return false
	}
	origin := position.Add(mgl32.Vec3{0, s.Offset, 0})
	return s.Caster.CastRay(origin, Down, s.Distance)
}
