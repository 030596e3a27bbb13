package vmath

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/exp/constraints"
)

// Number is any integer or float type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Clamp returns v limited to [lo, hi]. lo must not exceed hi.
func Clamp[T Number](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// PlanarLen returns the length of v projected on the XZ plane.
func PlanarLen(v mgl32.Vec3) float32 {
	return math32.Sqrt(v[0]*v[0] + v[2]*v[2])
}

// IsZero reports whether every component of v is exactly zero.
func IsZero(v mgl32.Vec3) bool {
	return v[0] == 0 && v[1] == 0 && v[2] == 0
}
