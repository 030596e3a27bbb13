package ground

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// floor is a flat plane at height Y.
type floor struct {
	Y    float32
	last struct {
		origin, dir mgl32.Vec3
		max         float32
	}
}

func (f *floor) CastRay(origin, dir mgl32.Vec3, maxDistance float32) bool {
	f.last.origin, f.last.dir, f.last.max = origin, dir, maxDistance
	if dir[1] >= 0 {
		return false
	}
	d := (origin[1] - f.Y) / -dir[1]
	return d >= 0 && d <= maxDistance
}

func TestGrounded(t *testing.T) {
	tests := []struct {
		name     string
		distance float32
		bodyY    float32
		want     bool
	}{
		{"resting on floor", LocomotionDistance, 0.5, true},
		{"just within reach", LocomotionDistance, 1.2, true},
		{"beyond locomotion ray", LocomotionDistance, 1.5, false},
		{"coarse ray reaches further", DefaultDistance, 2.5, true},
		{"high in the air", DefaultDistance, 10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &floor{}
			s := New(f, tt.distance)
			if got := s.Grounded(mgl32.Vec3{4, tt.bodyY, -2}); got != tt.want {
				t.Errorf("Grounded(y=%v, dist=%v) = %v, want %v", tt.bodyY, tt.distance, got, tt.want)
			}
			wantOrigin := mgl32.Vec3{4, tt.bodyY + DefaultOffset, -2}
			if !f.last.origin.ApproxEqual(wantOrigin) || f.last.dir != Down || f.last.max != tt.distance {
				t.Errorf("ray = %+v, want origin %v down %v", f.last, wantOrigin, tt.distance)
			}
		})
	}
}

func TestGroundedWithoutCaster(t *testing.T) {
	var nilSensor *Sensor
	if nilSensor.Grounded(mgl32.Vec3{}) {
		t.Error("nil sensor reported grounded")
	}
	if New(nil, DefaultDistance).Grounded(mgl32.Vec3{}) {
		t.Error("sensor without caster reported grounded")
	}
}
