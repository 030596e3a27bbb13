package session

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Snapshot is the per-frame state published to telemetry clients.
type Snapshot struct {
	Session     string     `json:"session"`
	Frame       uint64     `json:"frame"`
	Time        time.Time  `json:"time"`
	Grounded    bool       `json:"grounded"`
	Moving      bool       `json:"moving"`
	Attached    bool       `json:"attached"`
	Captured    bool       `json:"captured"`
	DeltaY      float32    `json:"delta_y"`
	SlopeFactor float32    `json:"slope_factor"`
	Speed       float32    `json:"speed"`
	SpeedCap    float32    `json:"speed_cap"`
	Velocity    mgl32.Vec3 `json:"velocity"`
	Position    mgl32.Vec3 `json:"position"`
	Camera      mgl32.Vec3 `json:"camera"`
	Yaw         float32    `json:"yaw"`
	Pitch       float32    `json:"pitch"`
}
