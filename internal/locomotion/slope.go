package locomotion

import (
	"time"

	"github.com/chewxy/math32"
)

// SlopeConfig tunes the vertical-delta slope proxy.
type SlopeConfig struct {
	FlatThreshold      float32
	AccelerationFactor float32
	DecelerationFactor float32
	MinFactor          float32
}

// DefaultSlope matches the shipped tuning.
func DefaultSlope() SlopeConfig {
	return SlopeConfig{
		FlatThreshold:      0.005,
		AccelerationFactor: 0.8,
		DecelerationFactor: 0.6,
		MinFactor:          0.5,
	}
}

// SlopeFactor maps the height change since the last sample to a speed multiplier.
// Descending (deltaY < 0) grows it without bound, climbing shrinks it down to MinFactor,
// and changes under FlatThreshold count as flat ground.
// Only vertical motion is seen, so a jump or a fall reads as a slope as well.
func SlopeFactor(deltaY float32, c SlopeConfig) float32 {
	if math32.Abs(deltaY) < c.FlatThreshold {
		return 1
	}
	if deltaY < 0 {
		return 1 + math32.Abs(deltaY)*c.AccelerationFactor
	}
	return math32.Max(c.MinFactor, 1-deltaY*c.DecelerationFactor)
}

// HeightHistory keeps one height sample, refreshed at most once per Interval of wall-clock
// time so the slope signal does not depend on the frame rate.
type HeightHistory struct {
	Interval time.Duration
	y        float32
	at       time.Time
	primed   bool
}

// Observe records y as the new sample if the interval has elapsed since the previous one.
// The first call always records. It reports whether a sample was taken.
func (h *HeightHistory) Observe(now time.Time, y float32) bool {
	if h.primed && now.Sub(h.at) <= h.Interval {
		return false
	}
	h.y = y
	h.at = now
	h.primed = true
	return true
}

// Delta returns y minus the stored sample; zero before the first sample.
func (h *HeightHistory) Delta(y float32) float32 {
	if !h.primed {
		return 0
	}
	return y - h.y
}

// Reset forgets the sample, e.g. after a respawn.
func (h *HeightHistory) Reset() {
	h.primed = false
}
