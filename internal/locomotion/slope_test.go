package locomotion

import (
	"testing"
	"time"

	"github.com/chewxy/math32"
)

func TestSlopeFactor(t *testing.T) {
	c := DefaultSlope()
	tests := []struct {
		name   string
		deltaY float32
		want   float32
	}{
		{"flat", 0, 1},
		{"tiny climb below threshold", 0.0049, 1},
		{"tiny drop below threshold", -0.0049, 1},
		{"descending one unit", -1, 1.8},
		{"descending half unit", -0.5, 1.4},
		{"gentle climb", 0.5, 0.7},
		{"steep climb floors", 2, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SlopeFactor(tt.deltaY, c)
			if math32.Abs(got-tt.want) > 1e-5 {
				t.Errorf("SlopeFactor(%v) = %v, want %v", tt.deltaY, got, tt.want)
			}
		})
	}
}

func TestSlopeFactorExactValues(t *testing.T) {
	c := DefaultSlope()
	if got := SlopeFactor(0.004, c); got != 1.0 {
		t.Errorf("flat factor = %v, want exactly 1", got)
	}
	if got := SlopeFactor(2, c); got != 0.5 {
		t.Errorf("floored factor = %v, want exactly 0.5", got)
	}
	if got := SlopeFactor(-50, c); got <= 40 {
		t.Errorf("descending factor = %v, want unbounded growth", got)
	}
}

func TestHeightHistoryIsTimeGated(t *testing.T) {
	start := time.Unix(1000, 0)
	h := HeightHistory{Interval: 100 * time.Millisecond}

	if d := h.Delta(5); d != 0 {
		t.Errorf("Delta before first sample = %v, want 0", d)
	}
	if !h.Observe(start, 10) {
		t.Fatal("first Observe should sample")
	}

	// Many frames within the window do not move the sample.
	for ms := 1; ms <= 100; ms += 16 {
		if h.Observe(start.Add(time.Duration(ms)*time.Millisecond), float32(10+ms)) {
			t.Fatalf("sampled again after %dms", ms)
		}
	}
	if d := h.Delta(9); d != -1 {
		t.Errorf("Delta(9) = %v, want -1", d)
	}
	if h.Observe(start.Add(100*time.Millisecond), 8) {
		t.Error("sampled at exactly the interval")
	}
	if !h.Observe(start.Add(101*time.Millisecond), 8) {
		t.Error("did not sample after the interval")
	}
	if d := h.Delta(8); d != 0 {
		t.Errorf("Delta after resample = %v, want 0", d)
	}

	h.Reset()
	if d := h.Delta(100); d != 0 {
		t.Errorf("Delta after Reset = %v, want 0", d)
	}
}
