package debug

import (
	"strings"
	"testing"

	"fog-explorer/internal/locomotion"
	"fog-explorer/internal/session"
)

func TestHUDLines(t *testing.T) {
	st := session.Status{
		Result: locomotion.Result{Speed: 12.5, SpeedCap: 20, SlopeFactor: 1.08, DeltaY: -0.1, Grounded: true, Moving: true},
	}
	lines := HUDLines(st)
	want := []string{"speed 12.50 / 20.00", "slope x1.08 (dy -0.100)", "grounded true  moving true", "click to capture mouse"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}

	st.Captured = true
	if last := HUDLines(st)[3]; !strings.Contains(last, "captured") || strings.HasPrefix(last, "click") {
		t.Errorf("captured line = %q", last)
	}
}
