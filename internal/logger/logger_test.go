package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLogWritesMemoryAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "game.txt")
	l := New(path)
	l.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }

	l.Log("spawned")
	l.Logf("speed %.1f", 2.5)

	lines := l.Lines()
	if len(lines) != 2 {
		t.Fatalf("len(Lines()) = %d, want 2", len(lines))
	}
	if lines[0] != "[2025-03-01 12:00:00] spawned" {
		t.Errorf("lines[0] = %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "speed 2.5") {
		t.Errorf("lines[1] = %q", lines[1])
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got := strings.Count(string(data), "\n"); got != 2 {
		t.Errorf("file has %d lines, want 2", got)
	}
}

func TestLinesAreCapped(t *testing.T) {
	l := New("")
	for i := 0; i < maxLines+10; i++ {
		l.Logf("line %d", i)
	}
	lines := l.Lines()
	if len(lines) != maxLines {
		t.Fatalf("len(Lines()) = %d, want %d", len(lines), maxLines)
	}
	if !strings.HasSuffix(lines[0], "line 10") {
		t.Errorf("oldest kept line = %q, want line 10", lines[0])
	}
}

func TestThrottle(t *testing.T) {
	start := time.Unix(100, 0)
	th := Throttle{Interval: 200 * time.Millisecond}

	steps := []struct {
		offset time.Duration
		want   bool
	}{
		{0, true},
		{50 * time.Millisecond, false},
		{199 * time.Millisecond, false},
		{200 * time.Millisecond, true},
		{300 * time.Millisecond, false},
		{450 * time.Millisecond, true},
	}
	for _, s := range steps {
		if got := th.Allow(start.Add(s.offset)); got != s.want {
			t.Errorf("Allow(+%v) = %v, want %v", s.offset, got, s.want)
		}
	}

	var off Throttle
	if off.Allow(start) {
		t.Error("zero-interval throttle should block")
	}
}
