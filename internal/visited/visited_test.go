package visited

import (
	"image"
	"path/filepath"
	"testing"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/go-gl/mathgl/mgl32"
)

func TestProject(t *testing.T) {
	p := NewPainter(NewMask(300, 300), DefaultRadius, 0)
	tests := []struct {
		name   string
		x, z   float32
		wu, wv float32
	}{
		{"origin is the centre", 0, 0, 150, 150},
		{"+X maps left", 75, 0, 75, 150},
		{"-X maps right", -75, 0, 225, 150},
		{"+Z maps up", 0, 75, 150, 75},
		{"far +X clamps to 0", 1000, 0, 0, 150},
		{"far -X clamps to width-1", -1000, 0, 299, 150},
		{"far -Z clamps to height-1", 0, -1000, 150, 299},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, v := p.Project(tt.x, tt.z)
			if u != tt.wu || v != tt.wv {
				t.Errorf("Project(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.z, u, v, tt.wu, tt.wv)
			}
		})
	}
}

func TestProjectCustomWorldSize(t *testing.T) {
	p := NewPainter(NewMask(100, 50), DefaultRadius, 400)
	u, v := p.Project(-100, 100)
	if u != 75 || v != 12.5 {
		t.Errorf("Project = (%v, %v), want (75, 12.5)", u, v)
	}
}

func TestPaintNeverDarkens(t *testing.T) {
	m := NewMask(300, 300)
	p := NewPainter(m, DefaultRadius, 0)

	p.Paint(mgl32.Vec3{0, 3, 0})
	centre := m.At(150, 150)
	edge := m.At(155, 150)
	if centre != 255 {
		t.Errorf("centre = %d, want 255", centre)
	}
	if edge == 0 || edge >= centre {
		t.Errorf("edge = %d, want a partial value below centre", edge)
	}
	if m.At(165, 150) != 0 {
		t.Errorf("texel outside radius painted: %d", m.At(165, 150))
	}

	p.Paint(mgl32.Vec3{0, 3, 0})
	if m.At(150, 150) < centre || m.At(155, 150) < edge {
		t.Errorf("repeat stamp darkened texels: centre %d edge %d", m.At(150, 150), m.At(155, 150))
	}
	if m.At(155, 150) <= edge {
		t.Errorf("repeat stamp did not accumulate at the edge: %d", m.At(155, 150))
	}
}

func TestStampClipsAtBorder(t *testing.T) {
	m := NewMask(20, 20)
	m.StampRadial(0, 0, 10)
	m.StampRadial(19, 19, 10)
	if m.At(0, 0) != 255 || m.At(19, 19) != 255 {
		t.Errorf("corner stamps = %d, %d", m.At(0, 0), m.At(19, 19))
	}
	if m.At(-1, 0) != 0 || m.At(20, 20) != 0 {
		t.Error("At outside bounds should be 0")
	}
	m.StampRadial(5, 5, 0)
}

func TestFillRectAndFlush(t *testing.T) {
	m := NewMask(10, 10)
	var flushes int
	m.OnFlush(func(img *image.Gray) {
		flushes++
		if img.Rect.Dx() != 10 {
			t.Errorf("listener got %v", img.Rect)
		}
	})
	m.FillRect(-5, -5, 8, 8, 200)
	if m.At(2, 2) != 200 || m.At(3, 3) != 0 {
		t.Errorf("FillRect clipped wrong: %d %d", m.At(2, 2), m.At(3, 3))
	}
	if got := m.Intensity(2, 2); got < 0.78 || got > 0.79 {
		t.Errorf("Intensity = %v", got)
	}
	m.Flush()
	m.Flush()
	if flushes != 1 {
		t.Errorf("flushes = %d, want 1 (second flush had no changes)", flushes)
	}
}

func TestNewPainterClearsRaster(t *testing.T) {
	m := NewMask(4, 4)
	m.FillRect(0, 0, 4, 4, 255)
	NewPainter(m, 1, 0)
	if m.At(1, 1) != 0 {
		t.Errorf("painter did not clear raster: %d", m.At(1, 1))
	}
}

func TestExport(t *testing.T) {
	m := NewMask(32, 16)
	m.StampRadial(16, 8, 4)
	path := filepath.Join(t.TempDir(), "out", "visited.png")
	if err := Export(m, path); err != nil {
		t.Fatalf("Export: %v", err)
	}
	img, err := imgio.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 16 {
		t.Errorf("bounds = %v", b)
	}
}
