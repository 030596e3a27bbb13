package scene

import (
	"image"
	"image/color"
	"testing"
)

func TestReveal(t *testing.T) {
	c := color.RGBA{80, 160, 70, 255}
	g := Grey(c)
	if g.R != g.G || g.G != g.B {
		t.Fatalf("Grey(%v) = %v, not grey", c, g)
	}

	tests := []struct {
		name      string
		intensity float32
		want      color.RGBA
	}{
		{"unvisited", 0, g},
		{"fully visited", 1, c},
		{"below range", -3, g},
		{"above range", 7, c},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reveal(c, tt.intensity); got != tt.want {
				t.Errorf("Reveal(%v) = %v, want %v", tt.intensity, got, tt.want)
			}
		})
	}

	half := Reveal(c, 0.5)
	if half.G <= g.G || half.G >= c.G {
		t.Errorf("half reveal G = %d, want between %d and %d", half.G, g.G, c.G)
	}
}

func TestTileColorBands(t *testing.T) {
	if TileColor(0) != bands[0].c {
		t.Error("lowest noise should be the first band")
	}
	if TileColor(1) != bands[len(bands)-1].c {
		t.Error("highest noise should be the last band")
	}
	if TileColor(0.5) != (color.RGBA{80, 160, 70, 255}) {
		t.Errorf("TileColor(0.5) = %v, want grass", TileColor(0.5))
	}
}

func TestGrayToRGBA(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 3, 2))
	src.SetGray(2, 1, color.Gray{Y: 200})
	dst := make([]color.RGBA, 6)
	GrayToRGBA(src, dst)
	if dst[5] != (color.RGBA{200, 200, 200, 255}) {
		t.Errorf("dst[5] = %v", dst[5])
	}
	if dst[0] != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("dst[0] = %v, want opaque black", dst[0])
	}
}
