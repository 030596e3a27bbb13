package scene

import (
	"image"
	"image/color"

	"fog-explorer/internal/vmath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Height bands for terrain colouring, by normalized noise.
var bands = []struct {
	below float32
	c     color.RGBA
}{
	{0.35, color.RGBA{70, 120, 200, 255}},  // lowland water
	{0.45, color.RGBA{210, 190, 130, 255}}, // sand
	{0.65, color.RGBA{80, 160, 70, 255}},   // grass
	{0.80, color.RGBA{110, 100, 90, 255}},  // rock
	{2, color.RGBA{240, 240, 245, 255}},    // snow
}

// TileColor picks the full colour of a tile from its normalized height.
func TileColor(noise float32) color.RGBA {
	for _, b := range bands {
		if noise < b.below {
			return b.c
		}
	}
	return bands[len(bands)-1].c
}

// Grey returns the luminance of c as an opaque grey.
func Grey(c color.RGBA) color.RGBA {
	y := color.GrayModel.Convert(c).(color.Gray).Y
	return color.RGBA{y, y, y, 255}
}

// Reveal blends from the grey of c (intensity 0) to c itself (intensity 1).
func Reveal(c color.RGBA, intensity float32) color.RGBA {
	return rl.ColorLerp(Grey(c), c, vmath.Clamp(intensity, 0, 1))
}

// GrayToRGBA expands src into dst row by row; dst must hold src.Rect.Dx()*src.Rect.Dy() pixels.
func GrayToRGBA(src *image.Gray, dst []color.RGBA) {
	w, h := src.Rect.Dx(), src.Rect.Dy()
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w]
		for x, v := range row {
			dst[y*w+x] = color.RGBA{v, v, v, 255}
		}
	}
}
