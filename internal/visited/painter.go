package visited

import (
	"fog-explorer/internal/vmath"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultRadius is the stamp radius in texels.
const DefaultRadius = 10

// Painter marks the area around the body as visited. The world square of side WorldSize,
// centred on the origin, maps onto the raster with X mirrored and Z flipped.
type Painter struct {
	raster    Raster
	radius    float32
	worldSize float32
	width     float32
	height    float32
}

// NewPainter clears raster to black and returns a painter over it. worldSize <= 0 means
// max(width, height) of the raster.
func NewPainter(raster Raster, radius, worldSize float32) *Painter {
	b := raster.Bounds()
	w, h := b.Dx(), b.Dy()
	if worldSize <= 0 {
		worldSize = float32(max(w, h))
	}
	raster.FillRect(b.Min.X, b.Min.Y, w, h, 0)
	raster.Flush()
	return &Painter{
		raster:    raster,
		radius:    radius,
		worldSize: worldSize,
		width:     float32(w),
		height:    float32(h),
	}
}

// Project maps a world X/Z position to raster coordinates, clamped to the raster.
func (p *Painter) Project(x, z float32) (u, v float32) {
	u = (-x/p.worldSize + 0.5) * p.width
	v = (0.5 - z/p.worldSize) * p.height
	return vmath.Clamp(u, 0, p.width-1), vmath.Clamp(v, 0, p.height-1)
}

// Paint stamps the visited disc under position and flushes the raster.
func (p *Painter) Paint(position mgl32.Vec3) {
	u, v := p.Project(position.X(), position.Z())
	p.raster.StampRadial(u, v, p.radius)
	p.raster.Flush()
}
