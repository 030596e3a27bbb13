package visited

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"
)

// Raster is the drawing surface the painter stamps into.
type Raster interface {
	Bounds() image.Rectangle
	FillRect(x, y, w, h int, v uint8)
	// StampRadial adds a soft disc: full intensity at (cx, cy) fading linearly to none at radius.
	StampRadial(cx, cy, radius float32)
	// Flush publishes pending changes to consumers (e.g. a GPU texture).
	Flush()
}

// Mask is an in-memory greyscale Raster. Stamps saturate-add, so a texel never gets darker.
type Mask struct {
	img       *image.Gray
	listeners []func(*image.Gray)
	dirty     bool
}

// NewMask returns a black mask of the given size.
func NewMask(width, height int) *Mask {
	return &Mask{img: image.NewGray(image.Rect(0, 0, width, height))}
}

func (m *Mask) Bounds() image.Rectangle { return m.img.Rect }

// Image exposes the backing image. Callers must not keep it across frames if they need a stable copy.
func (m *Mask) Image() *image.Gray { return m.img }

// At returns the intensity at (x, y), 0 outside the mask.
func (m *Mask) At(x, y int) uint8 {
	if !(image.Point{x, y}.In(m.img.Rect)) {
		return 0
	}
	return m.img.GrayAt(x, y).Y
}

// Intensity returns At scaled to [0, 1].
func (m *Mask) Intensity(x, y int) float32 {
	return float32(m.At(x, y)) / 255
}

// OnFlush registers fn to receive the mask on every Flush that follows a change.
func (m *Mask) OnFlush(fn func(*image.Gray)) {
	m.listeners = append(m.listeners, fn)
}

// FillRect sets every texel of the rectangle, clipped to the mask, to v.
func (m *Mask) FillRect(x, y, w, h int, v uint8) {
	r := image.Rect(x, y, x+w, y+h).Intersect(m.img.Rect)
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			m.img.SetGray(px, py, color.Gray{Y: v})
		}
	}
	m.dirty = true
}

func (m *Mask) StampRadial(cx, cy, radius float32) {
	if radius <= 0 {
		return
	}
	r := image.Rect(
		int(math32.Floor(cx-radius)), int(math32.Floor(cy-radius)),
		int(math32.Ceil(cx+radius))+1, int(math32.Ceil(cy+radius))+1,
	).Intersect(m.img.Rect)
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			dx := float32(px) - cx
			dy := float32(py) - cy
			d := math32.Sqrt(dx*dx + dy*dy)
			if d >= radius {
				continue
			}
			add := int((1 - d/radius) * 255)
			i := m.img.PixOffset(px, py)
			sum := int(m.img.Pix[i]) + add
			if sum > 255 {
				sum = 255
			}
			m.img.Pix[i] = uint8(sum)
		}
	}
	m.dirty = true
}

// Flush calls the listeners if anything changed since the last Flush.
func (m *Mask) Flush() {
	if !m.dirty {
		return
	}
	m.dirty = false
	for _, fn := range m.listeners {
		fn(m.img)
	}
}
