package mapgen

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// minHeight keeps every tile a solid, walkable slab.
const minHeight = 0.15

// Options controls procedural terrain generation.
// Width/Depth are in tiles; TileSize is the world size of one tile on X/Z.
// HeightScale is the maximum height of the terrain in world units.
// Seed controls randomness; Seed == 0 uses a time-based seed.
// Octaves, Frequency, Lacunarity, and Gain control the fractal noise shape.
type Options struct {
	Width       int
	Depth       int
	TileSize    float32
	HeightScale float32

	Seed       int64
	Octaves    int
	Frequency  float32
	Lacunarity float32
	Gain       float32
}

// DefaultOptions returns a 300x300 world made of 48x48 tiles.
func DefaultOptions() Options {
	return Options{
		Width:       48,
		Depth:       48,
		TileSize:    6.25,
		HeightScale: 12,
		Octaves:     4,
		Frequency:   0.08,
		Lacunarity:  2.0,
		Gain:        0.5,
	}
}

// Tile is one column of terrain standing on Y=0.
type Tile struct {
	Center mgl32.Vec3
	Size   mgl32.Vec3
	// Noise is the raw [0,1] height sample, handy for colouring.
	Noise float32
}

// Terrain is a generated map.
type Terrain struct {
	Tiles []Tile
	// MaxHeight is the top of the highest tile.
	MaxHeight float32
	// Span is the world size on X and Z; the terrain is centered on the origin.
	Span mgl32.Vec2
	Seed int64
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.TileSize <= 0 {
		o.TileSize = d.TileSize
	}
	if o.HeightScale <= 0 {
		o.HeightScale = d.HeightScale
	}
	if o.Octaves <= 0 {
		o.Octaves = d.Octaves
	}
	if o.Frequency <= 0 {
		o.Frequency = d.Frequency
	}
	if o.Lacunarity <= 0 {
		o.Lacunarity = d.Lacunarity
	}
	if o.Gain <= 0 {
		o.Gain = d.Gain
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	return o
}

// Generate builds the terrain as a grid of boxes sitting on Y=0, centered around the world
// origin on XZ. Each box height comes from fractal noise.
func Generate(opts Options) Terrain {
	if opts.Width <= 0 || opts.Depth <= 0 {
		return Terrain{}
	}
	opts = opts.withDefaults()

	halfTile := opts.TileSize * 0.5
	extentX := float32(opts.Width) * opts.TileSize * 0.5
	extentZ := float32(opts.Depth) * opts.TileSize * 0.5
	startX := -extentX + halfTile
	startZ := -extentZ + halfTile

	t := Terrain{
		Tiles: make([]Tile, 0, opts.Width*opts.Depth),
		Span:  mgl32.Vec2{extentX * 2, extentZ * 2},
		Seed:  opts.Seed,
	}
	for z := 0; z < opts.Depth; z++ {
		for x := 0; x < opts.Width; x++ {
			h := fractalValueNoise2D(float32(x)*opts.Frequency, float32(z)*opts.Frequency, opts.Seed, opts.Octaves, opts.Lacunarity, opts.Gain)
			if !isFinite(h) {
				h = 0
			}
			height := minHeight + h*(opts.HeightScale-minHeight)
			if height <= 0 {
				height = minHeight
			}
			t.Tiles = append(t.Tiles, Tile{
				Center: mgl32.Vec3{startX + float32(x)*opts.TileSize, height * 0.5, startZ + float32(z)*opts.TileSize},
				Size:   mgl32.Vec3{opts.TileSize, height, opts.TileSize},
				Noise:  h,
			})
			if height > t.MaxHeight {
				t.MaxHeight = height
			}
		}
	}
	return t
}

// fractalValueNoise2D is simple fractal value noise: layered smooth value noise with
// configurable octaves, lacunarity, and gain. Output is in [0,1].
func fractalValueNoise2D(x, y float32, seed int64, octaves int, lacunarity, gain float32) float32 {
	var sum float32
	var amplitude float32 = 1
	var maxAmp float32
	freq := float32(1)

	for i := 0; i < octaves; i++ {
		sum += valueNoise2D(x*freq, y*freq, int32(seed)+int32(i)) * amplitude
		maxAmp += amplitude
		amplitude *= gain
		freq *= lacunarity
	}
	if maxAmp == 0 {
		return 0
	}
	return sum / maxAmp
}

// valueNoise2D is smooth value noise in [0,1] using a hash-based lattice and smoothstep easing.
func valueNoise2D(x, y float32, seed int32) float32 {
	x0 := int32(math.Floor(float64(x)))
	y0 := int32(math.Floor(float64(y)))
	sx := smoothStep(x - float32(x0))
	sy := smoothStep(y - float32(y0))

	ix0 := lerp(hash2D(x0, y0, seed), hash2D(x0+1, y0, seed), sx)
	ix1 := lerp(hash2D(x0, y0+1, seed), hash2D(x0+1, y0+1, seed), sx)
	return lerp(ix0, ix1, sy)
}

// hash2D maps integer lattice coordinates to a deterministic pseudo-random float in [0,1].
func hash2D(x, y, seed int32) float32 {
	n := x*374761393 + y*668265263 + seed*362437
	n = (n ^ (n >> 13)) * 1274126177
	n = n ^ (n >> 16)
	const invMaxInt = 1.0 / 2147483647.0
	return float32(n&0x7fffffff) * float32(invMaxInt)
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// smoothStep is cubic easing: 3t^2 - 2t^3.
func smoothStep(t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}

func isFinite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}
