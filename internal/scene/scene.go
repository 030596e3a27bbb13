package scene

import (
	"image"
	"image/color"

	"fog-explorer/internal/camera"
	"fog-explorer/internal/mapgen"
	"fog-explorer/internal/visited"

	"github.com/go-gl/mathgl/mgl32"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	gridExtent     = 50
	gridMinorStep  = 1
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220

	minimapSize    = 180
	minimapPadding = 12
)

var (
	playerColor  = rl.NewColor(240, 200, 60, 255)
	minimapFrame = rl.NewColor(200, 200, 200, 255)
	markerColor  = rl.NewColor(230, 60, 60, 255)
)

// Tracked is what the scene draws as the player.
type Tracked interface {
	Position() mgl32.Vec3
}

// Scene holds the 3D camera and draws the terrain, the player and the visited-area minimap.
// Terrain tiles start grey and take their colour as the visited mask brightens under them.
type Scene struct {
	Camera         rl.Camera3D
	GridVisible    bool
	MinimapVisible bool

	tiles   []mapgen.Tile
	base    []color.RGBA
	mask    *visited.Mask
	painter *visited.Painter
	player  Tracked
	radius  float32

	minimap       rl.Texture2D
	minimapPixels []color.RGBA
	minimapDirty  bool
	minimapLoaded bool
}

// New returns a scene over the generated terrain. The mask and painter supply the reveal state.
// Camera: position (10,10,10), target (0,0,0), up (0,1,0), fovy 45° until the first SetPose.
func New(terrain mapgen.Terrain, mask *visited.Mask, painter *visited.Painter) *Scene {
	s := &Scene{
		tiles:          terrain.Tiles,
		base:           make([]color.RGBA, len(terrain.Tiles)),
		mask:           mask,
		painter:        painter,
		MinimapVisible: true,
	}
	s.Camera.Position = rl.NewVector3(10, 10, 10)
	s.Camera.Target = rl.NewVector3(0, 0, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 45
	s.Camera.Projection = rl.CameraPerspective
	for i, t := range terrain.Tiles {
		s.base[i] = TileColor(t.Noise)
	}
	if mask != nil {
		mask.OnFlush(s.markMinimap)
	}
	return s
}

// SetPlayer sets the body drawn as a sphere of the given radius. nil hides it.
func (s *Scene) SetPlayer(p Tracked, radius float32) {
	s.player = p
	s.radius = radius
}

// SetGridVisible sets whether the editor grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// SetPose points the raylib camera along the follow-camera pose.
func (s *Scene) SetPose(p camera.Pose) {
	if p == (camera.Pose{}) {
		return
	}
	s.Camera.Position = toRL(p.Position)
	s.Camera.Target = toRL(p.Target)
}

func (s *Scene) markMinimap(img *image.Gray) {
	if n := img.Rect.Dx() * img.Rect.Dy(); len(s.minimapPixels) != n {
		s.minimapPixels = make([]color.RGBA, n)
	}
	GrayToRGBA(img, s.minimapPixels)
	s.minimapDirty = true
}

// Draw renders the 3D scene and the minimap. Call after ClearBackground and before 2D overlays.
func (s *Scene) Draw() {
	rl.BeginMode3D(s.Camera)
	s.drawTerrain()
	if s.player != nil {
		rl.DrawSphere(toRL(s.player.Position()), s.radius, playerColor)
	}
	if s.GridVisible {
		drawEditorGrid()
	}
	rl.EndMode3D()

	if s.MinimapVisible {
		s.drawMinimap()
	}
}

func (s *Scene) drawTerrain() {
	for i, t := range s.tiles {
		c := s.base[i]
		if s.mask != nil && s.painter != nil {
			u, v := s.painter.Project(t.Center.X(), t.Center.Z())
			c = Reveal(c, s.mask.Intensity(int(u), int(v)))
		}
		rl.DrawCubeV(toRL(t.Center), extentRL(t.Size), c)
	}
}

// drawMinimap uploads the mask when it changed and draws it in the top-left corner with a player marker.
func (s *Scene) drawMinimap() {
	if s.mask == nil {
		return
	}
	b := s.mask.Bounds()
	if !s.minimapLoaded {
		img := rl.GenImageColor(b.Dx(), b.Dy(), rl.Black)
		s.minimap = rl.LoadTextureFromImage(img)
		rl.UnloadImage(img)
		s.minimapLoaded = rl.IsTextureValid(s.minimap)
		if !s.minimapLoaded {
			return
		}
		s.minimapDirty = s.minimapPixels != nil
	}
	if s.minimapDirty {
		rl.UpdateTexture(s.minimap, s.minimapPixels)
		s.minimapDirty = false
	}

	dst := rl.NewRectangle(minimapPadding, minimapPadding, minimapSize, minimapSize)
	// The mask stores world +X towards u=0; a negative source width flips it so +X reads right.
	src := rl.NewRectangle(0, 0, -float32(b.Dx()), float32(b.Dy()))
	rl.DrawTexturePro(s.minimap, src, dst, rl.NewVector2(0, 0), 0, rl.White)
	rl.DrawRectangleLinesEx(dst, 1, minimapFrame)

	if s.player != nil && s.painter != nil {
		p := s.player.Position()
		u, v := s.painter.Project(p.X(), p.Z())
		x := dst.X + minimapX(u, float32(b.Dx()))*dst.Width
		y := dst.Y + v/float32(b.Dy())*dst.Height
		rl.DrawCircleV(rl.NewVector2(x, y), 3, markerColor)
	}
}

// Unload frees GPU resources. Call before the window closes.
func (s *Scene) Unload() {
	if s.minimapLoaded {
		rl.UnloadTexture(s.minimap)
		s.minimapLoaded = false
	}
}

// mirror converts between world space, where +X is to the right of +Z, and raylib's
// right-handed space. It is its own inverse.
func mirror(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{-v[0], v[1], v[2]}
}

// toRL maps a world point into raylib space.
func toRL(v mgl32.Vec3) rl.Vector3 {
	m := mirror(v)
	return rl.NewVector3(m[0], m[1], m[2])
}

// extentRL passes sizes through unmirrored; a negative width would flip the cube's winding.
func extentRL(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v[0], v[1], v[2])
}

// minimapX is the horizontal position, in [0,1], of mask column u on the flipped minimap.
func minimapX(u, width float32) float32 {
	return 1 - u/width
}

// drawEditorGrid draws a grid on the XZ plane with major/minor lines and axis lines.
// Reuses start/end vectors to avoid per-frame allocations in the hot loop.
func drawEditorGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisY := rl.NewColor(80, 220, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	var start, end rl.Vector3
	for x := -gridExtent; x <= gridExtent; x += gridMinorStep {
		c := major
		if x%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(x), 0, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(x), 0, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z += gridMinorStep {
		c := major
		if z%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(-gridExtent), 0, float32(z)
		end.X, end.Y, end.Z = float32(gridExtent), 0, float32(z)
		rl.DrawLine3D(start, end, c)
	}

	// X=red, Y=green, Z=blue
	start.X, start.Y, start.Z = float32(-gridExtent), 0, 0
	end.X, end.Y, end.Z = float32(gridExtent), 0, 0
	rl.DrawLine3D(start, end, axisX)
	start.X, start.Y, start.Z = 0, float32(-gridExtent), 0
	end.X, end.Y, end.Z = 0, float32(gridExtent), 0
	rl.DrawLine3D(start, end, axisY)
	start.X, start.Y, start.Z = 0, 0, float32(-gridExtent)
	end.X, end.Y, end.Z = 0, 0, float32(gridExtent)
	rl.DrawLine3D(start, end, axisZ)
}
