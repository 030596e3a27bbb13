package debug

import (
	"fmt"
	"image/color"
	"runtime"

	"fog-explorer/internal/session"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug holds runtime overlays: FPS and heap in the top-right, movement HUD under them.
// All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowHUD      bool

	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

func (d *Debug) SetShowFPS(show bool)      { d.ShowFPS = show }
func (d *Debug) SetShowMemAlloc(show bool) { d.ShowMemAlloc = show }
func (d *Debug) SetShowHUD(show bool)      { d.ShowHUD = show }

// HUDLines formats the movement state of a frame.
func HUDLines(st session.Status) []string {
	r := st.Result
	lines := []string{
		fmt.Sprintf("speed %.2f / %.2f", r.Speed, r.SpeedCap),
		fmt.Sprintf("slope x%.2f (dy %+.3f)", r.SlopeFactor, r.DeltaY),
		fmt.Sprintf("grounded %t  moving %t", r.Grounded, r.Moving),
	}
	if st.Captured {
		lines = append(lines, "mouse captured")
	} else {
		lines = append(lines, "click to capture mouse")
	}
	return lines
}

// Draw renders enabled overlays. Call after the scene and before the console.
// FPS/Mem text is only recomputed every updateInterval frames.
func (d *Debug) Draw(st session.Status) {
	d.frameCount++
	update := d.frameCount%updateInterval == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}
	if d.ShowMemAlloc && d.lastMemText == "" {
		update = true
	}

	y := int32(padding)
	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawRight(d.lastFpsText, y, rl.Green)
		y += lineHeight
	}
	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", float64(d.lastMemStats.Alloc)/(1024*1024))
		}
		drawRight(d.lastMemText, y, rl.Green)
		y += lineHeight
	}
	if d.ShowHUD {
		for _, line := range HUDLines(st) {
			drawRight(line, y, rl.RayWhite)
			y += lineHeight
		}
	}
}

func drawRight(text string, y int32, c color.RGBA) {
	if text == "" {
		return
	}
	x := int32(rl.GetScreenWidth()) - rl.MeasureText(text, fontSize) - padding
	rl.DrawText(text, x, y, fontSize, c)
}
