package graphics

import (
	"fog-explorer/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Hooks are the per-phase callbacks of the main loop. Only Update and Draw are required.
type Hooks struct {
	// Setup runs once after the window and GL context exist.
	Setup func()
	// Update runs every frame before drawing (input, simulation).
	Update func()
	// Draw runs between BeginDrawing and EndDrawing, after the screen is cleared.
	Draw func()
	// Teardown runs before the window closes.
	Teardown func()
	// Done, if set, ends the loop early when it returns true (e.g. on SIGINT).
	Done func() bool
}

// Run opens the window described by w and runs the main loop until the window is closed or Done reports true.
// ESC is left to the console; close via the window button.
func Run(w config.Window, h Hooks) {
	width, height := int32(w.Width), int32(w.Height)
	if w.Fullscreen {
		rl.SetConfigFlags(rl.FlagFullscreenMode)
		width, height = int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0))
	}
	rl.InitWindow(width, height, w.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(int32(w.TargetFPS))

	if h.Setup != nil {
		h.Setup()
	}
	if h.Teardown != nil {
		defer h.Teardown()
	}

	for !rl.WindowShouldClose() {
		if h.Done != nil && h.Done() {
			return
		}
		h.Update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		h.Draw()
		rl.EndDrawing()
	}
}
