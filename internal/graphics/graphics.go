package graphics

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Window describes the application window.
type Window struct {
	Width      int32
	Height     int32
	Title      string
	VSync      bool
	EscClose   bool       // ESC closes the window; otherwise close via the window button
	ClearColor color.RGBA // background behind the scene
}

// Run opens the window and runs the main loop. Each frame it calls update (input,
// camera), then clears the screen and calls draw. It returns when the window closes.
// The window is resizable and MSAA stays off so circles keep hard edges.
func Run(w Window, update, draw func()) {
	flags := uint32(rl.FlagWindowResizable)
	if w.VSync {
		flags |= rl.FlagVsyncHint
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(w.Width, w.Height, w.Title)
	defer rl.CloseWindow()

	if w.EscClose {
		rl.SetExitKey(rl.KeyEscape)
	} else {
		rl.SetExitKey(rl.KeyNull)
	}

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(w.ClearColor)
		draw()
		rl.EndDrawing()
	}
}
