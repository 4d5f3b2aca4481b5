package graphics

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// WindowOptions configures Run.
type WindowOptions struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	TargetFPS  int
}

// Frame is passed to the per-frame callbacks.
type Frame struct {
	Now           time.Duration // time since the window opened
	Width, Height int
	Resized       bool // the window size changed since the previous frame
}

// Run opens a resizable window and runs the main loop until it is closed. Each frame it calls
// update (input, animation), then clears the screen and calls draw.
func Run(opts WindowOptions, update, draw func(Frame)) {
	flags := uint32(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	if opts.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull) // ESC toggles the console; close via window button
	rl.SetTargetFPS(int32(opts.TargetFPS))
	// Only taps select; drag, pinch and swipe gestures must not move the pick coordinates.
	rl.SetGesturesEnabled(uint32(rl.GestureTap))

	for !rl.WindowShouldClose() {
		f := Frame{
			Now:     time.Duration(rl.GetTime() * float64(time.Second)),
			Width:   rl.GetScreenWidth(),
			Height:  rl.GetScreenHeight(),
			Resized: rl.IsWindowResized(),
		}
		update(f)

		rl.BeginDrawing()
		rl.ClearBackground(Background)
		draw(f)
		rl.EndDrawing()
	}
}

// Background is the clear color behind the scene.
var Background = rl.NewColor(0xf4, 0xf6, 0xf8, 255)
