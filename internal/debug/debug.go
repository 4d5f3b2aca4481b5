package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 18
	padding    = 12
	lineHeight = fontSize + 4
	// Text is rebuilt every refreshFrames frames to keep the overlay allocation-free in between.
	refreshFrames = 30
)

var textColor = rl.NewColor(0x1f, 0x7a, 0x4d, 255)

// Debug draws the FPS and heap overlays in the top-right corner.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool

	frame   uint32
	fpsText string
	memText string
	mem     runtime.MemStats
}

// New returns an overlay with the given counters enabled.
func New(showFPS, showMemAlloc bool) *Debug {
	return &Debug{ShowFPS: showFPS, ShowMemAlloc: showMemAlloc}
}

// SetShowFPS sets whether the FPS counter is drawn.
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowMemAlloc sets whether the heap counter is drawn under the FPS counter.
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
}

// Draw renders the enabled counters. Call last so they sit on top of the console.
func (d *Debug) Draw() {
	d.frame++
	refresh := d.frame%refreshFrames == 1
	y := int32(padding)
	if d.ShowFPS {
		if refresh || d.fpsText == "" {
			d.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawRight(d.fpsText, y)
		y += lineHeight
	}
	if d.ShowMemAlloc {
		if refresh || d.memText == "" {
			runtime.ReadMemStats(&d.mem)
			d.memText = fmt.Sprintf("Mem: %.2f MiB", float64(d.mem.Alloc)/(1<<20))
		}
		drawRight(d.memText, y)
	}
}

func drawRight(text string, y int32) {
	x := int32(rl.GetScreenWidth()) - rl.MeasureText(text, fontSize) - padding
	rl.DrawText(text, x, y, fontSize, textColor)
}
