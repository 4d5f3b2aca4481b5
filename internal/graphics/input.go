package graphics

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"bin-viewer/internal/camera"
	"bin-viewer/internal/input"
)

const (
	orbitSpeed = 0.005 // radians per pixel of right-drag
	zoomStep   = 0.1   // distance fraction per wheel notch
)

// Pointer polls raylib for selection input. Mouse presses and touch starts are both reported;
// the viewer's input funnel drops the emulated duplicates. Releases select nothing and are not reported.
type Pointer struct {
	touching bool
}

// Poll returns the pointer events of this frame.
func (p *Pointer) Poll(now time.Duration) []input.PointerEvent {
	var out []input.PointerEvent
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		m := rl.GetMousePosition()
		out = append(out, input.PointerEvent{
			Kind:   input.MouseDown,
			Client: &input.Point{X: m.X, Y: m.Y},
			Time:   now,
		})
	}
	touching := rl.GetTouchPointCount() > 0
	if touching && !p.touching {
		t := rl.GetTouchPosition(0)
		out = append(out, input.PointerEvent{
			Kind:    input.TouchStart,
			Touches: []input.Point{{X: t.X, Y: t.Y}},
			Time:    now,
		})
	}
	p.touching = touching
	return out
}

// Orbit applies right-drag rotation and wheel zoom to cam.
func Orbit(cam *camera.Camera) {
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		d := rl.GetMouseDelta()
		cam.Orbit(-d.X*orbitSpeed, -d.Y*orbitSpeed)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		cam.Zoom(1 - wheel*zoomStep)
	}
}
