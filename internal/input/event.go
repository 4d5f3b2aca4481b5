// Package input turns raw pointer, mouse, touch and click events into normalized device coordinates.
package input

import "time"

// Kind identifies the source of a PointerEvent.
type Kind int

const (
	PointerDown Kind = iota
	MouseDown
	TouchStart
	TouchEnd
	Click
)

func (k Kind) String() string {
	switch k {
	case PointerDown:
		return "pointerdown"
	case MouseDown:
		return "mousedown"
	case TouchStart:
		return "touchstart"
	case TouchEnd:
		return "touchend"
	case Click:
		return "click"
	}
	return "unknown"
}

// Point is a position in window (client) pixels.
type Point struct {
	X, Y float32
}

// PointerEvent is one raw input event. Client is set for pointer, mouse and click events;
// Touches holds the active touch points and ChangedTouches the points that ended (touch-end).
type PointerEvent struct {
	Kind           Kind
	Client         *Point
	Touches        []Point
	ChangedTouches []Point
	Time           time.Duration
}

// Rect is the on-screen rectangle of the interactive surface.
type Rect struct {
	Left, Top, Width, Height float32
}

// Position returns the event's client coordinates. Touch-start uses the first active touch,
// touch-end the first changed touch (its last known position).
func (ev PointerEvent) Position() (Point, bool) {
	switch ev.Kind {
	case TouchStart:
		if len(ev.Touches) > 0 {
			return ev.Touches[0], true
		}
	case TouchEnd:
		if len(ev.ChangedTouches) > 0 {
			return ev.ChangedTouches[0], true
		}
	}
	if ev.Client != nil {
		return *ev.Client, true
	}
	if len(ev.Touches) > 0 {
		return ev.Touches[0], true
	}
	return Point{}, false
}

// Normalize maps the event position into [-1, 1] on both axes with Y pointing up.
// ok is false when the event carries no coordinates or the viewport has no area.
func Normalize(ev PointerEvent, viewport Rect) (x, y float32, ok bool) {
	p, ok := ev.Position()
	if !ok || viewport.Width <= 0 || viewport.Height <= 0 {
		return 0, 0, false
	}
	x = (p.X-viewport.Left)/viewport.Width*2 - 1
	y = -(p.Y-viewport.Top)/viewport.Height*2 + 1
	return x, y, true
}
