package input

import "time"

// DefaultDuplicateWindow is how long after an accepted event other event kinds are treated as
// emulated copies of the same gesture (touch -> mouse -> click).
const DefaultDuplicateWindow = 350 * time.Millisecond

// Funnel lets one event per gesture through. Repeats of the same kind are always accepted,
// so rapid double clicks still select twice.
type Funnel struct {
	Window time.Duration

	last     Kind
	lastTime time.Duration
	seen     bool
}

// NewFunnel returns a funnel using DefaultDuplicateWindow.
func NewFunnel() *Funnel {
	return &Funnel{Window: DefaultDuplicateWindow}
}

// Accept reports whether ev should be handled and records it when it is.
func (f *Funnel) Accept(ev PointerEvent) bool {
	if f.seen && ev.Kind != f.last && ev.Time-f.lastTime < f.Window {
		return false
	}
	f.last = ev.Kind
	f.lastTime = ev.Time
	f.seen = true
	return true
}
