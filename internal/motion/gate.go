// Package motion holds the time-driven animations of the viewer. Every animation is a plain state
// object advanced by the frame loop with the current time, so tests can drive it with simulated time.
package motion

import (
	"time"

	"github.com/chewxy/math32"
)

const (
	DefaultGateDuration = 400 * time.Millisecond
	// GateOpenAngle is the gate's X rotation when open (-60°).
	GateOpenAngle   = -math32.Pi / 3
	GateClosedAngle = 0
)

// GateState is the logical position of the gate.
type GateState int

const (
	Closed GateState = iota
	Open
)

func (s GateState) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// EaseOutCubic maps linear progress p in [0, 1] to 1-(1-p)^3.
func EaseOutCubic(p float32) float32 {
	q := 1 - p
	return 1 - q*q*q
}

// GateAnimation interpolates the gate's rotation angle between closed and open.
type GateAnimation struct {
	Duration time.Duration

	state       GateState
	startAngle  float32
	targetAngle float32
	startTime   time.Duration
	angle       float32
	running     bool
}

// NewGateAnimation returns a closed gate at rest.
func NewGateAnimation() *GateAnimation {
	return &GateAnimation{Duration: DefaultGateDuration}
}

// State returns the state the gate is in or moving towards.
func (a *GateAnimation) State() GateState {
	return a.state
}

// Angle returns the angle computed by the last Advance or Toggle.
func (a *GateAnimation) Angle() float32 {
	return a.angle
}

// Running reports whether an interpolation is still in progress.
func (a *GateAnimation) Running() bool {
	return a.running
}

// Toggle flips the state and restarts interpolation from the angle at now, so a toggle in the
// middle of a movement continues from where the gate currently is.
func (a *GateAnimation) Toggle(now time.Duration) GateState {
	from := a.Advance(now)
	if a.state == Open {
		a.state = Closed
		a.targetAngle = GateClosedAngle
	} else {
		a.state = Open
		a.targetAngle = GateOpenAngle
	}
	a.startAngle = from
	a.startTime = now
	a.running = true
	return a.state
}

// Advance returns the angle at now. Call it every frame while Running.
func (a *GateAnimation) Advance(now time.Duration) float32 {
	if !a.running {
		return a.angle
	}
	p := float32(1)
	if a.Duration > 0 {
		p = float32(now-a.startTime) / float32(a.Duration)
		p = math32.Max(0, math32.Min(1, p))
	}
	a.angle = a.startAngle + (a.targetAngle-a.startAngle)*EaseOutCubic(p)
	if p >= 1 {
		a.angle = a.targetAngle
		a.running = false
	}
	return a.angle
}
