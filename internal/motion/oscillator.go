package motion

import "time"

const (
	DefaultPlatformMin  = 12
	DefaultPlatformMax  = 26
	DefaultPlatformStep = 0.4
	DefaultPlatformTick = 60 * time.Millisecond
)

// Oscillator moves a value back and forth between Min and Max by Step per tick, reversing at
// each bound. The value never leaves [Min, Max].
type Oscillator struct {
	Min, Max float32
	Step     float32

	value float32
	dir   float32
}

// NewOscillator starts at start moving towards Max. start is clamped into [lo, hi].
func NewOscillator(start, lo, hi, step float32) *Oscillator {
	if lo > hi {
		lo, hi = hi, lo
	}
	o := &Oscillator{Min: lo, Max: hi, Step: step, value: start, dir: 1}
	o.value = min(max(o.value, lo), hi)
	return o
}

// Value returns the current position.
func (o *Oscillator) Value() float32 {
	return o.value
}

// Direction returns +1 while moving towards Max and -1 towards Min.
func (o *Oscillator) Direction() float32 {
	return o.dir
}

// Tick advances one step.
func (o *Oscillator) Tick() float32 {
	o.value += o.Step * o.dir
	if o.value >= o.Max {
		o.value = o.Max
		o.dir = -1
	} else if o.value <= o.Min {
		o.value = o.Min
		o.dir = 1
	}
	return o.value
}

// Ticker converts frame timestamps into fixed-interval ticks, standing in for an interval timer
// inside the single-threaded frame loop.
type Ticker struct {
	Interval time.Duration

	last    time.Duration
	started bool
}

// NewTicker returns a ticker firing every interval.
func NewTicker(interval time.Duration) *Ticker {
	return &Ticker{Interval: interval}
}

// Due returns how many ticks elapsed up to now. The first call only records the start time.
func (t *Ticker) Due(now time.Duration) int {
	if !t.started {
		t.started = true
		t.last = now
		return 0
	}
	if t.Interval <= 0 || now <= t.last {
		return 0
	}
	n := int((now - t.last) / t.Interval)
	t.last += time.Duration(n) * t.Interval
	return n
}
