package motion

import "time"

const (
	DefaultPulseScale    = 1.03
	DefaultPulseDuration = 300 * time.Millisecond
)

// Pulses tracks short highlight pulses keyed by an integer id (a scene node).
// While pulsing, a target is scaled by Factor; once the deadline passes it is reported as expired
// so its original scale can be restored.
type Pulses struct {
	Factor   float32
	Duration time.Duration

	until map[int]time.Duration
}

// NewPulses returns a pulse tracker with the default factor and duration.
func NewPulses() *Pulses {
	return &Pulses{
		Factor:   DefaultPulseScale,
		Duration: DefaultPulseDuration,
		until:    make(map[int]time.Duration),
	}
}

// Start begins or extends the pulse of id. started is false when id was already pulsing.
func (p *Pulses) Start(id int, now time.Duration) (started bool) {
	_, active := p.until[id]
	p.until[id] = now + p.Duration
	return !active
}

// Active reports whether id is currently pulsing.
func (p *Pulses) Active(id int) bool {
	_, ok := p.until[id]
	return ok
}

// Expire removes and returns the ids whose pulse deadline is at or before now.
func (p *Pulses) Expire(now time.Duration) []int {
	var out []int
	for id, until := range p.until {
		if now >= until {
			out = append(out, id)
			delete(p.until, id)
		}
	}
	return out
}
