// Package selection applies a picked entity to the viewer's selection state.
package selection

import (
	"errors"
	"time"

	"bin-viewer/internal/geom"
	"bin-viewer/internal/motion"
	"bin-viewer/internal/scenegraph"
)

// FallbackDescription is shown for entities without a catalog entry.
const FallbackDescription = "Part of the model."

// DefaultGateName is the entity whose selection toggles the gate animation.
const DefaultGateName = "Servo Gate"

var ErrNoGraph = errors.New("selection: nil scene graph")

// State is what the info panel shows plus the gate flag. The zero value is the initial state:
// nothing selected, gate closed.
type State struct {
	CurrentName string
	Description string
	GateOpen    bool
}

// Selected reports whether anything has been selected yet.
func (s State) Selected() bool {
	return s.CurrentName != ""
}

// Catalog maps entity names to their descriptions.
type Catalog map[string]string

// Describe returns the description of name, or FallbackDescription.
func (c Catalog) Describe(name string) string {
	if d, ok := c[name]; ok {
		return d
	}
	return FallbackDescription
}

// Dispatcher reacts to selections: it updates the state, toggles the gate when the gate entity
// is selected and pulses the selected entity.
type Dispatcher struct {
	graph    *scenegraph.Graph
	catalog  Catalog
	gateName string
	gate     *motion.GateAnimation
	pulses   *motion.Pulses

	// original scales of pulsing nodes, restored on expiry
	restore map[scenegraph.NodeID]geom.Vec3
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithGateName sets the entity that toggles the gate.
func WithGateName(name string) Option {
	return func(d *Dispatcher) {
		if name != "" {
			d.gateName = name
		}
	}
}

// WithGate replaces the gate animation.
func WithGate(g *motion.GateAnimation) Option {
	return func(d *Dispatcher) { d.gate = g }
}

// WithPulses replaces the pulse tracker.
func WithPulses(p *motion.Pulses) Option {
	return func(d *Dispatcher) { d.pulses = p }
}

// NewDispatcher returns a dispatcher for the entities of g.
func NewDispatcher(g *scenegraph.Graph, catalog Catalog, opts ...Option) (*Dispatcher, error) {
	if g == nil {
		return nil, ErrNoGraph
	}
	if catalog == nil {
		catalog = Catalog{}
	}
	d := &Dispatcher{
		graph:    g,
		catalog:  catalog,
		gateName: DefaultGateName,
		gate:     motion.NewGateAnimation(),
		pulses:   motion.NewPulses(),
		restore:  make(map[scenegraph.NodeID]geom.Vec3),
	}
	for _, o := range opts {
		o(d)
	}
	return d, nil
}

// GateName returns the name of the gate entity.
func (d *Dispatcher) GateName() string {
	return d.gateName
}

// Gate returns the gate animation driven by this dispatcher.
func (d *Dispatcher) Gate() *motion.GateAnimation {
	return d.gate
}

// Select applies the selection of entity at time now and returns the new state.
// Repeated selections keep the same text but pulse and toggle the gate every time.
func (d *Dispatcher) Select(s State, entity scenegraph.NodeID, now time.Duration) State {
	n := d.graph.Node(entity)
	if n == nil || n.Name == "" {
		return s
	}
	s.CurrentName = n.Name
	s.Description = d.catalog.Describe(n.Name)
	if n.Name == d.gateName {
		s.GateOpen = d.gate.Toggle(now) == motion.Open
	}
	d.pulse(entity, now)
	return s
}

func (d *Dispatcher) pulse(id scenegraph.NodeID, now time.Duration) {
	if !d.pulses.Start(int(id), now) {
		return
	}
	n := d.graph.Node(id)
	d.restore[id] = n.Local.Scale
	n.Local.Scale = n.Local.Scale.Scale(d.pulses.Factor)
}

// Update advances the gate animation and ends expired pulses. Call once per frame.
func (d *Dispatcher) Update(now time.Duration) {
	if gate, ok := d.graph.Lookup(d.gateName); ok && d.gate.Running() {
		d.graph.Node(gate).Local.Rotation.X = d.gate.Advance(now)
	}
	for _, id := range d.pulses.Expire(now) {
		nid := scenegraph.NodeID(id)
		if scale, ok := d.restore[nid]; ok {
			d.graph.Node(nid).Local.Scale = scale
			delete(d.restore, nid)
		}
	}
}
