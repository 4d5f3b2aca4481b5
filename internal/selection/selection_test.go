package selection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bin-viewer/internal/geom"
	"bin-viewer/internal/motion"
	"bin-viewer/internal/scenegraph"
)

const gateDescription = "Gate rotates to direct the item into the correct compartment."

type fixture struct {
	graph *scenegraph.Graph
	d     *Dispatcher
	gate  scenegraph.NodeID
	led   scenegraph.NodeID
	extra scenegraph.NodeID
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	g := scenegraph.New()
	gate, err := g.Add(scenegraph.NoParent, scenegraph.Node{Name: "Servo Gate", Local: geom.Identity()})
	require.NoError(t, err)
	led, err := g.Add(scenegraph.NoParent, scenegraph.Node{Name: "Wet LED", Local: geom.Identity()})
	require.NoError(t, err)
	extra, err := g.Add(scenegraph.NoParent, scenegraph.Node{Name: "Mystery Bracket", Local: geom.Identity()})
	require.NoError(t, err)
	d, err := NewDispatcher(g, Catalog{
		"Servo Gate": gateDescription,
		"Wet LED":    "Indicator LED for wet category.",
	})
	require.NoError(t, err)
	return fixture{graph: g, d: d, gate: gate, led: led, extra: extra}
}

func TestNewDispatcher_RequiresGraph(t *testing.T) {
	_, err := NewDispatcher(nil, nil)
	assert.ErrorIs(t, err, ErrNoGraph)
}

func TestSelect_SetsNameAndDescription(t *testing.T) {
	f := newFixture(t)
	s := f.d.Select(State{}, f.led, 0)
	assert.Equal(t, "Wet LED", s.CurrentName)
	assert.Equal(t, "Indicator LED for wet category.", s.Description)
	assert.False(t, s.GateOpen)
	assert.True(t, s.Selected())
}

func TestSelect_UnknownNameFallsBack(t *testing.T) {
	f := newFixture(t)
	s := f.d.Select(State{}, f.extra, 0)
	assert.Equal(t, "Mystery Bracket", s.CurrentName)
	assert.Equal(t, FallbackDescription, s.Description)
	assert.Equal(t, "Part of the model.", s.Description)
}

func TestSelect_UnnamedOrInvalidLeavesState(t *testing.T) {
	f := newFixture(t)
	label, err := f.graph.Add(f.led, scenegraph.Node{Label: "Wet LED"})
	require.NoError(t, err)

	prev := State{CurrentName: "Wet LED", Description: "x"}
	assert.Equal(t, prev, f.d.Select(prev, label, 0))
	assert.Equal(t, prev, f.d.Select(prev, scenegraph.NodeID(77), 0))
}

func TestSelect_GateTogglesEveryTime(t *testing.T) {
	f := newFixture(t)

	s := f.d.Select(State{}, f.gate, 0)
	assert.Equal(t, "Servo Gate", s.CurrentName)
	assert.Equal(t, gateDescription, s.Description)
	assert.True(t, s.GateOpen)
	assert.Equal(t, motion.Open, f.d.Gate().State())

	s2 := f.d.Select(s, f.gate, 50*time.Millisecond)
	assert.False(t, s2.GateOpen)
	assert.Equal(t, motion.Closed, f.d.Gate().State())
	assert.Equal(t, s.Description, s2.Description, "text is stable across repeats")
}

func TestSelect_NonGateDoesNotToggle(t *testing.T) {
	f := newFixture(t)
	f.d.Select(State{}, f.led, 0)
	assert.Equal(t, motion.Closed, f.d.Gate().State())
	assert.False(t, f.d.Gate().Running())
}

func TestUpdate_DrivesGateRotation(t *testing.T) {
	f := newFixture(t)
	f.d.Select(State{}, f.gate, 0)

	f.d.Update(200 * time.Millisecond)
	mid := f.graph.Node(f.gate).Local.Rotation.X
	assert.Less(t, mid, float32(0))
	assert.Greater(t, mid, float32(motion.GateOpenAngle))

	f.d.Update(time.Second)
	assert.InDelta(t, motion.GateOpenAngle, f.graph.Node(f.gate).Local.Rotation.X, 1e-6)
}

func TestPulse_ScalesThenRestores(t *testing.T) {
	f := newFixture(t)
	f.graph.Node(f.led).Local.Scale = geom.V3(2, 2, 2)

	f.d.Select(State{}, f.led, 0)
	assert.InDelta(t, 2*motion.DefaultPulseScale, f.graph.Node(f.led).Local.Scale.X, 1e-5)

	// A repeat during the pulse extends it without compounding the scale.
	f.d.Select(State{}, f.led, 200*time.Millisecond)
	assert.InDelta(t, 2*motion.DefaultPulseScale, f.graph.Node(f.led).Local.Scale.X, 1e-5)

	f.d.Update(400 * time.Millisecond)
	assert.InDelta(t, 2*motion.DefaultPulseScale, f.graph.Node(f.led).Local.Scale.X, 1e-5, "still pulsing")

	f.d.Update(500 * time.Millisecond)
	assert.Equal(t, geom.V3(2, 2, 2), f.graph.Node(f.led).Local.Scale)
}

func TestWithGateName(t *testing.T) {
	f := newFixture(t)
	d, err := NewDispatcher(f.graph, nil, WithGateName("Wet LED"))
	require.NoError(t, err)
	s := d.Select(State{}, f.led, 0)
	assert.True(t, s.GateOpen)
	assert.Equal(t, FallbackDescription, s.Description)
	assert.Equal(t, "Wet LED", d.GateName())
}
