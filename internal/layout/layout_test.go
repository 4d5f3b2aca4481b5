package layout

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bin-viewer/internal/geom"
	"bin-viewer/internal/pick"
	"bin-viewer/internal/scenegraph"
	"bin-viewer/internal/selection"
)

var partNames = []string{
	"Main Bin Body",
	"Waste Input Slot",
	"Wet (Organic) Bin",
	"Dry (Paper) Bin",
	"Recyclable Bin",
	"Conveyor / Tray",
	"Placement Platform",
	"Camera Sensor",
	"Servo Gate",
	"Wet LED",
	"Dry LED",
	"Recyclable LED",
}

func buildDefault(t *testing.T) Scene {
	t.Helper()
	f, err := Default()
	require.NoError(t, err)
	s, err := Build(f)
	require.NoError(t, err)
	return s
}

func TestDefault_BuildsAllParts(t *testing.T) {
	s := buildDefault(t)

	assert.Equal(t, partNames, s.Graph.Names())
	assert.Len(t, s.Graph.Pickables(), len(partNames))
	assert.NotContains(t, s.Graph.Pickables(), s.Ground, "ground is not pickable")
	assert.Equal(t, "plane", s.Graph.Node(s.Ground).Primitive)

	for _, name := range partNames {
		_, ok := s.Catalog[name]
		assert.True(t, ok, "description for %q", name)
	}
}

func TestDefault_Descriptions(t *testing.T) {
	s := buildDefault(t)
	want := selection.Catalog{
		"Main Bin Body":      "Outer shell — holds three internal compartments. Use recycled material in real product.",
		"Waste Input Slot":   "Top opening where user places waste. Camera scans from here.",
		"Wet (Organic) Bin":  "For food and organic waste (compostable).",
		"Dry (Paper) Bin":    "For paper, wrappers, dry trash.",
		"Recyclable Bin":     "For plastics, bottles, cans to be recycled.",
		"Conveyor / Tray":    "Place waste here — conveyor moves items under camera for detection.",
		"Placement Platform": "Start position where item is placed for scanning.",
		"Camera Sensor":      "Simulated camera module — AI would analyze images here.",
		"Servo Gate":         "Gate rotates to direct the item into the correct compartment.",
		"Wet LED":            "Indicator LED for wet category.",
		"Dry LED":            "Indicator LED for dry category.",
		"Recyclable LED":     "Indicator LED for recyclable category.",
	}
	assert.Equal(t, want, s.Catalog)
}

func TestDefault_LabelsAreUnnamedChildren(t *testing.T) {
	s := buildDefault(t)
	gate, ok := s.Graph.Lookup("Servo Gate")
	require.True(t, ok)

	var labels []string
	for _, c := range s.Graph.Children(gate) {
		n := s.Graph.Node(c)
		assert.Empty(t, n.Name)
		if n.Label != "" {
			labels = append(labels, n.Label)
		}
	}
	assert.Equal(t, []string{"Servo Gate (Directs waste)"}, labels)
}

func TestDefault_PlatformOscillation(t *testing.T) {
	s := buildDefault(t)
	require.Len(t, s.Oscillations, 1)
	o := s.Oscillations[0]
	platform, _ := s.Graph.Lookup("Placement Platform")
	assert.Equal(t, platform, o.Node)
	assert.Equal(t, 2, o.Axis)
	assert.Equal(t, float32(18), o.Start)
	assert.Equal(t, float32(12), o.Min)
	assert.Equal(t, float32(26), o.Max)
	assert.InDelta(t, 0.4, o.Step, 1e-6)
	assert.Equal(t, 60*time.Millisecond, o.Interval)
}

func TestDefault_LensResolvesToCameraSensor(t *testing.T) {
	s := buildDefault(t)
	sensor, _ := s.Graph.Lookup("Camera Sensor")

	// Straight down onto the lens, which pokes out in front of the sensor body.
	r := geom.Ray{Origin: geom.V3(8, 60, -2.9), Direction: geom.V3(0, -1, 0)}
	hit, ok := pick.Cast(r, s.Graph)
	require.True(t, ok)
	assert.Equal(t, sensor, hit.Entity)
	assert.NotEqual(t, sensor, hit.Node, "the unnamed lens is the nearest mesh")
	assert.Empty(t, s.Graph.Node(hit.Node).Name)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		err  error
	}{
		{"unknown shape", "parts:\n  - name: A\n    shape: cone\n    size: [1]\n    color: \"#fff\"\n", ErrInvalidShape},
		{"box with radius", "parts:\n  - name: A\n    shape: box\n    size: [1]\n    color: \"#fff\"\n", ErrInvalidShape},
		{"bad color", "parts:\n  - name: A\n    shape: sphere\n    size: [1]\n    color: \"#ggg\"\n", ErrInvalidColor},
		{"bad axis", "parts:\n  - name: A\n    shape: sphere\n    size: [1]\n    color: \"#fff\"\n    oscillate: {axis: w}\n", ErrInvalidAxis},
		{"duplicate name", "parts:\n  - name: A\n    shape: sphere\n    size: [1]\n    color: \"#fff\"\n  - name: A\n    shape: sphere\n    size: [1]\n    color: \"#fff\"\n", scenegraph.ErrDuplicateName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.doc))
			if err == nil {
				_, err = Build(f)
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestParse_UnknownFieldRejected(t *testing.T) {
	_, err := Parse([]byte("parts:\n  - name: A\n    colour: \"#fff\"\n"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bin.yaml")
	doc := "ground:\n  size: [10, 10]\n  color: \"#000\"\nparts:\n  - name: Solo\n    shape: box\n    size: [1, 2, 3]\n    position: [1, 1, 1]\n    rotation: [90, 0, 0]\n    color: \"#123456\"\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	f, err := LoadFile(path)
	require.NoError(t, err)
	s, err := Build(f)
	require.NoError(t, err)

	id, ok := s.Graph.Lookup("Solo")
	require.True(t, ok)
	n := s.Graph.Node(id)
	assert.InDelta(t, 1.5708, n.Local.Rotation.X, 1e-4)
	assert.Equal(t, scenegraph.Color{R: 0x12, G: 0x34, B: 0x56, A: 255}, n.Color)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#f80")
	require.NoError(t, err)
	assert.Equal(t, scenegraph.Color{R: 255, G: 136, B: 0, A: 255}, c)

	for _, bad := range []string{"", "fff", "#12", "#12345", "#zzzzzz"} {
		_, err := ParseHexColor(bad)
		assert.ErrorIs(t, err, ErrInvalidColor, bad)
	}
}
