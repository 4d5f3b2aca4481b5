// Package layout describes the bin model in YAML and builds the scene graph from it.
package layout

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/chewxy/math32"
	"gopkg.in/yaml.v3"

	"bin-viewer/internal/geom"
	"bin-viewer/internal/scenegraph"
	"bin-viewer/internal/selection"
)

//go:embed bin.yaml
var defaultLayout []byte

var (
	ErrInvalidShape = errors.New("invalid shape")
	ErrInvalidColor = errors.New("invalid color")
	ErrInvalidAxis  = errors.New("invalid oscillation axis")
)

// File is the top-level layout document.
type File struct {
	Ground Ground `yaml:"ground"`
	Parts  []Part `yaml:"parts"`
}

// Ground is the unpickable floor plane.
type Ground struct {
	Size  [2]float32 `yaml:"size"`
	Color Color      `yaml:"color"`
}

// Part is one mesh of the model. Named parts are selectable; unnamed children resolve to the
// nearest named ancestor when picked.
type Part struct {
	Name        string     `yaml:"name,omitempty"`
	Shape       string     `yaml:"shape"` // "box" or "sphere"
	Size        []float32  `yaml:"size"`  // box: [x, y, z]; sphere: [radius]
	Position    [3]float32 `yaml:"position"`
	Rotation    [3]float32 `yaml:"rotation,omitempty"` // degrees
	Color       Color      `yaml:"color"`
	Label       string     `yaml:"label,omitempty"`
	LabelOffset [3]float32 `yaml:"label_offset,omitempty"`
	Description string     `yaml:"description,omitempty"`
	Oscillate   *Oscillate `yaml:"oscillate,omitempty"`
	Children    []Part     `yaml:"children,omitempty"`
}

// Oscillate makes a part move back and forth along one axis.
type Oscillate struct {
	Axis       string  `yaml:"axis"`
	Min        float32 `yaml:"min"`
	Max        float32 `yaml:"max"`
	Step       float32 `yaml:"step"`
	IntervalMS int     `yaml:"interval_ms"`
}

// Oscillation is a built Oscillate bound to its scene node.
type Oscillation struct {
	Node     scenegraph.NodeID
	Axis     int
	Start    float32
	Min, Max float32
	Step     float32
	Interval time.Duration
}

// Scene is the result of Build.
type Scene struct {
	Graph        *scenegraph.Graph
	Catalog      selection.Catalog
	Ground       scenegraph.NodeID
	Oscillations []Oscillation
}

// Default returns the embedded bin layout.
func Default() (File, error) {
	return Parse(defaultLayout)
}

// LoadFile reads a layout from path.
func LoadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("layout: %w", err)
	}
	return Parse(data)
}

// Parse decodes a layout document. Unknown fields are rejected.
func Parse(data []byte) (File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil {
		return File{}, fmt.Errorf("layout: %w", err)
	}
	return f, nil
}

// Build creates the scene graph: the ground plane first, then every part with its label and
// children. Top-level parts are the pickable roots.
func Build(f File) (Scene, error) {
	g := scenegraph.New()
	ground, err := g.Add(scenegraph.NoParent, scenegraph.Node{
		Local:     geom.Transform{Scale: geom.V3(f.Ground.Size[0], 1, f.Ground.Size[1])},
		Primitive: "plane",
		Color:     scenegraph.Color(f.Ground.Color),
	})
	if err != nil {
		return Scene{}, err
	}
	s := Scene{Graph: g, Catalog: selection.Catalog{}, Ground: ground}
	for _, p := range f.Parts {
		if err := s.addPart(scenegraph.NoParent, p); err != nil {
			return Scene{}, err
		}
	}
	return s, nil
}

func (s *Scene) addPart(parent scenegraph.NodeID, p Part) error {
	shape, prim, err := shapeOf(p)
	if err != nil {
		return err
	}
	rot := geom.V3(p.Rotation[0], p.Rotation[1], p.Rotation[2]).Scale(math32.Pi / 180)
	id, err := s.Graph.Add(parent, scenegraph.Node{
		Name:      p.Name,
		Local:     geom.Transform{Position: vec(p.Position), Rotation: rot, Scale: geom.V3(1, 1, 1)},
		Shape:     shape,
		Primitive: prim,
		Color:     scenegraph.Color(p.Color),
		Pickable:  parent == scenegraph.NoParent,
	})
	if err != nil {
		return err
	}
	if p.Description != "" && p.Name != "" {
		s.Catalog[p.Name] = p.Description
	}
	if p.Label != "" {
		if _, err := s.Graph.Add(id, scenegraph.Node{Label: p.Label, Local: geom.At(vec(p.LabelOffset))}); err != nil {
			return err
		}
	}
	if p.Oscillate != nil {
		o, err := oscillation(id, p)
		if err != nil {
			return err
		}
		s.Oscillations = append(s.Oscillations, o)
	}
	for _, c := range p.Children {
		if err := s.addPart(id, c); err != nil {
			return err
		}
	}
	return nil
}

func shapeOf(p Part) (geom.Shape, string, error) {
	switch strings.ToLower(p.Shape) {
	case "box":
		if len(p.Size) != 3 {
			return nil, "", fmt.Errorf("part %q: %w: box needs 3 sizes, got %d", p.Name, ErrInvalidShape, len(p.Size))
		}
		return geom.Box{Size: geom.V3(p.Size[0], p.Size[1], p.Size[2])}, "cube", nil
	case "sphere":
		if len(p.Size) != 1 {
			return nil, "", fmt.Errorf("part %q: %w: sphere needs a radius, got %d values", p.Name, ErrInvalidShape, len(p.Size))
		}
		return geom.Sphere{Radius: p.Size[0]}, "sphere", nil
	}
	return nil, "", fmt.Errorf("part %q: %w: %q", p.Name, ErrInvalidShape, p.Shape)
}

func oscillation(id scenegraph.NodeID, p Part) (Oscillation, error) {
	o := p.Oscillate
	axis := strings.Index("xyz", strings.ToLower(o.Axis))
	if len(o.Axis) != 1 || axis < 0 {
		return Oscillation{}, fmt.Errorf("part %q: %w: %q", p.Name, ErrInvalidAxis, o.Axis)
	}
	return Oscillation{
		Node:     id,
		Axis:     axis,
		Start:    p.Position[axis],
		Min:      o.Min,
		Max:      o.Max,
		Step:     o.Step,
		Interval: time.Duration(o.IntervalMS) * time.Millisecond,
	}, nil
}

func vec(a [3]float32) geom.Vec3 {
	return geom.V3(a[0], a[1], a[2])
}
