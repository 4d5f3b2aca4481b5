// Package scenegraph holds the scene's nodes in an arena addressed by NodeID.
// Ownership is an explicit parent index; nodes are added at startup and never removed.
package scenegraph

import (
	"errors"
	"fmt"

	"bin-viewer/internal/geom"
)

// NodeID indexes a node in its Graph.
type NodeID int

// NoParent is the parent of root nodes.
const NoParent NodeID = -1

var (
	ErrDuplicateName = errors.New("duplicate node name")
	ErrUnknownParent = errors.New("unknown parent node")
)

// Color is an 8-bit RGBA tint.
type Color struct {
	R, G, B, A uint8
}

// Node is one element of the scene: a part mesh, a label or a decorative sub-mesh.
// Only nodes with a non-empty Name are selectable entities; unnamed nodes resolve to their
// nearest named ancestor.
type Node struct {
	Name      string
	Local     geom.Transform
	Shape     geom.Shape // nil = not hittable
	Primitive string     // "cube", "sphere", "plane" or "" for nothing drawn
	Color     Color
	Label     string // text drawn at the node origin on the overlay
	Pickable  bool   // root of a picking traversal

	parent   NodeID
	children []NodeID
}

// Parent returns the owning node, or NoParent.
func (n *Node) Parent() NodeID {
	return n.parent
}

// Graph is the scene registry.
type Graph struct {
	nodes     []Node
	byName    map[string]NodeID
	roots     []NodeID
	pickables []NodeID
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{byName: make(map[string]NodeID)}
}

// Add appends n under parent (NoParent for a root) and returns its id.
// Names must be unique across the graph; empty names are allowed any number of times.
func (g *Graph) Add(parent NodeID, n Node) (NodeID, error) {
	if parent != NoParent && !g.valid(parent) {
		return 0, fmt.Errorf("add %q: %w: %d", n.Name, ErrUnknownParent, parent)
	}
	if n.Name != "" {
		if _, dup := g.byName[n.Name]; dup {
			return 0, fmt.Errorf("add: %w: %q", ErrDuplicateName, n.Name)
		}
	}
	id := NodeID(len(g.nodes))
	n.parent = parent
	n.children = nil
	g.nodes = append(g.nodes, n)
	if n.Name != "" {
		g.byName[n.Name] = id
	}
	if parent == NoParent {
		g.roots = append(g.roots, id)
	} else {
		g.nodes[parent].children = append(g.nodes[parent].children, id)
	}
	if n.Pickable {
		g.pickables = append(g.pickables, id)
	}
	return id, nil
}

func (g *Graph) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Node returns the node with the given id, or nil. The pointer stays valid until the next Add.
func (g *Graph) Node(id NodeID) *Node {
	if !g.valid(id) {
		return nil
	}
	return &g.nodes[id]
}

// Lookup returns the id of the node with the given name.
func (g *Graph) Lookup(name string) (NodeID, bool) {
	id, ok := g.byName[name]
	return id, ok
}

// Names returns the names of all named nodes in insertion order.
func (g *Graph) Names() []string {
	out := make([]string, 0, len(g.byName))
	for i := range g.nodes {
		if g.nodes[i].Name != "" {
			out = append(out, g.nodes[i].Name)
		}
	}
	return out
}

// Roots returns root node ids in insertion order.
func (g *Graph) Roots() []NodeID {
	return g.roots
}

// Pickables returns the ids of nodes flagged Pickable, in insertion order.
func (g *Graph) Pickables() []NodeID {
	return g.pickables
}

// Children returns the direct children of id in insertion order.
func (g *Graph) Children(id NodeID) []NodeID {
	if !g.valid(id) {
		return nil
	}
	return g.nodes[id].children
}

// Walk visits id and its descendants depth-first, parents before children.
func (g *Graph) Walk(id NodeID, fn func(NodeID)) {
	if !g.valid(id) {
		return
	}
	fn(id)
	for _, c := range g.nodes[id].children {
		g.Walk(c, fn)
	}
}

// World returns the node-to-world matrix of id.
func (g *Graph) World(id NodeID) geom.Affine {
	m := geom.IdentityAffine()
	for cur := id; g.valid(cur); cur = g.nodes[cur].parent {
		m = g.nodes[cur].Local.Matrix().Mul(m)
	}
	return m
}

// ResolveNamed walks up the parent index from id to the nearest node with a non-empty name,
// id itself included. ok is false when the root is reached without finding one.
func (g *Graph) ResolveNamed(id NodeID) (NodeID, bool) {
	for cur := id; g.valid(cur); cur = g.nodes[cur].parent {
		if g.nodes[cur].Name != "" {
			return cur, true
		}
	}
	return 0, false
}
