// Package pick finds the scene entity under a pointer by casting a ray through the camera.
package pick

import (
	"bin-viewer/internal/camera"
	"bin-viewer/internal/geom"
	"bin-viewer/internal/scenegraph"
)

// Hit is the result of a successful pick.
type Hit struct {
	Node     scenegraph.NodeID // exact node the ray met (may be an unnamed label)
	Entity   scenegraph.NodeID // nearest named ancestor of Node
	Distance float32           // world distance from the camera along the ray
	Point    geom.Vec3
}

// Pick casts a ray through normalized device coordinates (x, y) and returns the nearest hit.
func Pick(x, y float32, cam *camera.Camera, g *scenegraph.Graph) (Hit, bool) {
	return Cast(cam.Ray(x, y), g)
}

// Cast tests r against every pickable root and its descendants and returns the nearest hit,
// resolved to its named ancestor. Traversal follows insertion order, and on equal distance the
// node visited first wins.
func Cast(r geom.Ray, g *scenegraph.Graph) (Hit, bool) {
	var best Hit
	found := false
	for _, root := range g.Pickables() {
		g.Walk(root, func(id scenegraph.NodeID) {
			t, ok := Intersect(r, g, id)
			if !ok || (found && t >= best.Distance) {
				return
			}
			best = Hit{Node: id, Distance: t, Point: r.At(t)}
			found = true
		})
	}
	if !found {
		return Hit{}, false
	}
	entity, ok := g.ResolveNamed(best.Node)
	if !ok {
		return Hit{}, false
	}
	best.Entity = entity
	return best, true
}

// Intersect tests r against the shape of a single node placed at its world transform.
func Intersect(r geom.Ray, g *scenegraph.Graph, id scenegraph.NodeID) (float32, bool) {
	n := g.Node(id)
	if n == nil || n.Shape == nil {
		return 0, false
	}
	inv, ok := g.World(id).Inverse()
	if !ok {
		return 0, false
	}
	return n.Shape.Hit(inv.ApplyRay(r))
}
