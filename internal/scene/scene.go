package scene

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"bin-viewer/internal/camera"
	"bin-viewer/internal/geom"
	"bin-viewer/internal/primitives"
	"bin-viewer/internal/scenegraph"
	"bin-viewer/internal/ui"
)

const (
	gridSlices  = 60
	gridSpacing = 10

	labelFontSize = 18
	labelPadding  = 4
)

var (
	labelBackground = rl.NewColor(255, 255, 255, 220)
	labelText       = rl.NewColor(0x22, 0x22, 0x22, 255)
)

// Scene draws a scene graph through a raylib 3D camera. The camera is copied from the picking
// camera each frame, so what is drawn and what is picked always agree.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool
	prims       *primitives.Registry
}

// New returns a scene with a perspective camera. The grid is hidden by default.
func New() *Scene {
	s := &Scene{prims: primitives.NewRegistry()}
	s.Camera.Projection = rl.CameraPerspective
	return s
}

// SetGridVisible sets whether the reference grid on the ground is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// Sync copies position, target, up vector and field of view from cam.
func (s *Scene) Sync(cam *camera.Camera) {
	s.Camera.Position = vec3(cam.Position)
	s.Camera.Target = vec3(cam.Target)
	s.Camera.Up = vec3(cam.Up)
	s.Camera.Fovy = cam.FovY
}

// Draw renders every node that has a primitive mesh.
func (s *Scene) Draw(g *scenegraph.Graph) {
	rl.BeginMode3D(s.Camera)
	for _, root := range g.Roots() {
		g.Walk(root, func(id scenegraph.NodeID) {
			n := g.Node(id)
			if n.Primitive == "" {
				return
			}
			s.prims.Draw(n.Primitive, g.World(id), meshSize(n), rgba(n.Color))
		})
	}
	if s.GridVisible {
		rl.DrawGrid(gridSlices, gridSpacing)
	}
	rl.EndMode3D()
}

// DrawLabels draws each label node as text centered on its projected world position. Labels
// behind the camera are skipped.
func (s *Scene) DrawLabels(g *scenegraph.Graph) {
	forward := rl.Vector3Subtract(s.Camera.Target, s.Camera.Position)
	for _, root := range g.Roots() {
		g.Walk(root, func(id scenegraph.NodeID) {
			n := g.Node(id)
			if n.Label == "" {
				return
			}
			p := vec3(g.World(id).T)
			if rl.Vector3DotProduct(rl.Vector3Subtract(p, s.Camera.Position), forward) <= 0 {
				return
			}
			at := rl.GetWorldToScreen(p, s.Camera)
			w := rl.MeasureText(n.Label, labelFontSize)
			x := int32(at.X) - w/2
			y := int32(at.Y) - labelFontSize/2
			rl.DrawRectangle(x-labelPadding, y-labelPadding, w+2*labelPadding, labelFontSize+2*labelPadding, labelBackground)
			rl.DrawText(n.Label, x, y, labelFontSize, labelText)
		})
	}
}

func meshSize(n *scenegraph.Node) geom.Vec3 {
	switch sh := n.Shape.(type) {
	case geom.Box:
		return sh.Size
	case geom.Sphere:
		return geom.V3(sh.Radius, sh.Radius, sh.Radius)
	}
	// Shapeless meshes (the ground) carry their size in the node scale.
	return geom.V3(1, 1, 1)
}

func rgba(c scenegraph.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func vec3(v geom.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X, v.Y, v.Z)
}

// DrawNodes draws styled overlay nodes in order: background, 1px border, then text.
func DrawNodes(nodes []*ui.Node) {
	for _, n := range nodes {
		st, b := n.Style, n.Bounds
		if st.Background.A > 0 && b.Width > 0 && b.Height > 0 {
			rl.DrawRectangle(b.X, b.Y, b.Width, b.Height, st.Background)
		}
		if st.HasBorder && b.Width > 0 && b.Height > 0 {
			rl.DrawRectangleLines(b.X, b.Y, b.Width, b.Height, st.Border)
		}
		if n.Text != "" {
			rl.DrawText(n.Text, b.X, b.Y, st.FontSize, st.Color)
		}
	}
}

// MeasureText is a ui.MeasureFunc backed by raylib's default font.
func MeasureText(text string, fontSize int32) int32 {
	return rl.MeasureText(text, fontSize)
}
