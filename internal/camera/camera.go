// Package camera is the perspective camera used for picking and for orbit controls.
// The render layer copies Position/Target/Up/FovY into a raylib Camera3D each frame.
package camera

import (
	"github.com/chewxy/math32"

	"bin-viewer/internal/geom"
)

const (
	DefaultFovY        = 45
	DefaultMinDistance = 30
	DefaultMaxDistance = 300
	// polar angle is kept away from the poles so Up stays a valid reference.
	minPolar = 0.01
)

// Camera is a Y-up perspective camera. FovY is the vertical field of view in degrees.
type Camera struct {
	Position geom.Vec3
	Target   geom.Vec3
	Up       geom.Vec3
	FovY     float32
	Aspect   float32

	MinDistance float32
	MaxDistance float32
}

// New returns the viewer's default camera: at (0,60,120), looking at (0,20,0), 45° fov.
func New(width, height int) *Camera {
	c := &Camera{
		Position:    geom.V3(0, 60, 120),
		Target:      geom.V3(0, 20, 0),
		Up:          geom.V3(0, 1, 0),
		FovY:        DefaultFovY,
		Aspect:      1,
		MinDistance: DefaultMinDistance,
		MaxDistance: DefaultMaxDistance,
	}
	c.SetViewport(width, height)
	return c
}

// SetViewport updates the aspect ratio. Degenerate sizes (minimized window) are ignored.
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// basis returns the camera's forward, right and up unit vectors.
func (c *Camera) basis() (forward, right, up geom.Vec3) {
	forward = c.Target.Sub(c.Position).Normalize()
	right = forward.Cross(c.Up).Normalize()
	up = right.Cross(forward)
	return forward, right, up
}

// Ray returns the world-space ray through normalized device coordinates (x right, y up, both in [-1, 1]).
// The direction is unit length, so ray parameters are world distances.
func (c *Camera) Ray(x, y float32) geom.Ray {
	forward, right, up := c.basis()
	tanHalf := math32.Tan(c.FovY * math32.Pi / 360)
	dir := forward.
		Add(right.Scale(x * tanHalf * c.Aspect)).
		Add(up.Scale(y * tanHalf))
	return geom.Ray{Origin: c.Position, Direction: dir.Normalize()}
}

// Distance returns the distance from the camera to its target.
func (c *Camera) Distance() float32 {
	return c.Position.Sub(c.Target).Length()
}

// Orbit rotates the camera around its target: yaw about the world Y axis, pitch towards the poles.
func (c *Camera) Orbit(yaw, pitch float32) {
	r, theta, phi := c.spherical()
	c.setSpherical(r, theta+yaw, phi+pitch)
}

// Zoom scales the orbit distance by factor, clamped to [MinDistance, MaxDistance].
func (c *Camera) Zoom(factor float32) {
	if factor <= 0 {
		return
	}
	r, theta, phi := c.spherical()
	c.setSpherical(r*factor, theta, phi)
}

func (c *Camera) spherical() (r, theta, phi float32) {
	off := c.Position.Sub(c.Target)
	r = off.Length()
	if r == 0 {
		return 0, 0, math32.Pi / 2
	}
	theta = math32.Atan2(off.X, off.Z)
	phi = math32.Acos(clamp(off.Y/r, -1, 1))
	return r, theta, phi
}

func (c *Camera) setSpherical(r, theta, phi float32) {
	if c.MaxDistance > 0 {
		r = clamp(r, c.MinDistance, c.MaxDistance)
	}
	phi = clamp(phi, minPolar, math32.Pi-minPolar)
	sinPhi, cosPhi := math32.Sincos(phi)
	sinTheta, cosTheta := math32.Sincos(theta)
	c.Position = c.Target.Add(geom.V3(r*sinPhi*sinTheta, r*cosPhi, r*sinPhi*cosTheta))
}

func clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}
