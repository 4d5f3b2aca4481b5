package geom

import "github.com/chewxy/math32"

// parallelEpsilon is the direction component below which a ray is treated as parallel to a slab.
const parallelEpsilon = 1e-8

// Shape is bounding geometry expressed in a node's local space, centered on the local origin.
type Shape interface {
	// Hit returns the smallest ray parameter t >= 0 at which r meets the shape.
	Hit(r Ray) (t float32, ok bool)
}

// Box is an axis-aligned box (in local space) with full edge lengths Size.
type Box struct {
	Size Vec3
}

// Hit uses the slab method. A ray starting inside the box reports the exit point.
func (b Box) Hit(r Ray) (float32, bool) {
	half := b.Size.Scale(0.5)
	tNear := math32.Inf(-1)
	tFar := math32.Inf(1)
	for axis := 0; axis < 3; axis++ {
		lo, hi := -half.Axis(axis), half.Axis(axis)
		origin := r.Origin.Axis(axis)
		dir := r.Direction.Axis(axis)
		if math32.Abs(dir) < parallelEpsilon {
			if origin < lo || origin > hi {
				return 0, false
			}
			continue
		}
		inv := 1 / dir
		t1 := (lo - origin) * inv
		t2 := (hi - origin) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tNear = math32.Max(tNear, t1)
		tFar = math32.Min(tFar, t2)
		if tNear > tFar {
			return 0, false
		}
	}
	if tFar < 0 {
		return 0, false
	}
	if tNear >= 0 {
		return tNear, true
	}
	return tFar, true
}

// Sphere is a sphere of the given radius centered on the local origin.
type Sphere struct {
	Radius float32
}

// Hit solves |o + t*d|^2 = r^2. A ray starting inside the sphere reports the exit point.
func (s Sphere) Hit(r Ray) (float32, bool) {
	a := r.Direction.Dot(r.Direction)
	if a == 0 {
		return 0, false
	}
	halfB := r.Origin.Dot(r.Direction)
	c := r.Origin.Dot(r.Origin) - s.Radius*s.Radius
	disc := halfB*halfB - a*c
	if disc < 0 {
		return 0, false
	}
	sq := math32.Sqrt(disc)
	t := (-halfB - sq) / a
	if t < 0 {
		t = (-halfB + sq) / a
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}
