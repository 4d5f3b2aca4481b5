package geom

import "github.com/chewxy/math32"

// Transform is a node's local placement: scale first, then rotation (Euler angles in radians,
// applied X then Y then Z in the node frame), then translation.
type Transform struct {
	Position Vec3
	Rotation Vec3
	Scale    Vec3
}

// Identity returns a transform with unit scale at the origin.
func Identity() Transform {
	return Transform{Scale: V3(1, 1, 1)}
}

// At returns an unrotated, unscaled transform positioned at p.
func At(p Vec3) Transform {
	return Transform{Position: p, Scale: V3(1, 1, 1)}
}

// Matrix converts t to an affine matrix.
func (t Transform) Matrix() Affine {
	sx, cx := math32.Sincos(t.Rotation.X)
	sy, cy := math32.Sincos(t.Rotation.Y)
	sz, cz := math32.Sincos(t.Rotation.Z)
	// R = Rx * Ry * Rz
	r := [3][3]float32{
		{cy * cz, -cy * sz, sy},
		{cx*sz + sx*sy*cz, cx*cz - sx*sy*sz, -sx * cy},
		{sx*sz - cx*sy*cz, sx*cz + cx*sy*sz, cx * cy},
	}
	s := t.Scale
	var m Affine
	for i := 0; i < 3; i++ {
		m.M[i][0] = r[i][0] * s.X
		m.M[i][1] = r[i][1] * s.Y
		m.M[i][2] = r[i][2] * s.Z
	}
	m.T = t.Position
	return m
}

// Affine is a 3x3 linear part plus a translation.
type Affine struct {
	M [3][3]float32
	T Vec3
}

// IdentityAffine returns the identity matrix.
func IdentityAffine() Affine {
	return Affine{M: [3][3]float32{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}
}

// Mul returns a*b, i.e. b applied first.
func (a Affine) Mul(b Affine) Affine {
	var out Affine
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.M[i][j] = a.M[i][0]*b.M[0][j] + a.M[i][1]*b.M[1][j] + a.M[i][2]*b.M[2][j]
		}
	}
	out.T = a.ApplyDir(b.T).Add(a.T)
	return out
}

// Apply transforms a point.
func (a Affine) Apply(p Vec3) Vec3 {
	return a.ApplyDir(p).Add(a.T)
}

// ApplyDir transforms a direction (no translation).
func (a Affine) ApplyDir(d Vec3) Vec3 {
	return Vec3{
		a.M[0][0]*d.X + a.M[0][1]*d.Y + a.M[0][2]*d.Z,
		a.M[1][0]*d.X + a.M[1][1]*d.Y + a.M[1][2]*d.Z,
		a.M[2][0]*d.X + a.M[2][1]*d.Y + a.M[2][2]*d.Z,
	}
}

// Inverse returns the inverse matrix. ok is false when the linear part is singular (zero scale).
func (a Affine) Inverse() (inv Affine, ok bool) {
	m := a.M
	c00 := m[1][1]*m[2][2] - m[1][2]*m[2][1]
	c01 := m[1][2]*m[2][0] - m[1][0]*m[2][2]
	c02 := m[1][0]*m[2][1] - m[1][1]*m[2][0]
	det := m[0][0]*c00 + m[0][1]*c01 + m[0][2]*c02
	if math32.Abs(det) < 1e-12 {
		return Affine{}, false
	}
	d := 1 / det
	inv.M = [3][3]float32{
		{c00 * d, (m[0][2]*m[2][1] - m[0][1]*m[2][2]) * d, (m[0][1]*m[1][2] - m[0][2]*m[1][1]) * d},
		{c01 * d, (m[0][0]*m[2][2] - m[0][2]*m[2][0]) * d, (m[0][2]*m[1][0] - m[0][0]*m[1][2]) * d},
		{c02 * d, (m[0][1]*m[2][0] - m[0][0]*m[2][1]) * d, (m[0][0]*m[1][1] - m[0][1]*m[1][0]) * d},
	}
	inv.T = inv.ApplyDir(a.T).Scale(-1)
	return inv, true
}

// ApplyRay maps a ray through a. The direction is not renormalized, so ray parameters are
// preserved between the two spaces.
func (a Affine) ApplyRay(r Ray) Ray {
	return Ray{Origin: a.Apply(r.Origin), Direction: a.ApplyDir(r.Direction)}
}
