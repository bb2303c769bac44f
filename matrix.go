package aster

import "math"

// Matrix is a 2D affine transform:
//
//	| A  C  TX |
//	| B  D  TY |
//	| 0  0   1 |
//
// Matrices are value types; methods return new matrices.
type Matrix struct {
	A, B, C, D, TX, TY float64
}

// MatrixIdentity is the identity transform.
var MatrixIdentity = Matrix{A: 1, D: 1}

// Multiply returns m * o, applying o first and m second.
func (m Matrix) Multiply(o Matrix) Matrix {
	return Matrix{
		A:  m.A*o.A + m.C*o.B,
		B:  m.B*o.A + m.D*o.B,
		C:  m.A*o.C + m.C*o.D,
		D:  m.B*o.C + m.D*o.D,
		TX: m.A*o.TX + m.C*o.TY + m.TX,
		TY: m.B*o.TX + m.D*o.TY + m.TY,
	}
}

// Invert returns the inverse of m, or the identity matrix if m is singular.
func (m Matrix) Invert() Matrix {
	det := m.A*m.D - m.C*m.B
	if det > -1e-12 && det < 1e-12 {
		return MatrixIdentity
	}
	invDet := 1.0 / det
	a := m.D * invDet
	b := -m.B * invDet
	c := -m.C * invDet
	d := m.A * invDet
	return Matrix{
		A: a, B: b, C: c, D: d,
		TX: -(a*m.TX + c*m.TY),
		TY: -(b*m.TX + d*m.TY),
	}
}

// Apply transforms the point (x, y) by m.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.TX, m.B*x + m.D*y + m.TY
}

// ApplyVec transforms v by m.
func (m Matrix) ApplyVec(v Vec2) Vec2 {
	x, y := m.Apply(v.X, v.Y)
	return Vec2{x, y}
}

// ApplyRect transforms all four corners of r by m and returns their
// axis-aligned bounding rectangle.
func (m Matrix) ApplyRect(r Rect) Rect {
	x0, y0 := m.Apply(r.X, r.Y)
	x1, y1 := m.Apply(r.X+r.Width, r.Y)
	x2, y2 := m.Apply(r.X, r.Y+r.Height)
	x3, y3 := m.Apply(r.X+r.Width, r.Y+r.Height)
	minX := min(min(x0, x1), min(x2, x3))
	minY := min(min(y0, y1), min(y2, y3))
	maxX := max(max(x0, x1), max(x2, x3))
	maxY := max(max(y0, y1), max(y2, y3))
	return Rect{minX, minY, maxX - minX, maxY - minY}
}

// Translate returns m with a translation applied after it.
func (m Matrix) Translate(tx, ty float64) Matrix {
	return Matrix{A: 1, D: 1, TX: tx, TY: ty}.Multiply(m)
}

// Transform holds the decomposed local transform of a node: position,
// rotation (radians), scale, and pivot. The pivot is the local-space point
// that position and rotation act around.
type Transform struct {
	Position Vec2
	Rotation float64
	Scale    Vec2
	Pivot    Vec2
}

// TransformIdentity is the neutral transform (unit scale, no offset).
var TransformIdentity = Transform{Scale: Vec2{1, 1}}

// Matrix composes the transform into an affine matrix. Composition order is
// translate, then rotate, then scale, then un-pivot, so the pivot point lands
// on Position and rotation/scale act around it.
func (t Transform) Matrix() Matrix {
	sin, cos := math.Sincos(t.Rotation)
	a := cos * t.Scale.X
	b := sin * t.Scale.X
	c := -sin * t.Scale.Y
	d := cos * t.Scale.Y
	return Matrix{
		A: a, B: b, C: c, D: d,
		TX: t.Position.X - (a*t.Pivot.X + c*t.Pivot.Y),
		TY: t.Position.Y - (b*t.Pivot.X + d*t.Pivot.Y),
	}
}
