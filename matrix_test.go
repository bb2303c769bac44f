package aster

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func assertPoint(t *testing.T, gotX, gotY, wantX, wantY float64) {
	t.Helper()
	if math.Abs(gotX-wantX) > 1e-6 || math.Abs(gotY-wantY) > 1e-6 {
		t.Errorf("point = (%v, %v), want (%v, %v)", gotX, gotY, wantX, wantY)
	}
}

// --- Matrix ---

func TestMatrixIdentityApply(t *testing.T) {
	x, y := MatrixIdentity.Apply(3, -7)
	assertPoint(t, x, y, 3, -7)
}

func TestMatrixMultiplyOrder(t *testing.T) {
	translate := Matrix{A: 1, D: 1, TX: 10, TY: 0}
	scale := Matrix{A: 2, D: 2}

	// scale applied first, then translation
	m := translate.Multiply(scale)
	x, y := m.Apply(1, 1)
	assertPoint(t, x, y, 12, 2)

	// translation applied first, then scale
	m = scale.Multiply(translate)
	x, y = m.Apply(1, 1)
	assertPoint(t, x, y, 22, 2)
}

func TestMatrixInvertRoundTrip(t *testing.T) {
	m := Matrix{A: 2, B: 0.5, C: -1, D: 3, TX: 10, TY: -4}
	inv := m.Invert()
	x, y := m.Apply(7, 11)
	bx, by := inv.Apply(x, y)
	assertPoint(t, bx, by, 7, 11)
}

func TestMatrixInvertSingular(t *testing.T) {
	singular := Matrix{A: 0, B: 0, C: 0, D: 0}
	if singular.Invert() != MatrixIdentity {
		t.Error("singular matrix should invert to identity")
	}
}

func TestMatrixApplyRect(t *testing.T) {
	// 90-degree rotation maps (0,0,10,20) onto (-20,0,20,10).
	sin, cos := math.Sincos(math.Pi / 2)
	rot := Matrix{A: cos, B: sin, C: -sin, D: cos}
	got := rot.ApplyRect(Rect{0, 0, 10, 20})
	if math.Abs(got.X-(-20)) > 1e-6 || math.Abs(got.Y) > 1e-6 ||
		math.Abs(got.Width-20) > 1e-6 || math.Abs(got.Height-10) > 1e-6 {
		t.Errorf("ApplyRect = %+v, want {-20 0 20 10}", got)
	}
}

// --- Transform ---

func TestTransformIdentity(t *testing.T) {
	m := TransformIdentity.Matrix()
	x, y := m.Apply(5, 6)
	assertPoint(t, x, y, 5, 6)
}

func TestTransformTranslation(t *testing.T) {
	tr := TransformIdentity
	tr.Position = Vec2{100, 50}
	x, y := tr.Matrix().Apply(0, 0)
	assertPoint(t, x, y, 100, 50)
}

func TestTransformRotationAboutPivot(t *testing.T) {
	tr := TransformIdentity
	tr.Pivot = Vec2{10, 10}
	tr.Rotation = math.Pi / 2
	// The pivot itself maps to the position (origin here).
	x, y := tr.Matrix().Apply(10, 10)
	assertPoint(t, x, y, 0, 0)
	// A point to the pivot's right rotates above it.
	x, y = tr.Matrix().Apply(20, 10)
	assertPoint(t, x, y, 0, 10)
}

func TestTransformScaleAboutPivot(t *testing.T) {
	tr := TransformIdentity
	tr.Pivot = Vec2{5, 5}
	tr.Scale = Vec2{2, 2}
	tr.Position = Vec2{5, 5}
	// Pivot stays put; other points scale away from it.
	x, y := tr.Matrix().Apply(5, 5)
	assertPoint(t, x, y, 5, 5)
	x, y = tr.Matrix().Apply(10, 5)
	assertPoint(t, x, y, 15, 5)
}

// --- Rect ---

func TestRectUnion(t *testing.T) {
	u := Rect{0, 0, 10, 10}.Union(Rect{20, 5, 10, 10})
	want := Rect{0, 0, 30, 15}
	if u != want {
		t.Errorf("Union = %+v, want %+v", u, want)
	}
}

func TestRectContainsEdges(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	if !r.Contains(0, 0) || !r.Contains(10, 10) {
		t.Error("edge points should be inside")
	}
	if r.Contains(10.001, 5) {
		t.Error("outside point should not be inside")
	}
}

func TestRectArea(t *testing.T) {
	if got := (Rect{0, 0, 4, 5}).Area(); got != 20 {
		t.Errorf("Area = %v, want 20", got)
	}
	if got := (Rect{0, 0, -1, 5}).Area(); got != 0 {
		t.Errorf("degenerate Area = %v, want 0", got)
	}
}

func TestRectExpand(t *testing.T) {
	got := Rect{10, 10, 10, 10}.Expand(2)
	want := Rect{8, 8, 14, 14}
	if got != want {
		t.Errorf("Expand = %+v, want %+v", got, want)
	}
}
