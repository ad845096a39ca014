package pdfdoc

import (
	"math"
	"testing"
)

func TestMatrixApply(t *testing.T) {
	// Scale by (2,3) then translate by (10,20).
	m := matrix{a: 2, d: 3, e: 10, f: 20}

	x, y := m.apply(1, 1)
	if x != 12 || y != 23 {
		t.Errorf("apply(1,1) = (%v,%v), want (12,23)", x, y)
	}
}

func TestMatrixMul(t *testing.T) {
	scale := matrix{a: 2, d: 2}
	translate := matrix{a: 1, d: 1, e: 5, f: 7}

	// Scale first, then translate.
	m := scale.mul(translate)
	x, y := m.apply(1, 1)
	if x != 7 || y != 9 {
		t.Errorf("scale-then-translate(1,1) = (%v,%v), want (7,9)", x, y)
	}

	// Translate first, then scale.
	m = translate.mul(scale)
	x, y = m.apply(1, 1)
	if x != 12 || y != 16 {
		t.Errorf("translate-then-scale(1,1) = (%v,%v), want (12,16)", x, y)
	}
}

func TestMatrixMul_Identity(t *testing.T) {
	m := matrix{a: 2, b: 0.5, c: -1, d: 3, e: 4, f: -2}

	for _, got := range []matrix{m.mul(identityMatrix()), identityMatrix().mul(m)} {
		if got != m {
			t.Errorf("identity product changed matrix: got %+v, want %+v", got, m)
		}
	}
}

func TestUnitSquareBounds(t *testing.T) {
	// The standard image placement CTM: width 200, height 100, origin
	// (50, 60).
	m := matrix{a: 200, d: 100, e: 50, f: 60}

	r := unitSquareBounds(m)
	want := Rect{X0: 50, Y0: 60, X1: 250, Y1: 160}
	if r != want {
		t.Errorf("bounds = %+v, want %+v", r, want)
	}
}

func TestUnitSquareBounds_Rotated(t *testing.T) {
	// 90° rotation: unit square maps onto [-1,0]x[0,1].
	s, c := math.Sin(math.Pi/2), math.Cos(math.Pi/2)
	m := matrix{a: c, b: s, c: -s, d: c}

	r := unitSquareBounds(m)
	const eps = 1e-9
	if math.Abs(r.X0-(-1)) > eps || math.Abs(r.Y0) > eps ||
		math.Abs(r.X1) > eps || math.Abs(r.Y1-1) > eps {
		t.Errorf("rotated bounds = %+v, want [-1,0]x[0,1]", r)
	}
}

func TestRectExpandIntersect(t *testing.T) {
	r := Rect{X0: 100, Y0: 100, X1: 300, Y1: 200}

	grown := r.Expand(10)
	if grown != (Rect{X0: 90, Y0: 90, X1: 310, Y1: 210}) {
		t.Errorf("Expand: got %+v", grown)
	}

	page := Rect{X0: 0, Y0: 0, X1: 305, Y1: 400}
	clipped := grown.Intersect(page)
	if clipped != (Rect{X0: 90, Y0: 90, X1: 305, Y1: 210}) {
		t.Errorf("Intersect: got %+v", clipped)
	}

	disjoint := r.Intersect(Rect{X0: 1000, Y0: 1000, X1: 1100, Y1: 1100})
	if disjoint.Width() != 0 || disjoint.Height() != 0 {
		t.Errorf("Disjoint intersection should be empty, got %+v", disjoint)
	}
}

func TestRectCenter(t *testing.T) {
	r := Rect{X0: 10, Y0: 20, X1: 30, Y1: 60}
	x, y := r.Center()
	if x != 20 || y != 40 {
		t.Errorf("Center = (%v,%v), want (20,40)", x, y)
	}
}
