package pdfdoc

// matrix is a PDF transformation matrix [a b c d e f]:
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
type matrix struct {
	a, b, c, d, e, f float64
}

func identityMatrix() matrix {
	return matrix{a: 1, d: 1}
}

// mul returns m × n, the matrix that applies m first and then n. This is
// the composition the cm operator performs against the current CTM.
func (m matrix) mul(n matrix) matrix {
	return matrix{
		a: m.a*n.a + m.b*n.c,
		b: m.a*n.b + m.b*n.d,
		c: m.c*n.a + m.d*n.c,
		d: m.c*n.b + m.d*n.d,
		e: m.e*n.a + m.f*n.c + n.e,
		f: m.e*n.b + m.f*n.d + n.f,
	}
}

// apply transforms the point (x, y).
func (m matrix) apply(x, y float64) (float64, float64) {
	return m.a*x + m.c*y + m.e, m.b*x + m.d*y + m.f
}

// Rect is an axis-aligned rectangle in PDF user space (points, Y up).
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Width returns the horizontal extent in points.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns the vertical extent in points.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// Center returns the rectangle's midpoint.
func (r Rect) Center() (float64, float64) {
	return (r.X0 + r.X1) / 2, (r.Y0 + r.Y1) / 2
}

// Intersect clips r to o. A disjoint pair yields an empty rectangle.
func (r Rect) Intersect(o Rect) Rect {
	out := Rect{
		X0: max(r.X0, o.X0),
		Y0: max(r.Y0, o.Y0),
		X1: min(r.X1, o.X1),
		Y1: min(r.Y1, o.Y1),
	}
	if out.X1 < out.X0 {
		out.X1 = out.X0
	}
	if out.Y1 < out.Y0 {
		out.Y1 = out.Y0
	}
	return out
}

// Expand grows the rectangle by d points on every side.
func (r Rect) Expand(d float64) Rect {
	return Rect{X0: r.X0 - d, Y0: r.Y0 - d, X1: r.X1 + d, Y1: r.Y1 + d}
}

// unitSquareBounds returns the bounding rectangle of the unit square
// transformed by m, which is where a Do of an image XObject paints.
func unitSquareBounds(m matrix) Rect {
	xs := make([]float64, 0, 4)
	ys := make([]float64, 0, 4)
	for _, p := range [][2]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		x, y := m.apply(p[0], p[1])
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return Rect{
		X0: min(xs[0], xs[1], xs[2], xs[3]),
		Y0: min(ys[0], ys[1], ys[2], ys[3]),
		X1: max(xs[0], xs[1], xs[2], xs[3]),
		Y1: max(ys[0], ys[1], ys[2], ys[3]),
	}
}
