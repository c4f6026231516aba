package trirast

// CoverageRule decides whether a sample point with barycentric weights
// (u, v, w) lies inside a triangle.
type CoverageRule int

const (
	// CoverageStrict accepts a point iff u, v and w are all >= 0.
	// Edges are inclusive. This is the default.
	CoverageStrict CoverageRule = iota

	// CoverageLegacy accepts a point iff v and w are both in [0, 1].
	// It never checks u, so points with v+w > 1 that lie beyond the edge
	// opposite the first vertex are accepted too. Kept for output
	// compatibility with renderers built on the two-inequality test.
	CoverageLegacy
)

// String returns the rule name.
func (r CoverageRule) String() string {
	switch r {
	case CoverageStrict:
		return "strict"
	case CoverageLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// Covers reports whether the weights describe a covered point.
// NaN weights are never covered.
func (r CoverageRule) Covers(u, v, w float32) bool {
	if r == CoverageLegacy {
		return v >= 0 && w >= 0 && v <= 1 && w <= 1
	}
	return u >= 0 && v >= 0 && w >= 0
}

// triangleSetup holds the per-triangle terms of the barycentric solve:
// the first vertex, the edge vectors from it and their determinant.
type triangleSetup struct {
	ax, ay   float32
	v0x, v0y float32 // b - a
	v1x, v1y float32 // c - a
	den      float32
}

func newTriangleSetup(a, b, c Vec2) triangleSetup {
	s := triangleSetup{
		ax: a[0], ay: a[1],
		v0x: b[0] - a[0], v0y: b[1] - a[1],
		v1x: c[0] - a[0], v1y: c[1] - a[1],
	}
	s.den = s.v0x*s.v1y - s.v1x*s.v0y
	return s
}

// degenerate reports a zero or NaN determinant. Every weight computed
// against such a triangle is infinite or NaN, so no rule covers any point.
func (s *triangleSetup) degenerate() bool {
	return !(s.den != 0 && s.den == s.den)
}

// weights returns (u, v, w) for the point (x, y).
func (s *triangleSetup) weights(x, y float32) (u, v, w float32) {
	v2x := x - s.ax
	v2y := y - s.ay
	v = (v2x*s.v1y - s.v1x*v2y) / s.den
	w = (s.v0x*v2y - v2x*s.v0y) / s.den
	return 1 - v - w, v, w
}

// Barycentric returns the barycentric weights of p relative to the
// triangle (a, b, c), so that p = a*u + b*v + c*w with u+v+w = 1.
// A degenerate triangle yields infinite or NaN weights.
func Barycentric(a, b, c, p Vec2) (u, v, w float32) {
	s := newTriangleSetup(a, b, c)
	return s.weights(p[0], p[1])
}
