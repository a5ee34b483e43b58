// Package flatten converts Bezier curves and paths into polylines dense
// enough to triangulate.
package flatten

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

const (
	// DefaultTolerance is the default maximum distance between a curve and
	// its polyline.
	DefaultTolerance = 0.25
	// MaxSegments bounds the number of segments a single curve is split
	// into.
	MaxSegments = 1 << 14
)

// Bezier is a Bezier curve of any degree, given by its control points from
// start to end.
type Bezier []vec.Vec2

func (c Bezier) Degree() int {
	return len(c) - 1
}

// Eval returns the point of the curve at parameter t in [0, 1].
func (c Bezier) Eval(t float64) vec.Vec2 {
	return c.EvalWith(Shared, t)
}

// EvalWith evaluates the curve in Bernstein form using the coefficients of
// b.
func (c Bezier) EvalWith(b *Binomial, t float64) vec.Vec2 {
	n := c.Degree()
	if n < 0 {
		return vec.Vec2{}
	}
	switch t {
	case 0:
		return c[0]
	case 1:
		return c[n]
	}
	row := b.Row(n)
	s := 1 - t
	var p vec.Vec2
	for i, ctrl := range c {
		w := row[i] * math.Pow(t, float64(i)) * math.Pow(s, float64(n-i))
		p = p.Add(ctrl.Mul(w))
	}
	return p
}

// Segments returns how many equal parameter steps keep the polyline within
// tolerance of the curve. This is Wang's bound:
//
//	n = ceil(sqrt(d(d-1)/8 * max|P[i] - 2P[i+1] + P[i+2]| / tolerance))
func (c Bezier) Segments(tolerance float64) int {
	d := c.Degree()
	if d < 2 {
		return 1
	}
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	m := 0.0
	for i := 0; i+2 < len(c); i++ {
		dd := c[i].Sub(c[i+1].Mul(2)).Add(c[i+2])
		m = math.Max(m, dd.Length())
	}
	nFloat := math.Sqrt(float64(d*(d-1)) / 8 * m / tolerance)
	if nFloat <= 1 || math.IsNaN(nFloat) {
		return 1
	}
	if nFloat >= MaxSegments {
		return MaxSegments
	}
	return int(math.Ceil(nFloat))
}

// Flatten calls emit for the end point of each segment of the polyline
// approximating the curve. The start point is not emitted.
func (c Bezier) Flatten(tolerance float64, emit func(p vec.Vec2)) {
	if len(c) < 2 {
		return
	}
	n := c.Segments(tolerance)
	for i := 1; i <= n; i++ {
		emit(c.Eval(float64(i) / float64(n)))
	}
}
