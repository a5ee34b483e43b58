package flatten

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"seehuhn.de/go/geom/vec"
)

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func assertNear(t *testing.T, want, got vec.Vec2) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-12)
	assert.InDelta(t, want.Y, got.Y, 1e-12)
}

// Distance from p to the segment a-b.
func segmentDistance(p, a, b vec.Vec2) float64 {
	ab := b.Sub(a)
	l2 := ab.X*ab.X + ab.Y*ab.Y
	if l2 == 0 {
		return p.Sub(a).Length()
	}
	s := math.Max(0, math.Min(1, ((p.X-a.X)*ab.X+(p.Y-a.Y)*ab.Y)/l2))
	return p.Sub(a.Add(ab.Mul(s))).Length()
}

func TestEval(t *testing.T) {
	t.Run("quadratic", func(t *testing.T) {
		c := Bezier{pt(0, 0), pt(1, 2), pt(2, 0)}
		assertNear(t, pt(1, 1), c.Eval(0.5))
		assertNear(t, pt(0, 0), c.Eval(0))
		assertNear(t, pt(2, 0), c.Eval(1))
	})

	t.Run("cubic", func(t *testing.T) {
		c := Bezier{pt(0, 0), pt(0, 3), pt(3, 3), pt(3, 0)}
		s := 0.3
		u := 1 - s
		want := pt(
			3*u*s*s*3+s*s*s*3,
			3*u*u*s*3+3*u*s*s*3,
		)
		assertNear(t, want, c.Eval(s))
	})

	t.Run("evenly spaced control points trace a line", func(t *testing.T) {
		var c Bezier
		for i := 0; i <= 6; i++ {
			c = append(c, pt(float64(i), 2*float64(i)))
		}
		for _, s := range []float64{0.1, 0.25, 0.5, 0.9} {
			assertNear(t, pt(6*s, 12*s), c.Eval(s))
		}
	})
}

func TestSegments(t *testing.T) {
	t.Run("lines need one segment", func(t *testing.T) {
		assert.Equal(t, 1, Bezier{pt(0, 0), pt(5, 5)}.Segments(0.01))
	})

	t.Run("quadratic", func(t *testing.T) {
		// The second difference has length 4: n = sqrt(1/4 * 4 / 0.01).
		c := Bezier{pt(0, 0), pt(1, 2), pt(2, 0)}
		assert.Equal(t, 10, c.Segments(0.01))
	})

	t.Run("cubic", func(t *testing.T) {
		// Second differences (3,-3) and (-3,-3): n = ceil(sqrt(3/4 * 3√2 / 0.1)).
		c := Bezier{pt(0, 0), pt(0, 3), pt(3, 3), pt(3, 0)}
		assert.Equal(t, 6, c.Segments(0.1))
	})

	t.Run("capped", func(t *testing.T) {
		c := Bezier{pt(0, 0), pt(1e9, 1e9), pt(2e9, 0)}
		assert.Equal(t, MaxSegments, c.Segments(1e-9))
	})
}

func TestFlattenWithinTolerance(t *testing.T) {
	curves := map[string]Bezier{
		"quadratic": {pt(0, 0), pt(50, 100), pt(100, 0)},
		"cubic":     {pt(0, 0), pt(0, 80), pt(100, -80), pt(100, 0)},
		"quintic":   {pt(0, 0), pt(20, 60), pt(40, -60), pt(60, 60), pt(80, -60), pt(100, 0)},
	}
	const tolerance = 0.1
	for name, c := range curves {
		t.Run(name, func(t *testing.T) {
			var points []vec.Vec2
			c.Flatten(tolerance, func(p vec.Vec2) { points = append(points, p) })
			assert.Len(t, points, c.Segments(tolerance))
			assert.Equal(t, c[len(c)-1], points[len(points)-1])

			prev := c[0]
			n := len(points)
			for i, p := range points {
				for j := 1; j < 8; j++ {
					s := (float64(i) + float64(j)/8) / float64(n)
					assert.LessOrEqual(t, segmentDistance(c.Eval(s), prev, p), tolerance)
				}
				prev = p
			}
		})
	}
}
