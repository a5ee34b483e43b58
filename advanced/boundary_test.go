package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loopArea(points []Point, loop Loop) float64 {
	area := 0.0
	for i, id := range loop.Points {
		a, b := points[id], points[loop.Points[(i+1)%len(loop.Points)]]
		area += a.X*b.Y - b.X*a.Y
	}
	return area / 2
}

func TestBoundaryContours(t *testing.T) {
	t.Run("ring", func(t *testing.T) {
		points, loops, err := SquareWithHole().BoundaryContours(nil)
		require.NoError(t, err)
		require.Len(t, loops, 2)
		total := 0.0
		for _, loop := range loops {
			assert.Equal(t, 1, loop.Winding)
			assert.Len(t, loop.Points, 4)
			total += loopArea(points, loop)
		}
		// The outer loop runs counterclockwise and the hole clockwise.
		assert.InDelta(t, 84, total, Epsilon)
	})

	t.Run("overlapping squares merge", func(t *testing.T) {
		points, loops, err := OverlappingSquares().BoundaryContours(func(w int) bool { return w > 0 })
		require.NoError(t, err)
		require.Len(t, loops, 1)
		assert.Len(t, loops[0].Points, 8)
		assert.InDelta(t, 7, loopArea(points, loops[0]), Epsilon)
	})

	t.Run("invalid input", func(t *testing.T) {
		_, _, err := OutlineSet{}.BoundaryContours(nil)
		assert.Error(t, err)
	})
}
