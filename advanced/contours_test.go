package advanced

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Builds a one component triangulator whose boundary half-edges are the
// given directed edges, in discovery order.
func boundaryOnly(ends [][2]int) *triangulator {
	res := &Result{Components: []Component{{Triangles: Range{0, (len(ends) + 2) / 3}, Winding: 1}}}
	tr := &triangulator{res: res}
	for _, e := range ends {
		res.HalfEdges = append(res.HalfEdges, HalfEdge{V0: e[0], V1: e[1], Boundary: -1})
		tr.boundaryHalf = append(tr.boundaryHalf, true)
	}
	return tr
}

func TestExtractContoursBranch(t *testing.T) {
	// Two loops pinched at point 1. The walk starts on the 0-1-2 loop, but
	// at the pinch it takes the 1-3-4 loop first, closes it off, and then
	// resumes the outer walk.
	tr := boundaryOnly([][2]int{{0, 1}, {1, 3}, {3, 4}, {4, 1}, {1, 2}, {2, 0}})
	tr.extractContours(0)
	res := tr.res

	require.Len(t, res.Contours, 2)
	assert.Equal(t, []int{1, 3, 4}, res.ContourPoints(res.Contours[0]))
	assert.Equal(t, []int{0, 1, 2}, res.ContourPoints(res.Contours[1]))
	for ci, c := range res.Contours {
		assert.Equal(t, 0, c.Component)
		assert.Equal(t, 1, c.Winding)
		for pos, e := range res.ContourEdges(c) {
			assert.Equal(t, ci, e.Contour)
			assert.Equal(t, pos, e.Position)
			assert.Equal(t, c.Edges.Begin+pos, res.HalfEdges[e.HalfEdge].Boundary)
		}
	}
}

func TestExtractContoursOpen(t *testing.T) {
	tr := boundaryOnly([][2]int{{0, 1}, {1, 2}, {2, 3}})
	err := func() (err error) {
		defer func() {
			err = HandleTriangulatePanicRecover(recover())
		}()
		tr.extractContours(0)
		return nil
	}()
	assert.Equal(t, ErrTopology, errors.Cause(err))
}

func TestTouchingSquares(t *testing.T) {
	outlines := TouchingSquares()
	res := outlines.Triangulate(DefaultOptions())
	AssertValidResult(t, outlines, res)
	assert.Equal(t, []int{0, 0, 1}, windings(res))

	one, ok := res.Component(1)
	require.True(t, ok)
	assert.Equal(t, 2, one.Components.Len())
	assert.Equal(t, 2, one.Contours.Len())
	assert.InDelta(t, 2, filledArea(res, one), Epsilon)

	// The outside boundary pinches where the squares touch: the frame plus one
	// loop around each square.
	assert.True(t, res.Bounded().Empty())
	assert.Equal(t, 3, res.Unbounded().Contours.Len())
	assert.Equal(t, 12, res.Unbounded().BoundaryEdges.Len())
}
