package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// resplit runs the split pass again with the split triangulation of res as
// its input.
func resplit(res *Result) *triangulator {
	again := &triangulator{
		opts: DefaultOptions(),
		arena: &arena{
			points:    append([]Point(nil), res.Points...),
			blends:    map[blendKey][]int{},
			tolerance: DefaultTolerance,
		},
		res: &Result{Triangles: append([]Triangle(nil), res.SplitTriangles...)},
	}
	for _, c := range res.Components {
		again.res.Components = append(again.res.Components, Component{
			Winding:   c.Winding,
			Unbounded: c.Unbounded,
			Triangles: c.SplitTriangles,
		})
	}
	again.indexHalfEdges()
	for ci := range again.res.Components {
		again.split(ci)
	}
	return again
}

func TestSplitIdempotent(t *testing.T) {
	for name, outlines := range AllFixtures() {
		t.Run(name, func(t *testing.T) {
			res := outlines.Triangulate(DefaultOptions())
			again := resplit(res)
			assert.Equal(t, res.SplitTriangles, again.res.SplitTriangles)
			assert.Len(t, again.arena.points, len(res.Points))
		})
	}
}
