package advanced

import (
	"github.com/osuushi/multiwind/internal/sweep"
)

// BoundaryContours returns the outlines of the regions whose winding number
// satisfies shouldFill (nonzero if nil), as counterclockwise loops of point
// ids into the returned points. Overlapping outlines are merged, and
// crossings become induced points.
func (outlines OutlineSet) BoundaryContours(shouldFill func(winding int) bool) (points []Point, loops []Loop, err error) {
	defer func() {
		if recovered := HandleTriangulatePanicRecover(recover()); recovered != nil {
			err = recovered
		}
	}()

	t := newTriangulator(outlines, DefaultOptions())
	sink := &passSink{}
	sink.combine = func(x, y float64, data [4]int, weights [4]float64) int {
		id, _ := t.arena.blend(InducedPoint, x, y, data, weights)
		return id
	}
	sweep.Tessellate([]sweep.Polygon{t.polygon()}, sweep.Options{
		ShouldFill:   shouldFill,
		BoundaryOnly: true,
	}, sink)
	if sink.err != nil {
		return nil, nil, sink.err
	}
	return t.arena.points, sink.loops, nil
}
