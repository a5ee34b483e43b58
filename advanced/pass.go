package advanced

import (
	"github.com/osuushi/multiwind/internal/logging"
	"github.com/osuushi/multiwind/internal/sweep"
)

type rawTriangle struct {
	v       [3]int
	winding int
}

// Loop is a closed boundary contour of a filled region, as point ids in
// counterclockwise order.
type Loop struct {
	Winding int
	Points  []int
}

// passSink collects the output of one run of the sweep.
type passSink struct {
	combine func(x, y float64, data [4]int, weights [4]float64) int

	kind    PrimitiveKind
	winding int
	buf     []int

	triangles []rawTriangle
	loops     []Loop
	combines  int
	err       error
}

func (s *passSink) BeginPrimitive(kind PrimitiveKind, winding int) {
	s.kind, s.winding = kind, winding
	s.buf = s.buf[:0]
}

func (s *passSink) EmitVertex(data int) {
	s.buf = append(s.buf, data)
	if s.kind == Triangles && len(s.buf) == 3 {
		s.triangles = append(s.triangles, rawTriangle{
			v:       [3]int{s.buf[0], s.buf[1], s.buf[2]},
			winding: s.winding,
		})
		s.buf = s.buf[:0]
	}
}

func (s *passSink) EndPrimitive() {
	if s.kind == LineLoop {
		s.loops = append(s.loops, Loop{
			Winding: s.winding,
			Points:  append([]int(nil), s.buf...),
		})
	}
	s.buf = s.buf[:0]
}

func (s *passSink) Combine(x, y float64, data [4]int, weights [4]float64) int {
	s.combines++
	return s.combine(x, y, data, weights)
}

func (s *passSink) Error(err error) {
	if s.err == nil {
		s.err = err
	}
}

// polygon builds the sweep input for the shape, with point ids as vertex
// data.
func (t *triangulator) polygon() sweep.Polygon {
	poly := make(sweep.Polygon, 0, len(t.samples))
	for _, ids := range t.samples {
		contour := make(sweep.Contour, len(ids))
		for i, id := range ids {
			p := &t.arena.points[id]
			contour[i] = sweep.Vertex{X: p.X, Y: p.Y, Data: id}
		}
		poly = append(poly, contour)
	}
	return poly
}

// nonZeroPass collects the triangles of every nonzero winding level.
func (t *triangulator) nonZeroPass() ([]rawTriangle, bool) {
	sink := &passSink{}
	sink.combine = func(x, y float64, data [4]int, weights [4]float64) int {
		id, created := t.arena.blend(InducedPoint, x, y, data, weights)
		if created {
			t.induced = append(t.induced, id)
		}
		return id
	}
	sweep.Tessellate([]sweep.Polygon{t.polygon()}, sweep.Options{
		ShouldFill:       sweep.NonZero,
		MaxCacheVertices: t.opts.MaxCacheVertices,
	}, sink)
	t.stats.Combines = sink.combines
	t.stats.Induced = len(t.induced)
	if sink.err != nil {
		logging.Logger().Warn("multiwind: nonzero pass failed", "error", sink.err)
		return nil, false
	}
	t.stats.NonZeroTriangles = len(sink.triangles)
	return sink.triangles, true
}

// zeroPass collects the triangles of winding 0, including the outside of
// the shape up to a frame around its bounding box. The frame shifts every
// winding by one, so winding 0 is filled as winding 1.
func (t *triangulator) zeroPass(nonZero []rawTriangle) ([]rawTriangle, bool) {
	rec := newReconciler(t.arena, t.induced, nonZero)
	sink := &passSink{}
	sink.combine = func(x, y float64, data [4]int, weights [4]float64) int {
		if id := t.arena.findBlend(InducedPoint, x, y, data); id >= 0 {
			return id
		}
		if id := rec.match(x, y); id >= 0 {
			t.stats.Reconciled++
			return id
		}
		id, _ := t.arena.blend(InducedPoint, x, y, data, weights)
		t.stats.ZeroPassInduced++
		logging.Logger().Warn("multiwind: zero pass induced a new point", "x", x, "y", y)
		return id
	}

	poly := t.polygon()
	frame := make(sweep.Contour, len(t.frame))
	for i, id := range t.frame {
		p := &t.arena.points[id]
		frame[i] = sweep.Vertex{X: p.X, Y: p.Y, Data: id}
	}
	poly = append(poly, frame)

	sweep.Tessellate([]sweep.Polygon{poly}, sweep.Options{
		ShouldFill: func(winding int) bool { return winding == 1 },
	}, sink)
	if sink.err != nil {
		logging.Logger().Warn("multiwind: zero pass failed", "error", sink.err)
		return nil, false
	}
	for i := range sink.triangles {
		sink.triangles[i].winding = 0
	}
	t.stats.ZeroTriangles = len(sink.triangles)
	return sink.triangles, true
}
