// Package advanced implements the multi-winding triangulator. It runs the
// sweep tessellator twice over a shape, once for every nonzero winding level
// and once for winding 0 inside a frame around the shape, then merges the
// two into one triangulation grouped by winding level and connected
// component, with boundary contours and a split triangulation in which no
// edge or triangle spans only boundary vertices.
package advanced

import (
	"math"
	"sort"

	"github.com/osuushi/multiwind/internal/logging"
)

type triangulator struct {
	opts  Options
	arena *arena
	// Sample point ids, per outline.
	samples [][]int
	frame   []int
	// Points induced by the nonzero pass.
	induced []int
	stats   Stats

	res            *Result
	table          edgeTable
	directed       map[[2]int]int
	boundaryHalf   []bool
	boundaryVertex []bool
}

func newTriangulator(outlines OutlineSet, opts Options) *triangulator {
	outlines.validate()
	opts = opts.withDefaults()
	min, max, _ := outlines.Bounds()
	extent := math.Max(max[0]-min[0], max[1]-min[1])
	if extent == 0 || math.IsInf(extent, 0) {
		extent = 1
	}
	t := &triangulator{
		opts:  opts,
		arena: newArena(opts.Tolerance * extent),
	}
	for i, o := range outlines {
		ids := make([]int, len(o))
		for j, v := range o {
			ids[j] = t.arena.addSample(v.X, v.Y, i, j, v.Tag)
		}
		t.samples = append(t.samples, ids)
	}
	return t
}

// Triangulate triangulates the shape made of the outlines. It panics with a
// TriangulateError if no outline has three vertices or a coordinate is not
// finite. A winding level that cannot be triangulated is left empty and
// reported by Result.Failed.
func (outlines OutlineSet) Triangulate(opts Options) *Result {
	t := newTriangulator(outlines, opts)

	nonZero, nonZeroOK := t.nonZeroPass()
	min, max, _ := outlines.Bounds()
	t.addFrame(min, max)
	zero, zeroOK := t.zeroPass(nonZero)

	res := t.build(t.merge(nonZero, nonZeroOK, zero, zeroOK))
	logging.Logger().Debug("multiwind: triangulated",
		"points", len(res.Points),
		"triangles", len(res.Triangles),
		"components", len(res.Components),
		"induced", t.stats.Induced,
		"reconciled", t.stats.Reconciled,
	)
	return res
}

// frameSkew stretches the frame vertically beyond FrameScale. With equal
// scales a frame corner lies on every diagonal through the center of the
// box, and the winding 0 pass emits flat triangles along it.
const frameSkew = 1 + 1/(10*math.Pi)

// The frame is a counterclockwise rectangle around the bounding box, scaled
// about its center. A flat box is padded so the frame has an interior.
func (t *triangulator) addFrame(min, max [2]float64) {
	const minAspect = 0.1
	w, h := max[0]-min[0], max[1]-min[1]
	extent := math.Max(w, h)
	if extent == 0 {
		extent = 1
	}
	cx, cy := (min[0]+max[0])/2, (min[1]+max[1])/2
	hx := math.Max(w, extent*minAspect) / 2 * t.opts.FrameScale
	hy := math.Max(h, extent*minAspect) / 2 * t.opts.FrameScale * frameSkew
	t.frame = []int{
		t.arena.addUnbounded(cx-hx, cy-hy),
		t.arena.addUnbounded(cx+hx, cy-hy),
		t.arena.addUnbounded(cx+hx, cy+hy),
		t.arena.addUnbounded(cx-hx, cy+hy),
	}
}

// merge combines the triangles of both passes. If they overlap, winding 0
// is dropped, and if the nonzero pass overlaps itself, it is dropped too.
func (t *triangulator) merge(nonZero []rawTriangle, nonZeroOK bool, zero []rawTriangle, zeroOK bool) []rawTriangle {
	res := &Result{nonZeroFailed: !nonZeroOK, zeroFailed: !zeroOK}
	t.res = res
	nonZero, zero = dropDegenerate(nonZero), dropDegenerate(zero)

	all := append(append([]rawTriangle(nil), nonZero...), zero...)
	if _, ok := buildEdgeTable(vertices(all)); ok {
		return all
	}
	if zeroOK {
		logging.Logger().Warn("multiwind: winding 0 overlaps nonzero triangles")
		res.zeroFailed = true
		if _, ok := buildEdgeTable(vertices(nonZero)); ok {
			return nonZero
		}
	}
	logging.Logger().Warn("multiwind: nonzero triangles overlap")
	res.nonZeroFailed = true
	if zeroOK {
		if _, ok := buildEdgeTable(vertices(zero)); ok {
			res.zeroFailed = false
			return zero
		}
	}
	res.zeroFailed = true
	return nil
}

func dropDegenerate(tris []rawTriangle) []rawTriangle {
	kept := tris[:0]
	for _, tri := range tris {
		v := tri.v
		if v[0] == v[1] || v[1] == v[2] || v[2] == v[0] {
			continue
		}
		kept = append(kept, tri)
	}
	return kept
}

func (t *triangulator) build(tris []rawTriangle) *Result {
	res := t.res
	t.sortComponents(tris)
	t.indexHalfEdges()

	for ci := range res.Components {
		c := &res.Components[ci]
		c.SplitTriangles.Begin = len(res.SplitTriangles)
		c.SplitPoints.Begin = len(t.arena.points)
		if !t.opts.DisableSplit {
			t.split(ci)
		}
		c.SplitTriangles.End = len(res.SplitTriangles)
		c.SplitPoints.End = len(t.arena.points)

		c.BoundaryEdges.Begin = len(res.BoundaryEdges)
		c.Contours.Begin = len(res.Contours)
		t.extractContours(ci)
		c.BoundaryEdges.End = len(res.BoundaryEdges)
		c.Contours.End = len(res.Contours)

		t.stats.SplitPoints += c.SplitPoints.Len()
	}
	t.linkNeighbors()

	res.Points = t.arena.points
	res.Stats = t.stats
	t.fillLevels()
	return res
}

// sortComponents labels the connected components of each winding level and
// stores the triangles grouped by level, then component. The unbounded
// component of winding 0 goes last.
func (t *triangulator) sortComponents(tris []rawTriangle) {
	res := t.res
	table, _ := buildEdgeTable(vertices(tris))

	byLevel := map[int][]int{}
	for i, tri := range tris {
		byLevel[tri.winding] = append(byLevel[tri.winding], i)
	}
	windings := make([]int, 0, len(byLevel))
	for w := range byLevel {
		windings = append(windings, w)
	}
	sort.Ints(windings)

	labeled := make([]bool, len(tris))
	for _, w := range windings {
		var groups [][]int
		unbounded := -1
		for _, start := range byLevel[w] {
			if labeled[start] {
				continue
			}
			members := floodFill(start, tris, table, labeled)
			if w == 0 && unbounded < 0 && t.touchesFrame(members, tris) {
				unbounded = len(groups)
			}
			groups = append(groups, members)
		}
		if unbounded >= 0 {
			last := len(groups) - 1
			g := groups[unbounded]
			copy(groups[unbounded:], groups[unbounded+1:])
			groups[last] = g
		}

		for gi, members := range groups {
			ci := len(res.Components)
			begin := len(res.Triangles)
			for _, i := range members {
				res.Triangles = append(res.Triangles, Triangle{V: tris[i].v, Winding: w, Component: ci})
			}
			res.Components = append(res.Components, Component{
				Winding:   w,
				Unbounded: unbounded >= 0 && gi == len(groups)-1,
				Triangles: Range{begin, len(res.Triangles)},
			})
		}
	}
}

// floodFill labels and returns the triangles reachable from start across
// edges shared with a triangle of the same winding, in ascending order.
func floodFill(start int, tris []rawTriangle, table edgeTable, labeled []bool) []int {
	var members []int
	stack := intStack{start}
	labeled[start] = true
	for !stack.Empty() {
		i := stack.Pop()
		members = append(members, i)
		for k := 0; k < 3; k++ {
			u, v := halfEdgeEnds(tris[i].v, k)
			h := table.other(makeEdgeKey(u, v), 3*i+k)
			if h < 0 {
				continue
			}
			n := h / 3
			if labeled[n] || tris[n].winding != tris[i].winding {
				continue
			}
			labeled[n] = true
			stack.Push(n)
		}
	}
	sort.Ints(members)
	return members
}

func (t *triangulator) touchesFrame(members []int, tris []rawTriangle) bool {
	for _, i := range members {
		for _, id := range tris[i].v {
			if t.arena.points[id].Kind == UnboundedPoint {
				return true
			}
		}
	}
	return false
}

// indexHalfEdges builds the half-edges of the sorted triangles, and marks
// boundary half-edges and the vertices they touch.
func (t *triangulator) indexHalfEdges() {
	res := t.res
	verts := make([][3]int, len(res.Triangles))
	for i, tri := range res.Triangles {
		verts[i] = tri.V
	}
	t.table, _ = buildEdgeTable(verts)

	res.HalfEdges = make([]HalfEdge, 3*len(res.Triangles))
	t.directed = make(map[[2]int]int, len(res.HalfEdges))
	for i, tri := range res.Triangles {
		for k := 0; k < 3; k++ {
			u, v := halfEdgeEnds(tri.V, k)
			h := 3*i + k
			res.HalfEdges[h] = HalfEdge{
				V0: u, V1: v,
				Opposite:      tri.V[(k+2)%3],
				Triangle:      i,
				Winding:       tri.Winding,
				SplitOpposite: -1,
				SplitTriangle: -1,
				Boundary:      -1,
			}
			t.directed[[2]int{u, v}] = h
		}
	}

	t.boundaryHalf = make([]bool, len(res.HalfEdges))
	t.boundaryVertex = make([]bool, len(t.arena.points))
	for h := range res.HalfEdges {
		he := &res.HalfEdges[h]
		o := t.table.other(makeEdgeKey(he.V0, he.V1), h)
		if o >= 0 && res.HalfEdges[o].Winding == he.Winding {
			continue
		}
		t.boundaryHalf[h] = true
		t.boundaryVertex[he.V0] = true
		t.boundaryVertex[he.V1] = true
	}
}

func (t *triangulator) isBoundaryVertex(id int) bool {
	return id < len(t.boundaryVertex) && t.boundaryVertex[id]
}

// linkNeighbors pairs boundary edges that run both ways along the same
// segment, between two winding levels.
func (t *triangulator) linkNeighbors() {
	res := t.res
	for i := range res.BoundaryEdges {
		b := &res.BoundaryEdges[i]
		o := t.table.other(makeEdgeKey(b.V0, b.V1), b.HalfEdge)
		if o >= 0 {
			b.Neighbor = res.HalfEdges[o].Boundary
		}
	}
}

// fillLevels gathers the components into one FilledComponent per nonzero
// winding level, and two for winding 0.
func (t *triangulator) fillLevels() {
	res := t.res
	ci := 0
	next := func(pred func(c *Component) bool) Range {
		begin := ci
		for ci < len(res.Components) && pred(&res.Components[ci]) {
			ci++
		}
		return Range{begin, ci}
	}
	for ci < len(res.Components) && res.Components[ci].Winding < 0 {
		w := res.Components[ci].Winding
		res.Filled = append(res.Filled, res.span(w, false, false,
			next(func(c *Component) bool { return c.Winding == w })))
	}
	res.Filled = append(res.Filled,
		res.span(0, false, res.zeroFailed,
			next(func(c *Component) bool { return c.Winding == 0 && !c.Unbounded })),
		res.span(0, true, res.zeroFailed,
			next(func(c *Component) bool { return c.Winding == 0 && c.Unbounded })),
	)
	for ci < len(res.Components) {
		w := res.Components[ci].Winding
		res.Filled = append(res.Filled, res.span(w, false, false,
			next(func(c *Component) bool { return c.Winding == w })))
	}
}

// span aggregates a run of components. An empty run gets empty ranges
// positioned where the next component starts.
func (res *Result) span(winding int, unbounded, failed bool, comps Range) FilledComponent {
	fc := FilledComponent{
		Winding:    winding,
		Unbounded:  unbounded,
		Failed:     failed,
		Components: comps,
	}
	if comps.Len() > 0 {
		first, last := &res.Components[comps.Begin], &res.Components[comps.End-1]
		fc.Triangles = Range{first.Triangles.Begin, last.Triangles.End}
		fc.SplitTriangles = Range{first.SplitTriangles.Begin, last.SplitTriangles.End}
		fc.BoundaryEdges = Range{first.BoundaryEdges.Begin, last.BoundaryEdges.End}
		fc.Contours = Range{first.Contours.Begin, last.Contours.End}
		fc.SplitPoints = Range{first.SplitPoints.Begin, last.SplitPoints.End}
		return fc
	}
	empty := func(i int) Range { return Range{i, i} }
	if comps.Begin < len(res.Components) {
		next := &res.Components[comps.Begin]
		fc.Triangles = empty(next.Triangles.Begin)
		fc.SplitTriangles = empty(next.SplitTriangles.Begin)
		fc.BoundaryEdges = empty(next.BoundaryEdges.Begin)
		fc.Contours = empty(next.Contours.Begin)
		fc.SplitPoints = empty(next.SplitPoints.Begin)
	} else {
		fc.Triangles = empty(len(res.Triangles))
		fc.SplitTriangles = empty(len(res.SplitTriangles))
		fc.BoundaryEdges = empty(len(res.BoundaryEdges))
		fc.Contours = empty(len(res.Contours))
		fc.SplitPoints = empty(len(res.Points))
	}
	return fc
}
