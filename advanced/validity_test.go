package advanced

// This contains no actual tests. It is just a helper for checking that a
// Result is valid. The rules are:
// 1. Every undirected edge is used by one or two triangles.
// 2. An edge between two windings is a boundary edge of both, and the two
//    boundary edges are neighbors. An edge inside a winding is not a
//    boundary edge.
// 3. No split triangle has three boundary vertices, and every split edge
//    between two boundary vertices is a boundary edge.
// 4. Every contour is a closed chain.
// 5. Winding 0 has exactly one unbounded component, and it is the only one
//    using the frame.
// 6. No triangle is clockwise (collinear input can give flat ones), and the split
//    triangles of a component cover the same area as its triangles.
// 7. Sampled points inside a triangle have the winding of the triangle.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const Epsilon = 1e-9

func triangleArea(points []Point, v [3]int) float64 {
	a, b, c := points[v[0]], points[v[1]], points[v[2]]
	return ((b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)) / 2
}

// Area of the triangles in a range.
func rangeArea(points []Point, tris []Triangle, r Range) float64 {
	area := 0.0
	for _, tri := range tris[r.Begin:r.End] {
		area += triangleArea(points, tri.V)
	}
	return area
}

func boundaryVertices(res *Result) map[int]bool {
	set := map[int]bool{}
	for _, b := range res.BoundaryEdges {
		set[b.V0] = true
		set[b.V1] = true
	}
	return set
}

func AssertValidResult(t *testing.T, outlines OutlineSet, res *Result) {
	t.Helper()
	require.NotNil(t, res)
	assertEdgeClosure(t, res)
	assertWindingConsistency(t, res)
	assertSplitSafety(t, res)
	assertContourClosure(t, res)
	assertUnbounded(t, res)
	assertOrientation(t, res)
	assertLayout(t, res)
	assertSampledWindings(t, outlines, res)
}

func assertEdgeClosure(t *testing.T, res *Result) {
	uses := map[edgeKey]int{}
	for _, tri := range res.Triangles {
		for k := 0; k < 3; k++ {
			u, v := halfEdgeEnds(tri.V, k)
			uses[makeEdgeKey(u, v)]++
		}
	}
	for key, n := range uses {
		require.True(t, n == 1 || n == 2, "edge %v used by %d triangles", key, n)
	}
}

func assertWindingConsistency(t *testing.T, res *Result) {
	halves := map[edgeKey][]int{}
	for h, he := range res.HalfEdges {
		key := makeEdgeKey(he.V0, he.V1)
		halves[key] = append(halves[key], h)
	}
	for key, hs := range halves {
		if len(hs) == 1 {
			require.GreaterOrEqual(t, res.HalfEdges[hs[0]].Boundary, 0, "lone edge %v is not a boundary edge", key)
			continue
		}
		a, b := res.HalfEdges[hs[0]], res.HalfEdges[hs[1]]
		require.Equal(t, a.V0, b.V1, "edge %v used twice in one direction", key)
		if a.Winding == b.Winding {
			assert.Equal(t, -1, a.Boundary, "interior edge %v is a boundary edge", key)
			assert.Equal(t, -1, b.Boundary, "interior edge %v is a boundary edge", key)
			continue
		}
		require.GreaterOrEqual(t, a.Boundary, 0, "edge %v between windings is not a boundary edge", key)
		require.GreaterOrEqual(t, b.Boundary, 0, "edge %v between windings is not a boundary edge", key)
		assert.Equal(t, b.Boundary, res.BoundaryEdges[a.Boundary].Neighbor)
		assert.Equal(t, a.Boundary, res.BoundaryEdges[b.Boundary].Neighbor)
	}
}

func assertSplitSafety(t *testing.T, res *Result) {
	onBoundary := boundaryVertices(res)
	boundaryEdges := map[edgeKey]bool{}
	for _, b := range res.BoundaryEdges {
		boundaryEdges[makeEdgeKey(b.V0, b.V1)] = true
	}
	for i, tri := range res.SplitTriangles {
		v := tri.V
		assert.False(t, onBoundary[v[0]] && onBoundary[v[1]] && onBoundary[v[2]],
			"split triangle %d has three boundary vertices", i)
		for k := 0; k < 3; k++ {
			a, b := halfEdgeEnds(v, k)
			if onBoundary[a] && onBoundary[b] {
				assert.True(t, boundaryEdges[makeEdgeKey(a, b)],
					"split triangle %d has an interior edge between boundary points %d and %d", i, a, b)
			}
		}
	}
	// Every boundary edge survives the split whole.
	if len(res.SplitTriangles) > 0 {
		for i, b := range res.BoundaryEdges {
			require.GreaterOrEqual(t, b.SplitTriangle, 0, "boundary edge %d missing from split triangles", i)
			assert.Equal(t, [3]int{b.V0, b.V1, b.SplitOpposite}, rotateTo(res.SplitTriangles[b.SplitTriangle].V, b.V0))
		}
	}
}

// rotateTo rotates the vertices of a triangle so that v comes first.
func rotateTo(tri [3]int, v int) [3]int {
	for k := 0; k < 3; k++ {
		if tri[k] == v {
			return [3]int{tri[k], tri[(k+1)%3], tri[(k+2)%3]}
		}
	}
	return tri
}

func assertContourClosure(t *testing.T, res *Result) {
	seen := make([]bool, len(res.BoundaryEdges))
	for ci, c := range res.Contours {
		edges := res.ContourEdges(c)
		require.NotEmpty(t, edges, "contour %d is empty", ci)
		for i, e := range edges {
			next := edges[(i+1)%len(edges)]
			assert.Equal(t, e.V1, next.V0, "contour %d breaks after edge %d", ci, i)
			assert.Equal(t, ci, e.Contour)
			assert.Equal(t, i, e.Position)
			assert.Equal(t, c.Component, res.Triangles[e.Triangle].Component)
			seen[c.Edges.Begin+i] = true
		}
	}
	for i, s := range seen {
		assert.True(t, s, "boundary edge %d is in no contour", i)
	}
}

func assertUnbounded(t *testing.T, res *Result) {
	if res.Failed(0) {
		return
	}
	unbounded := 0
	for ci, c := range res.Components {
		usesFrame := false
		for _, tri := range res.Triangles[c.Triangles.Begin:c.Triangles.End] {
			for _, id := range tri.V {
				if res.Points[id].Kind == UnboundedPoint {
					usesFrame = true
				}
			}
		}
		assert.Equal(t, c.Unbounded, usesFrame, "component %d", ci)
		if c.Unbounded {
			unbounded++
			assert.Equal(t, 0, c.Winding)
		}
	}
	assert.Equal(t, 1, unbounded)
}

func assertOrientation(t *testing.T, res *Result) {
	for i, tri := range res.Triangles {
		assert.GreaterOrEqual(t, triangleArea(res.Points, tri.V), -Epsilon, "triangle %d", i)
	}
	for i, tri := range res.SplitTriangles {
		assert.GreaterOrEqual(t, triangleArea(res.Points, tri.V), -Epsilon, "split triangle %d", i)
	}
	if len(res.SplitTriangles) == 0 {
		return
	}
	for ci, c := range res.Components {
		want := rangeArea(res.Points, res.Triangles, c.Triangles)
		got := rangeArea(res.Points, res.SplitTriangles, c.SplitTriangles)
		assert.InDelta(t, want, got, Epsilon*math.Max(1, want), "component %d", ci)
	}
}

// Ranges of components tile the arrays in order, and filled components
// agree with their components.
func assertLayout(t *testing.T, res *Result) {
	var tri, split, edges, contours int
	for ci, c := range res.Components {
		assert.Equal(t, tri, c.Triangles.Begin, "component %d", ci)
		assert.Equal(t, split, c.SplitTriangles.Begin, "component %d", ci)
		assert.Equal(t, edges, c.BoundaryEdges.Begin, "component %d", ci)
		assert.Equal(t, contours, c.Contours.Begin, "component %d", ci)
		tri, split = c.Triangles.End, c.SplitTriangles.End
		edges, contours = c.BoundaryEdges.End, c.Contours.End
		for _, tr := range res.Triangles[c.Triangles.Begin:c.Triangles.End] {
			assert.Equal(t, ci, tr.Component)
			assert.Equal(t, c.Winding, tr.Winding)
		}
		for _, p := range res.Points[c.SplitPoints.Begin:c.SplitPoints.End] {
			assert.Equal(t, SplitPoint, p.Kind)
		}
	}
	assert.Equal(t, len(res.Triangles), tri)
	assert.Equal(t, len(res.BoundaryEdges), edges)

	for i := 1; i < len(res.Filled); i++ {
		prev, fc := res.Filled[i-1], res.Filled[i]
		assert.LessOrEqual(t, prev.Winding, fc.Winding)
		assert.Equal(t, prev.Triangles.End, fc.Triangles.Begin)
		assert.Equal(t, prev.Components.End, fc.Components.Begin)
	}
	for _, fc := range res.Filled {
		for ci := fc.Components.Begin; ci < fc.Components.End; ci++ {
			assert.Equal(t, fc.Winding, res.Components[ci].Winding)
			assert.Equal(t, fc.Unbounded, res.Components[ci].Unbounded)
		}
	}
}

// assertSampledWindings checks a grid of points over the shape against the
// winding computed directly from the outlines.
func assertSampledWindings(t *testing.T, outlines OutlineSet, res *Result) {
	if res.Failed(0) || res.Failed(1) {
		return
	}
	min, max, _ := outlines.Bounds()
	const n = 23
	found := 0
	for i := 0; i <= n; i++ {
		for j := 0; j <= n; j++ {
			x := min[0] + (max[0]-min[0])*(float64(i)+0.37)/n
			y := min[1] + (max[1]-min[1])*(float64(j)+0.61)/n
			tri, ok := containingTriangle(res, x, y)
			if !ok {
				continue
			}
			found++
			assert.Equal(t, outlines.WindingAt(x, y), tri.Winding, "winding at (%g, %g)", x, y)
		}
	}
	assert.Greater(t, found, 0)
}

func containingTriangle(res *Result, x, y float64) (Triangle, bool) {
	const margin = 1e-7
	for _, tri := range res.Triangles {
		a, b, c := res.Points[tri.V[0]], res.Points[tri.V[1]], res.Points[tri.V[2]]
		area := triangleArea(res.Points, tri.V)
		if area <= 0 {
			continue
		}
		// Barycentric coordinates, all positive strictly inside.
		wa := ((b.X-x)*(c.Y-y) - (c.X-x)*(b.Y-y)) / (2 * area)
		wb := ((c.X-x)*(a.Y-y) - (a.X-x)*(c.Y-y)) / (2 * area)
		wc := 1 - wa - wb
		if wa > margin && wb > margin && wc > margin {
			return tri, true
		}
	}
	return Triangle{}, false
}
