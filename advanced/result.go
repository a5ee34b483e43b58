package advanced

// Range is a half-open range [Begin, End) of indices into one of the arrays
// of a Result.
type Range struct {
	Begin, End int
}

func (r Range) Len() int {
	return r.End - r.Begin
}

func (r Range) Contains(i int) bool {
	return i >= r.Begin && i < r.End
}

type Triangle struct {
	V       [3]int
	Winding int
	// Index into Result.Components.
	Component int
}

// HalfEdge is the directed edge V0->V1 of one triangle.
type HalfEdge struct {
	V0, V1   int
	Opposite int
	Triangle int
	Winding  int
	// The opposite vertex and triangle of this half-edge in the split
	// triangulation; -1 if the split pass bisected it or did not run.
	SplitOpposite int
	SplitTriangle int
	// Index into Result.BoundaryEdges, or -1 for an interior half-edge.
	Boundary int
}

type BoundaryEdge struct {
	V0, V1        int
	Opposite      int
	Triangle      int
	SplitOpposite int
	SplitTriangle int
	HalfEdge      int
	// The boundary edge of another winding level running the other way
	// along the same segment, or -1.
	Neighbor int
	Contour  int
	Position int
}

// Contour is a closed chain of boundary edges: each edge ends where the next
// begins, and the last ends where the first begins.
type Contour struct {
	Edges     Range
	Winding   int
	Component int
}

// Component is one connected set of triangles of a winding level.
type Component struct {
	Winding   int
	Unbounded bool

	Triangles      Range
	SplitTriangles Range
	BoundaryEdges  Range
	Contours       Range
	SplitPoints    Range
}

// FilledComponent gathers the components of one winding level. Winding 0 is
// reported as two of them: the bounded holes, and the unbounded outside.
type FilledComponent struct {
	Winding   int
	Unbounded bool
	// The level could not be triangulated and is empty.
	Failed bool

	Triangles      Range
	SplitTriangles Range
	BoundaryEdges  Range
	Contours       Range
	SplitPoints    Range
	Components     Range
}

func (fc *FilledComponent) Empty() bool {
	return fc.Triangles.Len() == 0
}

type Stats struct {
	// Triangles produced by each sweep.
	NonZeroTriangles int
	ZeroTriangles    int
	// Combine requests and distinct induced points from the nonzero pass.
	Combines int
	Induced  int
	// Zero pass combine requests matched by position instead of by source,
	// and those that matched nothing.
	Reconciled      int
	ZeroPassInduced int
	SplitPoints     int
}

// Result owns every point, triangle and edge of one triangulated shape.
// Triangles, split triangles, boundary edges and contours are grouped by
// winding level in ascending order, then by component. Winding 0 keeps its
// unbounded component last. Nothing in a Result changes after Triangulate
// returns it.
type Result struct {
	Points         []Point
	Triangles      []Triangle
	SplitTriangles []Triangle
	// Three per triangle, HalfEdges[3*t+k] running from vertex k to vertex
	// k+1 of triangle t.
	HalfEdges     []HalfEdge
	BoundaryEdges []BoundaryEdge
	Contours      []Contour
	Components    []Component
	// One per nonzero winding level observed, plus the bounded and
	// unbounded parts of winding 0, in ascending winding order.
	Filled []FilledComponent
	Stats  Stats

	nonZeroFailed, zeroFailed bool
}

func (r *Result) Levels() []FilledComponent {
	return r.Filled
}

// Component returns the filled component of a nonzero winding level, or the
// bounded part of winding 0.
func (r *Result) Component(winding int) (*FilledComponent, bool) {
	for i := range r.Filled {
		if fc := &r.Filled[i]; fc.Winding == winding && !fc.Unbounded {
			return fc, true
		}
	}
	return nil, false
}

// Bounded returns the winding 0 regions enclosed by the shape.
func (r *Result) Bounded() *FilledComponent {
	fc, _ := r.Component(0)
	return fc
}

// Unbounded returns the winding 0 region outside the shape, up to the frame.
func (r *Result) Unbounded() *FilledComponent {
	for i := range r.Filled {
		if fc := &r.Filled[i]; fc.Unbounded {
			return fc
		}
	}
	return nil
}

// Failed reports whether the given winding level could not be triangulated.
// Every nonzero level fails together.
func (r *Result) Failed(winding int) bool {
	if winding == 0 {
		return r.zeroFailed
	}
	return r.nonZeroFailed
}

// TriangleIndices returns the triangles of fc as an index buffer of stride 3
// into Points.
func (r *Result) TriangleIndices(fc *FilledComponent) []int {
	return flatten(r.Triangles[fc.Triangles.Begin:fc.Triangles.End])
}

func (r *Result) SplitTriangleIndices(fc *FilledComponent) []int {
	return flatten(r.SplitTriangles[fc.SplitTriangles.Begin:fc.SplitTriangles.End])
}

func flatten(tris []Triangle) []int {
	indices := make([]int, 0, 3*len(tris))
	for _, tri := range tris {
		indices = append(indices, tri.V[:]...)
	}
	return indices
}

// PointsOf returns the points with the given ids.
func (r *Result) PointsOf(ids ...int) []Point {
	points := make([]Point, len(ids))
	for i, id := range ids {
		points[i] = r.Points[id]
	}
	return points
}

// SplitPointsOf returns the points created by the split pass for fc.
func (r *Result) SplitPointsOf(fc *FilledComponent) []Point {
	return r.Points[fc.SplitPoints.Begin:fc.SplitPoints.End]
}

// ContourEdges returns the edges of a contour in order.
func (r *Result) ContourEdges(c Contour) []BoundaryEdge {
	return r.BoundaryEdges[c.Edges.Begin:c.Edges.End]
}

// ContourPoints returns the ids of the points around a contour.
func (r *Result) ContourPoints(c Contour) []int {
	ids := make([]int, 0, c.Edges.Len())
	for _, e := range r.ContourEdges(c) {
		ids = append(ids, e.V0)
	}
	return ids
}
