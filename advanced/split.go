package advanced

// split writes the split triangulation of a component. Interior edges
// between two boundary vertices are bisected, and triangles whose three
// vertices are on the boundary are fanned around their centroid, so that no
// split triangle or interior edge spans only boundary vertices.
func (t *triangulator) split(ci int) {
	res := t.res
	comp := &res.Components[ci]
	var stack [][3]int
	for i := comp.Triangles.Begin; i < comp.Triangles.End; i++ {
		stack = append(stack[:0], res.Triangles[i].V)
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if k := t.bisectable(v); k >= 0 {
				a, b, c := v[k], v[(k+1)%3], v[(k+2)%3]
				// Shared with the triangle on the other side of the edge.
				m := t.arena.midpoint(a, b)
				stack = append(stack, [3]int{m, b, c}, [3]int{a, m, c})
				continue
			}
			if t.isBoundaryVertex(v[0]) && t.isBoundaryVertex(v[1]) && t.isBoundaryVertex(v[2]) {
				p := t.arena.centroid(v[0], v[1], v[2])
				t.emitSplit(ci, [3]int{v[0], v[1], p})
				t.emitSplit(ci, [3]int{v[1], v[2], p})
				t.emitSplit(ci, [3]int{v[2], v[0], p})
				continue
			}
			t.emitSplit(ci, v)
		}
	}
}

// bisectable returns the first edge of the triangle that is interior and
// joins two boundary vertices, or -1.
func (t *triangulator) bisectable(v [3]int) int {
	for k := 0; k < 3; k++ {
		a, b := halfEdgeEnds(v, k)
		if !t.isBoundaryVertex(a) || !t.isBoundaryVertex(b) {
			continue
		}
		uses, found := t.table[makeEdgeKey(a, b)]
		if found && uses[1] >= 0 && !t.boundaryHalf[uses[0]] {
			return k
		}
	}
	return -1
}

// emitSplit appends a split triangle, recording its position on the
// half-edges it keeps whole.
func (t *triangulator) emitSplit(ci int, v [3]int) {
	res := t.res
	s := len(res.SplitTriangles)
	res.SplitTriangles = append(res.SplitTriangles, Triangle{
		V:         v,
		Winding:   res.Components[ci].Winding,
		Component: ci,
	})
	for k := 0; k < 3; k++ {
		a, b := halfEdgeEnds(v, k)
		if h, ok := t.directed[[2]int{a, b}]; ok {
			he := &res.HalfEdges[h]
			he.SplitTriangle = s
			he.SplitOpposite = v[(k+2)%3]
		}
	}
}
