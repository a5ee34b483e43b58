package advanced

// extractContours walks the boundary half-edges of a component into closed
// contours. Where several contours touch at a vertex, the walk takes the
// first unused edge leaving it; when it comes back to a vertex already on
// the current path, the loop from there is closed off as a contour and the
// walk resumes from that vertex.
func (t *triangulator) extractContours(ci int) {
	res := t.res
	comp := &res.Components[ci]

	var edges []int
	outgoing := map[int][]int{}
	for i := comp.Triangles.Begin; i < comp.Triangles.End; i++ {
		for k := 0; k < 3; k++ {
			if h := 3*i + k; t.boundaryHalf[h] {
				edges = append(edges, h)
				v0 := res.HalfEdges[h].V0
				outgoing[v0] = append(outgoing[v0], h)
			}
		}
	}

	consumed := make(map[int]bool, len(edges))
	nextFrom := func(v int) int {
		hs := outgoing[v]
		for len(hs) > 0 && consumed[hs[0]] {
			hs = hs[1:]
		}
		outgoing[v] = hs
		if len(hs) == 0 {
			return -1
		}
		return hs[0]
	}

	for _, start := range edges {
		if consumed[start] {
			continue
		}
		var path []int
		// Position in path of the edge leaving each vertex on it.
		at := map[int]int{}
		h := start
		for {
			consumed[h] = true
			he := &res.HalfEdges[h]
			at[he.V0] = len(path)
			path = append(path, h)

			if p, ok := at[he.V1]; ok {
				t.addContour(ci, path[p:])
				for _, e := range path[p:] {
					delete(at, res.HalfEdges[e].V0)
				}
				path = path[:p]
				if len(path) == 0 {
					break
				}
			}
			if h = nextFrom(he.V1); h < 0 {
				fatal(ErrTopology, "boundary of component %d is open at point %d", ci, he.V1)
			}
		}
	}
}

func (t *triangulator) addContour(ci int, path []int) {
	res := t.res
	id := len(res.Contours)
	begin := len(res.BoundaryEdges)
	for pos, h := range path {
		he := &res.HalfEdges[h]
		he.Boundary = len(res.BoundaryEdges)
		res.BoundaryEdges = append(res.BoundaryEdges, BoundaryEdge{
			V0: he.V0, V1: he.V1,
			Opposite:      he.Opposite,
			Triangle:      he.Triangle,
			SplitOpposite: he.SplitOpposite,
			SplitTriangle: he.SplitTriangle,
			HalfEdge:      h,
			Neighbor:      -1,
			Contour:       id,
			Position:      pos,
		})
	}
	res.Contours = append(res.Contours, Contour{
		Edges:     Range{begin, len(res.BoundaryEdges)},
		Winding:   res.Components[ci].Winding,
		Component: ci,
	})
}
