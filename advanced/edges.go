package advanced

type edgeKey struct {
	lo, hi int
}

func makeEdgeKey(u, v int) edgeKey {
	if u > v {
		u, v = v, u
	}
	return edgeKey{u, v}
}

// edgeTable maps each undirected edge to the half-edges using it. Half-edge
// 3*t+k runs from vertex k to vertex k+1 of triangle t; an unused slot is
// -1.
type edgeTable map[edgeKey][2]int

func halfEdgeEnds(tri [3]int, k int) (int, int) {
	return tri[k], tri[(k+1)%3]
}

// buildEdgeTable returns false if an edge is used by more than two
// half-edges, or twice in the same direction. Either means two triangles
// overlap.
func buildEdgeTable(tris [][3]int) (edgeTable, bool) {
	table := make(edgeTable, 3*len(tris)/2)
	for t, tri := range tris {
		for k := 0; k < 3; k++ {
			u, v := halfEdgeEnds(tri, k)
			key := makeEdgeKey(u, v)
			h := 3*t + k
			uses, found := table[key]
			if !found {
				table[key] = [2]int{h, -1}
				continue
			}
			if uses[1] >= 0 {
				return nil, false
			}
			if other, _ := halfEdgeEnds(tris[uses[0]/3], uses[0]%3); other == u {
				return nil, false
			}
			uses[1] = h
			table[key] = uses
		}
	}
	return table, true
}

// other returns the half-edge sharing h's edge, or -1.
func (table edgeTable) other(key edgeKey, h int) int {
	uses := table[key]
	if uses[0] == h {
		return uses[1]
	}
	return uses[0]
}

func vertices(tris []rawTriangle) [][3]int {
	out := make([][3]int, len(tris))
	for i, tri := range tris {
		out[i] = tri.v
	}
	return out
}
