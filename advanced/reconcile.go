package advanced

import (
	"math"

	"github.com/peterstace/simplefeatures/rtree"
)

// The zero pass runs the sweep again with an extra contour, and nothing
// guarantees it finds intersections at exactly the same places. A combine
// request from the zero pass that does not match a blend from the first
// pass is matched by position against the points the first pass induced.
type reconciler struct {
	arena *arena
	tree  *rtree.RTree
	// Points referenced by a nonzero triangle. A point merged away in the
	// first pass can sit at the same place as its survivor.
	used map[int]bool
}

func newReconciler(a *arena, induced []int, nonZero []rawTriangle) *reconciler {
	r := &reconciler{arena: a, used: map[int]bool{}}
	for _, tri := range nonZero {
		for _, id := range tri.v {
			r.used[id] = true
		}
	}
	// Every point the first pass induced is known up front, so the tree is
	// bulk loaded once.
	items := make([]rtree.BulkItem, len(induced))
	for i, id := range induced {
		p := &a.points[id]
		items[i] = rtree.BulkItem{
			Box:      rtree.Box{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y},
			RecordID: id,
		}
	}
	r.tree = rtree.BulkLoad(items)
	return r
}

// match returns the induced point within tolerance of (x, y), preferring
// points in use, then the closest, then the latest. -1 if there is none.
func (r *reconciler) match(x, y float64) int {
	tol := r.arena.tolerance
	box := rtree.Box{MinX: x - tol, MinY: y - tol, MaxX: x + tol, MaxY: y + tol}
	best, bestUsed, bestDist := -1, false, math.Inf(1)
	_ = r.tree.RangeSearch(box, func(id int) error {
		p := &r.arena.points[id]
		dist := math.Hypot(p.X-x, p.Y-y)
		used := r.used[id]
		switch {
		case best < 0,
			used && !bestUsed,
			used == bestUsed && dist < bestDist,
			used == bestUsed && dist == bestDist && id > best:
			best, bestUsed, bestDist = id, used, dist
		}
		return nil
	})
	return best
}
