package advanced

import (
	"math"
	"sort"
)

type PointKind uint8

const (
	// SamplePoint is a vertex of an input outline.
	SamplePoint PointKind = iota
	// InducedPoint is a blend of up to four points created by the sweep,
	// usually where two edges cross.
	InducedPoint
	// UnboundedPoint is a corner of the frame enclosing the shape.
	UnboundedPoint
	// SplitPoint is created by the split pass: the midpoint of a bisected
	// edge or the centroid of a triangle.
	SplitPoint
)

func (k PointKind) String() string {
	switch k {
	case SamplePoint:
		return "sample"
	case InducedPoint:
		return "induced"
	case UnboundedPoint:
		return "unbounded"
	case SplitPoint:
		return "split"
	}
	return "unknown"
}

type Point struct {
	X, Y float64
	Kind PointKind

	// For sample points, the outline and vertex index the point came from,
	// and the tag of that vertex. -1 otherwise.
	Outline, Index int
	Tag            int

	// For induced and split points, the blended points. Unused slots hold
	// UndefinedData and weight 0.
	Sources [4]int
	Weights [4]float64
}

// Blend reports the source points and weights of an induced or split point.
func (p *Point) Blend() (sources []int, weights []float64) {
	for i, s := range p.Sources {
		if s != UndefinedData {
			sources = append(sources, s)
			weights = append(weights, p.Weights[i])
		}
	}
	return
}

var noSources = [4]int{UndefinedData, UndefinedData, UndefinedData, UndefinedData}

// A blend is identified by its kind and sorted source set.
type blendKey struct {
	kind    PointKind
	sources [4]int
}

func makeBlendKey(kind PointKind, sources [4]int) blendKey {
	key := sources
	sort.Ints(key[:])
	// Undefined sources sort first; move them to the back so the key does
	// not depend on which slots were unused.
	n := 0
	for _, s := range key {
		if s != UndefinedData {
			key[n] = s
			n++
		}
	}
	for ; n < len(key); n++ {
		key[n] = UndefinedData
	}
	return blendKey{kind, key}
}

// Points are owned by a single arena per shape and never change after
// creation, so their index is a stable identity.
type arena struct {
	points    []Point
	blends    map[blendKey][]int
	tolerance float64
}

func newArena(tolerance float64) *arena {
	return &arena{
		blends:    map[blendKey][]int{},
		tolerance: tolerance,
	}
}

func (a *arena) add(p Point) int {
	a.points = append(a.points, p)
	return len(a.points) - 1
}

func (a *arena) addSample(x, y float64, outline, index, tag int) int {
	return a.add(Point{
		X: x, Y: y, Kind: SamplePoint,
		Outline: outline, Index: index, Tag: tag,
		Sources: noSources,
	})
}

func (a *arena) addUnbounded(x, y float64) int {
	return a.add(Point{
		X: x, Y: y, Kind: UnboundedPoint,
		Outline: -1, Index: -1, Tag: -1,
		Sources: noSources,
	})
}

// findBlend returns an existing point of the given kind blended from the
// same sources at the same position, or -1.
func (a *arena) findBlend(kind PointKind, x, y float64, sources [4]int) int {
	for _, id := range a.blends[makeBlendKey(kind, sources)] {
		if a.near(id, x, y) {
			return id
		}
	}
	return -1
}

func (a *arena) near(id int, x, y float64) bool {
	p := &a.points[id]
	return math.Abs(p.X-x) <= a.tolerance && math.Abs(p.Y-y) <= a.tolerance
}

// blend returns the point blended from sources at (x, y), creating it if no
// matching blend exists. The second result is false for an existing point.
func (a *arena) blend(kind PointKind, x, y float64, sources [4]int, weights [4]float64) (int, bool) {
	if id := a.findBlend(kind, x, y, sources); id >= 0 {
		return id, false
	}
	id := a.add(Point{
		X: x, Y: y, Kind: kind,
		Outline: -1, Index: -1, Tag: -1,
		Sources: sources, Weights: weights,
	})
	key := makeBlendKey(kind, sources)
	a.blends[key] = append(a.blends[key], id)
	return id, true
}

func (a *arena) midpoint(u, v int) int {
	p, q := &a.points[u], &a.points[v]
	id, _ := a.blend(SplitPoint, (p.X+q.X)/2, (p.Y+q.Y)/2,
		[4]int{u, v, UndefinedData, UndefinedData}, [4]float64{0.5, 0.5, 0, 0})
	return id
}

func (a *arena) centroid(u, v, w int) int {
	p, q, r := &a.points[u], &a.points[v], &a.points[w]
	const third = 1.0 / 3
	id, _ := a.blend(SplitPoint, (p.X+q.X+r.X)/3, (p.Y+q.Y+r.Y)/3,
		[4]int{u, v, w, UndefinedData}, [4]float64{third, third, third, 0})
	return id
}
