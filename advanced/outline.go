package advanced

import "math"

// Vertex is a vertex of an input outline. Tag is opaque to the triangulator
// and is carried on the sample point created for the vertex.
type Vertex struct {
	X, Y float64
	Tag  int
}

// Outline is a closed loop of vertices; the last connects to the first.
// Counterclockwise outlines add +1 to the winding number of the area they
// enclose, clockwise ones -1.
type Outline []Vertex

type OutlineSet []Outline

// Winding number of the point with respect to the outline.
func (o Outline) WindingAt(x, y float64) int {
	winding := 0
	for i, a := range o {
		b := o[(i+1)%len(o)]
		// Signed area of (a, b, p): positive when p is left of a->b.
		side := (b.X-a.X)*(y-a.Y) - (x-a.X)*(b.Y-a.Y)
		if a.Y <= y {
			if b.Y > y && side > 0 {
				winding++
			}
		} else if b.Y <= y && side < 0 {
			winding--
		}
	}
	return winding
}

func (s OutlineSet) WindingAt(x, y float64) int {
	winding := 0
	for _, o := range s {
		winding += o.WindingAt(x, y)
	}
	return winding
}

func (o Outline) Reverse() Outline {
	reversed := make(Outline, len(o))
	for i, v := range o {
		reversed[len(o)-1-i] = v
	}
	return reversed
}

// SignedArea is positive for counterclockwise outlines.
func (o Outline) SignedArea() float64 {
	area := 0.0
	for i, a := range o {
		b := o[(i+1)%len(o)]
		area += a.X*b.Y - b.X*a.Y
	}
	return area / 2
}

// Bounds returns the bounding box of every vertex in the set. ok is false
// for a set without vertices.
func (s OutlineSet) Bounds() (min, max [2]float64, ok bool) {
	min = [2]float64{math.Inf(1), math.Inf(1)}
	max = [2]float64{math.Inf(-1), math.Inf(-1)}
	for _, o := range s {
		for _, v := range o {
			min[0], max[0] = math.Min(min[0], v.X), math.Max(max[0], v.X)
			min[1], max[1] = math.Min(min[1], v.Y), math.Max(max[1], v.Y)
			ok = true
		}
	}
	return
}

// Panics unless at least one outline has three vertices and every
// coordinate is finite.
func (s OutlineSet) validate() {
	usable := false
	for i, o := range s {
		if len(o) >= 3 {
			usable = true
		}
		for j, v := range o {
			if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) {
				fatal(ErrNonFinite, "outline %d vertex %d", i, j)
			}
		}
	}
	if !usable {
		fatal(ErrEmptyInput, "%d outlines", len(s))
	}
}
