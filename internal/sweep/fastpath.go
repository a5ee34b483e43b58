// SGI FREE SOFTWARE LICENSE B (Version 2.0, Sept. 18, 2008)
// Copyright (C) [dates of first publication] Silicon Graphics, Inc.
// All Rights Reserved.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
// of the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice including the dates of first publication and either this
// permission notice or a reference to http://oss.sgi.com/projects/FreeB/ shall be
// included in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED,
// INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A
// PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL SILICON GRAPHICS, INC.
// BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT,
// TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE
// OR OTHER DEALINGS IN THE SOFTWARE.
//
// Except as contained in this notice, the name of Silicon Graphics, Inc. shall not
// be used in advertising or otherwise to promote the sale, use or other dealings in
// this Software without prior written authorization from Silicon Graphics, Inc.

package sweep

// convexOrientation returns +1 if the contour is a strictly convex CCW
// polygon, -1 if strictly convex CW, and 0 otherwise. Strict convexity
// requires every turn to be nonzero with the same sign, and the direction
// to sweep around only once: each coordinate of the edge vectors changes
// sign at most twice.
func convexOrientation(c Contour) int {
	n := len(c)
	if n < 3 {
		return 0
	}

	sign := 0
	for i := 0; i < n; i++ {
		a, b, d := c[i], c[(i+1)%n], c[(i+2)%n]
		cross := (b.X-a.X)*(d.Y-b.Y) - (b.Y-a.Y)*(d.X-b.X)
		s := 0
		if cross > 0 {
			s = 1
		} else if cross < 0 {
			s = -1
		}
		if s == 0 || (sign != 0 && s != sign) {
			return 0
		}
		sign = s
	}

	if signChanges(c, func(a, b Vertex) float64 { return b.X - a.X }) > 2 ||
		signChanges(c, func(a, b Vertex) float64 { return b.Y - a.Y }) > 2 {
		return 0
	}
	return sign
}

// signChanges counts the cyclic sign changes of delta over the edges of c,
// skipping zeros.
func signChanges(c Contour, delta func(a, b Vertex) float64) int {
	n := len(c)
	first, last, changes := 0, 0, 0
	for i := 0; i < n; i++ {
		d := delta(c[i], c[(i+1)%n])
		s := 0
		if d > 0 {
			s = 1
		} else if d < 0 {
			s = -1
		}
		if s == 0 {
			continue
		}
		if first == 0 {
			first = s
		} else if s != last {
			changes++
		}
		last = s
	}
	if first != 0 && last != first {
		changes++
	}
	return changes
}

// renderCache handles a single small strictly convex contour without
// building a mesh: its interior has winding +1 or -1 and is fanned from
// the first vertex. Returns false if the general algorithm is needed.
func renderCache(c Contour, opts *Options, out *output) bool {
	if len(c) < 3 {
		// Degenerate contour, no output.
		return true
	}
	sign := convexOrientation(c)
	if sign == 0 {
		return false
	}
	if !opts.ShouldFill(sign) {
		return true
	}

	// Vertices in CCW order.
	ccw := make([]int, len(c))
	for i := range c {
		if sign > 0 {
			ccw[i] = c[i].Data
		} else {
			ccw[i] = c[(len(c)-i)%len(c)].Data
		}
	}

	if opts.BoundaryOnly {
		out.begin(LineLoop, sign)
		for _, d := range ccw {
			out.emit(d)
		}
		return true
	}

	out.begin(Triangles, sign)
	for i := 1; i+1 < len(ccw); i++ {
		out.emit(ccw[0])
		out.emit(ccw[i])
		out.emit(ccw[i+1])
	}
	return true
}
