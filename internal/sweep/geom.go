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

import (
	"math"

	"github.com/osuushi/multiwind/internal/mesh"
)

func vertEq(u, v *mesh.Vertex) bool {
	return u.S == v.S && u.T == v.T
}

// vertLeq is the sweep order: by s, then by t.
func vertLeq(u, v *mesh.Vertex) bool {
	return u.S < v.S || (u.S == v.S && u.T <= v.T)
}

func transLeq(u, v *mesh.Vertex) bool {
	return u.T < v.T || (u.T == v.T && u.S <= v.S)
}

func edgeGoesLeft(e *mesh.HalfEdge) bool {
	return vertLeq(e.Dst(), e.Org)
}

func edgeGoesRight(e *mesh.HalfEdge) bool {
	return vertLeq(e.Org, e.Dst())
}

func vertL1dist(u, v *mesh.Vertex) float64 {
	return math.Abs(u.S-v.S) + math.Abs(u.T-v.T)
}

// edgeEval evaluates the t-coord of the edge uw at the s-coord of v, given
// vertLeq(u, v) && vertLeq(v, w), and returns v.t - (uw)(v.s): the signed
// distance from uw to v. If uw is vertical the result is zero.
//
// The result r is guaranteed to satisfy min(u.t, w.t) <= r <= max(u.t, w.t)
// when v.t is set to zero, even when v is very close to u or w.
func edgeEval(u, v, w *mesh.Vertex) float64 {
	gapL := v.S - u.S
	gapR := w.S - v.S

	if gapL+gapR > 0 {
		if gapL < gapR {
			return (v.T - u.T) + (u.T-w.T)*(gapL/(gapL+gapR))
		}
		return (v.T - w.T) + (w.T-u.T)*(gapR/(gapL+gapR))
	}
	return 0
}

// edgeSign has the sign of edgeEval(u, v, w) and is cheaper to compute.
func edgeSign(u, v, w *mesh.Vertex) float64 {
	gapL := v.S - u.S
	gapR := w.S - v.S

	if gapL+gapR > 0 {
		return (v.T-w.T)*gapL + (v.T-u.T)*gapR
	}
	return 0
}

// transEval and transSign are edgeEval and edgeSign with s and t swapped.
func transEval(u, v, w *mesh.Vertex) float64 {
	gapL := v.T - u.T
	gapR := w.T - v.T

	if gapL+gapR > 0 {
		if gapL < gapR {
			return (v.S - u.S) + (u.S-w.S)*(gapL/(gapL+gapR))
		}
		return (v.S - w.S) + (w.S-u.S)*(gapR/(gapL+gapR))
	}
	return 0
}

func transSign(u, v, w *mesh.Vertex) float64 {
	gapL := v.T - u.T
	gapR := w.T - v.T

	if gapL+gapR > 0 {
		return (v.S-w.S)*gapL + (v.S-u.S)*gapR
	}
	return 0
}

// interpolate returns (b*x+a*y)/(a+b), or (x+y)/2 if a == b == 0. Slightly
// negative weights are treated as zero. The result always lies between x
// and y.
func interpolate(a, x, b, y float64) float64 {
	if a < 0 {
		a = 0
	}
	if b < 0 {
		b = 0
	}
	if a <= b {
		if b == 0 {
			return (x + y) / 2
		}
		return x + (y-x)*(a/(a+b))
	}
	return y + (x-y)*(b/(a+b))
}

// edgeIntersect computes the intersection of the edges (o1,d1) and (o2,d2)
// into v. The result lies in the intersection of the bounding rectangles of
// the two edges.
//
// Each coordinate is interpolated between the two middle vertices of the
// corresponding ordering, which is slow but numerically stable.
func edgeIntersect(o1, d1, o2, d2 *mesh.Vertex, v *mesh.Vertex) {
	if !vertLeq(o1, d1) {
		o1, d1 = d1, o1
	}
	if !vertLeq(o2, d2) {
		o2, d2 = d2, o2
	}
	if !vertLeq(o1, o2) {
		o1, o2 = o2, o1
		d1, d2 = d2, d1
	}

	if !vertLeq(o2, d1) {
		// No real intersection, do our best.
		v.S = (o2.S + d1.S) / 2
	} else if vertLeq(d1, d2) {
		z1 := edgeEval(o1, o2, d1)
		z2 := edgeEval(o2, d1, d2)
		if z1+z2 < 0 {
			z1, z2 = -z1, -z2
		}
		v.S = interpolate(z1, o2.S, z2, d1.S)
	} else {
		z1 := edgeSign(o1, o2, d1)
		z2 := -edgeSign(o1, d2, d1)
		if z1+z2 < 0 {
			z1, z2 = -z1, -z2
		}
		v.S = interpolate(z1, o2.S, z2, d2.S)
	}

	if !transLeq(o1, d1) {
		o1, d1 = d1, o1
	}
	if !transLeq(o2, d2) {
		o2, d2 = d2, o2
	}
	if !transLeq(o1, o2) {
		o1, o2 = o2, o1
		d1, d2 = d2, d1
	}

	if !transLeq(o2, d1) {
		v.T = (o2.T + d1.T) / 2
	} else if transLeq(d1, d2) {
		z1 := transEval(o1, o2, d1)
		z2 := transEval(o2, d1, d2)
		if z1+z2 < 0 {
			z1, z2 = -z1, -z2
		}
		v.T = interpolate(z1, o2.T, z2, d1.T)
	} else {
		z1 := transSign(o1, o2, d1)
		z2 := -transSign(o1, d2, d1)
		if z1+z2 < 0 {
			z1, z2 = -z1, -z2
		}
		v.T = interpolate(z1, o2.T, z2, d2.T)
	}
}
