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

// Package sweep tessellates closed 2D contours, which may overlap and
// self-intersect, into triangles. Contours are inserted in a half-edge mesh
// and a line is swept across their vertices in (x, y) order, splitting
// edges at every intersection and tracking the winding number of every
// region. Regions selected by the fill predicate are decomposed into
// monotone pieces and then triangulated.
//
// Results are reported through a Sink, one polygon at a time.
package sweep

import (
	"math"

	"github.com/pkg/errors"

	"github.com/osuushi/multiwind/internal/logging"
	"github.com/osuushi/multiwind/internal/mesh"
)

// MaxCoord bounds the magnitude of input coordinates.
const MaxCoord = 1e150

// UndefinedData is the data of an unused combine source.
const UndefinedData = mesh.Undefined

// DefaultMaxCacheVertices is the largest single contour tried on the
// convex fast path.
const DefaultMaxCacheVertices = 100

type PrimitiveKind int

const (
	// Triangles groups vertices three by three, each triangle CCW.
	Triangles PrimitiveKind = iota
	// LineLoop is a closed CCW boundary contour.
	LineLoop
)

func (k PrimitiveKind) String() string {
	switch k {
	case Triangles:
		return "triangles"
	case LineLoop:
		return "line loop"
	}
	return "unknown"
}

// Vertex is an input vertex. Data is opaque to the tessellator and is
// echoed back in the output; it must not be UndefinedData.
type Vertex struct {
	X, Y float64
	Data int
}

// Contour is a closed loop of vertices; the last connects to the first.
type Contour []Vertex

// Polygon is a set of contours tessellated together.
type Polygon []Contour

// Sink receives the output of Tessellate.
type Sink interface {
	// BeginPrimitive starts a primitive whose regions all have the given
	// winding number.
	BeginPrimitive(kind PrimitiveKind, winding int)
	EmitVertex(data int)
	EndPrimitive()
	// Combine returns the data of a new vertex at (x, y), blended from up
	// to four sources. Unused sources have data UndefinedData and weight
	// zero; the weights sum to 1.
	Combine(x, y float64, data [4]int, weights [4]float64) int
	// Error reports that a polygon failed. Nothing is emitted for it.
	Error(err error)
}

type Options struct {
	// ShouldFill selects the regions to output by winding number. Nil
	// fills every nonzero winding.
	ShouldFill func(winding int) bool
	// BoundaryOnly outputs the boundary of the filled regions as line
	// loops instead of triangles.
	BoundaryOnly bool
	// MaxCacheVertices is the largest single contour tried on the convex
	// fast path; 0 disables it.
	MaxCacheVertices int
}

// NonZero fills every region with a nonzero winding number.
func NonZero(winding int) bool {
	return winding != 0
}

// Tessellate tessellates each polygon independently. A polygon that fails
// is reported through sink.Error and produces no primitives; the others are
// unaffected. Returns whether every polygon succeeded.
func Tessellate(polygons []Polygon, opts Options, sink Sink) bool {
	if opts.ShouldFill == nil {
		opts.ShouldFill = NonZero
	}
	ok := true
	for i, poly := range polygons {
		if err := tessellatePolygon(poly, &opts, sink); err != nil {
			logging.Logger().Debug("sweep: polygon failed", "polygon", i, "error", err)
			sink.Error(err)
			ok = false
		}
	}
	return ok
}

func tessellatePolygon(poly Polygon, opts *Options, sink Sink) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recoverTessError(r)
		}
	}()

	for _, c := range poly {
		for _, v := range c {
			if !(math.Abs(v.X) <= MaxCoord && math.Abs(v.Y) <= MaxCoord) {
				return errors.Wrapf(ErrCoordTooLarge, "vertex %d at (%g, %g)", v.Data, v.X, v.Y)
			}
		}
	}

	var out output
	if len(poly) == 1 && opts.MaxCacheVertices > 0 && len(poly[0]) <= opts.MaxCacheVertices {
		if renderCache(poly[0], opts, &out) {
			out.replay(sink)
			return nil
		}
	}

	t := &tessellator{mesh: mesh.New(), opts: opts, sink: sink}
	bmin, bmax, nonEmpty := t.addContours(poly)
	if !nonEmpty {
		return nil
	}
	t.computeInterior(bmin, bmax)

	if opts.BoundaryOnly {
		t.keepBoundary()
	} else {
		t.tessellateInterior()
	}
	if err := t.mesh.Check(); err != nil {
		return errors.Wrap(ErrTopology, err.Error())
	}

	if opts.BoundaryOnly {
		t.collectContours(&out)
	} else {
		t.collectTriangles(&out)
	}
	out.replay(sink)
	return nil
}

// addContours builds the mesh, one closed loop per contour. Each half-edge
// along the contour direction has winding +1, so a CCW contour has +1
// inside.
func (t *tessellator) addContours(poly Polygon) (bmin, bmax [2]float64, nonEmpty bool) {
	bmin = [2]float64{math.Inf(1), math.Inf(1)}
	bmax = [2]float64{math.Inf(-1), math.Inf(-1)}

	for _, c := range poly {
		var e *mesh.HalfEdge
		for _, v := range c {
			if e == nil {
				e = t.mesh.MakeEdge()
				t.mesh.Splice(e, e.Sym)
			} else {
				t.mesh.SplitEdge(e)
				e = e.Lnext
			}
			e.Org.S = v.X
			e.Org.T = v.Y
			e.Org.Data = v.Data
			e.Winding = 1
			e.Sym.Winding = -1

			bmin[0] = math.Min(bmin[0], v.X)
			bmin[1] = math.Min(bmin[1], v.Y)
			bmax[0] = math.Max(bmax[0], v.X)
			bmax[1] = math.Max(bmax[1], v.Y)
			nonEmpty = true
		}
	}
	return
}

func (t *tessellator) collectTriangles(out *output) {
	fHead := t.mesh.FaceHead()
	for f := fHead.Next; f != fHead; f = f.Next {
		if !f.Inside {
			continue
		}
		e := f.AnEdge
		check(e.Lnext.Lnext.Lnext == e, "filled face is not a triangle")
		out.begin(Triangles, f.Winding)
		out.emit(e.Org.Data)
		out.emit(e.Lnext.Org.Data)
		out.emit(e.Lnext.Lnext.Org.Data)
	}
}

func (t *tessellator) collectContours(out *output) {
	fHead := t.mesh.FaceHead()
	for f := fHead.Next; f != fHead; f = f.Next {
		if !f.Inside {
			continue
		}
		out.begin(LineLoop, f.Winding)
		start := f.AnEdge
		e := start
		for {
			out.emit(e.Org.Data)
			e = e.Lnext
			if e == start {
				break
			}
		}
	}
}

type primitive struct {
	kind    PrimitiveKind
	winding int
	data    []int
}

// output buffers the primitives of one polygon so that a failure never
// leaves a partial primitive in the sink. Consecutive triangles with the
// same winding share a primitive.
type output struct {
	prims []primitive
}

func (o *output) begin(kind PrimitiveKind, winding int) {
	if n := len(o.prims); n > 0 && kind == Triangles {
		last := &o.prims[n-1]
		if last.kind == Triangles && last.winding == winding {
			return
		}
	}
	o.prims = append(o.prims, primitive{kind: kind, winding: winding})
}

func (o *output) emit(data int) {
	if data == mesh.Undefined {
		fatalf(ErrMissingData, "primitive %d", len(o.prims)-1)
	}
	last := &o.prims[len(o.prims)-1]
	last.data = append(last.data, data)
}

func (o *output) replay(sink Sink) {
	for _, p := range o.prims {
		sink.BeginPrimitive(p.kind, p.winding)
		for _, d := range p.data {
			sink.EmitVertex(d)
		}
		sink.EndPrimitive()
	}
}
