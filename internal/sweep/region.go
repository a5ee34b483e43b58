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

import "github.com/osuushi/multiwind/internal/mesh"

// activeRegion is the region between two edges of the dictionary. Each
// region is keyed by its upper edge eUp, which always points leftwards.
type activeRegion struct {
	id            int
	eUp           *mesh.HalfEdge
	node          *dictNode
	windingNumber int
	inside        bool // is this region inside the fill?
	sentinel      bool // is this one of the two bounding sentinels?
	dirty         bool // must the upper and lower edges be checked for intersection?

	// fixUpperEdge marks a temporary edge added by connectRightVertex. It
	// has no meaningful winding and is replaced as soon as a real edge is
	// found for its origin.
	fixUpperEdge bool
}

func regionAbove(r *activeRegion) *activeRegion {
	return r.node.next.key
}

func regionBelow(r *activeRegion) *activeRegion {
	return r.node.prev.key
}

func (t *tessellator) regionOf(e *mesh.HalfEdge) *activeRegion {
	if e.Region == 0 {
		return nil
	}
	return t.regions[e.Region]
}

func (t *tessellator) attachRegion(r *activeRegion, e *mesh.HalfEdge) {
	r.eUp = e
	e.Region = r.id
}

func addWinding(eDst, eSrc *mesh.HalfEdge) {
	eDst.Winding += eSrc.Winding
	eDst.Sym.Winding += eSrc.Sym.Winding
}

// edgeLeq orders two dictionary edges by their position along the current
// sweep line. Both edges must be crossed by the sweep line, or end at the
// event. Edges meeting at the event are ordered by slope.
func (t *tessellator) edgeLeq(e1, e2 *mesh.HalfEdge) bool {
	event := t.event

	if e1.Dst() == event {
		if e2.Dst() == event {
			if vertLeq(e1.Org, e2.Org) {
				return edgeSign(e2.Dst(), e1.Org, e2.Org) <= 0
			}
			return edgeSign(e1.Dst(), e2.Org, e1.Org) >= 0
		}
		return edgeSign(e2.Dst(), event, e2.Org) <= 0
	}
	if e2.Dst() == event {
		return edgeSign(e1.Dst(), event, e1.Org) >= 0
	}

	t1 := edgeEval(e1.Dst(), event, e1.Org)
	t2 := edgeEval(e2.Dst(), event, e2.Org)
	return t1 >= t2
}

func (t *tessellator) deleteRegion(r *activeRegion) {
	if r.fixUpperEdge {
		check(r.eUp.Winding == 0, "fixable edge carries winding")
	}
	r.eUp.Region = 0
	t.dict.delete(r.node)
}

// fixUpperEdge replaces the temporary upper edge of r by newEdge.
func (t *tessellator) fixUpperEdge(r *activeRegion, newEdge *mesh.HalfEdge) {
	check(r.fixUpperEdge, "region has no fixable edge")
	t.mesh.Delete(r.eUp)
	r.fixUpperEdge = false
	t.attachRegion(r, newEdge)
}

// topLeftRegion finds the region above the uppermost edge sharing r's
// origin, fixing a temporary edge above it if there is one.
func (t *tessellator) topLeftRegion(r *activeRegion) *activeRegion {
	org := r.eUp.Org
	for {
		r = regionAbove(r)
		if r.eUp.Org != org {
			break
		}
	}

	if r.fixUpperEdge {
		e := t.mesh.Connect(regionBelow(r).eUp.Sym, r.eUp.Lnext)
		t.fixUpperEdge(r, e)
		r = regionAbove(r)
	}
	return r
}

// topRightRegion finds the region above the uppermost edge sharing r's
// destination.
func topRightRegion(r *activeRegion) *activeRegion {
	dst := r.eUp.Dst()
	for {
		r = regionAbove(r)
		if r.eUp.Dst() != dst {
			break
		}
	}
	return r
}

// addRegionBelow adds a region below regAbove whose upper edge is eNewUp.
// Winding and inside flags are left for the caller.
func (t *tessellator) addRegionBelow(regAbove *activeRegion, eNewUp *mesh.HalfEdge) *activeRegion {
	r := &activeRegion{id: len(t.regions)}
	t.regions = append(t.regions, r)
	t.attachRegion(r, eNewUp)
	r.node = t.dict.insertBefore(regAbove.node, r)
	return r
}

func (t *tessellator) isWindingInside(n int) bool {
	return t.opts.ShouldFill(n)
}

func (t *tessellator) computeWinding(r *activeRegion) {
	r.windingNumber = regionAbove(r).windingNumber + r.eUp.Winding
	r.inside = t.isWindingInside(r.windingNumber)
}

// finishRegion records the fill state of a region's face and removes the
// region from the dictionary.
func (t *tessellator) finishRegion(r *activeRegion) {
	e := r.eUp
	f := e.Lface
	f.Inside = r.inside
	f.Winding = r.windingNumber
	f.AnEdge = e
	t.deleteRegion(r)
}
