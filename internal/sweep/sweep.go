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
	"github.com/osuushi/multiwind/internal/mesh"
)

// Invariants of the sweep, between events:
//
//   - Each pair of adjacent edges e2 = Succ(e1) in the dictionary satisfies
//     edgeLeq(e1, e2) at every point swept so far.
//   - No two adjacent edges have an intersection left of the sweep line
//     unless it is already a mesh vertex.
//   - Every left-going edge of a processed vertex lies in the dictionary,
//     and every processed vertex has at least one right-going edge.
//
// Faces to the left of the sweep line are final; their Inside flag and
// winding are set when the region closing them is finished.

type tessellator struct {
	mesh    *mesh.Mesh
	pq      *priorityQ
	dict    *dict
	regions []*activeRegion // index 0 is unused so that a zero handle means none
	event   *mesh.Vertex
	opts    *Options
	sink    Sink

	combines int
}

// finishLeftRegions finishes the regions from regFirst up to (excluding)
// regLast, or up to the last region sharing regFirst's origin if regLast is
// nil. Edges are relinked so that the mesh order around the event matches
// the dictionary order. Returns the lowest left-going edge.
func (t *tessellator) finishLeftRegions(regFirst, regLast *activeRegion) *mesh.HalfEdge {
	regPrev := regFirst
	ePrev := regFirst.eUp
	for regPrev != regLast {
		regPrev.fixUpperEdge = false
		reg := regionBelow(regPrev)
		e := reg.eUp
		if e.Org != ePrev.Org {
			if !reg.fixUpperEdge {
				// The last left-going edge. There may still be more such edges
				// in the mesh, so the face must be finished rather than
				// simply dropped.
				t.finishRegion(regPrev)
				break
			}
			e = t.mesh.Connect(ePrev.Lprev(), e.Sym)
			t.fixUpperEdge(reg, e)
		}

		if ePrev.Onext != e {
			t.mesh.Splice(e.Oprev(), e)
			t.mesh.Splice(ePrev, e)
		}
		t.finishRegion(regPrev) // may change reg.eUp
		ePrev = reg.eUp
		regPrev = reg
	}
	return ePrev
}

// addRightEdges inserts the right-going edges from eFirst up to (excluding)
// eLast into the dictionary below regUp, computes their windings and
// relinks the mesh to the dictionary order. eTopLeft, if known, is the edge
// just above the new ones in CCW order around their origin. With cleanUp
// set, newly adjacent edges are checked for intersections.
func (t *tessellator) addRightEdges(regUp *activeRegion, eFirst, eLast, eTopLeft *mesh.HalfEdge, cleanUp bool) {
	e := eFirst
	for {
		check(vertLeq(e.Org, e.Dst()), "right-going edge goes left")
		t.addRegionBelow(regUp, e.Sym)
		e = e.Onext
		if e == eLast {
			break
		}
	}

	if eTopLeft == nil {
		eTopLeft = regionBelow(regUp).eUp.Rprev()
	}
	regPrev := regUp
	ePrev := eTopLeft
	firstTime := true
	var reg *activeRegion
	for {
		reg = regionBelow(regPrev)
		e = reg.eUp.Sym
		if e.Org != ePrev.Org {
			break
		}

		if e.Onext != ePrev {
			t.mesh.Splice(e.Oprev(), e)
			t.mesh.Splice(ePrev.Oprev(), e)
		}
		reg.windingNumber = regPrev.windingNumber - e.Winding
		reg.inside = t.isWindingInside(reg.windingNumber)

		// Two outgoing edges with the same slope are merged before any
		// intersection test.
		regPrev.dirty = true
		if !firstTime && t.checkForRightSplice(regPrev) {
			addWinding(e, ePrev)
			t.deleteRegion(regPrev)
			t.mesh.Delete(ePrev)
		}
		firstTime = false
		regPrev = reg
		ePrev = e
	}
	regPrev.dirty = true
	check(regPrev.windingNumber-e.Winding == reg.windingNumber, "winding mismatch after right edges")

	if cleanUp {
		t.walkDirtyRegions(regPrev)
	}
}

// spliceMergeVertices merges the origins of e1 and e2, which share a
// position, into e1.Org. The merged vertex gets its data from combine.
func (t *tessellator) spliceMergeVertices(e1, e2 *mesh.HalfEdge) {
	data := [4]int{e1.Org.Data, e2.Org.Data, mesh.Undefined, mesh.Undefined}
	weights := [4]float64{0.5, 0.5, 0, 0}
	t.callCombine(e1.Org, data, weights)
	t.mesh.Splice(e1, e2)
}

// vertexWeights returns the weights of org and dst for isect, by L1
// distance. The pair sums to 0.5.
func vertexWeights(isect, org, dst *mesh.Vertex) (float64, float64) {
	t1 := vertL1dist(org, isect)
	t2 := vertL1dist(dst, isect)
	if t1+t2 == 0 {
		return 0.25, 0.25
	}
	return 0.5 * t2 / (t1 + t2), 0.5 * t1 / (t1 + t2)
}

func (t *tessellator) getIntersectData(isect, orgUp, dstUp, orgLo, dstLo *mesh.Vertex) {
	data := [4]int{orgUp.Data, dstUp.Data, orgLo.Data, dstLo.Data}
	var weights [4]float64
	weights[0], weights[1] = vertexWeights(isect, orgUp, dstUp)
	weights[2], weights[3] = vertexWeights(isect, orgLo, dstLo)
	t.callCombine(isect, data, weights)
}

// callCombine asks the sink for the data of a synthesized vertex. Sources
// without data are dropped and the remaining weights renormalized.
func (t *tessellator) callCombine(v *mesh.Vertex, data [4]int, weights [4]float64) {
	sum := 0.0
	for i := range data {
		if data[i] == mesh.Undefined {
			weights[i] = 0
		}
		sum += weights[i]
	}
	if sum == 0 {
		v.Data = mesh.Undefined
		return
	}
	for i := range weights {
		weights[i] /= sum
	}
	t.combines++
	v.Data = t.sink.Combine(v.S, v.T, data, weights)
}

// checkForRightSplice checks the upper and lower edges of regUp, whose
// origins are at or right of the sweep line, for an ordering violation at
// those origins. If the origin of one lies on the wrong side of the other,
// it is spliced into that edge. Returns whether the mesh changed.
func (t *tessellator) checkForRightSplice(regUp *activeRegion) bool {
	regLo := regionBelow(regUp)
	eUp := regUp.eUp
	eLo := regLo.eUp

	if vertLeq(eUp.Org, eLo.Org) {
		if edgeSign(eLo.Dst(), eUp.Org, eLo.Org) > 0 {
			return false
		}

		if !vertEq(eUp.Org, eLo.Org) {
			// Splice eUp.Org into eLo.
			t.mesh.SplitEdge(eLo.Sym)
			t.mesh.Splice(eUp, eLo.Oprev())
			regUp.dirty = true
			regLo.dirty = true
		} else if eUp.Org != eLo.Org {
			// Merge the two vertices, discarding eUp.Org.
			t.pq.delete(eUp.Org)
			t.spliceMergeVertices(eLo.Oprev(), eUp)
		}
	} else {
		if edgeSign(eUp.Dst(), eLo.Org, eUp.Org) < 0 {
			return false
		}

		// Splice eLo.Org into eUp.
		regionAbove(regUp).dirty = true
		regUp.dirty = true
		t.mesh.SplitEdge(eUp.Sym)
		t.mesh.Splice(eLo.Oprev(), eUp)
	}
	return true
}

// checkForLeftSplice is checkForRightSplice for the destinations, which are
// left of the sweep line. The destinations must be distinct.
func (t *tessellator) checkForLeftSplice(regUp *activeRegion) bool {
	regLo := regionBelow(regUp)
	eUp := regUp.eUp
	eLo := regLo.eUp

	check(!vertEq(eUp.Dst(), eLo.Dst()), "left splice of coincident destinations")

	if vertLeq(eUp.Dst(), eLo.Dst()) {
		if edgeSign(eUp.Dst(), eLo.Dst(), eUp.Org) < 0 {
			return false
		}

		// eLo.Dst is above eUp: splice it into eUp.
		regionAbove(regUp).dirty = true
		regUp.dirty = true
		e := t.mesh.SplitEdge(eUp)
		t.mesh.Splice(eLo.Sym, e)
		e.Lface.Inside = regUp.inside
		e.Lface.Winding = regUp.windingNumber
	} else {
		if edgeSign(eLo.Dst(), eUp.Dst(), eLo.Org) > 0 {
			return false
		}

		// eUp.Dst is below eLo: splice it into eLo.
		regUp.dirty = true
		regLo.dirty = true
		e := t.mesh.SplitEdge(eLo)
		t.mesh.Splice(eUp.Lnext, eLo.Sym)
		e.Rface().Inside = regUp.inside
		e.Rface().Winding = regUp.windingNumber
	}
	return true
}

// checkForIntersect checks the upper and lower edges of regUp for an
// intersection right of the sweep line. An intersection creates a new
// vertex through combine and queues it as an event. Returns true if it had
// to process the event region itself, in which case the caller's view of
// the dictionary is stale.
func (t *tessellator) checkForIntersect(regUp *activeRegion) bool {
	regLo := regionBelow(regUp)
	eUp := regUp.eUp
	eLo := regLo.eUp
	orgUp := eUp.Org
	orgLo := eLo.Org
	dstUp := eUp.Dst()
	dstLo := eLo.Dst()

	check(!vertEq(dstLo, dstUp), "intersect test of coincident destinations")
	check(orgUp != t.event && orgLo != t.event, "intersect test at the event")
	check(!regUp.fixUpperEdge && !regLo.fixUpperEdge, "intersect test of a fixable edge")

	if orgUp == orgLo {
		return false
	}

	tMinUp := min(orgUp.T, dstUp.T)
	tMaxLo := max(orgLo.T, dstLo.T)
	if tMinUp > tMaxLo {
		return false
	}

	if vertLeq(orgUp, orgLo) {
		if edgeSign(dstLo, orgUp, orgLo) > 0 {
			return false
		}
	} else {
		if edgeSign(dstUp, orgLo, orgUp) < 0 {
			return false
		}
	}

	// The edges intersect, at least marginally.
	isect := &mesh.Vertex{Data: mesh.Undefined}
	edgeIntersect(dstUp, orgUp, dstLo, orgLo, isect)

	if vertLeq(isect, t.event) {
		// Numerical error put the intersection left of the sweep line.
		isect.S = t.event.S
		isect.T = t.event.T
	}
	orgMin := orgLo
	if vertLeq(orgUp, orgLo) {
		orgMin = orgUp
	}
	if vertLeq(orgMin, isect) {
		isect.S = orgMin.S
		isect.T = orgMin.T
	}

	if vertEq(isect, orgUp) || vertEq(isect, orgLo) {
		// Intersection at one of the right endpoints.
		t.checkForRightSplice(regUp)
		return false
	}

	if (!vertEq(dstUp, t.event) && edgeSign(dstUp, t.event, isect) >= 0) ||
		(!vertEq(dstLo, t.event) && edgeSign(dstLo, t.event, isect) <= 0) {
		// The new upper or lower edge would pass on the wrong side of the
		// event, or through it.
		if dstLo == t.event {
			t.mesh.SplitEdge(eUp.Sym)
			t.mesh.Splice(eLo.Sym, eUp)
			regUp = t.topLeftRegion(regUp)
			eUp = regionBelow(regUp).eUp
			t.finishLeftRegions(regionBelow(regUp), regLo)
			t.addRightEdges(regUp, eUp.Oprev(), eUp, eUp, true)
			return true
		}
		if dstUp == t.event {
			t.mesh.SplitEdge(eLo.Sym)
			t.mesh.Splice(eUp.Lnext, eLo.Oprev())
			regLo = regUp
			regUp = topRightRegion(regUp)
			e := regionBelow(regUp).eUp.Rprev()
			regLo.eUp = eLo.Oprev()
			eLo = t.finishLeftRegions(regLo, nil)
			t.addRightEdges(regUp, eLo.Onext, eUp.Rprev(), e, true)
			return true
		}

		// Called from connectRightVertex: split whichever edge passes on the
		// wrong side of the event and let the caller splice it.
		if edgeSign(dstUp, t.event, isect) >= 0 {
			regionAbove(regUp).dirty = true
			regUp.dirty = true
			t.mesh.SplitEdge(eUp.Sym)
			eUp.Org.S = t.event.S
			eUp.Org.T = t.event.T
		}
		if edgeSign(dstLo, t.event, isect) <= 0 {
			regUp.dirty = true
			regLo.dirty = true
			t.mesh.SplitEdge(eLo.Sym)
			eLo.Org.S = t.event.S
			eLo.Org.T = t.event.T
		}
		return false
	}

	// General case: split both edges and splice them into the new vertex.
	t.mesh.SplitEdge(eUp.Sym)
	t.mesh.SplitEdge(eLo.Sym)
	t.mesh.Splice(eLo.Oprev(), eUp)
	eUp.Org.S = isect.S
	eUp.Org.T = isect.T
	t.getIntersectData(eUp.Org, orgUp, dstUp, orgLo, dstLo)
	t.pq.insert(eUp.Org)
	regionAbove(regUp).dirty = true
	regUp.dirty = true
	regLo.dirty = true
	return false
}

// walkDirtyRegions restores the dictionary invariants for every dirty
// region, walking upwards from regUp. Newly adjacent edges are checked for
// splices and intersections until no region is dirty.
func (t *tessellator) walkDirtyRegions(regUp *activeRegion) {
	regLo := regionBelow(regUp)

	for {
		// Find the lowest dirty region.
		for regLo.dirty {
			regUp = regLo
			regLo = regionBelow(regLo)
		}
		if !regUp.dirty {
			regLo = regUp
			regUp = regionAbove(regUp)
			if regUp == nil || !regUp.dirty {
				return
			}
		}
		regUp.dirty = false
		eUp := regUp.eUp
		eLo := regLo.eUp

		if eUp.Dst() != eLo.Dst() {
			if t.checkForLeftSplice(regUp) {
				// A fixable edge is no longer needed once its vertex has a
				// real right-going edge.
				if regLo.fixUpperEdge {
					t.deleteRegion(regLo)
					t.mesh.Delete(eLo)
					regLo = regionBelow(regUp)
					eLo = regLo.eUp
				} else if regUp.fixUpperEdge {
					t.deleteRegion(regUp)
					t.mesh.Delete(eUp)
					regUp = regionAbove(regLo)
					eUp = regUp.eUp
				}
			}
		}
		if eUp.Org != eLo.Org {
			if eUp.Dst() != eLo.Dst() &&
				!regUp.fixUpperEdge && !regLo.fixUpperEdge &&
				(eUp.Dst() == t.event || eLo.Dst() == t.event) {
				// checkForIntersect may fall back to using the event as the
				// intersection, which needs the event between the two edges
				// and neither of them fixable.
				if t.checkForIntersect(regUp) {
					return
				}
			} else {
				t.checkForRightSplice(regUp)
			}
		}
		if eUp.Org == eLo.Org && eUp.Dst() == eLo.Dst() {
			// A degenerate loop of two edges.
			addWinding(eLo, eUp)
			t.deleteRegion(regUp)
			t.mesh.Delete(eUp)
			regUp = regionAbove(regLo)
		}
	}
}

// connectRightVertex handles an event with no right-going edges. The
// regions above and below the event are merged by a temporary edge to the
// closer of the two right endpoints, so that every processed vertex keeps
// a right-going edge. The edge is replaced once a real one is found.
func (t *tessellator) connectRightVertex(regUp *activeRegion, eBottomLeft *mesh.HalfEdge) {
	eTopLeft := eBottomLeft.Onext
	regLo := regionBelow(regUp)
	eUp := regUp.eUp
	eLo := regLo.eUp
	degenerate := false

	if eUp.Dst() != eLo.Dst() {
		t.checkForIntersect(regUp)
	}

	// The upper or lower edge may now pass through the event, or coincide
	// with a new intersection vertex.
	if vertEq(eUp.Org, t.event) {
		t.mesh.Splice(eTopLeft.Oprev(), eUp)
		regUp = t.topLeftRegion(regUp)
		eTopLeft = regionBelow(regUp).eUp
		t.finishLeftRegions(regionBelow(regUp), regLo)
		degenerate = true
	}
	if vertEq(eLo.Org, t.event) {
		t.mesh.Splice(eBottomLeft, eLo.Oprev())
		eBottomLeft = t.finishLeftRegions(regLo, nil)
		degenerate = true
	}
	if degenerate {
		t.addRightEdges(regUp, eBottomLeft.Onext, eTopLeft, eTopLeft, true)
		return
	}

	eNew := eUp
	if vertLeq(eLo.Org, eUp.Org) {
		eNew = eLo.Oprev()
	}
	eNew = t.mesh.Connect(eBottomLeft.Lprev(), eNew)

	// No cleanup yet: eNew could vanish before being marked fixable.
	t.addRightEdges(regUp, eNew, eNew.Onext, eNew.Onext, false)
	t.regionOf(eNew.Sym).fixUpperEdge = true
	t.walkDirtyRegions(regUp)
}

// connectLeftDegenerate handles an event lying on the upper edge of regUp.
func (t *tessellator) connectLeftDegenerate(regUp *activeRegion, vEvent *mesh.Vertex) {
	e := regUp.eUp
	if vertEq(e.Org, vEvent) {
		// e.Org is still unprocessed: merge and wait for it to be dequeued.
		t.spliceMergeVertices(e, vEvent.AnEdge)
		return
	}

	if !vertEq(e.Dst(), vEvent) {
		// Splice vEvent into the edge passing through it.
		t.mesh.SplitEdge(e.Sym)
		if regUp.fixUpperEdge {
			t.mesh.Delete(e.Onext)
			regUp.fixUpperEdge = false
		}
		t.mesh.Splice(vEvent.AnEdge, e)
		t.sweepEvent(vEvent)
		return
	}

	// vEvent coincides with the already processed e.Dst: splice in the
	// additional right-going edges.
	regUp = topRightRegion(regUp)
	reg := regionBelow(regUp)
	eTopRight := reg.eUp.Sym
	eTopLeft := eTopRight.Onext
	eLast := eTopLeft
	if reg.fixUpperEdge {
		// The single fixable edge can go now that real edges exist.
		check(eTopLeft != eTopRight, "fixable edge without left edges")
		t.deleteRegion(reg)
		t.mesh.Delete(eTopRight)
		eTopRight = eTopLeft.Oprev()
	}
	t.mesh.Splice(vEvent.AnEdge, eTopRight)
	if !edgeGoesLeft(eTopLeft) {
		eTopLeft = nil
	}
	t.addRightEdges(regUp, eTopRight.Onext, eLast, eTopLeft, true)
}

// connectLeftVertex handles an event with no left-going edges. If the event
// lies inside the fill it is connected to the closer left endpoint of the
// edges above and below it, so that fill regions stay monotone.
func (t *tessellator) connectLeftVertex(vEvent *mesh.Vertex) {
	regUp := t.dict.search(vEvent.AnEdge.Sym).key
	if regUp == nil {
		return
	}
	regLo := regionBelow(regUp)
	if regLo == nil {
		return
	}
	eUp := regUp.eUp
	eLo := regLo.eUp

	if edgeSign(eUp.Dst(), vEvent, eUp.Org) == 0 {
		t.connectLeftDegenerate(regUp, vEvent)
		return
	}

	reg := regLo
	if vertLeq(eLo.Dst(), eUp.Dst()) {
		reg = regUp
	}

	if regUp.inside || reg.fixUpperEdge {
		var eNew *mesh.HalfEdge
		if reg == regUp {
			eNew = t.mesh.Connect(vEvent.AnEdge.Sym, eUp.Lnext)
		} else {
			eNew = t.mesh.Connect(eLo.Dnext(), vEvent.AnEdge).Sym
		}
		if reg.fixUpperEdge {
			t.fixUpperEdge(reg, eNew)
		} else {
			t.computeWinding(t.addRegionBelow(regUp, eNew))
		}
		t.sweepEvent(vEvent)
	} else {
		// The event is outside the fill; it need not be connected.
		t.addRightEdges(regUp, vEvent.AnEdge, vEvent.AnEdge, nil, true)
	}
}

// sweepEvent processes one vertex: it finishes the regions closed by the
// vertex's left-going edges, then adds its right-going edges.
func (t *tessellator) sweepEvent(vEvent *mesh.Vertex) {
	t.event = vEvent

	e := vEvent.AnEdge
	for e.Region == 0 {
		e = e.Onext
		if e == vEvent.AnEdge {
			// Not incident to any processed edge.
			t.connectLeftVertex(vEvent)
			return
		}
	}

	regUp := t.topLeftRegion(t.regionOf(e))
	reg := regionBelow(regUp)
	eTopLeft := reg.eUp
	eBottomLeft := t.finishLeftRegions(reg, nil)

	if eBottomLeft.Onext == eTopLeft {
		t.connectRightVertex(regUp, eBottomLeft)
	} else {
		t.addRightEdges(regUp, eBottomLeft.Onext, eTopLeft, eTopLeft, true)
	}
}

func (t *tessellator) addSentinel(smin, smax, tc float64) {
	e := t.mesh.MakeEdge()
	e.Org.S = smax
	e.Org.T = tc
	e.Dst().S = smin
	e.Dst().T = tc
	t.event = e.Dst()

	r := &activeRegion{id: len(t.regions), sentinel: true}
	t.regions = append(t.regions, r)
	t.attachRegion(r, e)
	r.node = t.dict.insert(r)
}

// initEdgeDict creates the dictionary with two sentinel edges spanning the
// whole bounding box, so that every event lies between two dictionary
// edges.
func (t *tessellator) initEdgeDict(bmin, bmax [2]float64) {
	t.dict = newDict(t.edgeLeq)
	t.regions = []*activeRegion{nil}

	// Keep the sentinels apart even when the bounding box is empty.
	w := bmax[0] - bmin[0] + 0.01
	h := bmax[1] - bmin[1] + 0.01

	t.addSentinel(bmin[0]-w, bmax[0]+w, bmin[1]-h)
	t.addSentinel(bmin[0]-w, bmax[0]+w, bmax[1]+h)
}

func (t *tessellator) doneEdgeDict() {
	fixedEdges := 0
	for {
		reg := t.dict.min().key
		if reg == nil {
			break
		}
		// Only the two sentinels remain, plus at most one fixable edge left
		// by connectRightVertex.
		if !reg.sentinel {
			check(reg.fixUpperEdge, "unfinished region after sweep")
			fixedEdges++
			check(fixedEdges == 1, "more than one fixable edge after sweep")
		}
		check(reg.windingNumber == 0, "nonzero winding outside all contours")
		t.deleteRegion(reg)
	}
}

// removeDegenerateEdges removes zero-length edges and contours with fewer
// than 3 vertices.
func (t *tessellator) removeDegenerateEdges() {
	eHead := t.mesh.EdgeHead()
	var eNext *mesh.HalfEdge
	for e := eHead.Next; e != eHead; e = eNext {
		eNext = e.Next
		eLnext := e.Lnext

		if vertEq(e.Org, e.Dst()) && e.Lnext.Lnext != e {
			// Zero-length edge in a contour of at least 3 edges.
			t.spliceMergeVertices(eLnext, e)
			t.mesh.Delete(e)
			e = eLnext
			eLnext = e.Lnext
		}
		if eLnext.Lnext == e {
			// Degenerate contour of one or two edges.
			if eLnext != e {
				if eLnext == eNext || eLnext == eNext.Sym {
					eNext = eNext.Next
				}
				t.mesh.Delete(eLnext)
			}
			if e == eNext || e == eNext.Sym {
				eNext = eNext.Next
			}
			t.mesh.Delete(e)
		}
	}
}

func (t *tessellator) initPriorityQ() {
	vHead := t.mesh.VertexHead()
	n := 0
	for v := vHead.Next; v != vHead; v = v.Next {
		n++
	}
	t.pq = newPriorityQ(n + 8)
	for v := vHead.Next; v != vHead; v = v.Next {
		t.pq.insert(v)
	}
}

// removeDegenerateFaces deletes faces with only two edges. walkDirtyRegions
// catches most of them, but splices on already processed edges can leave
// some behind, and deleting them at that point would be unsafe.
func (t *tessellator) removeDegenerateFaces() {
	fHead := t.mesh.FaceHead()
	var fNext *mesh.Face
	for f := fHead.Next; f != fHead; f = fNext {
		fNext = f.Next
		e := f.AnEdge
		check(e.Lnext != e, "face with a single edge")

		if e.Lnext.Lnext == e {
			addWinding(e.Onext, e)
			t.mesh.Delete(e)
		}
	}
}

// computeInterior computes the planar arrangement of the contours in the
// mesh and subdivides it into monotone regions, each marked inside or not
// according to ShouldFill.
func (t *tessellator) computeInterior(bmin, bmax [2]float64) {
	t.removeDegenerateEdges()
	t.initPriorityQ()
	t.initEdgeDict(bmin, bmax)

	for {
		v := t.pq.extractMin()
		if v == nil {
			break
		}
		// Merge all vertices at exactly the same position before processing
		// them, so that identical edges from different contours are split at
		// identical intersection points.
		for {
			vNext := t.pq.minimum()
			if vNext == nil || !vertEq(vNext, v) {
				break
			}
			vNext = t.pq.extractMin()
			t.spliceMergeVertices(v.AnEdge, vNext.AnEdge)
		}
		t.sweepEvent(v)
	}

	t.doneEdgeDict()
	t.removeDegenerateFaces()
}
