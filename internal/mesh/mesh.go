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

// Package mesh implements the half-edge topology used by the sweep
// tessellator. Vertices, half-edges and faces each live on a circular
// doubly-linked list anchored at a dummy head owned by the Mesh. The package
// carries the projected vertex coordinates but performs no geometry.
package mesh

// Undefined is the Data value of a vertex that carries no user data.
const Undefined = -1

// NotQueued is the PQHandle of a vertex that is not in an event queue.
const NotQueued = -1

type Vertex struct {
	Next, Prev *Vertex
	AnEdge     *HalfEdge // a half-edge with this origin

	S, T     float64 // projected coordinates
	Data     int     // opaque user data, Undefined if none
	PQHandle int     // handle into the sweep's event queue
}

type Face struct {
	Next, Prev *Face
	AnEdge     *HalfEdge // a half-edge with this left face

	Trail   *Face // stack of faces for monotone decomposition
	Marked  bool
	Inside  bool
	Winding int // winding number of the region, valid once Inside is set
}

// HalfEdge is one direction of an edge. Half-edges are allocated in pairs;
// Next links every half-edge of the mesh in a global ring, with the previous
// pointer stored in Sym.Next.
type HalfEdge struct {
	Next  *HalfEdge
	Sym   *HalfEdge // same edge, opposite direction
	Onext *HalfEdge // next edge CCW around origin
	Lnext *HalfEdge // next edge CCW around left face
	Org   *Vertex
	Lface *Face

	Region  int // active region handle during the sweep, 0 if none
	Winding int // change in winding number when crossing from right face to left

	second bool // true for the second half-edge of its pair
}

type edgePair struct {
	e, eSym HalfEdge
}

func (e *HalfEdge) Dst() *Vertex     { return e.Sym.Org }
func (e *HalfEdge) SetDst(v *Vertex) { e.Sym.Org = v }
func (e *HalfEdge) Rface() *Face     { return e.Sym.Lface }
func (e *HalfEdge) SetRface(f *Face) { e.Sym.Lface = f }
func (e *HalfEdge) Oprev() *HalfEdge { return e.Sym.Lnext }
func (e *HalfEdge) Lprev() *HalfEdge { return e.Onext.Sym }
func (e *HalfEdge) Dprev() *HalfEdge { return e.Lnext.Sym }
func (e *HalfEdge) Rprev() *HalfEdge { return e.Sym.Onext }
func (e *HalfEdge) Dnext() *HalfEdge { return e.Rprev().Sym }
func (e *HalfEdge) Rnext() *HalfEdge { return e.Oprev().Sym }
func (e *HalfEdge) IsPrimary() bool  { return !e.second }
func (e *HalfEdge) Degenerate() bool { return e.Lnext.Lnext == e }
func (e *HalfEdge) IsSelfLoop() bool { return e.Onext == e }

type Mesh struct {
	vHead    Vertex
	fHead    Face
	eHead    HalfEdge
	eHeadSym HalfEdge
}

// New creates a mesh with no edges, no vertices and no faces.
func New() *Mesh {
	m := &Mesh{}
	m.vHead.Next = &m.vHead
	m.vHead.Prev = &m.vHead
	m.vHead.Data = Undefined
	m.vHead.PQHandle = NotQueued

	m.fHead.Next = &m.fHead
	m.fHead.Prev = &m.fHead

	m.eHead.Next = &m.eHead
	m.eHead.Sym = &m.eHeadSym
	m.eHeadSym.Next = &m.eHeadSym
	m.eHeadSym.Sym = &m.eHead
	m.eHeadSym.second = true
	return m
}

// VertexHead, FaceHead and EdgeHead return the dummy list heads. Iteration
// runs from head.Next until head is reached again.
func (m *Mesh) VertexHead() *Vertex { return &m.vHead }
func (m *Mesh) FaceHead() *Face     { return &m.fHead }
func (m *Mesh) EdgeHead() *HalfEdge { return &m.eHead }

// makeEdge creates a new pair of half-edges which form their own loop,
// inserted in the global list before eNext. Vertices and faces must be
// assigned by the caller before the operation completes.
func makeEdge(eNext *HalfEdge) *HalfEdge {
	pair := &edgePair{}
	e := &pair.e
	eSym := &pair.eSym
	eSym.second = true

	if eNext.second {
		eNext = eNext.Sym
	}

	ePrev := eNext.Sym.Next
	eSym.Next = ePrev
	ePrev.Sym.Next = e
	e.Next = eNext
	eNext.Sym.Next = eSym

	e.Sym = eSym
	e.Onext = e
	e.Lnext = eSym

	eSym.Sym = e
	eSym.Onext = eSym
	eSym.Lnext = e
	return e
}

// splice exchanges a.Onext and b.Onext.
func splice(a, b *HalfEdge) {
	aOnext := a.Onext
	bOnext := b.Onext

	aOnext.Sym.Lnext = b
	bOnext.Sym.Lnext = a
	a.Onext = bOnext
	b.Onext = aOnext
}

// makeVertex attaches a new vertex as the origin of every edge in the
// origin ring of eOrig. The vertex is inserted before vNext, so walkers of
// the vertex list do not see it.
func makeVertex(eOrig *HalfEdge, vNext *Vertex) *Vertex {
	v := &Vertex{Data: Undefined, PQHandle: NotQueued}

	vPrev := vNext.Prev
	v.Prev = vPrev
	vPrev.Next = v
	v.Next = vNext
	vNext.Prev = v

	v.AnEdge = eOrig
	e := eOrig
	for {
		e.Org = v
		e = e.Onext
		if e == eOrig {
			break
		}
	}
	return v
}

// makeFace attaches a new face as the left face of every edge in the loop of
// eOrig. A face split off from another inherits its Inside flag and winding.
func makeFace(eOrig *HalfEdge, fNext *Face) *Face {
	f := &Face{}

	fPrev := fNext.Prev
	f.Prev = fPrev
	fPrev.Next = f
	f.Next = fNext
	fNext.Prev = f

	f.AnEdge = eOrig
	f.Inside = fNext.Inside
	f.Winding = fNext.Winding

	e := eOrig
	for {
		e.Lface = f
		e = e.Lnext
		if e == eOrig {
			break
		}
	}
	return f
}

func killEdge(eDel *HalfEdge) {
	if eDel.second {
		eDel = eDel.Sym
	}
	eNext := eDel.Next
	ePrev := eDel.Sym.Next
	eNext.Sym.Next = ePrev
	ePrev.Sym.Next = eNext
}

func killVertex(vDel *Vertex, newOrg *Vertex) {
	eStart := vDel.AnEdge
	e := eStart
	for {
		e.Org = newOrg
		e = e.Onext
		if e == eStart {
			break
		}
	}

	vPrev := vDel.Prev
	vNext := vDel.Next
	vNext.Prev = vPrev
	vPrev.Next = vNext
}

func killFace(fDel *Face, newLface *Face) {
	eStart := fDel.AnEdge
	e := eStart
	for {
		e.Lface = newLface
		e = e.Lnext
		if e == eStart {
			break
		}
	}

	fPrev := fDel.Prev
	fNext := fDel.Next
	fNext.Prev = fPrev
	fPrev.Next = fNext
}

// MakeEdge creates one edge, two vertices, and a loop (face) made of the two
// new half-edges.
func (m *Mesh) MakeEdge() *HalfEdge {
	e := makeEdge(&m.eHead)
	makeVertex(e, &m.vHead)
	makeVertex(e.Sym, &m.vHead)
	makeFace(e, &m.fHead)
	return e
}

// Splice changes the mesh so that
//
//	eOrg.Onext <- OLD(eDst.Onext)
//	eDst.Onext <- OLD(eOrg.Onext)
//
// If the two origins differ they are merged, otherwise the origin is split
// in two. Independently, if the two left faces differ they are joined,
// otherwise the loop is split in two. In every case eDst.Org and eDst.Lface
// are the ones that change.
func (m *Mesh) Splice(eOrg, eDst *HalfEdge) {
	if eOrg == eDst {
		return
	}

	joiningVertices := false
	if eDst.Org != eOrg.Org {
		joiningVertices = true
		killVertex(eDst.Org, eOrg.Org)
	}
	joiningLoops := false
	if eDst.Lface != eOrg.Lface {
		joiningLoops = true
		killFace(eDst.Lface, eOrg.Lface)
	}

	splice(eDst, eOrg)

	if !joiningVertices {
		makeVertex(eDst, eOrg.Org)
		eOrg.Org.AnEdge = eOrg
	}
	if !joiningLoops {
		makeFace(eDst, eOrg.Lface)
		eOrg.Lface.AnEdge = eOrg
	}
}

// Delete removes the edge eDel. If its two faces differ they are joined,
// otherwise the loop is split and the new loop contains eDel.Dst. Vertices
// left isolated are removed too.
func (m *Mesh) Delete(eDel *HalfEdge) {
	eDelSym := eDel.Sym

	joiningLoops := false
	if eDel.Lface != eDel.Rface() {
		joiningLoops = true
		killFace(eDel.Lface, eDel.Rface())
	}

	if eDel.Onext == eDel {
		killVertex(eDel.Org, nil)
	} else {
		eDel.Rface().AnEdge = eDel.Oprev()
		eDel.Org.AnEdge = eDel.Onext

		splice(eDel, eDel.Oprev())
		if !joiningLoops {
			makeFace(eDel, eDel.Lface)
		}
	}

	if eDelSym.Onext == eDelSym {
		killVertex(eDelSym.Org, nil)
		killFace(eDelSym.Lface, nil)
	} else {
		eDel.Lface.AnEdge = eDelSym.Oprev()
		eDelSym.Org.AnEdge = eDelSym.Onext
		splice(eDelSym, eDelSym.Oprev())
	}

	killEdge(eDel)
}

// AddEdgeVertex creates a new edge eNew such that eNew == eOrg.Lnext and
// eNew.Dst is a new vertex. eOrg and eNew share the same left face.
func (m *Mesh) AddEdgeVertex(eOrg *HalfEdge) *HalfEdge {
	eNew := makeEdge(eOrg)
	eNewSym := eNew.Sym

	splice(eNew, eOrg.Lnext)

	eNew.Org = eOrg.Dst()
	makeVertex(eNewSym, eNew.Org)
	eNew.Lface = eOrg.Lface
	eNewSym.Lface = eOrg.Lface
	return eNew
}

// SplitEdge splits eOrg into eOrg and eNew such that eNew == eOrg.Lnext. The
// new vertex is eOrg.Dst == eNew.Org. Both halves keep eOrg's winding.
func (m *Mesh) SplitEdge(eOrg *HalfEdge) *HalfEdge {
	eNew := m.AddEdgeVertex(eOrg).Sym

	splice(eOrg.Sym, eOrg.Sym.Oprev())
	splice(eOrg.Sym, eNew)

	eOrg.SetDst(eNew.Org)
	eNew.Dst().AnEdge = eNew.Sym
	eNew.SetRface(eOrg.Rface())
	eNew.Winding = eOrg.Winding
	eNew.Sym.Winding = eOrg.Sym.Winding
	return eNew
}

// Connect creates a new edge from eOrg.Dst to eDst.Org and returns it. If
// the two edges share a left face the loop is split and the new loop is
// eNew.Lface; otherwise the two loops are merged and eDst.Lface goes away.
func (m *Mesh) Connect(eOrg, eDst *HalfEdge) *HalfEdge {
	eNew := makeEdge(eOrg)
	eNewSym := eNew.Sym

	joiningLoops := false
	if eDst.Lface != eOrg.Lface {
		joiningLoops = true
		killFace(eDst.Lface, eOrg.Lface)
	}

	splice(eNew, eOrg.Lnext)
	splice(eNewSym, eDst)

	eNew.Org = eOrg.Dst()
	eNewSym.Org = eDst.Org
	eNew.Lface = eOrg.Lface
	eNewSym.Lface = eOrg.Lface

	eOrg.Lface.AnEdge = eNewSym

	if !joiningLoops {
		makeFace(eNew, eOrg.Lface)
	}
	return eNew
}

// ZapFace removes fZap from the face list. Its edges get a nil left face and
// any edge whose right face is also nil is deleted, along with any vertex
// that becomes isolated. A zapped face must not be used again.
func (m *Mesh) ZapFace(fZap *Face) {
	eStart := fZap.AnEdge
	eNext := eStart.Lnext
	for {
		e := eNext
		eNext = e.Lnext

		e.Lface = nil
		if e.Rface() == nil {
			if e.Onext == e {
				killVertex(e.Org, nil)
			} else {
				e.Org.AnEdge = e.Onext
				splice(e, e.Oprev())
			}
			eSym := e.Sym
			if eSym.Onext == eSym {
				killVertex(eSym.Org, nil)
			} else {
				eSym.Org.AnEdge = eSym.Onext
				splice(eSym, eSym.Oprev())
			}
			killEdge(e)
		}
		if e == eStart {
			break
		}
	}

	fPrev := fZap.Prev
	fNext := fZap.Next
	fNext.Prev = fPrev
	fPrev.Next = fNext
}

// FaceSize returns the number of edges around f.
func FaceSize(f *Face) int {
	n := 0
	e := f.AnEdge
	for {
		n++
		e = e.Lnext
		if e == f.AnEdge {
			break
		}
	}
	return n
}
