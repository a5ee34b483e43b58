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

// tessellateMonoRegion triangulates a face known to be monotone in s by
// adding diagonals. The new faces inherit the face's Inside flag and
// winding.
//
// The upper and lower chains are advanced from the rightmost vertex
// leftwards; triangles are cut off whichever chain currently has the
// rightmost unprocessed vertex. The remainder is fanned from the leftmost
// vertex.
func (t *tessellator) tessellateMonoRegion(face *mesh.Face) {
	up := face.AnEdge
	check(up.Lnext != up && up.Lnext.Lnext != up, "monotone region with fewer than 3 edges")

	for vertLeq(up.Dst(), up.Org) {
		up = up.Lprev()
	}
	for vertLeq(up.Org, up.Dst()) {
		up = up.Lnext
	}
	lo := up.Lprev()

	for up.Lnext != lo {
		if vertLeq(up.Dst(), lo.Org) {
			// up.Dst is on the left, so triangles from lo.Org are safe.
			// edgeGoesLeft guarantees progress even if some are CW.
			for lo.Lnext != up && (edgeGoesLeft(lo.Lnext) ||
				edgeSign(lo.Org, lo.Dst(), lo.Lnext.Dst()) <= 0) {
				lo = t.mesh.Connect(lo.Lnext, lo).Sym
			}
			lo = lo.Lprev()
		} else {
			// lo.Org is on the left: CCW triangles from up.Dst.
			for lo.Lnext != up && (edgeGoesRight(up.Lprev()) ||
				edgeSign(up.Dst(), up.Org, up.Lprev().Org) >= 0) {
				up = t.mesh.Connect(up, up.Lprev()).Sym
			}
			up = up.Lnext
		}
	}

	check(lo.Lnext != up, "monotone chains crossed")
	for lo.Lnext.Lnext != up {
		lo = t.mesh.Connect(lo.Lnext, lo).Sym
	}
}

// tessellateInterior triangulates every inside face.
func (t *tessellator) tessellateInterior() {
	fHead := t.mesh.FaceHead()
	var next *mesh.Face
	for f := fHead.Next; f != fHead; f = next {
		// New triangles are inserted before f and are never revisited.
		next = f.Next
		if f.Inside {
			t.tessellateMonoRegion(f)
		}
	}
}

// keepBoundary deletes every edge that does not separate an inside face
// from an outside one. Boundary edges get winding +1 with the inside on
// their left, -1 otherwise.
func (t *tessellator) keepBoundary() {
	eHead := t.mesh.EdgeHead()
	var eNext *mesh.HalfEdge
	for e := eHead.Next; e != eHead; e = eNext {
		eNext = e.Next
		if e.Rface().Inside != e.Lface.Inside {
			if e.Lface.Inside {
				e.Winding = 1
			} else {
				e.Winding = -1
			}
		} else {
			t.mesh.Delete(e)
		}
	}
}
