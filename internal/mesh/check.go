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

package mesh

import "github.com/pkg/errors"

// Check verifies the self-consistency of the mesh and returns the first
// violation found.
func (m *Mesh) Check() error {
	fHead := &m.fHead
	fPrev := fHead
	f := fPrev.Next
	for ; f != fHead; f = fPrev.Next {
		if f.Prev != fPrev {
			return errors.New("mesh: face list is not doubly linked")
		}
		e := f.AnEdge
		for {
			if err := checkEdge(e); err != nil {
				return err
			}
			if e.Lface != f {
				return errors.New("mesh: edge does not point back to its left face")
			}
			e = e.Lnext
			if e == f.AnEdge {
				break
			}
		}
		fPrev = f
	}
	if f.Prev != fPrev || f.AnEdge != nil {
		return errors.New("mesh: corrupt face list head")
	}

	vHead := &m.vHead
	vPrev := vHead
	v := vPrev.Next
	for ; v != vHead; v = vPrev.Next {
		if v.Prev != vPrev {
			return errors.New("mesh: vertex list is not doubly linked")
		}
		e := v.AnEdge
		for {
			if err := checkEdge(e); err != nil {
				return err
			}
			if e.Org != v {
				return errors.New("mesh: edge does not point back to its origin")
			}
			e = e.Onext
			if e == v.AnEdge {
				break
			}
		}
		vPrev = v
	}
	if v.Prev != vPrev || v.AnEdge != nil {
		return errors.New("mesh: corrupt vertex list head")
	}

	eHead := &m.eHead
	ePrev := eHead
	e := ePrev.Next
	for ; e != eHead; e = ePrev.Next {
		if e.Sym.Next != ePrev.Sym {
			return errors.New("mesh: edge list is not doubly linked")
		}
		if err := checkEdge(e); err != nil {
			return err
		}
		if e.Org == nil || e.Dst() == nil {
			return errors.New("mesh: edge without endpoints")
		}
		ePrev = e
	}
	if e.Sym.Next != ePrev.Sym || e.Sym != &m.eHeadSym || e.Sym.Sym != e {
		return errors.New("mesh: corrupt edge list head")
	}
	if e.Org != nil || e.Dst() != nil || e.Lface != nil || e.Rface() != nil {
		return errors.New("mesh: edge list head has topology")
	}
	return nil
}

func checkEdge(e *HalfEdge) error {
	switch {
	case e.Sym == e, e.Sym.Sym != e:
		return errors.New("mesh: broken symmetric pair")
	case e.Lnext.Onext.Sym != e:
		return errors.New("mesh: Lnext and Onext disagree")
	case e.Onext.Sym.Lnext != e:
		return errors.New("mesh: Onext and Lnext disagree")
	}
	return nil
}
