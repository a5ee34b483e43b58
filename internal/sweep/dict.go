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

// The edge dictionary holds the active regions ordered bottom to top by
// edgeLeq. The nodes form a treap for searches and a doubly-linked list for
// walking to neighbors. Positions are fixed at insertion: keys are only
// comparable at the current sweep event, so the tree never reorders nodes.

type dictNode struct {
	key  *activeRegion
	prev *dictNode
	next *dictNode

	parent, left, right *dictNode
	priority            uint32
}

type dict struct {
	head dictNode
	root *dictNode
	seed uint32
	leq  func(e1, e2 *mesh.HalfEdge) bool
}

func newDict(leq func(e1, e2 *mesh.HalfEdge) bool) *dict {
	d := &dict{leq: leq, seed: 2463534242}
	d.head.next = &d.head
	d.head.prev = &d.head
	return d
}

// Priorities come from a fixed xorshift sequence so that every sweep over
// the same input builds the same tree.
func (d *dict) nextPriority() uint32 {
	x := d.seed
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	d.seed = x
	return x
}

// insertBefore walks down from n to the first node not above key and links
// a new node above it.
func (d *dict) insertBefore(n *dictNode, key *activeRegion) *dictNode {
	for {
		n = n.prev
		if n.key == nil || d.leq(n.key.eUp, key.eUp) {
			break
		}
	}

	nn := &dictNode{
		key:      key,
		next:     n.next,
		prev:     n,
		priority: d.nextPriority(),
	}
	n.next.prev = nn
	n.next = nn
	d.link(n, nn)
	return nn
}

func (d *dict) insert(key *activeRegion) *dictNode {
	return d.insertBefore(&d.head, key)
}

// link puts nn into the tree directly after n, or first if n is the head.
func (d *dict) link(n, nn *dictNode) {
	var p *dictNode
	switch {
	case d.root == nil:
		d.root = nn
		return
	case n == &d.head:
		p = d.root
		for p.left != nil {
			p = p.left
		}
		p.left = nn
	case n.right == nil:
		p = n
		p.right = nn
	default:
		p = n.right
		for p.left != nil {
			p = p.left
		}
		p.left = nn
	}
	nn.parent = p
	for nn.parent != nil && nn.parent.priority < nn.priority {
		d.rotateUp(nn)
	}
}

// rotateUp swaps x with its parent, keeping the in-order sequence.
func (d *dict) rotateUp(x *dictNode) {
	p := x.parent
	g := p.parent
	if x == p.left {
		p.left = x.right
		if x.right != nil {
			x.right.parent = p
		}
		x.right = p
	} else {
		p.right = x.left
		if x.left != nil {
			x.left.parent = p
		}
		x.left = p
	}
	p.parent = x
	x.parent = g
	switch {
	case g == nil:
		d.root = x
	case g.left == p:
		g.left = x
	default:
		g.right = x
	}
}

func (d *dict) delete(n *dictNode) {
	n.next.prev = n.prev
	n.prev.next = n.next

	// Rotate n down to a leaf, then cut it off.
	for n.left != nil || n.right != nil {
		c := n.left
		if c == nil || (n.right != nil && n.right.priority > c.priority) {
			c = n.right
		}
		d.rotateUp(c)
	}
	switch p := n.parent; {
	case p == nil:
		d.root = nil
	case p.left == n:
		p.left = nil
	default:
		p.right = nil
	}
	n.parent = nil
}

// search returns the node with the smallest key greater than or equal to
// the region whose upper edge is e. If there is none, the returned node has
// a nil key.
func (d *dict) search(e *mesh.HalfEdge) *dictNode {
	found := &d.head
	for n := d.root; n != nil; {
		if d.leq(e, n.key.eUp) {
			found = n
			n = n.left
		} else {
			n = n.right
		}
	}
	return found
}

func (d *dict) min() *dictNode {
	return d.head.next
}
