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
	"container/heap"

	"github.com/osuushi/multiwind/internal/mesh"
)

const noHandle = mesh.NotQueued

// vertexHeap orders pending events by vertLeq. Each queued vertex keeps its
// heap index in PQHandle so that it can be removed in O(log n).
type vertexHeap []*mesh.Vertex

func (h vertexHeap) Len() int {
	return len(h)
}

// Coincident vertices come out in Data order so that repeated sweeps over
// the same input merge them in the same sequence.
func (h vertexHeap) Less(i, j int) bool {
	if vertEq(h[i], h[j]) {
		return h[i].Data < h[j].Data
	}
	return vertLeq(h[i], h[j])
}

func (h vertexHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].PQHandle = i
	h[j].PQHandle = j
}

func (h *vertexHeap) Push(x interface{}) {
	v := x.(*mesh.Vertex)
	v.PQHandle = len(*h)
	*h = append(*h, v)
}

func (h *vertexHeap) Pop() interface{} {
	old := *h
	v := old[len(old)-1]
	old[len(old)-1] = nil
	*h = old[:len(old)-1]
	v.PQHandle = noHandle
	return v
}

type priorityQ struct {
	h vertexHeap
}

func newPriorityQ(capacity int) *priorityQ {
	return &priorityQ{h: make(vertexHeap, 0, capacity)}
}

func (pq *priorityQ) insert(v *mesh.Vertex) {
	heap.Push(&pq.h, v)
}

func (pq *priorityQ) extractMin() *mesh.Vertex {
	if len(pq.h) == 0 {
		return nil
	}
	return heap.Pop(&pq.h).(*mesh.Vertex)
}

func (pq *priorityQ) minimum() *mesh.Vertex {
	if len(pq.h) == 0 {
		return nil
	}
	return pq.h[0]
}

func (pq *priorityQ) delete(v *mesh.Vertex) {
	if v.PQHandle == noHandle {
		return
	}
	heap.Remove(&pq.h, v.PQHandle)
}

func (pq *priorityQ) isEmpty() bool {
	return len(pq.h) == 0
}
