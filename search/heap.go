// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

// labelHeap is a container/heap.Interface over labels ordered by
// f-cost, with ties broken by insertion sequence (FIFO) for
// deterministic results — grounded on path/a_star.go's aStarQueue, but
// without its indexList/update machinery: lazy deletion means a
// cheaper label for an already-open vertex is simply pushed again
// rather than updated in place, so no id-to-heap-slot back-reference
// is needed.
type labelHeap []label

func (h labelHeap) Len() int { return len(h) }

func (h labelHeap) Less(i, j int) bool {
	if h[i].fCost != h[j].fCost {
		return h[i].fCost < h[j].fCost
	}
	return h[i].seq < h[j].seq
}

func (h labelHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *labelHeap) Push(x any) {
	*h = append(*h, x.(label))
}

func (h *labelHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
