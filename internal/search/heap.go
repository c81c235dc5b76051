package search

import (
	"container/heap"

	"github.com/declanmills/cube/internal/cube"
)

// node is one priority-queue entry: a frontier cube reached by ops, from
// the start side (fromStart=true) or the goal side.
type node struct {
	c         cube.Cube
	ops       cube.Ops
	fromStart bool
	order     int // insertion order, for stable tie-breaking
}

// nodeHeap orders by (weight, side) ascending - minimum weight first,
// ties favor the start side, further ties favor insertion order. It
// implements container/heap.Interface, the idiomatic Go equivalent of
// the grounding source's BinaryHeap<Reverse<(weight, side)>>.
type nodeHeap []node

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	wi, wj := h[i].ops.Weight(), h[j].ops.Weight()
	if wi != wj {
		return wi < wj
	}
	if h[i].fromStart != h[j].fromStart {
		return h[i].fromStart // start-side breaks ties first
	}
	return h[i].order < h[j].order
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) {
	*h = append(*h, x.(node))
}

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

var _ heap.Interface = (*nodeHeap)(nil)
