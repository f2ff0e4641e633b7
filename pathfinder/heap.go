package pathfinder

import "container/heap"

// openItem is one entry in the A* open set. g and dir are the values in
// effect at the moment this entry was pushed; since we use lazy deletion
// (push-on-relax instead of decrease-key), a cell may have
// several stale entries in the heap. Only the first one popped — the
// cheapest, thanks to heap ordering — is trusted; later pops of the same
// cell are skipped via the closed set.
type openItem struct {
	idx    int // row-major encoded cell: y*width+x
	g      float64
	f      float64 // g + heuristic, the heap key
	dir    int     // direction used to enter this cell, or noDirection
	parent int     // encoded index of the predecessor, or -1 for the start
	seq    int     // insertion order, secondary sort key for deterministic ties
	index  int     // heap.Interface bookkeeping
}

// openHeap is a binary min-heap ordered by (f, seq) ascending: lower f wins,
// and among equal f the earlier-enqueued entry wins, which is what gives the
// right/left/down/up neighbour generation order in pathfinder.go its
// deterministic tie-break effect.
type openHeap []*openItem

func (h openHeap) Len() int { return len(h) }

func (h openHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].seq < h[j].seq
}

func (h openHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *openHeap) Push(x interface{}) {
	item := x.(*openItem)
	item.index = len(*h)
	*h = append(*h, item)
}

func (h *openHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]
	return item
}

var _ heap.Interface = (*openHeap)(nil)
