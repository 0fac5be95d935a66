package bmssp

import "container/heap"

type fastHeapItem[W Float] struct {
	key    W
	vertex int
}

type fastHeapImpl[W Float] []fastHeapItem[W]

func (q fastHeapImpl[W]) Len() int            { return len(q) }
func (q fastHeapImpl[W]) Less(i, j int) bool  { return keyLess(q[i].key, q[j].key) }
func (q fastHeapImpl[W]) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *fastHeapImpl[W]) Push(x interface{}) { *q = append(*q, x.(fastHeapItem[W])) }
func (q *fastHeapImpl[W]) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// FastBlockHeap is the "lazy binary heap form" of the block-heap contract
// in §4.4: a classic container/heap priority queue whose entries may be
// stale. Push appends a new entry and overwrites the vertex -> distance
// map; PopBlock discards entries whose stored key no longer matches the
// current map before accepting them into a block. This makes Push
// O(log n) and amortizes decrease-key, at the cost of carrying stale
// entries until they are popped. Ported from the reference implementation's
// FastBlockHeap (original_source/rust/bmssp-core/src/block_heap.rs), using
// container/heap the way the teacher's own Dijkstra implementation and
// github.com/katalvlaran/lvlath's dijkstra package do.
type FastBlockHeap[W Float] struct {
	heap      fastHeapImpl[W]
	distances map[int]W
}

var _ Frontier[float64] = (*FastBlockHeap[float64])(nil)

// NewFastBlockHeap returns an empty fast block heap.
func NewFastBlockHeap[W Float]() *FastBlockHeap[W] {
	return &FastBlockHeap[W]{distances: make(map[int]W)}
}

// Reset empties the heap for reuse without discarding its backing storage.
func (h *FastBlockHeap[W]) Reset() {
	h.heap = h.heap[:0]
	for v := range h.distances {
		delete(h.distances, v)
	}
}

// Push implements Frontier.
func (h *FastBlockHeap[W]) Push(vertex int, distance W) {
	heap.Push(&h.heap, fastHeapItem[W]{key: distance, vertex: vertex})
	h.distances[vertex] = distance
}

// DecreaseKey implements Frontier.
func (h *FastBlockHeap[W]) DecreaseKey(vertex int, newDistance W) {
	if old, ok := h.distances[vertex]; ok {
		if newDistance < old {
			h.Push(vertex, newDistance)
		}
		return
	}
	h.Push(vertex, newDistance)
}

// PopBlock implements Frontier. Stale heap entries encountered along the
// way, including while searching for the next threshold, are discarded
// permanently; they can never be the current entry for their vertex again.
func (h *FastBlockHeap[W]) PopBlock(maxSize int) ([]HeapEntry[W], W, bool) {
	block := make([]HeapEntry[W], 0, maxSize)
	for len(block) < maxSize && h.heap.Len() > 0 {
		item := heap.Pop(&h.heap).(fastHeapItem[W])
		cur, ok := h.distances[item.vertex]
		if !ok || cur != item.key {
			continue // stale: superseded by a later push/decrease-key
		}
		delete(h.distances, item.vertex)
		block = append(block, HeapEntry[W]{Vertex: item.vertex, Distance: item.key})
	}
	for h.heap.Len() > 0 {
		top := h.heap[0]
		if cur, ok := h.distances[top.vertex]; ok && cur == top.key {
			return block, top.key, true
		}
		heap.Pop(&h.heap)
	}
	var zero W
	return block, zero, false
}

// IsEmpty implements Frontier.
func (h *FastBlockHeap[W]) IsEmpty() bool { return len(h.distances) == 0 }

// MinDistance implements Frontier.
func (h *FastBlockHeap[W]) MinDistance() (W, bool) {
	var (
		min W
		ok  bool
	)
	for _, d := range h.distances {
		if !ok || d < min {
			min, ok = d, true
		}
	}
	return min, ok
}
