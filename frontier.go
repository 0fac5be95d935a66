package bmssp

// HeapEntry is a (vertex, distance) pair extracted from a block-heap
// frontier (§3 "block-heap entry").
type HeapEntry[W Float] struct {
	Vertex   int
	Distance W
}

// Frontier is the contract both block-heap implementations satisfy (§4.4):
// push, decrease-key, and block-wise minimum extraction. BMSSP's relax
// steps (relaxBlock, parallelRelaxBlock) are written against this
// interface; Run and RunWithState always back them with a FastBlockHeap.
type Frontier[W Float] interface {
	// Push sets vertex's current distance, regardless of any prior value.
	Push(vertex int, distance W)
	// DecreaseKey is a no-op unless vertex is absent or newDistance is
	// strictly smaller than its current distance, in which case it behaves
	// like Push.
	DecreaseKey(vertex int, newDistance W)
	// PopBlock removes the min(maxSize, size) entries with smallest
	// distance, sorted ascending, and reports the smallest remaining
	// distance (hasNext is false once the frontier is empty).
	PopBlock(maxSize int) (block []HeapEntry[W], nextThreshold W, hasNext bool)
	IsEmpty() bool
	MinDistance() (distance W, ok bool)
}
