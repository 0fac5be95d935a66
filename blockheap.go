package bmssp

// blockCapacity bounds how many entries a single block holds before it is
// split in two. Tuned, like the reference implementation's
// DEFAULT_BLOCK_BYTES, to keep a block roughly cache-line-friendly rather
// than to any exact byte budget.
const blockCapacity = 256

type blockEntry[W Float] struct {
	key    W
	vertex int
}

type entryLocation[W Float] struct {
	distance W
	blockIdx int
	entryIdx int
}

// BlockHeap is the "ordered-set form" of the block-heap contract in §4.4:
// vertices are kept in a sequence of sorted blocks (a poor man's balanced
// ordered container) alongside a vertex -> location map used to find and
// remove a vertex's current entry. Insertion points are found by a linear
// scan over the blocks and then within the chosen block, and whenever a
// block is emptied or split, the locations of every entry in the blocks
// after it are rewritten, so a push or pop_block can touch the whole
// frontier.
// Ported from the reference implementation's BlockHeap
// (original_source/rust/bmssp-core/src/block_heap.rs).
type BlockHeap[W Float] struct {
	blocks    [][]blockEntry[W]
	locations map[int]entryLocation[W]
}

var _ Frontier[float64] = (*BlockHeap[float64])(nil)

// NewBlockHeap returns an empty block heap.
func NewBlockHeap[W Float]() *BlockHeap[W] {
	return &BlockHeap[W]{locations: make(map[int]entryLocation[W])}
}

// Reset empties the heap for reuse without discarding its backing storage.
func (h *BlockHeap[W]) Reset() {
	h.blocks = h.blocks[:0]
	for v := range h.locations {
		delete(h.locations, v)
	}
}

// Push implements Frontier.
func (h *BlockHeap[W]) Push(vertex int, distance W) {
	h.removeVertex(vertex)
	h.insertVertex(vertex, distance)
}

// DecreaseKey implements Frontier.
func (h *BlockHeap[W]) DecreaseKey(vertex int, newDistance W) {
	if loc, ok := h.locations[vertex]; ok {
		if newDistance < loc.distance {
			h.Push(vertex, newDistance)
		}
		return
	}
	h.Push(vertex, newDistance)
}

// PopBlock implements Frontier.
func (h *BlockHeap[W]) PopBlock(maxSize int) ([]HeapEntry[W], W, bool) {
	block := make([]HeapEntry[W], 0, maxSize)
	for len(block) < maxSize && len(h.blocks) > 0 {
		take := maxSize - len(block)
		if take > len(h.blocks[0]) {
			take = len(h.blocks[0])
		}
		drained := h.blocks[0][:take]
		h.blocks[0] = h.blocks[0][take:]
		for _, e := range drained {
			delete(h.locations, e.vertex)
			block = append(block, HeapEntry[W]{Vertex: e.vertex, Distance: e.key})
		}
		if len(h.blocks[0]) == 0 {
			h.blocks = h.blocks[1:]
			h.refreshLocationsFrom(0)
		} else {
			h.refreshBlockLocations(0)
		}
	}
	if len(h.blocks) > 0 && len(h.blocks[0]) > 0 {
		return block, h.blocks[0][0].key, true
	}
	var zero W
	return block, zero, false
}

// IsEmpty implements Frontier.
func (h *BlockHeap[W]) IsEmpty() bool { return len(h.blocks) == 0 }

// MinDistance implements Frontier.
func (h *BlockHeap[W]) MinDistance() (W, bool) {
	if len(h.blocks) == 0 || len(h.blocks[0]) == 0 {
		var zero W
		return zero, false
	}
	return h.blocks[0][0].key, true
}

func (h *BlockHeap[W]) removeVertex(vertex int) {
	loc, ok := h.locations[vertex]
	if !ok {
		return
	}
	delete(h.locations, vertex)
	if loc.blockIdx >= len(h.blocks) {
		return
	}
	block := h.blocks[loc.blockIdx]
	if loc.entryIdx >= len(block) {
		return
	}
	h.blocks[loc.blockIdx] = append(block[:loc.entryIdx], block[loc.entryIdx+1:]...)
	if len(h.blocks[loc.blockIdx]) == 0 {
		h.blocks = append(h.blocks[:loc.blockIdx], h.blocks[loc.blockIdx+1:]...)
		h.refreshLocationsFrom(loc.blockIdx)
	} else {
		h.refreshBlockLocations(loc.blockIdx)
	}
}

func (h *BlockHeap[W]) insertVertex(vertex int, distance W) {
	entry := blockEntry[W]{key: distance, vertex: vertex}
	if len(h.blocks) == 0 {
		h.blocks = append(h.blocks, []blockEntry[W]{entry})
		h.locations[vertex] = entryLocation[W]{distance: distance, blockIdx: 0, entryIdx: 0}
		return
	}

	blockIdx := -1
	for i, b := range h.blocks {
		if !keyLess(b[len(b)-1].key, distance) {
			blockIdx = i
			break
		}
	}
	if blockIdx == -1 {
		blockIdx = len(h.blocks) - 1
	}

	block := h.blocks[blockIdx]
	entryPos := len(block)
	for i, e := range block {
		if !keyLess(e.key, distance) {
			entryPos = i
			break
		}
	}
	newBlock := make([]blockEntry[W], 0, len(block)+1)
	newBlock = append(newBlock, block[:entryPos]...)
	newBlock = append(newBlock, entry)
	newBlock = append(newBlock, block[entryPos:]...)
	h.blocks[blockIdx] = newBlock
	h.refreshBlockLocations(blockIdx)

	if len(newBlock) > blockCapacity {
		splitIdx := len(newBlock) / 2
		tail := append([]blockEntry[W]{}, newBlock[splitIdx:]...)
		h.blocks[blockIdx] = newBlock[:splitIdx]
		h.blocks = append(h.blocks, nil)
		copy(h.blocks[blockIdx+2:], h.blocks[blockIdx+1:])
		h.blocks[blockIdx+1] = tail
		h.refreshLocationsFrom(blockIdx)
	}
}

func (h *BlockHeap[W]) refreshBlockLocations(blockIdx int) {
	if blockIdx >= len(h.blocks) {
		return
	}
	for entryIdx, e := range h.blocks[blockIdx] {
		h.locations[e.vertex] = entryLocation[W]{distance: e.key, blockIdx: blockIdx, entryIdx: entryIdx}
	}
}

func (h *BlockHeap[W]) refreshLocationsFrom(startIdx int) {
	for i := startIdx; i < len(h.blocks); i++ {
		h.refreshBlockLocations(i)
	}
}
