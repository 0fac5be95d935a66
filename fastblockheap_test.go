package bmssp

import "testing"

func TestFastBlockHeap_PushAndPopBlockOrdered(t *testing.T) {
	h := NewFastBlockHeap[float64]()
	h.Push(3, 3.0)
	h.Push(1, 1.0)
	h.Push(2, 2.0)

	block, next, hasNext := h.PopBlock(2)
	if len(block) != 2 || block[0].Vertex != 1 || block[1].Vertex != 2 {
		t.Errorf("block = %+v, want [1 2] order", block)
	}
	if !hasNext || next != 3.0 {
		t.Errorf("next = %v hasNext = %v, want 3.0 true", next, hasNext)
	}
}

func TestFastBlockHeap_StaleEntriesDiscarded(t *testing.T) {
	h := NewFastBlockHeap[float64]()
	h.Push(1, 5.0)
	h.Push(1, 1.0) // supersedes the 5.0 entry without removing it from the heap

	block, _, hasNext := h.PopBlock(10)
	if len(block) != 1 {
		t.Fatalf("len(block) = %d, want 1 (stale entry must be discarded)", len(block))
	}
	if block[0].Distance != 1.0 {
		t.Errorf("block[0].Distance = %v, want 1.0", block[0].Distance)
	}
	if hasNext {
		t.Error("hasNext = true, want false")
	}
	if !h.IsEmpty() {
		t.Error("IsEmpty() = false after draining, want true")
	}
}

func TestFastBlockHeap_DecreaseKeyRejectsWorse(t *testing.T) {
	h := NewFastBlockHeap[float64]()
	h.Push(1, 1.0)
	h.DecreaseKey(1, 5.0) // worse: must be a no-op

	d, ok := h.MinDistance()
	if !ok || d != 1.0 {
		t.Errorf("MinDistance() = (%v, %v), want (1.0, true)", d, ok)
	}
}

func TestFastBlockHeap_PopBlockRespectsMaxSize(t *testing.T) {
	h := NewFastBlockHeap[float64]()
	for i := 0; i < 5; i++ {
		h.Push(i, float64(i))
	}
	block, _, hasNext := h.PopBlock(2)
	if len(block) != 2 {
		t.Fatalf("len(block) = %d, want 2", len(block))
	}
	if !hasNext {
		t.Error("hasNext = false, want true (3 entries remain)")
	}
}

func TestFastBlockHeap_IsEmptyInitially(t *testing.T) {
	h := NewFastBlockHeap[float64]()
	if !h.IsEmpty() {
		t.Error("IsEmpty() = false for fresh heap, want true")
	}
	if _, ok := h.MinDistance(); ok {
		t.Error("MinDistance() ok = true for empty heap, want false")
	}
}
