package bmssp

import "math"

// BmsspState holds the buffers one BMSSP run needs, so repeated calls
// against graphs of similar size pay for allocation once instead of per
// call (§4.7). Grounded on the reference implementation's BmsspState
// (original_source/rust/bmssp-core/src/bmssp.rs).
type BmsspState[W Float] struct {
	dist []W
	pred []int
	heap *FastBlockHeap[W]
}

// NewBmsspState returns a state sized for graphs with up to n vertices.
func NewBmsspState[W Float](n int) *BmsspState[W] {
	s := &BmsspState[W]{heap: NewFastBlockHeap[W]()}
	s.grow(n)
	return s
}

// Reset re-initializes the state for a graph with n vertices, growing its
// buffers if they are currently too small. Existing capacity is reused
// rather than reallocated.
func (s *BmsspState[W]) Reset(n int) {
	s.grow(n)
	inf := W(math.Inf(1))
	for v := 0; v < n; v++ {
		s.dist[v] = inf
		s.pred[v] = Undefined
	}
	s.heap.Reset()
}

func (s *BmsspState[W]) grow(n int) {
	if len(s.dist) < n {
		grown := make([]W, n)
		copy(grown, s.dist)
		s.dist = grown

		grownPred := make([]int, n)
		copy(grownPred, s.pred)
		s.pred = grownPred
	}
}

// Distances returns the state's distance buffer. Its length is the largest
// vertex count the state has been sized for; only the first n entries, n
// being the most recent run's vertex count, belong to that run.
func (s *BmsspState[W]) Distances() []W { return s.dist }

// Predecessors returns the state's predecessor buffer. Its length is the
// largest vertex count the state has been sized for; only the first n
// entries, n being the most recent run's vertex count, belong to that run.
func (s *BmsspState[W]) Predecessors() []int { return s.pred }

// RunWithState computes BMSSP using state's reusable buffers instead of
// allocating fresh ones, sharing execBMSSP with Run so the two produce
// bit-identical results for the same inputs (§4.7).
func RunWithState[W Float](state *BmsspState[W], graph *CsrGraph, weights []W, source int, opts ...Option) error {
	cfg := newRunConfig(opts)
	if err := Validate[W](graph, weights, source, cfg.enabled); err != nil {
		return err
	}

	n := graph.NumVertices()
	state.Reset(n)
	execBMSSP(graph, weights, source, cfg, state.dist[:n], state.pred[:n], state.heap)
	return nil
}
