package bmssp

import "math"

// smallGraphFallback relaxes every enabled edge at most n times, which is
// sufficient for the tiny graphs BMSSP special-cases (§4.6): block
// processing has nothing to amortize below n=5, so plain repeated
// relaxation is both simpler and exact.
func smallGraphFallback[W Float](graph *CsrGraph, weights []W, enabled []bool, dist []W, pred []int) {
	n := graph.NumVertices()
	indices := graph.Indices()
	for iter := 0; iter < n; iter++ {
		changed := false
		for u := 0; u < n; u++ {
			if math.IsInf(float64(dist[u]), 1) {
				continue
			}
			start, end := graph.EdgeRange(u)
			for eid, v := range indices[start:end] {
				edgeIdx := start + eid
				if enabled != nil && !enabled[edgeIdx] {
					continue
				}
				nd := dist[u] + weights[edgeIdx]
				if nd < dist[v] {
					dist[v] = nd
					pred[v] = u
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}
}

// relaxBlock applies one round of edge relaxation for every vertex in
// block, pushing any vertex whose distance improves back onto heap.
// This is the serial relax function described in §5; WithParallel swaps
// it out for parallelRelaxBlock.
func relaxBlock[W Float](graph *CsrGraph, weights []W, enabled []bool, dist []W, pred []int, heap Frontier[W], block []HeapEntry[W]) {
	indices := graph.Indices()
	for _, entry := range block {
		u, d := entry.Vertex, entry.Distance
		if d > dist[u] {
			continue // stale: a shorter path to u was already accepted
		}
		start, end := graph.EdgeRange(u)
		for eid, v := range indices[start:end] {
			edgeIdx := start + eid
			if enabled != nil && !enabled[edgeIdx] {
				continue
			}
			nd := dist[u] + weights[edgeIdx]
			if nd < dist[v] {
				dist[v] = nd
				pred[v] = u
				heap.Push(v, nd)
			}
		}
	}
}

// relaxCandidate is a tentative improvement discovered against a read-only
// dist snapshot; candidates from different source vertices may race on the
// same target, so they are reconciled and applied serially after the fan
// out, never written to dist from a goroutine directly.
type relaxCandidate[W Float] struct {
	vertex int
	pred   int
	dist   W
}

// parallelRelaxBlock fans a block's relaxation work out across workers
// goroutines, each scanning a disjoint slice of the block against a
// read-only snapshot of dist, then applies every accepted improvement
// serially (§5). It only pays off once a block holds enough vertices to
// amortize goroutine overhead; small blocks fall back to the serial path.
func parallelRelaxBlock[W Float](graph *CsrGraph, weights []W, enabled []bool, dist []W, pred []int, heap Frontier[W], block []HeapEntry[W], workers int) {
	if workers < 2 || len(block) < workers*2 {
		relaxBlock(graph, weights, enabled, dist, pred, heap, block)
		return
	}

	indices := graph.Indices()
	snapshot := dist // read-only for the duration of the fan-out
	results := make(chan []relaxCandidate[W], workers)

	chunk := (len(block) + workers - 1) / workers
	active := 0
	for w := 0; w < workers; w++ {
		lo := w * chunk
		if lo >= len(block) {
			break
		}
		hi := lo + chunk
		if hi > len(block) {
			hi = len(block)
		}
		active++
		go func(slice []HeapEntry[W]) {
			var local []relaxCandidate[W]
			for _, entry := range slice {
				u, d := entry.Vertex, entry.Distance
				if d > snapshot[u] {
					continue
				}
				start, end := graph.EdgeRange(u)
				for eid, v := range indices[start:end] {
					edgeIdx := start + eid
					if enabled != nil && !enabled[edgeIdx] {
						continue
					}
					nd := snapshot[u] + weights[edgeIdx]
					if nd < snapshot[v] {
						local = append(local, relaxCandidate[W]{vertex: v, pred: u, dist: nd})
					}
				}
			}
			results <- local
		}(block[lo:hi])
	}

	collected := make([][]relaxCandidate[W], 0, active)
	for i := 0; i < active; i++ {
		collected = append(collected, <-results)
	}
	for _, local := range collected {
		for _, c := range local {
			if c.dist < dist[c.vertex] {
				dist[c.vertex] = c.dist
				pred[c.vertex] = c.pred
				heap.Push(c.vertex, c.dist)
			}
		}
	}
}

// execBMSSP is the shared engine behind Run and RunWithState: it assumes
// graph/weights/source/enabled have already been validated and dist/pred
// are sized to n and freshly initialized. It implements §4.6's
// block-frontier loop, backed by a FastBlockHeap (§4.4), with n<=4 routed
// to the small-graph fallback. Grounded directly on the reference
// implementation's simplified bmssp_sssp_with_preds
// (original_source/rust/bmssp-core/src/bmssp.rs).
func execBMSSP[W Float](graph *CsrGraph, weights []W, source int, cfg runConfig, dist []W, pred []int, heap *FastBlockHeap[W]) {
	n := graph.NumVertices()
	dist[source] = 0
	pred[source] = source

	if n <= 4 {
		smallGraphFallback(graph, weights, cfg.enabled, dist, pred)
		return
	}

	params := DeriveParams(n)
	heap.Reset()
	heap.Push(source, 0)

	for !heap.IsEmpty() {
		block, _, _ := heap.PopBlock(params.K)
		if cfg.parallel {
			parallelRelaxBlock(graph, weights, cfg.enabled, dist, pred, heap, block, cfg.workers)
		} else {
			relaxBlock(graph, weights, cfg.enabled, dist, pred, heap, block)
		}
	}
}

func initDistPred[W Float](n int) ([]W, []int) {
	dist := make([]W, n)
	pred := make([]int, n)
	inf := W(math.Inf(1))
	for v := 0; v < n; v++ {
		dist[v] = inf
		pred[v] = Undefined
	}
	return dist, pred
}

// Run computes BMSSP single-source shortest path distances (§4) from
// source over graph with the given edge weights. Predecessors are only
// populated when WithPredecessors is supplied; otherwise the returned
// slice is nil, matching the boundary contract in §6.
func Run[W Float](graph *CsrGraph, weights []W, source int, opts ...Option) ([]W, []int, error) {
	cfg := newRunConfig(opts)
	if err := Validate[W](graph, weights, source, cfg.enabled); err != nil {
		return nil, nil, err
	}

	dist, pred := initDistPred[W](graph.NumVertices())
	heap := NewFastBlockHeap[W]()
	execBMSSP(graph, weights, source, cfg, dist, pred, heap)

	if !cfg.returnPred {
		return dist, nil, nil
	}
	return dist, pred, nil
}
