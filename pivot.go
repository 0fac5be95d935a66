package bmssp

import (
	"math"

	"github.com/soniakeys/bits"
)

// PivotResult is the output of FindPivots: Candidates are every vertex
// within the bound, Pivots are the subset judged likely to dominate a
// large share of the remaining search (§4.8).
type PivotResult struct {
	Candidates []int
	Pivots     []int
}

// FindPivots is an experimental, advisory helper: it is not reachable from
// SSSP, SSSPF32, SSSPF64, Run, or RunWithState, and no invariant in this
// package depends on its output. It builds the candidate set W of
// vertices whose current distance is finite and at most bound, then
// flags a candidate as a pivot when its out-degree exceeds n/t, a
// generalization, via params.T, of the reference implementation's fixed
// n/4 threshold (original_source/rust/bmssp-core/src/pivot.rs). dist is
// read through a private copy so the caller's slice is never mutated.
func FindPivots[W Float](graph *CsrGraph, weights []W, dist []W, enabled []bool, bound W, params Params) PivotResult {
	n := graph.NumVertices()

	local := make([]W, n)
	copy(local, dist)

	threshold := params.T
	if threshold < 1 {
		threshold = 1
	}
	minDegree := n / threshold

	inBound := bits.New(n)
	for u := 0; u < n; u++ {
		if !math.IsInf(float64(local[u]), 1) && local[u] <= bound {
			inBound.SetBit(u, 1)
		}
	}

	var result PivotResult
	for u := inBound.OneFrom(0); u >= 0; u = inBound.OneFrom(u + 1) {
		result.Candidates = append(result.Candidates, u)

		start, end := graph.EdgeRange(u)
		if end-start > minDegree {
			result.Pivots = append(result.Pivots, u)
		}
	}

	_ = weights // reserved: a future bounded-relaxation pass would consume it
	return result
}
