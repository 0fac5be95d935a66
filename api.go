package bmssp

// Result is the output of the SSSP boundary functions (§6): Dist always
// holds n entries, Pred is nil unless returnPred was requested, and
// Undefined (-1) marks an unreached vertex's predecessor. Pred[source] is
// source itself.
type Result[W Float] struct {
	Dist []W
	Pred []int
}

// SSSP is the stable external entry point (§6): it accepts the graph as
// raw CSR arrays rather than a constructed *CsrGraph, builds and validates
// the graph internally, and runs BMSSP from source. enabled may be nil.
func SSSP[W Float](indptr, indices []int, weights []W, source int, enabled []bool, returnPred bool) (Result[W], error) {
	graph, err := NewCsrGraph(len(indptr)-1, indptr, indices)
	if err != nil {
		return Result[W]{}, err
	}

	var opts []Option
	if enabled != nil {
		opts = append(opts, WithEnabledMask(enabled))
	}
	if returnPred {
		opts = append(opts, WithPredecessors())
	}

	dist, pred, err := Run(graph, weights, source, opts...)
	if err != nil {
		return Result[W]{}, err
	}
	return Result[W]{Dist: dist, Pred: pred}, nil
}

// SSSPF32 is the float32 specialization of SSSP (§6).
func SSSPF32(indptr, indices []int, weights []float32, source int, enabled []bool, returnPred bool) (Result[float32], error) {
	return SSSP(indptr, indices, weights, source, enabled, returnPred)
}

// SSSPF64 is the float64 specialization of SSSP (§6).
func SSSPF64(indptr, indices []int, weights []float64, source int, enabled []bool, returnPred bool) (Result[float64], error) {
	return SSSP(indptr, indices, weights, source, enabled, returnPred)
}
