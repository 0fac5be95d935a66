package bmssp

import (
	"fmt"
	"math"
)

// Validate checks edge weights, the source vertex, and an optional enabled
// mask against graph, per §4.2. Pass a nil enabled slice when no mask is
// used. All validation happens up front; on success the caller's algorithm
// code may assume every precondition holds.
func Validate[W Float](graph *CsrGraph, weights []W, source int, enabled []bool) error {
	if err := ValidateWeights(graph, weights); err != nil {
		return err
	}
	if err := ValidateSource(graph, source); err != nil {
		return err
	}
	if enabled != nil {
		if err := ValidateEnabledMask(graph, enabled); err != nil {
			return err
		}
	}
	return nil
}

// ValidateWeights checks that weights has one entry per edge and that every
// entry is finite and non-negative.
func ValidateWeights[W Float](graph *CsrGraph, weights []W) error {
	if len(weights) != graph.NumEdges() {
		return &ValidationError{
			Kind:     ErrInvalidWeights,
			Field:    "weights",
			Observed: fmt.Sprintf("length %d", len(weights)),
			Expected: fmt.Sprintf("length %d (num_edges)", graph.NumEdges()),
		}
	}
	for i, w := range weights {
		f := float64(w)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return &ValidationError{
				Kind:     ErrInvalidWeights,
				Field:    "weights",
				Observed: fmt.Sprintf("weights[%d]=%v", i, w),
				Expected: "finite",
			}
		}
		if w < 0 {
			return &ValidationError{
				Kind:     ErrInvalidWeights,
				Field:    "weights",
				Observed: fmt.Sprintf("weights[%d]=%v", i, w),
				Expected: "non-negative",
			}
		}
	}
	return nil
}

// ValidateSource checks that source names an existing vertex.
func ValidateSource(graph *CsrGraph, source int) error {
	if source < 0 || source >= graph.NumVertices() {
		return &ValidationError{
			Kind:     ErrInvalidSource,
			Field:    "source",
			Observed: fmt.Sprintf("%d", source),
			Expected: fmt.Sprintf("in [0, %d)", graph.NumVertices()),
		}
	}
	return nil
}

// ValidateEnabledMask checks that enabled has one entry per edge.
func ValidateEnabledMask(graph *CsrGraph, enabled []bool) error {
	if len(enabled) != graph.NumEdges() {
		return &ValidationError{
			Kind:     ErrInvalidEnabledMask,
			Field:    "enabled",
			Observed: fmt.Sprintf("length %d", len(enabled)),
			Expected: fmt.Sprintf("length %d (num_edges)", graph.NumEdges()),
		}
	}
	return nil
}
