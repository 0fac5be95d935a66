package bmssp

import "fmt"

// CsrGraph is an immutable compressed-sparse-row adjacency structure (§3).
//
// Outgoing neighbors of vertex u occupy indices[indptr[u] : indptr[u+1]],
// giving O(1) edge-range lookup and cache-friendly sequential iteration
// over a vertex's out-edges. A CsrGraph is safe to share read-only across
// concurrent algorithm calls once constructed; it is never mutated.
type CsrGraph struct {
	n       int
	indptr  []int
	indices []int
}

// NewCsrGraph validates the CSR invariants (indptr has length n+1, is
// monotonically non-decreasing, every index lies in [0, n), and
// indptr[n] == len(indices)) and returns a constructed graph, or a
// *ValidationError wrapping ErrInvalidGraph describing the first violation.
func NewCsrGraph(n int, indptr, indices []int) (*CsrGraph, error) {
	g := &CsrGraph{n: n, indptr: indptr, indices: indices}
	if err := g.validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *CsrGraph) validate() error {
	if g.n < 0 {
		return &ValidationError{
			Kind:     ErrInvalidGraph,
			Field:    "n",
			Observed: fmt.Sprintf("%d", g.n),
			Expected: "non-negative",
		}
	}
	if len(g.indptr) != g.n+1 {
		return &ValidationError{
			Kind:     ErrInvalidGraph,
			Field:    "indptr",
			Observed: fmt.Sprintf("length %d", len(g.indptr)),
			Expected: fmt.Sprintf("length %d (n+1)", g.n+1),
		}
	}
	for i := 0; i < g.n; i++ {
		if g.indptr[i] > g.indptr[i+1] {
			return &ValidationError{
				Kind:     ErrInvalidGraph,
				Field:    "indptr",
				Observed: fmt.Sprintf("indptr[%d]=%d > indptr[%d]=%d", i, g.indptr[i], i+1, g.indptr[i+1]),
				Expected: "monotonically non-decreasing",
			}
		}
	}
	for i, idx := range g.indices {
		if idx < 0 || idx >= g.n {
			return &ValidationError{
				Kind:     ErrInvalidGraph,
				Field:    "indices",
				Observed: fmt.Sprintf("indices[%d]=%d", i, idx),
				Expected: fmt.Sprintf("in [0, %d)", g.n),
			}
		}
	}
	if len(g.indptr) > 0 {
		last := g.indptr[g.n]
		if last != len(g.indices) {
			return &ValidationError{
				Kind:     ErrInvalidGraph,
				Field:    "indptr",
				Observed: fmt.Sprintf("indptr[n]=%d", last),
				Expected: fmt.Sprintf("len(indices)=%d", len(g.indices)),
			}
		}
	}
	return nil
}

// NumVertices returns n, the number of vertices in the graph.
func (g *CsrGraph) NumVertices() int { return g.n }

// NumEdges returns m, the number of directed edges in the graph.
func (g *CsrGraph) NumEdges() int { return len(g.indices) }

// Indptr returns the underlying row-pointer array. Callers must not mutate it.
func (g *CsrGraph) Indptr() []int { return g.indptr }

// Indices returns the underlying neighbor-index array. Callers must not mutate it.
func (g *CsrGraph) Indices() []int { return g.indices }

// Neighbors returns the out-neighbors of u, in insertion order.
func (g *CsrGraph) Neighbors(u int) []int {
	start, end := g.EdgeRange(u)
	return g.indices[start:end]
}

// EdgeRange returns (start, end) such that edges of u occupy indices[start:end].
func (g *CsrGraph) EdgeRange(u int) (start, end int) {
	return g.indptr[u], g.indptr[u+1]
}
