package bmssp_test

import (
	"fmt"

	"github.com/blockfrontier/bmssp"
)

// ExampleSSSP demonstrates computing shortest-path distances from raw CSR
// arrays, the stable entry point at the module boundary.
func ExampleSSSP() {
	// 0 -> 1 (2.0), 0 -> 2 (5.0), 1 -> 3 (4.0), 2 -> 3 (1.0)
	indptr := []int{0, 2, 3, 4, 4}
	indices := []int{1, 2, 3, 3}
	weights := []float64{2.0, 5.0, 4.0, 1.0}

	result, err := bmssp.SSSPF64(indptr, indices, weights, 0, nil, false)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for i, d := range result.Dist {
		fmt.Printf("Node %d: %.0f\n", i, d)
	}

	// Output:
	// Node 0: 0
	// Node 1: 2
	// Node 2: 5
	// Node 3: 6
}

// ExampleRun demonstrates the *CsrGraph-based entry point over a small
// directed grid.
func ExampleRun() {
	// 3x3 grid, edges only pointing right and down.
	// 0 - 1 - 2
	// |   |   |
	// 3 - 4 - 5
	// |   |   |
	// 6 - 7 - 8
	indptr := []int{0, 2, 4, 5, 7, 9, 10, 11, 12, 12}
	indices := []int{1, 3, 2, 4, 5, 4, 6, 5, 7, 8, 7, 8}
	weights := make([]float64, len(indices))
	for i := range weights {
		weights[i] = 1
	}

	graph, err := bmssp.NewCsrGraph(9, indptr, indices)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	dist, _, err := bmssp.Run[float64](graph, weights, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for i, d := range dist {
		fmt.Printf("Node %d: %.0f\n", i, d)
	}

	// Output:
	// Node 0: 0
	// Node 1: 1
	// Node 2: 2
	// Node 3: 1
	// Node 4: 2
	// Node 5: 3
	// Node 6: 2
	// Node 7: 3
	// Node 8: 4
}

// ExampleDijkstra demonstrates the oracle used to validate BMSSP during
// development, over the same graph as ExampleSSSP.
func ExampleDijkstra() {
	indptr := []int{0, 2, 3, 4, 4}
	indices := []int{1, 2, 3, 3}
	weights := []float64{2.0, 5.0, 4.0, 1.0}

	graph, err := bmssp.NewCsrGraph(4, indptr, indices)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	dist, _ := bmssp.Dijkstra[float64](graph, weights, 0, nil)
	for i, d := range dist {
		fmt.Printf("Node %d: %.0f\n", i, d)
	}

	// Output:
	// Node 0: 0
	// Node 1: 2
	// Node 2: 5
	// Node 3: 6
}
