package bmssp

import (
	"math"
	"testing"
)

func TestSSSP_ChainF64(t *testing.T) {
	result, err := SSSPF64(
		[]int{0, 1, 2, 3, 3},
		[]int{1, 2, 3},
		[]float64{1.0, 2.0, 3.0},
		0, nil, true,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{0, 1, 3, 6}
	for i, w := range want {
		if result.Dist[i] != w {
			t.Errorf("Dist[%d] = %v, want %v", i, result.Dist[i], w)
		}
	}
	if result.Pred[0] != 0 || result.Pred[3] != 2 {
		t.Errorf("Pred = %v, want source-rooted path ending ...->2->3", result.Pred)
	}
}

func TestSSSP_WithoutPredReturnsNilPred(t *testing.T) {
	result, err := SSSPF32([]int{0, 1, 1}, []int{1}, []float32{1.0}, 0, nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Pred != nil {
		t.Errorf("Pred = %v, want nil", result.Pred)
	}
}

func TestSSSP_EnabledMaskDisablesEdge(t *testing.T) {
	enabled := []bool{false, true}
	result, err := SSSPF64([]int{0, 1, 2, 2}, []int{1, 2}, []float64{1.0, 2.0}, 0, enabled, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsInf(result.Dist[1], 1) || !math.IsInf(result.Dist[2], 1) {
		t.Errorf("Dist = %v, want [0 +Inf +Inf]", result.Dist)
	}
}

func TestSSSP_InvalidGraphReturnsError(t *testing.T) {
	_, err := SSSPF64([]int{0, 1}, []int{0, 0}, []float64{1, 1}, 0, nil, false)
	if err == nil {
		t.Fatal("expected an error for malformed CSR arrays, got nil")
	}
}

func TestSSSP_NegativeWeightRejected(t *testing.T) {
	_, err := SSSPF64([]int{0, 1, 1}, []int{1}, []float64{-1.0}, 0, nil, false)
	if err == nil {
		t.Fatal("expected an error for a negative weight, got nil")
	}
}

func TestSSSP_F32AndF64Agree(t *testing.T) {
	indptr := []int{0, 2, 3, 3}
	indices := []int{1, 2, 2}

	r32, err := SSSPF32(indptr, indices, []float32{1, 2, 1}, 0, nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r64, err := SSSPF64(indptr, indices, []float64{1, 2, 1}, 0, nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range r32.Dist {
		if float64(r32.Dist[i]) != r64.Dist[i] {
			t.Errorf("Dist[%d]: f32=%v f64=%v, want agreement", i, r32.Dist[i], r64.Dist[i])
		}
	}
}
