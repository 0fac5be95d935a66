package bmssp

import "math"

// Params controls the recursion/block-extraction granularity of BMSSP (§4.3).
// Only K is consumed by the required block-frontier engine in Run. T and L
// are derived from the same logarithmic factor and carried alongside it;
// T is consumed by the experimental pivot helper (FindPivots), and L is
// not read anywhere in this package.
type Params struct {
	T int
	K int
	L int
}

// DeriveParams computes {t, k, l} purely from the vertex count n, following
// the reference implementation's logarithmic scaling (original_source/rust
// bmssp-core/src/params.rs) for T and L, and spec.md §4.3 exactly for K.
func DeriveParams(n int) Params {
	if n == 0 {
		return Params{}
	}
	if n <= 4 {
		return Params{T: 2, K: 2, L: 1}
	}
	l := math.Max(1, math.Log(float64(n)))
	return Params{
		T: clampInt(int(math.Ceil(2.0*l)), 2, n),
		K: clampInt(int(math.Ceil(1.5*l)), 2, n),
		L: maxInt(1, int(math.Ceil(1.2*l))),
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
