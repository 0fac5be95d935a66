package bmssp

// Float is the constraint satisfied by the two precision specializations
// the kernel supports at its boundary (f32 and f64); see Result, SSSPF32
// and SSSPF64.
type Float interface {
	~float32 | ~float64
}

// Undefined is the sentinel predecessor value for "no predecessor": either
// the vertex is unreachable, or it has not yet been relaxed.
const Undefined = -1
