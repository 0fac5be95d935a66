// Package bmssp implements a block-frontier single-source shortest path
// engine for directed graphs with non-negative edge weights, built on a
// compressed-sparse-row (CSR) graph representation.
//
// The package's distinctive contribution is BMSSP (block multi-source
// shortest path), a label-setting SSSP variant that advances the frontier
// of tentative distance labels in blocks of up to k vertices rather than
// one vertex at a time, backed by a block heap that supports push,
// decrease-key, and block-wise minimum extraction. Dijkstra is also
// provided as a correctness oracle: both algorithms agree on distances,
// differing only in predecessor tie-breaks when multiple shortest paths
// exist.
//
// Based on "Breaking the Sorting Barrier for Directed Single-Source
// Shortest Paths" (arXiv:2504.17033).
package bmssp
