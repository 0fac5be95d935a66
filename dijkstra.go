package bmssp

import (
	"container/heap"
	"math"
)

// dijkstraItem is a node's live entry in the priority queue; index lets
// heap.Fix locate it in O(log n) for decrease-key, the same approach the
// teacher's own Dijkstra implementation uses.
type dijkstraItem[W Float] struct {
	vertex int
	key    W
	index  int
}

type dijkstraQueue[W Float] []*dijkstraItem[W]

func (q dijkstraQueue[W]) Len() int           { return len(q) }
func (q dijkstraQueue[W]) Less(i, j int) bool { return keyLess(q[i].key, q[j].key) }
func (q dijkstraQueue[W]) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *dijkstraQueue[W]) Push(x interface{}) {
	item := x.(*dijkstraItem[W])
	item.index = len(*q)
	*q = append(*q, item)
}

func (q *dijkstraQueue[W]) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]
	return item
}

// Dijkstra computes the reference label-setting single-source shortest
// path labeling used as the correctness oracle for BMSSP (§4.5). It
// assumes graph, weights, source and enabled have already been validated
// (see Validate); it performs no validation of its own.
func Dijkstra[W Float](graph *CsrGraph, weights []W, source int, enabled []bool) (dist []W, pred []int) {
	n := graph.NumVertices()
	dist = make([]W, n)
	pred = make([]int, n)
	items := make([]*dijkstraItem[W], n)

	inf := W(math.Inf(1))
	for v := 0; v < n; v++ {
		dist[v] = inf
		pred[v] = Undefined
		items[v] = &dijkstraItem[W]{vertex: v, key: inf}
	}
	dist[source] = 0
	pred[source] = source
	items[source].key = 0

	pq := make(dijkstraQueue[W], 0, n)
	for _, it := range items {
		heap.Push(&pq, it)
	}

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*dijkstraItem[W])
		u := item.vertex
		if item.key > dist[u] {
			continue // stale: a shorter path to u was already found
		}

		start, end := graph.EdgeRange(u)
		for eid, v := range graph.Indices()[start:end] {
			edgeIdx := start + eid
			if enabled != nil && !enabled[edgeIdx] {
				continue
			}
			nd := dist[u] + weights[edgeIdx]
			if nd < dist[v] {
				dist[v] = nd
				pred[v] = u
				if items[v].index >= 0 {
					items[v].key = nd
					heap.Fix(&pq, items[v].index)
				}
			}
		}
	}
	return dist, pred
}
