// SPDX-License-Identifier: MIT

package msf

import (
	"container/heap"
)

// Prim computes a minimum spanning forest by growing a tree with a min-heap
// from every vertex not reached by an earlier tree, in ascending id order.
//
// Steps:
//  1. Validate n and every endpoint; build adjacency lists without self-loops.
//  2. For each unvisited root: mark it, push its incident edges.
//  3. Pop the lightest edge; skip it if its far end is visited, otherwise
//     keep it, mark the far end and push that vertex's edges.
//
// Complexity: O(E log E). Memory: O(V + E).
func Prim(n int, edges []Edge) ([]Edge, int64, error) {
	// 1. Validate input and index edges per vertex.
	if err := validate(n, edges); err != nil {
		return nil, 0, err
	}
	adj := make([][]Edge, n)
	for _, e := range edges {
		if e.From == e.To {
			continue // loops never enter a spanning forest
		}
		// Store each undirected edge once per endpoint, oriented outward.
		adj[e.From] = append(adj[e.From], e)
		adj[e.To] = append(adj[e.To], Edge{From: e.To, To: e.From, Weight: e.Weight})
	}

	visited := make([]bool, n)             // vertices already inside some tree
	forest := make([]Edge, 0, max(n-1, 0)) // kept edges, in the order Prim picks them
	var total int64                        // running weight of kept edges
	pq := &edgePQ{}                        // frontier edges, lightest on top

	// visit marks v and queues every edge leading out of the tree.
	visit := func(v int) {
		visited[v] = true
		for _, e := range adj[v] {
			if !visited[e.To] { // edges back into the tree are useless
				heap.Push(pq, e)
			}
		}
	}

	// 2. One tree per component.
	for root := 0; root < n; root++ {
		if visited[root] {
			continue // already spanned by an earlier tree
		}
		visit(root) // seed a new tree for this component

		// 3. Grow until the component is exhausted.
		for pq.Len() > 0 {
			e := heap.Pop(pq).(Edge)
			if visited[e.To] {
				continue // stale: far end was reached by a lighter edge
			}
			forest = append(forest, e)
			total += e.Weight
			visit(e.To)
		}
	}

	return forest, total, nil
}

// edgePQ implements heap.Interface for a min-heap of edges ordered by Weight.
type edgePQ []Edge

func (pq edgePQ) Len() int           { return len(pq) }
func (pq edgePQ) Less(i, j int) bool { return pq[i].Weight < pq[j].Weight }
func (pq edgePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x, which must be an Edge. Called by heap.Push.
func (pq *edgePQ) Push(x any) { *pq = append(*pq, x.(Edge)) }

// Pop removes the last element. Called by heap.Pop.
func (pq *edgePQ) Pop() any {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]

	return e
}
