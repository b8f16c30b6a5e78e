// SPDX-License-Identifier: MIT

package msf

import (
	"sort"
)

// Kruskal computes a minimum spanning forest of the undirected graph with
// vertices 0..n-1 and the given edges.
//
// Steps:
//  1. Validate n and every endpoint.
//  2. Copy the edges, skipping self-loops, and stable-sort them by weight so
//     equal weights keep their input order.
//  3. Walk the sorted edges; keep an edge when its endpoints lie in different
//     union-find sets and merge the sets.
//  4. Stop early once n-1 edges are kept.
//
// Complexity: O(E log E + α(V)·E). Memory: O(V + E).
func Kruskal(n int, edges []Edge) ([]Edge, int64, error) {
	// 1. Validate input.
	if err := validate(n, edges); err != nil {
		return nil, 0, err
	}

	// 2. Filter self-loops and sort by weight.
	sorted := make([]Edge, 0, len(edges)) // copy: the caller's slice stays untouched
	for _, e := range edges {
		if e.From != e.To { // a loop never joins two components
			sorted = append(sorted, e)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight // lighter edges first
	})

	// 3. Union-find over vertex ids.
	dsu := newDisjointSet(n)                // every vertex starts as its own set
	forest := make([]Edge, 0, max(n-1, 0)) // capacity of a spanning forest
	var total int64                        // running weight of kept edges
	for _, e := range sorted {
		if !dsu.union(e.From, e.To) {
			continue // both ends already joined: e would close a cycle
		}
		forest = append(forest, e) // e joins two components: keep it
		total += e.Weight
		// 4. A forest on n vertices has at most n-1 edges.
		if len(forest) == n-1 {
			break
		}
	}

	return forest, total, nil
}

// disjointSet is union-find with path compression and union by rank.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	d := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range d.parent {
		d.parent[i] = i // singleton: each vertex is its own representative
	}

	return d
}

// find returns the representative of x, halving the path on the way up.
func (d *disjointSet) find(x int) int {
	for d.parent[x] != x {
		// Path halving: point x at its grandparent, then step there.
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// union merges the sets of a and b. It returns false if they were already one.
func (d *disjointSet) union(a, b int) bool {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return false // same set: the edge would close a cycle
	}
	// Attach the shallower tree under the deeper one.
	switch {
	case d.rank[ra] < d.rank[rb]:
		d.parent[ra] = rb
	case d.rank[ra] > d.rank[rb]:
		d.parent[rb] = ra
	default:
		// Equal ranks: pick ra as the new root; its tree grows one level.
		d.parent[rb] = ra
		d.rank[ra]++
	}

	return true
}
