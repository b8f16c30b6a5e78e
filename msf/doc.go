// SPDX-License-Identifier: MIT

// Package msf computes minimum spanning forests of undirected, weighted graphs
// over integer vertex ids 0..n-1, both offline and online.
//
// What & Why
//
//   - A minimum spanning forest (MSF) keeps, for every connected component,
//     a spanning tree of minimum total weight. Unlike a spanning tree it
//     always exists, so disconnected input is not an error here.
//
//   - Offline: Kruskal and Prim take the full edge list and return the forest.
//     They serve as the reference answer for the online structure.
//
//   - Online: Incremental accepts edges one at a time and keeps the MSF of all
//     edges seen so far. Each edge becomes its own vertex in an lct.Forest:
//
//     u ── e ── v    value(e) = weight, value(u) = value(v) = math.MinInt64
//
//     so PathMaxVertex(u, v) lands on the heaviest edge of the u..v tree path.
//     A new edge that closes a cycle replaces that edge if it is lighter
//     (cycle property), otherwise it is rejected.
//
// Algorithms Provided
//
//   - Kruskal(n, edges) — stable sort by weight + union-find with path
//     compression and union by rank. O(E log E + α(V)·E).
//   - Prim(n, edges) — min-heap growth from every not yet reached vertex.
//     O(E log E).
//   - Compute(n, edges, opts) — dispatch on Options.Method.
//   - (*Incremental).AddEdge — O(log V) amortized per edge.
//
// Error Conditions
//
//   - ErrNegativeVertices — n < 0.
//   - ErrVertexOutOfRange — an endpoint outside [0, n).
//   - ErrLoop             — Incremental.AddEdge with u == v; offline
//     algorithms skip self-loops instead.
//   - ErrUnknownMethod    — Compute with a method other than MethodKruskal or
//     MethodPrim.
package msf
