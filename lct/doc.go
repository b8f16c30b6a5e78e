// SPDX-License-Identifier: MIT

// Package lct implements a dynamic forest on link-cut trees: a self-adjusting
// representation that supports edge insertion and deletion online while
// answering path and subtree aggregate queries.
//
// What & Why
//
//   - A Forest holds n vertices with ids 0..n-1, each carrying a Scalar value.
//     Edges are added with Link and removed with Cut; the structure never
//     admits a cycle, so every connected component is a tree.
//   - Path aggregates (Path, PathSum, PathMin, PathMax, PathXor, PathLen) cover
//     the vertices on the unique tree path between two vertices, endpoints
//     included. PathAdd adds a delta to every vertex on such a path.
//   - SubtreeSum sums the values of a vertex and all of its descendants under
//     the tree's current root. MakeRoot re-roots a tree; SubtreeSumFrom does
//     both in one call.
//
// How it works
//
//	Every tree is decomposed into preferred paths. Each path is stored in a
//	splay tree keyed by depth (ancestors to the left). The splay root of a
//	path points to the parent of the path's topmost vertex through a
//	"virtual" edge: the parent does not list it as a child, but keeps it in a
//	virtual-children set and adds its subtree total to virtualSum.
//
//	access(x) splays its way up from x, turning the path root..x into one
//	splay tree. makeRoot(x) accesses x and flips the orientation of that path
//	with a lazy reversal tag. Every public operation is a short composition of
//	these two primitives.
//
//	Lazy tags:
//	  add — pending delta for the node's splay subtree. The node's own value
//	        and aggregates already include it; children do not.
//	  rev — pending left/right swap for the node's splay subtree.
//	Virtual children never receive a pending add: a path update changes only
//	the vertices on the path, never the subtrees hanging off it.
//
// Complexity
//
//   - Link, Cut, Connected, FindRoot, MakeRoot, Path*, PathAdd, SubtreeSum,
//     SetValue, LCA, Parent: O(log n) amortized.
//   - PathXor after a PathAdd on the same region: O(k) for the k path vertices
//     still carrying a stale xor, then O(log n) again. Xor does not distribute
//     over addition, so it is recomputed on demand instead of lazily.
//   - Memory: O(n) plus one small hash set per vertex with virtual children.
//
// Error Conditions
//
//   - Vertex ids outside [0, n) panic: they are caller bugs, not runtime states.
//   - Link on an already connected pair and Cut on a non-edge return false and
//     leave the forest unchanged.
//   - Path queries on vertices in different trees return ok == false.
//
// Concurrency
//
//	A Forest is not safe for concurrent use; even queries rotate nodes.
//	Wrap it with NewSynchronized to guard every operation with one mutex.
package lct
