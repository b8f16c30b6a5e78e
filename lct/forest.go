// SPDX-License-Identifier: MIT

package lct

import (
	"context"
	"fmt"
	"log/slog"
)

// Forest is a dynamic forest over a fixed set of vertices 0..n-1.
// The zero value is not usable; create one with New.
type Forest struct {
	// nodes[0] is the sentinel; vertex u is nodes[u+1].
	nodes []node
	// stack is reused by splay to push tags top-down without allocating.
	stack []int

	components int
	edges      int

	log *slog.Logger
}

// New creates a forest of n isolated vertices.
// New panics if n is negative or if WithValues was given a slice of the
// wrong length.
// Complexity: O(n).
func New(n int, opts ...Option) *Forest {
	if n < 0 {
		panic(fmt.Sprintf("lct: negative vertex count %d", n))
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Values != nil && len(o.Values) != n {
		panic(fmt.Sprintf("lct: %d initial values for %d vertices", len(o.Values), n))
	}

	f := &Forest{
		nodes:      make([]node, n+1),
		stack:      make([]int, 0, 64),
		components: n,
		log:        o.Logger,
	}
	f.nodes[nilNode] = sentinel()
	for i := 1; i <= n; i++ {
		var v Scalar
		if o.Values != nil {
			v = o.Values[i-1]
		}
		f.nodes[i] = leaf(i, v)
	}

	return f
}

// Len returns the number of vertices.
func (f *Forest) Len() int { return len(f.nodes) - 1 }

// Components returns the number of trees in the forest.
func (f *Forest) Components() int { return f.components }

// Edges returns the number of edges currently in the forest.
func (f *Forest) Edges() int { return f.edges }

// index maps a vertex id to its arena index, panicking on ids out of range.
func (f *Forest) index(u int) int {
	if u < 0 || u >= len(f.nodes)-1 {
		panic(fmt.Sprintf("lct: vertex id %d out of range [0, %d)", u, len(f.nodes)-1))
	}

	return u + 1
}

// Link adds the edge u—v. It returns false, leaving the forest unchanged,
// when u and v are already connected (including u == v).
// Complexity: O(log n) amortized.
func (f *Forest) Link(u, v int) bool {
	x, y := f.index(u), f.index(v)

	f.makeRoot(x)
	if f.findRoot(y) == x {
		f.logEdge("lct: link rejected", u, v)
		return false
	}
	// y must be the top splay root so that no ancestor caches a stale
	// subtree total once x is hung below it.
	f.access(y)
	f.splay(y)
	f.nodes[x].parent = y
	f.addVirtual(y, x)
	f.pushUp(y)

	f.edges++
	f.components--
	f.logEdge("lct: link", u, v)

	return true
}

// Cut removes the edge u—v. It returns false, leaving the forest unchanged,
// when u and v are not joined by a tree edge.
// Complexity: O(log n) amortized.
func (f *Forest) Cut(u, v int) bool {
	x, y := f.index(u), f.index(v)
	if x == y || !f.expose(x, y) {
		f.logEdge("lct: cut rejected", u, v)
		return false
	}

	// The path x..y is y's left subtree; it is the single edge x—y only if
	// that subtree is x alone.
	ny := &f.nodes[y]
	if ny.left != x {
		f.logEdge("lct: cut rejected", u, v)
		return false
	}
	f.pushDown(x)
	if f.nodes[x].right != nilNode {
		f.logEdge("lct: cut rejected", u, v)
		return false
	}

	ny.left = nilNode
	f.nodes[x].parent = nilNode
	f.removeVirtual(y, x)
	f.pushUp(y)

	f.edges--
	f.components++
	f.logEdge("lct: cut", u, v)

	return true
}

// Connected reports whether u and v are in the same tree.
// Complexity: O(log n) amortized.
func (f *Forest) Connected(u, v int) bool {
	x, y := f.index(u), f.index(v)
	if x == y {
		return true
	}

	return f.findRoot(x) == f.findRoot(y)
}

// MakeRoot re-roots u's tree at u. It affects SubtreeSum, LCA and Parent;
// path aggregates do not depend on the root.
// Complexity: O(log n) amortized.
func (f *Forest) MakeRoot(u int) {
	f.makeRoot(f.index(u))
}

// FindRoot returns the current root of u's tree.
// Complexity: O(log n) amortized.
func (f *Forest) FindRoot(u int) int {
	return f.findRoot(f.index(u)) - 1
}

// Value returns u's current value, including every PathAdd applied to it.
// Complexity: O(log n) amortized.
func (f *Forest) Value(u int) Scalar {
	x := f.index(u)
	f.splay(x)

	return f.nodes[x].value
}

// SetValue overwrites u's value.
// Complexity: O(log n) amortized.
func (f *Forest) SetValue(u int, val Scalar) {
	x := f.index(u)
	// After access no ancestor holds x's old value in a virtualSum.
	f.access(x)
	f.splay(x)
	f.nodes[x].value = val
	f.pushUp(x)
}

// logEdge emits a Debug record for a structural event.
func (f *Forest) logEdge(msg string, u, v int) {
	if !f.log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	f.log.Debug(msg,
		slog.Int("u", u),
		slog.Int("v", v),
		slog.Int("components", f.components),
		slog.Int("edges", f.edges),
	)
}
