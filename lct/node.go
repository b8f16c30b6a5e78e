// SPDX-License-Identifier: MIT

package lct

import (
	"math"
)

// nilNode is the arena index of the sentinel. Vertex id u lives at index u+1.
const nilNode = 0

// node is one arena record. Links are arena indices; nilNode means "none".
//
// Aggregates over the splay subtree (size, sum, min, max, maxAt, xor) see only
// the real children. subtree additionally folds in virtualSum, the subtree
// totals of every splay tree hanging off this node through a virtual edge.
type node struct {
	left, right int
	// parent is the splay parent when this node is its left or right child,
	// and the path-parent (a virtual edge) otherwise.
	parent int

	value Scalar

	size  int
	sum   Scalar
	min   Scalar
	max   Scalar
	maxAt int
	xor   Scalar

	subtree    Scalar
	virtualSum Scalar
	// virtual holds the splay roots attached through virtual edges.
	// Allocated on first use.
	virtual map[int]struct{}

	add Scalar
	rev bool
	// xorStale marks xor as out of date somewhere in this splay subtree
	// because an add was applied above a node with children.
	xorStale bool
}

// sentinel returns the record stored at nilNode. Its aggregates are the
// identities of each fold, so pushUp needs no nil checks.
func sentinel() node {
	return node{
		min: math.MaxInt64,
		max: math.MinInt64,
	}
}

// leaf returns an isolated vertex record at index i with value v.
func leaf(i int, v Scalar) node {
	return node{
		value:   v,
		size:    1,
		sum:     v,
		min:     v,
		max:     v,
		maxAt:   i,
		xor:     v,
		subtree: v,
	}
}

// isRoot reports whether x is the root of its splay tree, i.e. its parent
// link (if any) is virtual.
func (f *Forest) isRoot(x int) bool {
	p := f.nodes[x].parent
	return p == nilNode || (f.nodes[p].left != x && f.nodes[p].right != x)
}

// pushUp recomputes x's aggregates from its value and children.
// x must carry no pending tag of its own toward its children.
func (f *Forest) pushUp(x int) {
	n := &f.nodes[x]
	l, r := &f.nodes[n.left], &f.nodes[n.right]

	n.size = l.size + 1 + r.size
	n.sum = l.sum + n.value + r.sum
	n.min = min(l.min, n.value, r.min)
	n.max, n.maxAt = n.value, x
	if l.max > n.max {
		n.max, n.maxAt = l.max, l.maxAt
	}
	if r.max > n.max {
		n.max, n.maxAt = r.max, r.maxAt
	}
	n.xor = l.xor ^ n.value ^ r.xor
	n.xorStale = l.xorStale || r.xorStale
	n.subtree = l.subtree + n.value + r.subtree + n.virtualSum
}

// applyAdd adds d to every vertex of x's splay subtree: x's own fields are
// updated now, its children later through pushDown. virtualSum is untouched.
func (f *Forest) applyAdd(x int, d Scalar) {
	if x == nilNode || d == 0 {
		return
	}
	n := &f.nodes[x]
	s := Scalar(n.size)

	n.value += d
	n.sum += d * s
	n.min += d
	n.max += d
	n.subtree += d * s
	n.add += d
	if n.size == 1 {
		n.xor, n.xorStale = n.value, false
	} else {
		n.xorStale = true
	}
}

// applyRev schedules a left/right swap for x's splay subtree.
func (f *Forest) applyRev(x int) {
	if x == nilNode {
		return
	}
	f.nodes[x].rev = !f.nodes[x].rev
}

// pushDown hands x's pending tags to its children.
func (f *Forest) pushDown(x int) {
	n := &f.nodes[x]
	if n.rev {
		n.left, n.right = n.right, n.left
		f.applyRev(n.left)
		f.applyRev(n.right)
		n.rev = false
	}
	if n.add != 0 {
		f.applyAdd(n.left, n.add)
		f.applyAdd(n.right, n.add)
		n.add = 0
	}
}

// addVirtual records c as a virtual child of p.
func (f *Forest) addVirtual(p, c int) {
	n := &f.nodes[p]
	if n.virtual == nil {
		n.virtual = make(map[int]struct{})
	}
	n.virtual[c] = struct{}{}
	n.virtualSum += f.nodes[c].subtree
}

// removeVirtual drops c from p's virtual children.
func (f *Forest) removeVirtual(p, c int) {
	n := &f.nodes[p]
	if _, ok := n.virtual[c]; !ok {
		return
	}
	delete(n.virtual, c)
	n.virtualSum -= f.nodes[c].subtree
}

// replaceVirtual swaps the splay root registered under p from old to c.
// The subtree total is unchanged, so virtualSum is left alone.
func (f *Forest) replaceVirtual(p, old, c int) {
	n := &f.nodes[p]
	if _, ok := n.virtual[old]; !ok {
		return
	}
	delete(n.virtual, old)
	n.virtual[c] = struct{}{}
}
