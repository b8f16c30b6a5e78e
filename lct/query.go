// SPDX-License-Identifier: MIT

package lct

// Path returns every aggregate over the path u..v.
// ok is false when u and v are in different trees; agg is then zero.
// Complexity: O(log n) amortized, plus the stale-xor walk described on PathXor.
func (f *Forest) Path(u, v int) (agg PathAggregate, ok bool) {
	x, y := f.index(u), f.index(v)
	if !f.expose(x, y) {
		return PathAggregate{}, false
	}
	f.resolveXor(y)
	n := &f.nodes[y]

	return PathAggregate{
		Len:   n.size,
		Sum:   n.sum,
		Min:   n.min,
		Max:   n.max,
		Xor:   n.xor,
		MaxAt: n.maxAt - 1,
	}, true
}

// PathSum returns the sum of values on the path u..v.
func (f *Forest) PathSum(u, v int) (Scalar, bool) {
	x, y := f.index(u), f.index(v)
	if !f.expose(x, y) {
		return 0, false
	}

	return f.nodes[y].sum, true
}

// PathMin returns the minimum value on the path u..v.
func (f *Forest) PathMin(u, v int) (Scalar, bool) {
	x, y := f.index(u), f.index(v)
	if !f.expose(x, y) {
		return 0, false
	}

	return f.nodes[y].min, true
}

// PathMax returns the maximum value on the path u..v.
func (f *Forest) PathMax(u, v int) (Scalar, bool) {
	x, y := f.index(u), f.index(v)
	if !f.expose(x, y) {
		return 0, false
	}

	return f.nodes[y].max, true
}

// PathMaxVertex returns the id of a vertex holding the maximum value on the
// path u..v.
func (f *Forest) PathMaxVertex(u, v int) (int, bool) {
	x, y := f.index(u), f.index(v)
	if !f.expose(x, y) {
		return 0, false
	}

	return f.nodes[y].maxAt - 1, true
}

// PathXor returns the xor of values on the path u..v.
//
// A PathAdd leaves xor stale on the splay nodes it covered; the first PathXor
// touching them pushes the add down and recomputes only those nodes.
func (f *Forest) PathXor(u, v int) (Scalar, bool) {
	x, y := f.index(u), f.index(v)
	if !f.expose(x, y) {
		return 0, false
	}
	f.resolveXor(y)

	return f.nodes[y].xor, true
}

// PathLen returns the number of vertices on the path u..v.
func (f *Forest) PathLen(u, v int) (int, bool) {
	x, y := f.index(u), f.index(v)
	if !f.expose(x, y) {
		return 0, false
	}

	return f.nodes[y].size, true
}

// PathAdd adds delta to every vertex on the path u..v. Subtrees hanging off
// the path are not affected. It returns false, changing nothing, when u and
// v are in different trees.
// Complexity: O(log n) amortized.
func (f *Forest) PathAdd(u, v int, delta Scalar) bool {
	x, y := f.index(u), f.index(v)
	if !f.expose(x, y) {
		return false
	}
	f.applyAdd(y, delta)

	return true
}

// SubtreeSum returns the sum of values in u's subtree under the current
// root of u's tree: u itself plus every descendant.
// Complexity: O(log n) amortized.
func (f *Forest) SubtreeSum(u int) Scalar {
	x := f.index(u)
	f.access(x)
	f.splay(x)
	// After access x has no real right child: its descendants all hang off
	// virtual edges.
	n := &f.nodes[x]

	return n.value + n.virtualSum
}

// SubtreeSumFrom re-roots the tree at root and returns u's subtree sum.
// It returns false when u and root are in different trees.
func (f *Forest) SubtreeSumFrom(u, root int) (Scalar, bool) {
	x, r := f.index(u), f.index(root)
	f.makeRoot(r)
	if f.findRoot(x) != r {
		return 0, false
	}

	return f.SubtreeSum(u), true
}

// LCA returns the lowest common ancestor of u and v under the current root.
// It returns false when u and v are in different trees.
// Complexity: O(log n) amortized.
func (f *Forest) LCA(u, v int) (int, bool) {
	x, y := f.index(u), f.index(v)
	if x != y && f.findRoot(x) != f.findRoot(y) {
		return 0, false
	}
	f.access(x)

	return f.access(y) - 1, true
}

// Parent returns u's parent under the current root.
// It returns false when u is the root of its tree.
// Complexity: O(log n) amortized.
func (f *Forest) Parent(u int) (int, bool) {
	x := f.index(u)
	f.access(x)
	f.splay(x)
	p := f.nodes[x].left
	if p == nilNode {
		return 0, false
	}
	// The parent is x's in-order predecessor: the rightmost node on the left.
	for {
		f.pushDown(p)
		r := f.nodes[p].right
		if r == nilNode {
			break
		}
		p = r
	}
	f.splay(p)

	return p - 1, true
}

// resolveXor recomputes xor throughout the stale part of x's splay subtree.
func (f *Forest) resolveXor(x int) {
	if x == nilNode || !f.nodes[x].xorStale {
		return
	}
	f.pushDown(x)
	f.resolveXor(f.nodes[x].left)
	f.resolveXor(f.nodes[x].right)
	f.pushUp(x)
}
