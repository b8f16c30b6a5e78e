// SPDX-License-Identifier: MIT

package lct

// access turns the path from x's tree root down to x into a single splay
// tree with no real child past x. Whatever used to follow x on its preferred
// path becomes a virtual child.
//
// The returned index is the last splay root visited, which is the meeting
// point with the previously accessed path (used by LCA).
func (f *Forest) access(x int) int {
	last := nilNode
	for ; x != nilNode; last, x = x, f.nodes[x].parent {
		f.splay(x)
		n := &f.nodes[x]
		if n.right != nilNode {
			f.addVirtual(x, n.right)
		}
		if last != nilNode {
			f.removeVirtual(x, last)
		}
		n.right = last
		f.pushUp(x)
	}

	return last
}

// makeRoot re-roots x's represented tree at x.
func (f *Forest) makeRoot(x int) {
	f.access(x)
	f.splay(x)
	f.applyRev(x)
}

// findRoot returns the root of x's represented tree and leaves it splayed.
func (f *Forest) findRoot(x int) int {
	f.access(x)
	f.splay(x)
	for {
		f.pushDown(x)
		l := f.nodes[x].left
		if l == nilNode {
			break
		}
		x = l
	}
	f.splay(x)

	return x
}

// expose re-roots at u and, if v shares u's tree, leaves v splayed at the
// top with its splay tree holding exactly the path u..v.
// Returns false when u and v are in different trees.
func (f *Forest) expose(u, v int) bool {
	f.makeRoot(u)
	if f.findRoot(v) != u {
		return false
	}
	// findRoot accessed v, so u and v already share one splay tree.
	f.splay(v)

	return true
}
