// SPDX-License-Identifier: MIT

package lct

// rotate lifts x one level above its splay parent y.
// Tags on x and y must already be pushed; rotate never pushes.
func (f *Forest) rotate(x int) {
	nodes := f.nodes
	y := nodes[x].parent
	z := nodes[y].parent

	// Re-hang x under z. If y was a splay root, z is its path-parent and the
	// virtual registration moves from y to x.
	if f.isRoot(y) {
		if z != nilNode {
			f.replaceVirtual(z, y, x)
		}
	} else if nodes[z].left == y {
		nodes[z].left = x
	} else {
		nodes[z].right = x
	}
	nodes[x].parent = z

	// Move x's inner subtree across to y.
	if nodes[y].left == x {
		b := nodes[x].right
		nodes[y].left = b
		if b != nilNode {
			nodes[b].parent = y
		}
		nodes[x].right = y
	} else {
		b := nodes[x].left
		nodes[y].right = b
		if b != nilNode {
			nodes[b].parent = y
		}
		nodes[x].left = y
	}
	nodes[y].parent = x

	f.pushUp(y)
	f.pushUp(x)
}

// splay makes x the root of its splay tree. Tags on the way from the old
// root down to x are pushed first, top-down.
func (f *Forest) splay(x int) {
	stack := append(f.stack[:0], x)
	for y := x; !f.isRoot(y); {
		y = f.nodes[y].parent
		stack = append(stack, y)
	}
	for i := len(stack) - 1; i >= 0; i-- {
		f.pushDown(stack[i])
	}
	f.stack = stack

	for !f.isRoot(x) {
		y := f.nodes[x].parent
		if !f.isRoot(y) {
			z := f.nodes[y].parent
			// zig-zig rotates y first; zig-zag rotates x twice.
			if (f.nodes[y].left == x) == (f.nodes[z].left == y) {
				f.rotate(y)
			} else {
				f.rotate(x)
			}
		}
		f.rotate(x)
	}
}
