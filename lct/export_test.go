// SPDX-License-Identifier: MIT

package lct

import (
	"errors"
	"fmt"
)

// Validate checks the local invariants of every node without changing f:
//   - child/parent links agree;
//   - every splay root with a path-parent is registered in its virtual set,
//     and every registered child really is such a root;
//   - virtualSum equals the subtree totals of the registered children;
//   - size, sum, min, max and subtree match the children once the node's own
//     pending add is accounted for; xor is checked where it is not stale.
func Validate(f *Forest) error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	for x := 1; x < len(f.nodes); x++ {
		n := &f.nodes[x]
		for _, c := range [2]int{n.left, n.right} {
			if c != nilNode && f.nodes[c].parent != x {
				bad("node %d: child %d points to parent %d", x-1, c-1, f.nodes[c].parent-1)
			}
		}

		if f.isRoot(x) && n.parent != nilNode {
			if _, ok := f.nodes[n.parent].virtual[x]; !ok {
				bad("node %d: splay root not registered under path-parent %d", x-1, n.parent-1)
			}
		}

		var vs Scalar
		for c := range n.virtual {
			if f.nodes[c].parent != x || !f.isRoot(c) {
				bad("node %d: virtual child %d is not a splay root below it", x-1, c-1)
			}
			vs += f.nodes[c].subtree
		}
		if vs != n.virtualSum {
			bad("node %d: virtualSum %d, children total %d", x-1, n.virtualSum, vs)
		}

		l, r := &f.nodes[n.left], &f.nodes[n.right]
		a := n.add
		ls, rs := Scalar(l.size), Scalar(r.size)
		if n.size != l.size+1+r.size {
			bad("node %d: size %d, want %d", x-1, n.size, l.size+1+r.size)
		}
		if want := l.sum + a*ls + n.value + r.sum + a*rs; n.sum != want {
			bad("node %d: sum %d, want %d", x-1, n.sum, want)
		}
		if want := l.subtree + a*ls + n.value + r.subtree + a*rs + n.virtualSum; n.subtree != want {
			bad("node %d: subtree %d, want %d", x-1, n.subtree, want)
		}

		mn, mx := n.value, n.value
		for _, c := range [2]*node{l, r} {
			if c.size == 0 {
				continue
			}
			mn = min(mn, c.min+a)
			mx = max(mx, c.max+a)
		}
		if n.min != mn || n.max != mx {
			bad("node %d: min/max %d/%d, want %d/%d", x-1, n.min, n.max, mn, mx)
		}

		if !n.xorStale && a == 0 && !l.xorStale && !r.xorStale {
			if want := l.xor ^ n.value ^ r.xor; n.xor != want {
				bad("node %d: xor %d, want %d", x-1, n.xor, want)
			}
		}
		if !n.xorStale && (l.xorStale || r.xorStale) {
			bad("node %d: xor fresh above a stale child", x-1)
		}
	}

	return errors.Join(errs...)
}
