// SPDX-License-Identifier: MIT

package replay

import (
	"github.com/katalvlaran/linkcut/lct"
)

// resultKind is the dynamic type an op yields to the expectation check.
type resultKind int

const (
	resultNone     resultKind = iota // no result; expect must be absent
	resultBool                       // bool
	resultInt                        // int64
	resultMaybeInt                   // int64, or false when there is no answer
)

// opSpec describes one op: whether it reads V, what it yields, and how
// to run it.
type opSpec struct {
	pair   bool
	result resultKind
	run    func(f *lct.Forest, st Step) any
}

var ops = map[string]opSpec{
	"link": {pair: true, result: resultBool, run: func(f *lct.Forest, st Step) any {
		return f.Link(st.U, st.V)
	}},
	"cut": {pair: true, result: resultBool, run: func(f *lct.Forest, st Step) any {
		return f.Cut(st.U, st.V)
	}},
	"connected": {pair: true, result: resultBool, run: func(f *lct.Forest, st Step) any {
		return f.Connected(st.U, st.V)
	}},
	"path-add": {pair: true, result: resultBool, run: func(f *lct.Forest, st Step) any {
		return f.PathAdd(st.U, st.V, st.Value)
	}},
	"set": {run: func(f *lct.Forest, st Step) any {
		f.SetValue(st.U, st.Value)
		return nil
	}},
	"make-root": {run: func(f *lct.Forest, st Step) any {
		f.MakeRoot(st.U)
		return nil
	}},
	"path-sum": {pair: true, result: resultMaybeInt, run: func(f *lct.Forest, st Step) any {
		return maybe(f.PathSum(st.U, st.V))
	}},
	"path-min": {pair: true, result: resultMaybeInt, run: func(f *lct.Forest, st Step) any {
		return maybe(f.PathMin(st.U, st.V))
	}},
	"path-max": {pair: true, result: resultMaybeInt, run: func(f *lct.Forest, st Step) any {
		return maybe(f.PathMax(st.U, st.V))
	}},
	"path-xor": {pair: true, result: resultMaybeInt, run: func(f *lct.Forest, st Step) any {
		return maybe(f.PathXor(st.U, st.V))
	}},
	"lca": {pair: true, result: resultMaybeInt, run: func(f *lct.Forest, st Step) any {
		x, ok := f.LCA(st.U, st.V)
		return maybe(lct.Scalar(x), ok)
	}},
	"subtree-sum": {result: resultInt, run: func(f *lct.Forest, st Step) any {
		return f.SubtreeSum(st.U)
	}},
	"find-root": {result: resultInt, run: func(f *lct.Forest, st Step) any {
		return int64(f.FindRoot(st.U))
	}},
}

// maybe folds a (value, ok) query result into the form expectations use.
func maybe(v lct.Scalar, ok bool) any {
	if !ok {
		return false
	}

	return v
}
