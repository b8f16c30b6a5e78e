// SPDX-License-Identifier: MIT

// Package linkcut is a dynamic-forest toolkit built around link-cut trees.
//
// What is in the module?
//
//	lct/             — the engine: Link, Cut, Connected, re-rooting, path
//	                   aggregates (sum, min, max, xor, argmax), lazy path add,
//	                   subtree sums via virtual-children bookkeeping, LCA.
//	msf/             — minimum spanning forests: Kruskal and Prim offline,
//	                   Incremental online on top of lct.
//	internal/config  — viper-backed settings for the replay tool.
//	internal/replay  — YAML operation scripts with expectations.
//	cmd/lctreplay    — cobra CLI running replay scripts.
//
// Quick ASCII example:
//
//	0 ─ 1 ─ 2 ─ 3 ─ 4      values 1..5
//
//	PathAdd(1, 3, 10)  →  1 12 13 14 5
//	PathSum(0, 4)      →  45
//
// Every forest operation runs in O(log n) amortized time. A Forest is not
// safe for concurrent use; wrap it in lct.Synchronized to share one.
//
//	go get github.com/katalvlaran/linkcut/lct
package linkcut
