// SPDX-License-Identifier: MIT

package msf

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/katalvlaran/linkcut/lct"
)

// Incremental maintains the minimum spanning forest of a graph whose edges
// arrive one at a time.
//
// Layout of the underlying lct.Forest:
//
//	ids [0, n)        graph vertices, value math.MinInt64
//	ids [n, 2n-1)     edge slots, value = edge weight while in use
//
// A forest on n vertices never holds more than n-1 edges, so n-1 slots
// recycled through a free list are always enough.
type Incremental struct {
	n      int
	forest *lct.Forest

	slots []Edge // slots[i] is the edge stored at forest id n+i
	free  []int  // unused slot indices, popped from the end

	weight int64
	log    *slog.Logger
}

// New creates an empty online MSF over vertices 0..n-1.
// Complexity: O(n).
func New(n int, opts ...Option) (*Incremental, error) {
	if n < 0 {
		return nil, ErrNegativeVertices
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	slots := max(n-1, 0)
	values := make([]lct.Scalar, n+slots)
	for i := 0; i < n; i++ {
		values[i] = math.MinInt64
	}
	free := make([]int, slots)
	for i := range free {
		free[i] = slots - 1 - i // slot 0 is handed out first
	}

	return &Incremental{
		n:      n,
		forest: lct.New(n+slots, lct.WithValues(values), lct.WithLogger(o.Logger)),
		slots:  make([]Edge, slots),
		free:   free,
		log:    o.Logger,
	}, nil
}

// AddEdge offers the edge u—v with weight w.
//
// Steps:
//  1. Validate endpoints; reject self-loops with ErrLoop.
//  2. If u and v are in different trees, the edge joins them: accept.
//  3. Otherwise find the heaviest edge on the tree path u..v. If it is
//     strictly heavier than w, swap it out for the new edge; else reject.
//
// Ties keep the edge already in the forest.
// Complexity: O(log n) amortized.
func (m *Incremental) AddEdge(u, v int, w int64) (Result, error) {
	// 1. Validate.
	if err := m.check(u, v); err != nil {
		return Result{}, err
	}
	if u == v {
		return Result{}, fmt.Errorf("%w: vertex %d", ErrLoop, u)
	}
	e := Edge{From: u, To: v, Weight: w}

	// 2. Joining two trees.
	if !m.forest.Connected(u, v) {
		m.insert(e)
		m.debug("msf: edge joins trees", e)
		return Result{Accepted: true}, nil
	}

	// 3. Closing a cycle. at is a graph vertex only when every edge on the
	// path weighs math.MinInt64, in which case nothing can be lighter than e.
	at, _ := m.forest.PathMaxVertex(u, v)
	if at < m.n || m.slots[at-m.n].Weight <= w {
		m.debug("msf: edge rejected", e)
		return Result{}, nil
	}
	evicted := m.slots[at-m.n]
	m.remove(at - m.n)
	m.insert(e)
	m.debug("msf: edge replaces heavier", e, slog.Int64("evicted", evicted.Weight))

	return Result{Accepted: true, Evicted: &evicted}, nil
}

// Weight returns the total weight of the current forest.
func (m *Incremental) Weight() int64 { return m.weight }

// Len returns the number of edges in the current forest.
func (m *Incremental) Len() int { return len(m.slots) - len(m.free) }

// Components returns the number of trees in the current forest.
func (m *Incremental) Components() int {
	// Unused slots are isolated lct vertices; they are not graph components.
	return m.forest.Components() - len(m.free)
}

// Connected reports whether u and v are joined by forest edges.
func (m *Incremental) Connected(u, v int) (bool, error) {
	if err := m.check(u, v); err != nil {
		return false, err
	}

	return m.forest.Connected(u, v), nil
}

// Edges returns the forest edges ordered by weight, then endpoints.
// Complexity: O(n log n).
func (m *Incremental) Edges() []Edge {
	used := make([]bool, len(m.slots))
	for i := range used {
		used[i] = true
	}
	for _, s := range m.free {
		used[s] = false
	}
	out := make([]Edge, 0, m.Len())
	for i, e := range m.slots {
		if used[i] {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Weight != b.Weight {
			return a.Weight < b.Weight
		}
		if a.From != b.From {
			return a.From < b.From
		}

		return a.To < b.To
	})

	return out
}

// insert stores e in a free slot and links it between its endpoints.
func (m *Incremental) insert(e Edge) {
	s := m.free[len(m.free)-1]
	m.free = m.free[:len(m.free)-1]
	m.slots[s] = e

	id := m.n + s
	m.forest.SetValue(id, e.Weight)
	m.forest.Link(id, e.From)
	m.forest.Link(id, e.To)
	m.weight += e.Weight
}

// remove unlinks the edge in slot s and returns the slot to the free list.
func (m *Incremental) remove(s int) {
	e := m.slots[s]
	id := m.n + s
	m.forest.Cut(id, e.From)
	m.forest.Cut(id, e.To)
	m.weight -= e.Weight
	m.slots[s] = Edge{}
	m.free = append(m.free, s)
}

// check validates vertex ids for the public API.
func (m *Incremental) check(u, v int) error {
	if u < 0 || u >= m.n || v < 0 || v >= m.n {
		return fmt.Errorf("%w: %d-%d, n=%d", ErrVertexOutOfRange, u, v, m.n)
	}

	return nil
}

// debug logs an edge decision when Debug is enabled.
func (m *Incremental) debug(msg string, e Edge, extra ...slog.Attr) {
	if !m.log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	attrs := append([]slog.Attr{
		slog.Int("from", e.From),
		slog.Int("to", e.To),
		slog.Int64("weight", e.Weight),
		slog.Int64("total", m.weight),
	}, extra...)
	m.log.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}
