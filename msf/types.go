// SPDX-License-Identifier: MIT

package msf

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	// ErrNegativeVertices indicates a negative vertex count.
	ErrNegativeVertices = errors.New("msf: negative vertex count")

	// ErrVertexOutOfRange indicates an edge endpoint outside [0, n).
	ErrVertexOutOfRange = errors.New("msf: vertex out of range")

	// ErrLoop indicates a self-loop was offered to Incremental.AddEdge.
	ErrLoop = errors.New("msf: self-loop cannot join a spanning forest")

	// ErrUnknownMethod indicates Options.Method names no known algorithm.
	ErrUnknownMethod = errors.New("msf: unknown method")
)

// MethodPrim selects Prim's algorithm (heap growth from each component).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Edge is an undirected weighted edge between two vertex ids.
type Edge struct {
	From   int
	To     int
	Weight int64
}

// Result reports what Incremental.AddEdge did with an edge.
type Result struct {
	// Accepted is true when the new edge is now part of the forest.
	Accepted bool

	// Evicted is the edge the new one replaced, if any.
	Evicted *Edge
}

// Options configures Compute and Incremental.
//
// Fields:
//
//	Method string       — MethodKruskal or MethodPrim; used by Compute.
//	Logger *slog.Logger — receives Debug records from Incremental.
type Options struct {
	Method string
	Logger *slog.Logger
}

// Option configures Options.
type Option func(*Options)

// WithMethod returns an Option that sets the offline algorithm.
func WithMethod(m string) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// WithLogger returns an Option that sets the logger used by Incremental.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Options for Kruskal with a discarding logger.
func DefaultOptions() Options {
	return Options{
		Method: MethodKruskal,
		Logger: slog.New(slog.DiscardHandler),
	}
}

// Compute runs the offline algorithm named by the options.
//
//	– MethodKruskal: Kruskal(n, edges).
//	– MethodPrim:    Prim(n, edges).
//	– otherwise:     ErrUnknownMethod.
func Compute(n int, edges []Edge, opts ...Option) ([]Edge, int64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Method {
	case MethodKruskal:
		return Kruskal(n, edges)
	case MethodPrim:
		return Prim(n, edges)
	default:
		return nil, 0, ErrUnknownMethod
	}
}

// validate checks n and every endpoint.
func validate(n int, edges []Edge) error {
	if n < 0 {
		return ErrNegativeVertices
	}
	for i, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return fmt.Errorf("%w: edge %d (%d-%d), n=%d", ErrVertexOutOfRange, i, e.From, e.To, n)
		}
	}

	return nil
}
