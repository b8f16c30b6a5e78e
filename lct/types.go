// SPDX-License-Identifier: MIT

package lct

import (
	"log/slog"
)

// Scalar is the value type carried by every vertex and aggregate.
// Arithmetic wraps on overflow.
type Scalar = int64

// PathAggregate is a snapshot of every aggregate over one tree path.
type PathAggregate struct {
	// Len is the number of vertices on the path, endpoints included.
	Len int

	// Sum, Min, Max and Xor fold the vertex values along the path.
	Sum Scalar
	Min Scalar
	Max Scalar
	Xor Scalar

	// MaxAt is the id of a vertex on the path whose value equals Max.
	MaxAt int
}

// Options configures a Forest at construction time.
// Use DefaultOptions() as a base and adjust it with Option functions.
type Options struct {
	// Logger receives Debug records for structural changes (link, cut).
	// Defaults to a logger that discards everything.
	Logger *slog.Logger

	// Values, if non-nil, holds the initial value of every vertex.
	// Its length must equal the vertex count passed to New.
	Values []Scalar
}

// Option configures Options. Passed to New.
type Option func(*Options)

// DefaultOptions returns Options with a discarding logger and all values zero.
func DefaultOptions() Options {
	return Options{
		Logger: slog.New(slog.DiscardHandler),
		Values: nil,
	}
}

// WithLogger returns an Option that routes structural events to l.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithValues returns an Option that seeds vertex values.
// New panics if len(values) differs from the vertex count.
func WithValues(values []Scalar) Option {
	return func(o *Options) {
		o.Values = values
	}
}
