// SPDX-License-Identifier: MIT

// Package replay runs YAML operation scripts against an lct.Forest and checks
// every step that carries an expectation.
//
// A script looks like:
//
//	vertices: 5
//	values: [1, 2, 3, 4, 5]   # optional, one per vertex
//	steps:
//	  - {op: link, u: 0, v: 1, expect: true}
//	  - {op: path-add, u: 0, v: 1, value: 10}
//	  - {op: path-sum, u: 0, v: 1, expect: 23}
//	  - {op: path-sum, u: 0, v: 4, expect: false}   # disconnected
//
// Parse rejects anything that would make the forest panic, so Run never does.
package replay

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linkcut/lct"
)

// Sentinel errors returned by Parse, Validate and Run.
var (
	ErrNoVertices        = errors.New("replay: script needs at least one vertex")
	ErrValuesLength      = errors.New("replay: values length differs from vertices")
	ErrUnknownOp         = errors.New("replay: unknown op")
	ErrVertexOutOfRange  = errors.New("replay: vertex out of range")
	ErrBadExpectation    = errors.New("replay: expectation has the wrong type for op")
	ErrExpectationFailed = errors.New("replay: expectation failed")
)

// Script is a parsed replay file.
type Script struct {
	Vertices int          `yaml:"vertices"`
	Values   []lct.Scalar `yaml:"values"`
	Steps    []Step       `yaml:"steps"`
}

// Step is one forest operation.
//
// U is always read. V is read by two-vertex ops. Value is the new value for
// "set" and the delta for "path-add". Expect, when present, is a bool for
// boolean ops, an integer for int ops, and either an integer or false (no
// answer because u and v are disconnected) for path queries and lca.
type Step struct {
	Op     string     `yaml:"op"`
	U      int        `yaml:"u"`
	V      int        `yaml:"v"`
	Value  lct.Scalar `yaml:"value"`
	Expect any        `yaml:"expect"`
}

// Parse decodes and validates a script. Unknown YAML fields are rejected.
func Parse(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("replay: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate checks counts, op names, vertex ranges and expectation types. It
// normalizes integer expectations to int64.
func (s *Script) Validate() error {
	if s.Vertices <= 0 {
		return fmt.Errorf("%w: got %d", ErrNoVertices, s.Vertices)
	}
	if len(s.Values) != 0 && len(s.Values) != s.Vertices {
		return fmt.Errorf("%w: %d values for %d vertices", ErrValuesLength, len(s.Values), s.Vertices)
	}

	for i := range s.Steps {
		st := &s.Steps[i]
		spec, ok := ops[st.Op]
		if !ok {
			return fmt.Errorf("%w: step %d: %q", ErrUnknownOp, i, st.Op)
		}
		if !s.inRange(st.U) || (spec.pair && !s.inRange(st.V)) {
			return fmt.Errorf("%w: step %d (%s %d %d), vertices=%d", ErrVertexOutOfRange, i, st.Op, st.U, st.V, s.Vertices)
		}
		want, err := normalize(st.Expect, spec.result)
		if err != nil {
			return fmt.Errorf("%w: step %d (%s): %v", ErrBadExpectation, i, st.Op, err)
		}
		st.Expect = want
	}

	return nil
}

func (s *Script) inRange(u int) bool { return u >= 0 && u < s.Vertices }

// normalize coerces a decoded expectation to the dynamic type the op yields.
func normalize(expect any, k resultKind) (any, error) {
	if expect == nil {
		return nil, nil
	}
	switch x := expect.(type) {
	case bool:
		if k == resultBool || (k == resultMaybeInt && !x) {
			return x, nil
		}
	case int:
		if k == resultInt || k == resultMaybeInt {
			return int64(x), nil
		}
	case int64:
		if k == resultInt || k == resultMaybeInt {
			return x, nil
		}
	}

	return nil, fmt.Errorf("unexpected %T %v", expect, expect)
}
