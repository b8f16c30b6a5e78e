// SPDX-License-Identifier: MIT

package replay

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/linkcut/lct"
)

// Failure records one step whose result differed from its expectation.
type Failure struct {
	Step int
	Op   string
	Want any
	Got  any
}

// String formats the failure for humans.
func (f Failure) String() string {
	return fmt.Sprintf("step %d (%s): want %v, got %v", f.Step, f.Op, f.Want, f.Got)
}

// Report summarizes a run.
type Report struct {
	Steps    int // steps executed
	Checked  int // steps that carried an expectation
	Failures []Failure
}

// Options configures Run.
type Options struct {
	// FailFast stops at the first failed expectation.
	FailFast bool
}

// Option configures Options.
type Option func(*Options)

// WithFailFast returns an Option that sets Options.FailFast.
func WithFailFast(on bool) Option {
	return func(o *Options) {
		o.FailFast = on
	}
}

// Run executes s against a fresh forest and checks every expectation.
//
// Steps:
//  1. Validate s, so the forest cannot panic on script input.
//  2. Build the forest from s.Vertices and s.Values.
//  3. For each step: stop if ctx is done, run the op, compare.
//
// The report is returned even on error. The error wraps ctx.Err() when the
// run was cancelled, or ErrExpectationFailed when any step failed.
func Run(ctx context.Context, s *Script, logger *slog.Logger, opts ...Option) (*Report, error) {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	// 1. Validate.
	if err := s.Validate(); err != nil {
		return &Report{}, err
	}

	// 2. Build.
	fopts := []lct.Option{lct.WithLogger(logger)}
	if len(s.Values) > 0 {
		fopts = append(fopts, lct.WithValues(s.Values))
	}
	f := lct.New(s.Vertices, fopts...)

	// 3. Execute.
	rep := &Report{}
	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return rep, fmt.Errorf("replay: stopped before step %d: %w", i, err)
		}
		got := ops[st.Op].run(f, st)
		rep.Steps++
		logger.DebugContext(ctx, "replay: step", "step", i, "op", st.Op, "u", st.U, "v", st.V, "result", got)

		if st.Expect == nil {
			continue
		}
		rep.Checked++
		if got == st.Expect {
			continue
		}
		fail := Failure{Step: i, Op: st.Op, Want: st.Expect, Got: got}
		rep.Failures = append(rep.Failures, fail)
		logger.WarnContext(ctx, "replay: expectation failed", "step", i, "op", st.Op, "want", st.Expect, "got", got)
		if o.FailFast {
			break
		}
	}

	logger.InfoContext(ctx, "replay: done",
		"steps", rep.Steps, "checked", rep.Checked, "failures", len(rep.Failures),
		"components", f.Components())
	if len(rep.Failures) > 0 {
		return rep, fmt.Errorf("%w: %d of %d checks (first: %s)",
			ErrExpectationFailed, len(rep.Failures), rep.Checked, rep.Failures[0])
	}

	return rep, nil
}
