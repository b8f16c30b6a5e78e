// SPDX-License-Identifier: MIT

package replay_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkcut/internal/replay"
)

func parseFile(t *testing.T, name string) *replay.Script {
	t.Helper()
	fh, err := os.Open(filepath.Join("testdata", name))
	require.NoError(t, err)
	defer fh.Close()

	s, err := replay.Parse(fh)
	require.NoError(t, err)

	return s
}

func TestRun_ChainScriptPasses(t *testing.T) {
	s := parseFile(t, "chain.yaml")
	rep, err := replay.Run(context.Background(), s, nil)
	require.NoError(t, err)

	assert.Equal(t, len(s.Steps), rep.Steps)
	assert.Equal(t, len(s.Steps)-2, rep.Checked, "make-root and set carry no expectation")
	assert.Empty(t, rep.Failures)
}

func TestRun_ReportsFailures(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	rep, err := replay.Run(context.Background(), parseFile(t, "failing.yaml"), logger)
	require.ErrorIs(t, err, replay.ErrExpectationFailed)
	assert.Equal(t, 4, rep.Steps)
	assert.Equal(t, 3, rep.Checked)
	require.Len(t, rep.Failures, 2)
	assert.Equal(t, replay.Failure{Step: 1, Op: "connected", Want: true, Got: false}, rep.Failures[0])
	assert.Equal(t, replay.Failure{Step: 2, Op: "path-sum", Want: int64(7), Got: int64(0)}, rep.Failures[1])
	assert.Equal(t, "step 2 (path-sum): want 7, got 0", rep.Failures[1].String())
	assert.Contains(t, buf.String(), "replay: expectation failed")
	assert.Contains(t, buf.String(), "failures=2")
}

func TestRun_FailFast(t *testing.T) {
	rep, err := replay.Run(context.Background(), parseFile(t, "failing.yaml"), nil, replay.WithFailFast(true))
	require.ErrorIs(t, err, replay.ErrExpectationFailed)
	assert.Equal(t, 2, rep.Steps)
	assert.Len(t, rep.Failures, 1)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep, err := replay.Run(ctx, parseFile(t, "chain.yaml"), nil)
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, rep.Steps)
}

func TestRun_ValidatesHandBuiltScripts(t *testing.T) {
	s := &replay.Script{Vertices: 2, Steps: []replay.Step{{Op: "cut", U: 0, V: 2}}}
	_, err := replay.Run(context.Background(), s, nil)
	require.ErrorIs(t, err, replay.ErrVertexOutOfRange)

	// Integer expectations written as int are normalized.
	s = &replay.Script{Vertices: 2, Steps: []replay.Step{
		{Op: "link", U: 0, V: 1, Expect: true},
		{Op: "find-root", U: 1, Expect: 1},
	}}
	rep, err := replay.Run(context.Background(), s, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Checked)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name   string
		script string
		want   error
	}{
		{"no vertices", "steps: []\n", replay.ErrNoVertices},
		{"negative vertices", "vertices: -3\n", replay.ErrNoVertices},
		{"values length", "vertices: 3\nvalues: [1, 2]\n", replay.ErrValuesLength},
		{"unknown op", "vertices: 2\nsteps:\n  - {op: splay, u: 0}\n", replay.ErrUnknownOp},
		{"u out of range", "vertices: 2\nsteps:\n  - {op: make-root, u: 2}\n", replay.ErrVertexOutOfRange},
		{"v out of range", "vertices: 2\nsteps:\n  - {op: link, u: 0, v: -1}\n", replay.ErrVertexOutOfRange},
		{"int for bool op", "vertices: 2\nsteps:\n  - {op: link, u: 0, v: 1, expect: 3}\n", replay.ErrBadExpectation},
		{"true for path query", "vertices: 2\nsteps:\n  - {op: path-sum, u: 0, v: 1, expect: true}\n", replay.ErrBadExpectation},
		{"expect on set", "vertices: 2\nsteps:\n  - {op: set, u: 0, value: 1, expect: 1}\n", replay.ErrBadExpectation},
		{"string expect", "vertices: 2\nsteps:\n  - {op: find-root, u: 0, expect: zero}\n", replay.ErrBadExpectation},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := replay.Parse(strings.NewReader(c.script))
			assert.ErrorIs(t, err, c.want)
		})
	}
}

func TestParse_RejectsMalformedYAML(t *testing.T) {
	_, err := replay.Parse(strings.NewReader("vertices: 2\nstepz: []\n"))
	require.Error(t, err, "unknown field")

	_, err = replay.Parse(strings.NewReader("vertices: [\n"))
	require.Error(t, err)
}

func TestParse_IgnoresVForSingleVertexOps(t *testing.T) {
	s, err := replay.Parse(strings.NewReader("vertices: 1\nsteps:\n  - {op: subtree-sum, u: 0, v: 9, expect: 0}\n"))
	require.NoError(t, err)
	assert.Equal(t, int64(0), s.Steps[0].Expect)
}
