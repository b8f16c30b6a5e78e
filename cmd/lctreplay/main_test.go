// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testdata = "../../internal/replay/testdata"

// execute runs the root command with args and returns stdout, stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())

	return out.String(), errOut.String(), err
}

func TestRootCmd_HelpAndVersion(t *testing.T) {
	out, _, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "Replay one or more scripts")

	out, _, err = execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "lctreplay dev\n", out)

	_, _, err = execute(t, "unknown")
	assert.Error(t, err)
}

func TestRunCmd_PassingScript(t *testing.T) {
	out, _, err := execute(t, "run", filepath.Join(testdata, "chain.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "PASS")
	assert.Contains(t, out, "22 steps, 20 checks")
}

func TestRunCmd_FailingScript(t *testing.T) {
	chain := filepath.Join(testdata, "chain.yaml")
	failing := filepath.Join(testdata, "failing.yaml")

	out, _, err := execute(t, "run", chain, failing)
	require.ErrorIs(t, err, errScriptsFailed)
	assert.Contains(t, out, "PASS "+chain)
	assert.Contains(t, out, "FAIL "+failing+": 2 of 3 checks failed")
	assert.Contains(t, out, "step 1 (connected): want true, got false")

	out, _, err = execute(t, "run", "--fail-fast", failing)
	require.ErrorIs(t, err, errScriptsFailed)
	assert.Contains(t, out, "1 of 1 checks failed")
}

func TestRunCmd_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "lctreplay.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("logging:\n  level: debug\n  format: json\nreplay:\n  fail_fast: true\n"), 0o600))

	out, errOut, err := execute(t, "run", "--config", cfg, filepath.Join(testdata, "failing.yaml"))
	require.ErrorIs(t, err, errScriptsFailed)
	assert.Contains(t, out, "1 of 1 checks failed", "fail_fast from config")
	assert.Contains(t, errOut, `"msg":"replay: step"`)

	// The flag wins over the file.
	out, _, err = execute(t, "run", "--config", cfg, "--fail-fast=false", filepath.Join(testdata, "failing.yaml"))
	require.ErrorIs(t, err, errScriptsFailed)
	assert.Contains(t, out, "2 of 3 checks failed")

	require.NoError(t, os.WriteFile(cfg, []byte("logging:\n  level: chatty\n"), 0o600))
	_, _, err = execute(t, "run", "--config", cfg, filepath.Join(testdata, "chain.yaml"))
	assert.Error(t, err)
}

func TestRunCmd_BadInputs(t *testing.T) {
	_, _, err := execute(t, "run")
	assert.Error(t, err, "at least one script")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("vertices: 2\nsteps:\n  - {op: rotate, u: 0}\n"), 0o600))
	out, _, err := execute(t, "run", bad, filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, errScriptsFailed)
	assert.Contains(t, out, "ERROR "+bad)
	assert.Contains(t, out, "unknown op")
	assert.Contains(t, out, "missing.yaml")
}
