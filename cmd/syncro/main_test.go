package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("SYNCRO_LOGIN_DELAY", "0s")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--test-mode"))

	err := cmd.Execute()
	return out.String(), err
}

func writeScript(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func TestBatch_RunsScript(t *testing.T) {
	script := writeScript(t, "tour.syncro", "%% sign in and look around\nlogin naman@syncro.io\ngo team\n")

	out, err := executeCLI(t, "batch", script)
	require.NoError(t, err)
	assert.Contains(t, out, "> login naman@syncro.io")
	assert.Contains(t, out, "Welcome back, Naman")
	assert.Contains(t, out, "Marcus Thorne")
}

func TestBatch_RejectsWrongExtension(t *testing.T) {
	script := writeScript(t, "tour.neuro", "go about\n")

	_, err := executeCLI(t, "batch", script)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must have .syncro extension")
}

func TestBatch_ReportsFailingCommand(t *testing.T) {
	script := writeScript(t, "tour.syncro", "go about\nfly\n")

	_, err := executeCLI(t, "batch", script)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2 (fly)")
}

func TestRender_PublicRoute(t *testing.T) {
	out, err := executeCLI(t, "render", "pricing")
	require.NoError(t, err)
	assert.Contains(t, out, "$49/mo")
}

func TestRender_InternalRouteNeedsSession(t *testing.T) {
	out, err := executeCLI(t, "render", "team")
	require.NoError(t, err)
	assert.Contains(t, out, "Access Core")
	assert.NotContains(t, out, "Marcus Thorne")

	out, err = executeCLI(t, "render", "team", "--as", "naman@syncro.io")
	require.NoError(t, err)
	assert.Contains(t, out, "Marcus Thorne")
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Syncro V2.5.0")
}

func TestInvalidConfigFails(t *testing.T) {
	t.Setenv("SYNCRO_INITIAL_THEME", "sepia")

	_, err := executeCLI(t, "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "initial_theme")
}

func TestGolden_RecordRunDiff(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pricing.syncro"), []byte("go pricing\n"), 0600))

	out, err := executeCLI(t, "golden", "record", "pricing", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "recorded pricing")

	out, err = executeCLI(t, "golden", "run", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "PASS pricing")
	assert.Contains(t, out, "Results: 1 passed, 0 failed")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "pricing.expected"), []byte("> go pricing\nfree forever\n"), 0600))

	out, err = executeCLI(t, "golden", "run", "pricing", "--dir", dir)
	require.Error(t, err)
	assert.Contains(t, out, "FAIL pricing")

	out, err = executeCLI(t, "golden", "diff", "pricing", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "--- Diff ---")
}
