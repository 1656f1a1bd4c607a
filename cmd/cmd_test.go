package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rybkr/keypad/internal/chain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the command tree with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestSolve_Arguments(t *testing.T) {
	out, _, err := execute(t, "solve", "029A", "980A", "179A", "456A", "379A")
	require.NoError(t, err)
	assert.Contains(t, out, "029A: 1972\n")
	assert.True(t, strings.HasSuffix(out, "total (depth 2): 126384\n"), out)
}

func TestSolve_FileAndDepth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codes.txt")
	content := "# example codes\n029A\n980A  # trailing comment\n\n179A\n456A\n379A\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	out, _, err := execute(t, "solve", "--file", path, "--depth", "25", "--workers", "3")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "total (depth 25): 154115708116294\n"), out)
}

func TestSolve_ConfigWithFlagOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.toml")
	require.NoError(t, os.WriteFile(path, []byte("depth = 25\ncodes = [\"029A\"]\n"), 0600))

	out, _, err := execute(t, "solve", "--config", path, "--depth", "2", "--verbose")
	require.NoError(t, err)
	assert.Equal(t, "029A: 68 presses * 29 = 1972\ntotal (depth 2): 1972\n", out)
}

func TestSolve_BadCodeIsReportedNotFatal(t *testing.T) {
	out, errOut, err := execute(t, "solve", "029A", "12X")
	require.NoError(t, err)
	assert.Contains(t, out, "12X: error:")
	assert.Contains(t, out, "total (depth 2): 1972\n")
	assert.Contains(t, errOut, "Code evaluation failed.")

	_, _, err = execute(t, "solve", "--strict", "029A", "12X")
	require.Error(t, err)
}

func TestSolve_Errors(t *testing.T) {
	_, _, err := execute(t, "solve")
	require.ErrorIs(t, err, errNoCodes)

	_, _, err = execute(t, "solve", "--depth", "-1", "029A")
	require.Error(t, err)

	_, _, err = execute(t, "--log-level", "loud", "solve", "029A")
	require.Error(t, err)

	_, _, err = execute(t, "solve", "--file", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestRoute(t *testing.T) {
	out, _, err := execute(t, "route", "029A", "--depth", "1")
	require.NoError(t, err)
	assert.Equal(t,
		"robot 1 (12): <A^A^^>AvvvA\n"+
			"human (28): v<<A>>^A<A>A<AAv>A^A<vAAA^>A\n",
		out)

	_, _, err = execute(t, "route", "029A", "--depth", "9")
	require.Error(t, err)

	_, _, err = execute(t, "route", "029A", "--depth", "-3")
	require.ErrorIs(t, err, chain.ErrInvalidDepth)

	_, _, err = execute(t, "route")
	require.Error(t, err)
}

func TestProfile(t *testing.T) {
	out, _, err := execute(t, "profile", "029A", "--depth", "2")
	require.NoError(t, err)
	assert.Equal(t, "depth  0: 12\ndepth  1: 28\ndepth  2: 68\ngrowth: 2.429\n", out)
}

func TestReadCodes(t *testing.T) {
	codes, err := readCodes(strings.NewReader("  029A \n#skip\n\n980A#x\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"029A", "980A"}, codes)
}

func TestSolve_DeepChainOverflowIsReported(t *testing.T) {
	out, _, err := execute(t, "solve", "--depth", "50", "--log-level", "error", "029A")
	require.NoError(t, err)
	assert.Contains(t, out, "029A: error: press count overflows int")

	_, _, err = execute(t, "solve", "--depth", "50", "--log-level", "error", "--strict", "029A")
	require.ErrorIs(t, err, chain.ErrOverflow)
}
