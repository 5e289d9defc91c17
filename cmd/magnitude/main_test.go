// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/magnitude/config"
	"github.com/katalvlaran/magnitude/magnitude"
)

const (
	disjoint = "abcdefgh\nijklmnop\nqrstuvwx\nyz123456\n"
	grouped  = "aaa\naab\nbbb\nbbc\nccc\nccd\n"
)

// run executes the command tree with stdin and returns stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestCompute_Text(t *testing.T) {
	out, _, err := run(t, disjoint, "compute")
	require.NoError(t, err)
	assert.Contains(t, out, "Excellent diversity: magnitude 4.00 across 4 items (100% diversity)")
	assert.Contains(t, out, "magnitude: 3.9995")
	assert.Contains(t, out, "items:     4")
	assert.NotContains(t, out, "redundant pairs")
}

func TestCompute_RedundantText(t *testing.T) {
	out, _, err := run(t, "hello\nhello\n", "compute")
	require.NoError(t, err)
	assert.Contains(t, out, "redundant pairs:")
	assert.Contains(t, out, "  0 1 1.0000")
}

func TestCompute_JSON(t *testing.T) {
	out, _, err := run(t, disjoint, "compute", "--format", "json", "--details")
	require.NoError(t, err)

	var res magnitude.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 4, res.Size)
	assert.InDelta(t, 4.0, res.Value, 1e-3)
	assert.Len(t, res.Similarity, 4)
	assert.False(t, res.Fallback)
}

func TestCompute_InputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\r\n\n  \ntwo\r\n"), 0o600))

	out, _, err := run(t, "", "compute", "--input", path, "-f", "json")
	require.NoError(t, err)
	var res magnitude.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 2, res.Size, "blank lines are skipped")

	usage := newRootCmd().PersistentFlags().Lookup("input").Usage
	assert.Contains(t, usage, "blank lines skipped")

	_, _, err = run(t, "", "compute", "--input", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestSelect(t *testing.T) {
	out, _, err := run(t, grouped, "select", "-k", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "0\taaa\n2\tbbb\n4\tccc\n")
	assert.Contains(t, out, "(3 of 6 items)")

	out, _, err = run(t, grouped, "select", "-k", "3", "--format", "json")
	require.NoError(t, err)
	var sel selection
	require.NoError(t, json.Unmarshal([]byte(out), &sel))
	assert.Equal(t, []int{0, 2, 4}, sel.Indices)
	assert.Equal(t, []string{"aaa", "bbb", "ccc"}, sel.Items)
	assert.Equal(t, 3, sel.Result.Size)
}

func TestContribution(t *testing.T) {
	out, _, err := run(t, "", "contribution", "anything")
	require.NoError(t, err)
	assert.Equal(t, "1.0000\n", out)

	out, _, err = run(t, "hello\n", "contribution", "--format", "json", "hello")
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.InDelta(t, 0.0, got["contribution"].(float64), 1e-6, "a duplicate adds nothing")
	assert.EqualValues(t, 1, got["existing"])

	_, _, err = run(t, "", "contribution")
	require.Error(t, err)
}

func TestDistance(t *testing.T) {
	out, _, err := run(t, "", "distance", "abc", "abc")
	require.NoError(t, err)
	assert.Equal(t, "0.000000\n", out)

	out, _, err = run(t, "", "distance", "abc", "xyz")
	require.NoError(t, err)
	assert.Equal(t, "10.000000\n", out)

	out, _, err = run(t, "", "distance", "--distance", "cosine", "-f", "json", "red fox", "red dog")
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "cosine", got["distance"])
	assert.Greater(t, got["value"].(float64), 0.0)
}

func TestFlagsAndConfig(t *testing.T) {
	_, _, err := run(t, "", "distance", "--distance", "hamming", "a", "b")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = run(t, "", "compute", "--format", "xml")
	require.Error(t, err)

	_, _, err = run(t, "", "compute", "--scale=-1")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	path := filepath.Join(t.TempDir(), "magnitude.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine:\n  distance: ngram\n"), 0o600))
	out, _, err := run(t, "", "distance", "--config", path, "-f", "json", "a", "b")
	require.NoError(t, err)
	assert.Contains(t, out, `"distance": "ngram"`)
}

func TestLoggingAndMetrics(t *testing.T) {
	_, stderr, err := run(t, grouped, "compute", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "engine ready")

	_, stderr, err = run(t, grouped, "select", "-k", "2", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, stderr, "magnitude_selections_total 1")
	assert.Contains(t, stderr, "magnitude_edit_cache_misses_total")
	assert.Contains(t, stderr, `magnitude_computations_total{fallback="false",op="incremental"}`)
}
