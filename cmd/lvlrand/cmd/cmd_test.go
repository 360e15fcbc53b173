package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlrand/cmd/lvlrand/cmd"
	"github.com/katalvlaran/lvlrand/dump"
)

// run executes the command tree with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := cmd.NewRootCommand()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

// TestGenerateCompare_RoundTrip verifies a generated dump validates cleanly.
func TestGenerateCompare_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	textfile := filepath.Join(dir, "generate.prom")

	out, _, err := run(t, "generate", "--seed", "5", "--n", "1000", "--output", dir, "--metrics.textfile", textfile)
	require.NoError(t, err)
	path := filepath.Join(dir, "N1000.txt")
	assert.Contains(t, out, "Wrote 1,000 values")
	assert.Contains(t, out, "with seed 5 to "+path)

	seed, values, err := dump.Read(mustOpen(t, path))
	require.NoError(t, err)
	assert.Equal(t, uint32(5), seed)
	assert.Len(t, values, 1000)

	prom, err := os.ReadFile(textfile)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "lvlrand_dump_values 1000")
	assert.Contains(t, string(prom), `lvlrand_generator_seed{algorithm="dsfmt19937",generator="generate"} 5`)

	out, _, err = run(t, "compare", "--input", path)
	require.NoError(t, err)
	assert.Equal(t, "Comparison done. 0 error(s)\n", out)
}

func TestCompare_Mismatch(t *testing.T) {
	dir := t.TempDir()
	_, _, err := run(t, "generate", "--seed", "11", "--n", "20", "--output", dir, "--algorithm", "pcg")
	require.NoError(t, err)

	path := filepath.Join(dir, "N20.txt")
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(string(raw), "\n")
	lines[3] = "0.5"
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644))

	out, stderr, err := run(t, "compare", "--input", path, "--algorithm", "pcg")
	require.Error(t, err)
	assert.ErrorIs(t, err, dump.ErrMismatch)
	assert.Equal(t, "Comparison done. 1 error(s)\n", out)
	assert.Contains(t, stderr, "value 2: stored 0.5")

	// Regenerating with another algorithm disagrees everywhere.
	out, _, err = run(t, "compare", "--input", path, "--algorithm", "dsfmt")
	require.Error(t, err)
	assert.Equal(t, "Comparison done. 20 error(s)\n", out)
}

func TestCompare_MissingFile(t *testing.T) {
	_, _, err := run(t, "compare", "--input", filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDraw_Golden(t *testing.T) {
	out, _, err := run(t, "draw", "--seed", "0", "--transform", "open0close1", "--n", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "# algorithm=dsfmt19937 seed=0 transform=open0close1", lines[0])
	assert.Equal(t, []string{"0.9694189732306255", "0.7868596799329879", "0.7009974749839987"}, lines[1:4])
	assert.Equal(t, "# algorithm=dsfmt19937 seed=0 calls=3 initialized=true gaussian_cached=false", lines[4])
}

func TestDraw_SkipBitsDirection(t *testing.T) {
	out, _, err := run(t, "draw", "--seed", "0", "--transform", "close1open2", "--n", "1", "--skip", "1", "--bits")
	require.NoError(t, err)
	assert.Contains(t, out, "1.2131403200670121 [0 01111111111 ")

	out, _, err = run(t, "draw", "--seed", "0", "--transform", "direction", "--n", "1")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Len(t, strings.Fields(lines[1]), 3)
}

func TestDraw_Errors(t *testing.T) {
	_, _, err := run(t, "draw", "--transform", "triangle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown transform")

	_, _, err = run(t, "draw", "--algorithm", "mt19937")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mt19937")

	_, _, err = run(t, "draw", "--log.level", "loud")
	assert.Error(t, err)
}

// TestEnv checks values coming from LVLRAND_* variables.
func TestEnv(t *testing.T) {
	t.Setenv("LVLRAND_ALGORITHM", "lcg")
	t.Setenv("LVLRAND_DRAW_N", "1")

	out, stderr, err := run(t, "draw", "--seed", "0", "--transform", "open0close1")
	require.NoError(t, err)
	assert.Equal(t, "# algorithm=lcg seed=0 transform=open0close1\n1\n"+
		"# algorithm=lcg seed=0 calls=1 initialized=true gaussian_cached=false\n", out)
	assert.Contains(t, stderr, "weak uniform generator in use")
}

// TestConfigFile checks values coming from --config; flags still win.
func TestConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "lvlrand.yaml")
	body := "algorithm: pcg\nseed: 3\ndraw:\n  n: 2\n  transform: gaussian\n"
	require.NoError(t, os.WriteFile(cfg, []byte(body), 0o600))

	out, _, err := run(t, "draw", "--config", cfg)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "# algorithm=pcg seed=3 transform=gaussian", lines[0])
	assert.Contains(t, lines[3], "gaussian_cached=false")

	out, _, err = run(t, "draw", "--config", cfg, "--seed", "4", "--n", "1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# algorithm=pcg seed=4 transform=gaussian\n"))

	_, _, err = run(t, "draw", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestHistogram(t *testing.T) {
	dir := t.TempDir()
	_, _, err := run(t, "generate", "--seed", "2", "--n", "500", "--output", dir)
	require.NoError(t, err)

	path := filepath.Join(dir, "N500.txt")
	out, _, err := run(t, "histogram", "--bins", "4", path)
	require.NoError(t, err)
	assert.Contains(t, out, path+" (seed 2)")
	assert.Contains(t, out, "COUNT")
	assert.Contains(t, out, "VARIANCE")

	_, _, err = run(t, "histogram", "--bins", "0", path)
	assert.ErrorIs(t, err, dump.ErrBadBins)

	_, _, err = run(t, "histogram")
	assert.Error(t, err)
}

func mustOpen(t *testing.T, path string) *os.File {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}
