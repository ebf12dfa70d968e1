package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lucide-gen/builder/parser"
)

const header = `<svg
  xmlns="http://www.w3.org/2000/svg"
  width="24"
  height="24"
  viewBox="0 0 24 24"
  fill="none"
  stroke="currentColor"
  stroke-width="2"
  stroke-linecap="round"
  stroke-linejoin="round"
>
`

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source: a\noutput: b\npackage: fromfile\nreserved: [box]\n"), 0644))

	cfg, err := loadConfig([]string{"-config", path, "-package", "fromflag", "-reserved", "move, type", "-force"})
	require.NoError(t, err)
	assert.Equal(t, "a", cfg.SourceDir)
	assert.Equal(t, "b", cfg.OutputDir)
	assert.Equal(t, "fromflag", cfg.Package)
	assert.Equal(t, []string{"box", "move", "type"}, cfg.Reserved)
	assert.True(t, cfg.Force)
	assert.False(t, cfg.Watch)

	opts := buildOptions(cfg)
	assert.Equal(t, parser.Lucide, opts.Layout)
	assert.Equal(t, "index.go", opts.Sentinel)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := loadConfig([]string{"-config", filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)

	_, err = loadConfig([]string{"-package", "not-valid"})
	assert.ErrorContains(t, err, "invalid configuration")

	_, err = loadConfig([]string{"-unknown"})
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "icons")
	for _, name := range []string{"a-arrow-down", "move"} {
		contents := header + "  <path d=\"m3 16 4 4 4-4\" />\n</svg>\n"
		require.NoError(t, os.WriteFile(filepath.Join(src, name+".svg"), []byte(contents), 0644))
	}

	args := []string{"-source", src, "-output", out, "-reserved", "move", "-log-level", "error"}
	require.NoError(t, run(args))

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	var files []string
	for _, e := range entries {
		files = append(files, e.Name())
	}
	assert.Equal(t, []string{"a_arrow_down.go", "index.go", "move_.go"}, files)

	index, err := os.ReadFile(filepath.Join(out, "index.go"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(index), `Module: "move_", Component: Move}`))

	// A second run finds the sentinel and leaves the output alone.
	require.NoError(t, os.Remove(filepath.Join(out, "move_.go")))
	require.NoError(t, run(args))
	assert.NoFileExists(t, filepath.Join(out, "move_.go"))
}
