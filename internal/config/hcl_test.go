package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"life-ca/internal/fsutil"
)

func TestLoadFile(t *testing.T) {
	t.Setenv("LIFE_TEST_PATTERNS", "/srv/patterns")

	mfs := fsutil.NewMemoryFileSystem()
	require.NoError(t, mfs.WriteFile("/runs/glider.hcl", []byte(`
print_mode   = "all"
size         = 16
iterations   = 8
pattern_file = "${env.LIFE_TEST_PATTERNS}/glider.cells"
`), 0o644))

	got, err := LoadFile(mfs, "/runs/glider.hcl")
	require.NoError(t, err)
	assert.Equal(t, Run{PrintMode: PrintAll, Size: 16, Iterations: 8, PatternFile: "/srv/patterns/glider.cells"}, got)
}

func TestLoadFileDefaultsAndRelativePattern(t *testing.T) {
	mfs := fsutil.NewMemoryFileSystem()
	require.NoError(t, mfs.WriteFile("/runs/r.hcl", []byte("size = 5\npattern_file = \"blinker.cells\"\n"), 0o644))
	require.NoError(t, mfs.WriteFile("/runs/b.hcl", []byte("size = 5\npattern_file = \"builtin:glider\"\n"), 0o644))

	got, err := LoadFile(mfs, "/runs/r.hcl")
	require.NoError(t, err)
	assert.Equal(t, PrintFinal, got.PrintMode)
	assert.Equal(t, 0, got.Iterations)
	assert.Equal(t, filepath.Join("/runs", "blinker.cells"), got.PatternFile)

	got, err = LoadFile(mfs, "/runs/b.hcl")
	require.NoError(t, err)
	assert.Equal(t, "builtin:glider", got.PatternFile)
}

func TestLoadFilePatternFileKey(t *testing.T) {
	mfs := fsutil.NewMemoryFileSystem()
	require.NoError(t, mfs.WriteFile("/r.hcl", []byte("size = 5\npattern_file = \"builtin:blinker\"\n"), 0o644))

	got, err := LoadFile(mfs, "/r.hcl")
	require.NoError(t, err)
	assert.Equal(t, Run{PrintMode: PrintFinal, Size: 5, PatternFile: "builtin:blinker"}, got)
}

func TestLoadFileErrors(t *testing.T) {
	mfs := fsutil.NewMemoryFileSystem()
	require.NoError(t, mfs.WriteFile("/bad_syntax.hcl", []byte("size = \n"), 0o644))
	require.NoError(t, mfs.WriteFile("/bad_mode.hcl", []byte("print_mode = \"loud\"\nsize = 5\npattern_file = \"p\"\n"), 0o644))
	require.NoError(t, mfs.WriteFile("/bad_size.hcl", []byte("size = 0\npattern_file = \"p\"\n"), 0o644))
	require.NoError(t, mfs.WriteFile("/no_pattern.hcl", []byte("size = 4\n"), 0o644))
	require.NoError(t, mfs.WriteFile("/short_key.hcl", []byte("size = 4\npattern = \"builtin:block\"\n"), 0o644))

	_, err := LoadFile(mfs, "/missing.hcl")
	assert.ErrorContains(t, err, "read run file")

	_, err = LoadFile(mfs, "/bad_syntax.hcl")
	assert.ErrorContains(t, err, "failed to parse run file")

	_, err = LoadFile(mfs, "/bad_mode.hcl")
	assert.ErrorIs(t, err, ErrInvalidPrintMode)

	_, err = LoadFile(mfs, "/bad_size.hcl")
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = LoadFile(mfs, "/no_pattern.hcl")
	assert.ErrorContains(t, err, "failed to decode run file")

	_, err = LoadFile(mfs, "/short_key.hcl")
	assert.ErrorContains(t, err, "failed to decode run file")
}

func TestEvalContext(t *testing.T) {
	ctx := EvalContext([]string{"A=1", "B=x=y", "=skip", "noequals"})
	env := ctx.Variables["env"]
	assert.Equal(t, "1", env.GetAttr("A").AsString())
	assert.Equal(t, "x=y", env.GetAttr("B").AsString())
	assert.Len(t, env.Type().AttributeTypes(), 2)
}
