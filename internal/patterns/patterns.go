// Package patterns embeds a small library of well-known starting patterns in
// the plain-text .cells format.
package patterns

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"life-ca/internal/fsutil"
	"life-ca/pkg/life"
)

// Prefix selects a built-in pattern in place of a file path.
const Prefix = "builtin:"

//go:embed data/*.cells
var data embed.FS

// Names lists the built-in patterns in sorted order.
func Names() []string {
	entries, err := fs.ReadDir(data, "data")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".cells"))
	}
	slices.Sort(names)
	return names
}

// IsBuiltin reports whether ref names a built-in pattern.
func IsBuiltin(ref string) bool { return strings.HasPrefix(ref, Prefix) }

// Open returns the built-in pattern named by ref, with or without Prefix.
func Open(ref string) (fs.File, error) {
	name := strings.TrimPrefix(ref, Prefix)
	f, err := data.Open(path.Join("data", name+".cells"))
	if err != nil {
		return nil, fmt.Errorf("unknown built-in pattern %q (have %s): %w", name, strings.Join(Names(), ", "), err)
	}
	return f, nil
}

// Load parses the pattern named by ref: a built-in when ref carries Prefix,
// otherwise a file read from fsys.
func Load(fsys fsutil.FileSystem, ref string) (life.Pattern, error) {
	var (
		f   fs.File
		err error
	)
	if IsBuiltin(ref) {
		f, err = Open(ref)
	} else {
		f, err = fsys.Open(ref)
	}
	if err != nil {
		return life.Pattern{}, fmt.Errorf("open pattern: %w", err)
	}
	defer f.Close()

	p, err := life.ParsePattern(f)
	if err != nil {
		return life.Pattern{}, fmt.Errorf("load %s: %w", ref, err)
	}
	return p, nil
}
