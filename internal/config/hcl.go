package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"life-ca/internal/fsutil"
	"life-ca/internal/patterns"
)

// hclRunFile is the on-disk shape of a run file:
//
//	print_mode   = "all"
//	size         = 32
//	iterations   = 100
//	pattern_file = "${env.PATTERNS}/glider.cells"
type hclRunFile struct {
	PrintMode   string `hcl:"print_mode,optional"`
	Size        int    `hcl:"size"`
	Iterations  int    `hcl:"iterations,optional"`
	PatternFile string `hcl:"pattern_file"`
}

// LoadFile reads an HCL run file from fsys. Expressions may reference
// environment variables through the env object. A relative pattern path is
// resolved against the run file's directory.
func LoadFile(fsys fsutil.FileSystem, path string) (Run, error) {
	src, err := fsys.ReadFile(path)
	if err != nil {
		return Run{}, fmt.Errorf("read run file: %w", err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, path)
	if diags.HasErrors() {
		return Run{}, fmt.Errorf("failed to parse run file %s: %w", path, diags)
	}

	var raw hclRunFile
	if diags := gohcl.DecodeBody(file.Body, EvalContext(os.Environ()), &raw); diags.HasErrors() {
		return Run{}, fmt.Errorf("failed to decode run file %s: %w", path, diags)
	}

	mode := PrintFinal
	if raw.PrintMode != "" {
		if mode, err = ParsePrintMode(raw.PrintMode); err != nil {
			return Run{}, err
		}
	}

	pattern := raw.PatternFile
	if pattern != "" && !patterns.IsBuiltin(pattern) && !filepath.IsAbs(pattern) {
		pattern = filepath.Join(filepath.Dir(path), pattern)
	}

	r := Run{PrintMode: mode, Size: raw.Size, Iterations: raw.Iterations, PatternFile: pattern}
	return r, r.Validate()
}

// EvalContext exposes environ (KEY=VALUE pairs) as the env object.
func EvalContext(environ []string) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = cty.StringVal(v)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": cty.ObjectVal(vars)},
	}
}
