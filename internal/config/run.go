// Package config describes a single simulation run and loads it from
// command-line arguments or HCL run files.
package config

import (
	"errors"
	"fmt"
	"strconv"
)

// PrintMode selects which generations a run writes to its output.
type PrintMode string

const (
	// PrintAll writes the initial state and every generation.
	PrintAll PrintMode = "all"
	// PrintFinal writes only the last generation.
	PrintFinal PrintMode = "final"
	// PrintNone suppresses grid output.
	PrintNone PrintMode = "none"
)

var (
	// ErrInvalidPrintMode is returned for a print mode other than all, final or none.
	ErrInvalidPrintMode = errors.New("invalid print mode")
	// ErrInvalidSize is returned when the grid size is not a positive integer.
	ErrInvalidSize = errors.New("invalid size")
	// ErrInvalidIterations is returned when the iteration count is not a non-negative integer.
	ErrInvalidIterations = errors.New("invalid iterations")
	// ErrMissingPattern is returned when no pattern file is given.
	ErrMissingPattern = errors.New("missing pattern file")
)

// ParsePrintMode validates s as one of all, final or none.
func ParsePrintMode(s string) (PrintMode, error) {
	switch m := PrintMode(s); m {
	case PrintAll, PrintFinal, PrintNone:
		return m, nil
	}
	return "", fmt.Errorf("%w %q: must be 'all', 'final' or 'none'", ErrInvalidPrintMode, s)
}

// Run is a validated request to simulate Iterations generations of
// PatternFile on a Size x Size grid.
type Run struct {
	PrintMode   PrintMode
	Size        int
	Iterations  int
	PatternFile string
}

// Validate checks the run against the engine's preconditions.
func (r Run) Validate() error {
	if _, err := ParsePrintMode(string(r.PrintMode)); err != nil {
		return err
	}
	if r.Size < 1 {
		return fmt.Errorf("%w %d: must be a positive integer", ErrInvalidSize, r.Size)
	}
	if r.Iterations < 0 {
		return fmt.Errorf("%w %d: must not be negative", ErrInvalidIterations, r.Iterations)
	}
	if r.PatternFile == "" {
		return ErrMissingPattern
	}
	return nil
}

// FromArgs builds a Run from the positional arguments
// <print_mode> <size> <iterations> <pattern_file>.
func FromArgs(args []string) (Run, error) {
	if len(args) != 4 {
		return Run{}, fmt.Errorf("expected 4 arguments, got %d", len(args))
	}
	mode, err := ParsePrintMode(args[0])
	if err != nil {
		return Run{}, err
	}
	size, err := strconv.Atoi(args[1])
	if err != nil || size < 1 {
		return Run{}, fmt.Errorf("%w %q: must be a positive integer", ErrInvalidSize, args[1])
	}
	iterations, err := strconv.Atoi(args[2])
	if err != nil || iterations < 0 {
		return Run{}, fmt.Errorf("%w %q: must be a non-negative integer", ErrInvalidIterations, args[2])
	}
	r := Run{PrintMode: mode, Size: size, Iterations: iterations, PatternFile: args[3]}
	return r, r.Validate()
}
