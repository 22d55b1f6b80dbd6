// Package verify runs several commands and reports where their stdout,
// stderr or exit code differ from the first one.
package verify

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Output is what a command produced.
type Output struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Exec runs a command line and captures its output.
type Exec func(ctx context.Context, cmdline string) (Output, error)

// Command splits cmdline on whitespace and runs it. A command that starts but
// exits non-zero is not an error; its code is reported in Output. Processes
// killed by a signal report -1.
func Command(ctx context.Context, cmdline string) (Output, error) {
	fields := strings.Fields(cmdline)
	if len(fields) == 0 {
		return Output{}, errors.New("empty command")
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, fields[0], fields[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := Output{Stdout: stdout.String(), Stderr: stderr.String()}
	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
	default:
		return Output{}, fmt.Errorf("failed to execute %q: %w", cmdline, err)
	}
	out.ExitCode = cmd.ProcessState.ExitCode()
	return out, nil
}

// Compare writes the differences between expected and actual to w and
// reports whether they match.
func Compare(w io.Writer, expected, actual Output) bool {
	match := true
	if expected.Stdout != actual.Stdout {
		fmt.Fprintf(w, "Stdout differences:\n%s\n", unified(expected.Stdout, actual.Stdout))
		match = false
	}
	if expected.Stderr != actual.Stderr {
		fmt.Fprintf(w, "Stderr differences:\n%s\n", unified(expected.Stderr, actual.Stderr))
		match = false
	}
	if expected.ExitCode != actual.ExitCode {
		fmt.Fprintln(w, "Exit code differences:")
		fmt.Fprintf(w, "Expected: %d\n", expected.ExitCode)
		fmt.Fprintf(w, "Got: %d\n", actual.ExitCode)
		match = false
	}
	return match
}

func unified(a, b string) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(a),
		B:        difflib.SplitLines(b),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  3,
	})
	if err != nil {
		return err.Error()
	}
	return diff
}

// Check runs cmds[0] as the reference and compares every other command
// against it, writing progress and differences to w.
func Check(ctx context.Context, w io.Writer, run Exec, cmds []string) (bool, error) {
	if len(cmds) == 0 {
		return false, errors.New("no commands provided")
	}

	fmt.Fprintf(w, "Checking command: %s\n", cmds[0])
	expected, err := run(ctx, cmds[0])
	if err != nil {
		return false, err
	}

	allMatch := true
	for _, cmdline := range cmds[1:] {
		fmt.Fprintf(w, "Checking command: %s\n", cmdline)
		actual, err := run(ctx, cmdline)
		if err != nil {
			return false, err
		}
		if !Compare(w, expected, actual) {
			allMatch = false
		}
	}
	return allMatch, nil
}
