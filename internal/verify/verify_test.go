package verify

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeExec(outputs map[string]Output) Exec {
	return func(_ context.Context, cmdline string) (Output, error) {
		out, ok := outputs[cmdline]
		if !ok {
			return Output{}, fmt.Errorf("unexpected command %q", cmdline)
		}
		return out, nil
	}
}

func TestCheckAllMatch(t *testing.T) {
	same := Output{Stdout: "Final state after 1 generations:\n.O.\n", ExitCode: 0}
	run := fakeExec(map[string]Output{"ref": same, "a": same, "b": same})

	var buf bytes.Buffer
	ok, err := Check(context.Background(), &buf, run, []string{"ref", "a", "b"})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Checking command: ref\nChecking command: a\nChecking command: b\n", buf.String())
}

func TestCheckReportsDifferences(t *testing.T) {
	run := fakeExec(map[string]Output{
		"ref": {Stdout: "...\nOOO\n...\n", Stderr: "", ExitCode: 0},
		"bad": {Stdout: "...\nO.O\n...\n", Stderr: "Error: boom\n", ExitCode: 1},
	})

	var buf bytes.Buffer
	ok, err := Check(context.Background(), &buf, run, []string{"ref", "bad"})
	require.NoError(t, err)
	assert.False(t, ok)

	out := buf.String()
	assert.Contains(t, out, "Stdout differences:")
	assert.Contains(t, out, "--- expected")
	assert.Contains(t, out, "+++ actual")
	assert.Contains(t, out, "-OOO\n")
	assert.Contains(t, out, "+O.O\n")
	assert.Contains(t, out, "Stderr differences:")
	assert.Contains(t, out, "+Error: boom\n")
	assert.Contains(t, out, "Exit code differences:\nExpected: 0\nGot: 1\n")
}

func TestCheckNoCommands(t *testing.T) {
	_, err := Check(context.Background(), &bytes.Buffer{}, fakeExec(nil), nil)
	assert.EqualError(t, err, "no commands provided")
}

func TestCheckPropagatesExecErrors(t *testing.T) {
	_, err := Check(context.Background(), &bytes.Buffer{}, fakeExec(map[string]Output{"ref": {}}), []string{"ref", "missing"})
	assert.ErrorContains(t, err, "unexpected command")
}

func TestCommand(t *testing.T) {
	for _, bin := range []string{"echo", "false"} {
		if _, err := exec.LookPath(bin); err != nil {
			t.Skipf("%s not available", bin)
		}
	}

	out, err := Command(context.Background(), "false")
	require.NoError(t, err)
	assert.Equal(t, 1, out.ExitCode)

	out, err = Command(context.Background(), "echo  hello   world")
	require.NoError(t, err)
	assert.Equal(t, Output{Stdout: "hello world\n"}, out)

	_, err = Command(context.Background(), "   ")
	assert.Error(t, err)

	_, err = Command(context.Background(), "definitely-not-a-real-binary-xyz")
	assert.ErrorContains(t, err, "failed to execute")
}
