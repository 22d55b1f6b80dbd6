package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"life-ca/internal/cli"
	"life-ca/internal/ctxlog"
	"life-ca/internal/fsutil"
	"life-ca/internal/runner"
)

func main() {
	// Minimal logger until flags are parsed.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args, fsutil.OSFileSystem{}); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			stop()
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run parses args (including the program name) and executes the simulation.
func run(ctx context.Context, stdout, stderr io.Writer, args []string, fsys fsutil.FileSystem) error {
	prog := "life"
	if len(args) > 0 {
		prog = filepath.Base(args[0])
		args = args[1:]
	}

	inv, shouldExit, err := cli.Parse(prog, args, stderr, fsys)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := runner.NewLogger(inv.LogLevel, inv.LogFormat, stderr)
	ctx = ctxlog.WithLogger(ctx, logger)

	_, err = runner.Execute(ctx, inv.Run, runner.Options{
		FS:       fsys,
		Out:      stdout,
		Stats:    inv.Stats,
		PlotPath: inv.PlotPath,
	})
	if err != nil {
		return &cli.ExitError{Code: 1, Message: "Error: " + err.Error()}
	}
	return nil
}
