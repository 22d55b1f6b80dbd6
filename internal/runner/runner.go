// Package runner executes a configured simulation: it loads the pattern, steps
// the grid and writes snapshots according to the print mode.
package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"life-ca/internal/config"
	"life-ca/internal/ctxlog"
	"life-ca/internal/fsutil"
	"life-ca/internal/patterns"
	"life-ca/internal/stats"
	"life-ca/pkg/life"
)

// Options carries the collaborators of a run.
type Options struct {
	// FS resolves pattern files and receives the plot. Defaults to the OS.
	FS fsutil.FileSystem
	// Out receives rendered grids.
	Out io.Writer
	// Stats logs a population summary at info level when set.
	Stats bool
	// PlotPath, when non-empty, receives a PNG chart of the population.
	PlotPath string
}

// Result describes a finished run.
type Result struct {
	ID      string
	Final   *life.Grid
	History stats.History
}

// Execute runs cfg to completion or until ctx is cancelled between
// generations.
func Execute(ctx context.Context, cfg config.Run, opts Options) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts.FS == nil {
		opts.FS = fsutil.OSFileSystem{}
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}

	res := &Result{ID: uuid.NewString()}
	logger := ctxlog.FromContext(ctx).With("run_id", res.ID)
	logger.Debug("Run starting.", "size", cfg.Size, "iterations", cfg.Iterations, "print_mode", cfg.PrintMode, "pattern", cfg.PatternFile)

	grid := life.New(cfg.Size)
	if err := loadPattern(grid, opts.FS, cfg.PatternFile); err != nil {
		return nil, err
	}
	res.History.Record(grid.Population())
	logger.Debug("Pattern loaded.", "population", grid.Population())

	out := bufio.NewWriter(opts.Out)
	if cfg.PrintMode == config.PrintAll {
		if err := snapshot(out, "Initial state:", grid); err != nil {
			return nil, err
		}
	}

	spare := life.New(cfg.Size)
	for i := 1; i <= cfg.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			_ = out.Flush()
			return nil, fmt.Errorf("stopped before generation %d: %w", i, err)
		}
		grid.NextInto(spare)
		grid, spare = spare, grid
		res.History.Record(grid.Population())

		if cfg.PrintMode == config.PrintAll {
			if err := snapshot(out, fmt.Sprintf("Generation %d:", i), grid); err != nil {
				return nil, err
			}
		}
	}

	if cfg.PrintMode == config.PrintFinal {
		if err := snapshot(out, fmt.Sprintf("Final state after %d generations:", cfg.Iterations), grid); err != nil {
			return nil, err
		}
	}
	if err := out.Flush(); err != nil {
		return nil, fmt.Errorf("write output: %w", err)
	}
	res.Final = grid

	if opts.Stats {
		s, err := res.History.Summary()
		if err != nil {
			return nil, err
		}
		logger.Info("Population summary.",
			"generations", s.Generations,
			"initial", s.Initial,
			"final", s.Final,
			"min", s.Min,
			"max", s.Max,
			"mean", s.Mean,
			"stddev", s.StdDev,
		)
	}
	if opts.PlotPath != "" {
		if err := writePlot(opts.FS, opts.PlotPath, cfg, &res.History); err != nil {
			return nil, err
		}
		logger.Debug("Population plot written.", "path", opts.PlotPath)
	}

	logger.Debug("Run finished.", "population", grid.Population())
	return res, nil
}

func loadPattern(grid *life.Grid, fsys fsutil.FileSystem, ref string) error {
	p, err := patterns.Load(fsys, ref)
	if err != nil {
		return err
	}
	if err := grid.Place(p); err != nil {
		return fmt.Errorf("place %s: %w", ref, err)
	}
	return nil
}

// snapshot writes a header line, the grid and a blank separator line.
func snapshot(w *bufio.Writer, header string, grid *life.Grid) error {
	if _, err := w.WriteString(header + "\n"); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if _, err := grid.WriteTo(w); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if err := w.WriteByte('\n'); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func writePlot(fsys fsutil.FileSystem, path string, cfg config.Run, h *stats.History) error {
	f, err := fsys.Create(path)
	if err != nil {
		return fmt.Errorf("create plot: %w", err)
	}
	title := fmt.Sprintf("%s on %dx%d", cfg.PatternFile, cfg.Size, cfg.Size)
	if err := h.WritePNG(f, title); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
