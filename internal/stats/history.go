// Package stats records population per generation and summarizes or plots it.
package stats

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrEmpty is returned when a history has no samples.
var ErrEmpty = errors.New("stats: empty history")

// History is the live-cell count of each recorded generation, starting with
// the initial state.
type History struct {
	pops []float64
}

// Record appends the population of the next generation.
func (h *History) Record(population int) {
	h.pops = append(h.pops, float64(population))
}

// Len returns the number of recorded generations.
func (h *History) Len() int { return len(h.pops) }

// Summary describes a population history.
type Summary struct {
	Generations int
	Initial     int
	Final       int
	Min         int
	Max         int
	Mean        float64
	StdDev      float64
}

// Summary computes min, max, mean and standard deviation of the history.
func (h *History) Summary() (Summary, error) {
	if len(h.pops) == 0 {
		return Summary{}, ErrEmpty
	}
	s := Summary{
		Generations: len(h.pops) - 1,
		Initial:     int(h.pops[0]),
		Final:       int(h.pops[len(h.pops)-1]),
		Min:         int(floats.Min(h.pops)),
		Max:         int(floats.Max(h.pops)),
	}
	if len(h.pops) == 1 {
		s.Mean = h.pops[0]
		return s, nil
	}
	s.Mean, s.StdDev = stat.MeanStdDev(h.pops, nil)
	return s, nil
}

// WritePNG draws population against generation as a PNG chart.
func (h *History) WritePNG(w io.Writer, title string) error {
	if len(h.pops) == 0 {
		return ErrEmpty
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "Live cells"

	pts := make(plotter.XYs, len(h.pops))
	for i, v := range h.pops {
		pts[i].X = float64(i)
		pts[i].Y = v
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("population line: %w", err)
	}
	line.Color = color.RGBA{R: 40, G: 100, B: 55, A: 255}
	line.Width = vg.Points(1.5)
	p.Add(plotter.NewGrid(), line)

	wt, err := p.WriterTo(8*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("render plot: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write plot: %w", err)
	}
	return nil
}
