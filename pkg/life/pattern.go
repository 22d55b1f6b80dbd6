package life

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"

	"life-ca/internal/fsutil"
)

// ErrPatternTooLarge is returned when a pattern does not fit inside the grid.
var ErrPatternTooLarge = errors.New("pattern larger than grid")

// Pattern is a parsed block of cells. Rows may have different lengths; missing
// trailing cells are dead.
type Pattern struct {
	rows  [][]bool
	width int
}

// Height returns the number of data rows.
func (p Pattern) Height() int { return len(p.rows) }

// Width returns the length of the longest row.
func (p Pattern) Width() int { return p.width }

// Alive reports whether the pattern cell at (i, j) is alive. Positions past
// the end of a short row are dead.
func (p Pattern) Alive(i, j int) bool {
	if i < 0 || i >= len(p.rows) || j < 0 || j >= len(p.rows[i]) {
		return false
	}
	return p.rows[i][j]
}

// Population returns the number of live cells in the pattern.
func (p Pattern) Population() int {
	total := 0
	for _, row := range p.rows {
		for _, alive := range row {
			if alive {
				total++
			}
		}
	}
	return total
}

// ParsePattern reads a plain-text pattern. Lines starting with '!' are skipped,
// every other line is a row where 'O' marks a live cell. Row length is not
// limited.
func ParsePattern(r io.Reader) (Pattern, error) {
	var p Pattern
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), math.MaxInt)
	for sc.Scan() {
		line := sc.Text()
		if len(line) > 0 && line[0] == CommentMarker {
			continue
		}
		runes := []rune(line)
		row := make([]bool, len(runes))
		for j, ch := range runes {
			row[j] = ch == AliveMarker
		}
		if len(row) > p.width {
			p.width = len(row)
		}
		p.rows = append(p.rows, row)
	}
	if err := sc.Err(); err != nil {
		return Pattern{}, fmt.Errorf("read pattern: %w", err)
	}
	return p, nil
}

// Origin returns the top-left cell where Place would put p.
func (g *Grid) Origin(p Pattern) (row, col int) {
	return (g.size - p.Height()) / 2, (g.size - p.Width()) / 2
}

// Place writes p into the center of the grid. Cells outside the pattern's
// bounding box keep their current state.
func (g *Grid) Place(p Pattern) error {
	if p.Height() > g.size || p.Width() > g.size {
		return fmt.Errorf("%w: %dx%d pattern, %dx%d grid", ErrPatternTooLarge, p.Height(), p.Width(), g.size, g.size)
	}
	startRow, startCol := g.Origin(p)
	for i, row := range p.rows {
		for j, alive := range row {
			g.Set(startRow+i, startCol+j, alive)
		}
	}
	return nil
}

// LoadPattern parses a pattern from r and centers it in the grid.
func (g *Grid) LoadPattern(r io.Reader) error {
	p, err := ParsePattern(r)
	if err != nil {
		return err
	}
	return g.Place(p)
}

// LoadPatternFile opens path on fsys, loads it into the grid and closes it.
func (g *Grid) LoadPatternFile(fsys fsutil.FileSystem, path string) error {
	f, err := fsys.Open(path)
	if err != nil {
		return fmt.Errorf("open pattern: %w", err)
	}
	defer f.Close()
	if err := g.LoadPattern(f); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
