package life

import (
	"fmt"
	"io"
	"strings"
)

const (
	// AliveMarker is the character used for live cells in patterns and rendered output.
	AliveMarker = 'O'
	// DeadMarker is the character used for dead cells in rendered output.
	DeadMarker = '.'
	// CommentMarker starts a pattern line that carries no cells.
	CommentMarker = '!'
)

// Grid is a fixed-size square board with hard edges. Cells outside the board
// are permanently dead.
type Grid struct {
	size  int
	cells []bool
}

// New returns a grid of size*size dead cells. size must be at least 1.
func New(size int) *Grid {
	return &Grid{size: size, cells: make([]bool, size*size)}
}

// Size returns the width and height of the grid.
func (g *Grid) Size() int { return g.size }

// Cells exposes the row-major backing slice.
func (g *Grid) Cells() []bool { return g.cells }

func (g *Grid) index(row, col int) int {
	if row < 0 || row >= g.size || col < 0 || col >= g.size {
		panic(fmt.Sprintf("life: cell (%d,%d) outside %dx%d grid", row, col, g.size, g.size))
	}
	return row*g.size + col
}

// Get reports whether the cell at (row, col) is alive. It panics when the
// coordinates fall outside the grid.
func (g *Grid) Get(row, col int) bool { return g.cells[g.index(row, col)] }

// Set updates the cell at (row, col). It panics when the coordinates fall
// outside the grid.
func (g *Grid) Set(row, col int, alive bool) { g.cells[g.index(row, col)] = alive }

// CountLiveNeighbors counts live cells in the Moore neighborhood of (row, col).
func (g *Grid) CountLiveNeighbors(row, col int) int {
	n := g.size
	count := 0
	for dr := -1; dr <= 1; dr++ {
		r := row + dr
		if r < 0 || r >= n {
			continue
		}
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			c := col + dc
			if c < 0 || c >= n {
				continue
			}
			if g.cells[r*n+c] {
				count++
			}
		}
	}
	return count
}

// Next returns the following generation as a new grid. The receiver is not
// modified.
func (g *Grid) Next() *Grid {
	next := New(g.size)
	g.step(next)
	return next
}

// NextInto writes the following generation into dst, which must have the same
// size and must not be g itself.
func (g *Grid) NextInto(dst *Grid) {
	if dst == g {
		panic("life: NextInto destination aliases source grid")
	}
	if dst.size != g.size {
		panic(fmt.Sprintf("life: NextInto size mismatch %d != %d", dst.size, g.size))
	}
	g.step(dst)
}

func (g *Grid) step(dst *Grid) {
	n := g.size
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			neighbors := g.CountLiveNeighbors(row, col)
			idx := row*n + col
			alive := g.cells[idx]
			dst.cells[idx] = (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3)
		}
	}
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	total := 0
	for _, alive := range g.cells {
		if alive {
			total++
		}
	}
	return total
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cp := &Grid{size: g.size, cells: make([]bool, len(g.cells))}
	copy(cp.cells, g.cells)
	return cp
}

// Equal reports whether both grids have the same size and cell states.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.size != other.size {
		return false
	}
	for i, alive := range g.cells {
		if other.cells[i] != alive {
			return false
		}
	}
	return true
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = false
	}
}

// WriteTo renders the grid as size lines of O and . characters.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	n := g.size
	line := make([]byte, n+1)
	line[n] = '\n'
	var written int64
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if g.cells[row*n+col] {
				line[col] = AliveMarker
			} else {
				line[col] = DeadMarker
			}
		}
		m, err := w.Write(line)
		written += int64(m)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// String renders the grid the same way as WriteTo.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.size * (g.size + 1))
	_, _ = g.WriteTo(&b)
	return b.String()
}
