package life

import (
	"life-ca/internal/core"
	pcore "life-ca/pkg/core"
)

var _ core.Sim = (*Life)(nil)

// Life drives a Grid generation by generation for interactive front ends. It
// keeps two buffers and swaps them on every Step.
type Life struct {
	cfg     Config
	pattern *Pattern
	cur     *Grid
	nxt     *Grid
	display []uint8
	gen     int
}

// NewSim returns a simulation of cfg.Size. When pattern is non-nil Reset
// centers it on an empty board, otherwise Reset seeds a random soup.
func NewSim(cfg Config, pattern *Pattern) (*Life, error) {
	l := &Life{
		cfg:     cfg,
		cur:     New(cfg.Size),
		nxt:     New(cfg.Size),
		display: make([]uint8, cfg.Size*cfg.Size),
	}
	if pattern != nil {
		if err := l.cur.Place(*pattern); err != nil {
			return nil, err
		}
		l.pattern = pattern
	}
	l.Reset(cfg.Seed)
	return l, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cfg.Size, H: l.cfg.Size} }

// Cells exposes the current grid as 0/1 values.
func (l *Life) Cells() []uint8 { return l.display }

// Grid returns the current generation.
func (l *Life) Grid() *Grid { return l.cur }

// Generation returns the number of steps since the last Reset.
func (l *Life) Generation() int { return l.gen }

// Reset reloads the initial pattern, or a random soup drawn from seed when
// the simulation has no pattern.
func (l *Life) Reset(seed int64) {
	l.cur.Clear()
	l.gen = 0
	if l.pattern != nil {
		// Fit was checked by NewSim.
		_ = l.cur.Place(*l.pattern)
	} else {
		pcore.NewRNG(seed).FillSoup(l.cur.cells, l.cfg.Density)
	}
	l.refresh()
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	l.cur.NextInto(l.nxt)
	l.cur, l.nxt = l.nxt, l.cur
	l.gen++
	l.refresh()
}

func (l *Life) refresh() {
	for i, alive := range l.cur.cells {
		if alive {
			l.display[i] = 1
		} else {
			l.display[i] = 0
		}
	}
}
