package life

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	pcore "life-ca/pkg/core"
)

func gridFrom(rows ...string) *Grid {
	g := New(len(rows))
	for r, line := range rows {
		for c, ch := range line {
			g.Set(r, c, ch == AliveMarker)
		}
	}
	return g
}

func soup(size int, seed int64) *Grid {
	g := New(size)
	pcore.NewRNG(seed).FillSoup(g.Cells(), 0.4)
	return g
}

func TestNewGridAllDead(t *testing.T) {
	for n := 1; n <= 9; n++ {
		g := New(n)
		if got := len(g.Cells()); got != n*n {
			t.Fatalf("size %d: %d cells, expected %d", n, got, n*n)
		}
		if pop := g.Population(); pop != 0 {
			t.Fatalf("size %d: population %d, expected 0", n, pop)
		}
	}
}

func TestCountLiveNeighborsHardEdge(t *testing.T) {
	g := gridFrom(
		"OOO",
		"OOO",
		"OOO",
	)
	cases := []struct {
		row, col, want int
	}{
		{0, 0, 3},
		{0, 1, 5},
		{0, 2, 3},
		{1, 0, 5},
		{1, 1, 8},
		{2, 2, 3},
	}
	for _, tc := range cases {
		if got := g.CountLiveNeighbors(tc.row, tc.col); got != tc.want {
			t.Fatalf("cell (%d,%d): %d neighbors, expected %d", tc.row, tc.col, got, tc.want)
		}
	}

	single := gridFrom("O")
	if got := single.CountLiveNeighbors(0, 0); got != 0 {
		t.Fatalf("1x1 grid counted %d neighbors", got)
	}
}

func TestCountLiveNeighborsDoesNotWrap(t *testing.T) {
	g := New(5)
	g.Set(0, 0, true)
	for _, rc := range [][2]int{{4, 4}, {0, 4}, {4, 0}} {
		if got := g.CountLiveNeighbors(rc[0], rc[1]); got != 0 {
			t.Fatalf("cell (%d,%d) saw %d neighbors across the edge", rc[0], rc[1], got)
		}
	}
}

func TestCountLiveNeighborsBounded(t *testing.T) {
	g := soup(16, 3)
	for r := 0; r < 16; r++ {
		for c := 0; c < 16; c++ {
			if n := g.CountLiveNeighbors(r, c); n < 0 || n > 8 {
				t.Fatalf("cell (%d,%d) has %d neighbors", r, c, n)
			}
		}
	}
}

func TestLoneCellDies(t *testing.T) {
	for n := 3; n <= 7; n++ {
		g := New(n)
		g.Set(n/2, n/2, true)
		if pop := g.Next().Population(); pop != 0 {
			t.Fatalf("size %d: lone cell left population %d", n, pop)
		}
	}
}

func TestBlockIsStable(t *testing.T) {
	block := gridFrom(
		"......",
		"......",
		"..OO..",
		"..OO..",
		"......",
		"......",
	)
	if diff := cmp.Diff(block.String(), block.Next().String()); diff != "" {
		t.Fatalf("block changed (-want +got):\n%s", diff)
	}
}

func TestBlinkerOscillates(t *testing.T) {
	vertical := gridFrom(
		".....",
		"..O..",
		"..O..",
		"..O..",
		".....",
	)
	horizontal := gridFrom(
		".....",
		".....",
		".OOO.",
		".....",
		".....",
	)

	first := vertical.Next()
	if diff := cmp.Diff(horizontal.String(), first.String()); diff != "" {
		t.Fatalf("first step (-want +got):\n%s", diff)
	}
	second := first.Next()
	if !second.Equal(vertical) {
		t.Fatalf("blinker did not return after two steps:\n%s", second)
	}
}

func TestNextLeavesSourceUntouched(t *testing.T) {
	g := soup(12, 11)
	before := g.Clone()
	_ = g.Next()
	if !g.Equal(before) {
		t.Fatal("Next mutated its receiver")
	}
}

func TestNextIntoMatchesNext(t *testing.T) {
	a := soup(20, 5)
	b := a.Clone()
	spare := New(20)
	for gen := 0; gen < 25; gen++ {
		a = a.Next()
		b.NextInto(spare)
		b, spare = spare, b
		if !a.Equal(b) {
			t.Fatalf("generation %d diverged", gen+1)
		}
	}
}

func TestNextIntoRejectsAliasing(t *testing.T) {
	g := New(4)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when destination aliases source")
		}
	}()
	g.NextInto(g)
}

func TestOutOfRangeAccessPanics(t *testing.T) {
	cases := [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}}
	for _, rc := range cases {
		t.Run(fmt.Sprintf("%d_%d", rc[0], rc[1]), func(t *testing.T) {
			g := New(4)
			defer func() {
				if recover() == nil {
					t.Fatalf("Set(%d,%d) did not panic", rc[0], rc[1])
				}
			}()
			g.Set(rc[0], rc[1], true)
		})
	}
}

func TestRenderMatchesCells(t *testing.T) {
	g := soup(9, 21)
	lines := strings.Split(g.String(), "\n")
	if len(lines) != 10 || lines[9] != "" {
		t.Fatalf("expected 9 newline-terminated rows, got %q", g.String())
	}
	for r := 0; r < 9; r++ {
		if len(lines[r]) != 9 {
			t.Fatalf("row %d has %d characters", r, len(lines[r]))
		}
		for c := 0; c < 9; c++ {
			want := byte(DeadMarker)
			if g.Get(r, c) {
				want = AliveMarker
			}
			if lines[r][c] != want {
				t.Fatalf("cell (%d,%d) rendered %q, expected %q", r, c, lines[r][c], want)
			}
		}
	}
}

func TestWriteToReportsBytes(t *testing.T) {
	g := New(6)
	var b strings.Builder
	n, err := g.WriteTo(&b)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if n != 6*7 || int(n) != b.Len() {
		t.Fatalf("WriteTo reported %d bytes, wrote %d", n, b.Len())
	}
}

func BenchmarkNext(b *testing.B) {
	for _, size := range []int{64, 256, 512} {
		g := soup(size, 1)
		spare := New(size)
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				g.NextInto(spare)
				g, spare = spare, g
			}
		})
	}
}
