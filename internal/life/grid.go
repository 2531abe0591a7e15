package life

import (
	"fmt"
	"math/rand/v2"
)

// Grid is a fixed-size Life board stored row-major.
type Grid struct {
	width, height int
	cells         []bool
	next          []bool
	liveCells     int
	rng           *rand.Rand
}

// New returns an all-dead grid. The seed drives Randomize.
func New(width, height int, seed int64) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrEmptyGrid, width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
		next:   make([]bool, width*height),
		rng:    newRand(seed),
	}, nil
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// LiveCells is the population left by the last Update.
func (g *Grid) LiveCells() int { return g.liveCells }

// PositionIndex maps (x, y) to a cell index. ok is false outside the grid.
func (g *Grid) PositionIndex(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return 0, false
	}
	return y*g.width + x, true
}

// CellAt reports the state of (x, y). ok is false outside the grid.
func (g *Grid) CellAt(x, y int) (alive, ok bool) {
	i, ok := g.PositionIndex(x, y)
	if !ok {
		return false, false
	}
	return g.cells[i], true
}

// Toggle flips a single cell. LiveCells is not refreshed.
func (g *Grid) Toggle(x, y int) {
	if i, ok := g.PositionIndex(x, y); ok {
		g.cells[i] = !g.cells[i]
	}
}

// Set forces a single cell alive or dead. LiveCells is not refreshed.
func (g *Grid) Set(x, y int, alive bool) {
	if i, ok := g.PositionIndex(x, y); ok {
		g.cells[i] = alive
	}
}

func (g *Grid) Clear() {
	clear(g.cells)
	g.liveCells = 0
}

// Randomize gives every cell an independent fair coin flip.
func (g *Grid) Randomize() {
	for i := range g.cells {
		g.cells[i] = g.rng.IntN(2) == 1
	}
}

// Reseed replaces the random source used by Randomize.
func (g *Grid) Reseed(seed int64) { g.rng = newRand(seed) }

// Population counts live cells in the current generation.
func (g *Grid) Population() int {
	n := 0
	for _, alive := range g.cells {
		if alive {
			n++
		}
	}
	return n
}

// Update advances the grid one generation. The next generation is written
// into a separate buffer and swapped in once the pass is complete.
func (g *Grid) Update() {
	if len(g.cells) != g.width*g.height || len(g.next) != len(g.cells) {
		panic(fmt.Sprintf("life: cell buffer length %d does not match %dx%d", len(g.cells), g.width, g.height))
	}

	live := 0
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			i, _ := g.PositionIndex(x, y)
			n := g.liveNeighbors(x, y)
			alive := n == 3 || (g.cells[i] && n == 2)
			g.next[i] = alive
			if alive {
				live++
			}
		}
	}

	g.cells, g.next = g.next, g.cells
	g.liveCells = live
}

// liveNeighbors counts the Moore neighborhood clipped to the grid edges.
func (g *Grid) liveNeighbors(x, y int) int {
	x0, x1 := max(0, x-1), min(g.width-1, x+1)
	y0, y1 := max(0, y-1), min(g.height-1, y+1)

	n := 0
	for ny := y0; ny <= y1; ny++ {
		for nx := x0; nx <= x1; nx++ {
			if nx == x && ny == y {
				continue
			}
			if i, ok := g.PositionIndex(nx, ny); ok && g.cells[i] {
				n++
			}
		}
	}
	return n
}
