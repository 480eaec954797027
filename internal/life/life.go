// Package life implements a toroidal Conway's Game of Life board. Cells
// on the borders wrap around to the other side, so the neighbor relation
// has no boundary: the left edge adjoins the right edge, the top adjoins
// the bottom, and corners wrap on both axes at once.
package life

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"lifesim/internal/core"
)

// Grid stores one generation of binary cell states in row-major order,
// double-buffered so a step reads only the committed generation.
// Dimensions are fixed for the lifetime of the grid.
type Grid struct {
	w, h int
	cur  []uint8
	nxt  []uint8
}

// New returns an all-dead grid with the provided dimensions.
// Non-positive dimensions are clamped to 1.
func New(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	cells := make([]uint8, w*h)
	return &Grid{w: w, h: h, cur: cells, nxt: make([]uint8, len(cells))}
}

// NewFromCells returns a grid seeded with the caller-supplied row-major
// cell states. Any non-zero value is treated as alive. Panics if the
// buffer length does not match w*h.
func NewFromCells(w, h int, cells []uint8) *Grid {
	g := New(w, h)
	if len(cells) != len(g.cur) {
		panic(fmt.Sprintf("life: initial state has %d cells, grid %dx%d needs %d",
			len(cells), w, h, len(g.cur)))
	}
	for i, c := range cells {
		if c != 0 {
			g.cur[i] = 1
		}
	}
	return g
}

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Cells exposes the backing slice of the current generation so callers
// can read values directly.
func (g *Grid) Cells() []uint8 { return g.cur }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.w + g.w) % g.w
	y = (y%g.h + g.h) % g.h
	return x, y
}

// checkBounds panics on out-of-range coordinates. Slice indexing alone
// is not enough: a bad (x, y) pair can still produce an in-range linear
// index and silently alias another cell.
func (g *Grid) checkBounds(x, y int) {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		panic(fmt.Sprintf("life: cell (%d,%d) out of range for %dx%d grid", x, y, g.w, g.h))
	}
}

// Get reports whether the cell at (x, y) is alive.
// Out-of-range coordinates are a caller bug and panic.
func (g *Grid) Get(x, y int) bool {
	g.checkBounds(x, y)
	return g.cur[g.Index(x, y)] == 1
}

// Set writes the liveness of the cell at (x, y) unconditionally.
// Out-of-range coordinates are a caller bug and panic.
func (g *Grid) Set(x, y int, alive bool) {
	g.checkBounds(x, y)
	v := uint8(0)
	if alive {
		v = 1
	}
	g.cur[g.Index(x, y)] = v
}

// NeighborCount returns the number of alive cells among the 8 toroidal
// neighbors of (x, y).
func (g *Grid) NeighborCount(x, y int) int {
	g.checkBounds(x, y)
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := g.Wrap(x+dx, y+dy)
			count += int(g.cur[ny*g.w+nx])
		}
	}
	return count
}

// nextState applies the standard Conway rule: a live cell survives with
// 2 or 3 live neighbors, a dead cell becomes alive with exactly 3.
func nextState(alive bool, neighbors int) uint8 {
	if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
		return 1
	}
	return 0
}

// Step advances the grid by one generation. Every cell's next state is
// computed from the current generation only, then the whole generation
// is committed at once. Step is deterministic and always succeeds.
func (g *Grid) Step() {
	g.stepRows(0, g.h)
	g.cur, g.nxt = g.nxt, g.cur
}

// StepParallel advances the grid by one generation using the given
// number of row-partitioned workers. The result is identical to Step.
// The call is synchronous: it returns only after the new generation is
// fully committed.
func (g *Grid) StepParallel(workers int) {
	if workers <= 1 || g.h < workers {
		g.Step()
		return
	}

	var (
		eg            errgroup.Group
		rowsPerWorker = (g.h + workers - 1) / workers
	)
	for i := 0; i < workers; i++ {
		start := i * rowsPerWorker
		if start >= g.h {
			break
		}
		end := min(start+rowsPerWorker, g.h)
		eg.Go(func() error {
			g.stepRows(start, end)
			return nil
		})
	}
	// Workers never return errors; Wait is only a join point.
	_ = eg.Wait()
	g.cur, g.nxt = g.nxt, g.cur
}

// stepRows computes next states for rows [start, end) into the scratch
// buffer without touching the current generation.
func (g *Grid) stepRows(start, end int) {
	w, h := g.w, g.h
	for y := start; y < end; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + w) % w
					ny := (y + dy + h) % h
					neighbors += int(g.cur[ny*w+nx])
				}
			}
			idx := y*w + x
			g.nxt[idx] = nextState(g.cur[idx] == 1, neighbors)
		}
	}
}

// Snapshot returns a deep copy of the current generation. Mutating the
// copy never affects the original and vice versa.
func (g *Grid) Snapshot() *Grid {
	c := New(g.w, g.h)
	copy(c.cur, g.cur)
	return c
}

// Equal reports whether both grids have the same dimensions and the
// same current generation.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.w != other.w || g.h != other.h {
		return false
	}
	for i, c := range g.cur {
		if c != other.cur[i] {
			return false
		}
	}
	return true
}

// Population returns the number of alive cells in the current generation.
func (g *Grid) Population() int {
	count := 0
	for _, c := range g.cur {
		count += int(c)
	}
	return count
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.cur {
		g.cur[i] = 0
	}
}

// Randomize fills the grid from the provided RNG, each cell alive with
// probability density.
func (g *Grid) Randomize(rng *core.RNG, density float64) {
	core.FillDensity(rng, g.cur, density)
}
