package model

import (
	"cmp"
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
	"github.com/sheikhrachel/go-life/utils"
)

// historySize is how many recent generation hashes are kept for cycle detection
const historySize = 5

// Grid holds the live cells of an unbounded Game of Life board.
// It is not safe for concurrent use; callers serialize Toggle, Set and Step.
type Grid struct {
	cells   map[Cell]struct{}
	history []string // Hashes of recent generations, oldest first
}

// Delta lists the cells that changed state during one generation
type Delta struct {
	Born []Cell
	Died []Cell
}

// NewGrid creates an empty grid
func NewGrid() *Grid {
	return &Grid{cells: make(map[Cell]struct{})}
}

// Toggle flips the state of c: a live cell dies, a dead cell is born
func (g *Grid) Toggle(c Cell) {
	if _, ok := g.cells[c]; ok {
		delete(g.cells, c)
		return
	}
	g.cells[c] = struct{}{}
}

// Set forces c to the given state
func (g *Grid) Set(c Cell, alive bool) {
	if alive {
		g.cells[c] = struct{}{}
	} else {
		delete(g.cells, c)
	}
}

// IsAlive reports whether c is a live cell
func (g *Grid) IsAlive(c Cell) bool {
	_, ok := g.cells[c]
	return ok
}

// Len returns the number of live cells
func (g *Grid) Len() int {
	return len(g.cells)
}

// Clear kills every cell and forgets the generation history
func (g *Grid) Clear() {
	clear(g.cells)
	g.history = nil
}

// Cells returns a copy of the live cells ordered by row, then column
func (g *Grid) Cells() []Cell {
	out := make([]Cell, 0, len(g.cells))
	for c := range g.cells {
		out = append(out, c)
	}
	slices.SortFunc(out, compareCells)
	return out
}

// Bounds returns the smallest rectangle containing every live cell.
// ok is false when the grid is empty.
func (g *Grid) Bounds() (r Rect, ok bool) {
	for c := range g.cells {
		if !ok {
			r = Rect{MinX: c.X, MaxX: c.X, MinY: c.Y, MaxY: c.Y}
			ok = true
			continue
		}
		r.MinX = min(r.MinX, c.X)
		r.MaxX = max(r.MaxX, c.X)
		r.MinY = min(r.MinY, c.Y)
		r.MaxY = max(r.MaxY, c.Y)
	}
	return r, ok
}

// NeighborsOf counts the live cells around c and lists the dead ones
func (g *Grid) NeighborsOf(c Cell) (alive int, dead []Cell) {
	dead = make([]Cell, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		n := c.Add(off)
		if g.IsAlive(n) {
			alive++
		} else {
			dead = append(dead, n)
		}
	}
	return alive, dead
}

// countNeighbors is NeighborsOf without collecting the dead positions
func (g *Grid) countNeighbors(c Cell) (count int) {
	for _, off := range neighborOffsets {
		if g.IsAlive(c.Add(off)) {
			count++
		}
	}
	return
}

// Step advances the grid by one generation.
// Only live cells and their dead neighbors are examined, so the cost is
// proportional to the population rather than to any board area.
func (g *Grid) Step() Delta {
	seen := getCellSet()
	defer putCellSet(seen)

	var delta Delta
	for c := range g.cells {
		delta.Died, delta.Born = g.evaluate(c, seen, delta.Died, delta.Born)
	}

	g.apply(&delta)
	return delta
}

// evaluate applies the rule to a live cell and to each of its dead neighbors
// not already in seen, appending the outcome to died and born
func (g *Grid) evaluate(c Cell, seen map[Cell]struct{}, died, born []Cell) ([]Cell, []Cell) {
	alive, dead := g.NeighborsOf(c)
	if !rules.ApplyConwayRules(alive, true) {
		died = append(died, c)
	}
	for _, d := range dead {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		if rules.ApplyConwayRules(g.countNeighbors(d), false) {
			born = append(born, d)
		}
	}
	return died, born
}

// StepParallel computes the same generation as Step, splitting the live cells
// across workers. Workers only read the current generation; the merged result
// is applied once they have all finished.
func (g *Grid) StepParallel(workers int) Delta {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var (
		eg             errgroup.Group
		live           = make([]Cell, 0, len(g.cells))
		cellsPerWorker int
	)
	for c := range g.cells {
		live = append(live, c)
	}
	cellsPerWorker = (len(live) + workers - 1) / workers // Ceiling division

	partial := make([]Delta, workers)
	for i := range workers {
		var (
			start = i * cellsPerWorker
			end   = min(start+cellsPerWorker, len(live))
		)
		if start >= len(live) {
			break
		}

		eg.Go(func() error {
			seen := getCellSet()
			defer putCellSet(seen)

			var d Delta
			for _, c := range live[start:end] {
				d.Died, d.Born = g.evaluate(c, seen, d.Died, d.Born)
			}
			partial[i] = d
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		fmt.Printf("Error in parallel processing: %v\n", err)
	}

	// Two workers may both discover the same birth
	var (
		delta Delta
		born  = getCellSet()
	)
	defer putCellSet(born)
	for _, d := range partial {
		delta.Died = append(delta.Died, d.Died...)
		for _, c := range d.Born {
			if _, ok := born[c]; ok {
				continue
			}
			born[c] = struct{}{}
			delta.Born = append(delta.Born, c)
		}
	}

	g.apply(&delta)
	return delta
}

// NextGeneration steps the grid, going parallel for large populations when enabled
func (g *Grid) NextGeneration(config utils.Config) Delta {
	if config.UseParallel && g.Len() >= config.ParallelThreshold {
		return g.StepParallel(config.Workers)
	}
	return g.Step()
}

// apply commits a fully computed generation and sorts the delta for callers
func (g *Grid) apply(d *Delta) {
	for _, c := range d.Died {
		delete(g.cells, c)
	}
	for _, c := range d.Born {
		g.cells[c] = struct{}{}
	}
	slices.SortFunc(d.Died, compareCells)
	slices.SortFunc(d.Born, compareCells)
}

// Hash returns an MD5 digest of the live cells, independent of insertion order
func (g *Grid) Hash() string {
	var (
		h   = md5.New()
		buf [16]byte
	)
	for _, c := range g.Cells() {
		binary.LittleEndian.PutUint64(buf[:8], uint64(c.X))
		binary.LittleEndian.PutUint64(buf[8:], uint64(c.Y))
		h.Write(buf[:])
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory records the current generation and trims old entries
func (g *Grid) UpdateHistory() {
	g.history = append(g.history, g.Hash())
	if len(g.history) > historySize {
		g.history = g.history[1:]
	}
}

// IsStagnant reports whether the latest recorded generation repeats one of the
// three before it: a still life or an oscillator of period 2 or 3
func (g *Grid) IsStagnant() bool {
	n := len(g.history)
	if n < 2 {
		return false
	}

	latest := g.history[n-1]
	for i := n - 2; i >= max(0, n-4); i-- {
		if g.history[i] == latest {
			return true
		}
	}
	return false
}

func compareCells(a, b Cell) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}
