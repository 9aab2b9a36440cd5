package model

import (
	"math/rand/v2"
	"time"

	"github.com/sheikhrachel/go-life/rules"
)

// RandomSource supplies uniform values in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// NewRandomSource returns a deterministic PCG source for the given seed
func NewRandomSource(seed int64) RandomSource {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// neighborOffsets is the Moore neighborhood as (row, col) deltas
var neighborOffsets = [rules.MaxNeighbors]Coord{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Universe is a dense, fixed-size Game of Life board.
//
// It is double buffered: cells holds the current generation and next is
// scratch space that Tick fills and then swaps in. diff lists the indices
// changed by the most recent mutating call, in the order they were written.
//
// A Universe is not safe for concurrent use.
type Universe struct {
	width    int
	height   int
	topology Topology

	cells []Cell
	next  []Cell
	diff  []int

	rnd RandomSource
}

// NewUniverse creates a width x height universe with every cell Dead and a
// Toroidal topology. Both dimensions must be positive.
func NewUniverse(width, height int) *Universe {
	size := width * height
	return &Universe{
		width:    width,
		height:   height,
		topology: Toroidal,
		cells:    make([]Cell, size),
		next:     make([]Cell, size),
		diff:     make([]int, 0, size),
		rnd:      NewRandomSource(time.Now().UnixNano()),
	}
}

// Width returns the number of columns
func (u *Universe) Width() int {
	return u.width
}

// Height returns the number of rows
func (u *Universe) Height() int {
	return u.height
}

// Size returns width * height
func (u *Universe) Size() int {
	return u.width * u.height
}

// Topology returns the active boundary policy
func (u *Universe) Topology() Topology {
	return u.topology
}

// SetTopology changes the boundary policy. It takes effect on the next lookup.
func (u *Universe) SetTopology(t Topology) {
	u.topology = t
}

// SetRandomSource replaces the source used by SetRandom
func (u *Universe) SetRandomSource(rnd RandomSource) {
	u.rnd = rnd
}

// GetIndex maps (row, col) to a grid index without any bounds checking
func (u *Universe) GetIndex(row, col int) int {
	return row*u.width + col
}

// GetCell returns the state at (row, col) resolved through the topology.
// Off-grid coordinates under Bounded read as Dead.
func (u *Universe) GetCell(row, col int) Cell {
	r, c, ok := u.topology.resolve(row, col, u.width, u.height)
	if !ok {
		return Dead
	}
	return u.cells[u.GetIndex(r, c)]
}

// Cells returns the current generation in row-major order. The slice aliases
// internal storage: do not modify it, and do not keep it past the next
// mutating call.
func (u *Universe) Cells() []Cell {
	return u.cells
}

// Diff returns the indices changed by the most recent mutating call. Same
// aliasing rules as Cells.
func (u *Universe) Diff() []int {
	return u.diff
}

// DiffLen returns len(Diff())
func (u *Universe) DiffLen() int {
	return len(u.diff)
}

// LiveCells returns the number of Alive cells in the current generation
func (u *Universe) LiveCells() (count int) {
	for _, c := range u.cells {
		if c == Alive {
			count++
		}
	}
	return
}

// liveNeighbors counts Alive cells around (row, col) in the current generation
func (u *Universe) liveNeighbors(row, col int) int {
	count := 0
	for _, off := range neighborOffsets {
		if u.GetCell(row+off.Row, col+off.Col) == Alive {
			count++
		}
	}
	return count
}

// Tick advances the universe by one generation and rebuilds the diff
func (u *Universe) Tick() {
	u.diff = u.diff[:0]

	for row := range u.height {
		for col := range u.width {
			idx := u.GetIndex(row, col)
			cell := u.cells[idx]

			nextCell := Dead
			if rules.Next(cell == Alive, u.liveNeighbors(row, col)) {
				nextCell = Alive
			}
			u.next[idx] = nextCell

			if nextCell != cell {
				u.diff = append(u.diff, idx)
			}
		}
	}

	u.cells, u.next = u.next, u.cells
}

// ToggleCell flips the cell at (row, col) and appends it to the diff. The
// existing diff is kept. Coordinates must be on the grid.
func (u *Universe) ToggleCell(row, col int) {
	idx := u.GetIndex(row, col)
	u.cells[idx] = u.cells[idx].Toggled()
	u.diff = append(u.diff, idx)
}

// SetAllDead kills every cell. Every index is reported in the diff, even
// ones that were already Dead.
func (u *Universe) SetAllDead() {
	u.diff = u.diff[:0]
	for i := range u.cells {
		u.cells[i] = Dead
		u.diff = append(u.diff, i)
	}
}

// SetRandom gives every cell an independent coin flip. Every index is
// reported in the diff.
func (u *Universe) SetRandom() {
	u.diff = u.diff[:0]
	for i := range u.cells {
		if u.rnd.Float64() > 0.5 {
			u.cells[i] = Alive
		} else {
			u.cells[i] = Dead
		}
		u.diff = append(u.diff, i)
	}
}

// SetCells makes each coordinate Alive after resolving it through the
// topology. Under Bounded, off-grid coordinates are skipped. The rest of the
// grid is left untouched.
func (u *Universe) SetCells(cells []Coord) {
	for _, cell := range cells {
		r, c, ok := u.topology.resolve(cell.Row, cell.Col, u.width, u.height)
		if !ok {
			continue
		}
		idx := u.GetIndex(r, c)
		u.cells[idx] = Alive
		u.diff = append(u.diff, idx)
	}
}

// Spawn stamps a pattern with its origin at (row, col)
func (u *Universe) Spawn(p Pattern, row, col int) {
	u.SetCells(p.At(row, col))
}

// SpawnGlider stamps a c/4 diagonal glider centred on (row, col)
func (u *Universe) SpawnGlider(row, col int) {
	u.Spawn(Glider, row, col)
}

// SpawnPulsar stamps a period 3 pulsar centred on (row, col)
func (u *Universe) SpawnPulsar(row, col int) {
	u.Spawn(Pulsar, row, col)
}

// reset returns the universe to its freshly constructed state
func (u *Universe) reset() {
	u.topology = Toroidal
	u.diff = u.diff[:0]
	clear(u.cells)
	clear(u.next)
}
