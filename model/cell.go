package model

// Cell is the state of a single grid position.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// Toggled returns the opposite state
func (c Cell) Toggled() Cell {
	if c == Alive {
		return Dead
	}
	return Alive
}

// IsAlive reports whether the cell is Alive
func (c Cell) IsAlive() bool {
	return c == Alive
}

func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

// Coord is a (row, col) position. Coordinates may be negative or past the grid
// edge; they are resolved against the universe topology when used.
type Coord struct {
	Row, Col int
}
