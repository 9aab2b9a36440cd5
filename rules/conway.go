package rules

// MaxNeighbors is the size of the Moore neighborhood.
const MaxNeighbors = 8

/*
Next returns whether a cell is alive in the next generation given its current
state and the number of live cells in its Moore neighborhood (B3/S23):

  - alive, fewer than 2 neighbors: dies (underpopulation)
  - alive, 2 or 3 neighbors: lives on
  - alive, more than 3 neighbors: dies (overpopulation)
  - dead, exactly 3 neighbors: becomes alive (reproduction)
  - dead, any other count: stays dead
*/
func Next(alive bool, neighbors int) bool {
	switch {
	case alive && neighbors < 2:
		return false
	case alive && (neighbors == 2 || neighbors == 3):
		return true
	case alive:
		return false
	default:
		return neighbors == 3
	}
}
