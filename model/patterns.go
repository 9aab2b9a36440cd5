package model

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownPattern is returned by LookupPattern for names not in the registry
var ErrUnknownPattern = errors.New("unknown pattern")

// Pattern is a set of live cells relative to an anchor
type Pattern struct {
	Name        string
	Description string
	Cells       []Coord
}

// At returns the pattern cells shifted to the anchor (row, col). The result
// may fall off the grid; Universe.SetCells decides what happens to those.
func (p Pattern) At(row, col int) []Coord {
	out := make([]Coord, len(p.Cells))
	for i, c := range p.Cells {
		out[i] = Coord{Row: row + c.Row, Col: col + c.Col}
	}
	return out
}

// Glider is the c/4 diagonal glider travelling towards increasing row and col
var Glider = Pattern{
	Name:        "glider",
	Description: "c/4 diagonal spaceship",
	Cells: []Coord{
		{0, -1},
		{1, 0},
		{-1, 1},
		{0, 1},
		{1, 1},
	},
}

// Blinker is the period 2 horizontal oscillator
var Blinker = Pattern{
	Name:        "blinker",
	Description: "period 2 oscillator",
	Cells:       []Coord{{0, -1}, {0, 0}, {0, 1}},
}

// Pulsar is the 48 cell period 3 oscillator, 13x13 around its centre
var Pulsar = Pattern{
	Name:        "pulsar",
	Description: "period 3 oscillator",
	Cells:       pulsarCells(),
}

// pulsarCells builds the four-fold symmetric pulsar: three-cell bars at
// distance 1 and 6 from the centre on both axes.
func pulsarCells() []Coord {
	bar := []int{-4, -3, -2, 2, 3, 4}
	cells := make([]Coord, 0, 48)
	for _, edge := range []int{-6, -1, 1, 6} {
		for _, b := range bar {
			// horizontal bar on row edge, vertical bar on col edge
			cells = append(cells, Coord{edge, b}, Coord{b, edge})
		}
	}
	return cells
}

var patterns = map[string]Pattern{
	Glider.Name:  Glider,
	Blinker.Name: Blinker,
	Pulsar.Name:  Pulsar,
}

// LookupPattern finds a built-in pattern by name
func LookupPattern(name string) (Pattern, error) {
	p, ok := patterns[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Pattern{}, errors.Wrapf(ErrUnknownPattern, "[LookupPattern] %q", name)
	}
	return p, nil
}

// PatternNames lists the registry in sorted order
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
