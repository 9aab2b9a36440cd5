package model

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupPattern(t *testing.T) {
	p, err := LookupPattern("glider")
	require.NoError(t, err)
	assert.Equal(t, Glider.Cells, p.Cells)

	p, err = LookupPattern(" Pulsar ")
	require.NoError(t, err)
	assert.Equal(t, "pulsar", p.Name)

	_, err = LookupPattern("gosper")
	require.Error(t, err)
	assert.Equal(t, ErrUnknownPattern, errors.Cause(err))
}

func TestPatternNames(t *testing.T) {
	assert.Equal(t, []string{"blinker", "glider", "pulsar"}, PatternNames())
}

func TestPattern_At(t *testing.T) {
	got := Glider.At(10, 20)
	assert.Equal(t, []Coord{{10, 19}, {11, 20}, {9, 21}, {10, 21}, {11, 21}}, got)
	// the pattern itself is not shifted
	assert.Equal(t, Coord{0, -1}, Glider.Cells[0])
}

func TestPulsarCells(t *testing.T) {
	seen := map[Coord]bool{}
	for _, c := range Pulsar.Cells {
		assert.False(t, seen[c], "duplicate %v", c)
		seen[c] = true
		assert.LessOrEqual(t, c.Row, 6)
		assert.GreaterOrEqual(t, c.Row, -6)
		// four-fold symmetry
		assert.Contains(t, Pulsar.Cells, Coord{-c.Row, c.Col})
		assert.Contains(t, Pulsar.Cells, Coord{c.Col, c.Row})
	}
	assert.Len(t, seen, 48)
}
