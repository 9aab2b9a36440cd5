package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniversePool_GetIsFresh(t *testing.T) {
	pool := NewUniversePool()

	u := pool.Get(6, 4)
	assert.Equal(t, 6, u.Width())
	assert.Equal(t, 4, u.Height())
	assert.Len(t, u.Cells(), 24)

	u.SetTopology(Bounded)
	u.SpawnGlider(2, 2)
	UniverseToPool(u, pool)

	// sync.Pool may or may not hand back the same value; either way it is reset
	again := pool.Get(6, 4)
	assert.Equal(t, Toroidal, again.Topology())
	assert.Zero(t, again.LiveCells())
	assert.Zero(t, again.DiffLen())
}

func TestUniversePool_DifferentSize(t *testing.T) {
	pool := NewUniversePool()
	pool.Put(NewUniverse(3, 3))

	u := pool.Get(5, 7)
	assert.Equal(t, 5, u.Width())
	assert.Equal(t, 7, u.Height())
	assert.Len(t, u.Cells(), 35)

	// the universe is usable straight away
	u.SetRandom()
	assert.Equal(t, 35, u.DiffLen())
}

func TestUniverseToPool_NilPool(t *testing.T) {
	assert.NotPanics(t, func() { UniverseToPool(NewUniverse(2, 2), nil) })
}
