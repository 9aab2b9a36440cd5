package model

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTopology(t *testing.T) {
	tests := []struct {
		in   string
		want Topology
	}{
		{"toroidal", Toroidal},
		{"Torus", Toroidal},
		{"wrap", Toroidal},
		{"bounded", Bounded},
		{" flat ", Bounded},
	}
	for _, tt := range tests {
		got, err := ParseTopology(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseTopology("klein")
	require.Error(t, err)
	assert.Equal(t, ErrUnknownTopology, errors.Cause(err))
}

func TestTopology_String(t *testing.T) {
	assert.Equal(t, "toroidal", Toroidal.String())
	assert.Equal(t, "bounded", Bounded.String())
	assert.Equal(t, "unknown", Topology(9).String())
}

func TestTopology_Resolve(t *testing.T) {
	r, c, ok := Toroidal.resolve(-1, 5, 5, 3)
	assert.True(t, ok)
	assert.Equal(t, 2, r)
	assert.Equal(t, 0, c)

	r, c, ok = Toroidal.resolve(-7, -11, 5, 3)
	assert.True(t, ok)
	assert.Equal(t, 2, r)
	assert.Equal(t, 4, c)

	_, _, ok = Bounded.resolve(-1, 0, 5, 3)
	assert.False(t, ok)
	_, _, ok = Bounded.resolve(0, 5, 5, 3)
	assert.False(t, ok)
	r, c, ok = Bounded.resolve(2, 4, 5, 3)
	assert.True(t, ok)
	assert.Equal(t, 2, r)
	assert.Equal(t, 4, c)
}
