package model

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownTopology is returned when a topology name cannot be parsed
var ErrUnknownTopology = errors.New("unknown topology")

// Topology decides how coordinates outside the grid resolve
type Topology uint8

const (
	// Toroidal wraps each axis so every coordinate lands on the grid
	Toroidal Topology = iota
	// Bounded treats everything outside the grid as a Dead cell
	Bounded
)

func (t Topology) String() string {
	switch t {
	case Toroidal:
		return "toroidal"
	case Bounded:
		return "bounded"
	}
	return "unknown"
}

// ParseTopology maps a topology name onto a Topology
func ParseTopology(name string) (Topology, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "toroidal", "torus", "wrap":
		return Toroidal, nil
	case "bounded", "flat":
		return Bounded, nil
	}
	return Toroidal, errors.Wrapf(ErrUnknownTopology, "[ParseTopology] %q", name)
}

// resolve maps (row, col) onto the grid. ok is false when the coordinate has
// no in-grid cell, which only happens under Bounded.
func (t Topology) resolve(row, col, width, height int) (r, c int, ok bool) {
	if t == Toroidal {
		return wrap(row, height), wrap(col, width), true
	}
	if row < 0 || row >= height || col < 0 || col >= width {
		return 0, 0, false
	}
	return row, col, true
}

func wrap(v, n int) int {
	return (v%n + n) % n
}
