package model

import (
	"github.com/cespare/xxhash"
)

// DefaultHistorySize is how many recent generations CycleDetector remembers
const DefaultHistorySize = 5

// CycleDetector remembers fingerprints of the last few generations so the
// caller can tell when a universe is static or stuck in a short cycle.
type CycleDetector struct {
	size    int
	history []uint64
	buf     []byte
}

// NewCycleDetector keeps the last size fingerprints. Non-positive sizes fall
// back to DefaultHistorySize.
func NewCycleDetector(size int) *CycleDetector {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &CycleDetector{size: size, history: make([]uint64, 0, size)}
}

// Fingerprint hashes the current generation of u
func Fingerprint(u *Universe) uint64 {
	return xxhash.Sum64(encodeCells(nil, u.cells))
}

func encodeCells(buf []byte, cells []Cell) []byte {
	buf = buf[:0]
	for _, c := range cells {
		buf = append(buf, byte(c))
	}
	return buf
}

// Observe records the current generation of u and reports whether it matches
// one of the remembered generations. At least two earlier generations must
// have been observed before anything counts as stagnant.
func (d *CycleDetector) Observe(u *Universe) (stagnant bool) {
	d.buf = encodeCells(d.buf, u.cells)
	current := xxhash.Sum64(d.buf)

	if len(d.history) >= 2 {
		for _, h := range d.history {
			if h == current {
				stagnant = true
				break
			}
		}
	}

	if len(d.history) == d.size {
		copy(d.history, d.history[1:])
		d.history = d.history[:d.size-1]
	}
	d.history = append(d.history, current)
	return stagnant
}

// Reset forgets every remembered generation
func (d *CycleDetector) Reset() {
	d.history = d.history[:0]
}
