package utils

import (
	"math"
	"time"
)

// FrameWindow is the number of recent frame rates kept for min/max/avg
const FrameWindow = 500

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
	Population           int
	Births               int
	Deaths               int

	frames []float64
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now(), frames: make([]float64, 0, FrameWindow)}
}

// Update records one generation. changed is the number of cells in the diff;
// with the previous population it gives births and deaths.
func (s *Stats) Update(generation, population, changed int, duration time.Duration) {
	// changed = births + deaths, population - previous = births - deaths
	delta := population - s.Population
	s.Births = (changed + delta) / 2
	s.Deaths = (changed - delta) / 2
	s.TotalGenerations = generation
	s.Population = population

	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
		s.frames = append(s.frames, s.GenerationsPerSecond)
		if len(s.frames) > FrameWindow {
			s.frames = s.frames[1:]
		}
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Reset restarts population tracking for a new universe, keeping frame history
func (s *Stats) Reset(population int) {
	s.Population = population
	s.AveragePopulation = float64(population)
	s.Births, s.Deaths = 0, 0
}

// FrameRates returns min, max and average generations per second over the
// last FrameWindow frames. All zero before the first timed frame.
func (s *Stats) FrameRates() (lo, hi, avg float64) {
	if len(s.frames) == 0 {
		return 0, 0, 0
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, f := range s.frames {
		lo = math.Min(lo, f)
		hi = math.Max(hi, f)
		avg += f
	}
	return lo, hi, avg / float64(len(s.frames))
}
