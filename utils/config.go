package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is the cause of every Validate failure
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	FrameRate           time.Duration `json:"frame_rate"`
	Topology            string        `json:"topology"`
	Pattern             string        `json:"pattern"`
	RandomDensity       float64       `json:"random_density"`
	InjectionCount      int           `json:"injection_count"`
	Seed                int64         `json:"seed"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	MaxGenerations      int           `json:"max_generations"`
	UseMemoryPool       bool          `json:"use_memory_pool"`
	HistorySize         int           `json:"history_size"`
	Color               bool          `json:"color"`
	Quiet               bool          `json:"quiet"`
}

const (
	// PatternRandom seeds the universe with SetRandom instead of a named pattern
	PatternRandom = "random"
	// PatternScene stamps a few gliders and blinkers, then sprinkles live
	// cells at RandomDensity
	PatternScene = "scene"
)

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               60,
		Height:              30,
		FrameRate:           150 * time.Millisecond,
		Topology:            "toroidal",
		Pattern:             PatternScene,
		RandomDensity:       0.15,
		InjectionCount:      3,
		AutoRestart:         true,
		StagnationThreshold: 5,
		MaxGenerations:      1000,
		UseMemoryPool:       true,
		HistorySize:         5,
		Color:               true,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate rejects values the engine must never see
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.FrameRate < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative frame rate %v", c.FrameRate)
	}
	if c.MaxGenerations < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative max generations %d", c.MaxGenerations)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] random density %v outside [0, 1]", c.RandomDensity)
	}
	if c.InjectionCount < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative injection count %d", c.InjectionCount)
	}
	if c.StagnationThreshold < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative stagnation threshold %d", c.StagnationThreshold)
	}
	return nil
}
