package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const defaultConfigPath = "config.json"

// overrides holds command line values; zero values leave the config alone
type overrides struct {
	configPath     string
	width          int
	height         int
	interval       time.Duration
	topology       string
	pattern        string
	seed           int64
	maxGenerations int
	quiet          bool
	noColor        bool
	verbose        bool
}

func parseFlags() overrides {
	o := overrides{configPath: defaultConfigPath}

	flaggy.SetName("go-life")
	flaggy.SetDescription("Conway's Game of Life in the terminal")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true

	flaggy.String(&o.configPath, "c", "config", "Path to a JSON config file")
	flaggy.Int(&o.width, "x", "width", "Width of the universe")
	flaggy.Int(&o.height, "y", "height", "Height of the universe")
	flaggy.Duration(&o.interval, "i", "interval", "Interval between generations, for example 150ms")
	flaggy.String(&o.topology, "t", "topology", "Edge behaviour [toroidal|bounded]")
	flaggy.String(&o.pattern, "p", "pattern", "Initial pattern ["+strings.Join(append([]string{utils.PatternScene, utils.PatternRandom}, model.PatternNames()...), "|")+"]")
	flaggy.Int64(&o.seed, "s", "seed", "Seed for random fills, 0 picks one from the clock")
	flaggy.Int(&o.maxGenerations, "m", "maxGenerations", "Stop after this many generations")
	flaggy.Bool(&o.quiet, "q", "quiet", "Do not render the universe")
	flaggy.Bool(&o.noColor, "", "no-color", "Disable ANSI colors")
	flaggy.Bool(&o.verbose, "v", "verbose", "Debug logging")

	flaggy.Parse()
	return o
}

// apply layers the command line on top of the file config
func (o overrides) apply(config utils.Config) utils.Config {
	if o.width != 0 {
		config.Width = o.width
	}
	if o.height != 0 {
		config.Height = o.height
	}
	if o.interval != 0 {
		config.FrameRate = o.interval
	}
	if o.topology != "" {
		config.Topology = o.topology
	}
	if o.pattern != "" {
		config.Pattern = o.pattern
	}
	if o.seed != 0 {
		config.Seed = o.seed
	}
	if o.maxGenerations != 0 {
		config.MaxGenerations = o.maxGenerations
	}
	if o.quiet {
		config.Quiet = true
	}
	if o.noColor {
		config.Color = false
	}
	return config
}

// loadConfiguration reads the config file and falls back to defaults. Only a
// missing file is silent; a file that exists but cannot be used is reported.
func loadConfiguration(path string, logger utils.Logger) utils.Config {
	config, err := utils.LoadConfig(path)
	if err == nil {
		return config
	}
	if os.IsNotExist(errors.Cause(err)) {
		logger.Debug("no config file, using defaults", "path", path)
	} else {
		logger.Warn("ignoring config file, using defaults", "path", path, "err", err)
	}
	return utils.DefaultConfig()
}

func main() {
	opts := parseFlags()

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := utils.NewDefaultLogger(os.Stderr, level)

	config := opts.apply(loadConfiguration(opts.configPath, logger))

	g, err := newGame(config, os.Stdout, logger)
	if err != nil {
		logger.Error("failed to start", "err", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	eg.Go(func() error {
		select {
		case sig := <-sigChan:
			logger.Info("shutting down gracefully", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
		return nil
	})

	eg.Go(func() error {
		defer cancel()
		return g.run(ctx)
	})

	if err = eg.Wait(); err != nil {
		logger.Error("simulation failed", "err", err)
		os.Exit(1)
	}

	lo, hi, avg := g.stats.FrameRates()
	logger.Info("final stats",
		"generations", g.generation,
		"runtime", time.Since(g.stats.StartTime).Round(time.Millisecond),
		"min_gps", lo,
		"max_gps", hi,
		"avg_gps", avg,
		"avg_population", g.stats.AveragePopulation,
	)
}
