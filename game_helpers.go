package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// game drives a single universe from the terminal
type game struct {
	config   utils.Config
	logger   utils.Logger
	out      io.Writer
	topology model.Topology
	pattern  *model.Pattern
	rnd      model.RandomSource

	pool     *model.UniversePool
	universe *model.Universe
	renderer *model.TerminalRenderer
	detector *model.CycleDetector
	stats    *utils.Stats

	generation     int
	stagnantCount  int
	lastRestartGen int
}

// newGame validates the config and seeds the first universe
func newGame(config utils.Config, out io.Writer, logger utils.Logger) (*game, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	topology, err := model.ParseTopology(config.Topology)
	if err != nil {
		return nil, errors.Wrap(err, "[newGame] bad topology")
	}

	var pattern *model.Pattern
	if config.Pattern != utils.PatternRandom && config.Pattern != utils.PatternScene {
		p, err := model.LookupPattern(config.Pattern)
		if err != nil {
			return nil, errors.Wrap(err, "[newGame] bad pattern")
		}
		pattern = &p
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &game{
		config:   config,
		logger:   logger,
		out:      out,
		topology: topology,
		pattern:  pattern,
		rnd:      model.NewRandomSource(seed),
		renderer: model.NewTerminalRenderer(out, config.Color),
		detector: model.NewCycleDetector(config.HistorySize),
		stats:    utils.NewStats(),
	}
	if config.UseMemoryPool {
		g.pool = model.NewUniversePool()
	}
	g.universe = g.seedUniverse()
	g.stats.Reset(g.universe.LiveCells())

	logger.Info("game initialized",
		"width", config.Width,
		"height", config.Height,
		"topology", topology,
		"pattern", config.Pattern,
		"seed", seed,
		"pool", config.UseMemoryPool,
	)
	return g, nil
}

// seedUniverse builds a fresh universe and populates it from the config
func (g *game) seedUniverse() *model.Universe {
	var u *model.Universe
	if g.pool != nil {
		u = g.pool.Get(g.config.Width, g.config.Height)
	} else {
		u = model.NewUniverse(g.config.Width, g.config.Height)
	}
	u.SetTopology(g.topology)
	u.SetRandomSource(g.rnd)

	switch {
	case g.pattern != nil:
		u.Spawn(*g.pattern, g.config.Height/2, g.config.Width/2)
	case g.config.Pattern == utils.PatternScene:
		seedScene(u, g.rnd, g.config.RandomDensity)
	default:
		u.SetRandom()
	}

	g.renderer.Sync(u)
	g.detector.Reset()
	return u
}

// step advances one generation and returns the stagnation and restart state
func (g *game) step(frameDuration time.Duration) (restart bool, reason string) {
	g.universe.Tick()
	g.generation++

	livingCells := g.universe.LiveCells()
	g.stats.Update(g.generation, livingCells, g.universe.DiffLen(), frameDuration)
	g.renderer.Update(g.universe)

	if g.detector.Observe(g.universe) {
		g.stagnantCount++
	} else {
		g.stagnantCount = 0
	}

	restart, reason = checkRestartConditions(livingCells, g.stagnantCount, g.generation, g.config)
	if !restart && g.shouldInject() {
		g.injectLife()
	}
	return restart, reason
}

// shouldInject reports whether a stagnating universe gets a few random cells
// before the restart threshold is reached
func (g *game) shouldInject() bool {
	return g.config.InjectionCount > 0 &&
		g.stagnantCount >= 2 &&
		g.stagnantCount < g.config.StagnationThreshold
}

// injectLife sets InjectionCount random cells Alive to break a stagnant run
func (g *game) injectLife() {
	w, h := g.universe.Width(), g.universe.Height()
	cells := make([]model.Coord, 0, g.config.InjectionCount)
	for range g.config.InjectionCount {
		cells = append(cells, model.Coord{
			Row: int(g.rnd.Float64() * float64(h)),
			Col: int(g.rnd.Float64() * float64(w)),
		})
	}
	g.universe.SetCells(cells)
	g.renderer.Update(g.universe)
	g.stats.Population = g.universe.LiveCells()

	g.logger.Debug("injected random life", "cells", len(cells), "generation", g.generation)
}

// seedScene stamps gliders near the top corners and blinkers in the first
// and last quarter, then sprinkles live cells at the given density
func seedScene(u *model.Universe, rnd model.RandomSource, density float64) {
	w, h := u.Width(), u.Height()
	if w >= 10 && h >= 10 {
		u.Spawn(model.Glider, 6, 6)
		if w >= 20 && h >= 15 {
			u.Spawn(model.Glider, 6, w-7)
		}

		u.Spawn(model.Blinker, h/4, w/4+1)
		if w >= 30 {
			u.Spawn(model.Blinker, 3*h/4, 3*w/4+1)
		}
	}
	u.SetCells(randomCoords(w, h, rnd, density))
}

// randomCoords picks each grid position independently with probability density
func randomCoords(width, height int, rnd model.RandomSource, density float64) []model.Coord {
	var cells []model.Coord
	for row := range height {
		for col := range width {
			if rnd.Float64() < density {
				cells = append(cells, model.Coord{Row: row, Col: col})
			}
		}
	}
	return cells
}

// restartGame swaps in a newly seeded universe
func (g *game) restartGame(reason string) {
	g.logger.Info("restarting", "reason", reason, "generation", g.generation)

	model.UniverseToPool(g.universe, g.pool)
	g.universe = g.seedUniverse()
	g.stats.Reset(g.universe.LiveCells())
	g.lastRestartGen = g.generation
	g.stagnantCount = 0
}

// finished reports whether the generation limit has been reached
func (g *game) finished() bool {
	return g.config.MaxGenerations > 0 && g.generation >= g.config.MaxGenerations
}

// run ticks until ctx is done or the generation limit is reached
func (g *game) run(ctx context.Context) error {
	if err := g.draw(); err != nil {
		return err
	}

	var (
		lastFrameTime = time.Now()
		ticker        *time.Ticker
		tick          <-chan time.Time
	)
	if g.config.FrameRate > 0 {
		ticker = time.NewTicker(g.config.FrameRate)
		defer ticker.Stop()
		tick = ticker.C
	}

	for !g.finished() {
		if tick != nil {
			select {
			case <-ctx.Done():
				return nil
			case <-tick:
			}
		} else if ctx.Err() != nil {
			return nil
		}

		frameStart := time.Now()
		restart, reason := g.step(frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart

		if err := g.draw(); err != nil {
			return err
		}

		if restart {
			if !g.config.AutoRestart {
				g.logger.Info("simulation ended", "reason", reason, "generation", g.generation)
				return nil
			}
			g.restartGame(reason)
		}
	}

	g.logger.Info("reached maximum generations limit", "max_generations", g.config.MaxGenerations)
	return nil
}

// draw renders the board and the status lines unless running quiet
func (g *game) draw() error {
	if g.config.Quiet {
		return nil
	}
	if err := g.renderer.Clear(); err != nil {
		return errors.Wrap(err, "[draw] failed to clear terminal")
	}
	if err := displayGameStatus(g.out, g.generation, g.universe, g.stats, g.stagnantCount, g.lastRestartGen); err != nil {
		return errors.Wrap(err, "[draw] failed to write status")
	}
	if err := g.renderer.Display(); err != nil {
		return errors.Wrap(err, "[draw] failed to render universe")
	}
	return nil
}

// displayGameStatus shows the current game status
func displayGameStatus(
	out io.Writer,
	generation int,
	u *model.Universe,
	stats *utils.Stats,
	stagnantCount int,
	lastRestartGen int,
) error {
	livingCells := u.LiveCells()
	density := float64(livingCells) / float64(u.Size()) * 100

	status := "Active"
	if stagnantCount > 0 {
		status = fmt.Sprintf("Stagnant (%d)", stagnantCount)
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	lo, hi, avg := stats.FrameRates()
	_, err := fmt.Fprintf(out,
		"Gen: %d | Living: %d | Density: %.1f%% | Born: %d | Died: %d | %s | Status: %s\n"+
			"Performance: %.1f gen/sec (min %.1f, max %.1f, avg %.1f) | Avg Pop: %.1f | Runtime: %.1fs\n",
		generation, livingCells, density, stats.Births, stats.Deaths, u.Topology(), status,
		stats.GenerationsPerSecond, lo, hi, avg, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())
	if err != nil {
		return err
	}

	// Show time since last restart
	if generation > lastRestartGen {
		if _, err = fmt.Fprintf(out, "Generations since restart: %d\n", generation-lastRestartGen); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(out)
	return err
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(
	livingCells, stagnantCount, generation int,
	config utils.Config,
) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}
