package main

import (
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-pixels/display"
	"github.com/sheikhrachel/go-gol-pixels/display/window"
	"github.com/sheikhrachel/go-gol-pixels/model"
	"github.com/sheikhrachel/go-gol-pixels/sim"
	"github.com/sheikhrachel/go-gol-pixels/utils"
)

// hostSurface is a presentation surface plus the event loop that keeps it alive
type hostSurface interface {
	sim.Surface
	Loop(done <-chan struct{}) error
}

// newLogger builds the process logger at the configured level
func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, "[newLogger] invalid log level: %q", level)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}

// newSurface picks the presentation backend
func newSurface(config utils.Config) (hostSurface, error) {
	switch config.Display {
	case utils.DisplayTerminal:
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, errors.Wrap(err, "[newSurface] failed to open terminal")
		}
		surface, err := display.NewTerminalSurface(screen, config.Width, config.Height, config.CellSize)
		if err != nil {
			return nil, err
		}
		return surface, nil
	case utils.DisplayHeadless:
		return display.NewMemorySurface(config.Width, config.Height), nil
	default:
		return window.NewSurface(config.Width, config.Height, config.Title), nil
	}
}

// initializeGame seeds the first generation and wires the simulation to its surface.
// config must already be validated.
func initializeGame(config utils.Config, surface sim.Surface, logger *slog.Logger) (*sim.Simulation, error) {
	width, height, err := model.GridSizeFor(config.Width, config.Height, config.CellSize)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] invalid window size")
	}
	colorMode, err := model.ParseColorMode(config.ColorMode)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] invalid color mode")
	}
	seeding, err := model.ParseSeedStrategy(config.Seeding)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] invalid seeding")
	}
	pacer, err := sim.NewPacer(config.Pacing, config.TickInterval)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] invalid pacing")
	}

	seed := config.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	grid := model.NewGrid(width, height)
	grid.Seed(seeding, config.AliveChance, rng)
	displayGameInfo(logger, config, grid, seed)

	simulation, err := sim.New(grid, surface, sim.Options{
		BufferWidth:  config.Width,
		BufferHeight: config.Height,
		CellSize:     config.CellSize,
		Colors:       model.NewColorSource(colorMode, rng),
		Pacer:        pacer,
		Pool:         pool,
		Bounded:      config.UseBoundedGrid,
		Logger:       logger,
	})
	if err != nil {
		pacer.Stop()
		return nil, errors.Wrap(err, "[initializeGame] failed to create simulation")
	}
	return simulation, nil
}

// displayGameInfo logs the startup banner
func displayGameInfo(logger *slog.Logger, config utils.Config, grid *model.Grid, seed int64) {
	logger.Info("starting simulation",
		"grid", slog.GroupValue(
			slog.Int("width", grid.GetWidth()),
			slog.Int("height", grid.GetHeight()),
		),
		"alive", grid.CountLivingCells(),
		"seeding", config.Seeding,
		"color_mode", config.ColorMode,
		"display", config.Display,
		"pacing", config.Pacing,
		"tick_interval", config.TickInterval,
		"random_seed", seed,
		"memory_pool", config.UseMemoryPool,
		"bounded", config.UseBoundedGrid)
}
