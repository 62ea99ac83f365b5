package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-pixels/model"
)

// Display backends
const (
	DisplayWindow   = "window"
	DisplayTerminal = "terminal"
	DisplayHeadless = "headless"
)

// Tick pacing strategies
const (
	PacingSleep  = "sleep"
	PacingTicker = "ticker"
)

// Config holds the startup configuration; nothing in it changes during a run
type Config struct {
	Width          int           `json:"width"`
	Height         int           `json:"height"`
	CellSize       int           `json:"cell_size"`
	ColorMode      string        `json:"color_mode"`
	AliveChance    float64       `json:"alive_chance"`
	TickInterval   time.Duration `json:"tick_interval"`
	Seeding        string        `json:"seeding"`
	Display        string        `json:"display"`
	Pacing         string        `json:"pacing"`
	RandomSeed     int64         `json:"random_seed"`
	UseMemoryPool  bool          `json:"use_memory_pool"`
	UseBoundedGrid bool          `json:"use_bounded_grid"`
	Title          string        `json:"title"`
	LogLevel       string        `json:"log_level"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:          800,
		Height:         640,
		CellSize:       model.DefaultCellSize,
		ColorMode:      model.Monochrome.String(),
		AliveChance:    0.25,
		TickInterval:   100 * time.Millisecond,
		Seeding:        model.SeedRandom.String(),
		Display:        DisplayWindow,
		Pacing:         PacingSleep,
		UseMemoryPool:  true,
		UseBoundedGrid: false,
		Title:          "Game of Life",
		LogLevel:       "info",
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
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

// Validate rejects configurations the simulation cannot start with
func (c Config) Validate() error {
	if _, _, err := model.GridSizeFor(c.Width, c.Height, c.CellSize); err != nil {
		return errors.Wrap(err, "[Validate] invalid window size")
	}
	if c.AliveChance < 0 || c.AliveChance > 1 {
		return errors.Errorf("[Validate] alive chance must be within [0, 1], got %v", c.AliveChance)
	}
	if c.TickInterval <= 0 {
		return errors.Errorf("[Validate] tick interval must be positive, got %v", c.TickInterval)
	}
	if _, err := model.ParseColorMode(c.ColorMode); err != nil {
		return errors.Wrap(err, "[Validate] invalid color mode")
	}
	if _, err := model.ParseSeedStrategy(c.Seeding); err != nil {
		return errors.Wrap(err, "[Validate] invalid seeding")
	}
	switch c.Display {
	case DisplayWindow, DisplayTerminal, DisplayHeadless:
	default:
		return errors.Errorf("[Validate] unknown display: %q", c.Display)
	}
	switch c.Pacing {
	case PacingSleep, PacingTicker:
	default:
		return errors.Errorf("[Validate] unknown pacing: %q", c.Pacing)
	}
	return nil
}
