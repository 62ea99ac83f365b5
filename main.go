package main

import (
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-pixels/utils"
)

const defaultConfigFile = "config.json"

// Process exit codes
const (
	exitOK    = 0
	exitFatal = 1
)

// flagOverrides holds command line values that replace the file configuration
type flagOverrides struct {
	configFile   string
	colorMode    string
	aliveChance  float64
	seeding      string
	display      string
	pacing       string
	randomSeed   int64
	width        int
	height       int
	tickInterval time.Duration
	logLevel     string
}

func parseFlags(args []string, output io.Writer) (*flag.FlagSet, *flagOverrides, error) {
	var (
		defaults = utils.DefaultConfig()
		o        = &flagOverrides{}
		flags    = flag.NewFlagSet("go-gol-pixels", flag.ContinueOnError)
	)
	flags.SetOutput(output)
	flags.StringVar(&o.configFile, "config", defaultConfigFile, "JSON configuration file")
	flags.StringVar(&o.colorMode, "color-mode", defaults.ColorMode, "cell colors: monochrome or random")
	flags.Float64Var(&o.aliveChance, "alive-random-chance", defaults.AliveChance, "probability a cell starts alive with random seeding")
	flags.StringVar(&o.seeding, "seeding", defaults.Seeding, "first generation: random, glider or patterns")
	flags.StringVar(&o.display, "display", defaults.Display, "output: window, terminal or headless")
	flags.StringVar(&o.pacing, "pacing", defaults.Pacing, "tick pacing: sleep or ticker")
	flags.Int64Var(&o.randomSeed, "seed", defaults.RandomSeed, "random seed, 0 picks one from the clock")
	flags.IntVar(&o.width, "width", defaults.Width, "window width in pixels")
	flags.IntVar(&o.height, "height", defaults.Height, "window height in pixels")
	flags.DurationVar(&o.tickInterval, "tick", defaults.TickInterval, "pause between ticks")
	flags.StringVar(&o.logLevel, "log-level", defaults.LogLevel, "debug, info, warn or error")

	if err := flags.Parse(args); err != nil {
		return nil, nil, errors.Wrap(err, "[parseFlags] invalid arguments")
	}
	return flags, o, nil
}

// loadConfig reads the configuration file and applies flags that were set
// explicitly. A missing default config file is not an error.
func loadConfig(flags *flag.FlagSet, o *flagOverrides) (utils.Config, error) {
	explicit := map[string]bool{}
	flags.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	config, err := utils.LoadConfig(o.configFile)
	if err != nil {
		if explicit["config"] || !errors.Is(err, fs.ErrNotExist) {
			return config, err
		}
		config = utils.DefaultConfig()
	}

	overrides := map[string]func(){
		"color-mode":          func() { config.ColorMode = o.colorMode },
		"alive-random-chance": func() { config.AliveChance = o.aliveChance },
		"seeding":             func() { config.Seeding = o.seeding },
		"display":             func() { config.Display = o.display },
		"pacing":              func() { config.Pacing = o.pacing },
		"seed":                func() { config.RandomSeed = o.randomSeed },
		"width":               func() { config.Width = o.width },
		"height":              func() { config.Height = o.height },
		"tick":                func() { config.TickInterval = o.tickInterval },
		"log-level":           func() { config.LogLevel = o.logLevel },
	}
	for name := range explicit {
		if apply, ok := overrides[name]; ok {
			apply()
		}
	}
	return config, nil
}

// run starts the simulation worker, runs the host event loop on the calling
// goroutine and returns the process exit code
func run(args []string) int {
	flags, overrides, err := parseFlags(args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		return exitFatal
	}

	config, err := loadConfig(flags, overrides)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		return exitFatal
	}
	logger, err := newLogger(config.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		return exitFatal
	}
	slog.SetDefault(logger)

	if err = config.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		return exitFatal
	}

	surface, err := newSurface(config)
	if err != nil {
		logger.Error("display failed", "error", err)
		return exitFatal
	}
	if closer, ok := surface.(io.Closer); ok {
		defer closer.Close()
	}
	simulation, err := initializeGame(config, surface, logger)
	if err != nil {
		logger.Error("setup failed", "error", err)
		return exitFatal
	}

	var (
		eg   errgroup.Group
		done = make(chan struct{})
	)
	eg.Go(func() error {
		defer close(done)
		return simulation.Run()
	})

	if err = surface.Loop(done); err != nil {
		logger.Error("display failed", "error", err)
		return exitFatal
	}

	select {
	case <-done:
	default:
		// The window or terminal was closed while the simulation was still running
		logger.Info("display closed, stopping")
		return exitOK
	}

	if err = eg.Wait(); err != nil {
		logger.Error("simulation aborted", "error", err)
		return exitFatal
	}
	return exitOK
}

func main() {
	os.Exit(run(os.Args[1:]))
}
