// Package sim drives the render-then-step loop. A Simulation is owned by exactly
// one goroutine: nothing else may touch its grid or the surface's frame buffer.
package sim

import (
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-pixels/model"
	"github.com/sheikhrachel/go-gol-pixels/utils"
)

// State of the loop; Terminated is absorbing
type State int

const (
	Running State = iota
	Terminated
)

func (s State) String() string {
	if s == Terminated {
		return "terminated"
	}
	return "running"
}

// Surface is the presentation collaborator. Frame returns the writable RGBA8
// buffer of the configured size, Present shows whatever was written to it.
type Surface interface {
	Frame() []byte
	Present() error
}

// Options configures a Simulation
type Options struct {
	BufferWidth  int
	BufferHeight int
	CellSize     int

	Colors model.ColorSource
	Pacer  Pacer
	// Pool recycles retired generations; nil allocates a new grid every tick
	Pool *model.GridPool
	// Bounded steps only the region around live cells
	Bounded bool
	Logger  *slog.Logger
}

// Simulation renders the current generation, then replaces it with the next one
type Simulation struct {
	opts    Options
	surface Surface
	grid    *model.Grid
	logger  *slog.Logger
	stats   *utils.Stats

	state         State
	generation    int
	lastTick      time.Time
	cycleReported bool
}

// New creates a running simulation starting from grid. The grid must cover the
// buffer exactly in cells of opts.CellSize.
func New(grid *model.Grid, surface Surface, opts Options) (*Simulation, error) {
	width, height, err := model.GridSizeFor(opts.BufferWidth, opts.BufferHeight, opts.CellSize)
	if err != nil {
		return nil, errors.Wrap(err, "[New] invalid buffer")
	}
	if grid.GetWidth() != width || grid.GetHeight() != height {
		return nil, errors.Errorf("[New] grid is %dx%d, buffer needs %dx%d",
			grid.GetWidth(), grid.GetHeight(), width, height)
	}
	if opts.Colors == nil {
		opts.Colors = model.NewColorSource(model.Monochrome, nil)
	}
	if opts.Pacer == nil {
		return nil, errors.New("[New] pacer is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Simulation{
		opts:     opts,
		surface:  surface,
		grid:     grid,
		logger:   logger,
		stats:    utils.NewStats(),
		state:    Running,
	}, nil
}

// State returns whether the loop is still running
func (s *Simulation) State() State { return s.state }

// Generation returns the index of the generation the next tick renders
func (s *Simulation) Generation() int { return s.generation }

// Stats returns the statistics gathered so far
func (s *Simulation) Stats() *utils.Stats { return s.stats }

// Run ticks until extinction, pausing between ticks. It returns nil on extinction
// and the first presentation error otherwise.
func (s *Simulation) Run() error {
	defer s.opts.Pacer.Stop()

	s.lastTick = time.Now()
	for s.state == Running {
		if err := s.Tick(); err != nil {
			return err
		}
		if s.state == Running {
			s.opts.Pacer.Wait()
		}
	}
	return nil
}

// Tick draws and presents the current generation, then either terminates on
// extinction or advances to the next generation. It does not pause.
func (s *Simulation) Tick() error {
	if s.state == Terminated {
		return nil
	}

	if err := s.render(); err != nil {
		return err
	}

	alive := s.grid.CountLivingCells()
	now := time.Now()
	if s.lastTick.IsZero() {
		s.lastTick = now
	}
	s.stats.Update(s.generation, alive, now.Sub(s.lastTick))
	s.lastTick = now

	attrs := []any{
		"generation", s.generation,
		"alive", alive,
		"gen_per_sec", s.stats.GenerationsPerSecond,
	}
	if s.opts.Bounded {
		attrs = append(attrs, "bounding_box", s.grid.GetBoundingBoxSize())
	}
	s.logger.Debug("tick", attrs...)

	if alive == 0 {
		s.state = Terminated
		s.logger.Info("population extinct",
			"generations", s.generation+1,
			"total_generations", s.stats.TotalGenerations,
			"average_population", s.stats.AveragePopulation,
			"elapsed", s.stats.Elapsed())
		return nil
	}

	s.observeCycle()
	s.advance()
	return nil
}

func (s *Simulation) render() error {
	var (
		bw, bh = s.opts.BufferWidth, s.opts.BufferHeight
		frame  = s.surface.Frame()
	)
	if want := bw * bh * model.BytesPerPixel; len(frame) != want {
		return errors.Errorf("[render] frame buffer has %d bytes, want %d", len(frame), want)
	}

	model.ClearFrame(frame, bw, bh)
	s.grid.ForEachAlive(func(cell model.GridCoords) {
		model.FillCell(frame, bw, cell, s.opts.CellSize, s.opts.Colors.Next())
	})

	if err := s.surface.Present(); err != nil {
		return errors.Wrapf(err, "[render] failed to present generation %d", s.generation)
	}
	return nil
}

func (s *Simulation) advance() {
	var next *model.Grid
	if s.opts.Bounded {
		next = s.grid.NextGenerationBounded(s.opts.Pool)
	} else {
		next = s.grid.NextGeneration(s.opts.Pool)
	}

	model.GridToPool(s.grid, s.opts.Pool)
	s.grid = next
	s.generation++
}

// observeCycle logs once when the board settles; it never ends the run
func (s *Simulation) observeCycle() {
	if s.cycleReported {
		return
	}
	if period := s.stats.ObserveHash(s.grid.GetGridHash()); period > 0 {
		s.cycleReported = true
		s.logger.Info("population settled",
			"generation", s.generation,
			"period", period,
			"alive", s.stats.Population)
	}
}
