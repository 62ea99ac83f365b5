package sim

import (
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-pixels/utils"
)

// Pacer suspends the worker between ticks
type Pacer interface {
	Wait()
	Stop()
}

// SleepPacer blocks for the full interval after every tick, so the real cadence
// is interval plus the time spent rendering and stepping
type SleepPacer struct {
	Interval time.Duration
}

func (p SleepPacer) Wait() { time.Sleep(p.Interval) }

func (SleepPacer) Stop() {}

// TickerPacer holds ticks to a wall-clock rate. Ticks that overrun the interval
// are not made up for; the ticker drops them.
type TickerPacer struct {
	ticker *time.Ticker
}

func NewTickerPacer(interval time.Duration) *TickerPacer {
	return &TickerPacer{ticker: time.NewTicker(interval)}
}

func (p *TickerPacer) Wait() { <-p.ticker.C }

func (p *TickerPacer) Stop() { p.ticker.Stop() }

// NewPacer builds the pacer named by the configuration
func NewPacer(name string, interval time.Duration) (Pacer, error) {
	if interval <= 0 {
		return nil, errors.Errorf("[NewPacer] interval must be positive, got %v", interval)
	}
	switch name {
	case utils.PacingSleep:
		return SleepPacer{Interval: interval}, nil
	case utils.PacingTicker:
		return NewTickerPacer(interval), nil
	default:
		return nil, errors.Errorf("[NewPacer] unknown pacing: %q", name)
	}
}
