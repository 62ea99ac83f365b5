package model

import (
	"math/rand"
	"strings"

	"github.com/pkg/errors"
)

// Rgb is an opaque color, alpha is always written as 0xFF
type Rgb struct {
	R, G, B uint8
}

var (
	// Black clears the frame
	Black = Rgb{0, 0, 0}
	// White is the monochrome cell color
	White = Rgb{255, 255, 255}
)

// ColorMode selects how live cells are colored
type ColorMode int

const (
	// Monochrome draws every cell in White
	Monochrome ColorMode = iota
	// Random draws every cell in a freshly sampled color
	Random
)

var colorModeNames = map[ColorMode]string{
	Monochrome: "monochrome",
	Random:     "random",
}

func (m ColorMode) String() string {
	if name, ok := colorModeNames[m]; ok {
		return name
	}
	return "unknown"
}

// ParseColorMode resolves a color mode by name, case-insensitively
func ParseColorMode(name string) (ColorMode, error) {
	for mode, modeName := range colorModeNames {
		if strings.EqualFold(name, modeName) {
			return mode, nil
		}
	}
	return Monochrome, errors.Errorf("[ParseColorMode] unknown color mode: %q", name)
}

// ColorSource yields the color of the next cell drawn
type ColorSource interface {
	Next() Rgb
}

type fixedColor struct {
	rgb Rgb
}

func (c fixedColor) Next() Rgb { return c.rgb }

type randomColor struct {
	rng *rand.Rand
}

// Next samples each channel independently, so the same cell changes color every draw
func (c randomColor) Next() Rgb {
	return Rgb{
		R: uint8(c.rng.Intn(256)),
		G: uint8(c.rng.Intn(256)),
		B: uint8(c.rng.Intn(256)),
	}
}

// NewColorSource resolves a mode into the source used for every cell of every tick.
// rng is only consulted in Random mode and must not be shared with another goroutine.
func NewColorSource(mode ColorMode, rng *rand.Rand) ColorSource {
	switch mode {
	case Random:
		return randomColor{rng: rng}
	default:
		return fixedColor{rgb: White}
	}
}
