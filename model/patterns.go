package model

import (
	"math/rand"
	"strings"

	"github.com/pkg/errors"
)

// SeedStrategy picks the first generation at startup
type SeedStrategy int

const (
	// SeedRandom brings each cell alive with a fixed probability
	SeedRandom SeedStrategy = iota
	// SeedGlider places a single glider near the top-left corner
	SeedGlider
	// SeedPatterns spreads gliders and blinkers over the board
	SeedPatterns
)

var seedStrategyNames = map[SeedStrategy]string{
	SeedRandom:   "random",
	SeedGlider:   "glider",
	SeedPatterns: "patterns",
}

func (s SeedStrategy) String() string {
	if name, ok := seedStrategyNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseSeedStrategy resolves a seeding strategy by name, case-insensitively
func ParseSeedStrategy(name string) (SeedStrategy, error) {
	for strategy, strategyName := range seedStrategyNames {
		if strings.EqualFold(name, strategyName) {
			return strategy, nil
		}
	}
	return SeedRandom, errors.Errorf("[ParseSeedStrategy] unknown seed strategy: %q", name)
}

// Seed fills the grid according to strategy. chance and rng are only used by SeedRandom.
func (g *Grid) Seed(strategy SeedStrategy, chance float64, rng *rand.Rand) {
	switch strategy {
	case SeedGlider:
		g.AddGlider(1, 1)
	case SeedPatterns:
		g.SeedPatterns()
	default:
		g.RandomConfiguration(chance, rng)
	}
}

// AddGlider adds a south-east travelling glider with its bounding box at (startX, startY)
func (g *Grid) AddGlider(startX, startY int) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for y, row := range pattern {
		for x, cell := range row {
			if cell {
				g.Set(startX+x, startY+y, true)
			}
		}
	}
}

// AddBlinker adds a horizontal period-2 blinker starting at (startX, startY)
func (g *Grid) AddBlinker(startX, startY int) {
	g.Set(startX, startY, true)
	g.Set(startX+1, startY, true)
	g.Set(startX+2, startY, true)
}

// SeedPatterns lays out a deterministic mix of gliders and blinkers; boards smaller
// than 10x10 only get a blinker
func (g *Grid) SeedPatterns() {
	if g.width < 10 || g.height < 10 {
		g.AddBlinker(0, g.height/2)
		return
	}

	g.AddGlider(1, 1)
	if g.width >= 20 && g.height >= 15 {
		g.AddGlider(g.width-8, 5)
	}

	g.AddBlinker(g.width/4, g.height/4)
	if g.width >= 30 {
		g.AddBlinker(3*g.width/4, 3*g.height/4)
	}
}
