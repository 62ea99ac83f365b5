package model

import (
	"crypto/md5"
	"fmt"
	"math/rand"

	"github.com/sheikhrachel/go-gol-pixels/rules"
)

// neighborOffsets lists the eight cells around (0, 0), clockwise from top-left
var neighborOffsets = [8]GridCoords{
	{-1, -1}, {0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0},
}

// Grid is one generation of the board. Edges are hard: cells past them count as dead.
type Grid struct {
	width  int
	height int
	cells  [][]bool

	// Bounding box of live cells, used by NextGenerationBounded
	activeBounds struct {
		minX, maxX, minY, maxY int
		valid                  bool
	}
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(width, height int) *Grid {
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Reset resizes the grid and kills every cell
func (g *Grid) Reset(width, height int) {
	g.width = width
	g.height = height
	g.activeBounds.valid = false

	if len(g.cells) != height {
		g.cells = make([][]bool, height)
	}
	for i := range g.cells {
		if len(g.cells[i]) != width {
			g.cells[i] = make([]bool, width)
		} else {
			clear(g.cells[i])
		}
	}
}

// Clear kills every cell
func (g *Grid) Clear() {
	for y := 0; y < g.height; y++ {
		clear(g.cells[y])
	}
	g.activeBounds.valid = false
}

// Set sets a cell to alive (true) or dead (false); out-of-range coordinates are ignored
func (g *Grid) Set(x, y int, alive bool) {
	if g.inBounds(x, y) {
		g.cells[y][x] = alive
		g.activeBounds.valid = false
	}
}

// Get returns the state of a cell; out-of-range coordinates are dead
func (g *Grid) Get(x, y int) bool {
	if !g.inBounds(x, y) {
		return false
	}
	return g.cells[y][x]
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// CountAliveNeighbors returns how many of the up to eight in-bounds neighbors are alive
func (g *Grid) CountAliveNeighbors(x, y int) (count int) {
	for _, off := range neighborOffsets {
		nx, ny := x+off.X, y+off.Y
		if !g.inBounds(nx, ny) {
			continue
		}
		if g.cells[ny][nx] {
			count++
		}
	}
	return
}

// calculateActiveBounds calculates the bounding box of living cells
func (g *Grid) calculateActiveBounds() {
	g.activeBounds.valid = false

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !g.cells[y][x] {
				continue
			}
			if !g.activeBounds.valid {
				g.activeBounds.minX, g.activeBounds.maxX = x, x
				g.activeBounds.minY, g.activeBounds.maxY = y, y
				g.activeBounds.valid = true
				continue
			}
			g.activeBounds.minX = min(g.activeBounds.minX, x)
			g.activeBounds.maxX = max(g.activeBounds.maxX, x)
			g.activeBounds.minY = min(g.activeBounds.minY, y)
			g.activeBounds.maxY = max(g.activeBounds.maxY, y)
		}
	}
}

// GetBoundingBoxSize returns the number of cells in the box around all live cells
func (g *Grid) GetBoundingBoxSize() int {
	if !g.activeBounds.valid {
		g.calculateActiveBounds()
	}
	if !g.activeBounds.valid {
		return 0
	}
	return (g.activeBounds.maxX - g.activeBounds.minX + 1) *
		(g.activeBounds.maxY - g.activeBounds.minY + 1)
}

func (g *Grid) nextGrid(pool *GridPool) *Grid {
	if pool != nil {
		return pool.Get(g.width, g.height)
	}
	return NewGrid(g.width, g.height)
}

// NextGeneration returns a new grid holding the generation after g. Every cell is
// derived from g alone; g is never written.
func (g *Grid) NextGeneration(pool *GridPool) *Grid {
	next := g.nextGrid(pool)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			next.cells[y][x] = rules.ApplyConwayRules(g.CountAliveNeighbors(x, y), g.cells[y][x])
		}
	}
	return next
}

// NextGenerationBounded is NextGeneration restricted to the live bounding box plus
// a one-cell margin. Cells further out have no live neighbors and stay dead.
func (g *Grid) NextGenerationBounded(pool *GridPool) *Grid {
	if !g.activeBounds.valid {
		g.calculateActiveBounds()
	}

	next := g.nextGrid(pool)
	if !g.activeBounds.valid {
		return next
	}

	minX := max(0, g.activeBounds.minX-1)
	maxX := min(g.width-1, g.activeBounds.maxX+1)
	minY := max(0, g.activeBounds.minY-1)
	maxY := min(g.height-1, g.activeBounds.maxY+1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			next.cells[y][x] = rules.ApplyConwayRules(g.CountAliveNeighbors(x, y), g.cells[y][x])
		}
	}

	next.calculateActiveBounds()
	return next
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}

// ForEachAlive calls fn with the coordinates of every living cell, row by row
func (g *Grid) ForEachAlive(fn func(cell GridCoords)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] {
				fn(GridCoords{X: x, Y: y})
			}
		}
	}
}

// Equal reports whether both grids have the same dimensions and cells
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	row := make([]byte, g.width)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			row[x] = 0
			if g.cells[y][x] {
				row[x] = 1
			}
		}
		h.Write(row)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// RandomConfiguration brings each cell alive with probability chance and leaves it
// untouched otherwise
func (g *Grid) RandomConfiguration(chance float64, rng *rand.Rand) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if rng.Float64() < chance {
				g.cells[y][x] = true
			}
		}
	}
	g.activeBounds.valid = false
}
