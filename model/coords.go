package model

import "github.com/pkg/errors"

// DefaultCellSize is the number of pixels along each side of a cell
const DefaultCellSize = 16

// GridCoords is a location in grid space
type GridCoords struct {
	X, Y int
}

// PixelCoords is a location in pixel space
type PixelCoords struct {
	X, Y int
}

// OriginPixel returns the top-left corner of the frame
func OriginPixel() PixelCoords {
	return PixelCoords{}
}

// CellToPixelOrigin returns the top-left pixel of a cell
func CellToPixelOrigin(cell GridCoords, cellSize int) PixelCoords {
	return PixelCoords{X: cell.X * cellSize, Y: cell.Y * cellSize}
}

// GridSizeFor returns the grid dimensions that exactly cover a buffer.
// Both buffer dimensions must be positive multiples of cellSize.
func GridSizeFor(bufferWidth, bufferHeight, cellSize int) (width, height int, err error) {
	if cellSize <= 0 {
		return 0, 0, errors.Errorf("[GridSizeFor] cell size must be positive, got %d", cellSize)
	}
	if bufferWidth <= 0 || bufferWidth%cellSize != 0 {
		return 0, 0, errors.Errorf("[GridSizeFor] buffer width %d must be a positive multiple of %d", bufferWidth, cellSize)
	}
	if bufferHeight <= 0 || bufferHeight%cellSize != 0 {
		return 0, 0, errors.Errorf("[GridSizeFor] buffer height %d must be a positive multiple of %d", bufferHeight, cellSize)
	}
	return bufferWidth / cellSize, bufferHeight / cellSize, nil
}
