package model

// BytesPerPixel is the stride of one RGBA8 pixel
const BytesPerPixel = 4

// FillRect paints a w*h rectangle at origin. The rectangle must lie inside the
// buffer; anything else panics with an index out of range.
func FillRect(frame []byte, bufferWidth int, origin PixelCoords, w, h int, rgb Rgb) {
	for y := origin.Y; y < origin.Y+h; y++ {
		for x := origin.X; x < origin.X+w; x++ {
			idx := (y*bufferWidth + x) * BytesPerPixel
			frame[idx+0] = rgb.R
			frame[idx+1] = rgb.G
			frame[idx+2] = rgb.B
			frame[idx+3] = 0xFF
		}
	}
}

// FillCell paints the square covering one grid cell
func FillCell(frame []byte, bufferWidth int, cell GridCoords, cellSize int, rgb Rgb) {
	FillRect(frame, bufferWidth, CellToPixelOrigin(cell, cellSize), cellSize, cellSize, rgb)
}

// ClearFrame paints the whole buffer black
func ClearFrame(frame []byte, bufferWidth, bufferHeight int) {
	FillRect(frame, bufferWidth, OriginPixel(), bufferWidth, bufferHeight, Black)
}
