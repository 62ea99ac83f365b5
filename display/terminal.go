// Package display provides the in-process surfaces a simulation presents frames to.
//
// Every surface owns a back buffer that the simulation goroutine draws into and
// hands back through Present, plus a Loop that blocks the calling goroutine until
// the simulation is done. The desktop window lives in the window subpackage.
package display

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-pixels/model"
)

// ErrClosed is returned by Present once the terminal has been released
var ErrClosed = errors.New("terminal closed")

// TerminalSurface draws each cell as two terminal columns. A cell takes the
// color of its top-left pixel; black pixels keep the terminal background.
type TerminalSurface struct {
	width, height int
	cellSize      int
	frame         []byte
	screen        tcell.Screen
	closed        atomic.Bool
}

// NewTerminalSurface initializes screen and creates a surface for a
// width x height buffer drawn onto it
func NewTerminalSurface(screen tcell.Screen, width, height, cellSize int) (*TerminalSurface, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewTerminalSurface] failed to initialize terminal")
	}
	screen.HideCursor()
	screen.Clear()
	return &TerminalSurface{
		width:    width,
		height:   height,
		cellSize: cellSize,
		frame:    make([]byte, width*height*model.BytesPerPixel),
		screen:   screen,
	}, nil
}

// Frame returns the buffer the next Present draws
func (r *TerminalSurface) Frame() []byte { return r.frame }

// Present copies the frame onto the screen and shows it
func (r *TerminalSurface) Present() error {
	if r.closed.Load() {
		return ErrClosed
	}
	for y := 0; y < r.height; y += r.cellSize {
		for x := 0; x < r.width; x += r.cellSize {
			idx := (y*r.width + x) * model.BytesPerPixel
			style := cellStyle(r.frame[idx], r.frame[idx+1], r.frame[idx+2])
			col, row := x/r.cellSize*2, y/r.cellSize
			r.screen.SetContent(col, row, ' ', nil, style)
			r.screen.SetContent(col+1, row, ' ', nil, style)
		}
	}
	r.screen.Show()
	return nil
}

func cellStyle(red, green, blue byte) tcell.Style {
	if red == 0 && green == 0 && blue == 0 {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(red), int32(green), int32(blue)))
}

// Loop runs the terminal event loop until done is closed or the user presses
// Escape or Ctrl-C, then releases the terminal
func (r *TerminalSurface) Loop(done <-chan struct{}) error {
	stop := make(chan struct{})
	defer r.Close()
	defer close(stop)

	go func() {
		select {
		case <-done:
			_ = r.screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-stop:
		}
	}()

	for {
		switch ev := r.screen.PollEvent().(type) {
		case nil, *tcell.EventInterrupt:
			return nil
		case *tcell.EventResize:
			r.screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return nil
			}
		}
	}
}

// Close restores the terminal. It is safe to call more than once.
func (r *TerminalSurface) Close() error {
	if r.closed.CompareAndSwap(false, true) {
		r.screen.Fini()
	}
	return nil
}
