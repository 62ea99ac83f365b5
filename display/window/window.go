// Package window presents frames in a desktop window through ebiten.
package window

import (
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
)

// ErrClosed is returned by Present once the window has gone away
var ErrClosed = errors.New("window closed")

// Surface shows frames in a desktop window. Present copies the back buffer
// into a front buffer that the ebiten draw callback uploads to the GPU.
type Surface struct {
	width, height int
	title         string
	back          []byte

	mu    sync.Mutex
	front []byte
	dirty bool

	img    *ebiten.Image
	done   <-chan struct{}
	closed atomic.Bool
}

// NewSurface creates a surface for a width x height window; nothing is
// shown until Loop runs
func NewSurface(width, height int, title string) *Surface {
	return &Surface{
		width:  width,
		height: height,
		title:  title,
		back:   make([]byte, width*height*4),
		front:  make([]byte, width*height*4),
	}
}

// Frame returns the back buffer
func (s *Surface) Frame() []byte { return s.back }

// Present publishes the back buffer to the window
func (s *Surface) Present() error {
	if s.closed.Load() {
		return ErrClosed
	}
	s.mu.Lock()
	copy(s.front, s.back)
	s.dirty = true
	s.mu.Unlock()
	return nil
}

// Update ends the event loop once the simulation has finished
func (s *Surface) Update() error {
	select {
	case <-s.done:
		return ebiten.Termination
	default:
		return nil
	}
}

// Draw uploads the latest presented frame, if any, and blits it to the screen
func (s *Surface) Draw(screen *ebiten.Image) {
	if s.img == nil {
		s.img = ebiten.NewImage(s.width, s.height)
	}

	s.mu.Lock()
	if s.dirty {
		s.img.WritePixels(s.front)
		s.dirty = false
	}
	s.mu.Unlock()

	screen.DrawImage(s.img, nil)
}

// Layout pins the logical screen to the buffer size so one buffer pixel is one screen pixel
func (s *Surface) Layout(_, _ int) (int, int) {
	return s.width, s.height
}

// Loop opens the window and processes its events on the calling goroutine, which
// must be the main one. It returns when done closes or the user closes the window.
func (s *Surface) Loop(done <-chan struct{}) error {
	s.done = done
	defer s.closed.Store(true)

	ebiten.SetWindowSize(s.width, s.height)
	ebiten.SetWindowTitle(s.title)
	if err := ebiten.RunGame(s); err != nil {
		return errors.Wrap(err, "[Loop] window event loop failed")
	}
	return nil
}
