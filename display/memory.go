package display

// MemorySurface presents to nowhere. It keeps a copy of the last presented frame
// and counts presents, for headless runs and tests.
type MemorySurface struct {
	frame    []byte
	last     []byte
	presents int

	// Fail, when set, is returned by every Present
	Fail error
}

func NewMemorySurface(width, height int) *MemorySurface {
	return &MemorySurface{
		frame: make([]byte, width*height*4),
		last:  make([]byte, width*height*4),
	}
}

func (m *MemorySurface) Frame() []byte { return m.frame }

func (m *MemorySurface) Present() error {
	if m.Fail != nil {
		return m.Fail
	}
	copy(m.last, m.frame)
	m.presents++
	return nil
}

// Presents returns how many frames were presented
func (m *MemorySurface) Presents() int { return m.presents }

// LastFrame returns the most recently presented frame
func (m *MemorySurface) LastFrame() []byte { return m.last }

func (m *MemorySurface) Loop(done <-chan struct{}) error {
	<-done
	return nil
}
