package tile

import (
	"fmt"

	"github.com/grindlemire/go-tile/internal/debug"
)

// Screen orchestrates one render cycle: it owns the cell buffer for the
// session, hands out the full-screen region for splitting, and flushes the
// buffer to the device once per Draw.
//
// Everything is single-threaded and synchronous: widgets render in the
// order the caller passes them, and later writes win in overlapping cells.
type Screen struct {
	dev Device
	buf *Buffer
}

// NewScreen queries the device size and allocates the buffer.
func NewScreen(dev Device) (*Screen, error) {
	width, height, err := dev.Size()
	if err != nil {
		return nil, fmt.Errorf("tile: create screen: %w", err)
	}

	debug.Logf("screen %dx%d", width, height)
	return &Screen{
		dev: dev,
		buf: NewBuffer(width, height),
	}, nil
}

// Region returns a fresh region spanning the whole screen, ready to be
// split. Regions and widgets are built fresh per frame; only the buffer
// persists across render cycles.
func (s *Screen) Region() Region {
	return NewScreenRegion(s.buf.Width(), s.buf.Height())
}

// Buffer returns the shared cell buffer.
func (s *Screen) Buffer() *Buffer {
	return s.buf
}

// Draw renders the widgets into the buffer in the given order, then
// flushes the frame to the device. The order is load-bearing: later
// widgets overwrite earlier ones in overlapping cells.
func (s *Screen) Draw(widgets ...Widget) error {
	for _, w := range widgets {
		w.Render(s.buf)
	}
	return s.buf.Flush(s.dev.Writer())
}
