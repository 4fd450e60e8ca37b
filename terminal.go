package tile

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/grindlemire/go-tile/internal/debug"
)

// Device is the terminal capability the rendering core consumes. Terminal
// implements it; tests substitute a fake.
type Device interface {
	// Size returns the current terminal dimensions in cells.
	Size() (width, height int, err error)

	// Writer returns the stream frames are flushed to.
	Writer() io.Writer
}

// Terminal is the ANSI terminal device: it owns raw-mode state, the cursor,
// the size query, and the raw input byte stream.
//
// Raw mode is a process-wide resource: pair EnterRawMode with a deferred
// Close so the terminal is restored on every exit path, normal or not.
// Close is idempotent and also re-shows the cursor.
type Terminal struct {
	out *os.File
	in  *os.File

	esc      *escBuilder
	rawState *term.State
	closed   bool
}

// NewTerminal creates a terminal device over the given output and input
// files, typically os.Stdout and os.Stdin. Returns an error if the output
// is not a terminal.
func NewTerminal(out, in *os.File) (*Terminal, error) {
	if !term.IsTerminal(int(out.Fd())) {
		return nil, fmt.Errorf("tile: %s is not a terminal", out.Name())
	}

	return &Terminal{
		out: out,
		in:  in,
		esc: newEscBuilder(64),
	}, nil
}

// Size returns the terminal dimensions in cells.
func (t *Terminal) Size() (width, height int, err error) {
	width, height, err = getTerminalSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("tile: query terminal size: %w", err)
	}
	return width, height, nil
}

// Writer returns the stream frames are flushed to.
func (t *Terminal) Writer() io.Writer {
	return t.out
}

// Input exposes the terminal's raw input byte stream for caller-built
// input handling. The rendering core never reads from it.
func (t *Terminal) Input() io.Reader {
	return t.in
}

// EnterRawMode puts the terminal into raw mode for byte-by-byte input and
// hides the cursor.
func (t *Terminal) EnterRawMode() error {
	state, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return fmt.Errorf("tile: enter raw mode: %w", err)
	}
	t.rawState = state
	t.HideCursor()
	return nil
}

// ExitRawMode restores the terminal to its previous mode and makes the
// cursor visible again. Safe to call when raw mode was never entered.
func (t *Terminal) ExitRawMode() error {
	if t.rawState == nil {
		return nil
	}
	err := term.Restore(int(t.in.Fd()), t.rawState)
	t.rawState = nil
	t.ShowCursor()
	if err != nil {
		return fmt.Errorf("tile: exit raw mode: %w", err)
	}
	return nil
}

// HideCursor makes the cursor invisible.
func (t *Terminal) HideCursor() {
	t.esc.Reset()
	t.esc.HideCursor()
	t.out.Write(t.esc.Bytes())
}

// ShowCursor makes the cursor visible.
func (t *Terminal) ShowCursor() {
	t.esc.Reset()
	t.esc.ShowCursor()
	t.out.Write(t.esc.Bytes())
}

// Close restores the terminal to its original state. It runs exactly once;
// later calls are no-ops. Call it deferred right after NewTerminal so the
// line discipline is released on every exit path.
func (t *Terminal) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true

	if err := t.ExitRawMode(); err != nil {
		debug.Logf("terminal close: %v", err)
		return err
	}
	return nil
}
