package tile

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Buffer is a flat grid of character cells sized to the terminal.
// It is the sole mutable rendering target: widgets write into it in caller
// order, and Flush serializes it to the output stream once per frame.
//
// There is no front/back diffing: every frame is a full redraw and the
// buffer resets to default cells after each flush.
type Buffer struct {
	cells  []Cell
	width  int
	height int

	esc *escBuilder // Reused across flushes
}

// NewBuffer creates a buffer of the specified dimensions, initialized with
// spaces in the terminal's default colors.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = defaultCell()
	}

	return &Buffer{
		cells:  cells,
		width:  width,
		height: height,
	}
}

// Width returns the buffer width in columns.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in rows.
func (b *Buffer) Height() int {
	return b.height
}

// Size returns the buffer dimensions (width, height).
func (b *Buffer) Size() (width, height int) {
	return b.width, b.height
}

// idx converts (x, y) coordinates to a flat row-major index.
// Returns -1 if out of bounds.
func (b *Buffer) idx(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// Cell returns the cell at position (x, y).
// Returns an empty Cell if the position is out of bounds.
func (b *Buffer) Cell(x, y int) Cell {
	idx := b.idx(x, y)
	if idx < 0 {
		return Cell{}
	}
	return b.cells[idx]
}

// SetCell sets the cell at position (x, y).
// Does nothing if the position is out of bounds.
func (b *Buffer) SetCell(x, y int, c Cell) {
	idx := b.idx(x, y)
	if idx < 0 {
		return
	}
	b.cells[idx] = c
}

// SetRune sets a rune at position (x, y) with the given style.
// Handles wide characters by setting continuation cells and clears any
// wide character the write overlaps.
func (b *Buffer) SetRune(x, y int, r rune, style Style) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}

	width := runewidth.RuneWidth(r)
	if width < 1 {
		width = 1
	}
	current := b.Cell(x, y)

	// If the target is a continuation cell, clear the originating wide char.
	if current.IsContinuation() {
		b.clearWideCharAt(x, y)
	}

	// If the target is the start of a wide character, clear its continuation.
	if current.Width == 2 && x+1 < b.width {
		b.SetCell(x+1, y, defaultCell())
	}

	// If placing a wide char would overlap a wide char at x+1, clear it.
	if width == 2 && x+1 < b.width {
		next := b.Cell(x+1, y)
		if next.Width == 2 || next.IsContinuation() {
			b.clearWideCharAt(x+1, y)
		}
	}

	// A wide char at the last column can't fit; place a space instead.
	if width == 2 && x+1 >= b.width {
		b.SetCell(x, y, NewCell(' ', style))
		return
	}

	b.SetCell(x, y, NewCellWithWidth(r, style, uint8(width)))

	if width == 2 {
		b.SetCell(x+1, y, NewCellWithWidth(0, style, 0))
	}
}

// clearWideCharAt clears the wide character that includes position (x, y),
// whether (x, y) is its start or its continuation.
func (b *Buffer) clearWideCharAt(x, y int) {
	cell := b.Cell(x, y)

	if cell.IsContinuation() {
		if x > 0 {
			b.SetCell(x-1, y, defaultCell())
		}
		b.SetCell(x, y, defaultCell())
	} else if cell.Width == 2 {
		b.SetCell(x, y, defaultCell())
		if x+1 < b.width {
			b.SetCell(x+1, y, defaultCell())
		}
	}
}

// SetString writes a string starting at position (x, y) with the given
// style. Returns the total display width consumed. Stops at the buffer
// edge without wrapping.
func (b *Buffer) SetString(x, y int, s string, style Style) int {
	if y < 0 || y >= b.height {
		return 0
	}

	total := 0
	curX := x

	for _, r := range s {
		if curX >= b.width {
			break
		}

		width := runewidth.RuneWidth(r)
		if width < 1 {
			width = 1
		}
		if curX < 0 {
			curX += width
			continue
		}

		// A wide char that doesn't fit ends the string early.
		if width == 2 && curX+1 >= b.width {
			break
		}

		b.SetRune(curX, y, r, style)
		curX += width
		total += width
	}

	return total
}

// Clear resets every cell to a space in the terminal's default colors.
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = defaultCell()
	}
}

// Flush serializes the buffer to w as one frame: a full-screen clear, an
// explicit reset to the default foreground and background, then a
// row-major scan that emits a color escape only when the color differs
// from the last emitted one. After a successful write the buffer resets
// to default cells.
func (b *Buffer) Flush(w io.Writer) error {
	if b.esc == nil {
		// A frame is roughly one byte per cell plus escapes.
		b.esc = newEscBuilder(b.width*b.height*2 + 256)
	}
	esc := b.esc
	esc.Reset()

	esc.ClearScreen()

	// Always start from the default colors so the frame's starting state
	// is deterministic regardless of the first cell.
	fg, bg := ColorDefault, ColorDefault
	esc.SetForeground(fg)
	esc.SetBackground(bg)

	for y := 0; y < b.height; y++ {
		esc.MoveTo(0, y)
		for x := 0; x < b.width; x++ {
			cell := b.cells[y*b.width+x]

			// The second column of a wide character emits nothing; the
			// terminal already advanced past it.
			if cell.IsContinuation() {
				continue
			}

			if cell.Style.Fg != fg {
				fg = cell.Style.Fg
				esc.SetForeground(fg)
			}
			if cell.Style.Bg != bg {
				bg = cell.Style.Bg
				esc.SetBackground(bg)
			}

			if cell.Rune == 0 {
				esc.WriteRune(' ')
			} else {
				esc.WriteRune(cell.Rune)
			}
		}
	}

	if _, err := w.Write(esc.Bytes()); err != nil {
		return fmt.Errorf("tile: flush frame: %w", err)
	}

	b.Clear()
	return nil
}

// String renders the buffer to a string for debugging and tests.
// Each row is separated by a newline; continuation cells are skipped.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			cell := b.cells[y*b.width+x]
			if cell.IsContinuation() {
				continue
			}
			if cell.Rune == 0 {
				sb.WriteRune(' ')
			} else {
				sb.WriteRune(cell.Rune)
			}
		}
		if y < b.height-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

// StringTrimmed returns the buffer content with trailing spaces removed
// from each line.
func (b *Buffer) StringTrimmed() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		var line strings.Builder
		for x := 0; x < b.width; x++ {
			cell := b.cells[y*b.width+x]
			if cell.IsContinuation() {
				continue
			}
			if cell.Rune == 0 {
				line.WriteRune(' ')
			} else {
				line.WriteRune(cell.Rune)
			}
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		if y < b.height-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}
