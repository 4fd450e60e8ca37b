package tile

import "github.com/mattn/go-runewidth"

// Cell represents a single character cell in the buffer.
// Wide characters (CJK, emoji) occupy two cells; the first cell holds the
// rune, the second is marked as a continuation.
type Cell struct {
	Rune  rune  // The character (0 for continuation cells)
	Style Style // Foreground and background colors
	Width uint8 // Display width (1 or 2; 0 for continuation)
}

// NewCell creates a Cell with automatic width detection.
func NewCell(r rune, style Style) Cell {
	w := runewidth.RuneWidth(r)
	if w < 1 {
		// Zero-width and control runes still need a cell to live in.
		w = 1
	}
	return Cell{
		Rune:  r,
		Style: style,
		Width: uint8(w),
	}
}

// NewCellWithWidth creates a Cell with an explicit width.
// Use width 0 for continuation cells.
func NewCellWithWidth(r rune, style Style, width uint8) Cell {
	return Cell{
		Rune:  r,
		Style: style,
		Width: width,
	}
}

// IsContinuation returns true if this cell is the second column of a wide
// character.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// Equal returns true if both cells are identical.
func (c Cell) Equal(other Cell) bool {
	return c.Rune == other.Rune && c.Style.Equal(other.Style) && c.Width == other.Width
}

// defaultCell is what every buffer position holds between frames:
// a space in the terminal's default colors.
func defaultCell() Cell {
	return Cell{Rune: ' ', Width: 1}
}
