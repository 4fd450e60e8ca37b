package tile

import "fmt"

// Region is an axis-aligned rectangle in screen coordinates: the unit of
// layout and the owner of a border and optional title.
//
// A Region has exactly one owner. Splitting it or turning it into a widget
// consumes it conceptually: the caller must not render or re-split the
// original afterwards. Go has no move semantics, so this is a documented
// contract rather than a compiler-enforced one; splits take the region by
// value and return fresh children, so a stale parent never aliases a
// child's storage.
type Region struct {
	x      int
	y      int
	width  int
	height int

	title       string
	borderColor Color
}

// NewScreenRegion returns a region spanning a whole screen of the given
// dimensions, anchored at the origin.
func NewScreenRegion(width, height int) Region {
	if width < 1 || height < 1 {
		panic(fmt.Sprintf("tile: screen region must be at least 1x1, got %dx%d", width, height))
	}
	return Region{width: width, height: height}
}

// SplitHorizontally splits the region into equal left and right halves.
//
//	+-----++-----+
//	|     ||     |
//	|     ||     |
//	+-----++-----+
func (r Region) SplitHorizontally() (left, right Region) {
	return r.SplitHorizontallyAt(0.5)
}

// SplitHorizontallyAt splits the region into a left part holding the given
// fraction of the width and a right part holding the remainder. Both
// children inherit the border color; the title does not propagate.
// Panics if fraction is outside (0, 1).
func (r Region) SplitHorizontallyAt(fraction float64) (left, right Region) {
	if fraction <= 0 || fraction >= 1 {
		panic(fmt.Sprintf("tile: split fraction must be in (0, 1), got %v", fraction))
	}

	leftWidth := int(float64(r.width) * fraction)

	left = Region{
		x:           r.x,
		y:           r.y,
		width:       leftWidth,
		height:      r.height,
		borderColor: r.borderColor,
	}
	right = Region{
		x:           r.x + leftWidth,
		y:           r.y,
		width:       r.width - leftWidth,
		height:      r.height,
		borderColor: r.borderColor,
	}
	return left, right
}

// SplitVertically splits the region into equal top and bottom halves.
//
//	+------------+
//	|            |
//	+------------+
//	+------------+
//	|            |
//	+------------+
func (r Region) SplitVertically() (top, bottom Region) {
	return r.SplitVerticallyAt(0.5)
}

// SplitVerticallyAt splits the region into a top part holding the given
// fraction of the height and a bottom part holding the remainder.
// Panics if fraction is outside (0, 1).
func (r Region) SplitVerticallyAt(fraction float64) (top, bottom Region) {
	if fraction <= 0 || fraction >= 1 {
		panic(fmt.Sprintf("tile: split fraction must be in (0, 1), got %v", fraction))
	}

	topHeight := int(float64(r.height) * fraction)

	top = Region{
		x:           r.x,
		y:           r.y,
		width:       r.width,
		height:      topHeight,
		borderColor: r.borderColor,
	}
	bottom = Region{
		x:           r.x,
		y:           r.y + topHeight,
		width:       r.width,
		height:      r.height - topHeight,
		borderColor: r.borderColor,
	}
	return top, bottom
}

// toGlobal translates a region-local coordinate into the buffer's
// coordinate space.
func (r *Region) toGlobal(x, y int) (gx, gy int) {
	return r.x + x, r.y + y
}

// Render draws a single-cell-thick border on the outermost ring of the
// region, leaving interior cells untouched. If a title is set it
// overwrites cells starting at offset (2, 0) along the top border, left
// to right, un-clamped: a title longer than width-2 runs over the right
// corner. That is accepted behavior, not guarded.
func (r *Region) Render(buf *Buffer) {
	style := NewStyle().Foreground(r.borderColor)

	top := 0
	bottom := r.height - 1
	left := 0
	right := r.width - 1

	gx, gy := r.toGlobal(left, top)
	buf.SetRune(gx, gy, '┌', style)
	gx, gy = r.toGlobal(right, top)
	buf.SetRune(gx, gy, '┐', style)
	gx, gy = r.toGlobal(left, bottom)
	buf.SetRune(gx, gy, '└', style)
	gx, gy = r.toGlobal(right, bottom)
	buf.SetRune(gx, gy, '┘', style)

	for x := left + 1; x < right; x++ {
		gx, gy = r.toGlobal(x, top)
		buf.SetRune(gx, gy, '─', style)
		gx, gy = r.toGlobal(x, bottom)
		buf.SetRune(gx, gy, '─', style)
	}

	for y := top + 1; y < bottom; y++ {
		gx, gy = r.toGlobal(left, y)
		buf.SetRune(gx, gy, '│', style)
		gx, gy = r.toGlobal(right, y)
		buf.SetRune(gx, gy, '│', style)
	}

	if r.title != "" {
		gx, gy = r.toGlobal(2, 0)
		buf.SetString(gx, gy, r.title, style)
	}
}

// Width returns the region's width.
func (r *Region) Width() int {
	return r.width
}

// Height returns the region's height.
func (r *Region) Height() int {
	return r.height
}

// SetTitle sets the text drawn into the top border.
func (r *Region) SetTitle(title string) {
	r.title = title
}

// SetBorderColor sets the color of the border glyphs.
func (r *Region) SetBorderColor(color Color) {
	r.borderColor = color
}

// Text consumes the region and attaches text content to it.
func (r Region) Text(text string, vertical VerticalAlignment, horizontal HorizontalAlignment) *Text {
	return newText(text, vertical, horizontal, r)
}

// ItemList consumes the region and attaches a list of items to it.
// Panics if the items do not fit the region's interior.
func (r Region) ItemList(items []string, vertical VerticalAlignment, horizontal HorizontalAlignment) *ItemList {
	return newItemList(items, vertical, horizontal, r)
}

// Table consumes the region and attaches a grid of items to it.
// Panics if the rows do not fit the region's interior.
func (r Region) Table(rows [][]string, vertical VerticalAlignment, horizontal HorizontalAlignment) *Table {
	return newTable(rows, vertical, horizontal, r)
}
