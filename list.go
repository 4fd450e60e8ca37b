package tile

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// ItemList renders an ordered list of strings inside a bordered region,
// with an optional highlighted selection row.
//
// The whole block shares one vertical and one horizontal offset: items are
// left-aligned relative to the block even when the block itself is
// centered or right-aligned.
type ItemList struct {
	items      []string
	vertical   VerticalAlignment
	horizontal HorizontalAlignment
	area       Region
	maxWidth   int // display width of the widest item
	selected   int // -1 when nothing is selected
}

func newItemList(items []string, vertical VerticalAlignment, horizontal HorizontalAlignment, area Region) *ItemList {
	if len(items) > area.height-2 {
		panic(fmt.Sprintf("tile: %d items do not fit a region of inner height %d", len(items), area.height-2))
	}

	maxWidth := 0
	for _, item := range items {
		if w := runewidth.StringWidth(item); w > maxWidth {
			maxWidth = w
		}
	}
	if maxWidth >= area.width-2 {
		panic(fmt.Sprintf("tile: item of width %d does not fit a region of inner width %d", maxWidth, area.width-2))
	}

	return &ItemList{
		items:      items,
		vertical:   vertical,
		horizontal: horizontal,
		area:       area,
		maxWidth:   maxWidth,
		selected:   -1,
	}
}

// SetSelected marks the item at the given index as selected.
// Panics if the index is out of range; use ClearSelected to remove the
// highlight.
func (l *ItemList) SetSelected(index int) {
	if index < 0 || index >= len(l.items) {
		panic(fmt.Sprintf("tile: selected index %d out of range for %d items", index, len(l.items)))
	}
	l.selected = index
}

// ClearSelected removes the selection highlight.
func (l *ItemList) ClearSelected() {
	l.selected = -1
}

// Render draws the region's frame, the selection highlight, then the
// items.
func (l *ItemList) Render(buf *Buffer) {
	l.area.Render(buf)

	// Fast path, there is nothing to render.
	if len(l.items) == 0 {
		return
	}

	var yOffset int
	switch l.vertical {
	case AlignTop:
		yOffset = 1 // 1 for the border
	case AlignBottom:
		yOffset = l.area.height - len(l.items) - 1
	case AlignMiddle:
		yOffset = (l.area.height - len(l.items)) / 2
	}

	var xOffset int
	switch l.horizontal {
	case AlignLeft:
		xOffset = 1 // 1 for the border
	case AlignRight:
		xOffset = l.area.width - l.maxWidth - 1
	case AlignCenter:
		xOffset = (l.area.width - l.maxWidth) / 2
	}

	// The highlight spans the full interior width regardless of the
	// selected item's own length, and is painted before the item text.
	if l.selected >= 0 {
		for i := 1; i < l.area.width-1; i++ {
			gx, gy := l.area.toGlobal(i, yOffset+l.selected)
			buf.SetRune(gx, gy, ' ', highlightStyle())
		}
	}

	for y, item := range l.items {
		style := NewStyle()
		if y == l.selected {
			style = highlightStyle()
		}
		gx, gy := l.area.toGlobal(xOffset, yOffset+y)
		buf.SetString(gx, gy, item, style)
	}
}

// Width returns the width of the widget's region.
func (l *ItemList) Width() int {
	return l.area.width
}

// Height returns the height of the widget's region.
func (l *ItemList) Height() int {
	return l.area.height
}

// SetTitle sets the text drawn into the top border.
func (l *ItemList) SetTitle(title string) {
	l.area.SetTitle(title)
}

// SetBorderColor sets the color of the border glyphs.
func (l *ItemList) SetBorderColor(color Color) {
	l.area.SetBorderColor(color)
}
