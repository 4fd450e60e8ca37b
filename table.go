package tile

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// Table renders a grid of strings inside a bordered region. Columns are
// sized to the widest cell in each column position and separated by a
// single gap column; cells narrower than their column are not padded.
type Table struct {
	rows       [][]string
	vertical   VerticalAlignment
	horizontal HorizontalAlignment
	area       Region
	columns    []int // per-column maximum display width
	selected   int   // -1 when nothing is selected
}

func newTable(rows [][]string, vertical VerticalAlignment, horizontal HorizontalAlignment, area Region) *Table {
	maxRowLen := 0
	for _, row := range rows {
		if len(row) > maxRowLen {
			maxRowLen = len(row)
		}
	}

	columns := make([]int, maxRowLen)
	for _, row := range rows {
		for i, item := range row {
			if w := runewidth.StringWidth(item); w > columns[i] {
				columns[i] = w
			}
		}
	}

	if len(rows) > area.height-2 {
		panic(fmt.Sprintf("tile: %d rows do not fit a region of inner height %d", len(rows), area.height-2))
	}
	if w := tableContentWidth(columns); w >= area.width-2 {
		panic(fmt.Sprintf("tile: table of width %d does not fit a region of inner width %d", w, area.width-2))
	}

	return &Table{
		rows:       rows,
		vertical:   vertical,
		horizontal: horizontal,
		area:       area,
		columns:    columns,
		selected:   -1,
	}
}

// tableContentWidth is the total width of a table block: the column widths
// plus one gap column between adjacent columns.
func tableContentWidth(columns []int) int {
	total := 0
	for _, w := range columns {
		total += w
	}
	if len(columns) > 1 {
		total += len(columns) - 1
	}
	return total
}

// SetSelected marks the row at the given index as selected.
// Panics if the index is out of range; use ClearSelected to remove the
// highlight.
func (t *Table) SetSelected(index int) {
	if index < 0 || index >= len(t.rows) {
		panic(fmt.Sprintf("tile: selected index %d out of range for %d rows", index, len(t.rows)))
	}
	t.selected = index
}

// ClearSelected removes the selection highlight.
func (t *Table) ClearSelected() {
	t.selected = -1
}

// Render draws the region's frame, the selection highlight, then the rows
// column by column.
func (t *Table) Render(buf *Buffer) {
	t.area.Render(buf)

	// Fast path, there is nothing to render.
	if len(t.rows) == 0 {
		return
	}

	var yOffset int
	switch t.vertical {
	case AlignTop:
		yOffset = 1 // 1 for the border
	case AlignBottom:
		yOffset = t.area.height - len(t.rows) - 1
	case AlignMiddle:
		yOffset = (t.area.height - len(t.rows)) / 2
	}

	total := tableContentWidth(t.columns)
	var xOffset int
	switch t.horizontal {
	case AlignLeft:
		xOffset = 1 // 1 for the border
	case AlignRight:
		xOffset = t.area.width - total - 1
	case AlignCenter:
		xOffset = (t.area.width - total) / 2
	}

	if t.selected >= 0 {
		for i := 1; i < t.area.width-1; i++ {
			gx, gy := t.area.toGlobal(i, yOffset+t.selected)
			buf.SetRune(gx, gy, ' ', highlightStyle())
		}
	}

	for rowIndex, row := range t.rows {
		style := NewStyle()
		if rowIndex == t.selected {
			style = highlightStyle()
		}

		colStart := 0
		for colIndex, item := range row {
			// colIndex also counts the gap column before each column
			// after the first.
			x := xOffset + colStart + colIndex
			gx, gy := t.area.toGlobal(x, yOffset+rowIndex)
			buf.SetString(gx, gy, item, style)
			colStart += t.columns[colIndex]
		}
	}
}

// Width returns the width of the widget's region.
func (t *Table) Width() int {
	return t.area.width
}

// Height returns the height of the widget's region.
func (t *Table) Height() int {
	return t.area.height
}

// SetTitle sets the text drawn into the top border.
func (t *Table) SetTitle(title string) {
	t.area.SetTitle(title)
}

// SetBorderColor sets the color of the border glyphs.
func (t *Table) SetBorderColor(color Color) {
	t.area.SetBorderColor(color)
}
