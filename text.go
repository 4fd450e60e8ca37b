package tile

import "fmt"

// Text renders a character sequence inside a bordered region, hard-wrapped
// to the interior width. Wrapping absorbs overflow in the height
// direction: lines past the interior height are dropped, never an error.
type Text struct {
	text       []rune
	vertical   VerticalAlignment
	horizontal HorizontalAlignment
	area       Region
	lines      int // wrapped line count at the current interior width
}

func newText(text string, vertical VerticalAlignment, horizontal HorizontalAlignment, area Region) *Text {
	if area.width <= 2 {
		panic(fmt.Sprintf("tile: text region must be wider than 2, got %d", area.width))
	}

	runes := []rune(text)
	return &Text{
		text:       runes,
		vertical:   vertical,
		horizontal: horizontal,
		area:       area,
		lines:      lineCount(runes, area.width-2),
	}
}

// SetText replaces the content and recomputes the wrapped line count so
// subsequent renders stay consistent. An empty string clears the content.
func (t *Text) SetText(text string) {
	t.text = []rune(text)
	t.lines = lineCount(t.text, t.area.width-2)
}

// Render draws the region's frame, then the wrapped lines. Lines past the
// interior height are silently dropped; there is no scrolling.
func (t *Text) Render(buf *Buffer) {
	t.area.Render(buf)

	maxLines := t.area.height - 2
	if maxLines < 0 {
		maxLines = 0
	}
	visible := t.lines
	if visible > maxLines {
		visible = maxLines
	}

	var y int
	switch t.vertical {
	case AlignTop:
		y = 1 // 1 for the border
	case AlignBottom:
		y = t.area.height - 1 - visible
	case AlignMiddle:
		y = (t.area.height - visible) / 2
	}
	if y < 1 {
		y = 1
	}

	wrapper := newHardWrapper(t.text, t.area.width-2)
	for lineIndex := 0; lineIndex < visible; lineIndex++ {
		line, ok := wrapper.next()
		if !ok {
			break
		}

		var x int
		switch t.horizontal {
		case AlignLeft:
			x = 1 // 1 for the border
		case AlignRight:
			x = t.area.width - len(line) - 1
		case AlignCenter:
			x = (t.area.width - len(line)) / 2
		}
		// A line wider than the interior would push the start past the
		// left border; clamp instead of underflowing.
		if x < 1 {
			x = 1
		}

		for i, c := range line {
			gx, gy := t.area.toGlobal(x+i, y+lineIndex)
			buf.SetRune(gx, gy, c, NewStyle())
		}
	}
}

// Width returns the width of the widget's region.
func (t *Text) Width() int {
	return t.area.width
}

// Height returns the height of the widget's region.
func (t *Text) Height() int {
	return t.area.height
}

// SetTitle sets the text drawn into the top border.
func (t *Text) SetTitle(title string) {
	t.area.SetTitle(title)
}

// SetBorderColor sets the color of the border glyphs.
func (t *Text) SetBorderColor(color Color) {
	t.area.SetBorderColor(color)
}
