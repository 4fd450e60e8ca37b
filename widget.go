package tile

// VerticalAlignment positions a widget's content block along the region's
// vertical axis.
type VerticalAlignment int

const (
	AlignTop VerticalAlignment = iota
	AlignMiddle
	AlignBottom
)

// HorizontalAlignment positions a widget's content block along the
// region's horizontal axis.
type HorizontalAlignment int

const (
	AlignLeft HorizontalAlignment = iota
	AlignCenter
	AlignRight
)

// Widget is anything that can project itself into the shared buffer.
// The set is closed: Region (a bare frame), Text, ItemList and Table.
//
// Render order is load-bearing: later renders overwrite earlier ones in
// overlapping cells, so containers are drawn before their interiors.
type Widget interface {
	// Render draws the widget into the buffer.
	Render(buf *Buffer)

	// Width returns the width of the widget's region.
	Width() int

	// Height returns the height of the widget's region.
	Height() int

	// SetTitle sets the text drawn into the top border. An empty string
	// removes the title.
	SetTitle(title string)

	// SetBorderColor sets the color of the border glyphs.
	SetBorderColor(color Color)
}

// highlightStyle is the fixed pair used for selected rows.
func highlightStyle() Style {
	return NewStyle().Foreground(Black).Background(Cyan)
}
