package tile

// Style combines a foreground and background color.
// Zero value is the terminal's default styling.
type Style struct {
	Fg Color
	Bg Color
}

// NewStyle returns a Style with default colors.
func NewStyle() Style {
	return Style{}
}

// Foreground returns a new Style with the given foreground color.
func (s Style) Foreground(c Color) Style {
	s.Fg = c
	return s
}

// Background returns a new Style with the given background color.
func (s Style) Background(c Color) Style {
	s.Bg = c
	return s
}

// Equal returns true if both styles are identical.
func (s Style) Equal(other Style) bool {
	return s.Fg == other.Fg && s.Bg == other.Bg
}
