package tile

// Color identifies one of the terminal's basic colors.
//
// The set is deliberately closed: every color maps to exactly one fixed
// foreground escape sequence and one background escape sequence. Adding a
// color means adding one constant here plus its entry in each table below;
// nothing else in the package changes.
type Color uint8

const (
	// ColorDefault is the terminal's own default color.
	ColorDefault Color = iota
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White

	numColors
)

// SGR sequences for the basic color row (30-37/39 foreground, 40-47/49
// background). Indexed by Color.
var (
	fgSequences = [numColors]string{
		ColorDefault: "\x1b[39m",
		Black:        "\x1b[30m",
		Red:          "\x1b[31m",
		Green:        "\x1b[32m",
		Yellow:       "\x1b[33m",
		Blue:         "\x1b[34m",
		Magenta:      "\x1b[35m",
		Cyan:         "\x1b[36m",
		White:        "\x1b[37m",
	}

	bgSequences = [numColors]string{
		ColorDefault: "\x1b[49m",
		Black:        "\x1b[40m",
		Red:          "\x1b[41m",
		Green:        "\x1b[42m",
		Yellow:       "\x1b[43m",
		Blue:         "\x1b[44m",
		Magenta:      "\x1b[45m",
		Cyan:         "\x1b[46m",
		White:        "\x1b[47m",
	}
)

// foreground returns the SGR sequence selecting c as the foreground color.
func (c Color) foreground() string {
	return fgSequences[c]
}

// background returns the SGR sequence selecting c as the background color.
func (c Color) background() string {
	return bgSequences[c]
}

// String returns the color's name for debugging.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case Black:
		return "black"
	case Red:
		return "red"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Blue:
		return "blue"
	case Magenta:
		return "magenta"
	case Cyan:
		return "cyan"
	case White:
		return "white"
	}
	return "unknown"
}
