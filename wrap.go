package tile

// hardWrapper splits a rune sequence into fixed-width lines, consumed
// lazily. A '\n' found within the current width window terminates the line
// and is consumed without being emitted; otherwise the line is exactly
// width runes (or the remainder) and no boundary rune is skipped.
//
// Word boundaries are intentionally ignored: a word may be split
// mid-token. The wrapper is forward-only; restarting means constructing a
// new one over the same source.
type hardWrapper struct {
	text  []rune
	width int
}

func newHardWrapper(text []rune, width int) *hardWrapper {
	if width < 1 {
		width = 1
	}
	return &hardWrapper{text: text, width: width}
}

// next returns the next wrapped line, or false when the sequence is
// exhausted. The returned slice aliases the source.
func (w *hardWrapper) next() ([]rune, bool) {
	if len(w.text) == 0 {
		return nil, false
	}

	foundBreak := false
	lineEnd := len(w.text)
	for i, r := range w.text {
		if r == '\n' {
			foundBreak = true
			lineEnd = i
			break
		}
	}

	// The break only terminates the line when it falls inside the width
	// window; otherwise wrapping is purely positional.
	end := min(w.width, lineEnd)
	line := w.text[:end]

	skip := end
	if foundBreak && lineEnd <= w.width {
		skip++
	}
	w.text = w.text[skip:]

	return line, true
}

// lineCount returns the number of lines text wraps to at the given width.
func lineCount(text []rune, width int) int {
	w := newHardWrapper(text, width)
	n := 0
	for _, ok := w.next(); ok; _, ok = w.next() {
		n++
	}
	return n
}
