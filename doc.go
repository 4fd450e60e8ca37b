// Package tile is a minimal tiling terminal UI toolkit.
//
// The model is borrowed from tiling window managers: the whole screen is
// always covered, and the caller recursively splits it into regions. A
// Region becomes a widget (Text, ItemList, Table) by attaching content and
// alignment; each widget renders into a shared cell Buffer, and the buffer
// is flushed to the terminal once per frame.
//
// Rendering is synchronous and caller-ordered: later renders overwrite
// earlier ones in overlapping cells, which is how a container frame is
// drawn before the widgets that fill its interior.
//
// A typical frame:
//
//	term, err := tile.NewTerminal(os.Stdout, os.Stdin)
//	if err != nil { ... }
//	defer term.Close()
//
//	screen, err := tile.NewScreen(term)
//	if err != nil { ... }
//
//	left, right := screen.Region().SplitHorizontally()
//	a := left.Text("hello", tile.AlignMiddle, tile.AlignCenter)
//	b := right.Text("world", tile.AlignMiddle, tile.AlignCenter)
//	screen.Draw(a, b)
package tile
