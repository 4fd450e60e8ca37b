package tile

import "testing"

func TestEscBuilder_ColorSequences(t *testing.T) {
	type tc struct {
		color  Color
		wantFg string
		wantBg string
	}

	tests := map[string]tc{
		"default": {color: ColorDefault, wantFg: "\x1b[39m", wantBg: "\x1b[49m"},
		"black":   {color: Black, wantFg: "\x1b[30m", wantBg: "\x1b[40m"},
		"green":   {color: Green, wantFg: "\x1b[32m", wantBg: "\x1b[42m"},
		"cyan":    {color: Cyan, wantFg: "\x1b[36m", wantBg: "\x1b[46m"},
		"white":   {color: White, wantFg: "\x1b[37m", wantBg: "\x1b[47m"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := newEscBuilder(16)
			e.SetForeground(tt.color)
			if got := string(e.Bytes()); got != tt.wantFg {
				t.Errorf("foreground = %q, want %q", got, tt.wantFg)
			}

			e.Reset()
			e.SetBackground(tt.color)
			if got := string(e.Bytes()); got != tt.wantBg {
				t.Errorf("background = %q, want %q", got, tt.wantBg)
			}
		})
	}
}

func TestEscBuilder_MoveTo(t *testing.T) {
	type tc struct {
		x, y int
		want string
	}

	tests := map[string]tc{
		"origin":    {x: 0, y: 0, want: "\x1b[1;1H"},
		"offset":    {x: 3, y: 5, want: "\x1b[6;4H"},
		"two digit": {x: 42, y: 10, want: "\x1b[11;43H"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := newEscBuilder(16)
			e.MoveTo(tt.x, tt.y)
			if got := string(e.Bytes()); got != tt.want {
				t.Errorf("MoveTo(%d,%d) = %q, want %q", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestEscBuilder_Cursor(t *testing.T) {
	e := newEscBuilder(16)
	e.HideCursor()
	if got := string(e.Bytes()); got != "\x1b[?25l" {
		t.Errorf("hide cursor = %q", got)
	}

	e.Reset()
	e.ShowCursor()
	if got := string(e.Bytes()); got != "\x1b[?25h" {
		t.Errorf("show cursor = %q", got)
	}
}

func TestEscBuilder_ClearScreen(t *testing.T) {
	e := newEscBuilder(16)
	e.ClearScreen()
	if got := string(e.Bytes()); got != "\x1b[2J" {
		t.Errorf("clear screen = %q", got)
	}
}
