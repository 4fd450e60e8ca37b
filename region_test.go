package tile

import (
	"testing"
)

func TestRegion_SplitHorizontallyAt(t *testing.T) {
	type tc struct {
		width, height int
		fraction      float64
		wantLeft      int
	}

	tests := map[string]tc{
		"half":           {width: 20, height: 5, fraction: 0.5, wantLeft: 10},
		"odd half":       {width: 21, height: 5, fraction: 0.5, wantLeft: 10},
		"seventy":        {width: 10, height: 3, fraction: 0.7, wantLeft: 7},
		"small fraction": {width: 100, height: 40, fraction: 0.25, wantLeft: 25},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r := NewScreenRegion(tt.width, tt.height)
			left, right := r.SplitHorizontallyAt(tt.fraction)

			if left.width != tt.wantLeft {
				t.Errorf("left.width = %d, want %d", left.width, tt.wantLeft)
			}
			if left.width+right.width != tt.width {
				t.Errorf("left.width + right.width = %d, want %d", left.width+right.width, tt.width)
			}
			if left.height != tt.height || right.height != tt.height {
				t.Errorf("heights = %d, %d, want both %d", left.height, right.height, tt.height)
			}
			if left.x != 0 || right.x != left.width {
				t.Errorf("x offsets = %d, %d, want 0, %d", left.x, right.x, left.width)
			}
		})
	}
}

func TestRegion_SplitVerticallyAt(t *testing.T) {
	type tc struct {
		width, height int
		fraction      float64
		wantTop       int
	}

	tests := map[string]tc{
		"half":      {width: 20, height: 10, fraction: 0.5, wantTop: 5},
		"odd half":  {width: 20, height: 11, fraction: 0.5, wantTop: 5},
		"seventy":   {width: 10, height: 10, fraction: 0.7, wantTop: 7},
		"one third": {width: 5, height: 9, fraction: 0.34, wantTop: 3},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r := NewScreenRegion(tt.width, tt.height)
			top, bottom := r.SplitVerticallyAt(tt.fraction)

			if top.height != tt.wantTop {
				t.Errorf("top.height = %d, want %d", top.height, tt.wantTop)
			}
			if top.height+bottom.height != tt.height {
				t.Errorf("top.height + bottom.height = %d, want %d", top.height+bottom.height, tt.height)
			}
			if top.width != tt.width || bottom.width != tt.width {
				t.Errorf("widths = %d, %d, want both %d", top.width, bottom.width, tt.width)
			}
			if top.y != 0 || bottom.y != top.height {
				t.Errorf("y offsets = %d, %d, want 0, %d", top.y, bottom.y, top.height)
			}
		})
	}
}

func TestRegion_SplitPanicsOnBadFraction(t *testing.T) {
	for name, fraction := range map[string]float64{
		"zero":     0,
		"one":      1,
		"negative": -0.3,
		"above":    1.5,
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("split at %v did not panic", fraction)
				}
			}()
			r := NewScreenRegion(10, 10)
			r.SplitHorizontallyAt(fraction)
		})
	}
}

func TestRegion_SplitPropagatesBorderColorNotTitle(t *testing.T) {
	r := NewScreenRegion(20, 10)
	r.SetBorderColor(Green)
	r.SetTitle("parent")

	left, right := r.SplitHorizontally()

	if left.borderColor != Green || right.borderColor != Green {
		t.Errorf("border colors = %v, %v, want both green", left.borderColor, right.borderColor)
	}
	if left.title != "" || right.title != "" {
		t.Errorf("titles = %q, %q, want both empty", left.title, right.title)
	}
}

func TestRegion_RenderBorder(t *testing.T) {
	buf := NewBuffer(6, 4)
	r := NewScreenRegion(6, 4)
	r.Render(buf)

	want := "" +
		"┌────┐\n" +
		"│    │\n" +
		"│    │\n" +
		"└────┘"
	if got := buf.String(); got != want {
		t.Errorf("border frame:\n%s\nwant:\n%s", got, want)
	}
}

func TestRegion_RenderBorderColor(t *testing.T) {
	buf := NewBuffer(4, 3)
	r := NewScreenRegion(4, 3)
	r.SetBorderColor(Cyan)
	r.Render(buf)

	if got := buf.Cell(0, 0).Style.Fg; got != Cyan {
		t.Errorf("corner foreground = %v, want cyan", got)
	}
	if got := buf.Cell(1, 1).Style.Fg; got != ColorDefault {
		t.Errorf("interior foreground = %v, want default", got)
	}
}

func TestRegion_RenderTitle(t *testing.T) {
	buf := NewBuffer(8, 3)
	r := NewScreenRegion(8, 3)
	r.SetTitle("AB")
	r.Render(buf)

	want := "" +
		"┌─AB──┐\n" +
		"│     │\n" +
		"└─────┘"
	if got := buf.String(); got != want {
		t.Errorf("titled frame:\n%s\nwant:\n%s", got, want)
	}
}

func TestRegion_LongTitleOverwritesCorner(t *testing.T) {
	// A title longer than width-2 runs over the right border. That is
	// accepted behavior, not guarded.
	buf := NewBuffer(10, 3)
	r := NewScreenRegion(6, 3)
	r.SetTitle("ABCDE")
	r.Render(buf)

	wantTop := "┌─ABCDE   "
	gotTop := string([]rune(buf.String())[:10])
	if gotTop != wantTop {
		t.Errorf("top row = %q, want %q", gotTop, wantTop)
	}
}

func TestRegion_RenderOffsetInLargerBuffer(t *testing.T) {
	buf := NewBuffer(10, 6)
	screen := NewScreenRegion(10, 6)
	_, right := screen.SplitHorizontally()
	right.Render(buf)

	if got := buf.Cell(5, 0).Rune; got != '┌' {
		t.Errorf("cell (5,0) = %q, want top-left corner", got)
	}
	if got := buf.Cell(9, 5).Rune; got != '┘' {
		t.Errorf("cell (9,5) = %q, want bottom-right corner", got)
	}
	if got := buf.Cell(0, 0).Rune; got != ' ' {
		t.Errorf("cell (0,0) = %q, want untouched space", got)
	}
}

func TestNewScreenRegion_PanicsOnDegenerateSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("zero-width screen region did not panic")
		}
	}()
	NewScreenRegion(0, 10)
}
