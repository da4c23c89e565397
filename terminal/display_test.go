package terminal

import (
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tilt-snake/core"
	"github.com/lixenwraith/tilt-snake/engine"
)

// The 80x24 simulation screen centers the 18x10 board box at (31, 7), so
// board pixel (x, y) lands on cells (32+2x, 8+y) and (33+2x, 8+y)
func newTestDisplay(t *testing.T) (*Display, tcell.SimulationScreen) {
	t.Helper()

	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	return NewDisplay(screen), screen
}

func cellBackground(t *testing.T, screen tcell.SimulationScreen, x, y int) tcell.Color {
	t.Helper()

	cells, w, _ := screen.GetContents()
	_, bg, _ := cells[y*w+x].Style.Decompose()
	return bg
}

func cellRune(t *testing.T, screen tcell.SimulationScreen, x, y int) rune {
	t.Helper()

	cells, w, _ := screen.GetContents()
	runes := cells[y*w+x].Runes
	if len(runes) == 0 {
		return 0
	}
	return runes[0]
}

func TestDisplayImplementsRenderer(t *testing.T) {
	var _ engine.Renderer = &Display{}
}

func TestDisplayRendersPixelsAsCellPairs(t *testing.T) {
	d, screen := newTestDisplay(t)

	d.Clear()
	d.SetPixel(0, 0, core.RGB{R: 255})
	d.SetPixel(7, 7, core.RGB{G: 150})
	d.Present()

	red := tcell.NewRGBColor(255, 0, 0)
	green := tcell.NewRGBColor(0, 150, 0)
	black := tcell.NewRGBColor(0, 0, 0)

	if got := cellBackground(t, screen, 32, 8); got != red {
		t.Errorf("Pixel (0,0) left cell: got %v, want red", got)
	}
	if got := cellBackground(t, screen, 33, 8); got != red {
		t.Errorf("Pixel (0,0) right cell: got %v, want red", got)
	}
	if got := cellBackground(t, screen, 46, 15); got != green {
		t.Errorf("Pixel (7,7) left cell: got %v, want green", got)
	}
	if got := cellBackground(t, screen, 47, 15); got != green {
		t.Errorf("Pixel (7,7) right cell: got %v, want green", got)
	}
	if got := cellBackground(t, screen, 38, 11); got != black {
		t.Errorf("Unset pixel (3,3): got %v, want black", got)
	}
}

func TestDisplayIgnoresOutOfRangePixels(t *testing.T) {
	d, screen := newTestDisplay(t)

	d.Clear()
	d.SetPixel(-1, 0, core.RGB{R: 255})
	d.SetPixel(8, 0, core.RGB{R: 255})
	d.SetPixel(0, 8, core.RGB{R: 255})
	d.SetPixel(0, -1, core.RGB{R: 255})
	d.Present()

	black := tcell.NewRGBColor(0, 0, 0)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if got := cellBackground(t, screen, 32+2*x, 8+y); got != black {
				t.Fatalf("Pixel (%d,%d) colored by out-of-range write: %v", x, y, got)
			}
		}
	}
}

func TestDisplayGameOverCross(t *testing.T) {
	d, screen := newTestDisplay(t)

	d.Clear()
	d.SetPixel(3, 3, core.RGB{G: 150}) // stale content must vanish
	d.DrawGameOver()

	cross := tcell.NewRGBColor(220, 20, 20)
	black := tcell.NewRGBColor(0, 0, 0)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := black
			if x == y || x == 7-y {
				want = cross
			}
			if got := cellBackground(t, screen, 32+2*x, 8+y); got != want {
				t.Errorf("Cell (%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestDisplayStatusAndNoticeLines(t *testing.T) {
	d, screen := newTestDisplay(t)

	d.SetStatus("SCORE 3")
	d.SetNotice("audio unavailable")
	d.Clear()
	d.Present()

	if got := cellRune(t, screen, 32, 17); got != 'S' {
		t.Errorf("Status line: got %q, want 'S'", got)
	}
	if got := cellRune(t, screen, 32, 18); got != 'a' {
		t.Errorf("Notice line: got %q, want 'a'", got)
	}
}

func TestDisplayTitleInBorder(t *testing.T) {
	d, screen := newTestDisplay(t)

	d.Clear()
	d.Present()

	if got := cellRune(t, screen, 35, 7); got != 'T' {
		t.Errorf("Title: got %q at border row, want 'T'", got)
	}
	if got := cellRune(t, screen, 31, 7); got != '┌' {
		t.Errorf("Corner: got %q, want box corner", got)
	}
}

func TestDisplayTiltAt(t *testing.T) {
	d, _ := newTestDisplay(t)

	cases := []struct {
		mx, my int
		wantX  float64
		wantY  float64
	}{
		{40, 12, 0, 0},   // board center
		{52, 12, 1, 0},   // full right deflection
		{28, 12, -1, 0},  // full left
		{40, 6, 0, -1},   // full up
		{40, 18, 0, 1},   // full down
		{46, 15, 0.5, 0.5},
	}

	for _, tc := range cases {
		gotX, gotY := d.TiltAt(tc.mx, tc.my)
		if math.Abs(gotX-tc.wantX) > 1e-9 || math.Abs(gotY-tc.wantY) > 1e-9 {
			t.Errorf("TiltAt(%d,%d): got (%v,%v), want (%v,%v)",
				tc.mx, tc.my, gotX, gotY, tc.wantX, tc.wantY)
		}
	}
}
