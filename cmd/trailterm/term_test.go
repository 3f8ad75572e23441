package main

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/gg"
	trail "github.com/gogpu/ggtrail"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init() error: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func TestBlitHalfBlocks(t *testing.T) {
	screen := newScreen(t, 2, 1)

	// One cell column per 2 pixels, two rows of 2 pixels each.
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.Set(x, y, red)
			img.Set(x, y+2, blue)
		}
	}

	blit(screen, img, 2, 1, 2)

	mainc, _, style, _ := screen.GetContent(0, 0)
	if mainc != halfBlock {
		t.Fatalf("cell (0,0) = %q, want half block", mainc)
	}
	fg, bg, _ := style.Decompose()
	if fg != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("foreground = %v, want red", fg)
	}
	if bg != tcell.NewRGBColor(0, 0, 255) {
		t.Errorf("background = %v, want blue", bg)
	}

	if mainc, _, _, _ := screen.GetContent(1, 0); mainc != ' ' {
		t.Errorf("transparent cell = %q, want blank", mainc)
	}
}

func TestPixelColor(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 100, G: 50, B: 0, A: 200})
	img.Set(1, 0, color.RGBA{R: 10, A: 10})

	tests := []struct {
		name string
		x, y int
		want tcell.Color
	}{
		{"premultiplied", 0, 0, tcell.NewRGBColor(127, 63, 0)},
		{"mostly transparent", 1, 0, tcell.ColorDefault},
		{"out of bounds", 5, 5, tcell.ColorDefault},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pixelColor(img, tt.x, tt.y); got != tt.want {
				t.Errorf("pixelColor(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestCellToCanvas(t *testing.T) {
	x, y := cellToCanvas(3, 2, 4)
	if x != 14 || y != 20 {
		t.Errorf("cellToCanvas(3, 2, 4) = (%v, %v), want (14, 20)", x, y)
	}
}

func TestMouseDrawsTrail(t *testing.T) {
	screen := newScreen(t, 20, 10)
	clock := trail.NewManualClock(time.Unix(0, 0))

	tm, err := newTerm(screen, gg.Hex("#ffffff"), 8, 60,
		trail.WithClock(clock),
		trail.WithRand(trail.NewRand(1)),
		trail.WithSpawnChance(0),
	)
	if err != nil {
		t.Fatalf("newTerm() error: %v", err)
	}
	defer tm.close()

	// Vertical motion widens the ribbon along x, through the sampled columns.
	for y := 1; y < 9; y++ {
		if quit := tm.handle(tcell.NewEventMouse(10, y, tcell.ButtonNone, tcell.ModNone)); quit {
			t.Fatal("mouse event requested exit")
		}
		clock.Advance(5 * time.Millisecond)
	}
	tm.frame()

	painted := 0
	for cy := 0; cy < 10; cy++ {
		for cx := 0; cx < 20; cx++ {
			if mainc, _, _, _ := screen.GetContent(cx, cy); mainc == halfBlock {
				painted++
			}
		}
	}
	if painted == 0 {
		t.Error("no cells painted after mouse movement")
	}
}

func TestQuitKeys(t *testing.T) {
	screen := newScreen(t, 4, 4)
	tm, err := newTerm(screen, gg.Black, 1, 60)
	if err != nil {
		t.Fatalf("newTerm() error: %v", err)
	}
	defer tm.close()

	tests := []struct {
		name string
		ev   tcell.Event
		want bool
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), true},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), true},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), false},
	}
	for _, tt := range tests {
		if got := tm.handle(tt.ev); got != tt.want {
			t.Errorf("handle(%s) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestToneFor(t *testing.T) {
	seen := map[float64]bool{}
	for _, k := range []trail.ShapeKind{trail.ShapeCircle, trail.ShapeSquare, trail.ShapeTriangle} {
		f := toneFor(k)
		if f <= 0 {
			t.Errorf("toneFor(%v) = %v, want positive", k, f)
		}
		seen[f] = true
	}
	if len(seen) != 3 {
		t.Errorf("tones are not distinct: %v", seen)
	}
}
