package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/gg"
	trail "github.com/gogpu/ggtrail"
	"github.com/gogpu/ggtrail/surface"
	"github.com/gogpu/ggtrail/surface/raster"
)

// term draws a trail that follows the mouse inside a terminal.
type term struct {
	screen tcell.Screen
	fill   gg.RGBA
	scale  int
	fps    int
	opts   []trail.Option

	cols, rows int
	surface    *raster.Surface
	engine     *trail.Engine
}

func newTerm(screen tcell.Screen, fill gg.RGBA, scale, fps int, opts ...trail.Option) (*term, error) {
	t := &term{
		screen: screen,
		fill:   fill,
		scale:  scale,
		fps:    fps,
		opts:   opts,
	}
	if err := t.resize(); err != nil {
		return nil, err
	}
	return t, nil
}

// resize rebuilds the canvas for the current screen size. The trail starts
// over.
func (t *term) resize() error {
	cols, rows := t.screen.Size()
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	s, err := raster.New(surface.Config{Width: cols * t.scale, Height: rows * 2 * t.scale})
	if err != nil {
		return err
	}
	if t.surface != nil {
		t.surface.Close()
	}
	t.cols, t.rows = cols, rows
	t.surface = s
	t.engine = trail.New(s, t.fill, t.opts...)
	return nil
}

// pointer feeds a mouse position in cell coordinates to the engine.
func (t *term) pointer(cx, cy int) {
	x, y := cellToCanvas(cx, cy, t.scale)
	t.engine.AddSample(gg.Pt(x, y))
}

// frame advances the engine and paints the canvas to the screen.
func (t *term) frame() {
	t.engine.Tick()
	blit(t.screen, t.surface.Image(), t.cols, t.rows, t.scale)
	t.screen.Show()
}

// handle processes one event and reports whether the program should exit.
func (t *term) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return true
			}
		}
	case *tcell.EventMouse:
		cx, cy := ev.Position()
		t.pointer(cx, cy)
	case *tcell.EventResize:
		if err := t.resize(); err != nil {
			trail.Logger().Warn("resize failed", "err", err)
		}
		t.screen.Sync()
	}
	return false
}

// run polls events on a separate goroutine and ticks at the frame rate
// until the user quits.
func (t *term) run() {
	ticker := time.NewTicker(time.Second / time.Duration(t.fps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok || t.handle(ev) {
				return
			}
		case <-ticker.C:
			t.frame()
		}
	}
}

func (t *term) close() {
	t.surface.Close()
}
