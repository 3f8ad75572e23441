package trail

import (
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggtrail/tween"
)

// Engine owns the sample buffer and produces one outline per frame.
//
// AddSample and Tick may be called from different goroutines; they are
// serialized so a tick never observes a half-inserted sample.
type Engine struct {
	mu      sync.Mutex
	surface Surface
	fill    gg.RGBA
	opts    options
	buf     buffer
	spawn   spawner

	// ownTween is non-nil when the engine created its own animator and is
	// therefore responsible for advancing it.
	ownTween *tween.Engine
}

// New creates an engine that draws into s using fill for the trail and its
// decorations.
func New(s Surface, fill gg.RGBA, opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine{
		surface: s,
		fill:    fill,
		opts:    o,
	}
	if o.animator == nil {
		e.ownTween = tween.New(tween.WithNow(o.clock.Now))
		o.animator = e.ownTween
	}
	e.spawn = spawner{
		surface:  s,
		animator: o.animator,
		rand:     o.rand,
		fill:     fill,
		chance:   o.spawnChance,
		onSpawn:  o.onSpawn,
	}
	return e
}

// AddSample records a new pointer position at the current time. The
// sample's direction and drift are derived from the previous newest sample
// here and never change afterwards. It may spawn a decoration.
func (e *Engine) AddSample(p gg.Point) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var dir gg.Point
	if prev := e.buf.head(); prev != nil {
		dir = p.Sub(prev.Position).Mul(e.opts.directionScale)
	}
	s := &Sample{
		Position:   p,
		CapturedAt: e.opts.clock.Now(),
		Direction:  dir,
		Drift: gg.Pt(
			e.jitter()+dir.X/2,
			e.jitter()+dir.Y/2,
		),
	}

	e.spawn.maybeSpawn(s)
	e.buf.pushFront(s)
}

// jitter returns a random value in [-jitter/2, jitter/2).
func (e *Engine) jitter() float64 {
	return (e.opts.rand.Float64() - 0.5) * e.opts.driftJitter
}

// Tick runs one frame: it expires the tail sample if it has outlived the
// remove delay, rebuilds the outline and writes it to the surface. At most
// one sample expires per tick.
func (e *Engine) Tick() {
	e.mu.Lock()
	if tail := e.buf.tail(); tail != nil {
		age := e.opts.clock.Now().Sub(tail.CapturedAt)
		if age >= e.opts.removeDelay {
			e.buf.popTail()
			Logger().Debug("sample expired", "age", age, "remaining", e.buf.len())
		}
	}
	outline := BuildOutline(e.buf.samples, e.opts.outline)
	e.mu.Unlock()

	e.surface.SetOutline(outline, e.fill)

	if e.ownTween != nil {
		e.ownTween.Tick()
	}
	if f, ok := e.surface.(Flusher); ok {
		if err := f.Flush(); err != nil {
			Logger().Warn("surface flush failed", "err", err)
		}
	}
}

// Len returns the number of live samples.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.buf.len()
}

// Samples returns a copy of the live samples, newest first.
func (e *Engine) Samples() []Sample {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.buf.snapshot()
}

// Stats returns how many decorations have been spawned so far.
func (e *Engine) Stats() SpawnStats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.spawn.stats
}

// Animations returns the number of decorations still in flight on the
// engine's own animator, or -1 when an external animator is in use.
func (e *Engine) Animations() int {
	if e.ownTween == nil {
		return -1
	}
	return e.ownTween.Len()
}
