package tween

import (
	"sync"
	"time"
)

// Animator starts animations. *Engine is the stock implementation.
type Animator interface {
	Animate(target Target, spec Spec) *Tween
}

// Option configures an Engine.
type Option func(*Engine)

// WithNow sets the time source used by Tick.
func WithNow(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// Engine advances a group of tweens. It is safe for concurrent use.
type Engine struct {
	mu     sync.Mutex
	now    func() time.Time
	last   time.Time
	tweens []*Tween
}

// New creates an empty engine.
func New(opts ...Option) *Engine {
	e := &Engine{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	e.last = e.now()
	return e
}

// Animate applies spec.From to target immediately and schedules the
// animation towards spec.To.
func (e *Engine) Animate(target Target, spec Spec) *Tween {
	t := newTween(target, spec)
	target.SetProps(spec.From)

	e.mu.Lock()
	e.tweens = append(e.tweens, t)
	e.mu.Unlock()
	return t
}

// Tick advances all tweens by the time elapsed since the previous Tick.
func (e *Engine) Tick() {
	e.mu.Lock()
	now := e.now()
	dt := now.Sub(e.last)
	e.last = now
	e.mu.Unlock()

	if dt < 0 {
		dt = 0
	}
	e.Update(dt)
}

// Update advances all tweens by dt. Completed tweens are removed and their
// continuations run after the engine lock is released.
func (e *Engine) Update(dt time.Duration) {
	sec := float32(dt.Seconds())

	e.mu.Lock()
	var finished []*Tween
	live := e.tweens[:0]
	for _, t := range e.tweens {
		if t.advance(sec) {
			finished = append(finished, t)
			continue
		}
		live = append(live, t)
	}
	for i := len(live); i < len(e.tweens); i++ {
		e.tweens[i] = nil
	}
	e.tweens = live
	e.mu.Unlock()

	for _, t := range finished {
		t.complete()
	}
}

// Len returns the number of running tweens.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.tweens)
}
