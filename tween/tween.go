package tween

import (
	"sync"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Spec describes one animation.
type Spec struct {
	Duration time.Duration
	From, To Props
	Ease     Easing
}

// Tween is the owned handle of a running animation.
type Tween struct {
	target   Target
	spec     Spec
	progress *gween.Tween

	mu       sync.Mutex
	finished bool
	then     []func()
	done     chan struct{}
}

func newTween(target Target, spec Spec) *Tween {
	e := spec.Ease
	if e == nil {
		e = Linear
	}
	t := &Tween{
		target: target,
		spec:   spec,
		done:   make(chan struct{}),
	}
	if spec.Duration > 0 {
		t.progress = gween.New(0, 1, float32(spec.Duration.Seconds()), ease.TweenFunc(e))
	}
	return t
}

// Spec returns the animation description.
func (t *Tween) Spec() Spec { return t.spec }

// Then registers fn to run once the tween completes. If the tween has
// already completed, fn runs immediately on the calling goroutine.
func (t *Tween) Then(fn func()) {
	t.mu.Lock()
	if !t.finished {
		t.then = append(t.then, fn)
		t.mu.Unlock()
		return
	}
	t.mu.Unlock()
	fn()
}

// Done returns a channel closed when the tween completes.
func (t *Tween) Done() <-chan struct{} { return t.done }

// Finished reports whether the tween has completed.
func (t *Tween) Finished() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.finished
}

// advance moves the tween forward by dt seconds and applies the
// interpolated props. It reports whether the tween reached its end.
func (t *Tween) advance(dt float32) bool {
	if t.progress == nil {
		t.target.SetProps(t.spec.To)
		return true
	}
	v, end := t.progress.Update(dt)
	if end {
		t.target.SetProps(t.spec.To)
		return true
	}
	t.target.SetProps(t.spec.From.Lerp(t.spec.To, float64(v)))
	return false
}

// complete marks the tween finished and runs its continuations.
// Calling it more than once is a no-op.
func (t *Tween) complete() {
	t.mu.Lock()
	if t.finished {
		t.mu.Unlock()
		return
	}
	t.finished = true
	then := t.then
	t.then = nil
	close(t.done)
	t.mu.Unlock()

	for _, fn := range then {
		fn()
	}
}
