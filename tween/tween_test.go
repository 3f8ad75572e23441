package tween

import (
	"math"
	"sync"
	"testing"
	"time"
)

type recorder struct {
	mu    sync.Mutex
	props []Props
}

func (r *recorder) SetProps(p Props) {
	r.mu.Lock()
	r.props = append(r.props, p)
	r.mu.Unlock()
}

func (r *recorder) last() Props {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.props[len(r.props)-1]
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-4 }

func TestAnimateAppliesFromImmediately(t *testing.T) {
	e := New()
	r := &recorder{}
	from := Props{X: 10, Y: 20, Scale: 1}
	e.Animate(r, Spec{Duration: time.Second, From: from, To: Props{X: 30}})

	if got := r.last(); got != from {
		t.Errorf("props after Animate = %+v, want %+v", got, from)
	}
	if e.Len() != 1 {
		t.Errorf("Len() = %d, want 1", e.Len())
	}
}

func TestUpdateInterpolatesLinear(t *testing.T) {
	e := New()
	r := &recorder{}
	e.Animate(r, Spec{
		Duration: time.Second,
		From:     Props{X: 0, Scale: 1, Rotation: 0},
		To:       Props{X: 100, Scale: 0, Rotation: 180},
		Ease:     Linear,
	})

	e.Update(500 * time.Millisecond)
	got := r.last()
	if !approx(got.X, 50) || !approx(got.Scale, 0.5) || !approx(got.Rotation, 90) {
		t.Errorf("midpoint props = %+v, want X=50 Scale=0.5 Rotation=90", got)
	}
}

func TestPower4OutDecelerates(t *testing.T) {
	e := New()
	r := &recorder{}
	e.Animate(r, Spec{Duration: time.Second, To: Props{X: 100}, Ease: Power4Out})

	e.Update(500 * time.Millisecond)
	if got := r.last().X; got <= 50 {
		t.Errorf("Power4Out at half time X = %v, want > 50", got)
	}
}

func TestCompletionFiresOnce(t *testing.T) {
	e := New()
	r := &recorder{}
	tw := e.Animate(r, Spec{Duration: 100 * time.Millisecond, To: Props{X: 1}})

	calls := 0
	tw.Then(func() { calls++ })

	e.Update(60 * time.Millisecond)
	if tw.Finished() {
		t.Fatal("tween finished too early")
	}
	e.Update(60 * time.Millisecond)
	e.Update(60 * time.Millisecond)

	if calls != 1 {
		t.Errorf("continuation ran %d times, want 1", calls)
	}
	if !tw.Finished() {
		t.Error("Finished() = false after duration elapsed")
	}
	select {
	case <-tw.Done():
	default:
		t.Error("Done() channel not closed")
	}
	if e.Len() != 0 {
		t.Errorf("Len() = %d, want 0", e.Len())
	}
	if got := r.last(); got.X != 1 {
		t.Errorf("final X = %v, want 1", got.X)
	}
}

func TestThenAfterCompletionRunsImmediately(t *testing.T) {
	e := New()
	tw := e.Animate(TargetFunc(func(Props) {}), Spec{})
	e.Update(0)

	ran := false
	tw.Then(func() { ran = true })
	if !ran {
		t.Error("Then on a finished tween should run immediately")
	}
}

func TestContinuationMayAnimate(t *testing.T) {
	e := New()
	tw := e.Animate(TargetFunc(func(Props) {}), Spec{Duration: time.Millisecond})
	tw.Then(func() {
		e.Animate(TargetFunc(func(Props) {}), Spec{Duration: time.Second})
	})

	e.Update(10 * time.Millisecond)
	if e.Len() != 1 {
		t.Errorf("Len() = %d, want 1 follow-up tween", e.Len())
	}
}

func TestTickUsesClock(t *testing.T) {
	now := time.Unix(100, 0)
	e := New(WithNow(func() time.Time { return now }))
	r := &recorder{}
	e.Animate(r, Spec{Duration: time.Second, To: Props{X: 10}, Ease: Linear})

	now = now.Add(250 * time.Millisecond)
	e.Tick()
	if got := r.last().X; !approx(got, 2.5) {
		t.Errorf("X after 250ms = %v, want 2.5", got)
	}
}

func TestPropsLerp(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		want Props
	}{
		{"start", 0, Props{X: 0, Y: 0, Scale: 1, Rotation: 0}},
		{"end", 1, Props{X: 10, Y: -10, Scale: 0, Rotation: 360}},
		{"quarter", 0.25, Props{X: 2.5, Y: -2.5, Scale: 0.75, Rotation: 90}},
	}
	from := Identity()
	to := Props{X: 10, Y: -10, Scale: 0, Rotation: 360}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := from.Lerp(to, tt.t); got != tt.want {
				t.Errorf("Lerp(%v) = %+v, want %+v", tt.t, got, tt.want)
			}
		})
	}
}
