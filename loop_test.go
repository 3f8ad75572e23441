package trail

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gogpu/gg"
)

func TestLoopTicksInOrder(t *testing.T) {
	var seq []string
	reached := make(chan struct{})
	var frames atomic.Int32

	a := TickerFunc(func() { seq = append(seq, "a") })
	b := TickerFunc(func() {
		seq = append(seq, "b")
		if frames.Add(1) == 3 {
			close(reached)
		}
	})

	l := NewLoop([]Ticker{a, b}, WithFrameRate(500))
	if err := l.Start(context.Background()); err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	select {
	case <-reached:
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not tick three times")
	}
	l.Stop()

	if len(seq) < 6 {
		t.Fatalf("got %d ticks, want at least 6", len(seq))
	}
	for i := 0; i+1 < len(seq); i += 2 {
		if seq[i] != "a" || seq[i+1] != "b" {
			t.Fatalf("tick order %v, want a before b every frame", seq)
		}
	}
}

func TestLoopStartTwice(t *testing.T) {
	l := NewLoop(nil, WithFrameRate(100))
	if err := l.Start(context.Background()); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	defer l.Stop()

	if err := l.Start(context.Background()); !errors.Is(err, ErrLoopRunning) {
		t.Errorf("second Start() = %v, want ErrLoopRunning", err)
	}
}

func TestLoopStopIdempotent(t *testing.T) {
	l := NewLoop(nil)
	l.Stop() // never started

	if err := l.Start(context.Background()); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	l.Stop()
	l.Stop()
	if err := l.Close(); err != nil {
		t.Errorf("Close() = %v, want nil", err)
	}
	if l.Running() {
		t.Error("Running() = true after Stop")
	}

	// A stopped loop can be restarted.
	if err := l.Start(context.Background()); err != nil {
		t.Fatalf("restart error: %v", err)
	}
	if !l.Running() {
		t.Error("Running() = false after restart")
	}
	l.Stop()
}

func TestLoopContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	l := NewLoop(nil, WithFrameRate(100))
	if err := l.Start(ctx); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	cancel()

	deadline := time.Now().Add(5 * time.Second)
	for l.Running() {
		if time.Now().After(deadline) {
			t.Fatal("loop still running after context cancel")
		}
		time.Sleep(time.Millisecond)
	}

	if err := l.Start(context.Background()); err != nil {
		t.Errorf("Start() after cancel = %v, want nil", err)
	}
	l.Stop()
}

func TestWithFrameRate(t *testing.T) {
	tests := []struct {
		fps  int
		want time.Duration
	}{
		{60, time.Second / 60},
		{120, time.Second / 120},
		{0, time.Second / DefaultFrameRate},
		{-5, time.Second / DefaultFrameRate},
	}
	for _, tt := range tests {
		if got := NewLoop(nil, WithFrameRate(tt.fps)).Interval(); got != tt.want {
			t.Errorf("WithFrameRate(%d) interval = %v, want %v", tt.fps, got, tt.want)
		}
	}
}

func TestLoopDrivesEngine(t *testing.T) {
	s := &fakeSurface{}
	e := New(s, gg.Black, WithRand(constRand(0.9)))
	e.AddSample(gg.Pt(1, 2))

	l := NewLoop([]Ticker{e}, WithFrameRate(200))
	if err := l.Start(context.Background()); err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		s.mu.Lock()
		n := len(s.outlines)
		s.mu.Unlock()
		if n >= 2 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("engine was not ticked by the loop")
		}
		time.Sleep(time.Millisecond)
	}
	l.Stop()
}
