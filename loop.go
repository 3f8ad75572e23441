package trail

import (
	"context"
	"errors"
	"sync"
	"time"
)

// DefaultFrameRate is the Loop's default ticks per second.
const DefaultFrameRate = 60

// ErrLoopRunning is returned by Start on a loop that is already running.
var ErrLoopRunning = errors.New("trail: loop already running")

// Ticker is anything advanced once per frame. *Engine and *tween.Engine
// both satisfy it.
type Ticker interface {
	Tick()
}

// TickerFunc adapts a function to Ticker.
type TickerFunc func()

// Tick calls f.
func (f TickerFunc) Tick() { f() }

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithFrameRate sets ticks per second. Non-positive values are ignored.
func WithFrameRate(fps int) LoopOption {
	return func(l *Loop) {
		if fps > 0 {
			l.interval = time.Second / time.Duration(fps)
		}
	}
}

// Loop calls its tickers in order once per frame on a single goroutine,
// so no two ticks overlap.
type Loop struct {
	interval time.Duration
	tickers  []Ticker

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewLoop creates a stopped loop.
func NewLoop(tickers []Ticker, opts ...LoopOption) *Loop {
	l := &Loop{
		interval: time.Second / DefaultFrameRate,
		tickers:  tickers,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Interval returns the time between frames.
func (l *Loop) Interval() time.Duration { return l.interval }

// Start begins ticking until Stop is called or ctx is cancelled.
func (l *Loop) Start(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.done != nil {
		select {
		case <-l.done:
			// Stopped by its context; allow a restart.
			l.cancel()
		default:
			return ErrLoopRunning
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	l.cancel = cancel
	l.done = done

	go l.run(ctx, done)
	Logger().Info("frame loop started", "interval", l.interval, "tickers", len(l.tickers))
	return nil
}

func (l *Loop) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, t := range l.tickers {
				t.Tick()
			}
		}
	}
}

// Running reports whether the loop goroutine is active.
func (l *Loop) Running() bool {
	l.mu.Lock()
	done := l.done
	l.mu.Unlock()
	if done == nil {
		return false
	}
	select {
	case <-done:
		return false
	default:
		return true
	}
}

// Stop halts the loop and waits for the in-flight frame to finish.
// It is safe to call Stop more than once; the loop can be started again.
func (l *Loop) Stop() {
	l.mu.Lock()
	cancel, done := l.cancel, l.done
	l.cancel, l.done = nil, nil
	l.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	Logger().Info("frame loop stopped")
}

// Close stops the loop. It implements io.Closer.
func (l *Loop) Close() error {
	l.Stop()
	return nil
}
