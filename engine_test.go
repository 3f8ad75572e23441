package trail

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/gogpu/gg"
)

var epoch = time.Unix(1_700_000_000, 0)

func newTestEngine(r Rand, opts ...Option) (*Engine, *fakeSurface, *ManualClock) {
	clock := NewManualClock(epoch)
	s := &fakeSurface{}
	opts = append([]Option{WithClock(clock), WithRand(r)}, opts...)
	return New(s, gg.Hex("#ff3366"), opts...), s, clock
}

func TestAddSampleNewestFirst(t *testing.T) {
	e, _, clock := newTestEngine(constRand(0.9))

	for i := 0; i < 5; i++ {
		e.AddSample(gg.Pt(float64(i), float64(i*2)))
		clock.Advance(time.Millisecond)
	}

	samples := e.Samples()
	if len(samples) != 5 {
		t.Fatalf("Len = %d, want 5", len(samples))
	}
	for i := 0; i < len(samples)-1; i++ {
		if !samples[i].CapturedAt.After(samples[i+1].CapturedAt) {
			t.Errorf("samples[%d] captured at %v, not after samples[%d] at %v",
				i, samples[i].CapturedAt, i+1, samples[i+1].CapturedAt)
		}
	}
	if samples[0].Position != gg.Pt(4, 8) {
		t.Errorf("head position = %v, want (4,8)", samples[0].Position)
	}
}

func TestAddSampleDirectionAndDrift(t *testing.T) {
	e, _, _ := newTestEngine(constRand(0.5))

	e.AddSample(gg.Pt(0, 0))
	e.AddSample(gg.Pt(8, -4))

	samples := e.Samples()
	first, second := samples[1], samples[0]

	if first.Direction != (gg.Point{}) {
		t.Errorf("first direction = %v, want zero", first.Direction)
	}
	if want := gg.Pt(2, -1); second.Direction != want {
		t.Errorf("direction = %v, want %v", second.Direction, want)
	}
	// Rand 0.5 cancels the jitter, leaving half the direction.
	if want := gg.Pt(1, -0.5); second.Drift != want {
		t.Errorf("drift = %v, want %v", second.Drift, want)
	}
}

func TestAddSampleDoesNotTouchEarlierSamples(t *testing.T) {
	e, _, _ := newTestEngine(NewRand(7))

	e.AddSample(gg.Pt(1, 1))
	e.AddSample(gg.Pt(5, 3))
	before := e.Samples()[0]

	e.AddSample(gg.Pt(100, 100))
	after := e.Samples()[1]

	if before.Direction != after.Direction || before.Drift != after.Drift {
		t.Errorf("earlier sample changed: before %+v, after %+v", before, after)
	}
}

func TestTickExpiresExactlyAtRemoveDelay(t *testing.T) {
	e, _, clock := newTestEngine(constRand(0.9))
	e.AddSample(gg.Pt(10, 10))

	for ms := 0; ms <= 401; ms++ {
		clock.Set(epoch.Add(time.Duration(ms) * time.Millisecond))
		e.Tick()

		want := 1
		if ms >= 400 {
			want = 0
		}
		if got := e.Len(); got != want {
			t.Fatalf("at %dms Len() = %d, want %d", ms, got, want)
		}
	}
}

func TestTickRemovesOnlyTail(t *testing.T) {
	e, _, clock := newTestEngine(constRand(0.9))

	e.AddSample(gg.Pt(0, 0))
	clock.Advance(10 * time.Millisecond)
	e.AddSample(gg.Pt(1, 1))
	clock.Advance(10 * time.Millisecond)
	e.AddSample(gg.Pt(2, 2))

	// All three are stale, but a tick only trims one.
	clock.Advance(time.Second)
	e.Tick()

	samples := e.Samples()
	if len(samples) != 2 {
		t.Fatalf("Len = %d, want 2", len(samples))
	}
	if samples[1].Position != gg.Pt(1, 1) {
		t.Errorf("tail = %v, want (1,1)", samples[1].Position)
	}

	e.Tick()
	e.Tick()
	if e.Len() != 0 {
		t.Errorf("Len = %d after three ticks, want 0", e.Len())
	}
}

func TestTickAgesSamples(t *testing.T) {
	e, _, clock := newTestEngine(constRand(0.9))
	e.AddSample(gg.Pt(0, 0))
	clock.Advance(time.Millisecond)
	e.AddSample(gg.Pt(3, 4))

	prev := []float64{0, 0}
	for frame := 1; frame <= 5; frame++ {
		e.Tick()
		for i, s := range e.Samples() {
			if s.Age < prev[i] {
				t.Errorf("frame %d sample %d age decreased: %v -> %v", frame, i, prev[i], s.Age)
			}
			if want := 0.4 * float64(frame); math.Abs(s.Age-want) > 1e-9 {
				t.Errorf("frame %d sample %d age = %v, want %v", frame, i, s.Age, want)
			}
			prev[i] = s.Age
		}
	}
}

func TestTickEmptyBuffer(t *testing.T) {
	e, s, _ := newTestEngine(constRand(0.9))

	e.Tick()

	if len(s.outlines) != 1 {
		t.Fatalf("SetOutline called %d times, want 1", len(s.outlines))
	}
	if !s.lastOutline().Empty() {
		t.Errorf("outline = %v, want empty", s.lastOutline())
	}
	if s.lastOutline().String() != "" {
		t.Errorf("outline string = %q, want empty", s.lastOutline().String())
	}
}

func TestTickThreeSampleScenario(t *testing.T) {
	e, s, clock := newTestEngine(constRand(0.9))

	e.AddSample(gg.Pt(0, 0))
	clock.Set(epoch.Add(time.Millisecond))
	e.AddSample(gg.Pt(10, 0))
	clock.Set(epoch.Add(2 * time.Millisecond))
	e.AddSample(gg.Pt(10, 10))

	clock.Set(epoch.Add(50 * time.Millisecond))
	e.Tick()

	if e.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", e.Len())
	}

	d := s.lastOutline().String()
	parsed, err := ParseOutline(d)
	if err != nil {
		t.Fatalf("ParseOutline(%q) error: %v", d, err)
	}
	if parsed.Len() != 6 {
		t.Errorf("outline has %d coordinate pairs, want 6: %q", parsed.Len(), d)
	}
	if d[0] != 'M' {
		t.Errorf("outline %q does not start with a move", d)
	}
}

func TestTickPassesFill(t *testing.T) {
	e, s, _ := newTestEngine(constRand(0.9))
	e.Tick()
	if want := gg.Hex("#ff3366"); s.fills[0] != want {
		t.Errorf("fill = %v, want %v", s.fills[0], want)
	}
}

func TestTickFlushesSurface(t *testing.T) {
	s := &flushingSurface{}
	s.flushErr = errors.New("boom")
	e := New(s, gg.Black, WithRand(constRand(0.9)))

	e.Tick()
	e.Tick()

	if s.flushes != 2 {
		t.Errorf("Flush called %d times, want 2", s.flushes)
	}
}

func TestSpawnCircleOnly(t *testing.T) {
	e, s, _ := newTestEngine(constRand(0.05))

	e.AddSample(gg.Pt(0, 0))

	stats := e.Stats()
	if stats.Circles != 1 || stats.Squares != 0 || stats.Triangles != 0 {
		t.Errorf("Stats() = %+v, want exactly one circle", stats)
	}
	if len(s.added) != 1 || s.added[0].Kind != ShapeCircle {
		t.Errorf("surface shapes = %+v, want one circle", s.added)
	}
}

func TestSpawnNothingAboveBands(t *testing.T) {
	e, s, _ := newTestEngine(constRand(0.35))

	e.AddSample(gg.Pt(0, 0))
	e.AddSample(gg.Pt(5, 5))

	if total := e.Stats().Total(); total != 0 {
		t.Errorf("Stats().Total() = %d, want 0", total)
	}
	if len(s.added) != 0 {
		t.Errorf("surface received %d shapes, want 0", len(s.added))
	}
}

func TestSpawnBands(t *testing.T) {
	tests := []struct {
		r    float64
		want ShapeKind
		ok   bool
	}{
		{0, ShapeCircle, true},
		{0.0999, ShapeCircle, true},
		{0.1, ShapeSquare, true},
		{0.15, ShapeSquare, true},
		{0.2, ShapeTriangle, true},
		{0.2999, ShapeTriangle, true},
		// 0.1*3 rounds up to 0.30000000000000004.
		{0.3, ShapeTriangle, true},
		{0.3001, 0, false},
		{0.35, 0, false},
		{0.99, 0, false},
	}
	for _, tt := range tests {
		sp := spawner{rand: constRand(tt.r), chance: DefaultSpawnChance}
		kind, ok := sp.pickKind()
		if ok != tt.ok || (ok && kind != tt.want) {
			t.Errorf("pickKind(%v) = %v, %v; want %v, %v", tt.r, kind, ok, tt.want, tt.ok)
		}
	}
}

func TestSpawnedShapeRemovedOnlyAfterTween(t *testing.T) {
	// Drift jitter uses two draws, the band uses the third.
	r := &seqRand{vals: []float64{0.5, 0.5, 0.9, 0.5, 0.5, 0.05, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5}}
	e, s, clock := newTestEngine(r)

	e.AddSample(gg.Pt(0, 0))
	clock.Advance(time.Millisecond)
	e.AddSample(gg.Pt(40, 0))

	if s.liveShapes() != 1 {
		t.Fatalf("live shapes = %d, want 1", s.liveShapes())
	}
	if s.added[0].Size != 10 {
		t.Errorf("circle radius = %v, want 10", s.added[0].Size)
	}

	clock.Advance(100 * time.Millisecond)
	e.Tick()
	if s.liveShapes() != 1 {
		t.Fatal("shape removed before its tween completed")
	}
	if e.Animations() != 1 {
		t.Errorf("Animations() = %d, want 1", e.Animations())
	}

	// Longest possible flight is 1.5s.
	clock.Advance(1500 * time.Millisecond)
	e.Tick()
	if s.liveShapes() != 0 {
		t.Errorf("live shapes = %d after tween completed, want 0", s.liveShapes())
	}
	if len(s.removed) != 1 {
		t.Errorf("RemoveShape called %d times, want 1", len(s.removed))
	}
}

func TestSpawnHook(t *testing.T) {
	var got []Shape
	e, _, _ := newTestEngine(constRand(0.15), WithSpawnHook(func(s Shape) { got = append(got, s) }))

	e.AddSample(gg.Pt(0, 0))
	if len(got) != 1 || got[0].Kind != ShapeSquare {
		t.Errorf("hook saw %+v, want one square", got)
	}
}

func TestSpawnChanceZeroDisables(t *testing.T) {
	e, _, _ := newTestEngine(constRand(0), WithSpawnChance(0))
	e.AddSample(gg.Pt(0, 0))
	if e.Stats().Total() != 0 {
		t.Errorf("Stats() = %+v, want none", e.Stats())
	}
}
