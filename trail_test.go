package trail

import (
	"strings"
	"sync"

	"github.com/gogpu/gg"
)

// constRand always returns the same value.
type constRand float64

func (r constRand) Float64() float64 { return float64(r) }

// seqRand returns its values in order, then repeats the last one.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[min(r.i, len(r.vals)-1)]
	r.i++
	return v
}

// fakeSurface records what the engine sends it.
type fakeSurface struct {
	mu         sync.Mutex
	outlines   []Outline
	fills      []gg.RGBA
	shapes     map[ShapeHandle]Shape
	transforms map[ShapeHandle]Transform
	added      []Shape
	removed    []ShapeHandle
	next       ShapeHandle
	flushes    int
	flushErr   error
}

func (f *fakeSurface) SetOutline(o Outline, fill gg.RGBA) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outlines = append(f.outlines, o)
	f.fills = append(f.fills, fill)
}

func (f *fakeSurface) AddShape(s Shape) ShapeHandle {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.shapes == nil {
		f.shapes = make(map[ShapeHandle]Shape)
		f.transforms = make(map[ShapeHandle]Transform)
	}
	f.next++
	f.shapes[f.next] = s
	f.added = append(f.added, s)
	return f.next
}

func (f *fakeSurface) SetShapeTransform(h ShapeHandle, t Transform) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.shapes[h]; ok {
		f.transforms[h] = t
	}
}

func (f *fakeSurface) RemoveShape(h ShapeHandle) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.shapes, h)
	delete(f.transforms, h)
	f.removed = append(f.removed, h)
}

func (f *fakeSurface) lastOutline() Outline {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.outlines[len(f.outlines)-1]
}

func (f *fakeSurface) liveShapes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.shapes)
}

// flushingSurface adds Flusher to fakeSurface.
type flushingSurface struct {
	fakeSurface
}

func (f *flushingSurface) Flush() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.flushes++
	return f.flushErr
}

// pathLog records PathSink calls as compact SVG-like tokens.
type pathLog struct {
	ops []string
}

func (p *pathLog) MoveTo(x, y float64)        { p.ops = append(p.ops, "M") }
func (p *pathLog) LineTo(x, y float64)        { p.ops = append(p.ops, "L") }
func (p *pathLog) ClosePath()                 { p.ops = append(p.ops, "Z") }
func (p *pathLog) DrawCircle(x, y, r float64) { p.ops = append(p.ops, "C") }

func (p *pathLog) String() string { return strings.Join(p.ops, " ") }
