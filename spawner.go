package trail

import (
	"math"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggtrail/tween"
)

// Decoration motion constants.
const (
	spawnDirectionReach = 20.0
	spawnDriftReach     = 10.0
	spawnMinDuration    = 500 * time.Millisecond
	spawnDurationSpread = time.Second
	spawnMaxRotation    = 360.0
	squareSizeFactor    = 1.5
	triangleSizeFactor  = 1.5
)

// SpawnStats counts decorations by kind.
type SpawnStats struct {
	Circles   int
	Squares   int
	Triangles int
}

// Total returns the number of decorations spawned.
func (s SpawnStats) Total() int { return s.Circles + s.Squares + s.Triangles }

// spawner turns new samples into decorations.
type spawner struct {
	surface  Surface
	animator tween.Animator
	rand     Rand
	fill     gg.RGBA
	chance   float64
	onSpawn  func(Shape)
	stats    SpawnStats
}

// pickKind draws one random value and maps it onto consecutive bands of
// width chance: circle, square, triangle, nothing.
//
// Band edges are products of chance, so they carry float rounding: with
// chance 0.1 the triangle band ends at 0.30000000000000004, not 0.3.
func (sp *spawner) pickKind() (ShapeKind, bool) {
	r := sp.rand.Float64()
	switch {
	case r < sp.chance:
		return ShapeCircle, true
	case r < sp.chance*2:
		return ShapeSquare, true
	case r < sp.chance*3:
		return ShapeTriangle, true
	default:
		return 0, false
	}
}

// makeShape sizes a decoration from how fast the pointer moved.
func (sp *spawner) makeShape(kind ShapeKind, s *Sample) Shape {
	base := math.Abs(s.Direction.X) + math.Abs(s.Direction.Y)
	switch kind {
	case ShapeSquare:
		return NewSquare(base*squareSizeFactor, sp.fill)
	case ShapeTriangle:
		return NewTriangle(base*triangleSizeFactor, sp.fill)
	default:
		return NewCircle(base, sp.fill)
	}
}

// maybeSpawn possibly emits a decoration for s. The shape is removed from
// the surface when its tween completes, and not before.
func (sp *spawner) maybeSpawn(s *Sample) {
	kind, ok := sp.pickKind()
	if !ok {
		return
	}

	shape := sp.makeShape(kind, s)
	h := sp.surface.AddShape(shape)

	spec := sp.flight(s)
	t := sp.animator.Animate(shapeTarget{surface: sp.surface, handle: h}, spec)
	surface := sp.surface
	t.Then(func() {
		surface.RemoveShape(h)
		Logger().Debug("decoration removed", "kind", kind, "handle", h)
	})

	switch kind {
	case ShapeCircle:
		sp.stats.Circles++
	case ShapeSquare:
		sp.stats.Squares++
	case ShapeTriangle:
		sp.stats.Triangles++
	}
	if sp.onSpawn != nil {
		sp.onSpawn(shape)
	}
	Logger().Debug("decoration spawned", "kind", kind, "size", shape.Size, "duration", spec.Duration)
}

// flight randomizes the decoration's path: it leaves the sample position
// towards a nearby point, shrinking to nothing and spinning as it goes.
func (sp *spawner) flight(s *Sample) tween.Spec {
	r := sp.rand
	x := s.Position.X + s.Direction.X*(r.Float64()*spawnDirectionReach) + s.Drift.X*(r.Float64()*spawnDriftReach)
	y := s.Position.Y + s.Direction.Y*(r.Float64()*spawnDirectionReach) + s.Drift.Y*(r.Float64()*spawnDriftReach)
	d := spawnMinDuration + time.Duration(r.Float64()*float64(spawnDurationSpread))
	rot := r.Float64() * spawnMaxRotation

	return tween.Spec{
		Duration: d,
		From:     Transform{X: s.Position.X, Y: s.Position.Y, Scale: 1},
		To:       Transform{X: x, Y: y, Scale: 0, Rotation: rot},
		Ease:     tween.Power4Out,
	}
}
