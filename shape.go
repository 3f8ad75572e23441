package trail

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggtrail/tween"
)

// ShapeKind identifies a decoration primitive.
type ShapeKind uint8

const (
	ShapeCircle ShapeKind = iota
	ShapeSquare
	ShapeTriangle
)

// String returns the SVG element name for the kind.
func (k ShapeKind) String() string {
	switch k {
	case ShapeCircle:
		return "circle"
	case ShapeSquare:
		return "rect"
	case ShapeTriangle:
		return "polygon"
	default:
		return "unknown"
	}
}

// Shape is a decoration in its local coordinate space, anchored at the
// origin. Circles are centered on the origin; squares and triangles extend
// into positive X and Y.
type Shape struct {
	Kind ShapeKind

	// Size is the radius of a circle and the side of a square or triangle.
	Size float64

	Fill gg.RGBA
}

// NewCircle returns a circle of radius r.
func NewCircle(r float64, fill gg.RGBA) Shape {
	return Shape{Kind: ShapeCircle, Size: r, Fill: fill}
}

// NewSquare returns a square with side s.
func NewSquare(s float64, fill gg.RGBA) Shape {
	return Shape{Kind: ShapeSquare, Size: s, Fill: fill}
}

// NewTriangle returns a triangle pointing right with side s.
func NewTriangle(s float64, fill gg.RGBA) Shape {
	return Shape{Kind: ShapeTriangle, Size: s, Fill: fill}
}

// Vertices returns the polygon vertices of squares and triangles.
// Circles have none.
func (s Shape) Vertices() []gg.Point {
	switch s.Kind {
	case ShapeSquare:
		return []gg.Point{gg.Pt(0, 0), gg.Pt(s.Size, 0), gg.Pt(s.Size, s.Size), gg.Pt(0, s.Size)}
	case ShapeTriangle:
		return []gg.Point{gg.Pt(0, 0), gg.Pt(s.Size, s.Size/2), gg.Pt(0, s.Size)}
	default:
		return nil
	}
}

// Trace appends the shape outline, in local coordinates, to dst.
func (s Shape) Trace(dst PathSink) {
	if s.Kind == ShapeCircle {
		dst.DrawCircle(0, 0, s.Size)
		return
	}
	for i, v := range s.Vertices() {
		if i == 0 {
			dst.MoveTo(v.X, v.Y)
		} else {
			dst.LineTo(v.X, v.Y)
		}
	}
	dst.ClosePath()
}

// Transform places a shape on the surface. Rotation is in degrees.
type Transform = tween.Props

// TransformMatrix returns the affine matrix for t: translate, then rotate,
// then scale.
func TransformMatrix(t Transform) gg.Matrix {
	return gg.Translate(t.X, t.Y).
		Multiply(gg.Rotate(t.Rotation * math.Pi / 180)).
		Multiply(gg.Scale(t.Scale, t.Scale))
}
