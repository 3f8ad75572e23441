package trail

import "github.com/gogpu/gg"

// ShapeHandle identifies a shape added to a Surface.
type ShapeHandle uint64

// Surface is the rendering collaborator. It keeps one persistent filled
// outline whose geometry is replaced every frame, plus any number of
// transient shapes.
type Surface interface {
	// SetOutline replaces the trail geometry.
	SetOutline(o Outline, fill gg.RGBA)

	// AddShape adds a shape at the identity transform.
	AddShape(s Shape) ShapeHandle

	// SetShapeTransform moves, scales and rotates a shape.
	SetShapeTransform(h ShapeHandle, t Transform)

	// RemoveShape deletes a shape. Unknown handles are ignored.
	RemoveShape(h ShapeHandle)
}

// Flusher is implemented by surfaces that present the frame after the
// outline is written, such as raster targets and network broadcasters.
type Flusher interface {
	Flush() error
}

// shapeTarget lets the animator drive a shape on a surface.
type shapeTarget struct {
	surface Surface
	handle  ShapeHandle
}

func (t shapeTarget) SetProps(p Transform) {
	t.surface.SetShapeTransform(t.handle, p)
}
