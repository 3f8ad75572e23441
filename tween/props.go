package tween

// Props is the animated transform of an element: translation, uniform
// scale and rotation in degrees.
type Props struct {
	X, Y     float64
	Scale    float64
	Rotation float64
}

// Identity returns props at the origin with unit scale.
func Identity() Props {
	return Props{Scale: 1}
}

// Lerp interpolates between p and q. t is not clamped, so overshooting
// easings are preserved.
func (p Props) Lerp(q Props, t float64) Props {
	return Props{
		X:        p.X + (q.X-p.X)*t,
		Y:        p.Y + (q.Y-p.Y)*t,
		Scale:    p.Scale + (q.Scale-p.Scale)*t,
		Rotation: p.Rotation + (q.Rotation-p.Rotation)*t,
	}
}

// Target receives interpolated props.
type Target interface {
	SetProps(Props)
}

// TargetFunc adapts a function to Target.
type TargetFunc func(Props)

// SetProps calls f(p).
func (f TargetFunc) SetProps(p Props) { f(p) }
