package tween

import "github.com/tanema/gween/ease"

// Easing maps elapsed time t of duration d onto begin b plus change c.
// It has the same shape as gween's ease.TweenFunc.
type Easing func(t, b, c, d float32) float32

// Stock easings. PowerN names follow the common tweening convention where
// Power2 is cubic and Power4 is quintic.
var (
	Linear    Easing = ease.Linear
	Power1Out Easing = ease.OutQuad
	Power2Out Easing = ease.OutCubic
	Power3Out Easing = ease.OutQuart
	Power4Out Easing = ease.OutQuint
)
