// Package tween animates shape transforms over time.
//
// An [Engine] owns a group of [Tween] values and advances them once per
// frame, either from its clock ([Engine.Tick]) or by an explicit delta
// ([Engine.Update]). Each tween drives a gween progress curve from 0 to 1
// with the requested easing and interpolates [Props] between the from and
// to values, pushing the result to its [Target].
//
// When a tween finishes its continuations run exactly once, after the
// engine lock is released, so a continuation may call back into the engine
// or remove the animated element from its surface.
package tween
