// Package trail renders a decaying, organic ribbon that follows a moving
// pointer, plus short-lived decorative shapes spawned along it.
//
// # Overview
//
// An [Engine] keeps a newest-first buffer of timestamped [Sample] values.
// Every frame [Engine.Tick] expires at most one stale sample from the tail
// and rebuilds a single closed [Outline] that the [Surface] fills as one
// region. Each call to [Engine.AddSample] may also spawn a circle, square or
// triangle that flies off, shrinks and spins until its tween completes.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gg"
//	    "github.com/gogpu/ggtrail"
//	    "github.com/gogpu/ggtrail/surface"
//	    "github.com/gogpu/ggtrail/surface/raster"
//	)
//
//	s, err := raster.New(surface.Config{Width: 640, Height: 480})
//	if err != nil {
//	    return err
//	}
//	e := trail.New(s, gg.Hex("#ff3366"))
//
//	loop := trail.NewLoop([]trail.Ticker{e})
//	_ = loop.Start(ctx)
//	defer loop.Stop()
//
//	// from the pointer event source:
//	e.AddSample(gg.Pt(x, y))
//
// # Surfaces
//
// The engine only talks to the [Surface] interface. Ready-made backends live
// under surface/: raster (gg.Context), svg, record (in-memory, for tests)
// and remote (websocket broadcast).
//
// # Determinism
//
// Time and randomness are injected with [WithClock] and [WithRand]. With a
// [ManualClock] and a fixed [Rand] every outline and spawn is reproducible.
//
// # Coordinate System
//
// Same as gg: origin at top-left, X grows right, Y grows down. Shape
// rotation is expressed in degrees.
package trail

// Version is the current version of the library.
const Version = "0.1.0"
