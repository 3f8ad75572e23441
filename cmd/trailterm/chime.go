package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	trail "github.com/gogpu/ggtrail"
)

const (
	chimeRate     = beep.SampleRate(44100)
	chimeDuration = 40 * time.Millisecond
)

// chime plays a short tone whenever a decoration spawns.
type chime struct {
	ready bool
}

func newChime() (*chime, error) {
	if err := speaker.Init(chimeRate, chimeRate.N(time.Second/10)); err != nil {
		return &chime{}, err
	}
	return &chime{ready: true}, nil
}

// toneFor picks a pitch per decoration kind.
func toneFor(k trail.ShapeKind) float64 {
	switch k {
	case trail.ShapeSquare:
		return 880
	case trail.ShapeTriangle:
		return 990
	default:
		return 660
	}
}

// play is a trail spawn hook.
func (c *chime) play(s trail.Shape) {
	if c == nil || !c.ready {
		return
	}
	sine, err := generators.SineTone(chimeRate, toneFor(s.Kind))
	if err != nil {
		return
	}
	speaker.Play(beep.Take(chimeRate.N(chimeDuration), sine))
}
