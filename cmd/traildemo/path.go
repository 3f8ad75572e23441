package main

import (
	"math"

	"github.com/gogpu/gg"
)

// lissajous is a scripted pointer path inside a w x h canvas.
type lissajous struct {
	cx, cy float64 // center
	ax, ay float64 // amplitude
	fx, fy float64 // frequency in Hz
	phase  float64
}

// newLissajous fits a 3:2 curve into the canvas with a small margin.
func newLissajous(w, h int) lissajous {
	return lissajous{
		cx:    float64(w) / 2,
		cy:    float64(h) / 2,
		ax:    float64(w) * 0.4,
		ay:    float64(h) * 0.4,
		fx:    0.3,
		fy:    0.2,
		phase: math.Pi / 2,
	}
}

// at returns the pointer position t seconds into the script.
func (l lissajous) at(t float64) gg.Point {
	return gg.Pt(
		l.cx+l.ax*math.Sin(2*math.Pi*l.fx*t+l.phase),
		l.cy+l.ay*math.Sin(2*math.Pi*l.fy*t),
	)
}

// period returns the time after which the path repeats.
func (l lissajous) period() float64 {
	// 0.3 Hz and 0.2 Hz share a 0.1 Hz fundamental.
	return 1 / gcdHz(l.fx, l.fy)
}

func gcdHz(a, b float64) float64 {
	const eps = 1e-9
	for b > eps {
		a, b = b, math.Mod(a, b)
	}
	return a
}
