package trail

import (
	"time"

	"github.com/gogpu/gg"
)

// Sample is one recorded trail point.
//
// Position, CapturedAt, Direction and Drift are fixed when the sample is
// added. Age grows by the outline age step every time the sample is visited
// while building an outline, and never decreases.
type Sample struct {
	Position   gg.Point
	CapturedAt time.Time

	// Direction is a quarter of the move from the previous newest sample.
	Direction gg.Point

	// Drift is the sample's constant outward velocity: random jitter plus
	// half of Direction.
	Drift gg.Point

	Age float64
}

// buffer holds samples newest first. Expiry only ever removes the tail.
type buffer struct {
	samples []*Sample
}

func (b *buffer) len() int { return len(b.samples) }

// head returns the newest sample, or nil.
func (b *buffer) head() *Sample {
	if len(b.samples) == 0 {
		return nil
	}
	return b.samples[0]
}

// tail returns the oldest sample, or nil.
func (b *buffer) tail() *Sample {
	if len(b.samples) == 0 {
		return nil
	}
	return b.samples[len(b.samples)-1]
}

func (b *buffer) pushFront(s *Sample) {
	b.samples = append(b.samples, nil)
	copy(b.samples[1:], b.samples)
	b.samples[0] = s
}

func (b *buffer) popTail() *Sample {
	n := len(b.samples)
	if n == 0 {
		return nil
	}
	s := b.samples[n-1]
	b.samples[n-1] = nil
	b.samples = b.samples[:n-1]
	return s
}

// snapshot copies the samples by value, newest first.
func (b *buffer) snapshot() []Sample {
	out := make([]Sample, len(b.samples))
	for i, s := range b.samples {
		out[i] = *s
	}
	return out
}
