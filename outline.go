package trail

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

// ErrBadOutline is returned by ParseOutline for malformed path data.
var ErrBadOutline = errors.New("trail: malformed outline")

// Outline is the closed silhouette of the trail for one frame.
// A non-empty outline built from n samples has exactly 2n points.
type Outline struct {
	Points []gg.Point
}

// OutlineOptions controls BuildOutline.
type OutlineOptions struct {
	// AgeStep is added to a sample's Age on every visit.
	AgeStep float64

	// Taper scales the direction-based ribbon half-width.
	Taper float64
}

// DefaultOutlineOptions returns the stock age step and taper.
func DefaultOutlineOptions() OutlineOptions {
	return OutlineOptions{AgeStep: DefaultAgeStep, Taper: DefaultTaper}
}

// BuildOutline walks samples from newest to oldest and back again, offsetting
// each vertex to one side of the centerline on the way out and to the other
// side on the way back. The oldest sample is the turnaround: it is the last
// vertex of the forward pass and the first of the backward pass, and the
// newest sample opens and closes the loop.
//
// Every visit ages the visited sample by opts.AgeStep before its drift is
// applied, so each call ages every sample by 2*opts.AgeStep.
func BuildOutline(samples []*Sample, opts OutlineOptions) Outline {
	n := len(samples)
	if n == 0 {
		return Outline{}
	}

	pts := make([]gg.Point, 0, 2*n)
	for i := 0; i < n; i++ {
		pts = append(pts, samples[i].visit(i, n, 1, opts))
	}
	for i := n - 1; i >= 0; i-- {
		pts = append(pts, samples[i].visit(i, n, -1, opts))
	}
	return Outline{Points: pts}
}

// visit ages s and returns its outline vertex for index i of n on the given
// side (+1 forward, -1 backward).
func (s *Sample) visit(i, n int, side float64, opts OutlineOptions) gg.Point {
	// Runs from -1 at the newest sample towards 0 at the oldest.
	taper := float64(i-n) / float64(n) * opts.Taper
	off := s.Direction.Mul(taper)

	s.Age += opts.AgeStep
	return gg.Pt(
		s.Position.X+side*off.Y+s.Drift.X*s.Age,
		s.Position.Y+side*off.X+s.Drift.Y*s.Age,
	)
}

// Len returns the number of vertices.
func (o Outline) Len() int { return len(o.Points) }

// Empty reports whether the outline has no vertices.
func (o Outline) Empty() bool { return len(o.Points) == 0 }

// String renders the outline as SVG path data: "M x y L x y ... Z".
// An empty outline renders as the empty string.
func (o Outline) String() string {
	if len(o.Points) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(o.Points) * 24)
	for i, p := range o.Points {
		if i == 0 {
			sb.WriteString("M ")
		} else {
			sb.WriteString(" L ")
		}
		sb.WriteString(formatCoord(p.X))
		sb.WriteByte(' ')
		sb.WriteString(formatCoord(p.Y))
	}
	sb.WriteString(" Z")
	return sb.String()
}

// PathSink receives path commands. *gg.Context satisfies it.
type PathSink interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	DrawCircle(x, y, r float64)
}

// Trace appends the outline to dst as one closed subpath. An empty outline
// appends nothing.
func (o Outline) Trace(dst PathSink) {
	if len(o.Points) == 0 {
		return
	}
	for i, p := range o.Points {
		if i == 0 {
			dst.MoveTo(p.X, p.Y)
		} else {
			dst.LineTo(p.X, p.Y)
		}
	}
	dst.ClosePath()
}

// ParseOutline parses path data produced by Outline.String. Coordinates
// following M without an explicit L are treated as line-to, as in SVG.
func ParseOutline(d string) (Outline, error) {
	fields := strings.Fields(d)
	if len(fields) == 0 {
		return Outline{}, nil
	}
	if fields[0] != "M" {
		return Outline{}, fmt.Errorf("%w: must start with M, got %q", ErrBadOutline, fields[0])
	}

	var pts []gg.Point
	for i := 1; i < len(fields); {
		switch fields[i] {
		case "L":
			i++
			continue
		case "Z":
			if i != len(fields)-1 {
				return Outline{}, fmt.Errorf("%w: Z must be last", ErrBadOutline)
			}
			i++
			continue
		}
		if i+1 >= len(fields) {
			return Outline{}, fmt.Errorf("%w: dangling coordinate %q", ErrBadOutline, fields[i])
		}
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return Outline{}, fmt.Errorf("%w: %w", ErrBadOutline, err)
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return Outline{}, fmt.Errorf("%w: %w", ErrBadOutline, err)
		}
		pts = append(pts, gg.Pt(x, y))
		i += 2
	}
	return Outline{Points: pts}, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
