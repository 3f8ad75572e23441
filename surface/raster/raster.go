// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster rasterizes a trail scene with gg.
package raster

import (
	"fmt"
	"image"
	"io"
	"math"
	"sync"

	"github.com/gogpu/gg"
	trail "github.com/gogpu/ggtrail"
	"github.com/gogpu/ggtrail/surface"
)

var _ trail.PathSink = (*gg.Context)(nil)

func init() {
	surface.Register("raster", 10, func(cfg surface.Config) (surface.Backend, error) {
		return New(cfg)
	}, nil)
}

// Surface draws the scene into a gg.Context on every Flush.
type Surface struct {
	*surface.Scene

	cfg surface.Config

	mu     sync.Mutex
	dc     *gg.Context
	closed bool
}

// New creates a raster surface of cfg.Width x cfg.Height pixels.
func New(cfg surface.Config) (*Surface, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("raster: invalid size %dx%d", cfg.Width, cfg.Height)
	}
	return &Surface{
		Scene: surface.NewScene(),
		cfg:   cfg,
		dc:    gg.NewContext(cfg.Width, cfg.Height),
	}, nil
}

// Context returns the underlying drawing context, for overlays drawn after
// Render. Callers must not use it concurrently with Flush.
func (s *Surface) Context() *gg.Context { return s.dc }

// Flush renders the current scene. If cfg.Output is set, the frame is also
// encoded to it as PNG.
func (s *Surface) Flush() error {
	if err := s.Render(); err != nil {
		return err
	}
	if s.cfg.Output == nil {
		return nil
	}
	return s.EncodePNG(s.cfg.Output)
}

// Render clears the canvas and paints the outline and shapes.
func (s *Surface) Render() error {
	snap := s.Snapshot()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return fmt.Errorf("raster: render on closed surface")
	}

	s.dc.ClearWithColor(s.cfg.Background)
	s.dc.Identity()

	if !snap.Outline.Empty() {
		setFill(s.dc, snap.Fill)
		snap.Outline.Trace(s.dc)
		if err := s.dc.Fill(); err != nil {
			return fmt.Errorf("raster: fill outline: %w", err)
		}
	}

	for _, n := range snap.Nodes {
		if err := drawNode(s.dc, n); err != nil {
			return err
		}
	}
	return nil
}

// drawNode paints one decoration with its transform. Shapes scaled to
// nothing are skipped.
func drawNode(dc *gg.Context, n surface.Node) error {
	if n.Transform.Scale == 0 || n.Shape.Size == 0 {
		return nil
	}

	dc.Push()
	defer dc.Pop()

	dc.Transform(trail.TransformMatrix(n.Transform))
	setFill(dc, n.Shape.Fill)
	n.Shape.Trace(dc)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("raster: fill %s: %w", n.Shape.Kind, err)
	}
	return nil
}

func setFill(dc *gg.Context, c gg.RGBA) {
	dc.SetRGBA(c.R, c.G, c.B, c.A)
}

// Image returns the last rendered frame.
func (s *Surface) Image() image.Image {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dc.Image()
}

// EncodePNG writes the last rendered frame as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dc.EncodePNG(w)
}

// SavePNG writes the last rendered frame to path.
func (s *Surface) SavePNG(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dc.SavePNG(path)
}

// Coverage returns the share of pixels with non-zero alpha, in [0, 1].
// Useful to check that something was drawn on a transparent canvas.
func (s *Surface) Coverage() float64 {
	img := s.Image()
	b := img.Bounds()
	total := b.Dx() * b.Dy()
	if total == 0 {
		return 0
	}
	painted := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0 {
				painted++
			}
		}
	}
	return math.Min(1, float64(painted)/float64(total))
}

// Close releases the drawing context. Close is idempotent.
func (s *Surface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.dc.Close()
}
