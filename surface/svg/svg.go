// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package svg writes a trail scene as a standalone SVG document.
package svg

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	trail "github.com/gogpu/ggtrail"
	"github.com/gogpu/ggtrail/surface"
)

func init() {
	surface.Register("svg", 5, func(cfg surface.Config) (surface.Backend, error) {
		return New(cfg), nil
	}, nil)
}

// Surface renders the scene to SVG markup on every Flush.
type Surface struct {
	*surface.Scene

	cfg surface.Config

	mu  sync.Mutex
	doc []byte
}

// New creates an SVG surface. If cfg.Output is set, every Flush writes the
// full document to it.
func New(cfg surface.Config) *Surface {
	return &Surface{Scene: surface.NewScene(), cfg: cfg}
}

// Flush renders the current scene into the document buffer and copies it
// to cfg.Output when set.
func (s *Surface) Flush() error {
	doc := Encode(s.Snapshot(), s.cfg)

	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()

	if s.cfg.Output == nil {
		return nil
	}
	if _, err := s.cfg.Output.Write(doc); err != nil {
		return fmt.Errorf("svg: write document: %w", err)
	}
	return nil
}

// Bytes returns the document produced by the last Flush.
func (s *Surface) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.doc...)
}

// WriteTo renders the current scene and writes it to w.
func (s *Surface) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(Encode(s.Snapshot(), s.cfg))
	return int64(n), err
}

// Close is a no-op; it exists to satisfy surface.Backend.
func (s *Surface) Close() error { return nil }

// Encode renders a snapshot as an SVG document sized by cfg.
func Encode(snap surface.Snapshot, cfg surface.Config) []byte {
	width, height := cfg.Width, cfg.Height
	var b bytes.Buffer
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		width, height, width, height)

	if cfg.Background.A > 0 {
		fmt.Fprintf(&b, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", surface.HexColor(cfg.Background))
	}
	if !snap.Outline.Empty() {
		fmt.Fprintf(&b, `  <path d="%s" fill="%s"/>`+"\n", snap.Outline.String(), surface.HexColor(snap.Fill))
	}
	for _, n := range snap.Nodes {
		writeNode(&b, n)
	}

	b.WriteString("</svg>\n")
	return b.Bytes()
}

func writeNode(b *bytes.Buffer, n surface.Node) {
	fill := surface.HexColor(n.Shape.Fill)
	tf := transformAttr(n.Transform)
	size := num(n.Shape.Size)

	switch n.Shape.Kind {
	case trail.ShapeCircle:
		fmt.Fprintf(b, `  <circle cx="0" cy="0" r="%s" fill="%s" transform="%s"/>`+"\n", size, fill, tf)
	case trail.ShapeSquare:
		fmt.Fprintf(b, `  <rect width="%s" height="%s" fill="%s" transform="%s"/>`+"\n", size, size, fill, tf)
	case trail.ShapeTriangle:
		pts := make([]string, 0, 3)
		for _, v := range n.Shape.Vertices() {
			pts = append(pts, num(v.X)+","+num(v.Y))
		}
		fmt.Fprintf(b, `  <polygon points="%s" fill="%s" transform="%s"/>`+"\n", strings.Join(pts, " "), fill, tf)
	}
}

// transformAttr matches trail.TransformMatrix: translate, rotate, scale.
func transformAttr(t trail.Transform) string {
	return "translate(" + num(t.X) + " " + num(t.Y) + ") rotate(" + num(t.Rotation) + ") scale(" + num(t.Scale) + ")"
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
