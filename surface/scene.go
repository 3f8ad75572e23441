// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"sync"

	"github.com/gogpu/gg"
	trail "github.com/gogpu/ggtrail"
)

// Node is a live decoration on a scene.
type Node struct {
	Handle    trail.ShapeHandle
	Shape     trail.Shape
	Transform trail.Transform
}

// Snapshot is an immutable copy of a scene.
type Snapshot struct {
	Outline trail.Outline
	Fill    gg.RGBA

	// Nodes are in insertion order, which is also paint order.
	Nodes []Node
}

// Scene is the retained state shared by all backends: one outline and a
// table of decoration shapes. It implements trail.Surface and is safe for
// concurrent use.
type Scene struct {
	mu      sync.Mutex
	outline trail.Outline
	fill    gg.RGBA
	next    trail.ShapeHandle
	nodes   map[trail.ShapeHandle]*Node
	order   []trail.ShapeHandle
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{nodes: make(map[trail.ShapeHandle]*Node)}
}

// SetOutline replaces the trail geometry.
func (s *Scene) SetOutline(o trail.Outline, fill gg.RGBA) {
	s.mu.Lock()
	s.outline = o
	s.fill = fill
	s.mu.Unlock()
}

// AddShape adds a shape at the identity transform. Handles start at 1 and
// are never reused.
func (s *Scene) AddShape(sh trail.Shape) trail.ShapeHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	h := s.next
	s.nodes[h] = &Node{Handle: h, Shape: sh, Transform: trail.Transform{Scale: 1}}
	s.order = append(s.order, h)
	return h
}

// SetShapeTransform updates a live shape. Unknown handles are ignored.
func (s *Scene) SetShapeTransform(h trail.ShapeHandle, t trail.Transform) {
	s.mu.Lock()
	if n, ok := s.nodes[h]; ok {
		n.Transform = t
	}
	s.mu.Unlock()
}

// RemoveShape deletes a shape. Unknown handles are ignored.
func (s *Scene) RemoveShape(h trail.ShapeHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.nodes[h]; !ok {
		return
	}
	delete(s.nodes, h)
	for i, oh := range s.order {
		if oh == h {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of live shapes.
func (s *Scene) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.nodes)
}

// Snapshot copies the current scene.
func (s *Scene) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Outline: trail.Outline{Points: append([]gg.Point(nil), s.outline.Points...)},
		Fill:    s.fill,
		Nodes:   make([]Node, 0, len(s.order)),
	}
	for _, h := range s.order {
		snap.Nodes = append(snap.Nodes, *s.nodes[h])
	}
	return snap
}
