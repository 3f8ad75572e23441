// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package record provides a surface that records every call made to it.
//
// It is the backend of choice for tests and for replaying a session onto
// another surface.
package record

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg"
	trail "github.com/gogpu/ggtrail"
	"github.com/gogpu/ggtrail/surface"
)

func init() {
	surface.Register("record", 1, func(surface.Config) (surface.Backend, error) {
		return New(), nil
	}, nil)
}

// Kind identifies a recorded surface call.
type Kind uint8

const (
	SetOutline Kind = iota
	AddShape
	SetShapeTransform
	RemoveShape
	Flush
)

// String returns the method name.
func (k Kind) String() string {
	switch k {
	case SetOutline:
		return "SetOutline"
	case AddShape:
		return "AddShape"
	case SetShapeTransform:
		return "SetShapeTransform"
	case RemoveShape:
		return "RemoveShape"
	case Flush:
		return "Flush"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Command is one recorded call. Only the fields relevant to Kind are set.
type Command struct {
	Kind      Kind
	Outline   trail.Outline
	Fill      gg.RGBA
	Shape     trail.Shape
	Handle    trail.ShapeHandle
	Transform trail.Transform
}

// Surface records commands while also maintaining a live scene.
type Surface struct {
	*surface.Scene

	mu       sync.Mutex
	commands []Command
}

// New creates an empty recorder.
func New() *Surface {
	return &Surface{Scene: surface.NewScene()}
}

func (s *Surface) record(c Command) {
	s.mu.Lock()
	s.commands = append(s.commands, c)
	s.mu.Unlock()
}

// SetOutline implements trail.Surface.
func (s *Surface) SetOutline(o trail.Outline, fill gg.RGBA) {
	s.Scene.SetOutline(o, fill)
	s.record(Command{Kind: SetOutline, Outline: o, Fill: fill})
}

// AddShape implements trail.Surface.
func (s *Surface) AddShape(sh trail.Shape) trail.ShapeHandle {
	h := s.Scene.AddShape(sh)
	s.record(Command{Kind: AddShape, Shape: sh, Handle: h})
	return h
}

// SetShapeTransform implements trail.Surface.
func (s *Surface) SetShapeTransform(h trail.ShapeHandle, t trail.Transform) {
	s.Scene.SetShapeTransform(h, t)
	s.record(Command{Kind: SetShapeTransform, Handle: h, Transform: t})
}

// RemoveShape implements trail.Surface.
func (s *Surface) RemoveShape(h trail.ShapeHandle) {
	s.Scene.RemoveShape(h)
	s.record(Command{Kind: RemoveShape, Handle: h})
}

// Flush records a frame boundary.
func (s *Surface) Flush() error {
	s.record(Command{Kind: Flush})
	return nil
}

// Close is a no-op.
func (s *Surface) Close() error { return nil }

// Commands returns a copy of the recorded commands.
func (s *Surface) Commands() []Command {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Command(nil), s.commands...)
}

// Count returns how many commands of kind k were recorded.
func (s *Surface) Count(k Kind) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, c := range s.commands {
		if c.Kind == k {
			n++
		}
	}
	return n
}

// LastOutline returns the most recently written outline.
func (s *Surface) LastOutline() (trail.Outline, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(s.commands) - 1; i >= 0; i-- {
		if s.commands[i].Kind == SetOutline {
			return s.commands[i].Outline, true
		}
	}
	return trail.Outline{}, false
}

// Reset drops the recorded commands. The live scene is kept.
func (s *Surface) Reset() {
	s.mu.Lock()
	s.commands = nil
	s.mu.Unlock()
}

// Replay issues the recorded commands against dst. Handles are remapped to
// the ones dst returns. Flush commands flush dst when it is a trail.Flusher.
func (s *Surface) Replay(dst trail.Surface) error {
	handles := make(map[trail.ShapeHandle]trail.ShapeHandle)
	for _, c := range s.Commands() {
		switch c.Kind {
		case SetOutline:
			dst.SetOutline(c.Outline, c.Fill)
		case AddShape:
			handles[c.Handle] = dst.AddShape(c.Shape)
		case SetShapeTransform:
			if h, ok := handles[c.Handle]; ok {
				dst.SetShapeTransform(h, c.Transform)
			}
		case RemoveShape:
			if h, ok := handles[c.Handle]; ok {
				dst.RemoveShape(h)
				delete(handles, c.Handle)
			}
		case Flush:
			if f, ok := dst.(trail.Flusher); ok {
				if err := f.Flush(); err != nil {
					return fmt.Errorf("record: replay flush: %w", err)
				}
			}
		}
	}
	return nil
}
