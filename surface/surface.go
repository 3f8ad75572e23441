// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"io"

	"github.com/gogpu/gg"
	trail "github.com/gogpu/ggtrail"
)

// Backend is a trail surface that presents frames.
//
// Backends are safe for concurrent use: the engine writes the outline from
// the frame loop while tween continuations remove shapes.
type Backend interface {
	trail.Surface

	// Flush presents the current scene. The engine calls it after every
	// outline write.
	Flush() error

	// Close releases all resources. Close is idempotent.
	Close() error
}

// Config holds backend creation parameters.
type Config struct {
	// Width and Height are the canvas size in pixels.
	Width, Height int

	// Background is painted before the trail. The zero value is transparent.
	Background gg.RGBA

	// Output receives encoded frames for backends that write documents.
	// It may be nil.
	Output io.Writer
}

// DefaultConfig returns a 800x600 transparent canvas.
func DefaultConfig() Config {
	return Config{Width: 800, Height: 600}
}
