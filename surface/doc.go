// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the rendering targets a trail engine draws into.
//
// A [Backend] is a [trail.Surface] that can also present a frame (Flush)
// and release its resources (Close). Backends share a [Scene], which keeps
// the current outline and the table of live decoration shapes, and differ
// only in how they present it:
//
//   - raster: rasterizes the scene into a gg.Context (PNG, image.Image)
//   - svg: writes a standalone SVG document
//   - record: records every call in memory, for tests
//   - remote: broadcasts the scene to websocket subscribers as JSON
//
// # Registry
//
// Backends register themselves from their package init, following the
// database/sql driver pattern:
//
//	import _ "github.com/gogpu/ggtrail/surface/raster"
//
//	b, err := surface.New("raster", surface.Config{Width: 640, Height: 480})
//
// Without a name, [NewBest] picks the highest-priority available backend.
package surface
