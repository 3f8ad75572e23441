// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"sync"

	"github.com/gogpu/gg"
	trail "github.com/gogpu/ggtrail"
)

// Tee is a Backend that forwards every call to several backends, so one
// engine can feed a raster preview and a document writer at once.
type Tee struct {
	backends []Backend

	mu      sync.Mutex
	next    trail.ShapeHandle
	handles map[trail.ShapeHandle][]trail.ShapeHandle
}

// NewTee creates a Tee over backends.
func NewTee(backends ...Backend) *Tee {
	return &Tee{
		backends: backends,
		handles:  make(map[trail.ShapeHandle][]trail.ShapeHandle),
	}
}

// SetOutline implements trail.Surface.
func (t *Tee) SetOutline(o trail.Outline, fill gg.RGBA) {
	for _, b := range t.backends {
		b.SetOutline(o, fill)
	}
}

// AddShape implements trail.Surface. The returned handle is the Tee's own;
// each backend's handle is tracked behind it.
func (t *Tee) AddShape(s trail.Shape) trail.ShapeHandle {
	hs := make([]trail.ShapeHandle, len(t.backends))
	for i, b := range t.backends {
		hs[i] = b.AddShape(s)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.next++
	t.handles[t.next] = hs
	return t.next
}

// SetShapeTransform implements trail.Surface.
func (t *Tee) SetShapeTransform(h trail.ShapeHandle, tr trail.Transform) {
	t.mu.Lock()
	hs, ok := t.handles[h]
	t.mu.Unlock()
	if !ok {
		return
	}
	for i, b := range t.backends {
		b.SetShapeTransform(hs[i], tr)
	}
}

// RemoveShape implements trail.Surface.
func (t *Tee) RemoveShape(h trail.ShapeHandle) {
	t.mu.Lock()
	hs, ok := t.handles[h]
	delete(t.handles, h)
	t.mu.Unlock()
	if !ok {
		return
	}
	for i, b := range t.backends {
		b.RemoveShape(hs[i])
	}
}

// Flush flushes every backend and joins their errors.
func (t *Tee) Flush() error {
	var errs []error
	for _, b := range t.backends {
		if err := b.Flush(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close closes every backend and joins their errors.
func (t *Tee) Close() error {
	var errs []error
	for _, b := range t.backends {
		if err := b.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
