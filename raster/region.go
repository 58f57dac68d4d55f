// raster/region.go
// Copyright(c) 2024 canvas contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package raster

import (
	"sync"

	"github.com/inkwell/canvas/math"
)

// DirtyRegion accumulates the parts of the canvas that need to be
// re-rasterized. It is safe for concurrent use.
type DirtyRegion struct {
	mu     sync.Mutex
	bounds math.Rect
	dirty  bool
}

// Add marks r as needing to be redrawn. Empty rectangles are ignored.
func (d *DirtyRegion) Add(r math.Rect) {
	if r.Empty() {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.dirty {
		d.bounds = math.Union(d.bounds, r)
	} else {
		d.bounds, d.dirty = r, true
	}
}

// Bounds returns the bounding rectangle of everything added since the
// last Reset; the Boolean is false if nothing has been added.
func (d *DirtyRegion) Bounds() (math.Rect, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.bounds, d.dirty
}

// Take returns the current bounds and resets the region.
func (d *DirtyRegion) Take() (math.Rect, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	r, ok := d.bounds, d.dirty
	d.bounds, d.dirty = math.Rect{}, false
	return r, ok
}

func (d *DirtyRegion) Reset() {
	d.Take()
}

// Limits returns the on-screen area to rasterize for a damaged rectangle:
// it is grown so that each dimension is at least block pixels and is then
// clipped to the screen. The Boolean is false if nothing is left to draw.
func Limits(dirty math.Rect, screen [2]int32, block int32) (math.Rect, bool) {
	r := dirty.Stretch(block).ClipToBounds(screen)
	if !r.Valid() || r.Empty() {
		return math.Rect{}, false
	}
	return r, true
}
