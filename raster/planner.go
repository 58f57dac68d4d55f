// raster/planner.go
// Copyright(c) 2024 canvas contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package raster

import (
	"fmt"
	"slices"

	"github.com/inkwell/canvas/math"

	lru "github.com/hashicorp/golang-lru/v2"
)

type planKey struct {
	r    math.Rect
	w, h int32
}

// Planner splits rectangles into tiles, remembering recent results since
// the same canvas regions tend to be redrawn over and over.
type Planner struct {
	w, h  int32
	cache *lru.Cache[planKey, []math.Rect]
}

func NewPlanner(w, h int32, cacheSize int) (*Planner, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", w, h, ErrInvalidTileSize)
	}
	c, err := lru.New[planKey, []math.Rect](cacheSize)
	if err != nil {
		return nil, err
	}
	return &Planner{w: w, h: h, cache: c}, nil
}

func (p *Planner) TileSize() [2]int32 {
	return [2]int32{p.w, p.h}
}

// Plan returns the tiles covering r in row-major order. ErrNoTiles is
// returned if r is smaller than a tile in either dimension.
func (p *Planner) Plan(r math.Rect) ([]math.Rect, error) {
	key := planKey{r: r, w: p.w, h: p.h}
	if tiles, ok := p.cache.Get(key); ok {
		return slices.Clone(tiles), nil
	}

	tiles := r.Split(p.w, p.h)
	if len(tiles) == 0 {
		return nil, fmt.Errorf("%s with %dx%d tiles: %w", r, p.w, p.h, ErrNoTiles)
	}
	p.cache.Add(key, tiles)
	return slices.Clone(tiles), nil
}

// PlanOrWhole is like Plan but, if r is smaller than a tile in either
// dimension, tiles it as a single strip along that dimension instead of
// failing. Nothing is returned for an empty r.
func (p *Planner) PlanOrWhole(r math.Rect) []math.Rect {
	if r.Empty() {
		return nil
	}
	if tiles, err := p.Plan(r); err == nil {
		return tiles
	}
	return r.Split(min(p.w, r.Width()), min(p.h, r.Height()))
}

func (p *Planner) CachedPlans() int {
	return p.cache.Len()
}
