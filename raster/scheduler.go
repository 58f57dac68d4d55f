// raster/scheduler.go
// Copyright(c) 2024 canvas contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package raster

import (
	"context"
	"log/slog"
	"time"

	"github.com/inkwell/canvas/log"
	"github.com/inkwell/canvas/math"
	"github.com/inkwell/canvas/platform"

	"golang.org/x/sync/errgroup"
)

// TileFunc rasterizes a single tile.
type TileFunc func(ctx context.Context, tile math.Rect) error

// Scheduler runs raster passes over a region of the canvas, tile by tile,
// with a bounded number of tiles in flight.
type Scheduler struct {
	cfg     Config
	planner *Planner
	workers int
	lg      *log.Logger
}

// NewScheduler returns a Scheduler for the given configuration. If mem is
// non-nil, the number of workers is further limited so that concurrently
// rasterized tile buffers fit in cfg.MemoryFraction of the reported
// physical memory.
func NewScheduler(cfg Config, mem platform.MemoryQuerier, lg *log.Logger) (*Scheduler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	planner, err := NewPlanner(cfg.TileWidth, cfg.TileHeight, cfg.PlanCacheSize)
	if err != nil {
		return nil, err
	}

	workers := cfg.Workers
	if workers == 0 {
		workers = platform.NumCPU()
	}
	if mem != nil {
		if total, err := mem.TotalMemory(); err != nil {
			lg.Warnf("unable to query system memory; not limiting workers: %v", err)
		} else {
			budget := uint64(float64(total) * cfg.MemoryFraction)
			maxTiles := budget / cfg.TileBytes()
			workers = int(max(1, min(uint64(workers), maxTiles)))
			lg.Info("raster memory budget",
				slog.Uint64("total", total),
				slog.Uint64("budget", budget),
				slog.Int("workers", workers))
		}
	}

	return &Scheduler{
		cfg:     cfg,
		planner: planner,
		workers: workers,
		lg:      lg,
	}, nil
}

func (s *Scheduler) Workers() int {
	return s.workers
}

func (s *Scheduler) Planner() *Planner {
	return s.planner
}

// Run calls fn for every tile covering r, with at most Workers() calls in
// flight. The first error returned by fn cancels the context passed to
// the remaining calls and is returned.
func (s *Scheduler) Run(ctx context.Context, r math.Rect, fn TileFunc) error {
	tiles := s.planner.PlanOrWhole(r)
	if len(tiles) == 0 {
		return nil
	}

	start := time.Now()
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(s.workers)
	for _, tile := range tiles {
		if gctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			return fn(gctx, tile)
		})
	}

	if err := eg.Wait(); err != nil {
		s.lg.Warn("raster pass failed", slog.String("rect", r.String()), slog.Any("error", err))
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.lg.Debug("raster pass",
		slog.String("rect", r.String()),
		slog.Int("tiles", len(tiles)),
		slog.Duration("elapsed", time.Since(start)))
	return nil
}

// RunDirty rasterizes the on-screen limits of everything accumulated in
// d, resetting it. Nothing is done if d is clean or entirely off-screen.
func (s *Scheduler) RunDirty(ctx context.Context, d *DirtyRegion, screen [2]int32, fn TileFunc) error {
	dirty, ok := d.Take()
	if !ok {
		return nil
	}
	r, ok := Limits(dirty, screen, s.cfg.MinBlock)
	if !ok {
		s.lg.Debug("dirty region off-screen", slog.String("rect", dirty.String()))
		return nil
	}
	return s.Run(ctx, r, fn)
}
