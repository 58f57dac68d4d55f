// raster/raster_test.go
// Copyright(c) 2024 canvas contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package raster

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/inkwell/canvas/math"
	"github.com/inkwell/canvas/platform"
)

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config: unexpected error %v", err)
	}

	type testCase struct {
		name   string
		modify func(*Config)
		err    error
	}
	for _, tc := range []testCase{
		{name: "ZeroTileWidth", modify: func(c *Config) { c.TileWidth = 0 }, err: ErrInvalidTileSize},
		{name: "NegativeTileHeight", modify: func(c *Config) { c.TileHeight = -4 }, err: ErrInvalidTileSize},
		{name: "NegativeWorkers", modify: func(c *Config) { c.Workers = -1 }, err: ErrInvalidConfig},
		{name: "MemoryFraction", modify: func(c *Config) { c.MemoryFraction = 1.5 }, err: ErrInvalidConfig},
		{name: "BytesPerPixel", modify: func(c *Config) { c.BytesPerPixel = 0 }, err: ErrInvalidConfig},
		{name: "PlanCache", modify: func(c *Config) { c.PlanCacheSize = 0 }, err: ErrInvalidConfig},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c := DefaultConfig()
			tc.modify(&c)
			if err := c.Validate(); !errors.Is(err, tc.err) {
				t.Errorf("got %v, expected %v", err, tc.err)
			}
		})
	}
}

func TestDirtyRegion(t *testing.T) {
	var d DirtyRegion
	if _, ok := d.Bounds(); ok {
		t.Errorf("new region should be clean")
	}

	d.Add(math.RectFromXYWH(10, 10, 5, 5))
	d.Add(math.Rect{}) // ignored
	d.Add(math.RectFromXYWH(40, 0, 10, 10))
	r, ok := d.Bounds()
	if !ok || r != (math.Rect{Left: 10, Top: 0, Right: 50, Bottom: 15}) {
		t.Errorf("got %s (%v), expected [10,0]-[50,15]", r, ok)
	}

	if tr, ok := d.Take(); !ok || tr != r {
		t.Errorf("Take: got %s (%v)", tr, ok)
	}
	if _, ok := d.Bounds(); ok {
		t.Errorf("region should be clean after Take")
	}

	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.Add(math.RectFromXYWH(int32(i), int32(i), 1, 1))
		}()
	}
	wg.Wait()
	if r, ok := d.Bounds(); !ok || r != math.RectFromXYWH(0, 0, 32, 32) {
		t.Errorf("concurrent adds: got %s", r)
	}
	d.Reset()
	if _, ok := d.Bounds(); ok {
		t.Errorf("region should be clean after Reset")
	}
}

func TestLimits(t *testing.T) {
	screen := [2]int32{800, 600}
	type testCase struct {
		name     string
		dirty    math.Rect
		expected math.Rect
		ok       bool
	}
	for _, tc := range []testCase{
		{name: "Large", dirty: math.RectFromXYWH(100, 100, 200, 200), expected: math.RectFromXYWH(100, 100, 200, 200), ok: true},
		{name: "Small", dirty: math.RectFromXYWH(100, 100, 2, 2), expected: math.Rect{Left: 84, Top: 84, Right: 118, Bottom: 118}, ok: true},
		{name: "Corner", dirty: math.RectFromXYWH(0, 0, 1, 1), expected: math.Rect{Left: 0, Top: 0, Right: 17, Bottom: 17}, ok: true},
		{name: "PartlyOff", dirty: math.Rect{Left: 700, Top: -50, Right: 900, Bottom: 50}, expected: math.Rect{Left: 700, Top: 0, Right: 800, Bottom: 50}, ok: true},
		{name: "OffScreen", dirty: math.RectFromXYWH(1000, 1000, 100, 100)},
		{name: "Above", dirty: math.RectFromXYWH(10, -300, 100, 100)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r, ok := Limits(tc.dirty, screen, 32)
			if ok != tc.ok {
				t.Fatalf("got ok=%v, expected %v (%s)", ok, tc.ok, r)
			}
			if ok && r != tc.expected {
				t.Errorf("got %s, expected %s", r, tc.expected)
			}
		})
	}
}

func TestPlanner(t *testing.T) {
	if _, err := NewPlanner(0, 64, 8); !errors.Is(err, ErrInvalidTileSize) {
		t.Errorf("expected ErrInvalidTileSize, got %v", err)
	}

	p, err := NewPlanner(30, 30, 8)
	if err != nil {
		t.Fatal(err)
	}

	src := math.RectFromXYWH(0, 0, 100, 100)
	tiles, err := p.Plan(src)
	if err != nil {
		t.Fatal(err)
	}
	if len(tiles) != 16 {
		t.Errorf("got %d tiles, expected 16", len(tiles))
	}

	// Modifying the returned slice must not affect the cached plan.
	tiles[0] = math.Rect{}
	again, _ := p.Plan(src)
	if again[0] != math.RectFromXYWH(0, 0, 30, 30) {
		t.Errorf("cached plan was modified: %s", again[0])
	}
	if p.CachedPlans() != 1 {
		t.Errorf("got %d cached plans, expected 1", p.CachedPlans())
	}

	if _, err := p.Plan(math.RectFromXYWH(0, 0, 20, 100)); !errors.Is(err, ErrNoTiles) {
		t.Errorf("expected ErrNoTiles, got %v", err)
	}

	strip := p.PlanOrWhole(math.RectFromXYWH(0, 0, 20, 100))
	if len(strip) != 4 || strip[0] != math.RectFromXYWH(0, 0, 20, 30) || strip[3] != math.RectFromXYWH(0, 90, 20, 10) {
		t.Errorf("PlanOrWhole strip: got %v", strip)
	}
	if small := p.PlanOrWhole(math.RectFromXYWH(5, 5, 3, 3)); len(small) != 1 || small[0] != math.RectFromXYWH(5, 5, 3, 3) {
		t.Errorf("PlanOrWhole small: got %v", small)
	}
	if none := p.PlanOrWhole(math.Rect{}); len(none) != 0 {
		t.Errorf("PlanOrWhole empty: got %v", none)
	}
}

func TestSchedulerWorkers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Workers = 8

	s, err := NewScheduler(cfg, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if s.Workers() != 8 {
		t.Errorf("got %d workers, expected 8", s.Workers())
	}

	// 256x256x4 = 256KB per tile; a quarter of 1MB fits a single tile.
	s, err = NewScheduler(cfg, platform.FixedMemory(1), nil)
	if err != nil {
		t.Fatal(err)
	}
	if s.Workers() != 1 {
		t.Errorf("got %d workers, expected 1", s.Workers())
	}

	// Even with no memory to speak of, we still make progress.
	s, err = NewScheduler(cfg, platform.FixedMemory(0), nil)
	if err != nil {
		t.Fatal(err)
	}
	if s.Workers() != 1 {
		t.Errorf("got %d workers, expected 1", s.Workers())
	}

	s, err = NewScheduler(cfg, platform.FixedMemory(4096), nil)
	if err != nil {
		t.Fatal(err)
	}
	if s.Workers() != 8 {
		t.Errorf("got %d workers, expected 8", s.Workers())
	}

	cfg.TileWidth = 0
	if _, err := NewScheduler(cfg, nil, nil); !errors.Is(err, ErrInvalidTileSize) {
		t.Errorf("expected ErrInvalidTileSize, got %v", err)
	}
}

func TestSchedulerRun(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TileWidth, cfg.TileHeight = 30, 30
	cfg.Workers = 3
	s, err := NewScheduler(cfg, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	var mu sync.Mutex
	var seen []math.Rect
	var area, inFlight, maxInFlight atomic.Int32
	err = s.Run(context.Background(), math.RectFromXYWH(0, 0, 100, 100), func(ctx context.Context, tile math.Rect) error {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			m := maxInFlight.Load()
			if n <= m || maxInFlight.CompareAndSwap(m, n) {
				break
			}
		}

		area.Add(tile.Area())
		mu.Lock()
		seen = append(seen, tile)
		mu.Unlock()
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(seen) != 16 {
		t.Errorf("got %d tiles, expected 16", len(seen))
	}
	if area.Load() != 10000 {
		t.Errorf("tile areas sum to %d, expected 10000", area.Load())
	}
	if maxInFlight.Load() > 3 {
		t.Errorf("%d tiles in flight, expected at most 3", maxInFlight.Load())
	}
}

func TestSchedulerRunError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TileWidth, cfg.TileHeight = 10, 10
	cfg.Workers = 1
	s, err := NewScheduler(cfg, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	errBoom := errors.New("boom")
	var calls atomic.Int32
	err = s.Run(context.Background(), math.RectFromXYWH(0, 0, 100, 100), func(ctx context.Context, tile math.Rect) error {
		if calls.Add(1) == 3 {
			return errBoom
		}
		return nil
	})
	if !errors.Is(err, errBoom) {
		t.Errorf("got %v, expected %v", err, errBoom)
	}
	if calls.Load() >= 100 {
		t.Errorf("all %d tiles were run despite the error", calls.Load())
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = s.Run(ctx, math.RectFromXYWH(0, 0, 100, 100), func(ctx context.Context, tile math.Rect) error {
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, expected context.Canceled", err)
	}
}

func TestSchedulerRunDirty(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TileWidth, cfg.TileHeight = 64, 64
	cfg.Workers = 2
	s, err := NewScheduler(cfg, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	var d DirtyRegion
	var count atomic.Int32
	fn := func(ctx context.Context, tile math.Rect) error {
		count.Add(1)
		return nil
	}

	if err := s.RunDirty(context.Background(), &d, [2]int32{640, 480}, fn); err != nil || count.Load() != 0 {
		t.Errorf("clean region: err %v, %d tiles", err, count.Load())
	}

	d.Add(math.RectFromXYWH(0, 0, 128, 64))
	d.Add(math.RectFromXYWH(0, 64, 10, 64))
	if err := s.RunDirty(context.Background(), &d, [2]int32{640, 480}, fn); err != nil {
		t.Fatal(err)
	}
	if count.Load() != 4 {
		t.Errorf("got %d tiles, expected 4", count.Load())
	}
	if _, ok := d.Bounds(); ok {
		t.Errorf("region should be clean after RunDirty")
	}

	count.Store(0)
	d.Add(math.RectFromXYWH(1000, 1000, 10, 10))
	if err := s.RunDirty(context.Background(), &d, [2]int32{640, 480}, fn); err != nil || count.Load() != 0 {
		t.Errorf("off-screen region: err %v, %d tiles", err, count.Load())
	}
}
