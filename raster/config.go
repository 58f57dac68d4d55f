// raster/config.go
// Copyright(c) 2024 canvas contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package raster

import (
	"errors"
	"fmt"
)

var (
	ErrNoTiles         = errors.New("rectangle is smaller than a single tile")
	ErrInvalidTileSize = errors.New("tile dimensions must be positive")
	ErrInvalidConfig   = errors.New("invalid raster configuration")
)

// Config controls how the canvas is carved up for rasterization.
type Config struct {
	TileWidth, TileHeight int32
	// MinBlock is the smallest extent, in pixels, of the raster limits
	// computed for a damaged region.
	MinBlock int32
	// Workers is the maximum number of tiles rasterized concurrently; if
	// zero, the number of CPUs is used.
	Workers int
	// MemoryFraction is the fraction of physical memory that in-flight
	// tile buffers may occupy; it further limits the number of workers.
	MemoryFraction float64
	BytesPerPixel  int
	PlanCacheSize  int
}

func DefaultConfig() Config {
	return Config{
		TileWidth:      256,
		TileHeight:     256,
		MinBlock:       32,
		MemoryFraction: 0.25,
		BytesPerPixel:  4,
		PlanCacheSize:  64,
	}
}

func (c Config) Validate() error {
	if c.TileWidth <= 0 || c.TileHeight <= 0 {
		return fmt.Errorf("%dx%d: %w", c.TileWidth, c.TileHeight, ErrInvalidTileSize)
	}
	if c.MinBlock < 0 {
		return fmt.Errorf("%w: negative minimum block size %d", ErrInvalidConfig, c.MinBlock)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: negative worker count %d", ErrInvalidConfig, c.Workers)
	}
	if c.MemoryFraction <= 0 || c.MemoryFraction > 1 {
		return fmt.Errorf("%w: memory fraction %g not in (0, 1]", ErrInvalidConfig, c.MemoryFraction)
	}
	if c.BytesPerPixel <= 0 {
		return fmt.Errorf("%w: bytes per pixel must be positive", ErrInvalidConfig)
	}
	if c.PlanCacheSize <= 0 {
		return fmt.Errorf("%w: plan cache size must be positive", ErrInvalidConfig)
	}
	return nil
}

// TileBytes returns the size of the pixel buffer for a single full tile.
func (c Config) TileBytes() uint64 {
	return uint64(c.TileWidth) * uint64(c.TileHeight) * uint64(c.BytesPerPixel)
}
