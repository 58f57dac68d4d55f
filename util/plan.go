// util/plan.go
// Copyright(c) 2024 canvas contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"errors"
	"fmt"
	"io"

	"github.com/inkwell/canvas/math"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

const PlanVersion = 1

var ErrUnknownPlanVersion = errors.New("unknown tile plan version")

// Plan records how a canvas region was tiled, so that tiling decisions
// can be inspected offline.
type Plan struct {
	Version      int
	Source       math.Rect
	TileW, TileH int32
	Tiles        []math.Rect
}

func MakePlan(src math.Rect, w, h int32, tiles []math.Rect) Plan {
	return Plan{Version: PlanVersion, Source: src, TileW: w, TileH: h, Tiles: tiles}
}

// StorePlan writes the plan to w as zstd-compressed msgpack.
func StorePlan(w io.Writer, p Plan) error {
	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return err
	}

	if err := msgpack.NewEncoder(zw).Encode(p); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

func LoadPlan(r io.Reader) (Plan, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return Plan{}, err
	}
	defer zr.Close()

	var p Plan
	if err := msgpack.NewDecoder(zr).Decode(&p); err != nil {
		return Plan{}, err
	}
	if p.Version != PlanVersion {
		return Plan{}, fmt.Errorf("%d: %w", p.Version, ErrUnknownPlanVersion)
	}
	return p, nil
}
