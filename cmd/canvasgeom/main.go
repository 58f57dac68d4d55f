// cmd/canvasgeom/main.go
// Copyright(c) 2024 canvas contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// canvasgeom exercises the canvas geometry routines from the command line
// for debugging tiling and hit-testing decisions.
//
// Usage:
//
//	canvasgeom -rect 0,0,1000,700 -tile 256x256 tiles
//	canvasgeom -rect 0,0,1000,700 -tile 256x256 -o plan.msgpack.zst tiles
//	canvasgeom -plan plan.msgpack.zst show
//	canvasgeom -rect 630,470,4,4 -screen 640x480 limits
//	canvasgeom -seg 0,0,10,0,5,-5,5,5 intersect
//	canvasgeom -seg 0,0,10,0 -point 15,3 closest
//	canvasgeom -stroke 0,0,10,0,10,10 -radius 2 -point 11,4 hit
//	canvasgeom -stroke 0,0,10,0,10,10 -seg 5,-5,5,5 hit
//	canvasgeom meminfo
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/inkwell/canvas/hittest"
	"github.com/inkwell/canvas/log"
	"github.com/inkwell/canvas/math"
	"github.com/inkwell/canvas/platform"
	"github.com/inkwell/canvas/raster"
	"github.com/inkwell/canvas/util"

	"github.com/goforj/godump"
)

var (
	logLevel  = flag.String("loglevel", "info", "Logging level: debug, info, warn, error")
	logDir    = flag.String("logdir", "", "Log file directory")
	rectArg   = flag.String("rect", "0,0,1024,768", "Source rectangle as x,y,w,h")
	tileArg   = flag.String("tile", "256x256", "Tile size as WxH")
	screen    = flag.String("screen", "1920x1080", "Screen size as WxH")
	block     = flag.Int("block", 32, "Minimum raster block size")
	workers   = flag.Int("workers", 0, "Maximum tiles rasterized concurrently (0: number of CPUs)")
	output    = flag.String("o", "", "Write the tile plan to this file")
	planFile  = flag.String("plan", "", "Tile plan file to read")
	dump      = flag.Bool("dump", false, "Dump the tile plan structure")
	segArg    = flag.String("seg", "", "Segment endpoints as ax,ay,bx,by[,ux,uy,vx,vy]")
	pointArg  = flag.String("point", "", "Point as x,y")
	strokeArg = flag.String("stroke", "", "Stroke polyline as x0,y0,x1,y1,...")
	radius    = flag.Int("radius", 2, "Stroke brush radius")
)

func main() {
	flag.Parse()

	usage := func() {
		fmt.Fprintf(os.Stderr, "usage: canvasgeom [flags] [tiles|show|limits|intersect|closest|hit|meminfo]...\nwhere [flags] may be:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}
	if flag.NArg() == 0 {
		usage()
	}

	lg := log.New(*logLevel, *logDir)

	for _, cmd := range flag.Args() {
		var err error
		switch cmd {
		case "tiles":
			err = runTiles(lg)
		case "show":
			err = runShow()
		case "limits":
			err = runLimits()
		case "intersect":
			err = runIntersect()
		case "closest":
			err = runClosest()
		case "hit":
			err = runHit()
		case "meminfo":
			err = runMeminfo()
		default:
			usage()
		}

		if err != nil {
			lg.Error("command failed", slog.String("command", cmd), slog.Any("error", err))
			fmt.Fprintf(os.Stderr, "%s: %v\n", cmd, err)
			os.Exit(1)
		}
	}
}

func runTiles(lg *log.Logger) error {
	src, err := parseRect(*rectArg)
	if err != nil {
		return err
	}
	sz, err := parseSize(*tileArg)
	if err != nil {
		return err
	}

	cfg := raster.DefaultConfig()
	cfg.TileWidth, cfg.TileHeight = sz[0], sz[1]
	cfg.MinBlock = int32(*block)
	cfg.Workers = *workers
	s, err := raster.NewScheduler(cfg, platform.SystemMemory{}, lg)
	if err != nil {
		return err
	}

	tiles, err := s.Planner().Plan(src)
	if errors.Is(err, raster.ErrNoTiles) {
		fmt.Printf("%s is smaller than a %dx%d tile; no tiles\n", src, sz[0], sz[1])
		return nil
	} else if err != nil {
		return err
	}

	fmt.Printf("Source %s, %dx%d tiles, %d workers\n", src, sz[0], sz[1], s.Workers())
	// Do a dry run through the scheduler to check the tiles cover the
	// source exactly.
	var area atomic.Int64
	err = s.Run(context.Background(), src, func(ctx context.Context, tile math.Rect) error {
		area.Add(int64(tile.Area()))
		return nil
	})
	if err != nil {
		return err
	}

	for i, t := range tiles {
		fmt.Printf("%4d %s %dx%d\n", i, t, t.Width(), t.Height())
	}
	fmt.Printf("%d tiles, total area %d (source %d)\n", len(tiles), area.Load(), src.Area())

	plan := util.MakePlan(src, sz[0], sz[1], tiles)
	if *dump {
		godump.Fdump(os.Stdout, plan)
	}
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			return err
		}
		defer f.Close()

		if err := util.StorePlan(f, plan); err != nil {
			return err
		}
		lg.Info("wrote tile plan", slog.String("path", *output), slog.Int("tiles", len(tiles)))
	}
	return nil
}

func runShow() error {
	if *planFile == "" {
		return errors.New("no -plan file given")
	}
	f, err := os.Open(*planFile)
	if err != nil {
		return err
	}
	defer f.Close()

	plan, err := util.LoadPlan(f)
	if err != nil {
		return err
	}

	if *dump {
		godump.Fdump(os.Stdout, plan)
		return nil
	}
	fmt.Printf("Source %s, %dx%d tiles\n", plan.Source, plan.TileW, plan.TileH)
	for i, t := range plan.Tiles {
		fmt.Printf("%4d %s\n", i, t)
	}
	return nil
}

func runLimits() error {
	r, err := parseRect(*rectArg)
	if err != nil {
		return err
	}
	sz, err := parseSize(*screen)
	if err != nil {
		return err
	}

	if lim, ok := raster.Limits(r, sz, int32(*block)); ok {
		fmt.Printf("%s -> %s\n", r, lim)
	} else {
		fmt.Printf("%s is off-screen\n", r)
	}
	return nil
}

func runIntersect() error {
	v, err := parseInts(*segArg, 8)
	if err != nil {
		return err
	}
	a, b := [2]int32{v[0], v[1]}, [2]int32{v[2], v[3]}
	u, w := [2]int32{v[4], v[5]}, [2]int32{v[6], v[7]}

	if p, ok := math.IntersectSegments(a, b, u, w); ok {
		fmt.Printf("hit at (%g, %g)\n", p[0], p[1])
	} else {
		fmt.Println("no hit")
	}
	return nil
}

func runClosest() error {
	v, err := parseInts(*segArg, 4)
	if err != nil {
		return err
	}
	pv, err := parseInts(*pointArg, 2)
	if err != nil {
		return err
	}
	a, b, p := [2]int32{v[0], v[1]}, [2]int32{v[2], v[3]}, [2]int32{pv[0], pv[1]}

	ab := math.ToFloat2(math.Sub2i(b, a))
	c, t, err := math.ClosestPointOnSegment2f(a, b, ab, math.Dot(ab, ab), p)
	if err != nil {
		return err
	}
	fmt.Printf("closest (%g, %g) t=%g distance %g\n", c[0], c[1], t, math.Distance2f(c, math.ToFloat2(p)))
	return nil
}

func runHit() error {
	pts, err := parseStroke(*strokeArg)
	if err != nil {
		return err
	}
	s := hittest.Stroke{Points: pts, Radius: int32(*radius)}
	if b, ok := s.Bounds(); ok {
		fmt.Printf("stroke bounds %s\n", b)
	}

	if *pointArg != "" {
		pv, err := parseInts(*pointArg, 2)
		if err != nil {
			return err
		}
		p := [2]int32{pv[0], pv[1]}
		d, _ := s.Distance(p)
		if _, ok := hittest.PickStroke([]hittest.Stroke{s}, p); ok {
			fmt.Printf("(%d, %d) hits the stroke, distance %g\n", p[0], p[1], d)
		} else {
			fmt.Printf("(%d, %d) misses the stroke, distance %g\n", p[0], p[1], d)
		}
	}
	if *segArg != "" {
		v, err := parseInts(*segArg, 4)
		if err != nil {
			return err
		}
		if p, ok := hittest.CrossesStroke(s, [2]int32{v[0], v[1]}, [2]int32{v[2], v[3]}); ok {
			fmt.Printf("eraser crosses the stroke at (%g, %g)\n", p[0], p[1])
		} else {
			fmt.Println("eraser does not cross the stroke")
		}
	}
	return nil
}

func runMeminfo() error {
	b, err := platform.SystemRAM()
	if err != nil {
		return err
	}
	fmt.Printf("%d bytes (%d MB) physical memory, %d CPUs\n", b, b/(1024*1024), platform.NumCPU())
	return nil
}

func parseInts(s string, n int) ([]int32, error) {
	f := strings.Split(s, ",")
	if len(f) != n {
		return nil, fmt.Errorf("%q: expected %d comma-separated values", s, n)
	}
	v := make([]int32, n)
	for i := range f {
		x, err := strconv.ParseInt(strings.TrimSpace(f[i]), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, err)
		}
		v[i] = int32(x)
	}
	return v, nil
}

func parseStroke(s string) ([][2]int32, error) {
	n := strings.Count(s, ",") + 1
	if s == "" || n%2 != 0 {
		return nil, fmt.Errorf("%q: expected x,y pairs", s)
	}
	v, err := parseInts(s, n)
	if err != nil {
		return nil, err
	}
	pts := make([][2]int32, 0, n/2)
	for i := 0; i < n; i += 2 {
		pts = append(pts, [2]int32{v[i], v[i+1]})
	}
	return pts, nil
}

func parseRect(s string) (math.Rect, error) {
	v, err := parseInts(s, 4)
	if err != nil {
		return math.Rect{}, err
	}
	return math.RectFromXYWH(v[0], v[1], v[2], v[3]), nil
}

func parseSize(s string) ([2]int32, error) {
	w, h, ok := strings.Cut(s, "x")
	if !ok {
		return [2]int32{}, fmt.Errorf("%q: expected WxH", s)
	}
	v, err := parseInts(w+","+h, 2)
	if err != nil {
		return [2]int32{}, err
	}
	return [2]int32{v[0], v[1]}, nil
}
