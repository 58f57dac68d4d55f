// cmd/canvasgeom/main_test.go
// Copyright(c) 2024 canvas contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"testing"

	"github.com/inkwell/canvas/math"
)

func TestParseArgs(t *testing.T) {
	if r, err := parseRect("10, -20,30,40"); err != nil || r != math.RectFromXYWH(10, -20, 30, 40) {
		t.Errorf("parseRect: got %s (err %v)", r, err)
	}
	if sz, err := parseSize("256x128"); err != nil || sz != [2]int32{256, 128} {
		t.Errorf("parseSize: got %v (err %v)", sz, err)
	}

	for _, bad := range []string{"", "1,2,3", "1,2,3,x", "1,2,3,4,5"} {
		if _, err := parseRect(bad); err == nil {
			t.Errorf("parseRect(%q): expected an error", bad)
		}
	}
	for _, bad := range []string{"256", "256x", "ax5", "1x2x3"} {
		if _, err := parseSize(bad); err == nil {
			t.Errorf("parseSize(%q): expected an error", bad)
		}
	}
}

func TestParseStroke(t *testing.T) {
	pts, err := parseStroke("0,0, 10,0,10,-5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := [][2]int32{{0, 0}, {10, 0}, {10, -5}}
	if len(pts) != len(expected) {
		t.Fatalf("got %v, expected %v", pts, expected)
	}
	for i := range pts {
		if pts[i] != expected[i] {
			t.Errorf("point %d: got %v, expected %v", i, pts[i], expected[i])
		}
	}

	for _, bad := range []string{"", "1", "1,2,3", "1,2,x,4"} {
		if _, err := parseStroke(bad); err == nil {
			t.Errorf("parseStroke(%q): expected an error", bad)
		}
	}
}
