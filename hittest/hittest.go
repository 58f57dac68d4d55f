// hittest/hittest.go
// Copyright(c) 2024 canvas contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package hittest maps pointer positions to the strokes and shapes on the
// canvas that they touch.
package hittest

import (
	"github.com/inkwell/canvas/math"
)

// Stroke is a polyline with a brush radius, in canvas pixels.
type Stroke struct {
	Points [][2]int32
	Radius int32
}

// Bounds returns the area that the stroke may cover; the Boolean is false
// for a stroke with no points.
func (s Stroke) Bounds() (math.Rect, bool) {
	r, err := math.BoundingRect(s.Points)
	if err != nil {
		return math.Rect{}, false
	}
	// BoundingRect's right and bottom edges are exclusive, so add one more
	// pixel there to cover the points that lie on them.
	r = r.Enlarge(s.Radius)
	r.Right++
	r.Bottom++
	return r, true
}

// Distance returns the distance from p to the closest point of the
// stroke's centerline, or false if the stroke has no points.
func (s Stroke) Distance(p [2]int32) (float32, bool) {
	if len(s.Points) == 0 {
		return 0, false
	}

	pf := math.ToFloat2(p)
	best := math.Distance2f(pf, math.ToFloat2(s.Points[0]))
	for i := 1; i < len(s.Points); i++ {
		a, b := s.Points[i-1], s.Points[i]
		ab := math.ToFloat2(math.Sub2i(b, a))
		abLen2 := math.Dot(ab, ab)
		if abLen2 == 0 {
			// Repeated point; the previous segment (or the first point)
			// already covered it.
			continue
		}

		c, _, err := math.ClosestPointOnSegment2f(a, b, ab, abLen2, p)
		if err != nil {
			continue
		}
		best = min(best, math.Distance2f(pf, c))
	}
	return best, true
}

// PickStroke returns the index of the topmost stroke (the last in the
// slice) that p touches.
func PickStroke(strokes []Stroke, p [2]int32) (int, bool) {
	for i := len(strokes) - 1; i >= 0; i-- {
		s := strokes[i]
		if b, ok := s.Bounds(); !ok || !b.Inside(p) {
			continue
		}
		if d, ok := s.Distance(p); ok && d <= float32(s.Radius) {
			return i, true
		}
	}
	return -1, false
}

// PickTriangle returns the index of the topmost triangle containing p.
// Triangle vertices must be in clockwise order.
func PickTriangle(tris [][3][2]float32, p [2]float32) (int, bool) {
	for i := len(tris) - 1; i >= 0; i-- {
		t := tris[i]
		if math.IsInsideTriangle(p, t[0], t[1], t[2]) {
			return i, true
		}
	}
	return -1, false
}

// CrossesStroke reports where the eraser or lasso segment [u,v] first
// crosses the stroke's centerline, walking the stroke from its start.
func CrossesStroke(s Stroke, u, v [2]int32) ([2]float32, bool) {
	// IntersectSegments only bounds the crossing by the stroke segment;
	// bound it by the closed extent of [u,v] here.
	lo := math.ToFloat2([2]int32{min(u[0], v[0]), min(u[1], v[1])})
	hi := math.ToFloat2([2]int32{max(u[0], v[0]), max(u[1], v[1])})

	for i := 1; i < len(s.Points); i++ {
		p, ok := math.IntersectSegments(s.Points[i-1], s.Points[i], u, v)
		if ok && p[0] >= lo[0] && p[0] <= hi[0] && p[1] >= lo[1] && p[1] <= hi[1] {
			return p, true
		}
	}
	return [2]float32{}, false
}
