// math/geom.go
// Copyright(c) 2024 canvas contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import gomath "math"

///////////////////////////////////////////////////////////////////////////
// Predicates

// Orientation returns the signed area of the parallelogram spanned by b-a
// and c-a; half of it is the area of the triangle abc. It is positive if c
// is to the left of the directed line a->b, negative if it is to the
// right, and zero if the three points are collinear.
func Orientation(a, b, c [2]float32) float32 {
	return (b[0]-a[0])*(c[1]-a[1]) - (c[0]-a[0])*(b[1]-a[1])
}

// IsInsideTriangle reports whether p is inside the triangle abc or on its
// boundary. The vertices must be given in clockwise order.
func IsInsideTriangle(p, a, b, c [2]float32) bool {
	return Orientation(a, b, p) <= 0 &&
		Orientation(b, c, p) <= 0 &&
		Orientation(c, a, p) <= 0
}

///////////////////////////////////////////////////////////////////////////
// Segments

// SegmentSnapEpsilon is how far outside of [0,1] the parametric
// intersection distance may fall in IntersectSegments and still be
// snapped back onto the segment's endpoint.
const SegmentSnapEpsilon = 0.001

// clampedProjection projects p onto the line through a with direction ab
// and clamps the signed distance along it to the segment's extent. It
// returns the unit direction, the clamped distance s, and the parametric
// position t = s/|ab| in [0,1].
func clampedProjection(op string, a [2]int32, ab [2]float32, abLen2 float32, p [2]int32) ([2]float32, float32, float32, error) {
	if !(abLen2 > 0) || gomath.IsInf(float64(abLen2), 0) {
		return [2]float32{}, 0, 0, contractf(op, "segment squared length %g must be positive", abLen2)
	}

	mag := Sqrt(abLen2)
	d := Scale2f(ab, 1/mag)
	ap := ToFloat2(Sub2i(p, a))

	s := Clamp(Dot(d, ap), 0, mag)
	return d, s, s / mag, nil
}

// ClosestPointOnSegment2f returns the point on the closed segment [a,b]
// that is closest to p along with its parametric position t in [0,1].
// ab must be b-a and abLen2 its squared length; they are passed in so that
// callers testing many points against the same segment compute them once.
// A zero-length segment is a contract violation.
func ClosestPointOnSegment2f(a, b [2]int32, ab [2]float32, abLen2 float32, p [2]int32) ([2]float32, float32, error) {
	d, s, t, err := clampedProjection("ClosestPointOnSegment2f", a, ab, abLen2, p)
	if err != nil {
		return [2]float32{}, 0, err
	}

	switch t {
	case 0:
		return ToFloat2(a), 0, nil
	case 1:
		return ToFloat2(b), 1, nil
	default:
		return Add2f(ToFloat2(a), Scale2f(d, s)), t, nil
	}
}

// ClosestPointOnSegment2i is the integer counterpart of
// ClosestPointOnSegment2f; the returned point is truncated toward zero.
func ClosestPointOnSegment2i(a, b [2]int32, ab [2]float32, abLen2 float32, p [2]int32) ([2]int32, float32, error) {
	d, s, t, err := clampedProjection("ClosestPointOnSegment2i", a, ab, abLen2, p)
	if err != nil {
		return [2]int32{}, 0, err
	}

	switch t {
	case 0:
		return a, 0, nil
	case 1:
		return b, 1, nil
	default:
		return ToInt2(Add2f(ToFloat2(a), Scale2f(d, s))), t, nil
	}
}

// IntersectSegments returns the point where the segment [a,b] crosses the
// infinite line through u and v. The returned Boolean indicates whether
// there was a crossing.
//
// Note that only the extent of [a,b] is checked: a crossing that lies on
// the line through u and v but outside of [u,v] is still reported. Callers
// that need a true segment-segment test must check the returned point
// against [u,v] themselves. Parallel lines, including collinear
// overlapping segments, never intersect.
func IntersectSegments(a, b, u, v [2]int32) ([2]float32, bool) {
	perp := Perp2i(Sub2i(v, u))
	det := Dot2i(Sub2i(b, a), perp)
	if det == 0 {
		return [2]float32{}, false
	}

	t := float32(Dot2i(Sub2i(u, a), perp)) / float32(det)
	if t > 1 && t < 1+SegmentSnapEpsilon {
		t = 1
	}
	if t < 0 && t > -SegmentSnapEpsilon {
		t = 0
	}
	if t < 0 || t > 1 {
		return [2]float32{}, false
	}

	return Add2f(ToFloat2(a), Scale2f(ToFloat2(Sub2i(b, a)), t)), true
}
