// math/vecmat.go
// Copyright(c) 2024 canvas contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

///////////////////////////////////////////////////////////////////////////
// point 2f

// Various useful functions for arithmetic with 2D points/vectors.
// Names are brief in order to avoid clutter when they're used.

// a+b
func Add2f(a [2]float32, b [2]float32) [2]float32 {
	return [2]float32{a[0] + b[0], a[1] + b[1]}
}

// a-b
func Sub2f(a [2]float32, b [2]float32) [2]float32 {
	return [2]float32{a[0] - b[0], a[1] - b[1]}
}

// a*s
func Scale2f(a [2]float32, s float32) [2]float32 {
	return [2]float32{s * a[0], s * a[1]}
}

func Dot(a, b [2]float32) float32 {
	return a[0]*b[0] + a[1]*b[1]
}

// Length of v
func Length2f(v [2]float32) float32 {
	return Sqrt(Dot(v, v))
}

// Distance between two points
func Distance2f(a [2]float32, b [2]float32) float32 {
	return Length2f(Sub2f(a, b))
}

// PolarToCartesian returns the point at the given angle (in radians) and
// distance from the origin.
func PolarToCartesian(angle, radius float32) [2]float32 {
	return [2]float32{radius * Cos(angle), radius * Sin(angle)}
}

///////////////////////////////////////////////////////////////////////////
// point 2i

func Sub2i(a, b [2]int32) [2]int32 {
	return [2]int32{a[0] - b[0], a[1] - b[1]}
}

func Dot2i(a, b [2]int32) int32 {
	return a[0]*b[0] + a[1]*b[1]
}

// Perp2i returns v rotated by 90 degrees.
func Perp2i(v [2]int32) [2]int32 {
	return [2]int32{-v[1], v[0]}
}

// ToInt2 truncates toward zero; no rounding is done.
func ToInt2(v [2]float32) [2]int32 {
	return [2]int32{int32(v[0]), int32(v[1])}
}

func ToFloat2(v [2]int32) [2]float32 {
	return [2]float32{float32(v[0]), float32(v[1])}
}

// Rotate2i rotates p about the origin by angle radians. The result is
// truncated to integer coordinates, so repeatedly rotating the same point
// drifts; rotate the original point by the accumulated angle instead.
func Rotate2i(p [2]int32, angle float32) [2]int32 {
	s, c := Sin(angle), Cos(angle)
	x, y := float32(p[0]), float32(p[1])
	return [2]int32{int32(x*c - y*s), int32(x*s + y*c)}
}
