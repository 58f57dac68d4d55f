// math/core.go
// Copyright(c) 2024 canvas contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	gomath "math"

	"golang.org/x/exp/constraints"
)

func Pi() float32 {
	return float32(gomath.Pi)
}

// DegreesToRadians converts an integer angle in degrees to radians. The
// angle must be in [0, 360); anything else is reported as a contract
// violation.
func DegreesToRadians(d int) (float32, error) {
	if d < 0 || d >= 360 {
		return 0, contractf("DegreesToRadians", "angle %d not in [0, 360)", d)
	}
	return Pi() * (float32(d) / 180), nil
}

// RadiansToDegrees converts an angle expressed in radians to degrees. Unlike
// DegreesToRadians, any input is accepted.
func RadiansToDegrees(r float32) float32 {
	return (180 * r) / Pi()
}

// Since we mostly use float32, it's handy to be able to call these directly
// rather than with all of the casts that are required when using the math
// package.

func Sin(a float32) float32 {
	return float32(gomath.Sin(float64(a)))
}

func Cos(a float32) float32 {
	return float32(gomath.Cos(float64(a)))
}

func Sqrt(a float32) float32 {
	return float32(gomath.Sqrt(float64(a)))
}

func Abs[V constraints.Integer | constraints.Float](x V) V {
	if x < 0 {
		return -x
	}
	return x
}

func Clamp[T constraints.Ordered](x T, low T, high T) T {
	if x < low {
		return low
	} else if x > high {
		return high
	}
	return x
}
