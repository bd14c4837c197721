// Package geom provides the scalar and vector math that the tracers
// are built on.
//
// Every type in this package is generic over [Float] and is a plain
// value that can be copied freely. Nothing allocates.
package geom

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Float is a constraint for the scalar types that geom types and
// functions can handle.
type Float interface {
	constraints.Float
}

// is32 reports whether T only carries single precision.
func is32[T Float]() bool {
	var one T = 1
	return T(one+T(0x1p-52)) == one
}

// Epsilon returns the machine epsilon of T, which is the difference
// between 1 and the next representable value.
func Epsilon[T Float]() T {
	if is32[T]() {
		return T(0x1p-23)
	}
	return T(0x1p-52)
}

// Tolerance returns the square root of [Epsilon]. It is the distance
// used to step past a surface so that it is not detected again.
func Tolerance[T Float]() T {
	if is32[T]() {
		return T(0x1p-11)
	}
	return T(0x1p-26)
}

// Inf returns positive infinity.
func Inf[T Float]() T {
	return T(math.Inf(1))
}

// IsNaN reports whether v is not a number.
func IsNaN[T Float](v T) bool {
	return v != v
}

func Sqrt[T Float](v T) T {
	if is32[T]() {
		return T(math32.Sqrt(float32(v)))
	}
	return T(math.Sqrt(float64(v)))
}

func Abs[T Float](v T) T {
	if is32[T]() {
		return T(math32.Abs(float32(v)))
	}
	return T(math.Abs(float64(v)))
}

// Signum returns -1, 0, or 1 depending on the sign of v. NaN is
// returned unchanged.
func Signum[T Float](v T) T {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return v
	}
}

// Clamp restricts v to [lo, hi].
func Clamp[T Float](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// Lerp linearly interpolates between a and b.
func Lerp[T Float](a, b, t T) T {
	return a + (b-a)*t
}
