package geom

import "fmt"

// Vec2 is a two-dimensional vector. It doubles as a point.
type Vec2[T Float] struct {
	X, Y T
}

// V2 is shorthand for Vec2[T]{X: x, Y: y}.
func V2[T Float](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Splat2 returns a vector with both components set to v.
func Splat2[T Float](v T) Vec2[T] {
	return Vec2[T]{X: v, Y: v}
}

func (v Vec2[T]) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

func (v Vec2[T]) Add(v2 Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X + v2.X, Y: v.Y + v2.Y}
}

func (v Vec2[T]) Sub(v2 Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X - v2.X, Y: v.Y - v2.Y}
}

// Mul scales v by s.
func (v Vec2[T]) Mul(s T) Vec2[T] {
	return Vec2[T]{X: v.X * s, Y: v.Y * s}
}

// MulV multiplies v and v2 component-wise.
func (v Vec2[T]) MulV(v2 Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X * v2.X, Y: v.Y * v2.Y}
}

// Inv returns the component-wise reciprocal of v. Zero components
// become signed infinities.
func (v Vec2[T]) Inv() Vec2[T] {
	return Vec2[T]{X: 1 / v.X, Y: 1 / v.Y}
}

func (v Vec2[T]) Neg() Vec2[T] {
	return Vec2[T]{X: -v.X, Y: -v.Y}
}

func (v Vec2[T]) Dot(v2 Vec2[T]) T {
	return v.X*v2.X + v.Y*v2.Y
}

// Cross returns the z component of the cross product of v and v2
// extended into three dimensions. It is positive if v2 is
// counterclockwise from v.
func (v Vec2[T]) Cross(v2 Vec2[T]) T {
	return v.X*v2.Y - v.Y*v2.X
}

// CW rotates v a quarter turn, (x, y) -> (-y, x).
func (v Vec2[T]) CW() Vec2[T] {
	return Vec2[T]{X: -v.Y, Y: v.X}
}

// CCW rotates v a quarter turn the other way, (x, y) -> (y, -x).
func (v Vec2[T]) CCW() Vec2[T] {
	return Vec2[T]{X: v.Y, Y: -v.X}
}

func (v Vec2[T]) LenSqr() T {
	return v.Dot(v)
}

func (v Vec2[T]) Len() T {
	return Sqrt(v.LenSqr())
}

// Norm returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec2[T]) Norm() Vec2[T] {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

func (v Vec2[T]) DistanceSqr(v2 Vec2[T]) T {
	return v.Sub(v2).LenSqr()
}

func (v Vec2[T]) Distance(v2 Vec2[T]) T {
	return v.Sub(v2).Len()
}

// Reflect mirrors v across a surface with the given unit normal.
func (v Vec2[T]) Reflect(normal Vec2[T]) Vec2[T] {
	return v.Sub(normal.Mul(2 * v.Dot(normal)))
}

// Lerp linearly interpolates between v and v2.
func (v Vec2[T]) Lerp(v2 Vec2[T], t T) Vec2[T] {
	return Vec2[T]{X: Lerp(v.X, v2.X, t), Y: Lerp(v.Y, v2.Y, t)}
}

// Min returns the component-wise minimum of v and v2.
func (v Vec2[T]) Min(v2 Vec2[T]) Vec2[T] {
	return Vec2[T]{X: min(v.X, v2.X), Y: min(v.Y, v2.Y)}
}

// Max returns the component-wise maximum of v and v2.
func (v Vec2[T]) Max(v2 Vec2[T]) Vec2[T] {
	return Vec2[T]{X: max(v.X, v2.X), Y: max(v.Y, v2.Y)}
}

// MinMax returns [Vec2.Min] and [Vec2.Max] of v and v2.
func (v Vec2[T]) MinMax(v2 Vec2[T]) (lo, hi Vec2[T]) {
	return v.Min(v2), v.Max(v2)
}

// VMin returns the smallest component of v.
func (v Vec2[T]) VMin() T {
	return min(v.X, v.Y)
}

// VMax returns the largest component of v.
func (v Vec2[T]) VMax() T {
	return max(v.X, v.Y)
}

func (v Vec2[T]) Map(f func(T) T) Vec2[T] {
	return Vec2[T]{X: f(v.X), Y: f(v.Y)}
}

// Signum returns the sign of each component of v.
func (v Vec2[T]) Signum() Vec2[T] {
	return v.Map(Signum[T])
}

// Index returns the component on axis i, 0 for X and 1 for Y.
func (v Vec2[T]) Index(i int) T {
	if i == 0 {
		return v.X
	}
	return v.Y
}
