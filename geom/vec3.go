package geom

import "fmt"

// Vec3 is a three-dimensional vector. It doubles as a point.
type Vec3[T Float] struct {
	X, Y, Z T
}

// V3 is shorthand for Vec3[T]{X: x, Y: y, Z: z}.
func V3[T Float](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// Splat3 returns a vector with every component set to v.
func Splat3[T Float](v T) Vec3[T] {
	return Vec3[T]{X: v, Y: v, Z: v}
}

func (v Vec3[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}

func (v Vec3[T]) Add(v2 Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X + v2.X, Y: v.Y + v2.Y, Z: v.Z + v2.Z}
}

func (v Vec3[T]) Sub(v2 Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X - v2.X, Y: v.Y - v2.Y, Z: v.Z - v2.Z}
}

func (v Vec3[T]) Mul(s T) Vec3[T] {
	return Vec3[T]{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vec3[T]) MulV(v2 Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X * v2.X, Y: v.Y * v2.Y, Z: v.Z * v2.Z}
}

func (v Vec3[T]) Inv() Vec3[T] {
	return Vec3[T]{X: 1 / v.X, Y: 1 / v.Y, Z: 1 / v.Z}
}

func (v Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{X: -v.X, Y: -v.Y, Z: -v.Z}
}

func (v Vec3[T]) Dot(v2 Vec3[T]) T {
	return v.X*v2.X + v.Y*v2.Y + v.Z*v2.Z
}

// Cross returns the right-handed cross product of v and v2.
func (v Vec3[T]) Cross(v2 Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.Y*v2.Z - v.Z*v2.Y,
		Y: v.Z*v2.X - v.X*v2.Z,
		Z: v.X*v2.Y - v.Y*v2.X,
	}
}

func (v Vec3[T]) LenSqr() T {
	return v.Dot(v)
}

func (v Vec3[T]) Len() T {
	return Sqrt(v.LenSqr())
}

// Norm returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec3[T]) Norm() Vec3[T] {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

func (v Vec3[T]) DistanceSqr(v2 Vec3[T]) T {
	return v.Sub(v2).LenSqr()
}

func (v Vec3[T]) Distance(v2 Vec3[T]) T {
	return v.Sub(v2).Len()
}

// Reflect mirrors v across a surface with the given unit normal.
func (v Vec3[T]) Reflect(normal Vec3[T]) Vec3[T] {
	return v.Sub(normal.Mul(2 * v.Dot(normal)))
}

func (v Vec3[T]) Lerp(v2 Vec3[T], t T) Vec3[T] {
	return Vec3[T]{
		X: Lerp(v.X, v2.X, t),
		Y: Lerp(v.Y, v2.Y, t),
		Z: Lerp(v.Z, v2.Z, t),
	}
}

func (v Vec3[T]) Min(v2 Vec3[T]) Vec3[T] {
	return Vec3[T]{X: min(v.X, v2.X), Y: min(v.Y, v2.Y), Z: min(v.Z, v2.Z)}
}

func (v Vec3[T]) Max(v2 Vec3[T]) Vec3[T] {
	return Vec3[T]{X: max(v.X, v2.X), Y: max(v.Y, v2.Y), Z: max(v.Z, v2.Z)}
}

func (v Vec3[T]) MinMax(v2 Vec3[T]) (lo, hi Vec3[T]) {
	return v.Min(v2), v.Max(v2)
}

func (v Vec3[T]) VMin() T {
	return min(v.X, v.Y, v.Z)
}

func (v Vec3[T]) VMax() T {
	return max(v.X, v.Y, v.Z)
}

func (v Vec3[T]) Map(f func(T) T) Vec3[T] {
	return Vec3[T]{X: f(v.X), Y: f(v.Y), Z: f(v.Z)}
}

func (v Vec3[T]) Signum() Vec3[T] {
	return v.Map(Signum[T])
}

// Index returns the component on axis i, 0 for X, 1 for Y, and 2 for
// Z.
func (v Vec3[T]) Index(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
