package shape3

import (
	"deedles.dev/xtrace"
	"deedles.dev/xtrace/geom"
)

// Bounds is an axis-aligned box.
type Bounds[T geom.Float] struct {
	Mins, Maxs Vec[T]
}

func (Bounds[T]) isShape() {}

// Norm returns a copy of b with Mins and Maxs swapped per axis where
// necessary.
func (b Bounds[T]) Norm() Bounds[T] {
	mins, maxs := b.Mins.MinMax(b.Maxs)
	return Bounds[T]{Mins: mins, Maxs: maxs}
}

func (b Bounds[T]) Size() Vec[T]   { return b.Maxs.Sub(b.Mins) }
func (b Bounds[T]) Center() Vec[T] { return b.Mins.Lerp(b.Maxs, 0.5) }

func (b Bounds[T]) Volume() T {
	s := b.Size()
	return s.X * s.Y * s.Z
}

// Contains reports whether pt is inside of b or on its boundary.
func (b Bounds[T]) Contains(pt Vec[T]) bool {
	return pt.X >= b.Mins.X && pt.X <= b.Maxs.X &&
		pt.Y >= b.Mins.Y && pt.Y <= b.Maxs.Y &&
		pt.Z >= b.Mins.Z && pt.Z <= b.Maxs.Z
}

func (b Bounds[T]) Include(pt Vec[T]) Bounds[T] {
	return Bounds[T]{Mins: b.Mins.Min(pt), Maxs: b.Maxs.Max(pt)}
}

func (b Bounds[T]) Union(b2 Bounds[T]) Bounds[T] {
	return Bounds[T]{Mins: b.Mins.Min(b2.Mins), Maxs: b.Maxs.Max(b2.Maxs)}
}

func (b Bounds[T]) Inside(pt Vec[T]) bool {
	return b.Contains(pt)
}

// Trace uses the slab method. A ray starting inside of b reports the
// point at which it leaves.
func (b Bounds[T]) Trace(ray Ray[T]) (Hit[T], bool) {
	inv := ray.Direction.Inv()
	tmin, tmax := b.Mins.Sub(ray.Origin).MulV(inv).MinMax(b.Maxs.Sub(ray.Origin).MulV(inv))
	t0, t1 := tmin.VMax(), tmax.VMin()
	if !(t0 <= t1) {
		return Hit[T]{}, false
	}

	switch {
	case ray.Distance.Contains(t0):
		return faceHit(ray, t0, tmin, xtrace.Entry), true
	case ray.Distance.Contains(t1):
		return faceHit(ray, t1, tmax, xtrace.Exit), true
	default:
		return Hit[T]{}, false
	}
}

// faceHit builds the hit at distance t, which is the component of
// axes belonging to the face that was crossed.
func faceHit[T geom.Float](ray Ray[T], t T, axes Vec[T], side xtrace.Side) Hit[T] {
	var normal Vec[T]
	switch t {
	case axes.X:
		normal.X = -geom.Signum(ray.Direction.X)
	case axes.Y:
		normal.Y = -geom.Signum(ray.Direction.Y)
	default:
		normal.Z = -geom.Signum(ray.Direction.Z)
	}
	return Hit[T]{Point: ray.At(t), Distance: t, Normal: normal, Side: side}
}
