package shape3

import (
	"deedles.dev/xtrace"
	"deedles.dev/xtrace/geom"
)

type Sphere[T geom.Float] struct {
	Center Vec[T]
	Radius T
}

func (Sphere[T]) isShape() {}

// Bounds returns the smallest box containing s.
func (s Sphere[T]) Bounds() Bounds[T] {
	r := geom.Splat3(s.Radius)
	return Bounds[T]{Mins: s.Center.Sub(r), Maxs: s.Center.Add(r)}
}

func (s Sphere[T]) Lerp(s2 Sphere[T], t T) Sphere[T] {
	return Sphere[T]{
		Center: s.Center.Lerp(s2.Center, t),
		Radius: geom.Lerp(s.Radius, s2.Radius, t),
	}
}

// Inside reports whether pt is strictly inside of s.
func (s Sphere[T]) Inside(pt Vec[T]) bool {
	return s.Center.DistanceSqr(pt) < s.Radius*s.Radius
}

// Trace finds the nearer of the two points at which the line of ray
// crosses the surface of s. If the ray starts inside, that is where
// it leaves.
func (s Sphere[T]) Trace(ray Ray[T]) (Hit[T], bool) {
	oc := s.Center.Sub(ray.Origin)
	tc := oc.Dot(ray.Direction)
	d2 := oc.Dot(oc) - tc*tc
	disc := s.Radius*s.Radius - d2
	if disc < 0 {
		return Hit[T]{}, false
	}

	half := geom.Sqrt(disc)
	if t := tc - half; ray.Distance.Contains(t) {
		pt := ray.At(t)
		return Hit[T]{
			Point:    pt,
			Distance: t,
			Normal:   pt.Sub(s.Center).Mul(1 / s.Radius),
			Side:     xtrace.Entry,
		}, true
	}
	if t := tc + half; ray.Distance.Contains(t) {
		pt := ray.At(t)
		return Hit[T]{
			Point:    pt,
			Distance: t,
			Normal:   s.Center.Sub(pt).Mul(1 / s.Radius),
			Side:     xtrace.Exit,
		}, true
	}
	return Hit[T]{}, false
}
