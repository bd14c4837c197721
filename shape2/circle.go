package shape2

import (
	"deedles.dev/xtrace"
	"deedles.dev/xtrace/geom"
)

type Circle[T geom.Float] struct {
	Center Vec[T]
	Radius T
}

func (Circle[T]) isShape() {}

// Bounds returns the smallest box containing c.
func (c Circle[T]) Bounds() Bounds[T] {
	r := geom.Splat2(c.Radius)
	return Bounds[T]{Mins: c.Center.Sub(r), Maxs: c.Center.Add(r)}
}

func (c Circle[T]) Lerp(c2 Circle[T], t T) Circle[T] {
	return Circle[T]{
		Center: c.Center.Lerp(c2.Center, t),
		Radius: geom.Lerp(c.Radius, c2.Radius, t),
	}
}

// Inside reports whether pt is strictly inside of c.
func (c Circle[T]) Inside(pt Vec[T]) bool {
	return c.Center.DistanceSqr(pt) < c.Radius*c.Radius
}

func (c Circle[T]) Trace(ray Ray[T]) (Hit[T], bool) {
	oc := c.Center.Sub(ray.Origin)
	tc := oc.Dot(ray.Direction)
	d2 := oc.Dot(oc) - tc*tc
	disc := c.Radius*c.Radius - d2
	if disc < 0 {
		return Hit[T]{}, false
	}

	half := geom.Sqrt(disc)
	if t := tc - half; ray.Distance.Contains(t) {
		pt := ray.At(t)
		return Hit[T]{
			Point:    pt,
			Distance: t,
			Normal:   pt.Sub(c.Center).Mul(1 / c.Radius),
			Side:     xtrace.Entry,
		}, true
	}
	if t := tc + half; ray.Distance.Contains(t) {
		pt := ray.At(t)
		return Hit[T]{
			Point:    pt,
			Distance: t,
			Normal:   c.Center.Sub(pt).Mul(1 / c.Radius),
			Side:     xtrace.Exit,
		}, true
	}
	return Hit[T]{}, false
}
