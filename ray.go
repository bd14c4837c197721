// Package xtrace finds where rays meet shapes.
//
// A [Ray] is traced against anything that implements [Tracer]. The
// primitives live in the shape2 and shape3 packages. [Union],
// [Intersection], [Difference], and [Xor] combine any two tracers
// into another one, so composites nest freely.
//
// Rays, hits, and shapes are immutable values. Any number of queries
// may run concurrently without synchronization.
package xtrace

import (
	"deedles.dev/xtrace/geom"
)

// Ray is a half-line starting at Origin. Only hits at a distance
// contained in Distance are reported.
type Ray[T geom.Float, V geom.Vector[T, V]] struct {
	Origin    V
	Direction V
	Distance  geom.Interval[T]
}

// NewRay returns a ray from origin in the direction of dir, which is
// normalized, accepting hits at any positive distance.
func NewRay[T geom.Float, V geom.Vector[T, V]](origin, dir V) Ray[T, V] {
	return Ray[T, V]{
		Origin:    origin,
		Direction: dir.Norm(),
		Distance:  geom.Forward[T](),
	}
}

// At returns the point at distance t along the ray.
func (r Ray[T, V]) At(t T) V {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Step returns the ray that starts d along r and covers what remains
// of its interval.
func (r Ray[T, V]) Step(d T) Ray[T, V] {
	return Ray[T, V]{
		Origin:    r.At(d),
		Direction: r.Direction,
		Distance:  r.Distance.Shift(d),
	}
}

// Reflect returns the ray that bounces off of the surface at hit,
// which must have been produced by r. The distance already traveled
// is taken off of the new ray's range.
func (r Ray[T, V]) Reflect(hit Hit[T, V]) Ray[T, V] {
	return Ray[T, V]{
		Origin:    hit.Point,
		Direction: r.Direction.Reflect(hit.Normal).Norm(),
		Distance:  geom.Interval[T]{Min: r.Distance.Min, Max: r.Distance.Max - hit.Distance},
	}
}

// Refract returns the ray that passes through the surface at hit,
// bent according to Snell's law. outside and inside are the indices
// of refraction on either side of the surface; hit.Side decides which
// one the ray is coming from. It returns false on total internal
// reflection.
func (r Ray[T, V]) Refract(hit Hit[T, V], outside, inside T) (Ray[T, V], bool) {
	eta := outside / inside
	if hit.Side == Exit {
		eta = inside / outside
	}

	cosi := -hit.Normal.Dot(r.Direction)
	k := 1 - eta*eta*(1-cosi*cosi)
	if k < 0 {
		return Ray[T, V]{}, false
	}

	dir := r.Direction.Mul(eta).Add(hit.Normal.Mul(eta*cosi - geom.Sqrt(k)))
	return Ray[T, V]{
		Origin:    hit.Point,
		Direction: dir.Norm(),
		Distance:  geom.Interval[T]{Min: r.Distance.Min, Max: r.Distance.Max - hit.Distance},
	}, true
}

// Inside reports whether the ray starts inside of s.
func (r Ray[T, V]) Inside(s Tracer[T, V]) bool {
	return s.Inside(r.Origin)
}

// Trace is the same as s.Trace(r).
func (r Ray[T, V]) Trace(s Tracer[T, V]) (Hit[T, V], bool) {
	return s.Trace(r)
}
