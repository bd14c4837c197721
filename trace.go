package xtrace

import (
	"cmp"
	"iter"

	"deedles.dev/xiter"
	"deedles.dev/xtrace/geom"
)

// Tracer is implemented by anything that can be hit by a ray.
type Tracer[T geom.Float, V geom.Vector[T, V]] interface {
	// Inside reports whether pt is in the solid interior of the
	// shape. Shapes without an interior always return false.
	Inside(pt V) bool

	// Trace returns the nearest point along ray, within its
	// interval, at which it crosses the boundary of the shape.
	Trace(ray Ray[T, V]) (Hit[T, V], bool)
}

// TraceCollection traces ray against every shape yielded by shapes
// and returns the nearest hit, with its Index set to the position of
// the shape that produced it. If more than one shape is hit at the
// same distance, the first one wins.
func TraceCollection[T geom.Float, V geom.Vector[T, V], S Tracer[T, V]](ray Ray[T, V], shapes iter.Seq[S]) (hit Hit[T, V], ok bool) {
	for i, s := range xiter.Enumerate(shapes) {
		h, found := s.Trace(ray)
		if !found {
			continue
		}
		if ok && cmp.Compare(h.Distance, hit.Distance) >= 0 {
			continue
		}

		h.Index = i
		hit, ok = h, true
		ray.Distance.Max = h.Distance
	}
	return hit, ok
}

// InsideCollection reports whether the origin of ray is inside any of
// the shapes yielded by shapes.
func InsideCollection[T geom.Float, V geom.Vector[T, V], S Tracer[T, V]](ray Ray[T, V], shapes iter.Seq[S]) bool {
	for s := range shapes {
		if s.Inside(ray.Origin) {
			return true
		}
	}
	return false
}

// nearest returns whichever of two optional hits is closer. The first
// wins ties.
func nearest[T geom.Float, V geom.Vector[T, V]](h1 Hit[T, V], ok1 bool, h2 Hit[T, V], ok2 bool) (Hit[T, V], bool) {
	switch {
	case ok1 && ok2:
		if cmp.Compare(h2.Distance, h1.Distance) < 0 {
			return h2, true
		}
		return h1, true
	case ok1:
		return h1, true
	default:
		return h2, ok2
	}
}
