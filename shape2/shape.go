// Package shape2 contains the two-dimensional primitives that rays
// can be traced against.
package shape2

import (
	"slices"

	"deedles.dev/xtrace"
	"deedles.dev/xtrace/geom"
)

type (
	Vec[T geom.Float]    = geom.Vec2[T]
	Ray[T geom.Float]    = xtrace.Ray[T, geom.Vec2[T]]
	Hit[T geom.Float]    = xtrace.Hit[T, geom.Vec2[T]]
	Tracer[T geom.Float] = xtrace.Tracer[T, geom.Vec2[T]]
)

// Shape is one of the primitives in this package: [Point], [Bounds],
// [Plane], [Circle], [Line], or [Triangle]. It can not be implemented
// outside of the package. Composite shapes implement [Tracer] instead.
type Shape[T geom.Float] interface {
	Tracer[T]
	isShape()
}

var (
	_ Shape[float64] = Point[float64]{}
	_ Shape[float64] = Bounds[float64]{}
	_ Shape[float64] = Plane[float64]{}
	_ Shape[float64] = Circle[float64]{}
	_ Shape[float64] = Line[float64]{}
	_ Shape[float64] = Triangle[float64]{}
)

// NewRay returns a ray starting at origin going in the direction of
// dir with an unbounded range.
func NewRay[T geom.Float](origin, dir Vec[T]) Ray[T] {
	return xtrace.NewRay[T](origin, dir)
}

// Trace returns the nearest hit of ray against shapes. The hit's
// Index is the index into shapes of the shape that was hit.
func Trace[T geom.Float, S Tracer[T]](ray Ray[T], shapes []S) (Hit[T], bool) {
	return xtrace.TraceCollection(ray, slices.Values(shapes))
}

// Inside reports whether the origin of ray is inside any of shapes.
func Inside[T geom.Float, S Tracer[T]](ray Ray[T], shapes []S) bool {
	return xtrace.InsideCollection(ray, slices.Values(shapes))
}

// Union returns a tracer for the area covered by either a or b.
func Union[T geom.Float](a, b Tracer[T]) xtrace.Union[T, Vec[T]] {
	return xtrace.Union[T, Vec[T]]{Shape1: a, Shape2: b}
}

// Intersection returns a tracer for the area covered by both a and b.
func Intersection[T geom.Float](a, b Tracer[T]) xtrace.Intersection[T, Vec[T]] {
	return xtrace.Intersection[T, Vec[T]]{Shape1: a, Shape2: b}
}

// Difference returns a tracer for the area covered by a but not by b.
func Difference[T geom.Float](a, b Tracer[T]) xtrace.Difference[T, Vec[T]] {
	return xtrace.Difference[T, Vec[T]]{Shape1: a, Shape2: b}
}

// Xor returns a tracer for the area covered by exactly one of a and
// b.
func Xor[T geom.Float](a, b Tracer[T]) xtrace.Xor[T, Vec[T]] {
	return xtrace.Xor[T, Vec[T]]{Shape1: a, Shape2: b}
}
