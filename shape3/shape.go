// Package shape3 contains the three-dimensional primitives that rays
// can be traced against.
package shape3

import (
	"slices"

	"deedles.dev/xtrace"
	"deedles.dev/xtrace/geom"
)

type (
	Vec[T geom.Float]    = geom.Vec3[T]
	Ray[T geom.Float]    = xtrace.Ray[T, geom.Vec3[T]]
	Hit[T geom.Float]    = xtrace.Hit[T, geom.Vec3[T]]
	Tracer[T geom.Float] = xtrace.Tracer[T, geom.Vec3[T]]
)

// Shape is one of the primitives in this package: [Point], [Bounds],
// [Plane], [Sphere], [Line], or [Triangle]. It can not be implemented
// outside of the package.
type Shape[T geom.Float] interface {
	Tracer[T]
	isShape()
}

var (
	_ Shape[float64] = Point[float64]{}
	_ Shape[float64] = Bounds[float64]{}
	_ Shape[float64] = Plane[float64]{}
	_ Shape[float64] = Sphere[float64]{}
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

func Union[T geom.Float](a, b Tracer[T]) xtrace.Union[T, Vec[T]] {
	return xtrace.Union[T, Vec[T]]{Shape1: a, Shape2: b}
}

func Intersection[T geom.Float](a, b Tracer[T]) xtrace.Intersection[T, Vec[T]] {
	return xtrace.Intersection[T, Vec[T]]{Shape1: a, Shape2: b}
}

func Difference[T geom.Float](a, b Tracer[T]) xtrace.Difference[T, Vec[T]] {
	return xtrace.Difference[T, Vec[T]]{Shape1: a, Shape2: b}
}

func Xor[T geom.Float](a, b Tracer[T]) xtrace.Xor[T, Vec[T]] {
	return xtrace.Xor[T, Vec[T]]{Shape1: a, Shape2: b}
}
