package shape3

import "deedles.dev/xtrace/geom"

// Point is a single location. Rays never hit it.
type Point[T geom.Float] struct {
	geom.Vec3[T]
}

func (Point[T]) isShape() {}

func (Point[T]) Inside(Vec[T]) bool { return false }

func (Point[T]) Trace(Ray[T]) (Hit[T], bool) { return Hit[T]{}, false }
