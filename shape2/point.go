package shape2

import "deedles.dev/xtrace/geom"

// Point is a single location. It has no area, so nothing is ever
// inside of it and rays never hit it.
type Point[T geom.Float] struct {
	geom.Vec2[T]
}

func (Point[T]) isShape() {}

func (Point[T]) Inside(Vec[T]) bool { return false }

func (Point[T]) Trace(Ray[T]) (Hit[T], bool) { return Hit[T]{}, false }
