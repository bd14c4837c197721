package shape3

import (
	"deedles.dev/xtrace"
	"deedles.dev/xtrace/geom"
)

// Plane is the set of points pt for which
//
//	Normal.Dot(pt) + Distance == 0
//
// It bounds the half-space on the side that Normal points towards.
type Plane[T geom.Float] struct {
	Normal   Vec[T]
	Distance T
}

// PlaneFromPoint returns the plane with the given normal that passes
// through pt.
func PlaneFromPoint[T geom.Float](normal, pt Vec[T]) Plane[T] {
	return Plane[T]{Normal: normal, Distance: -normal.Dot(pt)}
}

// PlaneFromTriangle returns the plane through three points, with its
// normal following the right-hand rule. If the points are collinear,
// the normal is zero.
func PlaneFromTriangle[T geom.Float](pt1, pt2, pt3 Vec[T]) Plane[T] {
	return PlaneFromPoint(pt2.Sub(pt1).Cross(pt3.Sub(pt1)).Norm(), pt1)
}

func (Plane[T]) isShape() {}

// SignedDistance returns the distance from the plane to pt. It is
// positive on the side that the normal points towards.
func (p Plane[T]) SignedDistance(pt Vec[T]) T {
	return p.Normal.Dot(pt) + p.Distance
}

// Project returns the point on the plane nearest to pt.
func (p Plane[T]) Project(pt Vec[T]) Vec[T] {
	return pt.Sub(p.Normal.Mul(p.SignedDistance(pt)))
}

func (p Plane[T]) Inside(pt Vec[T]) bool {
	return p.SignedDistance(pt) >= 0
}

// Trace finds where ray crosses the plane. A ray travelling against
// the normal produces an Entry hit with the plane's normal and one
// travelling with it produces an Exit hit with the normal negated.
func (p Plane[T]) Trace(ray Ray[T]) (Hit[T], bool) {
	denom := p.Normal.Dot(ray.Direction)
	if geom.Abs(denom) < geom.Epsilon[T]() {
		return Hit[T]{}, false
	}

	t := -p.SignedDistance(ray.Origin) / denom
	if !ray.Distance.Contains(t) {
		return Hit[T]{}, false
	}

	hit := Hit[T]{Point: ray.At(t), Distance: t, Normal: p.Normal, Side: xtrace.Entry}
	if denom > 0 {
		hit.Normal = p.Normal.Neg()
		hit.Side = xtrace.Exit
	}
	return hit, true
}
