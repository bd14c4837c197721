package shape2

import (
	"deedles.dev/xtrace"
	"deedles.dev/xtrace/geom"
)

// Plane is the line of points pt for which
//
//	Normal.Dot(pt) + Distance == 0
//
// It bounds the half-plane on the side that Normal points towards.
type Plane[T geom.Float] struct {
	Normal   Vec[T]
	Distance T
}

// PlaneFromPoint returns the plane with the given normal that passes
// through pt.
func PlaneFromPoint[T geom.Float](normal, pt Vec[T]) Plane[T] {
	return Plane[T]{Normal: normal, Distance: -normal.Dot(pt)}
}

// PlaneFromLine returns the plane passing through pt1 and pt2 with
// its normal rotated clockwise from the direction between them.
func PlaneFromLine[T geom.Float](pt1, pt2 Vec[T]) Plane[T] {
	return PlaneFromPoint(pt2.Sub(pt1).CW().Norm(), pt1)
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

// XIntercept returns the x coordinate at which the plane crosses the
// x axis.
func (p Plane[T]) XIntercept() (T, bool) {
	if p.Normal.X == 0 {
		return 0, false
	}
	return -p.Distance / p.Normal.X, true
}

// YIntercept returns the y coordinate at which the plane crosses the
// y axis.
func (p Plane[T]) YIntercept() (T, bool) {
	if p.Normal.Y == 0 {
		return 0, false
	}
	return -p.Distance / p.Normal.Y, true
}

// Intersect returns the point at which p and p2 cross. Parallel planes
// have no such point.
func (p Plane[T]) Intersect(p2 Plane[T]) (Vec[T], bool) {
	det := p.Normal.Cross(p2.Normal)
	if geom.Abs(det) < geom.Epsilon[T]() {
		return Vec[T]{}, false
	}

	a1, b1, c1 := p.Normal.X, p.Normal.Y, -p.Distance
	a2, b2, c2 := p2.Normal.X, p2.Normal.Y, -p2.Distance
	return Vec[T]{
		X: (b2*c1 - b1*c2) / det,
		Y: (a1*c2 - a2*c1) / det,
	}, true
}

func (p Plane[T]) Inside(pt Vec[T]) bool {
	return p.SignedDistance(pt) >= 0
}

// Trace finds where ray crosses the plane. A ray travelling against
// the normal produces an Entry hit with the plane's normal and one
// travelling with it produces an Exit hit with the normal negated.
func (p Plane[T]) Trace(ray Ray[T]) (Hit[T], bool) {
	return tracePlane(p.Normal, p.Distance, ray)
}

func tracePlane[T geom.Float](normal Vec[T], distance T, ray Ray[T]) (Hit[T], bool) {
	denom := normal.Dot(ray.Direction)
	if geom.Abs(denom) < geom.Epsilon[T]() {
		return Hit[T]{}, false
	}

	t := -(normal.Dot(ray.Origin) + distance) / denom
	if !ray.Distance.Contains(t) {
		return Hit[T]{}, false
	}

	hit := Hit[T]{Point: ray.At(t), Distance: t, Normal: normal, Side: xtrace.Entry}
	if denom > 0 {
		hit.Normal = normal.Neg()
		hit.Side = xtrace.Exit
	}
	return hit, true
}

// XIntercept returns the x coordinate at which ray crosses the x axis
// within its range.
func XIntercept[T geom.Float](ray Ray[T]) (T, bool) {
	if ray.Direction.Y == 0 {
		return 0, false
	}
	t := -ray.Origin.Y / ray.Direction.Y
	if !ray.Distance.Contains(t) {
		return 0, false
	}
	return ray.Origin.X + ray.Direction.X*t, true
}

// YIntercept returns the y coordinate at which ray crosses the y axis
// within its range.
func YIntercept[T geom.Float](ray Ray[T]) (T, bool) {
	if ray.Direction.X == 0 {
		return 0, false
	}
	t := -ray.Origin.X / ray.Direction.X
	if !ray.Distance.Contains(t) {
		return 0, false
	}
	return ray.Origin.Y + ray.Direction.Y*t, true
}
