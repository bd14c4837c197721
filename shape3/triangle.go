package shape3

import (
	"deedles.dev/xtrace"
	"deedles.dev/xtrace/geom"
)

// Triangle is the triangle with corners P, P+U, and P+V. Inside treats
// it as its [Triangle.Plane].
type Triangle[T geom.Float] struct {
	P, U, V Vec[T]
}

// TrianglePoints returns the triangle with the given corners.
func TrianglePoints[T geom.Float](p1, p2, p3 Vec[T]) Triangle[T] {
	return Triangle[T]{P: p1, U: p2.Sub(p1), V: p3.Sub(p1)}
}

func (Triangle[T]) isShape() {}

func (t Triangle[T]) P1() Vec[T] { return t.P }
func (t Triangle[T]) P2() Vec[T] { return t.P.Add(t.U) }
func (t Triangle[T]) P3() Vec[T] { return t.P.Add(t.V) }

// Normal returns the unit normal of t, following the right-hand rule
// from U to V.
func (t Triangle[T]) Normal() Vec[T] {
	return t.U.Cross(t.V).Norm()
}

// Plane returns the plane that t lies in.
func (t Triangle[T]) Plane() Plane[T] {
	return PlaneFromPoint(t.Normal(), t.P)
}

func (t Triangle[T]) Centroid() Vec[T] {
	return t.P.Add(t.U.Add(t.V).Mul(T(1) / 3))
}

// Barycentric returns the weights of the three corners of t that
// produce the projection of q onto t's plane.
func (t Triangle[T]) Barycentric(q Vec[T]) Vec[T] {
	w := q.Sub(t.P)
	d00, d01, d11 := t.U.Dot(t.U), t.U.Dot(t.V), t.V.Dot(t.V)
	d20, d21 := w.Dot(t.U), w.Dot(t.V)
	denom := d00*d11 - d01*d01
	b := (d11*d20 - d01*d21) / denom
	c := (d00*d21 - d01*d20) / denom
	return geom.V3(1-b-c, b, c)
}

func (t Triangle[T]) Inside(pt Vec[T]) bool {
	return t.Plane().Inside(pt)
}

// Trace uses the Möller–Trumbore algorithm. Hits closer than machine
// epsilon are ignored.
func (t Triangle[T]) Trace(ray Ray[T]) (Hit[T], bool) {
	eps := geom.Epsilon[T]()

	h := ray.Direction.Cross(t.V)
	a := t.U.Dot(h)
	if geom.Abs(a) < eps {
		return Hit[T]{}, false
	}

	f := 1 / a
	s := ray.Origin.Sub(t.P)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return Hit[T]{}, false
	}

	q := s.Cross(t.U)
	v := f * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return Hit[T]{}, false
	}

	dist := f * t.V.Dot(q)
	if !(dist > max(ray.Distance.Min, eps) && dist <= ray.Distance.Max) {
		return Hit[T]{}, false
	}

	hit := Hit[T]{Point: ray.At(dist), Distance: dist, Normal: t.Normal(), Side: xtrace.Entry}
	if hit.Normal.Dot(ray.Direction) > 0 {
		hit.Normal = hit.Normal.Neg()
		hit.Side = xtrace.Exit
	}
	return hit, true
}
