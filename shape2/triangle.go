package shape2

import (
	"cmp"

	"deedles.dev/xtrace/geom"
)

// Triangle is the triangle with corners P, P+U, and P+V.
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

func (t Triangle[T]) Centroid() Vec[T] {
	return t.P.Add(t.U.Add(t.V).Mul(T(1) / 3))
}

func (t Triangle[T]) Bounds() Bounds[T] {
	return Bounds[T]{Mins: t.P, Maxs: t.P}.Include(t.P2()).Include(t.P3())
}

// Decompose returns the coefficients a and b such that
//
//	q == t.P + t.U*a + t.V*b
func (t Triangle[T]) Decompose(q Vec[T]) (a, b T) {
	d := q.Sub(t.P)
	det := t.U.Cross(t.V)
	return d.Cross(t.V) / det, t.U.Cross(d) / det
}

// Barycentric returns the weights of the three corners of t that
// produce q.
func (t Triangle[T]) Barycentric(q Vec[T]) geom.Vec3[T] {
	a, b := t.Decompose(q)
	return geom.V3(1-a-b, a, b)
}

// edges returns the start and direction of each edge of t.
func (t Triangle[T]) edges() [3][2]Vec[T] {
	return [3][2]Vec[T]{
		{t.P, t.U},
		{t.P2(), t.V.Sub(t.U)},
		{t.P3(), t.V.Neg()},
	}
}

// Inside reports whether pt is inside of t or on its boundary,
// regardless of the triangle's winding.
func (t Triangle[T]) Inside(pt Vec[T]) bool {
	var pos, neg bool
	for _, e := range t.edges() {
		c := e[1].Cross(pt.Sub(e[0]))
		pos = pos || c > 0
		neg = neg || c < 0
	}
	return !(pos && neg)
}

// Trace tests ray against each edge of t and returns the nearest hit.
// The normal of each edge points away from the triangle, flipped to
// face the ray when it is leaving.
func (t Triangle[T]) Trace(ray Ray[T]) (hit Hit[T], ok bool) {
	flip := t.U.Cross(t.V) < 0
	for _, e := range t.edges() {
		start, edge := e[0], e[1]
		if flip {
			// Trace the reversed edge so that CCW stays outward.
			start, edge = start.Add(edge), edge.Neg()
		}

		h, found := traceEdge(start, edge, ray)
		if !found {
			continue
		}
		if ok && cmp.Compare(h.Distance, hit.Distance) >= 0 {
			continue
		}
		hit, ok = h, true
	}
	return hit, ok
}
