package xtrace

import (
	"deedles.dev/xtrace/geom"
)

// MaxMarchSteps is the number of boundary crossings that a marching
// composite will follow before giving up on a ray.
const MaxMarchSteps = 64

// Union is the set of points in either of two shapes.
type Union[T geom.Float, V geom.Vector[T, V]] struct {
	Shape1, Shape2 Tracer[T, V]
}

func (u Union[T, V]) Inside(pt V) bool {
	return u.Shape1.Inside(pt) || u.Shape2.Inside(pt)
}

func (u Union[T, V]) Trace(ray Ray[T, V]) (Hit[T, V], bool) {
	start := ray.At(max(ray.Distance.Min, 0))
	switch {
	case u.Shape1.Inside(start):
		return traceThrough(ray, u.Shape1, u.Shape2)
	case u.Shape2.Inside(start):
		return traceThrough(ray, u.Shape2, u.Shape1)
	}

	h1, ok1 := u.Shape1.Trace(ray)
	h2, ok2 := u.Shape2.Trace(ray)
	return nearest(h1, ok1, h2, ok2)
}

// traceThrough finds the exit of a ray that starts inside of from. If
// the exit lands inside of other, the union continues and the exit of
// other is used instead.
func traceThrough[T geom.Float, V geom.Vector[T, V]](ray Ray[T, V], from, other Tracer[T, V]) (Hit[T, V], bool) {
	hit, ok := from.Trace(ray)
	if !ok {
		return hit, false
	}

	next := ray.Step(hit.Distance)
	if !other.Inside(next.Origin) {
		return hit, true
	}

	deeper, ok := other.Trace(next)
	if !ok {
		return hit, true
	}
	return deeper.Offset(hit.Distance), true
}

// Intersection is the set of points in both of two shapes.
type Intersection[T geom.Float, V geom.Vector[T, V]] struct {
	Shape1, Shape2 Tracer[T, V]
}

func (s Intersection[T, V]) Inside(pt V) bool {
	return both(s.Shape1.Inside(pt), s.Shape2.Inside(pt))
}

func (s Intersection[T, V]) Trace(ray Ray[T, V]) (Hit[T, V], bool) {
	return march(ray, s.Shape1, s.Shape2, both)
}

// Difference is the set of points in Shape1 but not in Shape2.
type Difference[T geom.Float, V geom.Vector[T, V]] struct {
	Shape1, Shape2 Tracer[T, V]
}

func (s Difference[T, V]) Inside(pt V) bool {
	return firstOnly(s.Shape1.Inside(pt), s.Shape2.Inside(pt))
}

func (s Difference[T, V]) Trace(ray Ray[T, V]) (Hit[T, V], bool) {
	return march(ray, s.Shape1, s.Shape2, firstOnly)
}

// Xor is the set of points in exactly one of two shapes.
type Xor[T geom.Float, V geom.Vector[T, V]] struct {
	Shape1, Shape2 Tracer[T, V]
}

func (s Xor[T, V]) Inside(pt V) bool {
	return either(s.Shape1.Inside(pt), s.Shape2.Inside(pt))
}

func (s Xor[T, V]) Trace(ray Ray[T, V]) (Hit[T, V], bool) {
	return march(ray, s.Shape1, s.Shape2, either)
}

func both(in1, in2 bool) bool      { return in1 && in2 }
func firstOnly(in1, in2 bool) bool { return in1 && !in2 }
func either(in1, in2 bool) bool    { return in1 != in2 }

// march walks ray through the boundary crossings of two shapes,
// tracking whether it is inside of each, until membership in the
// combined shape, as decided by member, changes. That crossing is the
// combined shape's boundary.
//
// The hit keeps the normal of the operand that produced it, which
// already faces the ray. Its side is taken from the transition.
func march[T geom.Float, V geom.Vector[T, V]](ray Ray[T, V], s1, s2 Tracer[T, V], member func(in1, in2 bool) bool) (Hit[T, V], bool) {
	// Membership is tracked from where the interval starts.
	r := ray
	r.Distance.Min = 0
	var traveled T
	if ray.Distance.Min > 0 {
		traveled = ray.Distance.Min
		r = ray.Step(traveled)
	}
	in1, in2 := s1.Inside(r.Origin), s2.Inside(r.Origin)

	tol := geom.Tolerance[T]()
	for range MaxMarchSteps {
		h1, ok1 := s1.Trace(r)
		h2, ok2 := s2.Trace(r)
		hit, ok := nearest(h1, ok1, h2, ok2)
		if !ok {
			return Hit[T, V]{}, false
		}

		dist := traveled + hit.Distance
		if !ray.Distance.Contains(dist) {
			return Hit[T, V]{}, false
		}

		// Crossings closer together than the step are passed at once.
		was := member(in1, in2)
		if ok1 && h1.Distance-hit.Distance <= tol {
			in1 = !in1
		}
		if ok2 && h2.Distance-hit.Distance <= tol {
			in2 = !in2
		}
		now := member(in1, in2)

		if was != now {
			hit.Distance = dist
			hit.Side = Exit
			if now {
				hit.Side = Entry
			}
			return hit, true
		}

		step := hit.Distance + tol
		r = r.Step(step)
		traveled += step
	}

	Logger().Debug("csg march gave up", "steps", MaxMarchSteps, "origin", ray.Origin, "direction", ray.Direction)
	return Hit[T, V]{}, false
}
