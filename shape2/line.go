package shape2

import (
	"deedles.dev/xtrace"
	"deedles.dev/xtrace/geom"
)

// Line is the segment between Start and End. It has no interior.
type Line[T geom.Float] struct {
	Start, End Vec[T]
}

func (Line[T]) isShape() {}

func (l Line[T]) Delta() Vec[T] {
	return l.End.Sub(l.Start)
}

func (l Line[T]) Bounds() Bounds[T] {
	mins, maxs := l.Start.MinMax(l.End)
	return Bounds[T]{Mins: mins, Maxs: maxs}
}

// Project returns the point on the segment nearest to pt.
func (l Line[T]) Project(pt Vec[T]) Vec[T] {
	d := l.Delta()
	ls := d.LenSqr()
	if ls == 0 {
		return l.Start
	}
	t := geom.Clamp(pt.Sub(l.Start).Dot(d)/ls, 0, 1)
	return l.Start.Add(d.Mul(t))
}

// Distance returns the distance from pt to the nearest point on the
// segment.
func (l Line[T]) Distance(pt Vec[T]) T {
	return l.Project(pt).Distance(pt)
}

// SegmentX returns the parameter along l2 at which the infinite
// extensions of l and l2 cross.
func (l Line[T]) SegmentX(l2 Line[T]) (T, bool) {
	r, s := l.Delta(), l2.Delta()
	denom := r.Cross(s)
	if denom == 0 {
		return 0, false
	}
	return l2.Start.Sub(l.Start).Cross(r) / denom, true
}

// Intersect returns the point at which the infinite extensions of l
// and l2 cross.
func (l Line[T]) Intersect(l2 Line[T]) (Vec[T], bool) {
	u, ok := l.SegmentX(l2)
	if !ok {
		return Vec[T]{}, false
	}
	return l2.Start.Add(l2.Delta().Mul(u)), true
}

func (l Line[T]) Lerp(l2 Line[T], t T) Line[T] {
	return Line[T]{Start: l.Start.Lerp(l2.Start, t), End: l.End.Lerp(l2.End, t)}
}

func (Line[T]) Inside(Vec[T]) bool { return false }

// Trace finds where ray crosses the segment. The normal is the
// segment's direction rotated counterclockwise, flipped to face the
// ray. Crossing from the side that the unflipped normal points to is
// an Entry.
func (l Line[T]) Trace(ray Ray[T]) (Hit[T], bool) {
	return traceEdge(l.Start, l.Delta(), ray)
}

func traceEdge[T geom.Float](start, edge Vec[T], ray Ray[T]) (Hit[T], bool) {
	denom := ray.Direction.Cross(edge)
	if denom == 0 {
		return Hit[T]{}, false
	}

	qp := start.Sub(ray.Origin)
	t := qp.Cross(edge) / denom
	s := qp.Cross(ray.Direction) / denom
	if !ray.Distance.Contains(t) || s < 0 || s > 1 {
		return Hit[T]{}, false
	}

	hit := Hit[T]{Point: ray.At(t), Distance: t, Normal: edge.CCW().Norm(), Side: xtrace.Entry}
	if denom > 0 {
		hit.Normal = hit.Normal.Neg()
		hit.Side = xtrace.Exit
	}
	return hit, true
}
