package shape3

import "deedles.dev/xtrace/geom"

// Line is the segment between Start and End. It is infinitely thin,
// so rays never hit it.
type Line[T geom.Float] struct {
	Start, End Vec[T]
}

func (Line[T]) isShape() {}

func (l Line[T]) Delta() Vec[T] {
	return l.End.Sub(l.Start)
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

func (l Line[T]) Distance(pt Vec[T]) T {
	return l.Project(pt).Distance(pt)
}

func (Line[T]) Inside(Vec[T]) bool { return false }

func (Line[T]) Trace(Ray[T]) (Hit[T], bool) { return Hit[T]{}, false }
