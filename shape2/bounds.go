package shape2

import (
	"deedles.dev/xtrace"
	"deedles.dev/xtrace/geom"
)

// Bounds is an axis-aligned rectangle. Its Mins should be less than
// or equal to its Maxs on both axes. See [Bounds.Norm].
type Bounds[T geom.Float] struct {
	Mins, Maxs Vec[T]
}

// Bx is shorthand for Bounds[T]{Mins: Vec[T]{x0, y0}, Maxs: Vec[T]{x1, y1}}.
func Bx[T geom.Float](x0, y0, x1, y1 T) Bounds[T] {
	return Bounds[T]{Mins: geom.V2(x0, y0), Maxs: geom.V2(x1, y1)}
}

// BoundsAt returns the bounds with the given size whose Mins is pt.
func BoundsAt[T geom.Float](pt, size Vec[T]) Bounds[T] {
	return Bounds[T]{Mins: pt, Maxs: pt.Add(size)}
}

func (Bounds[T]) isShape() {}

// Norm returns a copy of b with Mins and Maxs swapped per axis where
// necessary.
func (b Bounds[T]) Norm() Bounds[T] {
	mins, maxs := b.Mins.MinMax(b.Maxs)
	return Bounds[T]{Mins: mins, Maxs: maxs}
}

func (b Bounds[T]) Size() Vec[T]   { return b.Maxs.Sub(b.Mins) }
func (b Bounds[T]) Width() T       { return b.Maxs.X - b.Mins.X }
func (b Bounds[T]) Height() T      { return b.Maxs.Y - b.Mins.Y }
func (b Bounds[T]) Area() T        { return b.Width() * b.Height() }
func (b Bounds[T]) Center() Vec[T] { return b.Mins.Lerp(b.Maxs, 0.5) }

func (b Bounds[T]) Left() T   { return b.Mins.X }
func (b Bounds[T]) Right() T  { return b.Maxs.X }
func (b Bounds[T]) Top() T    { return b.Mins.Y }
func (b Bounds[T]) Bottom() T { return b.Maxs.Y }

func (b Bounds[T]) TopLeft() Vec[T]     { return b.Mins }
func (b Bounds[T]) TopRight() Vec[T]    { return geom.V2(b.Maxs.X, b.Mins.Y) }
func (b Bounds[T]) BottomLeft() Vec[T]  { return geom.V2(b.Mins.X, b.Maxs.Y) }
func (b Bounds[T]) BottomRight() Vec[T] { return b.Maxs }

// The sides of b, wound clockwise starting from the top left corner.
func (b Bounds[T]) TopSide() Line[T]    { return Line[T]{Start: b.TopLeft(), End: b.TopRight()} }
func (b Bounds[T]) RightSide() Line[T]  { return Line[T]{Start: b.TopRight(), End: b.BottomRight()} }
func (b Bounds[T]) BottomSide() Line[T] { return Line[T]{Start: b.BottomRight(), End: b.BottomLeft()} }
func (b Bounds[T]) LeftSide() Line[T]   { return Line[T]{Start: b.BottomLeft(), End: b.TopLeft()} }

// Add returns b translated by v.
func (b Bounds[T]) Add(v Vec[T]) Bounds[T] {
	return Bounds[T]{Mins: b.Mins.Add(v), Maxs: b.Maxs.Add(v)}
}

// Resize returns b with its Mins unchanged and the given size.
func (b Bounds[T]) Resize(size Vec[T]) Bounds[T] {
	return BoundsAt(b.Mins, size)
}

// Contains reports whether pt is inside of b or on its boundary.
func (b Bounds[T]) Contains(pt Vec[T]) bool {
	return pt.X >= b.Mins.X && pt.X <= b.Maxs.X &&
		pt.Y >= b.Mins.Y && pt.Y <= b.Maxs.Y
}

// Encloses reports whether b2 is entirely inside of b.
func (b Bounds[T]) Encloses(b2 Bounds[T]) bool {
	return b.Contains(b2.Mins) && b.Contains(b2.Maxs)
}

// Overlaps reports whether b and b2 share any points.
func (b Bounds[T]) Overlaps(b2 Bounds[T]) bool {
	return b.Mins.X <= b2.Maxs.X && b2.Mins.X <= b.Maxs.X &&
		b.Mins.Y <= b2.Maxs.Y && b2.Mins.Y <= b.Maxs.Y
}

// Include returns the smallest bounds containing both b and pt.
func (b Bounds[T]) Include(pt Vec[T]) Bounds[T] {
	return Bounds[T]{Mins: b.Mins.Min(pt), Maxs: b.Maxs.Max(pt)}
}

// Union returns the smallest bounds containing both b and b2.
func (b Bounds[T]) Union(b2 Bounds[T]) Bounds[T] {
	return Bounds[T]{Mins: b.Mins.Min(b2.Mins), Maxs: b.Maxs.Max(b2.Maxs)}
}

// Intersect returns the area shared by b and b2, if there is any.
func (b Bounds[T]) Intersect(b2 Bounds[T]) (Bounds[T], bool) {
	r := Bounds[T]{Mins: b.Mins.Max(b2.Mins), Maxs: b.Maxs.Min(b2.Maxs)}
	if r.Mins.X > r.Maxs.X || r.Mins.Y > r.Maxs.Y {
		return Bounds[T]{}, false
	}
	return r, true
}

func (b Bounds[T]) Inside(pt Vec[T]) bool {
	return b.Contains(pt)
}

// Trace uses the slab method. A ray starting inside of b reports the
// point at which it leaves.
func (b Bounds[T]) Trace(ray Ray[T]) (Hit[T], bool) {
	inv := ray.Direction.Inv()
	tmin, tmax := b.Mins.Sub(ray.Origin).MulV(inv).MinMax(b.Maxs.Sub(ray.Origin).MulV(inv))
	t0, t1 := tmin.VMax(), tmax.VMin()
	if !(t0 <= t1) {
		return Hit[T]{}, false
	}

	switch {
	case ray.Distance.Contains(t0):
		return b.hit(ray, t0, tmin, xtrace.Entry), true
	case ray.Distance.Contains(t1):
		return b.hit(ray, t1, tmax, xtrace.Exit), true
	default:
		return Hit[T]{}, false
	}
}

// hit builds the hit at distance t, which is the component of axes
// belonging to the face that was crossed.
func (b Bounds[T]) hit(ray Ray[T], t T, axes Vec[T], side xtrace.Side) Hit[T] {
	var normal Vec[T]
	if t == axes.X {
		normal.X = -geom.Signum(ray.Direction.X)
	} else {
		normal.Y = -geom.Signum(ray.Direction.Y)
	}
	return Hit[T]{Point: ray.At(t), Distance: t, Normal: normal, Side: side}
}
