package geom

import "fmt"

// Interval is the range of distances along a ray at which a hit is
// accepted. Min is exclusive and Max is inclusive, so that a ray
// leaving a surface at distance zero does not immediately hit it
// again.
type Interval[T Float] struct {
	Min, Max T
}

// Forward returns the interval (0, +Inf].
func Forward[T Float]() Interval[T] {
	return Interval[T]{Min: 0, Max: Inf[T]()}
}

func (i Interval[T]) String() string {
	return fmt.Sprintf("(%v, %v]", i.Min, i.Max)
}

// Contains reports whether t is in the interval.
func (i Interval[T]) Contains(t T) bool {
	return t > i.Min && t <= i.Max
}

// Shift returns the interval as seen from d further along the ray.
// The lower bound never drops below zero.
func (i Interval[T]) Shift(d T) Interval[T] {
	return Interval[T]{Min: max(i.Min-d, 0), Max: i.Max - d}
}

// Empty reports whether no distance can be contained in i.
func (i Interval[T]) Empty() bool {
	return !(i.Max > i.Min)
}
