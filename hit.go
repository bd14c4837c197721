package xtrace

import (
	"fmt"

	"deedles.dev/xtrace/geom"
)

// Side says whether a ray is entering or leaving the solid interior
// of a shape at a hit.
type Side uint8

const (
	Entry Side = iota
	Exit
)

func (s Side) String() string {
	switch s {
	case Entry:
		return "Entry"
	case Exit:
		return "Exit"
	default:
		return fmt.Sprintf("Side(%d)", uint8(s))
	}
}

// Hit describes where a ray met the boundary of a shape.
//
// Normal is always unit length and faces against the ray that
// produced the hit.
type Hit[T geom.Float, V geom.Vector[T, V]] struct {
	Point    V
	Distance T
	Normal   V

	// Index is the position of the shape that was hit in the
	// collection passed to [TraceCollection]. It is zero otherwise.
	Index int

	Side Side
}

// Offset returns h as seen from a ray that started d earlier.
func (h Hit[T, V]) Offset(d T) Hit[T, V] {
	h.Distance += d
	return h
}
