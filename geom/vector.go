package geom

// Vector is the set of operations that rays and hits need from a
// vector type. Both [Vec2] and [Vec3] implement it.
type Vector[T Float, V any] interface {
	Add(V) V
	Sub(V) V
	Mul(T) V
	Neg() V
	Dot(V) T
	Len() T
	Norm() V
	Reflect(normal V) V
}

var (
	_ Vector[float64, Vec2[float64]] = Vec2[float64]{}
	_ Vector[float32, Vec3[float32]] = Vec3[float32]{}
)
