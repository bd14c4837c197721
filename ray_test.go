package xtrace_test

import (
	"math"
	"testing"

	"deedles.dev/xtrace"
	"deedles.dev/xtrace/geom"
	"deedles.dev/xtrace/shape2"
	"deedles.dev/xtrace/shape3"
	"github.com/stretchr/testify/require"
)

func TestRayStep(t *testing.T) {
	ray := shape2.Ray[float64]{
		Origin:    geom.V2(0.0, 0.0),
		Direction: geom.V2(1.0, 0.0),
		Distance:  geom.Interval[float64]{Min: 1, Max: 10},
	}
	require.Equal(t, geom.V2(2.5, 0.0), ray.At(2.5))

	s := ray.Step(3)
	require.Equal(t, geom.V2(3.0, 0.0), s.Origin)
	require.Equal(t, ray.Direction, s.Direction)
	require.Equal(t, geom.Interval[float64]{Min: 0, Max: 7}, s.Distance)

	s = ray.Step(0.5)
	require.Equal(t, geom.Interval[float64]{Min: 0.5, Max: 9.5}, s.Distance)
}

func TestNewRay(t *testing.T) {
	ray := xtrace.NewRay[float64](geom.V3(1.0, 2.0, 3.0), geom.V3(0.0, 0.0, -4.0))
	require.Equal(t, geom.V3(0.0, 0.0, -1.0), ray.Direction)
	require.Equal(t, geom.Forward[float64](), ray.Distance)
}

func TestRayInsideTrace(t *testing.T) {
	c := shape2.Circle[float64]{Center: geom.V2(0.0, 0.0), Radius: 1}
	ray := shape2.NewRay(geom.V2(-3.0, 0.0), geom.V2(1.0, 0.0))
	require.False(t, ray.Inside(c))

	hit, ok := ray.Trace(c)
	require.True(t, ok)
	require.Equal(t, 2.0, hit.Distance)
	require.Equal(t, xtrace.Entry, hit.Side)
	require.Equal(t, "Entry", hit.Side.String())
	require.Equal(t, "Exit", xtrace.Exit.String())

	require.True(t, ray.Step(2.5).Inside(c))
}

func TestReflect(t *testing.T) {
	floor := shape2.Plane[float64]{Normal: geom.V2(0.0, 1.0)}
	ray := shape2.Ray[float64]{
		Origin:    geom.V2(-1.0, 1.0),
		Direction: geom.V2(1.0, -1.0).Norm(),
		Distance:  geom.Interval[float64]{Min: 0, Max: 10},
	}

	hit, ok := ray.Trace(floor)
	require.True(t, ok)
	require.InDelta(t, math.Sqrt2, hit.Distance, 1e-12)

	r := ray.Reflect(hit)
	require.Equal(t, hit.Point, r.Origin)
	require.InDelta(t, 1/math.Sqrt2, r.Direction.X, 1e-12)
	require.InDelta(t, 1/math.Sqrt2, r.Direction.Y, 1e-12)
	require.InDelta(t, 10-math.Sqrt2, r.Distance.Max, 1e-12)

	_, ok = r.Step(1e-6).Trace(floor)
	require.False(t, ok)
}

func TestReflectSphere(t *testing.T) {
	s := shape3.Sphere[float64]{Center: geom.V3(0.0, 0.0, 0.0), Radius: 1}
	for _, dir := range []geom.Vec3[float64]{
		geom.V3(0.0, 0.0, -1.0),
		geom.V3(0.1, 0.3, -1.0),
		geom.V3(-0.2, 0.1, -1.0),
	} {
		ray := shape3.NewRay(geom.V3(0.0, 0.0, 3.0), dir)
		hit, ok := ray.Trace(s)
		require.True(t, ok)

		_, ok = ray.Reflect(hit).Step(1e-9).Trace(s)
		require.False(t, ok, "reflected ray hit the sphere again for %v", dir)
	}
}

func TestRefract(t *testing.T) {
	glass := shape2.Plane[float64]{Normal: geom.V2(0.0, 1.0)}

	t.Run("Straight", func(t *testing.T) {
		ray := shape2.NewRay(geom.V2(0.0, 1.0), geom.V2(0.0, -1.0))
		hit, ok := ray.Trace(glass)
		require.True(t, ok)

		r, ok := ray.Refract(hit, 1, 1.5)
		require.True(t, ok)
		require.InDelta(t, 0, r.Direction.X, 1e-12)
		require.InDelta(t, -1, r.Direction.Y, 1e-12)
	})

	t.Run("Bend", func(t *testing.T) {
		ray := shape2.NewRay(geom.V2(-1.0, 1.0), geom.V2(1.0, -1.0))
		hit, ok := ray.Trace(glass)
		require.True(t, ok)

		r, ok := ray.Refract(hit, 1, 1.5)
		require.True(t, ok)
		require.InDelta(t, 1, r.Direction.Len(), 1e-12)

		// sin(45°) / 1.5
		require.InDelta(t, math.Sqrt2/2/1.5, r.Direction.X, 1e-12)
		require.Less(t, r.Direction.Y, 0.0)
	})

	t.Run("TotalInternalReflection", func(t *testing.T) {
		ray := shape2.NewRay(geom.V2(-1.0, -0.1), geom.V2(1.0, 0.1))
		hit, ok := ray.Trace(glass)
		require.True(t, ok)
		require.Equal(t, xtrace.Exit, hit.Side)

		_, ok = ray.Refract(hit, 1, 1.5)
		require.False(t, ok)
	})
}
