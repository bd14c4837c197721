package xtrace_test

import (
	"bytes"
	"log/slog"
	"math/rand/v2"
	"testing"

	"deedles.dev/xtrace"
	"deedles.dev/xtrace/geom"
	"deedles.dev/xtrace/shape2"
	"deedles.dev/xtrace/shape3"
	"github.com/stretchr/testify/require"
)

var (
	left  = shape2.Circle[float64]{Center: geom.V2(0.0, 0.0), Radius: 1}
	right = shape2.Circle[float64]{Center: geom.V2(1.5, 0.0), Radius: 1}
)

type csgCase struct {
	name   string
	origin geom.Vec2[float64]
	dir    geom.Vec2[float64]
	dist   float64
	normal geom.Vec2[float64]
	side   xtrace.Side
	ok     bool
}

func runCSG(t *testing.T, shape shape2.Tracer[float64], tests []csgCase) {
	t.Helper()
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ray := shape2.NewRay(test.origin, test.dir)
			hit, ok := shape.Trace(ray)
			require.Equal(t, test.ok, ok)
			if !ok {
				return
			}
			require.InDelta(t, test.dist, hit.Distance, 1e-9)
			require.InDelta(t, test.normal.X, hit.Normal.X, 1e-9)
			require.InDelta(t, test.normal.Y, hit.Normal.Y, 1e-9)
			require.Equal(t, test.side, hit.Side)
			require.InDelta(t, ray.At(hit.Distance).X, hit.Point.X, 1e-9)
		})
	}
}

func TestUnion(t *testing.T) {
	u := shape2.Union[float64](left, right)
	require.True(t, u.Inside(geom.V2(-0.5, 0.0)))
	require.True(t, u.Inside(geom.V2(2.0, 0.0)))
	require.False(t, u.Inside(geom.V2(3.0, 0.0)))

	runCSG(t, u, []csgCase{
		{name: "Outside", origin: geom.V2(-5.0, 0.0), dir: geom.V2(1.0, 0.0), dist: 4, normal: geom.V2(-1.0, 0.0), side: xtrace.Entry, ok: true},
		{name: "OutsideRight", origin: geom.V2(5.0, 0.0), dir: geom.V2(-1.0, 0.0), dist: 2.5, normal: geom.V2(1.0, 0.0), side: xtrace.Entry, ok: true},
		{name: "InsideFirst", origin: geom.V2(0.0, 0.0), dir: geom.V2(1.0, 0.0), dist: 2.5, normal: geom.V2(-1.0, 0.0), side: xtrace.Exit, ok: true},
		{name: "InsideSecond", origin: geom.V2(2.0, 0.0), dir: geom.V2(-1.0, 0.0), dist: 3, normal: geom.V2(1.0, 0.0), side: xtrace.Exit, ok: true},
		{name: "InsideBoth", origin: geom.V2(0.75, 0.0), dir: geom.V2(1.0, 0.0), dist: 1.75, normal: geom.V2(-1.0, 0.0), side: xtrace.Exit, ok: true},
		{name: "InsideOneOnly", origin: geom.V2(0.0, 0.0), dir: geom.V2(-1.0, 0.0), dist: 1, normal: geom.V2(1.0, 0.0), side: xtrace.Exit, ok: true},
		{name: "Miss", origin: geom.V2(-5.0, 3.0), dir: geom.V2(1.0, 0.0)},
	})
}

func TestIntersection(t *testing.T) {
	s := shape2.Intersection[float64](left, right)
	require.True(t, s.Inside(geom.V2(0.75, 0.0)))
	require.False(t, s.Inside(geom.V2(0.0, 0.0)))

	runCSG(t, s, []csgCase{
		{name: "FromLeft", origin: geom.V2(-5.0, 0.0), dir: geom.V2(1.0, 0.0), dist: 5.5, normal: geom.V2(-1.0, 0.0), side: xtrace.Entry, ok: true},
		{name: "FromRight", origin: geom.V2(5.0, 0.0), dir: geom.V2(-1.0, 0.0), dist: 4, normal: geom.V2(1.0, 0.0), side: xtrace.Entry, ok: true},
		{name: "Inside", origin: geom.V2(0.75, 0.0), dir: geom.V2(1.0, 0.0), dist: 0.25, normal: geom.V2(-1.0, 0.0), side: xtrace.Exit, ok: true},
		{name: "InsideOne", origin: geom.V2(0.0, 0.0), dir: geom.V2(1.0, 0.0), dist: 0.5, normal: geom.V2(-1.0, 0.0), side: xtrace.Entry, ok: true},
		{name: "Disjoint", origin: geom.V2(-5.0, 0.9), dir: geom.V2(1.0, 0.0)},
		{name: "Away", origin: geom.V2(-5.0, 0.0), dir: geom.V2(-1.0, 0.0)},
	})

	t.Run("Interval", func(t *testing.T) {
		ray := shape2.NewRay(geom.V2(-5.0, 0.0), geom.V2(1.0, 0.0))
		ray.Distance.Max = 5
		_, ok := s.Trace(ray)
		require.False(t, ok)
	})
}

func TestDifference(t *testing.T) {
	box := shape2.Bx(0.0, 0.0, 4.0, 2.0)
	bite := shape2.Circle[float64]{Center: geom.V2(0.0, 1.0), Radius: 1}
	s := shape2.Difference[float64](box, bite)

	require.True(t, s.Inside(geom.V2(2.0, 1.0)))
	require.False(t, s.Inside(geom.V2(0.5, 1.0)))
	require.False(t, s.Inside(geom.V2(5.0, 1.0)))

	runCSG(t, s, []csgCase{
		{name: "IntoBite", origin: geom.V2(-5.0, 1.0), dir: geom.V2(1.0, 0.0), dist: 6, normal: geom.V2(-1.0, 0.0), side: xtrace.Entry, ok: true},
		{name: "FromRight", origin: geom.V2(9.0, 1.0), dir: geom.V2(-1.0, 0.0), dist: 5, normal: geom.V2(1.0, 0.0), side: xtrace.Entry, ok: true},
		{name: "InsideBite", origin: geom.V2(0.5, 1.0), dir: geom.V2(1.0, 0.0), dist: 0.5, normal: geom.V2(-1.0, 0.0), side: xtrace.Entry, ok: true},
		{name: "Inside", origin: geom.V2(2.0, 1.0), dir: geom.V2(-1.0, 0.0), dist: 1, normal: geom.V2(1.0, 0.0), side: xtrace.Exit, ok: true},
		{name: "Below", origin: geom.V2(-5.0, -1.0), dir: geom.V2(1.0, 0.0)},
	})
}

func TestXor(t *testing.T) {
	s := shape2.Xor[float64](left, right)
	require.True(t, s.Inside(geom.V2(0.0, 0.0)))
	require.False(t, s.Inside(geom.V2(0.75, 0.0)))

	runCSG(t, s, []csgCase{
		{name: "FromLeft", origin: geom.V2(-5.0, 0.0), dir: geom.V2(1.0, 0.0), dist: 4, normal: geom.V2(-1.0, 0.0), side: xtrace.Entry, ok: true},
		{name: "InsideFirst", origin: geom.V2(0.0, 0.0), dir: geom.V2(1.0, 0.0), dist: 0.5, normal: geom.V2(-1.0, 0.0), side: xtrace.Exit, ok: true},
		{name: "InsideBoth", origin: geom.V2(0.75, 0.0), dir: geom.V2(1.0, 0.0), dist: 0.25, normal: geom.V2(-1.0, 0.0), side: xtrace.Entry, ok: true},
	})
}

func TestNestedCSG(t *testing.T) {
	lens := shape3.Intersection[float64](
		shape3.Sphere[float64]{Center: geom.V3(-0.5, 0.0, 0.0), Radius: 1},
		shape3.Sphere[float64]{Center: geom.V3(0.5, 0.0, 0.0), Radius: 1},
	)
	s := shape3.Union[float64](lens, shape3.Bounds[float64]{Mins: geom.V3(-0.25, -2.0, -0.25), Maxs: geom.V3(0.25, -0.5, 0.25)})

	ray := shape3.NewRay(geom.V3(0.0, 5.0, 0.0), geom.V3(0.0, -1.0, 0.0))
	hit, ok := s.Trace(ray)
	require.True(t, ok)
	require.InDelta(t, 5-geom.Sqrt(0.75), hit.Distance, 1e-9)
	require.Equal(t, xtrace.Entry, hit.Side)

	ray.Origin = geom.V3(0.0, 0.0, 0.0)
	hit, ok = s.Trace(ray)
	require.True(t, ok)
	require.InDelta(t, 2, hit.Distance, 1e-9)
	require.Equal(t, xtrace.Exit, hit.Side)
	require.InDelta(t, 1, hit.Normal.Y, 1e-9)
}

func TestCSGIntervalStart(t *testing.T) {
	a := shape3.Sphere[float64]{Center: geom.V3(0.0, 0.0, 0.0), Radius: 1}
	b := shape3.Sphere[float64]{Center: geom.V3(0.5, 0.0, 0.0), Radius: 1}
	c := shape3.Sphere[float64]{Center: geom.V3(1.5, 0.0, 0.0), Radius: 1}

	tests := []struct {
		name   string
		shape  shape3.Tracer[float64]
		min    float64
		dist   float64
		normal geom.Vec3[float64]
		side   xtrace.Side
	}{
		{name: "Intersection", shape: shape3.Intersection[float64](a, b), min: 4.2, dist: 4.5, normal: geom.V3(-1.0, 0.0, 0.0), side: xtrace.Entry},
		{name: "IntersectionInside", shape: shape3.Intersection[float64](a, b), min: 4.75, dist: 6, normal: geom.V3(-1.0, 0.0, 0.0), side: xtrace.Exit},
		{name: "Difference", shape: shape3.Difference[float64](a, b), min: 4.2, dist: 4.5, normal: geom.V3(-1.0, 0.0, 0.0), side: xtrace.Exit},
		{name: "Xor", shape: shape3.Xor[float64](a, b), min: 5.2, dist: 6, normal: geom.V3(-1.0, 0.0, 0.0), side: xtrace.Entry},
		{name: "Union", shape: shape3.Union[float64](a, c), min: 4.5, dist: 7.5, normal: geom.V3(-1.0, 0.0, 0.0), side: xtrace.Exit},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ray := shape3.NewRay(geom.V3(-5.0, 0.0, 0.0), geom.V3(1.0, 0.0, 0.0))
			ray.Distance.Min = test.min
			hit, ok := ray.Trace(test.shape)
			require.True(t, ok)
			require.InDelta(t, test.dist, hit.Distance, 1e-9)
			require.InDelta(t, test.normal.X, hit.Normal.X, 1e-9)
			require.Equal(t, test.side, hit.Side)
			require.InDelta(t, ray.At(hit.Distance).X, hit.Point.X, 1e-9)

			// The same query from a ray that starts where the interval
			// does.
			stepped, ok := ray.Step(test.min).Trace(test.shape)
			require.True(t, ok)
			require.InDelta(t, hit.Distance, stepped.Distance+test.min, 1e-9)
			require.Equal(t, hit.Side, stepped.Side)
		})
	}
}

func TestIntersectionInside(t *testing.T) {
	a := shape3.Sphere[float64]{Center: geom.V3(0.0, 0.0, 0.0), Radius: 2}
	b := shape3.Bounds[float64]{Mins: geom.V3(-1.0, -1.0, -1.0), Maxs: geom.V3(3.0, 1.0, 1.0)}
	s := shape3.Intersection[float64](a, b)
	d := shape3.Difference[float64](a, b)
	x := shape3.Xor[float64](a, b)

	r := rand.New(rand.NewPCG(1, 2))
	for range 1000 {
		pt := geom.V3(r.Float64()*8-4, r.Float64()*8-4, r.Float64()*8-4)
		ina, inb := a.Inside(pt), b.Inside(pt)
		require.Equal(t, ina && inb, s.Inside(pt))
		require.Equal(t, ina && !inb, d.Inside(pt))
		require.Equal(t, ina != inb, x.Inside(pt))
	}
}

func TestMarchBudget(t *testing.T) {
	var buf bytes.Buffer
	xtrace.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { xtrace.SetLogger(nil) })

	// A row of disjoint circles has two crossings each.
	var row shape2.Tracer[float64] = shape2.Circle[float64]{Center: geom.V2(0.0, 0.0), Radius: 0.25}
	for i := 1; i < 40; i++ {
		row = shape2.Union[float64](row, shape2.Circle[float64]{Center: geom.V2(float64(i), 0.0), Radius: 0.25})
	}

	ray := shape2.NewRay(geom.V2(-1.0, 0.0), geom.V2(1.0, 0.0))

	near := shape2.Bx(9.5, -1.0, 100.0, 1.0)
	hit, ok := shape2.Intersection[float64](row, near).Trace(ray)
	require.True(t, ok)
	require.InDelta(t, 10.75, hit.Distance, 1e-9)
	require.Empty(t, buf.String())

	far := shape2.Bx(35.5, -1.0, 100.0, 1.0)
	_, ok = shape2.Intersection[float64](row, far).Trace(ray)
	require.False(t, ok)
	require.Contains(t, buf.String(), "csg march gave up")
}
