package main

import (
	"image/color"
	"maps"
	"slices"

	"deedles.dev/xtrace/geom"
	"deedles.dev/xtrace/internal/raster"
	"deedles.dev/xtrace/shape2"
	"deedles.dev/xtrace/shape3"
)

var scenes = map[string]func(opts options) pixelFunc{
	"csg2":    csg2,
	"shapes3": shapes3,
	"csg3":    csg3,
}

func sceneNames() []string {
	return slices.Sorted(maps.Keys(scenes))
}

var palette = []raster.RGB{
	{R: 0.9, G: 0.9, B: 0.85},
	{R: 0.85, G: 0.25, B: 0.2},
	{R: 0.25, G: 0.6, B: 0.3},
	{R: 0.2, G: 0.4, B: 0.85},
	{R: 0.9, G: 0.7, B: 0.2},
	{R: 0.6, G: 0.3, B: 0.75},
}

func paint(i int) raster.RGB {
	return palette[i%len(palette)]
}

const (
	ambient    float64 = 0.1
	shadowBias         = 1e-4
)

func circle(x, y, r float64) shape2.Circle[float64] {
	return shape2.Circle[float64]{Center: geom.V2(x, y), Radius: r}
}

// csg2 is a flat scene seen from above. Points inside of a shape take
// its color and points outside are lit by a point light unless a
// shape casts a shadow over them.
func csg2(opts options) pixelFunc {
	shapes := []shape2.Tracer[float64]{
		circle(20, 30, 12),
		shape2.Difference[float64](shape2.Bx(45.0, 15, 75, 45), circle(75, 45, 12)),
		shape2.Intersection[float64](circle(25, 70, 14), circle(40, 70, 14)),
		shape2.Xor[float64](shape2.Bx(60.0, 60, 85, 85), circle(72.5, 72.5, 10)),
		shape2.TrianglePoints(geom.V2(110.0, 20), geom.V2(130.0, 60), geom.V2(95.0, 50)),
		shape2.Union[float64](circle(115, 80, 8), circle(125, 85, 8)),
	}
	light := geom.V2(90.0, 50)

	scale := 100 / float64(min(opts.Width, opts.Height))
	return func(x, y int) color.Color {
		pt := geom.V2(float64(x)+0.5, float64(y)+0.5).Mul(scale)
		for i, s := range shapes {
			if s.Inside(pt) {
				return paint(i + 1).Mul(0.8)
			}
		}

		ray := shape2.NewRay(pt, light.Sub(pt))
		ray.Distance.Max = pt.Distance(light)
		if _, ok := shape2.Trace(ray, shapes); ok {
			return raster.Gray(ambient)
		}
		return raster.Gray(ambient + (1-ambient)/(1+ray.Distance.Max*ray.Distance.Max/2000))
	}
}

func sphere(x, y, z, r float64) shape3.Sphere[float64] {
	return shape3.Sphere[float64]{Center: geom.V3(x, y, z), Radius: r}
}

func box(x0, y0, z0, x1, y1, z1 float64) shape3.Bounds[float64] {
	return shape3.Bounds[float64]{Mins: geom.V3(x0, y0, z0), Maxs: geom.V3(x1, y1, z1)}
}

var ground = shape3.Plane[float64]{Normal: geom.V3(0.0, 1, 0)}

func shapes3(opts options) pixelFunc {
	return view3(opts, []shape3.Tracer[float64]{
		ground,
		sphere(-1.2, 0.7, -3, 0.7),
		sphere(0.6, 0.5, -4, 0.5),
		box(1.2, 0, -3.2, 2, 0.8, -2.4),
		shape3.TrianglePoints(geom.V3(-2.5, 0, -5), geom.V3(-0.5, 0, -5), geom.V3(-1.5, 1.8, -5)),
	})
}

func csg3(opts options) pixelFunc {
	return view3(opts, []shape3.Tracer[float64]{
		ground,
		shape3.Intersection[float64](sphere(-1.3, 0.8, -3.5, 0.9), sphere(-0.5, 0.8, -3.5, 0.9)),
		shape3.Difference[float64](box(0.2, 0, -4, 1.4, 1.2, -2.8), sphere(1.4, 1.2, -2.8, 0.7)),
		shape3.Union[float64](sphere(2, 0.5, -4.5, 0.5), sphere(2.5, 0.9, -4.8, 0.45)),
		shape3.Xor[float64](sphere(0, 2, -6, 0.8), box(-0.5, 1.5, -6.5, 0.5, 2.5, -5.5)),
	})
}

// camera is a pinhole camera looking down the negative Z axis.
type camera struct {
	origin geom.Vec3[float64]
	width  int
	height int

	// fov is the tangent of half of the vertical field of view.
	fov float64
}

func (c camera) ray(x, y int) shape3.Ray[float64] {
	aspect := float64(c.width) / float64(c.height)
	u := (2*(float64(x)+0.5)/float64(c.width) - 1) * aspect * c.fov
	v := (1 - 2*(float64(y)+0.5)/float64(c.height)) * c.fov
	return shape3.NewRay(c.origin, geom.V3(u, v, -1))
}

// view3 renders shapes through a camera, lighting them with a single
// point light that they can shadow.
func view3(opts options, shapes []shape3.Tracer[float64]) pixelFunc {
	cam := camera{
		origin: geom.V3(0.0, 1, 4),
		width:  opts.Width,
		height: opts.Height,
		fov:    0.5,
	}
	light := geom.V3(-3.0, 6, 2)
	sky := raster.RGB{R: 0.55, G: 0.7, B: 0.95}

	return func(x, y int) color.Color {
		ray := cam.ray(x, y)
		hit, ok := shape3.Trace(ray, shapes)
		if !ok {
			return sky.Mul(0.6 + 0.4*max(ray.Direction.Y, 0))
		}
		if opts.Normals {
			return raster.Normal(hit.Normal)
		}

		toLight := light.Sub(hit.Point)
		shadow := shape3.NewRay(hit.Point.Add(hit.Normal.Mul(shadowBias)), toLight)
		shadow.Distance.Max = toLight.Len()
		if _, blocked := shape3.Trace(shadow, shapes); blocked {
			return paint(hit.Index).Mul(ambient)
		}
		return paint(hit.Index).Mul(raster.Lambert(hit.Normal, shadow.Direction, ambient))
	}
}
