package raster

import (
	"image/color"

	"deedles.dev/xtrace/geom"
)

// RGB is a linear color with unbounded channels. It is clamped to
// [0, 1] when converted.
type RGB struct {
	R, G, B float64
}

func Gray(v float64) RGB { return RGB{v, v, v} }

func (c RGB) Add(c2 RGB) RGB    { return RGB{c.R + c2.R, c.G + c2.G, c.B + c2.B} }
func (c RGB) Mul(s float64) RGB { return RGB{c.R * s, c.G * s, c.B * s} }
func (c RGB) MulC(c2 RGB) RGB   { return RGB{c.R * c2.R, c.G * c2.G, c.B * c2.B} }

func (c RGB) RGBA() (r, g, b, a uint32) {
	conv := func(v float64) uint32 {
		return uint32(geom.Clamp(v, 0, 1)*0xFFFF + 0.5)
	}
	return conv(c.R), conv(c.G), conv(c.B), 0xFFFF
}

var _ color.Color = RGB{}

// Lambert returns the diffuse brightness of a surface with the given
// normal lit from the unit direction toLight, plus ambient.
func Lambert[T geom.Float, V geom.Vector[T, V]](normal, toLight V, ambient T) float64 {
	return float64(ambient + (1-ambient)*max(normal.Dot(toLight), 0))
}

// Normal maps a unit normal's components from [-1, 1] into colors.
func Normal[T geom.Float](n geom.Vec3[T]) RGB {
	return RGB{
		R: float64(n.X+1) / 2,
		G: float64(n.Y+1) / 2,
		B: float64(n.Z+1) / 2,
	}
}
