package raster_test

import (
	"image"
	"image/color"
	"testing"

	"deedles.dev/xtrace/geom"
	"deedles.dev/xtrace/internal/raster"
	"github.com/stretchr/testify/require"
)

func TestImage(t *testing.T) {
	img := raster.New(image.Rect(10, 20, 14, 22))
	require.Len(t, img.Pix, 4*4*2)
	require.Equal(t, 16, img.Stride())
	require.Equal(t, 0, img.PixOffset(10, 20))
	require.Equal(t, 16+4, img.PixOffset(11, 21))

	img.Set(11, 21, color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xFF})
	require.Equal(t, []byte{0x33, 0x22, 0x11, 0xFF}, img.Pix[20:24])
	require.Equal(t, color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xFF}, img.At(11, 21))

	img.Set(100, 100, color.White)
	require.Equal(t, color.RGBA{}, img.At(100, 100))
	require.Equal(t, color.RGBA{A: 0xFF}, img.At(10, 20))
}

func TestImageUnpremultiplies(t *testing.T) {
	img := raster.New(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{R: 0x40, A: 0x80})
	r, _, _, _ := img.At(0, 0).RGBA()
	require.InDelta(t, 0x7F7F, r, 0x101)
}

func TestRGB(t *testing.T) {
	r, g, b, a := raster.RGB{R: 2, G: 0.5, B: -1}.RGBA()
	require.Equal(t, uint32(0xFFFF), r)
	require.Equal(t, uint32(0x8000), g)
	require.Equal(t, uint32(0), b)
	require.Equal(t, uint32(0xFFFF), a)

	c := raster.Gray(0.5).Add(raster.RGB{R: 0.25}).Mul(2)
	require.Equal(t, raster.RGB{R: 1.5, G: 1, B: 1}, c)
}

func TestLambert(t *testing.T) {
	up := geom.V3(0.0, 1.0, 0.0)
	require.InDelta(t, 1.0, raster.Lambert(up, up, 0.1), 1e-12)
	require.Equal(t, 0.1, raster.Lambert(up, up.Neg(), 0.1))
	require.InDelta(t, 0.55, raster.Lambert(up, geom.V3(1.0, 1.0, 0.0).Norm(), 0.1), 0.1)
}
