// Package raster holds the pixels produced by the demo renderers.
package raster

import (
	"encoding/binary"
	"image"
	"image/color"
)

// Image is an opaque image stored as little-endian XRGB8888 words.
// Distinct pixels may be written concurrently.
type Image struct {
	Rect image.Rectangle
	Pix  []byte
}

// New allocates a black image covering r.
func New(r image.Rectangle) *Image {
	return &Image{
		Rect: r,
		Pix:  make([]byte, 4*r.Dx()*r.Dy()),
	}
}

func (img *Image) Bounds() image.Rectangle { return img.Rect }

func (img *Image) ColorModel() color.Model { return color.RGBAModel }

func (img *Image) Stride() int {
	return 4 * img.Rect.Dx()
}

func (img *Image) PixOffset(x, y int) int {
	x -= img.Rect.Min.X
	y -= img.Rect.Min.Y
	return img.Stride()*y + 4*x
}

func (img *Image) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(img.Rect)) {
		return color.RGBA{}
	}

	i := img.PixOffset(x, y)
	n := binary.LittleEndian.Uint32(img.Pix[i : i+4 : i+4])
	return color.RGBA{
		R: uint8(n >> 16),
		G: uint8(n >> 8),
		B: uint8(n),
		A: 0xFF,
	}
}

// Set stores c, discarding its alpha.
func (img *Image) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(img.Rect)) {
		return
	}

	r, g, b, a := c.RGBA()
	if a != 0 && a != 0xFFFF {
		r, g, b = r*0xFFFF/a, g*0xFFFF/a, b*0xFFFF/a
	}

	i := img.PixOffset(x, y)
	n := (r>>8)<<16 | (g>>8)<<8 | b>>8 | 0xFF<<24
	binary.LittleEndian.PutUint32(img.Pix[i:i+4:i+4], n)
}
