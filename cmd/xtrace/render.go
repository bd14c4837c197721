package main

import (
	"context"
	"image"
	"image/color"
	"math"
	"sync"

	"deedles.dev/xtrace/internal/raster"
	"deedles.dev/xtrace/shape2"
	"golang.org/x/image/draw"
)

// tileCols is the number of tiles per row that an image is split
// into. Each worker gets several tiles so that cheap and expensive
// regions of a scene even out.
const tileCols = 8

// pixelFunc returns the color of the pixel at (x, y). It is called
// concurrently.
type pixelFunc func(x, y int) color.Color

// tileRect converts a tile to the pixels whose top-left corners it
// covers. Adjacent tiles round their shared edge the same way, so the
// pixels of a tiling are covered exactly once.
func tileRect(b shape2.Bounds[float64]) image.Rectangle {
	return image.Rect(
		int(math.Round(b.Mins.X)),
		int(math.Round(b.Mins.Y)),
		int(math.Round(b.Maxs.X)),
		int(math.Round(b.Maxs.Y)),
	)
}

// render fills a width by height image using pixel with a pool of
// workers goroutines, each taking tiles from a shared queue.
func render(ctx context.Context, width, height, workers int, pixel pixelFunc) (*raster.Image, error) {
	img := raster.New(image.Rect(0, 0, width, height))

	numtiles := tileCols * max(1, (height+tileCols-1)/tileCols)
	tiles := make(chan image.Rectangle)
	go func() {
		defer close(tiles)
		full := shape2.Bx(0, 0, float64(width), float64(height))
		for tile := range shape2.TiledRows(numtiles, full, tileCols) {
			select {
			case <-ctx.Done():
				return
			case tiles <- tileRect(tile):
			}
		}
	}()

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for r := range tiles {
				for y := r.Min.Y; y < r.Max.Y; y++ {
					for x := r.Min.X; x < r.Max.X; x++ {
						img.Set(x, y, pixel(x, y))
					}
				}
			}
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return img, nil
}

// downsample scales img down by factor, averaging away the jagged
// edges of shapes.
func downsample(img *raster.Image, factor int) image.Image {
	if factor <= 1 {
		return img
	}

	src := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, src.Dx()/factor, src.Dy()/factor))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, src, draw.Src, nil)
	return dst
}
