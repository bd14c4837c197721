package shape2_test

import (
	"slices"
	"testing"

	"deedles.dev/xtrace/shape2"
	"github.com/stretchr/testify/require"
)

func TestTiledEvenVertically(t *testing.T) {
	tiles := slices.Collect(shape2.TiledEvenVertically(3, shape2.Bx(0.0, 0.0, 10.0, 30.0)))
	require.Equal(t, []shape2.Bounds[float64]{
		shape2.Bx(0.0, 0.0, 10.0, 10.0),
		shape2.Bx(0.0, 10.0, 10.0, 20.0),
		shape2.Bx(0.0, 20.0, 10.0, 30.0),
	}, tiles)
}

func TestTiledEvenHorizontally(t *testing.T) {
	tiles := slices.Collect(shape2.TiledEvenHorizontally(2, shape2.Bx(10.0, 0.0, 30.0, 5.0)))
	require.Equal(t, []shape2.Bounds[float64]{
		shape2.Bx(10.0, 0.0, 20.0, 5.0),
		shape2.Bx(20.0, 0.0, 30.0, 5.0),
	}, tiles)
}

func TestTileRows(t *testing.T) {
	tiles := make([]shape2.Bounds[float64], 5)
	shape2.TileRows(tiles, shape2.Bx(0.0, 0.0, 12.0, 8.0), 3)
	require.Equal(t, []shape2.Bounds[float64]{
		shape2.Bx(0.0, 0.0, 4.0, 4.0),
		shape2.Bx(4.0, 0.0, 8.0, 4.0),
		shape2.Bx(8.0, 0.0, 12.0, 4.0),
		shape2.Bx(0.0, 4.0, 6.0, 8.0),
		shape2.Bx(6.0, 4.0, 12.0, 8.0),
	}, tiles)

	var area float64
	for _, tile := range tiles {
		area += tile.Area()
	}
	require.Equal(t, 96.0, area)
}

func TestTiledRowsStop(t *testing.T) {
	var n int
	for range shape2.TiledRows(10, shape2.Bx(0.0, 0.0, 1.0, 1.0), 4) {
		n++
		if n == 6 {
			break
		}
	}
	require.Equal(t, 6, n)
}
