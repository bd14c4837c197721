package shape2

import (
	"iter"

	"deedles.dev/xiter"
	"deedles.dev/xtrace/geom"
)

// hsplit splits b into two bounds arranged horizontally.
func hsplit[T geom.Float](b Bounds[T], w T) (left, right Bounds[T]) {
	left = b.Resize(geom.V2(w, b.Height()))
	right = b.Resize(geom.V2(b.Width()-w, b.Height())).Add(geom.V2(w, 0))
	return left, right
}

// vsplit splits b into two bounds arranged vertically.
func vsplit[T geom.Float](b Bounds[T], h T) (top, bottom Bounds[T]) {
	top = b.Resize(geom.V2(b.Width(), h))
	bottom = b.Resize(geom.V2(b.Width(), b.Height()-h)).Add(geom.V2(0, h))
	return top, bottom
}

// TiledEvenVertically yields numtiles bounds of equal height stacked
// on top of each other that together cover b.
//
//	----------
//	|        |
//	----------
//	|        |
//	----------
func TiledEvenVertically[T geom.Float](numtiles int, b Bounds[T]) iter.Seq[Bounds[T]] {
	return func(yield func(Bounds[T]) bool) {
		size := geom.V2(0, b.Height()/T(numtiles))
		c, _ := vsplit(b, size.Y)
		for range numtiles {
			if !yield(c) {
				return
			}
			c = c.Add(size)
		}
	}
}

// TiledEvenHorizontally yields numtiles bounds of equal width side by
// side that together cover b.
//
//	----------
//	|  |  |  |
//	----------
func TiledEvenHorizontally[T geom.Float](numtiles int, b Bounds[T]) iter.Seq[Bounds[T]] {
	return func(yield func(Bounds[T]) bool) {
		size := geom.V2(b.Width()/T(numtiles), 0)
		c, _ := hsplit(b, size.X)
		for range numtiles {
			if !yield(c) {
				return
			}
			c = c.Add(size)
		}
	}
}

// TiledRows yields numtiles bounds arranged in rows of at most cols
// tiles each, the union of which is b. The last row is split evenly
// between however many tiles are left for it.
func TiledRows[T geom.Float](numtiles int, b Bounds[T], cols int) iter.Seq[Bounds[T]] {
	return func(yield func(Bounds[T]) bool) {
		numrows := numtiles / cols
		if numtiles%cols != 0 {
			numrows++
		}

		for row := range TiledEvenVertically(numrows, b) {
			if numtiles <= 0 {
				break
			}

			numcols := min(numtiles, cols)
			for t := range TiledEvenHorizontally(numcols, row) {
				if !yield(t) {
					return
				}
			}
			numtiles -= numcols
		}
	}
}

// TileRows is the same as [TiledRows] but fills tiles instead of
// returning an iterator.
func TileRows[T geom.Float](tiles []Bounds[T], b Bounds[T], cols int) {
	insertTilesFromSeq(tiles, TiledRows(len(tiles), b, cols))
}

func insertTilesFromSeq[T geom.Float](tiles []Bounds[T], s iter.Seq[Bounds[T]]) {
	for i, t := range xiter.Enumerate(s) {
		tiles[i] = t
	}
}
