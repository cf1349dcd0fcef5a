package imp

import (
	"image"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// A CombineFunc merges one neighborhood sample into the running accumulator.
type CombineFunc func(acc, sample uint8) uint8

// FoldWorkers caps the number of goroutines a single Fold pass may use.
// Zero means runtime.GOMAXPROCS(0); one forces a sequential pass.
var FoldWorkers = 0

// minRowsPerWorker keeps tiny images on a single goroutine.
const minRowsPerWorker = 16

// clampAxis clamps the 3-wide window centered on p to [lo, hi) on one axis.
// It returns the image range [from, to) and the element index matching
// from. Both index spaces advance together, so element index elFrom+k
// always pairs with image index from+k.
func clampAxis(p, lo, hi int) (from, to, elFrom int) {
	from, elFrom = p-1, 0
	if from < lo {
		elFrom = lo - from
		from = lo
	}
	to = p + 2
	if to > hi {
		to = hi
	}
	return from, to, elFrom
}

// Support returns how many samples a fold visits for pixel (x, y) within
// bounds r, given element el.
func Support(r image.Rectangle, el Element, x, y int) int {
	x0, x1, ex := clampAxis(x, r.Min.X, r.Max.X)
	y0, y1, ey := clampAxis(y, r.Min.Y, r.Max.Y)
	n := 0
	for i := 0; i < y1-y0; i++ {
		for j := 0; j < x1-x0; j++ {
			if el[ey+i][ex+j] {
				n++
			}
		}
	}
	return n
}

// Fold builds a new image where each pixel is f folded, starting from seed,
// over the samples of src under the element centered on that pixel.
// Neighbors outside src's bounds are skipped rather than padded.
func Fold(src *image.Gray, el Element, seed uint8, f CombineFunc) *image.Gray {
	r := src.Bounds()
	dst := image.NewGray(r)
	if r.Empty() {
		return dst
	}

	workers := FoldWorkers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if limit := r.Dy() / minRowsPerWorker; workers > limit {
		workers = limit
	}
	if workers <= 1 {
		foldRows(src, dst, el, seed, f, r.Min.Y, r.Max.Y)
		return dst
	}

	var g errgroup.Group
	g.SetLimit(workers)
	band := (r.Dy() + workers - 1) / workers
	for y0 := r.Min.Y; y0 < r.Max.Y; y0 += band {
		y1 := y0 + band
		if y1 > r.Max.Y {
			y1 = r.Max.Y
		}
		y0 := y0
		g.Go(func() error {
			foldRows(src, dst, el, seed, f, y0, y1)
			return nil
		})
	}
	g.Wait()
	return dst
}

// foldRows fills rows [y0, y1) of dst. Concurrent calls must cover
// disjoint row ranges.
func foldRows(src, dst *image.Gray, el Element, seed uint8, f CombineFunc, y0, y1 int) {
	r := src.Bounds()
	for y := y0; y < y1; y++ {
		wy0, wy1, ey := clampAxis(y, r.Min.Y, r.Max.Y)
		out := dst.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			wx0, wx1, ex := clampAxis(x, r.Min.X, r.Max.X)
			acc := seed
			for i, sy := ey, wy0; sy < wy1; i, sy = i+1, sy+1 {
				row := src.PixOffset(wx0, sy)
				for j, sx := ex, wx0; sx < wx1; j, sx = j+1, sx+1 {
					if el[i][j] {
						acc = f(acc, src.Pix[row+sx-wx0])
					}
				}
			}
			dst.Pix[out] = acc
			out++
		}
	}
}
