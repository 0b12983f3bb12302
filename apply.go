package colormap

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/gogpu/colormap/internal/parallel"
)

// parallelThreshold is the pixel count from which rows are mapped
// concurrently.
const parallelThreshold = 1 << 16

// rowPool returns the package-wide worker pool, starting it on first use.
// The pool lives for the rest of the process so that nested operations such
// as Ternary share its goroutines.
var rowPool = sync.OnceValue(func() *parallel.WorkerPool {
	return parallel.NewWorkerPool(0)
})

// Apply maps img through cmap using the extent of img's non-NaN values as
// the value range. See ApplyRange for the mapping rules.
func Apply(img mat.Matrix, cmap Map) (*RGBImage, error) {
	if _, _, err := dims(img); err != nil {
		return nil, err
	}
	rng, err := Extent(img)
	if err != nil {
		return nil, err
	}
	Logger().Debug("colormap: derived range", "lo", rng.Lo, "hi", rng.Hi)
	return ApplyRange(img, cmap, rng)
}

// ApplyRange maps every value of img to a colour of cmap.
//
// A value v selects entry round((v-Lo)/(Hi-Lo) * (N-1)) of the N-entry map,
// with ties rounded away from zero and the index clamped to [0, N-1]: values
// outside rng take the end colours. NaN values are rendered black. The alpha
// components of cmap are ignored.
//
// ApplyRange returns ErrInvalidRange unless rng.Lo < rng.Hi with both bounds
// finite, and ErrEmptyMap for an empty map. img is not modified.
func ApplyRange(img mat.Matrix, cmap Map, rng Range) (*RGBImage, error) {
	rows, cols, err := dims(img)
	if err != nil {
		return nil, err
	}
	if len(cmap) == 0 {
		return nil, ErrEmptyMap
	}
	if err := rng.Validate(); err != nil {
		return nil, err
	}

	out := NewRGBImage(rows, cols)
	mapRows := func(lo, hi int) {
		vals := make([]float64, cols)
		for r := lo; r < hi; r++ {
			mat.Row(vals, r, img)
			pix := out.rowPix(r)
			for c, v := range vals {
				if math.IsNaN(v) {
					// Masked pixel, left black.
					continue
				}
				col := cmap[cmap.index(v, rng)]
				pix[3*c], pix[3*c+1], pix[3*c+2] = col.R, col.G, col.B
			}
		}
	}

	if rows < 2 || rows*cols < parallelThreshold {
		mapRows(0, rows)
		return out, nil
	}
	pool := rowPool()
	Logger().Debug("colormap: mapping rows in parallel", "rows", rows, "cols", cols, "workers", pool.Workers())
	parallel.Rows(pool, rows, mapRows)
	return out, nil
}

// dims validates img and returns its size.
func dims(img mat.Matrix) (rows, cols int, err error) {
	if img == nil {
		return 0, 0, ErrNilImage
	}
	rows, cols = img.Dims()
	if rows <= 0 || cols <= 0 {
		return 0, 0, fmt.Errorf("%w: %dx%d", ErrEmptyImage, rows, cols)
	}
	return rows, cols, nil
}
