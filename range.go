package colormap

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/gogpu/colormap/internal/stats"
)

// Range is the value interval spanned by a colour map: Lo maps to the first
// colour and Hi to the last.
type Range struct {
	Lo, Hi float64
}

// Validate reports ErrInvalidRange unless Lo < Hi and both bounds are
// finite.
func (r Range) Validate() error {
	if !(r.Lo < r.Hi) || math.IsInf(r.Lo, 0) || math.IsInf(r.Hi, 0) {
		return fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, r.Lo, r.Hi)
	}
	return nil
}

// Extent returns the smallest range covering every non-NaN value of img.
// The result is not validated: a constant image yields Lo == Hi.
func Extent(img mat.Matrix) (Range, error) {
	if img == nil {
		return Range{}, ErrNilImage
	}
	lo, hi, err := stats.Extent(img)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}
	return Range{Lo: lo, Hi: hi}, nil
}
