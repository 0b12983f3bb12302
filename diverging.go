package colormap

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// DivergingRange returns the range centred on ref that covers every non-NaN
// value of img: [ref-d, ref+d] with d the larger distance from ref to the
// data extremes. outside reports whether ref lies outside the data extent.
func DivergingRange(img mat.Matrix, ref float64) (rng Range, outside bool, err error) {
	ext, err := Extent(img)
	if err != nil {
		return Range{}, false, err
	}
	d := math.Max(ext.Hi-ref, ref-ext.Lo)
	outside = ref < ext.Lo || ref > ext.Hi
	return Range{Lo: ref - d, Hi: ref + d}, outside, nil
}

// ApplyDiverging maps img through a diverging colour map so that ref lands
// on the centre entry of cmap, whatever the asymmetry of the data. One arm
// of the map may be left partly unused.
//
// A reference value outside the data extent is logged as a warning and the
// symmetric range is used regardless. Data equal to ref everywhere has no
// spread and yields ErrInvalidRange.
func ApplyDiverging(img mat.Matrix, cmap Map, ref float64) (*RGBImage, error) {
	if _, _, err := dims(img); err != nil {
		return nil, err
	}
	rng, outside, err := DivergingRange(img, ref)
	if err != nil {
		return nil, err
	}
	if outside {
		Logger().Warn("colormap: diverging reference value outside data extent",
			"ref", ref, "lo", rng.Lo, "hi", rng.Hi)
	}
	return ApplyRange(img, cmap, rng)
}
