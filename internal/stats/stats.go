// Package stats provides the NaN-aware reductions colormap needs to derive
// value ranges: extent, min–max normalisation and histogram truncation.
//
// NaN marks a missing value throughout. It is skipped by every reduction and
// preserved by every transform. Inputs are never modified.
package stats

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrNoData is returned when a matrix holds no non-NaN values.
	ErrNoData = errors.New("stats: no non-NaN values")

	// ErrInvalidPercent is returned for histogram cuts outside [0, 50).
	ErrInvalidPercent = errors.New("stats: histogram cut outside [0, 50)")
)

// Extent returns the minimum and maximum of the non-NaN values of m.
func Extent(m mat.Matrix) (lo, hi float64, err error) {
	vals := Values(m)
	if len(vals) == 0 {
		return math.NaN(), math.NaN(), ErrNoData
	}
	return floats.Min(vals), floats.Max(vals), nil
}

// Values returns the non-NaN elements of m in row-major order.
func Values(m mat.Matrix) []float64 {
	r, c := m.Dims()
	vals := make([]float64, 0, r*c)
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		mat.Row(row, i, m)
		if !floats.HasNaN(row) {
			vals = append(vals, row...)
			continue
		}
		for _, v := range row {
			if !math.IsNaN(v) {
				vals = append(vals, v)
			}
		}
	}
	return vals
}

// Normalize returns a copy of m linearly rescaled so that its non-NaN
// values span [0, 1]. A constant matrix normalises to all ones, and a matrix
// without data is returned as an unchanged copy.
func Normalize(m mat.Matrix) *mat.Dense {
	out := mat.DenseCopyOf(m)
	lo, hi, err := Extent(out)
	if err != nil {
		return out
	}
	raw := out.RawMatrix()
	for i := 0; i < raw.Rows; i++ {
		row := raw.Data[i*raw.Stride : i*raw.Stride+raw.Cols]
		if lo == hi {
			for j, v := range row {
				if !math.IsNaN(v) {
					row[j] = 1
				}
			}
			continue
		}
		// Halved operands keep hi-lo finite for any finite extent.
		span := hi/2 - lo/2
		for j, v := range row {
			row[j] = (v/2 - lo/2) / span
		}
	}
	return out
}

// Truncate returns a copy of m with percent per cent of the non-NaN values
// clipped at each end of the histogram. Values below the lower cut-off
// quantile are raised to it, values above the upper one are lowered to it.
// Quantiles are taken from the empirical distribution.
func Truncate(m mat.Matrix, percent float64) (*mat.Dense, error) {
	if !(percent >= 0 && percent < 50) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPercent, percent)
	}
	out := mat.DenseCopyOf(m)
	if percent == 0 {
		return out, nil
	}
	vals := Values(out)
	if len(vals) == 0 {
		return out, nil
	}
	slices.Sort(vals)
	p := percent / 100
	lo := stat.Quantile(p, stat.Empirical, vals, nil)
	hi := stat.Quantile(1-p, stat.Empirical, vals, nil)
	out.Apply(func(_, _ int, v float64) float64 {
		switch {
		case v < lo:
			return lo
		case v > hi:
			return hi
		}
		return v
	}, out)
	return out, nil
}
