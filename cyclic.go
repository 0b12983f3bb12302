package colormap

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/gogpu/colormap/internal/stats"
)

// CyclicOption configures ApplyCyclic.
type CyclicOption func(*cyclicOptions)

type cyclicOptions struct {
	cycle     float64
	amplitude mat.Matrix
	toBlack   bool
}

func defaultCyclicOptions() cyclicOptions {
	return cyclicOptions{
		cycle:   2 * math.Pi,
		toBlack: true,
	}
}

// WithCycle sets the cycle length of the angular data. The default is 2π;
// use 360 for degrees.
func WithCycle(length float64) CyclicOption {
	return func(o *cyclicOptions) {
		o.cycle = length
	}
}

// WithAmplitude modulates the mapped colours by an amplitude image of the
// same size as the angle image. The amplitude is min–max normalised to
// [0, 1] before use.
func WithAmplitude(amp mat.Matrix) CyclicOption {
	return func(o *cyclicOptions) {
		o.amplitude = amp
	}
}

// WithModulation selects how the amplitude is applied: towards black
// (the default) or, if toBlack is false, towards white.
func WithModulation(toBlack bool) CyclicOption {
	return func(o *cyclicOptions) {
		o.toBlack = toBlack
	}
}

// ApplyCyclic maps angular data through a cyclic colour map.
//
// Angles are reduced modulo the cycle length into [0, cycle) and mapped
// over the range [0, cycle], so an angle and the same angle plus whole
// cycles get identical colours.
//
// With an amplitude image, a normalised amplitude a scales every channel
// c to c*a when modulating to black, or to 1-(1-c)*a when modulating to
// white. Pixels whose angle or amplitude is NaN are black. A constant amplitude
// leaves the colours unchanged.
func ApplyCyclic(angle mat.Matrix, cmap Map, opts ...CyclicOption) (*RGBImage, error) {
	o := defaultCyclicOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rows, cols, err := dims(angle)
	if err != nil {
		return nil, err
	}
	if !(o.cycle > 0) || math.IsInf(o.cycle, 1) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCycle, o.cycle)
	}
	if o.amplitude != nil {
		ar, ac, err := dims(o.amplitude)
		if err != nil {
			return nil, fmt.Errorf("colormap: amplitude: %w", err)
		}
		if ar != rows || ac != cols {
			return nil, fmt.Errorf("%w: amplitude is %dx%d, angle is %dx%d",
				ErrDimensionMismatch, ar, ac, rows, cols)
		}
	}

	wrapped := mat.DenseCopyOf(angle)
	wrapped.Apply(func(_, _ int, v float64) float64 {
		return wrapAngle(v, o.cycle)
	}, wrapped)

	out, err := ApplyRange(wrapped, cmap, Range{Lo: 0, Hi: o.cycle})
	if err != nil {
		return nil, err
	}
	if o.amplitude == nil {
		return out, nil
	}

	amp := stats.Normalize(o.amplitude)
	modulate(out, wrapped, amp, o.toBlack)
	return out, nil
}

// wrapAngle reduces v into [0, cycle). NaN and infinities become NaN.
func wrapAngle(v, cycle float64) float64 {
	r := math.Mod(v, cycle)
	if r < 0 {
		r += cycle
	}
	if r >= cycle {
		// A tiny negative remainder can round up to the cycle itself.
		r = 0
	}
	return r
}

// modulate blends out by amp. Pixels masked in angle stay black.
func modulate(out *RGBImage, angle, amp *mat.Dense, toBlack bool) {
	for r := 0; r < out.Rows; r++ {
		pix := out.rowPix(r)
		for c := 0; c < out.Cols; c++ {
			a := amp.At(r, c)
			px := pix[3*c : 3*c+3]
			switch {
			case math.IsNaN(a) || math.IsNaN(angle.At(r, c)):
				px[0], px[1], px[2] = 0, 0, 0
			case toBlack:
				for k := range px {
					px[k] *= a
				}
			default:
				for k := range px {
					px[k] = 1 - (1-px[k])*a
				}
			}
		}
	}
}
