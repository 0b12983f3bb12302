package colormap

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/gogpu/colormap/internal/stats"
)

// Primaries are the colours assigned to the three bands of a ternary image.
type Primaries [3]RGBA

var (
	// ClassicPrimaries are pure red, green and blue.
	ClassicPrimaries = Primaries{Red, Green, Blue}

	// MatchedPrimaries have closely matched lightness, so that no band
	// dominates the composite the way green does with ClassicPrimaries.
	MatchedPrimaries = Primaries{
		RGB(0.90, 0.17, 0.00),
		RGB(0.00, 0.50, 0.00),
		RGB(0.10, 0.33, 1.00),
	}
)

// DefaultRampSize is the number of entries in each primary colour ramp.
const DefaultRampSize = 256

// TernaryOption configures Ternary.
type TernaryOption func(*ternaryOptions)

type ternaryOptions struct {
	bands     [3]int
	cut       float64
	primaries Primaries
	equalize  func(Map) Map
	rampSize  int
}

func defaultTernaryOptions() ternaryOptions {
	return ternaryOptions{
		bands:     [3]int{0, 1, 2},
		primaries: MatchedPrimaries,
		rampSize:  DefaultRampSize,
	}
}

// WithBands selects the bands rendered with the first, second and third
// primary.
func WithBands(a, b, c int) TernaryOption {
	return func(o *ternaryOptions) {
		o.bands = [3]int{a, b, c}
	}
}

// WithHistogramCut clips percent per cent of the values at each end of every
// band's histogram before mapping. Valid values are in [0, 50).
func WithHistogramCut(percent float64) TernaryOption {
	return func(o *ternaryOptions) {
		o.cut = percent
	}
}

// WithClassicPrimaries renders the bands in pure red, green and blue
// instead of MatchedPrimaries.
func WithClassicPrimaries() TernaryOption {
	return func(o *ternaryOptions) {
		o.primaries = ClassicPrimaries
	}
}

// WithPrimaries sets arbitrary primary colours.
func WithPrimaries(p Primaries) TernaryOption {
	return func(o *ternaryOptions) {
		o.primaries = p
	}
}

// WithEqualizer sets the transform applied to each black-to-primary ramp
// before use, typically a perceptual equalisation of lightness. By default
// the ramps are used unchanged.
func WithEqualizer(fn func(Map) Map) TernaryOption {
	return func(o *ternaryOptions) {
		o.equalize = fn
	}
}

// WithRampSize sets the number of entries of each primary ramp.
func WithRampSize(n int) TernaryOption {
	return func(o *ternaryOptions) {
		o.rampSize = n
	}
}

// PrimaryMaps returns the three colour maps Ternary would use with opts.
func PrimaryMaps(opts ...TernaryOption) ([3]Map, error) {
	o := defaultTernaryOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o.maps()
}

func (o *ternaryOptions) maps() ([3]Map, error) {
	var maps [3]Map
	for k, p := range o.primaries {
		m := Ramp(Black, p, o.rampSize)
		if o.equalize != nil {
			m = o.equalize(m)
		}
		if len(m) == 0 {
			return maps, fmt.Errorf("%w: primary %d", ErrEmptyMap, k)
		}
		maps[k] = m
	}
	return maps, nil
}

// Ternary composes three bands of a multi-band image into one RGB image.
// Each selected band is mapped over its own extent through a ramp from black
// to its primary colour, and the three results are summed channel by
// channel. The sum is not clamped and may exceed 1.
//
// Band indices are validated before any computation; an index outside
// [0, len(bands)) yields ErrBandIndex.
func Ternary(bands MultiBand, opts ...TernaryOption) (*RGBImage, error) {
	o := defaultTernaryOptions()
	for _, opt := range opts {
		opt(&o)
	}

	for _, b := range o.bands {
		if b < 0 || b >= len(bands) {
			return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrBandIndex, b, len(bands))
		}
	}
	if !(o.cut >= 0 && o.cut < 50) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHistogramCut, o.cut)
	}
	if _, _, err := bands.Dims(); err != nil {
		return nil, err
	}
	maps, err := o.maps()
	if err != nil {
		return nil, err
	}

	var out *RGBImage
	for k, b := range o.bands {
		var band mat.Matrix = bands[b]
		if o.cut > 0 {
			if band, err = stats.Truncate(band, o.cut); err != nil {
				return nil, err
			}
		}
		img, err := Apply(band, maps[k])
		if err != nil {
			return nil, fmt.Errorf("colormap: band %d: %w", b, err)
		}
		if out == nil {
			out = img
			continue
		}
		if err := out.Add(img); err != nil {
			return nil, err
		}
	}
	return out, nil
}
