// Package colormap renders scalar images as RGB images through colour maps
// that respect absolute data values.
//
// # Overview
//
// A colour map is an ordered list of colours. The mapping functions place
// the first colour at the low end of a value range and the last colour at
// the high end, and pick the nearest entry for everything in between. The
// range is either given explicitly or taken from the data, never stretched
// behind the caller's back.
//
// # Quick Start
//
//	import "github.com/gogpu/colormap"
//
//	img := mat.NewDense(2, 3, []float64{0, 5, 10, math.NaN(), 2.5, 7.5})
//	gray := colormap.Ramp(colormap.Black, colormap.White, 256)
//
//	// Map [0, 10] onto the ramp; NaN renders black.
//	rgb, err := colormap.ApplyRange(img, gray, colormap.Range{Lo: 0, Hi: 10})
//
// # Operations
//
//   - Apply, ApplyRange: the primitive value-to-colour mapping
//   - ApplyDiverging: a range centred on a reference value
//   - ApplyCyclic: angular data, optionally modulated by an amplitude
//   - Ternary: three bands composed with three primary ramps
//
// Every operation is a pure function: inputs are never modified and the
// output is a freshly allocated RGBImage. Large images are mapped on
// several goroutines; the result is identical to a sequential run.
//
// # Index Rounding
//
// A value v in [Lo, Hi] selects entry round((v-Lo)/(Hi-Lo) * (N-1)) of an
// N-entry map. Ties round away from zero (math.Round), so with a two-entry
// map the midpoint of the range selects the second colour.
//
// # Images With Metadata
//
// Image wraps bands together with their axis order and colour space.
// FromImage converts any image.Image, and RGBImage.Image converts results
// back for encoding.
package colormap

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
