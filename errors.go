package colormap

import "errors"

// Errors returned by the mapping operations. All of them are fatal for the
// call that reports them; no partial result is produced.
var (
	// ErrInvalidRange is returned when a value range is not a finite Lo < Hi,
	// including ranges derived from images without any non-NaN values.
	ErrInvalidRange = errors.New("colormap: invalid value range")

	// ErrEmptyMap is returned when a colour map has no entries.
	ErrEmptyMap = errors.New("colormap: empty colour map")

	// ErrInvalidColor is returned when a colour component lies outside [0, 1].
	ErrInvalidColor = errors.New("colormap: colour component outside [0, 1]")

	// ErrNilImage is returned when a nil matrix is passed as an image.
	ErrNilImage = errors.New("colormap: nil image")

	// ErrEmptyImage is returned when an image has no pixels.
	ErrEmptyImage = errors.New("colormap: empty image")

	// ErrNotScalar is returned when a single-band operation is applied to
	// an image that does not have exactly one band.
	ErrNotScalar = errors.New("colormap: image is not single-band")

	// ErrBandIndex is returned when a band selection is out of bounds.
	ErrBandIndex = errors.New("colormap: band index out of range")

	// ErrDimensionMismatch is returned when images that must share a shape
	// do not.
	ErrDimensionMismatch = errors.New("colormap: image dimensions do not match")

	// ErrInvalidCycle is returned when a cycle length is not positive and finite.
	ErrInvalidCycle = errors.New("colormap: cycle length must be positive and finite")

	// ErrInvalidHistogramCut is returned when a histogram cut percentage is
	// outside [0, 50).
	ErrInvalidHistogramCut = errors.New("colormap: histogram cut outside [0, 50)")

	// ErrUnknownColorName is returned by NamedRamp for unrecognised names.
	ErrUnknownColorName = errors.New("colormap: unknown colour name")
)
