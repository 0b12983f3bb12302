package colormap

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"gonum.org/v1/gonum/mat"
)

// RGBImage is a rows × cols × 3 array of float colour components. It is the
// output of every mapping operation.
//
// Components are normally in [0, 1], but sums produced by Ternary may
// exceed 1; RGBImage never clamps on its own.
type RGBImage struct {
	Rows, Cols int

	// Pix holds the pixels row by row, three components per pixel in R, G,
	// B order. The pixel at (r, c) starts at Pix[(r*Cols+c)*3].
	Pix []float64
}

// NewRGBImage allocates a black image.
func NewRGBImage(rows, cols int) *RGBImage {
	return &RGBImage{
		Rows: rows,
		Cols: cols,
		Pix:  make([]float64, rows*cols*3),
	}
}

// Dims returns the number of rows and columns.
func (m *RGBImage) Dims() (rows, cols int) {
	return m.Rows, m.Cols
}

func (m *RGBImage) offset(r, c int) int {
	return (r*m.Cols + c) * 3
}

// rowPix returns the components of row r.
func (m *RGBImage) rowPix(r int) []float64 {
	return m.Pix[r*m.Cols*3 : (r+1)*m.Cols*3]
}

// At returns the opaque colour at row r, column c.
func (m *RGBImage) At(r, c int) RGBA {
	i := m.offset(r, c)
	return RGB(m.Pix[i], m.Pix[i+1], m.Pix[i+2])
}

// Set stores the R, G and B components of col at row r, column c.
func (m *RGBImage) Set(r, c int, col RGBA) {
	i := m.offset(r, c)
	m.Pix[i], m.Pix[i+1], m.Pix[i+2] = col.R, col.G, col.B
}

// Add adds o to m component-wise, without clamping.
func (m *RGBImage) Add(o *RGBImage) error {
	if m.Rows != o.Rows || m.Cols != o.Cols {
		return fmt.Errorf("%w: %dx%d and %dx%d", ErrDimensionMismatch, m.Rows, m.Cols, o.Rows, o.Cols)
	}
	for i, v := range o.Pix {
		m.Pix[i] += v
	}
	return nil
}

// Channel returns a copy of one colour channel (0 = R, 1 = G, 2 = B).
func (m *RGBImage) Channel(k int) *mat.Dense {
	if k < 0 || k > 2 {
		panic(fmt.Sprintf("colormap: channel %d out of range", k))
	}
	data := make([]float64, m.Rows*m.Cols)
	for i := range data {
		data[i] = m.Pix[i*3+k]
	}
	return mat.NewDense(m.Rows, m.Cols, data)
}

// Image converts m to a 16-bit image for display or encoding. Components
// are clamped to [0, 1]. Rows map to y and columns to x.
func (m *RGBImage) Image() *image.NRGBA64 {
	img := image.NewNRGBA64(image.Rect(0, 0, m.Cols, m.Rows))
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			i := m.offset(r, c)
			img.SetNRGBA64(c, r, color.NRGBA64{
				R: to16(m.Pix[i]),
				G: to16(m.Pix[i+1]),
				B: to16(m.Pix[i+2]),
				A: 0xffff,
			})
		}
	}
	return img
}

func to16(x float64) uint16 {
	return uint16(math.Round(clamp01(x) * 0xffff))
}

// MultiBand is a stack of equally sized scalar bands, the Go rendition of a
// rows × cols × bands array.
type MultiBand []mat.Matrix

// NewMultiBand splits band-interleaved data (the value of band b at row r,
// column c is data[(r*cols+c)*bands+b]) into separate dense bands.
func NewMultiBand(rows, cols, bands int, data []float64) (MultiBand, error) {
	if rows <= 0 || cols <= 0 || bands <= 0 {
		return nil, ErrEmptyImage
	}
	if len(data) != rows*cols*bands {
		return nil, fmt.Errorf("%w: %d values for %dx%dx%d", ErrDimensionMismatch, len(data), rows, cols, bands)
	}
	mb := make(MultiBand, bands)
	for b := 0; b < bands; b++ {
		band := make([]float64, rows*cols)
		for i := range band {
			band[i] = data[i*bands+b]
		}
		mb[b] = mat.NewDense(rows, cols, band)
	}
	return mb, nil
}

// Dims returns the shared band dimensions, or an error if the stack is
// empty, holds a nil band, or the bands disagree.
func (mb MultiBand) Dims() (rows, cols int, err error) {
	if len(mb) == 0 {
		return 0, 0, ErrEmptyImage
	}
	for i, b := range mb {
		if b == nil {
			return 0, 0, fmt.Errorf("%w: band %d", ErrNilImage, i)
		}
		r, c := b.Dims()
		if i == 0 {
			rows, cols = r, c
			continue
		}
		if r != rows || c != cols {
			return 0, 0, fmt.Errorf("%w: band %d is %dx%d, band 0 is %dx%d",
				ErrDimensionMismatch, i, r, c, rows, cols)
		}
	}
	return rows, cols, nil
}
