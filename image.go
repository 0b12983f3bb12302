package colormap

import (
	"fmt"
	"image"
	"image/color"
	"slices"

	"golang.org/x/image/draw"
	"gonum.org/v1/gonum/mat"
)

// ColorSpace tags the interpretation of an Image's bands.
type ColorSpace uint8

const (
	// ColorSpaceGray is a single scalar band.
	ColorSpaceGray ColorSpace = iota
	// ColorSpaceRGB is three bands holding red, green and blue.
	ColorSpaceRGB
	// ColorSpaceMultiBand is any other stack of scalar bands.
	ColorSpaceMultiBand
)

// String returns the name of the colour space.
func (s ColorSpace) String() string {
	switch s {
	case ColorSpaceGray:
		return "Gray"
	case ColorSpaceRGB:
		return "RGB"
	case ColorSpaceMultiBand:
		return "MultiBand"
	default:
		return "Unknown"
	}
}

// SpatialOrder names the image axes, slowest varying first. Rows of the
// band matrices run along the first axis.
type SpatialOrder []string

// DefaultOrder is the order of images converted from image.Image.
var DefaultOrder = SpatialOrder{"y", "x"}

// Image is a stack of scalar bands with metadata. The mapping methods unwrap
// the bands, run the corresponding package function and rewrap the result,
// keeping the spatial order.
type Image struct {
	Order SpatialOrder
	Space ColorSpace
	Bands MultiBand
}

// RenderedImage is the result of mapping an Image. Space is always
// ColorSpaceRGB.
type RenderedImage struct {
	*RGBImage
	Order SpatialOrder
	Space ColorSpace
}

// NewImage wraps a single scalar band with the given axis order.
func NewImage(order SpatialOrder, band mat.Matrix) *Image {
	return &Image{
		Order: slices.Clone(order),
		Space: ColorSpaceGray,
		Bands: MultiBand{band},
	}
}

// FromImage converts src into float bands in [0, 1]. Gray images yield one
// band, everything else yields red, green and blue bands with alpha
// discarded. Rows follow y and columns follow x.
func FromImage(src image.Image) (*Image, error) {
	if src == nil {
		return nil, ErrNilImage
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyImage, w, h)
	}
	rect := image.Rect(0, 0, w, h)

	switch src.ColorModel() {
	case color.GrayModel, color.Gray16Model:
		g := image.NewGray16(rect)
		draw.Copy(g, image.Point{}, src, b, draw.Src, nil)
		band := mat.NewDense(h, w, nil)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				band.Set(y, x, float64(g.Gray16At(x, y).Y)/0xffff)
			}
		}
		return &Image{Order: slices.Clone(DefaultOrder), Space: ColorSpaceGray, Bands: MultiBand{band}}, nil
	}

	n := image.NewNRGBA64(rect)
	draw.Copy(n, image.Point{}, src, b, draw.Src, nil)
	red, green, blue := mat.NewDense(h, w, nil), mat.NewDense(h, w, nil), mat.NewDense(h, w, nil)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := n.NRGBA64At(x, y)
			red.Set(y, x, float64(c.R)/0xffff)
			green.Set(y, x, float64(c.G)/0xffff)
			blue.Set(y, x, float64(c.B)/0xffff)
		}
	}
	return &Image{Order: slices.Clone(DefaultOrder), Space: ColorSpaceRGB, Bands: MultiBand{red, green, blue}}, nil
}

func (im *Image) scalar() (mat.Matrix, error) {
	if len(im.Bands) != 1 {
		return nil, fmt.Errorf("%w: %d bands", ErrNotScalar, len(im.Bands))
	}
	return im.Bands[0], nil
}

func (im *Image) rewrap(out *RGBImage, err error) (*RenderedImage, error) {
	if err != nil {
		return nil, err
	}
	return &RenderedImage{
		RGBImage: out,
		Order:    slices.Clone(im.Order),
		Space:    ColorSpaceRGB,
	}, nil
}

// Apply is the Image form of the package function Apply.
func (im *Image) Apply(cmap Map) (*RenderedImage, error) {
	band, err := im.scalar()
	if err != nil {
		return nil, err
	}
	return im.rewrap(Apply(band, cmap))
}

// ApplyRange is the Image form of the package function ApplyRange.
func (im *Image) ApplyRange(cmap Map, rng Range) (*RenderedImage, error) {
	band, err := im.scalar()
	if err != nil {
		return nil, err
	}
	return im.rewrap(ApplyRange(band, cmap, rng))
}

// ApplyDiverging is the Image form of the package function ApplyDiverging.
func (im *Image) ApplyDiverging(cmap Map, ref float64) (*RenderedImage, error) {
	band, err := im.scalar()
	if err != nil {
		return nil, err
	}
	return im.rewrap(ApplyDiverging(band, cmap, ref))
}

// ApplyCyclic is the Image form of the package function ApplyCyclic. An
// amplitude given with WithAmplitude is used as a raw matrix.
func (im *Image) ApplyCyclic(cmap Map, opts ...CyclicOption) (*RenderedImage, error) {
	band, err := im.scalar()
	if err != nil {
		return nil, err
	}
	return im.rewrap(ApplyCyclic(band, cmap, opts...))
}

// Ternary is the Image form of the package function Ternary.
func (im *Image) Ternary(opts ...TernaryOption) (*RenderedImage, error) {
	return im.rewrap(Ternary(im.Bands, opts...))
}
